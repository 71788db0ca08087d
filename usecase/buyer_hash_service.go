package usecase

import (
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/satriahrh/buyer-hash/domain"
	"github.com/satriahrh/buyer-hash/utils/log"
)

// BuyerHashService turns buyer contact details into bytes32 identifiers.
// It holds no mutable state and is safe for concurrent use.
type BuyerHashService struct {
	hasher domain.Hasher
}

func NewBuyerHashService(h domain.Hasher) *BuyerHashService {
	return &BuyerHashService{hasher: h}
}

// HashPhoneNumber returns the Keccak-256 digest of the UTF-8 phone number.
func (s *BuyerHashService) HashPhoneNumber(phoneNumber string) (domain.Digest, error) {
	return s.Digest(domain.PhoneNumberPurpose, phoneNumber)
}

// HashAddress returns the Keccak-256 digest of the UTF-8 address.
func (s *BuyerHashService) HashAddress(address string) (domain.Digest, error) {
	return s.Digest(domain.AddressPurpose, address)
}

// Digest hashes the UTF-8 bytes of text. The text is used as is: no trimming,
// case folding or Unicode normalisation. purpose only labels logs and errors.
func (s *BuyerHashService) Digest(purpose domain.Purpose, text string) (domain.Digest, error) {
	if offset := invalidUTF8Offset(text); offset >= 0 {
		return domain.Digest{}, &domain.EncodingError{Purpose: purpose, Offset: offset}
	}

	sum := s.hasher.Hash([]byte(text))
	d, err := domain.DigestFromBytes(sum)
	if err != nil {
		log.With(zap.String("purpose", string(purpose)), zap.String("backend", s.hasher.Name())).
			Error("❌ Hasher returned a digest of the wrong size", zap.Int("size", len(sum)))
		return domain.Digest{}, fmt.Errorf("%s backend: %w", s.hasher.Name(), err)
	}

	log.With(zap.String("purpose", string(purpose))).
		Debug("🔑 Computed digest", zap.Int("input_bytes", len(text)), zap.String("backend", s.hasher.Name()))
	return d, nil
}

// Backend names the hashing backend in use.
func (s *BuyerHashService) Backend() string {
	return s.hasher.Name()
}

// invalidUTF8Offset returns the byte index of the first ill-formed sequence, or -1.
func invalidUTF8Offset(s string) int {
	if utf8.ValidString(s) {
		return -1
	}
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size <= 1 {
				return i
			}
		}
	}
	return -1
}
