package hasher

import (
	"hash"
	"sync"

	"golang.org/x/crypto/sha3"

	"github.com/satriahrh/buyer-hash/domain"
)

// NewKeccak256 returns a domain.Hasher backed by legacy Keccak-256.
//
// This is the original Keccak padding used by Ethereum, not NIST SHA3-256.
// The two differ only in the domain separation byte and produce unrelated
// output for the same input.
func NewKeccak256() domain.Hasher {
	return &keccak256Hasher{
		pool: sync.Pool{
			New: func() any { return sha3.NewLegacyKeccak256() },
		},
	}
}

type keccak256Hasher struct {
	pool sync.Pool
}

func (h *keccak256Hasher) Hash(data []byte) []byte {
	s, ok := h.pool.Get().(hash.Hash)
	if !ok {
		panic("keccak256: pool returned unexpected type")
	}
	defer h.pool.Put(s)

	s.Reset()
	s.Write(data) // nolint:errcheck // hash.Hash.Write never returns an error
	return s.Sum(nil)
}

func (h *keccak256Hasher) Name() string { return Keccak256Backend }
