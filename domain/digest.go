package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// DigestLength is the size of a Keccak-256 digest and of a Solidity bytes32.
const DigestLength = 32

// Digest is a 32-byte hash suitable for a bytes32 field.
type Digest [DigestLength]byte

// DigestFromBytes copies b into a Digest. b must be exactly DigestLength bytes;
// anything else means the hashing backend is misconfigured.
func DigestFromBytes(b []byte) (Digest, error) {
	var d Digest
	if len(b) != DigestLength {
		return d, fmt.Errorf("%w: got %d bytes, want %d", ErrDigestLength, len(b), DigestLength)
	}
	copy(d[:], b)
	return d, nil
}

// Bytes returns a copy of the digest as a slice.
func (d Digest) Bytes() []byte {
	b := make([]byte, DigestLength)
	copy(b, d[:])
	return b
}

// Hex renders the digest as 0x followed by 64 lowercase hex characters.
func (d Digest) Hex() string {
	return hexutil.Encode(d[:])
}

func (d Digest) String() string {
	return d.Hex()
}
