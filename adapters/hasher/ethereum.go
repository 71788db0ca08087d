package hasher

import (
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/satriahrh/buyer-hash/domain"
)

// NewEthereum returns a domain.Hasher that delegates to go-ethereum's Keccak256.
func NewEthereum() domain.Hasher { return ethereumHasher{} }

type ethereumHasher struct{}

func (ethereumHasher) Hash(data []byte) []byte {
	return crypto.Keccak256(data)
}

func (ethereumHasher) Name() string { return EthereumBackend }
