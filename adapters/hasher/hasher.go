package hasher

import (
	"errors"
	"fmt"

	"github.com/satriahrh/buyer-hash/domain"
)

const (
	Keccak256Backend = "keccak256"
	EthereumBackend  = "ethereum"
)

// ErrUnknownBackend is returned by New for a name it does not recognise.
var ErrUnknownBackend = errors.New("unknown hasher backend")

// New returns the backend registered under name. An empty name selects Keccak256Backend.
func New(name string) (domain.Hasher, error) {
	switch name {
	case "", Keccak256Backend:
		return NewKeccak256(), nil
	case EthereumBackend:
		return NewEthereum(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// Backends lists the accepted backend names.
func Backends() []string {
	return []string{Keccak256Backend, EthereumBackend}
}
