package domain

// Hasher is the core port for any hashing strategy.
type Hasher interface {
	// Hash returns the raw sum of data as produced by the underlying primitive.
	Hash(data []byte) []byte
	// Name identifies the backend in logs and errors.
	Name() string
}

// Purpose labels what a digest was computed for. It never changes the digest.
type Purpose string

const (
	PhoneNumberPurpose Purpose = "phone_number"
	AddressPurpose     Purpose = "address"
)
