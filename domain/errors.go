package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEncoding is returned when input text is not well-formed UTF-8.
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")

	// ErrDigestLength is returned when a backend produces a sum that is not 32 bytes.
	ErrDigestLength = errors.New("unexpected digest length")
)

// EncodingError reports where ill-formed UTF-8 was found in the input.
type EncodingError struct {
	Purpose Purpose
	Offset  int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: %s at byte %d", e.Purpose, ErrInvalidEncoding, e.Offset)
}

func (e *EncodingError) Unwrap() error {
	return ErrInvalidEncoding
}
