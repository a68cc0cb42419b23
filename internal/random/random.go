package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

var (
	// ErrRandomSourceUnavailable is returned when no random value can be obtained.
	ErrRandomSourceUnavailable = errors.New("random source unavailable")
	ErrInvalidBound            = errors.New("invalid bound: n must be > 0")
)

// Source draws uniform integers in [0, n).
type Source interface {
	IntN(n int) (int, error)
}

// CryptoSource reads randomness from an io.Reader, crypto/rand by default.
type CryptoSource struct {
	reader io.Reader
}

// NewCryptoSource returns a Source backed by crypto/rand.Reader.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{reader: rand.Reader}
}

// NewReaderSource returns a Source reading from r.
func NewReaderSource(r io.Reader) *CryptoSource {
	return &CryptoSource{reader: r}
}

func (s *CryptoSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	v, err := rand.Int(s.reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
	}
	return int(v.Int64()), nil
}
