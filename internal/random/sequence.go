package random

import "fmt"

// Sequence replays fixed values. Used to make generation deterministic in tests.
type Sequence struct {
	values []int
	pos    int
}

func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// IntN returns the next value. Values outside [0, n) are rejected.
func (s *Sequence) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	if s.pos >= len(s.values) {
		return 0, fmt.Errorf("%w: sequence exhausted after %d values", ErrRandomSourceUnavailable, len(s.values))
	}
	v := s.values[s.pos]
	s.pos++
	if v < 0 || v >= n {
		return 0, fmt.Errorf("%w: value %d out of range [0, %d)", ErrInvalidBound, v, n)
	}
	return v, nil
}
