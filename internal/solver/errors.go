package solver

import "errors"

var (
	// ErrInvalidState indicates NaN or Inf crept into the particle state.
	ErrInvalidState = errors.New("invalid state (NaN or Inf detected)")
)
