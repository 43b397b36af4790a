package particles

import "errors"

// Domain errors for particle collections.
var (
	// ErrLengthMismatch indicates property slices with unequal lengths.
	ErrLengthMismatch = errors.New("property length mismatch")

	// ErrIndexRange indicates a removal index outside the collection.
	ErrIndexRange = errors.New("index out of range")

	// ErrNoProp indicates a required property is missing.
	ErrNoProp = errors.New("missing property")
)
