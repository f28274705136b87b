package rotations

import "errors"

var (
	// ErrShapeMismatch is returned when matrix and vector dimensions
	// disagree, or when index-aligned collections have different lengths.
	ErrShapeMismatch = errors.New("rotations: shape mismatch")

	// ErrDegenerateInput is returned when a zero-length or non-finite
	// vector is supplied where normalization is required.
	ErrDegenerateInput = errors.New("rotations: degenerate input")

	// ErrOutOfRange is returned when an interpolation fraction falls
	// outside the closed interval [0, 1].
	ErrOutOfRange = errors.New("rotations: value out of range")
)
