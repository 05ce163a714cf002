package compute

import "github.com/cockroachdb/errors"

var (
	// ErrDimensionMismatch is returned when operand lengths are incompatible.
	ErrDimensionMismatch = errors.New("wrong dimensions")

	// ErrNonSquare is returned when a square matrix is required.
	ErrNonSquare = errors.New("matrix is not square")
)
