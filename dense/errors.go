// Package dense: sentinel error set. Constructors and indexers return
// these, optionally wrapped with positional context; tests match with
// errors.Is.

package dense

import "errors"

var (
	// ErrNilDense indicates a nil *Dense receiver or argument.
	ErrNilDense = errors.New("dense: nil array")

	// ErrBadShape is returned when a requested shape contains a negative
	// dimension. Zero dimensions are legal (empty arrays).
	ErrBadShape = errors.New("dense: invalid shape")

	// ErrLengthMismatch is returned when the provided backing data does
	// not contain exactly shape.NumElements() values.
	ErrLengthMismatch = errors.New("dense: data length does not match shape")

	// ErrOutOfRange indicates an index outside the valid bounds of its
	// axis, or an index list whose length differs from the rank.
	ErrOutOfRange = errors.New("dense: index out of range")
)
