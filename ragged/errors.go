// Package ragged: sentinel error set. Constructors return these wrapped
// with positional context; tests match with errors.Is. No panics on
// user input.

package ragged

import "errors"

var (
	// ErrNilArray indicates a nil *Array receiver or argument.
	ErrNilArray = errors.New("ragged: nil array")

	// ErrNilValues indicates a nil flat-values argument.
	ErrNilValues = errors.New("ragged: nil flat values")

	// ErrValuesRank indicates flat values without the leading value-row
	// dimension (a rank-0 Dense cannot be sliced into rows).
	ErrValuesRank = errors.New("ragged: flat values must have rank >= 1")

	// ErrEmptySplits indicates a constructor call with no row-splits
	// levels at all (ragged rank must be >= 1).
	ErrEmptySplits = errors.New("ragged: at least one row-splits level required")

	// ErrInvalidBoundaries indicates a malformed row-splits slice:
	// empty, not starting at zero, or decreasing.
	ErrInvalidBoundaries = errors.New("ragged: row boundaries must start at zero and be non-decreasing")

	// ErrBoundaryRange indicates a row-splits slice whose final offset
	// does not cover its child level exactly.
	ErrBoundaryRange = errors.New("ragged: row boundaries do not match child count")

	// ErrRowIDOrder indicates value row ids that are not sorted
	// non-decreasingly.
	ErrRowIDOrder = errors.New("ragged: value row ids must be non-decreasing")

	// ErrRowIDRange indicates a value row id outside [0, nrows), a
	// negative row count, or an id list whose length differs from the
	// value-row count.
	ErrRowIDRange = errors.New("ragged: value row id out of range")

	// ErrBadLevel indicates a ragged-level index outside [0, RaggedRank).
	ErrBadLevel = errors.New("ragged: level out of range")

	// ErrScalarRowsOnly indicates a Rows call on an array that is not
	// ragged rank 1 with scalar leaves.
	ErrScalarRowsOnly = errors.New("ragged: rows require ragged rank 1 and scalar leaves")

	// ErrRaggedStructure indicates a nested literal with inconsistent
	// nesting depth (lists and leaves as siblings, or no nesting at all).
	ErrRaggedStructure = errors.New("ragged: inconsistent nesting depth")

	// ErrDType indicates a nested-literal leaf whose dynamic type does
	// not match the requested element type.
	ErrDType = errors.New("ragged: element type mismatch")
)
