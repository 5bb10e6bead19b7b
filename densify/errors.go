// Package densify: sentinel error set. ToDense returns these wrapped
// with expected-vs-actual dimensions so callers can fix the call rather
// than guess; tests match with errors.Is. All failures are detected
// during validation, before the output is allocated.

package densify

import "errors"

var (
	// ErrNilArray indicates a nil ragged array argument.
	ErrNilArray = errors.New("densify: ragged array is nil")

	// ErrRankMismatch indicates a target shape whose rank differs from
	// the ragged array's dense rank (ragged rank + 1 + tail rank).
	// Negative non-Unconstrained target entries surface
	// shape.ErrNegativeDim instead.
	ErrRankMismatch = errors.New("densify: target shape rank mismatch")

	// ErrTailMismatch indicates a concrete target dimension in the dense
	// tail that differs from the array's intrinsic tail dimension.
	// Ragged dimensions may crop or expand; tail dimensions may not.
	ErrTailMismatch = errors.New("densify: dense tail dimension mismatch")

	// ErrDefaultRank indicates a default value whose rank is not
	// strictly less than the flat values' rank.
	ErrDefaultRank = errors.New("densify: default value rank too high")

	// ErrDefaultShape indicates a default value whose trailing
	// dimensions cannot broadcast over the dense tail.
	ErrDefaultShape = errors.New("densify: default value shape not broadcastable")
)
