// Package shape: sentinel error set.
// All predicates return these sentinels, wrapped with expected/actual
// context via fmt.Errorf("...: %w", ErrX). Tests match with errors.Is.

package shape

import "errors"

var (
	// ErrNegativeDim is returned when a dimension that must be a concrete
	// size is negative (Unconstrained is only legal in target shapes).
	ErrNegativeDim = errors.New("shape: dimension must be non-negative")

	// ErrRankOverflow is returned when a shape has more dimensions than
	// the shape it must align against (e.g. a default value whose rank
	// reaches the flat-values rank).
	ErrRankOverflow = errors.New("shape: rank exceeds limit")

	// ErrNotBroadcastable is returned when right-aligned trailing
	// dimensions cannot broadcast: sizes differ and neither side is 1.
	ErrNotBroadcastable = errors.New("shape: shapes are not broadcastable")
)
