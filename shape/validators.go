// Package shape: canonical validation predicates.
//
// Purpose:
//   - Single source of truth for the shape-compatibility checks the
//     dense/ragged/densify packages rely on.
//   - Pure, deterministic, allocation-free on the success path.
//   - Return wrapped sentinels carrying expected vs. actual sizes, so
//     call sites never rebuild mismatch detail.

package shape

import "fmt"

// ValidateConcrete ensures every dimension of s is a real size (>= 0).
// Returns wrapped ErrNegativeDim naming the offending axis otherwise.
// Complexity: O(rank).
func ValidateConcrete(s Shape) error {
	for i, d := range s {
		if d < 0 {
			return fmt.Errorf("dim %d is %d: %w", i, d, ErrNegativeDim)
		}
	}

	return nil
}

// ValidateTarget ensures every dimension of a target shape is either a
// real size (>= 0) or Unconstrained. Any other negative value is a
// caller mistake, reported as wrapped ErrNegativeDim.
// Complexity: O(rank).
func ValidateTarget(s Shape) error {
	for i, d := range s {
		if d < 0 && d != Unconstrained {
			return fmt.Errorf("dim %d is %d: %w", i, d, ErrNegativeDim)
		}
	}

	return nil
}

// SuffixBroadcastable checks that def can broadcast over the trailing
// dimensions of tail under right-aligned matching: def's rank must not
// exceed tail's, and each def dimension must equal the tail dimension
// it aligns with, or be 1.
//
// This is the default-value rule of the densifier: a fill value may be
// any suffix-broadcastable prefix of the dense tail, nothing more.
//
// Returns nil, or wrapped ErrRankOverflow / ErrNotBroadcastable with
// the aligned axis and both sizes.
// Complexity: O(rank).
func SuffixBroadcastable(def, tail Shape) error {
	if def.Rank() > tail.Rank() {
		return fmt.Errorf("rank %d exceeds rank %d of %v: %w",
			def.Rank(), tail.Rank(), tail, ErrRankOverflow)
	}
	offset := tail.Rank() - def.Rank()
	for i, d := range def {
		if t := tail[offset+i]; d != t && d != 1 {
			return fmt.Errorf("dim %d is %d but target dim is %d: %w",
				offset+i, d, t, ErrNotBroadcastable)
		}
	}

	return nil
}
