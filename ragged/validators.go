// Package ragged: canonical boundary validation.
//
// Purpose:
//   - Single source of truth for row-splits well-formedness, used by
//     every constructor.
//   - Pure and allocation-free; returns sentinels wrapped with the
//     offending level/row so messages pinpoint the defect.

package ragged

import "fmt"

// validateRowSplits checks one row-splits slice: non-empty, first
// offset zero, non-decreasing, and final offset equal to the child
// count of the level below.
// Complexity: O(rows).
func validateRowSplits(sp []int, children, level int) error {
	if len(sp) == 0 {
		return fmt.Errorf("level %d: empty boundaries: %w", level, ErrInvalidBoundaries)
	}
	if sp[0] != 0 {
		return fmt.Errorf("level %d: first boundary is %d: %w", level, sp[0], ErrInvalidBoundaries)
	}
	for i := 1; i < len(sp); i++ {
		if sp[i] < sp[i-1] {
			return fmt.Errorf("level %d: boundary %d decreases (%d after %d): %w",
				level, i, sp[i], sp[i-1], ErrInvalidBoundaries)
		}
	}
	if last := sp[len(sp)-1]; last != children {
		return fmt.Errorf("level %d: final boundary %d but child count is %d: %w",
			level, last, children, ErrBoundaryRange)
	}

	return nil
}

// validateRowIDs checks a parent-row assignment: every id sorted and in
// [0, nrows), and exactly one id per value row.
// Complexity: O(values).
func validateRowIDs(ids []int, nrows, valueRows int) error {
	if nrows < 0 {
		return fmt.Errorf("nrows is %d: %w", nrows, ErrRowIDRange)
	}
	if len(ids) != valueRows {
		return fmt.Errorf("%d row ids for %d value rows: %w", len(ids), valueRows, ErrRowIDRange)
	}
	prev := 0
	for i, id := range ids {
		if id < 0 || id >= nrows {
			return fmt.Errorf("row id %d at position %d outside [0,%d): %w", id, i, nrows, ErrRowIDRange)
		}
		if id < prev {
			return fmt.Errorf("row id %d at position %d after %d: %w", id, i, prev, ErrRowIDOrder)
		}
		prev = id
	}

	return nil
}
