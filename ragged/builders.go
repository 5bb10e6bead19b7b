package ragged

import (
	"fmt"
	"slices"

	"github.com/arraykit/raggedense/dense"
	"github.com/arraykit/raggedense/shape"
)

// FromRowSplits builds an Array from flat values and one row-boundary
// slice per ragged level, outermost first. This is the canonical
// representation; every other constructor converts into it.
//
// values must have rank >= 1: dimension 0 counts value rows, the rest
// is the dense tail. Each splits level must start at zero, be
// non-decreasing, and end exactly at the child count of the level
// below (the next level's row count, or the value-row count at the
// innermost level).
//
// Both values and splits are captured by copy; the caller keeps
// ownership of its arguments.
// Complexity: O(total rows + values).
func FromRowSplits[T comparable](values *dense.Dense[T], splits ...[]int) (*Array[T], error) {
	if values == nil {
		return nil, fmt.Errorf("FromRowSplits: %w", ErrNilValues)
	}
	if values.Rank() < 1 {
		return nil, fmt.Errorf("FromRowSplits: %w", ErrValuesRank)
	}
	if len(splits) == 0 {
		return nil, fmt.Errorf("FromRowSplits: %w", ErrEmptySplits)
	}
	for level, sp := range splits {
		children := values.Shape()[0]
		if level+1 < len(splits) {
			children = len(splits[level+1]) - 1
		}
		if err := validateRowSplits(sp, children, level); err != nil {
			return nil, fmt.Errorf("FromRowSplits: %w", err)
		}
	}

	owned := make([][]int, len(splits))
	for i, sp := range splits {
		owned[i] = slices.Clone(sp)
	}

	return &Array[T]{splits: owned, values: values.Clone()}, nil
}

// FromValueRowIDs builds a rank-1 Array from the alternative
// parent-row-assignment representation: rowIDs[j] names the row owning
// value row j, and nrows is the total row count (allowing trailing
// empty rows). The assignment must be sorted; it is converted to row
// splits here so the rest of the library has a single representation.
// Complexity: O(values + nrows).
func FromValueRowIDs[T comparable](values *dense.Dense[T], rowIDs []int, nrows int) (*Array[T], error) {
	if values == nil {
		return nil, fmt.Errorf("FromValueRowIDs: %w", ErrNilValues)
	}
	if values.Rank() < 1 {
		return nil, fmt.Errorf("FromValueRowIDs: %w", ErrValuesRank)
	}
	if err := validateRowIDs(rowIDs, nrows, values.Shape()[0]); err != nil {
		return nil, fmt.Errorf("FromValueRowIDs: %w", err)
	}

	// Count children per row, then prefix-sum into boundaries.
	sp := make([]int, nrows+1)
	for _, id := range rowIDs {
		sp[id+1]++
	}
	for i := 1; i <= nrows; i++ {
		sp[i] += sp[i-1]
	}

	return &Array[T]{splits: [][]int{sp}, values: values.Clone()}, nil
}

// FromRows builds a rank-1 Array of scalar leaves from explicit rows.
// Rows may be empty; an empty rows slice yields a zero-row Array.
// Complexity: O(total elements).
func FromRows[T comparable](rows [][]T) (*Array[T], error) {
	sp := make([]int, 1, len(rows)+1)
	total := 0
	for _, row := range rows {
		total += len(row)
		sp = append(sp, total)
	}
	flat := make([]T, 0, total)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	values, err := dense.FromSlice(shape.Of(total), flat)
	if err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}

	return &Array[T]{splits: [][]int{sp}, values: values}, nil
}

// FromNested builds an Array from an untyped nested literal of
// arbitrary depth: every non-leaf element is a []any, every leaf must
// have dynamic type T, and all leaves must sit at the same depth.
// The ragged rank is the nesting depth minus one, so the literal needs
// at least two levels ([]any of []any) — a flat list has no ragged
// dimension to represent.
//
// Errors: ErrRaggedStructure for mixed or missing nesting, ErrDType
// for a leaf of the wrong type.
// Complexity: O(total elements).
func FromNested[T comparable](data []any) (*Array[T], error) {
	// The outer list's children are the rows of the first ragged level.
	nodes := make([][]any, 0, len(data))
	for i, el := range data {
		sub, ok := el.([]any)
		if !ok {
			return nil, fmt.Errorf("FromNested: element %d is a leaf at depth 0: %w", i, ErrRaggedStructure)
		}
		nodes = append(nodes, sub)
	}

	var (
		splits [][]int
		leaves []T
	)
	for level := 0; ; level++ {
		sp := make([]int, 1, len(nodes)+1)
		var next [][]any
		sawList, sawLeaf := false, false
		for _, node := range nodes {
			for i, el := range node {
				if sub, ok := el.([]any); ok {
					if sawLeaf {
						return nil, fmt.Errorf("FromNested: list among leaves at depth %d: %w",
							level+1, ErrRaggedStructure)
					}
					sawList = true
					next = append(next, sub)

					continue
				}
				if sawList {
					return nil, fmt.Errorf("FromNested: leaf among lists at depth %d: %w",
						level+1, ErrRaggedStructure)
				}
				sawLeaf = true
				v, ok := el.(T)
				if !ok {
					return nil, fmt.Errorf("FromNested: leaf %d at depth %d has type %T: %w",
						i, level+1, el, ErrDType)
				}
				leaves = append(leaves, v)
			}
			sp = append(sp, len(next)+len(leaves))
		}
		splits = append(splits, sp)
		if !sawList {
			// Leaf level (or all rows empty): the literal is consumed.
			break
		}
		nodes = next
	}

	values, err := dense.FromSlice(shape.Of(len(leaves)), leaves)
	if err != nil {
		return nil, fmt.Errorf("FromNested: %w", err)
	}

	return &Array[T]{splits: splits, values: values}, nil
}
