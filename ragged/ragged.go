package ragged

import (
	"fmt"
	"slices"

	"github.com/arraykit/raggedense/dense"
	"github.com/arraykit/raggedense/shape"
)

// Array is a ragged array with R >= 1 variable-length nesting levels
// over flat values with a fixed dense tail.
//
// splits holds one row-boundary slice per level, outermost first:
// splits[L][i] .. splits[L][i+1] is the child range owned by row i at
// level L, indexing rows of splits[L+1] — or flat value rows at the
// last level. values.Shape()[0] counts value rows; the remaining
// dimensions are the dense tail.
//
// An Array is immutable once constructed and safe for concurrent
// readers. Accessors that expose internals return copies, except
// FlatValues (documented below).
type Array[T comparable] struct {
	splits [][]int
	values *dense.Dense[T]
}

// RaggedRank returns the number of variable-length nesting levels.
// Always >= 1 for a constructed Array.
func (a *Array[T]) RaggedRank() int {
	return len(a.splits)
}

// NumRows returns the number of rows at the outermost level.
func (a *Array[T]) NumRows() int {
	return len(a.splits[0]) - 1
}

// Len returns the total number of real elements: value rows times the
// dense-tail element count.
func (a *Array[T]) Len() int {
	return a.values.Len()
}

// RowSplits returns a copy of the row-boundary slice for the given
// level (0 = outermost). Returns ErrBadLevel outside [0, RaggedRank).
func (a *Array[T]) RowSplits(level int) ([]int, error) {
	if a == nil {
		return nil, fmt.Errorf("RowSplits: %w", ErrNilArray)
	}
	if level < 0 || level >= len(a.splits) {
		return nil, fmt.Errorf("level %d of %d: %w", level, len(a.splits), ErrBadLevel)
	}

	return slices.Clone(a.splits[level]), nil
}

// RowLengths returns the per-row child counts at the given level: the
// consecutive differences of that level's row boundaries.
func (a *Array[T]) RowLengths(level int) ([]int, error) {
	if a == nil {
		return nil, fmt.Errorf("RowLengths: %w", ErrNilArray)
	}
	if level < 0 || level >= len(a.splits) {
		return nil, fmt.Errorf("level %d of %d: %w", level, len(a.splits), ErrBadLevel)
	}
	sp := a.splits[level]
	lengths := make([]int, len(sp)-1)
	for i := range lengths {
		lengths[i] = sp[i+1] - sp[i]
	}

	return lengths, nil
}

// ValueRowIDs converts the given level's row boundaries back to the
// parent-row-assignment form: ids[j] is the row owning child j, and
// nrows is the row count at that level. The inverse of FromValueRowIDs.
// Complexity: O(children).
func (a *Array[T]) ValueRowIDs(level int) (ids []int, nrows int, err error) {
	if a == nil {
		return nil, 0, fmt.Errorf("ValueRowIDs: %w", ErrNilArray)
	}
	if level < 0 || level >= len(a.splits) {
		return nil, 0, fmt.Errorf("level %d of %d: %w", level, len(a.splits), ErrBadLevel)
	}
	sp := a.splits[level]
	nrows = len(sp) - 1
	ids = make([]int, 0, sp[nrows])
	for row := 0; row < nrows; row++ {
		for j := sp[row]; j < sp[row+1]; j++ {
			ids = append(ids, row)
		}
	}

	return ids, nrows, nil
}

// Rows materializes a ragged-rank-1 array of scalar leaves as explicit
// per-row slices, the inverse of FromRows. Deeper arrays and arrays
// with a dense tail have no [][]T rendering; those return
// ErrScalarRowsOnly. Rows may be empty, never nil.
// Complexity: O(total elements).
func (a *Array[T]) Rows() ([][]T, error) {
	if a == nil {
		return nil, fmt.Errorf("Rows: %w", ErrNilArray)
	}
	if a.RaggedRank() != 1 || a.DenseTail().Rank() != 0 {
		return nil, fmt.Errorf("Rows: ragged rank %d, tail %v: %w",
			a.RaggedRank(), a.DenseTail(), ErrScalarRowsOnly)
	}
	sp := a.splits[0]
	flat := a.values.Data()
	rows := make([][]T, len(sp)-1)
	for i := range rows {
		rows[i] = make([]T, sp[i+1]-sp[i])
		copy(rows[i], flat[sp[i]:sp[i+1]])
	}

	return rows, nil
}

// FlatValues returns the flat values array. It is the Array's live
// internal storage: treat it as read-only.
func (a *Array[T]) FlatValues() *dense.Dense[T] {
	return a.values
}

// DenseTail returns the fixed trailing shape of the flat values — the
// dimensions not subject to raggedness. Empty for scalar leaves.
func (a *Array[T]) DenseTail() shape.Shape {
	return a.values.Shape()[1:]
}

// BoundingShape returns the smallest rectangular shape containing every
// real element: [outer row count, max row length per level..., dense
// tail...]. Its rank is RaggedRank()+1+len(DenseTail()).
// Complexity: O(total rows).
func (a *Array[T]) BoundingShape() shape.Shape {
	tail := a.DenseTail()
	dims := make(shape.Shape, 0, len(a.splits)+1+len(tail))
	dims = append(dims, a.NumRows())
	for _, sp := range a.splits {
		longest := 0
		for i := 0; i+1 < len(sp); i++ {
			if l := sp[i+1] - sp[i]; l > longest {
				longest = l
			}
		}
		dims = append(dims, longest)
	}

	return append(dims, tail...)
}

// String renders a compact summary: element layout is ragged, so only
// the bounding box and rank are shown.
func (a *Array[T]) String() string {
	return fmt.Sprintf("ragged(rank=%d, bounds=%v, values=%d)",
		a.RaggedRank(), a.BoundingShape(), a.values.Shape()[0])
}
