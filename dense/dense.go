package dense

import (
	"fmt"
	"strings"

	"github.com/arraykit/raggedense/shape"
)

// Dense is a rectangular array of T in row-major order: data holds
// exactly shape.NumElements() values, with the last axis densest.
// The scalar shape (rank 0) holds a single value.
type Dense[T comparable] struct {
	shape shape.Shape
	data  []T
}

// New creates a Dense of the given shape with every element set to the
// zero value of T.
// Stage 1 (Validate): shape must be concrete (no negative dims).
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): return the array or wrapped ErrBadShape.
// Complexity: O(n) time and memory, n = product of dims.
func New[T comparable](s shape.Shape) (*Dense[T], error) {
	if err := shape.ValidateConcrete(s); err != nil {
		return nil, fmt.Errorf("dense.New: %s: %w", err, ErrBadShape)
	}

	return &Dense[T]{shape: s.Clone(), data: make([]T, s.NumElements())}, nil
}

// FromSlice creates a Dense of the given shape initialized from data.
// The data slice is copied; the caller keeps ownership of its argument.
// Returns ErrBadShape for negative dims, ErrLengthMismatch when
// len(data) != shape.NumElements().
// Complexity: O(n).
func FromSlice[T comparable](s shape.Shape, data []T) (*Dense[T], error) {
	if err := shape.ValidateConcrete(s); err != nil {
		return nil, fmt.Errorf("dense.FromSlice: %s: %w", err, ErrBadShape)
	}
	if want := s.NumElements(); len(data) != want {
		return nil, fmt.Errorf("dense.FromSlice: got %d values for shape %v (want %d): %w",
			len(data), s, want, ErrLengthMismatch)
	}
	d := &Dense[T]{shape: s.Clone(), data: make([]T, len(data))}
	copy(d.data, data)

	return d, nil
}

// Scalar wraps a single value as a rank-0 Dense.
func Scalar[T comparable](v T) *Dense[T] {
	return &Dense[T]{shape: shape.Of(), data: []T{v}}
}

// Shape returns a copy of the array's shape; mutating it does not
// affect the array.
func (d *Dense[T]) Shape() shape.Shape {
	return d.shape.Clone()
}

// Rank returns the number of dimensions.
func (d *Dense[T]) Rank() int {
	return d.shape.Rank()
}

// Len returns the total number of elements.
func (d *Dense[T]) Len() int {
	return len(d.data)
}

// Data returns the live backing slice in row-major order.
// Mutating it mutates the array: treat it as read-only when the Dense
// is an input to another operation.
func (d *Dense[T]) Data() []T {
	return d.data
}

// offsetOf computes the flat index for idx or returns ErrOutOfRange.
// Stage 1 (Validate): non-nil receiver, len(idx) == rank, each index
// within its axis.
// Stage 2 (Execute): accumulate the row-major offset.
// Complexity: O(rank).
func (d *Dense[T]) offsetOf(idx []int) (int, error) {
	if d == nil {
		return 0, ErrNilDense
	}
	if len(idx) != d.shape.Rank() {
		return 0, fmt.Errorf("dense: got %d indices for rank %d: %w",
			len(idx), d.shape.Rank(), ErrOutOfRange)
	}
	off := 0
	for axis, i := range idx {
		if i < 0 || i >= d.shape[axis] {
			return 0, fmt.Errorf("dense: index %d out of [0,%d) on axis %d: %w",
				i, d.shape[axis], axis, ErrOutOfRange)
		}
		off = off*d.shape[axis] + i
	}

	return off, nil
}

// At retrieves the element at the given multi-dimensional index.
// For a rank-0 Dense, call At() with no indices.
// Complexity: O(rank).
func (d *Dense[T]) At(idx ...int) (T, error) {
	var zero T
	off, err := d.offsetOf(idx)
	if err != nil {
		return zero, err
	}

	return d.data[off], nil
}

// Set assigns v at the given multi-dimensional index.
// Complexity: O(rank).
func (d *Dense[T]) Set(v T, idx ...int) error {
	off, err := d.offsetOf(idx)
	if err != nil {
		return err
	}
	d.data[off] = v

	return nil
}

// Clone returns a deep copy, independent of the original.
// Complexity: O(n).
func (d *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(d.data))
	copy(data, d.data)

	return &Dense[T]{shape: d.shape.Clone(), data: data}
}

// Equal reports whether d and o have identical shape and elements.
// Shape matters: a [4] and a [4,1] array are never equal even when the
// flat data matches.
// Complexity: O(n).
func (d *Dense[T]) Equal(o *Dense[T]) bool {
	if d == nil || o == nil {
		return d == o
	}
	if !d.shape.Equal(o.shape) {
		return false
	}
	for i, v := range d.data {
		if v != o.data[i] {
			return false
		}
	}

	return true
}

// String renders the array the way fmt prints nested Go slices:
// "[[9 8 7] [0 0 0]]". A rank-0 array prints its single element.
func (d *Dense[T]) String() string {
	var b strings.Builder
	d.format(&b, 0, 0)

	return b.String()
}

// format writes the sub-array rooted at axis/off.
func (d *Dense[T]) format(b *strings.Builder, axis, off int) {
	if axis == d.shape.Rank() {
		fmt.Fprintf(b, "%v", d.data[off])

		return
	}
	stride := 1
	for _, dim := range d.shape[axis+1:] {
		stride *= dim
	}
	b.WriteByte('[')
	for i := 0; i < d.shape[axis]; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		d.format(b, axis+1, off+i*stride)
	}
	b.WriteByte(']')
}
