package shape

import (
	"slices"
	"strconv"
	"strings"
)

// Shape is an ordered list of dimension sizes, outermost first.
// A nil or empty Shape is the scalar shape (rank 0, one element).
type Shape []int

// Unconstrained marks a target-shape dimension with no caller
// constraint: the densifier substitutes the bounding value for it.
const Unconstrained = -1

// Of builds a Shape from the given dimensions.
// Convenience constructor so call sites read shape.Of(2, 3) rather than
// a composite literal.
func Of(dims ...int) Shape {
	s := make(Shape, len(dims))
	copy(s, dims)

	return s
}

// Rank returns the number of dimensions.
// Complexity: O(1).
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total element count: the product of all
// dimensions. The scalar shape holds exactly one element; any zero
// dimension collapses the count to zero.
// Only meaningful for concrete shapes.
// Complexity: O(rank).
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// Strides returns row-major element strides: Strides()[i] is the flat
// distance between neighbours along axis i, with the last axis densest
// (stride 1). Nil for the scalar shape.
// Complexity: O(rank).
func (s Shape) Strides() []int {
	if len(s) == 0 {
		return nil
	}
	str := make([]int, len(s))
	str[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		str[i] = str[i+1] * s[i+1]
	}

	return str
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}

	return slices.Clone(s)
}

// Equal reports whether s and o have identical rank and dimensions.
// Complexity: O(rank).
func (s Shape) Equal(o Shape) bool {
	return slices.Equal(s, o)
}

// IsConcrete reports whether every dimension is a real size (>= 0),
// i.e. the shape carries no Unconstrained entries.
func (s Shape) IsConcrete() bool {
	for _, d := range s {
		if d < 0 {
			return false
		}
	}

	return true
}

// String renders the shape as "[2,3,4]"; Unconstrained prints as "~".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, d := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		if d == Unconstrained {
			b.WriteByte('~')
		} else {
			b.WriteString(strconv.Itoa(d))
		}
	}
	b.WriteByte(']')

	return b.String()
}
