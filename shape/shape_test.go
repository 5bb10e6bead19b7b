package shape_test

import (
	"testing"

	"github.com/arraykit/raggedense/shape"
	"github.com/stretchr/testify/assert"
)

// TestShape_NumElements covers the scalar shape, plain products and the
// zero-dimension collapse.
func TestShape_NumElements(t *testing.T) {
	assert.Equal(t, 1, shape.Of().NumElements(), "scalar shape holds one element")
	assert.Equal(t, 24, shape.Of(2, 3, 4).NumElements(), "product of dims")
	assert.Equal(t, 0, shape.Of(4, 0).NumElements(), "zero dim collapses the count")
}

// TestShape_Strides verifies row-major stride layout.
func TestShape_Strides(t *testing.T) {
	assert.Nil(t, shape.Of().Strides(), "scalar shape has no strides")
	assert.Equal(t, []int{12, 4, 1}, shape.Of(2, 3, 4).Strides(), "last axis densest")
	assert.Equal(t, []int{1}, shape.Of(7).Strides())
}

// TestShape_CloneIndependence ensures Clone does not alias the original.
func TestShape_CloneIndependence(t *testing.T) {
	s := shape.Of(2, 3)
	c := s.Clone()
	c[0] = 9
	assert.Equal(t, 2, s[0], "mutating the clone must not touch the original")
}

// TestShape_Equal checks rank and per-dimension comparison.
func TestShape_Equal(t *testing.T) {
	assert.True(t, shape.Of(2, 3).Equal(shape.Of(2, 3)))
	assert.False(t, shape.Of(2, 3).Equal(shape.Of(2, 3, 1)), "rank differs")
	assert.False(t, shape.Of(2, 3).Equal(shape.Of(3, 2)), "dims differ")
}

// TestShape_String covers concrete and unconstrained rendering.
func TestShape_String(t *testing.T) {
	assert.Equal(t, "[2,3]", shape.Of(2, 3).String())
	assert.Equal(t, "[2,~]", shape.Of(2, shape.Unconstrained).String())
	assert.Equal(t, "[]", shape.Of().String())
}

// TestValidateConcrete rejects any negative dimension, including the
// Unconstrained marker.
func TestValidateConcrete(t *testing.T) {
	assert.NoError(t, shape.ValidateConcrete(shape.Of(2, 0, 3)))
	assert.ErrorIs(t, shape.ValidateConcrete(shape.Of(2, -1)), shape.ErrNegativeDim)
	assert.ErrorIs(t, shape.ValidateConcrete(shape.Of(-4)), shape.ErrNegativeDim)
}

// TestValidateTarget allows Unconstrained but no other negatives.
func TestValidateTarget(t *testing.T) {
	assert.NoError(t, shape.ValidateTarget(shape.Of(2, shape.Unconstrained)))
	assert.ErrorIs(t, shape.ValidateTarget(shape.Of(2, -2)), shape.ErrNegativeDim)
}

// TestSuffixBroadcastable exercises rank overflow, exact match,
// size-1 expansion and the incompatible-size failure.
func TestSuffixBroadcastable(t *testing.T) {
	tail := shape.Of(2, 2)

	assert.NoError(t, shape.SuffixBroadcastable(shape.Of(), tail), "scalar broadcasts everywhere")
	assert.NoError(t, shape.SuffixBroadcastable(shape.Of(2), tail), "exact suffix match")
	assert.NoError(t, shape.SuffixBroadcastable(shape.Of(2, 1), tail), "size-1 dim expands")

	err := shape.SuffixBroadcastable(shape.Of(3), shape.Of(2))
	assert.ErrorIs(t, err, shape.ErrNotBroadcastable, "3 vs 2 must fail")
	assert.Contains(t, err.Error(), "3", "message must carry the actual size")
	assert.Contains(t, err.Error(), "2", "message must carry the expected size")

	assert.ErrorIs(t, shape.SuffixBroadcastable(shape.Of(1, 2), shape.Of(2)), shape.ErrRankOverflow,
		"rank above the tail rank must fail")
}
