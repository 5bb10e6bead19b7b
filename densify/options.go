// Package densify: conversion options and documented defaults.

package densify

import (
	"github.com/arraykit/raggedense/dense"
	"github.com/arraykit/raggedense/shape"
)

// DefaultWorkers is the worker count of a zero Options value: the
// conversion runs sequentially. Any value <= 1 means sequential.
const DefaultWorkers = 0

// Options configures ToDense. The zero value is valid: bounding-box
// output shape, zero-value padding, sequential execution.
//
// Fields:
//   - Default — fill value for padded positions. nil means the zero
//     value of T (numeric 0, empty string). May be a scalar or an
//     array whose shape suffix-broadcasts over the dense tail
//     (right-aligned; size-1 dims expand). Its rank must be strictly
//     less than the flat values' rank.
//   - Shape — target output shape. nil means the bounding shape. Must
//     have the array's full dense rank (ragged rank + 1 + tail rank).
//     Entries may be shape.Unconstrained to take the bounding value.
//     Ragged dimensions may be smaller (silent crop) or larger
//     (padded expansion) than the bounding box; concrete dense-tail
//     entries must equal the intrinsic tail exactly.
//   - Workers — parallelism for the per-row copy step. <= 1 runs
//     sequentially; > 1 copies outer rows concurrently on at most
//     Workers goroutines. Output is identical either way.
//
// Example:
//
//	opts := densify.DefaultOptions[int]()
//	opts.Default = dense.Scalar(9)
//	opts.Shape = shape.Of(2, shape.Unconstrained)
//	dt, err := densify.ToDense(rt, &opts)
type Options[T comparable] struct {
	Default *dense.Dense[T]
	Shape   shape.Shape
	Workers int
}

// DefaultOptions returns the documented defaults: no default value
// override, bounding output shape, sequential execution.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{Workers: DefaultWorkers}
}
