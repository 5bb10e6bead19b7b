// Package raggedense converts ragged (variable-length, nested) arrays
// into fixed-shape dense arrays, padding the holes with a default value.
//
// 🚀 What is raggedense?
//
//	A small, pure-Go library built around one transformation:
//	take a ragged array — rows of uneven length, possibly nested —
//	and produce the smallest rectangle that contains it, with every
//	missing position filled in:
//
//	    [[9 8 7] [] [6 5] [4]]  →  [[9 8 7]
//	                                [0 0 0]
//	                                [6 5 0]
//	                                [4 0 0]]
//
// ✨ Key features:
//   - generic over element type (ints, floats, strings, ...)
//   - row-splits and value-rowids construction, one canonical code path
//   - optional target shape: crop or expand any ragged dimension
//   - scalar or array default values with suffix-shape broadcasting
//   - optional worker parallelism for the per-row copy
//   - sentinel errors throughout; no panics on user input
//
// Everything is organized under four subpackages:
//
//	shape/   — dimension vectors + pure shape-compatibility predicates
//	dense/   — generic row-major rectangular arrays
//	ragged/  — the ragged container: row splits, validation, bounding shape
//	densify/ — the ragged→dense conversion itself
//
// Quick start:
//
//	rt, _ := ragged.FromRows([][]int{{9, 8, 7}, {}, {6, 5}, {4}})
//	dt, _ := densify.ToDense(rt, nil)
//
//	go get github.com/arraykit/raggedense
package raggedense
