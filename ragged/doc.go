// Package ragged implements the ragged-array container: a nested array
// whose rows may have different lengths, ending in flat values with a
// fixed trailing shape (the dense tail).
//
// 🚀 Representation
//
//	Internally an Array is arena-style flat storage, never nested
//	containers: one row-splits slice per ragged level plus a single
//	dense.Dense of flat values. Row i at a level owns the child range
//	[splits[i], splits[i+1]) of the level below. Example:
//
//	    [[9 8 7] [] [6 5] [4]]
//	    splits: [0 3 3 5 6]     values: [9 8 7 6 5 4]
//
// ✨ Constructors
//
//   - FromRowSplits    — canonical form, any ragged rank
//   - FromValueRowIDs  — per-value parent-row assignment, converted to
//     row splits at construction (one code path afterwards)
//   - FromRows         — convenience for rank-1 rows of scalars
//   - FromNested       — untyped nested literal of arbitrary depth
//
// Every constructor validates its input (monotonic boundaries, offsets
// in range, consistent nesting) and returns sentinel errors; a
// constructed Array is immutable and safe for concurrent readers.
// Rows reverses FromRows, materializing a rank-1 scalar array back
// into per-row slices.
//
// BoundingShape computes the smallest rectangle containing every real
// element — the default output shape of densify.ToDense.
package ragged
