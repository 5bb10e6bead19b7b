// Package densify converts a ragged array into a fixed-shape dense
// array, padding positions with no real element using a default value.
//
// 🚀 What does it do?
//
//	ToDense takes a ragged.Array, an optional target shape and an
//	optional default value, and returns a freshly allocated
//	dense.Dense covering the smallest rectangle that contains every
//	real element (or the caller's target shape):
//
//	    [[9 8 7] [] [6 5] [4]]  →  [[9 8 7] [0 0 0] [6 5 0] [4 0 0]]
//
// ✨ Key behaviors:
//   - target shapes may crop (silently) or expand (padding) any ragged
//     dimension; dense-tail dimensions must match exactly
//   - Unconstrained target entries fall back to the bounding value
//   - default values may be scalars or arrays suffix-broadcastable
//     over the dense tail (size-1 dims expand)
//   - all validation happens before allocation; failures are sentinel
//     errors with expected-vs-actual detail
//   - optional worker parallelism for the per-row copy (Workers > 1)
//
// ⚙️ Usage:
//
//	rt, _ := ragged.FromRows([][]int{{1, 2, 3}, {}, {4}, {5, 6}})
//	opts := densify.DefaultOptions[int]()
//	opts.Default = dense.Scalar(9)
//	dt, _ := densify.ToDense(rt, &opts)
//	// [[1 2 3] [9 9 9] [4 9 9] [5 6 9]]
//
// Performance:
//
//   - Time:   O(output elements + real elements)
//   - Memory: O(output elements) for the result, O(tail) for the fill tile
package densify
