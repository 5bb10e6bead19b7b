// Package dense provides a generic rectangular array: flat row-major
// storage plus a shape. It is the output type of the densifier and the
// carrier for flat ragged values and array default values.
//
// Dense is deliberately small:
//   - New / FromSlice / Scalar constructors (validating, copying)
//   - bounds-checked At / Set that return errors, never panic
//   - Clone, Equal, String for tests and debugging
//
// Storage is a single []T in row-major order (last axis densest), so
// row ranges are contiguous and copy directly with the built-in copy —
// the property the densifier's per-row walk depends on.
//
// All indexers are O(rank); Clone and Equal are O(n).
package dense
