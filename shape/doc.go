// Package shape defines the dimension-vector type shared by the dense
// and ragged containers, together with the pure compatibility predicates
// the densifier validates with.
//
// A Shape is an ordered list of dimension sizes, e.g. [2, 3, 4].
// Target shapes handed to the densifier may additionally contain
// Unconstrained entries, meaning "take whatever the input dictates".
//
// Validation is expressed as small pure functions that return nil or a
// wrapped sentinel naming the exact mismatch (expected vs. actual), so
// callers can both match with errors.Is and surface a precise message.
// No function in this package panics on user input.
//
// Complexity: every operation is O(rank); nothing allocates beyond its
// result.
package shape
