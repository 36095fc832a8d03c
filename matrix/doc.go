// Package matrix provides the row-major Dense matrix that holds node
// embeddings: row i is the vector of node i, one column per dimension.
//
// The surface is intentionally small and safe:
//
//   - NewDense(r, c) allocates a zero matrix; non-positive shapes return
//     ErrInvalidDimensions.
//   - At/Set and Row/SetRow bounds-check and return ErrOutOfRange instead of
//     panicking. Set and SetRow reject NaN and ±Inf with ErrNaNInf.
//   - Row returns a copy; RawRow returns a view for hot read-only loops.
//   - Clone, Equal, AllFinite and RowNorms cover what callers need to hand
//     out, compare and sanity-check embeddings.
//
// Numeric kernels (norms, finite checks) delegate to gonum's floats package.
//
// Complexity: NewDense/Clone O(r*c); At/Set O(1); Row/SetRow O(c).
package matrix
