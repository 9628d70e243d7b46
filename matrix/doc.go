// Package matrix offers the boolean matrix representations the matcher works on.
//
// The matrix package provides:
//
//   - Bool: a dense rows×cols boolean matrix stored as packed 64-bit words,
//     one contiguous run of words per row. Row scans (emptiness, counts,
//     next set column) cost O(cols/64).
//   - Adjacency: an immutable n×n symmetric boolean adjacency with zero
//     diagonal, a stable vertex index, cached degrees and sorted neighbour
//     lists. Built from a core.Graph, an index edge list, or raw rows.
//   - Validators for square/symmetric/zero-diagonal boolean row sets.
//
// Matrices are best for dense or small graphs where O(V²) memory and
// O(V² + E) build time are acceptable, which is the regime of exhaustive
// subgraph matching.
//
// Errors are package sentinels (ErrBadShape, ErrOutOfRange, ...) wrapped with
// the operation name; branch with errors.Is.
package matrix
