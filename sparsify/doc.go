// Package sparsify prunes a lazy Gramian into an explicit sparse triplet
// matrix: it keeps only the entries whose magnitude exceeds a tolerance,
// and it only ever inspects entries between spatially neighboring points.
//
// The package is a downstream consumer of the Gramian contract — it reads
// entries exclusively through Matrix.At and never asks for a multiply. The
// neighbor structure comes from a k-d tree over the point set; per row the
// candidate set is either every point within a fixed Radius or the
// MaxNeighbors nearest points. Entries outside the candidate set are
// treated as zero without being evaluated, which is what makes the
// procedure cheaper than a dense O(n²) sweep for decaying kernels.
//
// The result is coordinate (COO) form: deterministic row-major ordering,
// ready for handoff to any sparse algebra downstream.
package sparsify
