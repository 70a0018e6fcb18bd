// Package gramian provides lazy matrix views over a kernel and one or two
// point sequences, plus the one-shot structure detector that upgrades a view
// to a specialized representation when the problem data allows it.
//
// The Matrix interface
//
//	Rows() / Cols()  — logical size, (|rowPoints|, |colPoints|)
//	At(i, j)         — kernel(rowPoints[i], colPoints[j]), computed on demand
//	MulVec(v)        — matrix-vector product, fastest available path
//
// Representations:
//
//   - Generic — the universal fallback. At is a single kernel call; MulVec
//     is the naive O(n·m) accumulation, optionally parallelized across rows.
//   - ToeplitzView — emitted when the detector proves entry(i,j) depends on
//     |i−j| only. MulVec runs the O(n log n) circulant-FFT multiply and
//     Solve the O(n²) Levinson–Durbin recursion, both from package toeplitz.
//
// Structure detection (runs once, inside New):
//
//  1. Distinct row/col point sets, or n ≤ 1 → Generic.
//  2. Points must form a regular 1-D grid: the O(n) spacing scan accepts
//     only constant spacing within Epsilon (relative). Ambiguity prefers
//     Generic — a wrong Generic costs speed, a wrong ToeplitzView would
//     cost correctness.
//  3. The kernel trait must be Isotropic or StationaryLinearFunctional, and
//     the kernel must probe symmetric on the first grid pair.
//
// Multi-dimensional and block-Toeplitz layouts are never specialized; this
// is an intentional limitation of the detector, left as an extension point.
//
// Views borrow their kernel and points. The caller must not mutate either
// while any view or solve is in flight; the package does not detect such
// mutation.
package gramian
