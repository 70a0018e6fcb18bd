// Package toeplitz implements fast operations on symmetric Toeplitz
// matrices represented by their generating sequence t[0..n−1], where the
// implied matrix has entry(i, j) = t[|i−j|]. The matrix itself is never
// formed.
//
// Operations:
//
//   - MulVec — O(n log n) matrix-vector multiply. The generating sequence
//     is embedded into a circulant of length m = next power of two ≥ 2n−1,
//     the product becomes a circular convolution, and the convolution is
//     computed with gonum's real-input FFT. Tiny systems (n below
//     DirectThreshold) take the exact O(n²) direct product instead; the
//     transform path reproduces the direct product to relative error below
//     1e-10 for well-conditioned double-precision inputs.
//
//   - Solve — O(n²) time, O(n) auxiliary memory direct solve of T·x = b via
//     the classical Levinson–Durbin order recursion. Each order k derives
//     its forward and backward vectors from order k−1; the recursion
//     requires every leading principal minor of T to be nonsingular. A
//     pivot at order k that is zero or negligible relative to the matrix
//     scale fails with ErrSingularSystem identifying k — the solver never
//     substitutes a degraded answer.
//
//   - SolveDiagnosed — Solve plus advisory Diagnostics. The smallest pivot
//     met during the recursion is reported, and pivots below WarnPivot set
//     IllConditioned. Diagnostics never turn into errors.
//
// Both operations are synchronous, allocate only transient buffers, and
// leave their inputs untouched.
package toeplitz
