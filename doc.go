// Package gram computes with large Gramian (kernel) matrices without ever
// materializing them densely — from lazy matrix views to structure-aware
// fast multiplies and direct solves.
//
// 🚀 What is gram?
//
//	A structured kernel-matrix engine that brings together:
//		• Kernels: tagged callables, algebraic combinators & a small catalogue
//		• Gramians: lazy (kernel, points) matrix views, entries on demand
//		• Structure detection: one-shot O(n) Toeplitz recognition at build time
//		• Toeplitz engine: O(n log n) circulant-FFT multiply, O(n²) Levinson solve
//		• Barnes–Hut: tree-based O(n log n) approximate multiply, tunable by θ
//		• Sparsify: tolerance pruning over k-d tree neighborhoods
//
// ✨ Why choose gram?
//
//   - Lazy by default – entry(i,j) is always kernel(xᵢ, yⱼ), never a cache
//   - Safe fast paths – every specialization matches the naive product to
//     stated tolerance; approximation only when explicitly requested (θ > 0)
//   - Deterministic – no global state, no hidden randomness
//   - Honest errors – sentinel errors, errors.Is-friendly, no silent fallback
//     in the structured direction
//
// Under the hood, everything is organized in five subpackages:
//
//	kernel/    — kernel functions, structural traits & combinators
//	gramian/   — the Matrix interface, dense fallback & structure detector
//	toeplitz/  — circulant-embedding multiply & Levinson–Durbin solve
//	barneshut/ — spatial partition tree & θ-controlled approximate multiply
//	sparsify/  — nearest-neighbor tolerance pruning into triplet form
//
// Quick sketch:
//
//	    points ──▶ gramian.New(k, pts) ──▶ ToeplitzView ──▶ O(n log n) MulVec
//	                      │                                  O(n²)      Solve
//	                      └────────────▶ Dense ──▶ O(n·m) MulVec (fallback)
//
// Dive into each package's doc.go for algorithm outlines, complexity notes
// and runnable examples.
//
//	go get github.com/katalvlaran/gram
package gram
