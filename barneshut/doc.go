// Package barneshut provides a tree-based approximate matrix-vector
// multiply for kernel (Gramian) matrices over a point set, trading accuracy
// for speed through a single admissibility parameter θ.
//
// Construction partitions the points into a binary space-partition tree:
// each level sorts along the widest axis of the node's bounding box and
// splits at the spatial median. Every node stores its bounding box, its
// geometric centroid and its index range; that summary is all the far-field
// approximation needs.
//
// Multiply protocol, per query point x:
//
//	At each node, admissible ⇔ diameter(node) / ‖x − centroid‖ < θ.
//	Admissible  → contribute kernel(x, centroid) · Σ v over the node, prune.
//	Inadmissible internal node → recurse into both children.
//	Leaf        → exact pairwise kernel evaluation.
//
// θ = 0 never admits a node, so the traversal reduces to the exact product.
// Larger θ prunes more aggressively; no closed-form error bound is claimed
// for arbitrary kernels — the approximate mode is validated empirically
// against the direct multiply. Expected cost is O(n·log n·d) for
// well-separated distributions versus O(n²·d) exact.
//
// The tree is built once and reused across calls. The factorization borrows
// its kernel and points; if the points change the caller must rebuild — no
// staleness detection is attempted.
package barneshut
