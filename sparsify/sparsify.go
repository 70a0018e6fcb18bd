// Package sparsify: the pruning procedure itself.
package sparsify

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/katalvlaran/gram/gramian"
)

// Sparsify prunes the square Gramian m over pts into triplet form.
//
// Per row i it collects a spatial candidate set — every point within Radius
// of pts[i], or its MaxNeighbors nearest points — evaluates m.At(i, j) for
// the candidates only, and keeps entries with |value| > tol. Candidate
// columns are visited in ascending order, so the output is deterministic
// row-major COO.
//
// Matrix entries outside the candidate set are never evaluated. Kernel
// values, NaN included, pass through unmodified; errors from At propagate
// unchanged.
//
// Errors: ErrNilMatrix, ErrBadTolerance, ErrRaggedPoints,
// ErrDimensionMismatch. Complexity: O(n log n) tree build plus
// O(n·c·(log n + cost(At))) for candidate sets of size c.
func Sparsify(m gramian.Matrix, pts [][]float64, tol float64, opts ...Option) (*Triplets, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if tol < 0 || math.IsNaN(tol) {
		return nil, fmt.Errorf("Sparsify: tol=%v: %w", tol, ErrBadTolerance)
	}
	if m.Rows() != len(pts) || m.Cols() != len(pts) {
		return nil, fmt.Errorf("Sparsify: matrix %dx%d over %d points: %w", m.Rows(), m.Cols(), len(pts), ErrDimensionMismatch)
	}

	out := &Triplets{rows: len(pts), cols: len(pts)}
	if len(pts) == 0 {
		return out, nil
	}

	dim := len(pts[0])
	data := make(indexedPoints, len(pts))
	for i, p := range pts {
		if len(p) != dim {
			return nil, ErrRaggedPoints
		}
		data[i] = indexedPoint{pos: p, id: i}
	}

	o := gatherOptions(opts)
	tree := kdtree.New(data, false)

	cols := make([]int, 0, o.maxNeighbors)
	for i, p := range pts {
		cols = neighbors(tree, indexedPoint{pos: p, id: i}, o, cols[:0])
		sort.Ints(cols)

		for _, j := range cols {
			val, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			if math.Abs(val) > tol {
				out.entries = append(out.entries, Entry{Row: i, Col: j, Val: val})
			}
		}
	}

	return out, nil
}

// neighbors appends the candidate column indices for query q to dst.
// Radius mode keeps everything within the ball; otherwise the nearest
// MaxNeighbors points win. The query point itself is always a candidate —
// it is its own nearest neighbor.
func neighbors(tree *kdtree.Tree, q indexedPoint, o Options, dst []int) []int {
	if o.radius > 0 {
		// The kdtree measures squared Euclidean distances.
		keep := kdtree.NewDistKeeper(o.radius * o.radius)
		tree.NearestSet(keep, q)
		for _, c := range keep.Heap {
			if c.Comparable == nil {
				continue
			}
			dst = append(dst, c.Comparable.(indexedPoint).id)
		}

		return dst
	}

	keep := kdtree.NewNKeeper(o.maxNeighbors)
	tree.NearestSet(keep, q)
	for _, c := range keep.Heap {
		if c.Comparable == nil {
			continue
		}
		dst = append(dst, c.Comparable.(indexedPoint).id)
	}

	return dst
}
