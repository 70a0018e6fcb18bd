// Package barneshut: factorization construction — the space-partition tree.
//
// Build strategy: recursive bisection. Each call computes the bounding box
// of its index range, picks the widest axis, sorts the range along it and
// splits at the spatial median. Ranges at or below LeafSize stop. The
// permutation trick (nodes own [lo, hi) slices of one shared index array)
// keeps every node allocation-free beyond its centroid.
//
// Complexity: O(n log² n) time from the per-level sorts, O(n) extra memory
// for the permutation plus O(n/LeafSize) nodes.
package barneshut

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/gram/kernel"
)

// Factorization wraps a kernel and its point set with a cached spatial
// tree, providing the approximate MulVec. It satisfies the same
// {Rows, Cols, At, MulVec} contract as the exact Gramian representations —
// with MulVec being the one sanctioned approximate path.
type Factorization struct {
	k     kernel.Kernel
	pts   [][]float64
	theta float64
	opts  Options

	idx    []int // permutation of point indices; nodes own subranges
	root   *node // nil for the empty point set
	nnodes int
	stats  Stats
}

// New builds the factorization over (k, pts) with admissibility parameter
// theta. The tree is built here, once; MulVec only traverses it. The
// factorization borrows k and pts — rebuild after any point mutation.
//
// Errors: ErrNilKernel, ErrBadTheta, ErrRaggedPoints.
// Complexity: O(n log² n).
func New(k kernel.Kernel, pts [][]float64, theta float64, opts ...Option) (*Factorization, error) {
	if !k.Valid() {
		return nil, ErrNilKernel
	}
	if theta < 0 || math.IsNaN(theta) || math.IsInf(theta, 0) {
		return nil, fmt.Errorf("New: theta=%v: %w", theta, ErrBadTheta)
	}
	if len(pts) > 0 {
		d := len(pts[0])
		for _, p := range pts[1:] {
			if len(p) != d {
				return nil, ErrRaggedPoints
			}
		}
	}

	f := &Factorization{
		k:     k,
		pts:   pts,
		theta: theta,
		opts:  gatherOptions(opts),
		idx:   make([]int, len(pts)),
	}
	for i := range f.idx {
		f.idx[i] = i
	}
	if len(pts) > 0 {
		f.root = f.build(0, len(pts), 0)
	}
	f.stats.Nodes = f.nnodes

	return f, nil
}

// build constructs the subtree over idx[lo:hi] at the given depth.
func (f *Factorization) build(lo, hi, depth int) *node {
	nd := &node{id: f.nnodes, lo: lo, hi: hi}
	f.nnodes++
	if depth > f.stats.Height {
		f.stats.Height = depth
	}

	dim := len(f.pts[f.idx[lo]])
	lower := make([]float64, dim)
	upper := make([]float64, dim)
	copy(lower, f.pts[f.idx[lo]])
	copy(upper, f.pts[f.idx[lo]])
	nd.centroid = make([]float64, dim)

	for _, pi := range f.idx[lo:hi] {
		p := f.pts[pi]
		for a := 0; a < dim; a++ {
			if p[a] < lower[a] {
				lower[a] = p[a]
			}
			if p[a] > upper[a] {
				upper[a] = p[a]
			}
			nd.centroid[a] += p[a]
		}
	}

	widest, extent := 0, 0.0
	var diag float64
	invN := 1 / float64(hi-lo)
	for a := 0; a < dim; a++ {
		nd.centroid[a] *= invN
		side := upper[a] - lower[a]
		diag += side * side
		if side > extent {
			widest, extent = a, side
		}
	}
	nd.diameter = math.Sqrt(diag)

	// Stop on small ranges or degenerate boxes (all points coincident).
	if hi-lo <= f.opts.leafSize || extent == 0 {
		f.stats.Leaves++
		return nd
	}

	// Spatial-median split along the widest axis.
	seg := f.idx[lo:hi]
	sort.Slice(seg, func(i, j int) bool {
		return f.pts[seg[i]][widest] < f.pts[seg[j]][widest]
	})
	mid := (lo + hi) / 2
	nd.left = f.build(lo, mid, depth+1)
	nd.right = f.build(mid, hi, depth+1)

	return nd
}

// Rows returns the point count; the factorization is always square.
func (f *Factorization) Rows() int {
	return len(f.pts)
}

// Cols returns the point count.
func (f *Factorization) Cols() int {
	return len(f.pts)
}

// At returns the exact entry kernel(pts[i], pts[j]) — entries are never
// approximated, only MulVec is.
func (f *Factorization) At(i, j int) (float64, error) {
	if i < 0 || i >= len(f.pts) || j < 0 || j >= len(f.pts) {
		return 0, fmt.Errorf("Factorization.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return f.k.Eval(f.pts[i], f.pts[j]), nil
}

// Theta returns the admissibility parameter fixed at construction.
func (f *Factorization) Theta() float64 {
	return f.theta
}

// TreeStats returns the shape of the cached tree.
func (f *Factorization) TreeStats() Stats {
	return f.stats
}
