// Package barneshut: the θ-controlled approximate multiply.
package barneshut

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// MulVec approximates the product of the kernel matrix over the point set
// with v, honoring the admissibility parameter fixed at construction.
//
// Per call it first accumulates Σ v over every tree node in one post-order
// pass (the vector-dependent half of the node summary), then traverses the
// tree once per query point. θ = 0 reproduces the exact product to
// floating-point tolerance; the traversal then visits every leaf.
//
// Query points are independent, so Workers > 1 fans them out over an
// errgroup with disjoint output slots. Returns ErrDimensionMismatch if
// len(v) != point count.
func (f *Factorization) MulVec(v []float64) ([]float64, error) {
	if len(v) != len(f.pts) {
		return nil, fmt.Errorf("Factorization.MulVec: len(v)=%d, n=%d: %w", len(v), len(f.pts), ErrDimensionMismatch)
	}

	out := make([]float64, len(f.pts))
	if f.root == nil {
		return out, nil
	}

	sums := make([]float64, f.nnodes)
	f.accumulate(f.root, v, sums)

	if f.opts.workers <= 1 || len(f.pts) < 2 {
		for i := range f.pts {
			out[i] = f.traverse(f.root, f.pts[i], v, sums)
		}
		return out, nil
	}

	grp := new(errgroup.Group)
	grp.SetLimit(f.opts.workers)
	chunk := (len(f.pts) + f.opts.workers - 1) / f.opts.workers
	for lo := 0; lo < len(f.pts); lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > len(f.pts) {
			hi = len(f.pts)
		}
		grp.Go(func() error {
			for i := lo; i < hi; i++ {
				out[i] = f.traverse(f.root, f.pts[i], v, sums)
			}
			return nil
		})
	}
	_ = grp.Wait()

	return out, nil
}

// accumulate fills sums[node.id] = Σ v over the node's points, post-order.
func (f *Factorization) accumulate(nd *node, v, sums []float64) float64 {
	var s float64
	if nd.leaf() {
		for _, pi := range f.idx[nd.lo:nd.hi] {
			s += v[pi]
		}
	} else {
		s = f.accumulate(nd.left, v, sums) + f.accumulate(nd.right, v, sums)
	}
	sums[nd.id] = s

	return s
}

// traverse returns the (approximate) row of the product for query point x.
func (f *Factorization) traverse(nd *node, x []float64, v, sums []float64) float64 {
	// Far-field test. Strict ‘<’ makes θ = 0 reject every node, including
	// zero-diameter ones, so the θ = 0 path is exact by construction.
	if !nd.leaf() {
		dist := euclidean(x, nd.centroid)
		if dist > 0 && nd.diameter/dist < f.theta {
			return f.k.Eval(x, nd.centroid) * sums[nd.id]
		}
		return f.traverse(nd.left, x, v, sums) + f.traverse(nd.right, x, v, sums)
	}

	// Near field: exact pairwise evaluation.
	var acc float64
	for _, pi := range f.idx[nd.lo:nd.hi] {
		acc += f.k.Eval(x, f.pts[pi]) * v[pi]
	}

	return acc
}

// euclidean returns ‖a − b‖₂.
func euclidean(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}

	return math.Sqrt(s)
}
