// Package gramian: the Generic representation — the universal O(n·m)
// fallback every specialized path must agree with to rounding.
package gramian

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gram/kernel"
)

// Generic is the unstructured lazy Gramian: a borrowed kernel plus borrowed
// row/column point sequences. Entries are computed on every access and never
// cached wholesale.
type Generic struct {
	k       kernel.Kernel
	rowPts  [][]float64
	colPts  [][]float64
	shared  bool // rowPts and colPts are the same sequence
	workers int
}

// Rows returns |rowPoints|. Complexity: O(1).
func (g *Generic) Rows() int {
	return len(g.rowPts)
}

// Cols returns |colPoints|. Complexity: O(1).
func (g *Generic) Cols() int {
	return len(g.colPts)
}

// Symmetric reports whether row and column points are the same sequence, so
// that the matrix is symmetric whenever the kernel is.
func (g *Generic) Symmetric() bool {
	return g.shared
}

// At returns kernel(rowPoints[i], colPoints[j]).
// Pure: no caching, no side effects. Complexity: one kernel call.
func (g *Generic) At(i, j int) (float64, error) {
	if i < 0 || i >= len(g.rowPts) || j < 0 || j >= len(g.colPts) {
		return 0, fmt.Errorf("Generic.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return g.k.Eval(g.rowPts[i], g.colPts[j]), nil
}

// MulVec computes the naive matrix-vector product: for each row i it
// accumulates Σⱼ kernel(rowPoints[i], colPoints[j])·v[j].
//
// This is the universal fallback all specialized paths are measured
// against. With Workers > 1 rows are fanned out over an errgroup; each
// worker owns a disjoint slice of the output, so no locking is needed —
// kernel evaluation is pure.
//
// Complexity: O(n·m) kernel calls. Returns ErrDimensionMismatch if
// len(v) != Cols().
func (g *Generic) MulVec(v []float64) ([]float64, error) {
	if len(v) != len(g.colPts) {
		return nil, fmt.Errorf("Generic.MulVec: len(v)=%d, cols=%d: %w", len(v), len(g.colPts), ErrDimensionMismatch)
	}

	out := make([]float64, len(g.rowPts))
	if g.workers <= 1 || len(g.rowPts) < 2 {
		g.mulRows(out, v, 0, len(g.rowPts))
		return out, nil
	}

	// Partition rows into contiguous chunks, one per worker.
	grp := new(errgroup.Group)
	grp.SetLimit(g.workers)
	chunk := (len(g.rowPts) + g.workers - 1) / g.workers
	for lo := 0; lo < len(g.rowPts); lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > len(g.rowPts) {
			hi = len(g.rowPts)
		}
		grp.Go(func() error {
			g.mulRows(out, v, lo, hi)
			return nil
		})
	}
	// Workers cannot fail; Wait only synchronizes completion.
	_ = grp.Wait()

	return out, nil
}

// mulRows accumulates rows [lo, hi) of the product into out.
func (g *Generic) mulRows(out, v []float64, lo, hi int) {
	for i := lo; i < hi; i++ {
		x := g.rowPts[i]
		var acc float64
		for j, y := range g.colPts {
			acc += g.k.Eval(x, y) * v[j]
		}
		out[i] = acc
	}
}
