// Package gramian — public construction facades.
//
// New is the single factory the design funnels through: it validates the
// inputs, runs the structure detector exactly once, and returns the most
// specialized Matrix available. Callers dispatch nothing themselves —
// subsequent MulVec/Solve calls ride the concrete representation.
package gramian

import (
	"fmt"

	"github.com/katalvlaran/gram/kernel"
)

// New constructs a lazy Gramian over (k, rowPts, colPts).
//
// colPts == nil means "same as rowPts" (the square, potentially symmetric
// case). The structure detector runs here, once: the result is either a
// *ToeplitzView (regular 1-D grid + stationary symmetric kernel) or a
// *Generic. Detection ambiguity silently degrades to *Generic — it affects
// speed, never correctness, and never raises.
//
// The view borrows k and the point slices; they must stay unmodified for
// its lifetime.
//
// Errors: ErrNilKernel on an invalid kernel; ErrRaggedPoints when a point
// sequence mixes dimensions; ErrDimensionMismatch when row and column
// points disagree on dimension. Complexity: O(n·d) validation + O(n)
// detection.
func New(k kernel.Kernel, rowPts, colPts [][]float64, opts ...Option) (Matrix, error) {
	if !k.Valid() {
		return nil, ErrNilKernel
	}
	if colPts == nil {
		colPts = rowPts
	}

	rdim, err := pointDim(rowPts)
	if err != nil {
		return nil, fmt.Errorf("New: row points: %w", err)
	}
	cdim, err := pointDim(colPts)
	if err != nil {
		return nil, fmt.Errorf("New: column points: %w", err)
	}
	if len(rowPts) > 0 && len(colPts) > 0 && rdim != cdim {
		return nil, fmt.Errorf("New: row dim %d vs column dim %d: %w", rdim, cdim, ErrDimensionMismatch)
	}

	o := gatherOptions(opts)
	if t, ok := detect(k, rowPts, colPts, o.epsilon); ok {
		return &ToeplitzView{t: t}, nil
	}

	return &Generic{
		k:       k,
		rowPts:  rowPts,
		colPts:  colPts,
		shared:  samePoints(rowPts, colPts),
		workers: o.workers,
	}, nil
}

// NewFromGrid constructs a Gramian over the regular 1-D grid g, skipping
// the spacing scan entirely — the descriptor is the proof of regularity.
// A stationary kernel still gets the symmetry probe before specializing;
// non-stationary kernels fall back to a Generic over the materialized
// points.
//
// Errors: ErrNilKernel, ErrBadGrid. Complexity: O(Count).
func NewFromGrid(k kernel.Kernel, g Grid, opts ...Option) (Matrix, error) {
	if !k.Valid() {
		return nil, ErrNilKernel
	}
	if !g.valid() {
		return nil, fmt.Errorf("NewFromGrid: {start=%v step=%v count=%d}: %w", g.Start, g.Step, g.Count, ErrBadGrid)
	}

	o := gatherOptions(opts)
	pts := g.Points()
	// detect re-checks stationarity and symmetry but its spacing scan is
	// trivially satisfied by construction.
	if t, ok := detect(k, pts, pts, o.epsilon); ok {
		return &ToeplitzView{t: t}, nil
	}

	return &Generic{k: k, rowPts: pts, colPts: pts, shared: true, workers: o.workers}, nil
}

// Solve is the direct-solve facade: it succeeds only for Toeplitz-backed
// matrices and fails with ErrNotToeplitz for every other representation —
// there is no dense fallback solve in this engine.
func Solve(m Matrix, b []float64) ([]float64, error) {
	v, ok := m.(*ToeplitzView)
	if !ok {
		return nil, ErrNotToeplitz
	}

	return v.Solve(b)
}

// pointDim returns the shared dimension of a point sequence, or
// ErrRaggedPoints. The empty sequence has dimension 0.
func pointDim(pts [][]float64) (int, error) {
	if len(pts) == 0 {
		return 0, nil
	}
	d := len(pts[0])
	for _, p := range pts[1:] {
		if len(p) != d {
			return 0, ErrRaggedPoints
		}
	}

	return d, nil
}
