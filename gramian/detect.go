// Package gramian: the one-shot structure detector.
//
// detect runs once, inside New, and decides whether a (kernel, points) pair
// earns a ToeplitzView. The scan is strictly O(n·d); it never performs or
// approximates a pairwise pass. Every ambiguous reading falls back to the
// generic path: misclassification in the structured direction is the one
// failure mode this file must rule out.
package gramian

import (
	"math"

	"github.com/katalvlaran/gram/kernel"
)

// samePoints reports whether rows and cols are the same point sequence.
// Identity of the backing arrays is checked first; otherwise an O(n·d)
// elementwise comparison decides. Exact equality is required — "almost the
// same points" is not a symmetric Gramian.
func samePoints(rows, cols [][]float64) bool {
	if len(rows) != len(cols) {
		return false
	}
	if len(rows) == 0 {
		return true
	}
	if &rows[0] == &cols[0] {
		return true
	}
	for i := range rows {
		if len(rows[i]) != len(cols[i]) {
			return false
		}
		for d := range rows[i] {
			if rows[i][d] != cols[i][d] {
				return false
			}
		}
	}

	return true
}

// gridStep inspects a 1-D point sequence for constant spacing.
// Returns (step, true) when every consecutive spacing agrees with the first
// within eps relative to the largest observed spacing magnitude; (0, false)
// otherwise. A sequence of identical points is a degenerate grid with step
// zero. Complexity: O(n).
func gridStep(pts [][]float64, eps float64) (float64, bool) {
	if len(pts) < 2 {
		return 0, false
	}

	// One pass: collect spacings' max magnitude and max deviation from the
	// first spacing.
	step := pts[1][0] - pts[0][0]
	scale := math.Abs(step)
	var dev float64
	for i := 2; i < len(pts); i++ {
		d := pts[i][0] - pts[i-1][0]
		if a := math.Abs(d); a > scale {
			scale = a
		}
		if e := math.Abs(d - step); e > dev {
			dev = e
		}
	}

	if scale == 0 {
		// All points coincide: regular with step 0.
		return 0, true
	}
	if dev > eps*scale {
		return 0, false
	}

	return step, true
}

// detect selects the most specialized representation for (k, rows, cols).
// Decision rule, in order:
//
//  1. rows != cols, or n <= 1, or dimension != 1 → no structure.
//  2. rows must form a regular 1-D grid (gridStep).
//  3. k's trait must be stationary (Isotropic or
//     StationaryLinearFunctional), and the kernel must probe symmetric on
//     the first grid pair — a stationary-tagged kernel that is not
//     symmetric cannot be folded to t(|i−j|).
//
// On success it returns the generating sequence t[j] = k(rows[0], rows[j]);
// by stationarity this equals kernel(0, j·step) for every row. Returns
// (nil, false) whenever any reading is ambiguous.
func detect(k kernel.Kernel, rows, cols [][]float64, eps float64) ([]float64, bool) {
	if !k.Trait().Stationary() {
		return nil, false
	}
	if len(rows) <= 1 || len(rows[0]) != 1 {
		return nil, false
	}
	if !samePoints(rows, cols) {
		return nil, false
	}
	if _, ok := gridStep(rows, eps); !ok {
		return nil, false
	}

	// Symmetry probe: one pair, O(1). Uses the grid's own points.
	a := k.Eval(rows[0], rows[1])
	b := k.Eval(rows[1], rows[0])
	if math.Abs(a-b) > eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b))) {
		return nil, false
	}

	t := make([]float64, len(rows))
	for j := range rows {
		t[j] = k.Eval(rows[0], rows[j])
	}

	return t, true
}
