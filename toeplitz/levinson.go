// Package toeplitz: direct solve via the Levinson–Durbin order recursion.
//
// Algorithm Outline (after normalizing the system by t[0]):
//  1. Order 1: x = b[0], backward vector y = −r[0], pivot β = 1.
//  2. Order k+1 from order k:
//     β ← (1 − α²)·β                    (Schur complement of the new minor)
//     μ ← (b[k] − Σ r[i]·x[k−1−i]) / β  (forward correction)
//     x ← x + μ·reverse(y), x[k] = μ
//     α ← −(r[k] + Σ r[i]·y[k−1−i]) / β (reflection coefficient)
//     y ← y + α·reverse(y), y[k] = α    (pairwise in-place, see below)
//  3. After order n, x solves T·x = b.
//
// The recursion is inherently sequential — each order consumes the previous
// order's vectors — and runs single-threaded.
//
// Complexity: O(n²) time, O(n) auxiliary memory. T is never formed.
package toeplitz

import (
	"fmt"
	"math"
)

// Diagnostics reports advisory numerical observations from a solve. It is
// informational: an ill-conditioned system still solves, the flag only
// warns that the answer may have lost digits.
type Diagnostics struct {
	// MinPivot is the smallest pivot magnitude met during the recursion,
	// relative to the t[0]-normalized system. 1 is perfectly conditioned;
	// values near PivotTol mean the solve barely cleared singularity.
	MinPivot float64
	// IllConditioned is set when MinPivot falls below WarnPivot.
	IllConditioned bool
}

// WarnPivot is the advisory threshold for Diagnostics.IllConditioned.
// Deliberately far above DefaultPivotTol: warnings fire long before the
// solve would fail.
const WarnPivot = 1e-8

// Solve solves T·x = b for the symmetric Toeplitz matrix T implied by t,
// without forming T.
//
// Every leading principal minor of T must be nonsingular. When the pivot at
// order k falls below PivotTol relative to the matrix scale, Solve fails
// with an error wrapping ErrSingularSystem that names k; it never returns a
// degraded answer. Returns ErrEmptySequence and ErrDimensionMismatch for
// shape violations.
func Solve(t, b []float64, opts ...Option) ([]float64, error) {
	x, _, err := SolveDiagnosed(t, b, opts...)

	return x, err
}

// SolveDiagnosed is Solve plus advisory conditioning diagnostics. The
// diagnostics never turn into errors — a heuristically ill-conditioned
// system still returns its solution.
func SolveDiagnosed(t, b []float64, opts ...Option) ([]float64, Diagnostics, error) {
	n := len(t)
	if n == 0 {
		return nil, Diagnostics{}, ErrEmptySequence
	}
	if len(b) != n {
		return nil, Diagnostics{}, fmt.Errorf("Solve: len(b)=%d, n=%d: %w", len(b), n, ErrDimensionMismatch)
	}

	o := gatherOptions(opts)

	// Normalize by t[0]; its magnitude is the matrix scale, so from here on
	// pivot checks are relative checks.
	scale := 0.0
	for _, ti := range t {
		if a := math.Abs(ti); a > scale {
			scale = a
		}
	}
	if scale == 0 || math.Abs(t[0]) <= o.pivotTol*scale {
		return nil, Diagnostics{}, singularAt(1)
	}

	x := make([]float64, n)
	x[0] = b[0] / t[0]
	minPivot := 1.0 // the order-1 pivot of the normalized system
	if n == 1 {
		return x, Diagnostics{MinPivot: minPivot}, nil
	}

	// r is the normalized off-diagonal sequence, rhs the normalized b.
	r := make([]float64, n-1)
	for i := range r {
		r[i] = t[i+1] / t[0]
	}
	y := make([]float64, n-1) // backward (Yule–Walker) vector, order k uses y[0..k-1]
	y[0] = -r[0]
	alpha := -r[0]
	beta := 1.0

	for k := 1; k < n; k++ {
		beta *= 1 - alpha*alpha
		if math.Abs(beta) <= o.pivotTol {
			return nil, Diagnostics{}, singularAt(k + 1)
		}
		if p := math.Abs(beta); p < minPivot {
			minPivot = p
		}

		// Forward correction for the new equation.
		s := b[k] / t[0]
		for i := 0; i < k; i++ {
			s -= r[i] * x[k-1-i]
		}
		mu := s / beta
		for i := 0; i < k; i++ {
			x[i] += mu * y[k-1-i]
		}
		x[k] = mu

		if k == n-1 {
			break
		}

		// Next reflection coefficient.
		s = r[k]
		for i := 0; i < k; i++ {
			s += r[i] * y[k-1-i]
		}
		alpha = -s / beta

		// y ← y + α·reverse(y), updated pairwise so every read sees the
		// order-k values.
		for i, j := 0, k-1; i < j; i, j = i+1, j-1 {
			yi, yj := y[i], y[j]
			y[i] = yi + alpha*yj
			y[j] = yj + alpha*yi
		}
		if k%2 == 1 {
			mid := (k - 1) / 2
			y[mid] += alpha * y[mid]
		}
		y[k] = alpha
	}

	return x, Diagnostics{MinPivot: minPivot, IllConditioned: minPivot < WarnPivot}, nil
}

/// singularAt wraps ErrSingularSystem with the failing recursion order: the
// size of the leading principal minor found numerically singular.
func singularAt(order int) error {
	return fmt.Errorf("Solve: leading principal minor of order %d is numerically singular: %w", order, ErrSingularSystem)
}
