// Package toeplitz: options and sentinel errors.
package toeplitz

import (
	"errors"
	"math"
)

// Sentinel errors for Toeplitz operations.
var (
	// ErrEmptySequence indicates an empty generating sequence.
	ErrEmptySequence = errors.New("toeplitz: generating sequence must be non-empty")
	// ErrDimensionMismatch indicates len(v) != len(t) on MulVec or Solve.
	ErrDimensionMismatch = errors.New("toeplitz: vector length must match generating sequence length")
	// ErrSingularSystem indicates a numerically singular leading principal
	// minor met during the Levinson recursion. The wrapping error names the
	// failing order; match the sentinel with errors.Is.
	ErrSingularSystem = errors.New("toeplitz: singular system")
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultPivotTol is the relative threshold below which a Levinson
	// pivot counts as numerically singular. Pivots are measured against the
	// t[0]-normalized system, so the threshold is relative to matrix scale.
	DefaultPivotTol = 1e-12

	// DefaultDirectThreshold is the sequence length below which MulVec uses
	// the exact O(n²) direct product; the transform only pays off past it.
	DefaultDirectThreshold = 16
)

// Options carries the tunable parameters of the engine.
type Options struct {
	pivotTol        float64
	directThreshold int
}

// Option mutates Options during a call.
type Option func(*Options)

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{pivotTol: DefaultPivotTol, directThreshold: DefaultDirectThreshold}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithPivotTol sets the relative singularity threshold of Solve.
// Panics on non-positive or non-finite tol (programmer error).
func WithPivotTol(tol float64) Option {
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("toeplitz: WithPivotTol requires a positive finite tolerance")
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithDirectThreshold sets the length below which MulVec multiplies
// directly. 0 forces the transform path for every n. Panics on negative n.
func WithDirectThreshold(n int) Option {
	if n < 0 {
		panic("toeplitz: WithDirectThreshold requires n >= 0")
	}

	return func(o *Options) { o.directThreshold = n }
}
