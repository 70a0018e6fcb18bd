// Package gramian: the Matrix interface, the regular-grid descriptor and
// the functional options shared by every representation.
package gramian

import (
	"math"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultEpsilon is the relative tolerance of the grid spacing scan.
	// Spacings within this relative deviation of the first spacing count as
	// regular.
	DefaultEpsilon = 1e-9

	// DefaultWorkers is the number of row workers used by the generic
	// multiply. 1 means fully sequential; values above 1 fan rows out over
	// an errgroup with disjoint output slots.
	DefaultWorkers = 1
)

// Matrix is the lazy Gramian view: logical size, on-demand entries and the
// fastest available matrix-vector product. Implementations are Generic,
// ToeplitzView, and any wrapper honoring the same contract (package
// barneshut provides the sanctioned approximate one).
//
// Entries are pure: repeated At(i, j) calls return identical values and
// MulVec has no observable side effects on the matrix.
type Matrix interface {
	// Rows returns the number of rows, |rowPoints|.
	Rows() int
	// Cols returns the number of columns, |colPoints|.
	Cols() int
	// At returns kernel(rowPoints[i], colPoints[j]), or ErrOutOfRange.
	At(i, j int) (float64, error)
	// MulVec returns the matrix-vector product, or ErrDimensionMismatch if
	// len(v) != Cols().
	MulVec(v []float64) ([]float64, error)
}

// Grid is a compact descriptor of a regular 1-D point set:
// Start, Start+Step, ..., Start+(Count−1)·Step. It lets callers skip both
// the point materialization and the detector's spacing scan.
type Grid struct {
	Start float64
	Step  float64
	Count int
}

// valid reports whether the descriptor is usable.
func (g Grid) valid() bool {
	if g.Count < 0 {
		return false
	}
	if math.IsNaN(g.Start) || math.IsInf(g.Start, 0) {
		return false
	}
	if math.IsNaN(g.Step) || math.IsInf(g.Step, 0) {
		return false
	}

	return true
}

// Points materializes the descriptor as a point sequence of dimension 1.
// Complexity: O(Count) time and memory.
func (g Grid) Points() [][]float64 {
	pts := make([][]float64, g.Count)
	for i := range pts {
		pts[i] = []float64{g.Start + float64(i)*g.Step}
	}

	return pts
}

// Options carries the tunable parameters of construction and multiply.
// Fields are read through the functional Option constructors; the zero
// Options is never used directly — defaultOptions() is.
type Options struct {
	epsilon float64
	workers int
}

// Option mutates Options during construction.
type Option func(*Options)

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{epsilon: DefaultEpsilon, workers: DefaultWorkers}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithEpsilon sets the relative tolerance of the grid spacing scan.
// Panics on eps <= 0 or non-finite eps: a nonsensical tolerance is a
// programmer error, not a runtime condition.
func WithEpsilon(eps float64) Option {
	if eps <= 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("gramian: WithEpsilon requires a positive finite tolerance")
	}

	return func(o *Options) { o.epsilon = eps }
}

// WithWorkers sets the number of parallel row workers for the generic
// multiply. Panics on n < 1 (programmer error).
func WithWorkers(n int) Option {
	if n < 1 {
		panic("gramian: WithWorkers requires n >= 1")
	}

	return func(o *Options) { o.workers = n }
}
