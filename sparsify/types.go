// Package sparsify: sentinel errors, options and the triplet result type.
package sparsify

import (
	"errors"
	"math"
)

// Sentinel errors for sparsification.
var (
	// ErrNilMatrix indicates a nil Matrix argument.
	ErrNilMatrix = errors.New("sparsify: nil matrix")
	// ErrBadTolerance indicates a negative or NaN tolerance.
	ErrBadTolerance = errors.New("sparsify: tolerance must be >= 0")
	// ErrDimensionMismatch indicates the matrix shape does not match the
	// point set (the matrix must be square over exactly those points).
	ErrDimensionMismatch = errors.New("sparsify: matrix shape must match point count")
	// ErrRaggedPoints indicates points that do not share a fixed dimension.
	ErrRaggedPoints = errors.New("sparsify: points must share a fixed dimension")
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultMaxNeighbors bounds the per-row candidate set when no Radius
	// is configured.
	DefaultMaxNeighbors = 32
)

// Options selects the neighbor policy.
type Options struct {
	radius       float64 // > 0 ⇒ all points within radius
	maxNeighbors int     // used when radius == 0
}

// Option mutates Options during a call.
type Option func(*Options)

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{radius: 0, maxNeighbors: DefaultMaxNeighbors}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithRadius keeps, per row, every point within r of the row's point.
// Panics on r <= 0 or non-finite r (programmer error).
func WithRadius(r float64) Option {
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		panic("sparsify: WithRadius requires a positive finite radius")
	}

	return func(o *Options) { o.radius = r }
}

// WithMaxNeighbors bounds the per-row candidate set to the n nearest
// points. Ignored when a Radius is set. Panics on n < 1.
func WithMaxNeighbors(n int) Option {
	if n < 1 {
		panic("sparsify: WithMaxNeighbors requires n >= 1")
	}

	return func(o *Options) { o.maxNeighbors = n }
}

// Entry is one retained coordinate-form matrix entry.
type Entry struct {
	Row, Col int
	Val      float64
}

// Triplets is the sparse result in coordinate (COO) form, entries ordered
// row-major. Immutable after construction.
type Triplets struct {
	rows, cols int
	entries    []Entry
}

// Shape returns the logical (rows, cols) of the sparse matrix.
func (t *Triplets) Shape() (rows, cols int) {
	return t.rows, t.cols
}

// NNZ returns the number of retained entries.
func (t *Triplets) NNZ() int {
	return len(t.entries)
}

// Entries returns a copy of the retained entries in row-major order.
func (t *Triplets) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)

	return out
}
