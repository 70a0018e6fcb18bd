// Package barneshut: sentinel errors, options and the tree node layout.
package barneshut

import "errors"

// Sentinel errors for factorization construction and multiply.
var (
	// ErrNilKernel indicates an invalid (zero-value) kernel.
	ErrNilKernel = errors.New("barneshut: kernel carries no callable")
	// ErrBadTheta indicates a negative or NaN admissibility parameter.
	ErrBadTheta = errors.New("barneshut: theta must be >= 0 and finite")
	// ErrRaggedPoints indicates points that do not share a fixed dimension.
	ErrRaggedPoints = errors.New("barneshut: points must share a fixed dimension")
	// ErrDimensionMismatch indicates len(v) != number of points on MulVec.
	ErrDimensionMismatch = errors.New("barneshut: vector length must match point count")
	// ErrOutOfRange indicates an entry index outside the logical size.
	ErrOutOfRange = errors.New("barneshut: index out of range")
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultLeafSize is the maximum number of points a leaf holds before
	// the builder splits it. Small leaves sharpen the approximation but
	// deepen the tree.
	DefaultLeafSize = 8

	// DefaultWorkers is the number of query-point workers in MulVec.
	// 1 means fully sequential.
	DefaultWorkers = 1
)

// Options carries the tunable parameters of the factorization.
type Options struct {
	leafSize int
	workers  int
}

// Option mutates Options during construction.
type Option func(*Options)

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{leafSize: DefaultLeafSize, workers: DefaultWorkers}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLeafSize sets the split threshold. Panics on n < 1 (programmer error).
func WithLeafSize(n int) Option {
	if n < 1 {
		panic("barneshut: WithLeafSize requires n >= 1")
	}

	return func(o *Options) { o.leafSize = n }
}

// WithWorkers sets the number of parallel query workers for MulVec.
// Panics on n < 1 (programmer error).
func WithWorkers(n int) Option {
	if n < 1 {
		panic("barneshut: WithWorkers requires n >= 1")
	}

	return func(o *Options) { o.workers = n }
}

// node is one cell of the space-partition tree. Leaves have nil children
// and own the points idx[lo:hi]; internal nodes summarize their subtree by
// bounding box and centroid.
type node struct {
	id          int
	lo, hi      int // range into the owning factorization's idx permutation
	centroid    []float64
	diameter    float64 // bounding-box diagonal
	left, right *node
}

// leaf reports whether the node has no children.
func (nd *node) leaf() bool {
	return nd.left == nil
}

// Stats describes the built tree; useful for tuning LeafSize and θ.
type Stats struct {
	Nodes  int // total node count
	Leaves int // leaf count
	Height int // edges on the longest root-to-leaf path
}
