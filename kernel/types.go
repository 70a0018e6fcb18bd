// Package kernel: core types and sentinel errors.
// This file defines the Trait enumeration, the Func callable signature, the
// immutable Kernel value and the package sentinel error set. All constructors
// in this package return these sentinels; tests match them via errors.Is.
package kernel

import "errors"

// Sentinel errors for kernel construction.
var (
	// ErrNilFunc indicates that a nil callable was passed to New.
	ErrNilFunc = errors.New("kernel: nil kernel function")
	// ErrBadTrait indicates a Trait value outside the closed enumeration.
	ErrBadTrait = errors.New("kernel: unknown trait")
	// ErrBadLengthscale indicates a non-positive or non-finite lengthscale.
	ErrBadLengthscale = errors.New("kernel: lengthscale must be positive and finite")
	// ErrBadScale indicates a non-finite scale factor passed to Scale.
	ErrBadScale = errors.New("kernel: scale factor must be finite")
	// ErrBadPower indicates an exponent < 1 passed to Power.
	ErrBadPower = errors.New("kernel: power must be a positive integer")
	// ErrBadBlock indicates a BlockKernel with non-positive block dimensions.
	ErrBadBlock = errors.New("kernel: block dimensions must be > 0")
	// ErrBlockIndex indicates a block entry index outside the block shape.
	ErrBlockIndex = errors.New("kernel: block entry index out of range")
)

// Trait classifies the structural dependence of a kernel on its inputs.
//
// The set is closed: structure detectors know the algebra of exactly these
// four values, and combinators compose within the set. An open registry was
// considered and rejected — a third-party tag no engine can exploit buys
// nothing but ambiguity.
//
//   - Generic    — no structure assumed; k(x, y) arbitrary.
//   - Isotropic  — k depends only on ‖x − y‖ (a special case of stationary).
//   - DotProduct — k depends only on ⟨x, y⟩.
//   - StationaryLinearFunctional — k depends only on the displacement x − y.
type Trait int

const (
	// Generic kernels carry no exploitable structure.
	Generic Trait = iota
	// Isotropic kernels depend only on the distance between their inputs.
	Isotropic
	// DotProduct kernels depend only on the inner product of their inputs.
	DotProduct
	// StationaryLinearFunctional kernels depend only on the displacement
	// between their inputs. Isotropic implies this; the converse is false.
	StationaryLinearFunctional
)

// String returns the canonical name of the trait.
func (t Trait) String() string {
	switch t {
	case Generic:
		return "Generic"
	case Isotropic:
		return "Isotropic"
	case DotProduct:
		return "DotProduct"
	case StationaryLinearFunctional:
		return "StationaryLinearFunctional"
	default:
		return "Trait(?)"
	}
}

// valid reports whether t is a member of the closed enumeration.
func (t Trait) valid() bool {
	return t >= Generic && t <= StationaryLinearFunctional
}

// Stationary reports whether the trait guarantees dependence on displacement
// only. Both Isotropic and StationaryLinearFunctional qualify; they are the
// traits the Toeplitz detector accepts.
func (t Trait) Stationary() bool {
	return t == Isotropic || t == StationaryLinearFunctional
}

// Func is a pure scalar kernel callable: it maps two points to a value and
// must be free of side effects. Implementations must not retain or mutate
// their arguments.
type Func func(x, y []float64) float64

// Kernel is an immutable (callable, Trait) pair. The zero Kernel is invalid;
// construct via New or one of the catalogue constructors.
type Kernel struct {
	fn    Func
	trait Trait
}

// New builds a Kernel from a callable and its structural trait.
// Returns ErrNilFunc for a nil callable and ErrBadTrait for a trait outside
// the enumeration. Complexity: O(1).
func New(fn Func, trait Trait) (Kernel, error) {
	if fn == nil {
		return Kernel{}, ErrNilFunc
	}
	if !trait.valid() {
		return Kernel{}, ErrBadTrait
	}

	return Kernel{fn: fn, trait: trait}, nil
}

// Eval applies the kernel to a pair of points.
// The call panics on the zero Kernel; use Valid to guard boundary input.
func (k Kernel) Eval(x, y []float64) float64 {
	return k.fn(x, y)
}

// Trait returns the structural classification resolved at construction.
func (k Kernel) Trait() Trait {
	return k.trait
}

// Valid reports whether the Kernel carries a callable (i.e. is not the zero
// value). Engines check this once at construction time.
func (k Kernel) Valid() bool {
	return k.fn != nil
}
