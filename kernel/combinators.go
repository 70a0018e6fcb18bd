// Package kernel: algebraic combinators.
//
// Each combinator is an explicit expression node: it wraps its operands in a
// fresh closure and computes the Trait of the combination structurally, per
// the algebra documented on combineTrait. Traits are decided here, once, at
// combination time — never re-inferred during evaluation.
package kernel

import "math"

// combineTrait derives the trait of a pointwise combination (sum or product)
// of two kernels over the same input domain.
//
// Rules, in priority order:
//  1. Equal traits combine to themselves: a sum/product of two isotropic
//     kernels is isotropic, of two dot-product kernels dot-product, etc.
//  2. Isotropic with StationaryLinearFunctional yields
//     StationaryLinearFunctional: a distance function is a displacement
//     function, so the combination still depends on x − y only.
//  3. Anything else degrades to Generic — the safe direction; a wrong
//     Generic only costs speed, a wrong structured tag would cost
//     correctness.
func combineTrait(a, b Trait) Trait {
	if a == b {
		return a
	}
	if a.Stationary() && b.Stationary() {
		return StationaryLinearFunctional
	}

	return Generic
}

// Sum returns the pointwise sum a + b with a structurally derived trait.
// Returns ErrNilFunc if either operand is the zero Kernel.
// Complexity: O(1) construction; evaluation costs one call to each operand.
func Sum(a, b Kernel) (Kernel, error) {
	if !a.Valid() || !b.Valid() {
		return Kernel{}, ErrNilFunc
	}

	return Kernel{
		fn:    func(x, y []float64) float64 { return a.fn(x, y) + b.fn(x, y) },
		trait: combineTrait(a.trait, b.trait),
	}, nil
}

// Product returns the pointwise product a · b with a structurally derived
// trait; the algebra is identical to Sum's (pointwise combinations preserve
// shared input structure).
func Product(a, b Kernel) (Kernel, error) {
	if !a.Valid() || !b.Valid() {
		return Kernel{}, ErrNilFunc
	}

	return Kernel{
		fn:    func(x, y []float64) float64 { return a.fn(x, y) * b.fn(x, y) },
		trait: combineTrait(a.trait, b.trait),
	}, nil
}

// Scale returns c · k. Scaling is a pointwise map of the kernel value, so
// the operand's trait is preserved as-is.
// Returns ErrBadScale for NaN or ±Inf factors and ErrNilFunc for the zero
// Kernel.
func Scale(c float64, k Kernel) (Kernel, error) {
	if !k.Valid() {
		return Kernel{}, ErrNilFunc
	}
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return Kernel{}, ErrBadScale
	}

	return Kernel{
		fn:    func(x, y []float64) float64 { return c * k.fn(x, y) },
		trait: k.trait,
	}, nil
}

// Power returns k raised to the integer power p ≥ 1. A pointwise power of a
// kernel value depends on exactly what the kernel value depends on, so the
// trait is preserved.
// Returns ErrBadPower for p < 1 and ErrNilFunc for the zero Kernel.
func Power(k Kernel, p int) (Kernel, error) {
	if !k.Valid() {
		return Kernel{}, ErrNilFunc
	}
	if p < 1 {
		return Kernel{}, ErrBadPower
	}

	return Kernel{
		fn:    func(x, y []float64) float64 { return math.Pow(k.fn(x, y), float64(p)) },
		trait: k.trait,
	}, nil
}
