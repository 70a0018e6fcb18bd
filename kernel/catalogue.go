// Package kernel: a small catalogue of standard kernels.
//
// These are the collaborators the engine packages exercise in tests and
// examples; callers with richer needs bring their own Func + Trait through
// New. Every constructor validates its parameters and returns the package
// sentinels; none panics.
package kernel

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// sqrt3 is precomputed for the Matérn-3/2 form.
var sqrt3 = math.Sqrt(3)

// validLengthscale reports whether ℓ is usable: strictly positive, finite.
func validLengthscale(ell float64) bool {
	return ell > 0 && !math.IsInf(ell, 1) && !math.IsNaN(ell)
}

// Gaussian returns the squared-exponential kernel
//
//	k(x, y) = exp(−‖x−y‖² / (2ℓ²))
//
// tagged Isotropic. Returns ErrBadLengthscale for ℓ ≤ 0, NaN or Inf.
func Gaussian(ell float64) (Kernel, error) {
	if !validLengthscale(ell) {
		return Kernel{}, ErrBadLengthscale
	}
	inv := 1 / (2 * ell * ell)

	return Kernel{
		fn: func(x, y []float64) float64 {
			r := floats.Distance(x, y, 2)
			return math.Exp(-r * r * inv)
		},
		trait: Isotropic,
	}, nil
}

// Exponential returns the exponential (Matérn-1/2) kernel
//
//	k(x, y) = exp(−‖x−y‖ / ℓ)
//
// tagged Isotropic. Returns ErrBadLengthscale for ℓ ≤ 0, NaN or Inf.
func Exponential(ell float64) (Kernel, error) {
	if !validLengthscale(ell) {
		return Kernel{}, ErrBadLengthscale
	}

	return Kernel{
		fn: func(x, y []float64) float64 {
			return math.Exp(-floats.Distance(x, y, 2) / ell)
		},
		trait: Isotropic,
	}, nil
}

// Matern32 returns the Matérn-3/2 kernel
//
//	k(x, y) = (1 + √3·r/ℓ) · exp(−√3·r/ℓ),  r = ‖x−y‖
//
// tagged Isotropic. Returns ErrBadLengthscale for ℓ ≤ 0, NaN or Inf.
func Matern32(ell float64) (Kernel, error) {
	if !validLengthscale(ell) {
		return Kernel{}, ErrBadLengthscale
	}
	lambda := sqrt3 / ell

	return Kernel{
		fn: func(x, y []float64) float64 {
			s := lambda * floats.Distance(x, y, 2)
			return (1 + s) * math.Exp(-s)
		},
		trait: Isotropic,
	}, nil
}

// Linear returns the homogeneous linear kernel k(x, y) = ⟨x, y⟩, tagged
// DotProduct. It never fails; the (Kernel, error) shape is kept for
// uniformity with the rest of the catalogue.
func Linear() (Kernel, error) {
	return Kernel{
		fn:    func(x, y []float64) float64 { return floats.Dot(x, y) },
		trait: DotProduct,
	}, nil
}

// Constant returns the constant kernel k(x, y) = c, tagged
// StationaryLinearFunctional (a constant is trivially a function of the
// displacement). Returns ErrBadScale for NaN or ±Inf c.
func Constant(c float64) (Kernel, error) {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return Kernel{}, ErrBadScale
	}

	return Kernel{
		fn:    func(_, _ []float64) float64 { return c },
		trait: StationaryLinearFunctional,
	}, nil
}
