package kernel_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gram/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mk builds a constant-zero kernel with the given trait, for trait-algebra
// tests where the values do not matter.
func mk(t *testing.T, trait kernel.Trait) kernel.Kernel {
	t.Helper()
	k, err := kernel.New(func(_, _ []float64) float64 { return 0 }, trait)
	require.NoError(t, err)

	return k
}

// TestCombine_TraitTable pins the full trait-propagation table for Sum and
// Product: equal traits are preserved, isotropic+stationary stays
// stationary, everything else degrades to Generic.
func TestCombine_TraitTable(t *testing.T) {
	cases := []struct {
		name string
		a, b kernel.Trait
		want kernel.Trait
	}{
		{"iso+iso", kernel.Isotropic, kernel.Isotropic, kernel.Isotropic},
		{"dot+dot", kernel.DotProduct, kernel.DotProduct, kernel.DotProduct},
		{"gen+gen", kernel.Generic, kernel.Generic, kernel.Generic},
		{"stat+stat", kernel.StationaryLinearFunctional, kernel.StationaryLinearFunctional, kernel.StationaryLinearFunctional},
		{"iso+stat", kernel.Isotropic, kernel.StationaryLinearFunctional, kernel.StationaryLinearFunctional},
		{"stat+iso", kernel.StationaryLinearFunctional, kernel.Isotropic, kernel.StationaryLinearFunctional},
		{"iso+dot", kernel.Isotropic, kernel.DotProduct, kernel.Generic},
		{"dot+stat", kernel.DotProduct, kernel.StationaryLinearFunctional, kernel.Generic},
		{"gen+iso", kernel.Generic, kernel.Isotropic, kernel.Generic},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := kernel.Sum(mk(t, tc.a), mk(t, tc.b))
			require.NoError(t, err)
			assert.Equal(t, tc.want, s.Trait(), "Sum trait")

			p, err := kernel.Product(mk(t, tc.a), mk(t, tc.b))
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Trait(), "Product trait")
		})
	}
}

// TestSumProduct_Values checks the pointwise arithmetic.
func TestSumProduct_Values(t *testing.T) {
	a, err := kernel.Constant(2)
	require.NoError(t, err)
	b, err := kernel.Constant(3)
	require.NoError(t, err)

	s, err := kernel.Sum(a, b)
	require.NoError(t, err)
	assert.Equal(t, 5.0, s.Eval([]float64{0}, []float64{1}))

	p, err := kernel.Product(a, b)
	require.NoError(t, err)
	assert.Equal(t, 6.0, p.Eval([]float64{0}, []float64{1}))
}

// TestScale_PreservesTrait verifies value scaling and trait preservation.
func TestScale_PreservesTrait(t *testing.T) {
	g, err := kernel.Gaussian(1)
	require.NoError(t, err)

	s, err := kernel.Scale(3, g)
	require.NoError(t, err)
	assert.Equal(t, kernel.Isotropic, s.Trait())
	assert.InDelta(t, 3.0, s.Eval([]float64{1}, []float64{1}), 1e-15)

	_, err = kernel.Scale(math.Inf(-1), g)
	assert.ErrorIs(t, err, kernel.ErrBadScale)
	_, err = kernel.Scale(math.NaN(), g)
	assert.ErrorIs(t, err, kernel.ErrBadScale)
}

// TestPower_PreservesTrait verifies pointwise powers and exponent guards.
func TestPower_PreservesTrait(t *testing.T) {
	c, err := kernel.Constant(2)
	require.NoError(t, err)

	p, err := kernel.Power(c, 3)
	require.NoError(t, err)
	assert.Equal(t, kernel.StationaryLinearFunctional, p.Trait())
	assert.Equal(t, 8.0, p.Eval([]float64{0}, []float64{0}))

	_, err = kernel.Power(c, 0)
	assert.ErrorIs(t, err, kernel.ErrBadPower)
	_, err = kernel.Power(c, -2)
	assert.ErrorIs(t, err, kernel.ErrBadPower)
}

// TestCombinators_ZeroKernel verifies every combinator rejects the zero
// Kernel with ErrNilFunc.
func TestCombinators_ZeroKernel(t *testing.T) {
	var zero kernel.Kernel
	ok := mk(t, kernel.Generic)

	_, err := kernel.Sum(zero, ok)
	assert.ErrorIs(t, err, kernel.ErrNilFunc)
	_, err = kernel.Product(ok, zero)
	assert.ErrorIs(t, err, kernel.ErrNilFunc)
	_, err = kernel.Scale(1, zero)
	assert.ErrorIs(t, err, kernel.ErrNilFunc)
	_, err = kernel.Power(zero, 2)
	assert.ErrorIs(t, err, kernel.ErrNilFunc)
}

// TestBlockKernel_Contract covers construction, shape, entry views and the
// trait inheritance that lets entry views ride structured paths.
func TestBlockKernel_Contract(t *testing.T) {
	// A 2×2 block kernel of displacement moments: stationary by construction.
	fn := func(x, y []float64) [][]float64 {
		d := x[0] - y[0]
		return [][]float64{{1, d}, {d, d * d}}
	}

	bk, err := kernel.NewBlock(fn, kernel.StationaryLinearFunctional, 2, 2)
	require.NoError(t, err)

	rows, cols := bk.BlockShape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, kernel.StationaryLinearFunctional, bk.Trait())

	sub, err := bk.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, kernel.StationaryLinearFunctional, sub.Trait(), "entry view must inherit the block trait")
	assert.Equal(t, 9.0, sub.Eval([]float64{4}, []float64{1}))

	_, err = bk.At(2, 0)
	assert.ErrorIs(t, err, kernel.ErrBlockIndex)
	_, err = bk.At(0, -1)
	assert.ErrorIs(t, err, kernel.ErrBlockIndex)

	_, err = kernel.NewBlock(nil, kernel.Generic, 1, 1)
	assert.ErrorIs(t, err, kernel.ErrNilFunc)
	_, err = kernel.NewBlock(fn, kernel.Generic, 0, 2)
	assert.ErrorIs(t, err, kernel.ErrBadBlock)
}
