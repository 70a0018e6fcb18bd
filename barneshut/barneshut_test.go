package barneshut_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gram/barneshut"
	"github.com/katalvlaran/gram/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clusteredPoints draws n 2-D points from two well-separated Gaussian blobs
// — the geometry Barnes-Hut is built for.
func clusteredPoints(rng *rand.Rand, n int) [][]float64 {
	pts := make([][]float64, n)
	for i := range pts {
		cx := 0.0
		if i%2 == 1 {
			cx = 50.0
		}
		pts[i] = []float64{cx + rng.NormFloat64(), rng.NormFloat64()}
	}

	return pts
}

// bruteMulVec is the exact dense reference over the factorization's entries.
func bruteMulVec(t *testing.T, f *barneshut.Factorization, v []float64) []float64 {
	t.Helper()
	out := make([]float64, f.Rows())
	for i := 0; i < f.Rows(); i++ {
		for j := 0; j < f.Cols(); j++ {
			e, err := f.At(i, j)
			require.NoError(t, err)
			out[i] += e * v[j]
		}
	}

	return out
}

// maxRelErr returns the ∞-norm relative error of got against want.
func maxRelErr(want, got []float64) float64 {
	var worst float64
	for i := range want {
		e := math.Abs(got[i]-want[i]) / math.Max(1, math.Abs(want[i]))
		if e > worst {
			worst = e
		}
	}

	return worst
}

// TestNew_Validation sweeps the construction guards.
func TestNew_Validation(t *testing.T) {
	k, err := kernel.Gaussian(1)
	require.NoError(t, err)

	var zero kernel.Kernel
	_, err = barneshut.New(zero, [][]float64{{0}}, 0.5)
	assert.ErrorIs(t, err, barneshut.ErrNilKernel)

	for _, theta := range []float64{-0.1, math.NaN(), math.Inf(1)} {
		_, err = barneshut.New(k, [][]float64{{0}}, theta)
		assert.ErrorIs(t, err, barneshut.ErrBadTheta, "theta=%v", theta)
	}

	_, err = barneshut.New(k, [][]float64{{0}, {1, 2}}, 0.5)
	assert.ErrorIs(t, err, barneshut.ErrRaggedPoints)
}

// TestMulVec_ThetaZeroIsExact: θ = 0 must reproduce the exact multiply to
// floating-point tolerance on any point set.
func TestMulVec_ThetaZeroIsExact(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	k, err := kernel.Gaussian(3)
	require.NoError(t, err)

	pts := clusteredPoints(rng, 150)
	f, err := barneshut.New(k, pts, 0)
	require.NoError(t, err)

	v := make([]float64, len(pts))
	for i := range v {
		v[i] = rng.NormFloat64()
	}

	got, err := f.MulVec(v)
	require.NoError(t, err)
	want := bruteMulVec(t, f, v)
	assert.Less(t, maxRelErr(want, got), 1e-12, "theta=0 must be exact")
}

// TestMulVec_ErrorGrowsWithTheta: on a fixed clustered set with a positive
// weight vector, empirical error is non-decreasing as θ rises from 0
// toward 1.
func TestMulVec_ErrorGrowsWithTheta(t *testing.T) {
	// A long lengthscale keeps cross-cluster entries significant, so every
	// admissible far-field node contributes measurably.
	rng := rand.New(rand.NewSource(8))
	k, err := kernel.Gaussian(40)
	require.NoError(t, err)

	pts := clusteredPoints(rng, 200)
	v := make([]float64, len(pts))
	for i := range v {
		v[i] = 0.5 + rng.Float64() // positive: contributions never cancel
	}

	var want []float64
	thetas := []float64{0, 0.3, 0.6, 1.0}
	errs := make([]float64, len(thetas))
	for ti, theta := range thetas {
		f, err := barneshut.New(k, pts, theta)
		require.NoError(t, err)

		got, err := f.MulVec(v)
		require.NoError(t, err)
		if ti == 0 {
			want = bruteMulVec(t, f, v)
		}
		errs[ti] = maxRelErr(want, got)
	}

	assert.Less(t, errs[0], 1e-12, "theta=0")
	for i := 1; i < len(errs); i++ {
		assert.GreaterOrEqual(t, errs[i], errs[i-1]-1e-12, "theta=%v vs %v", thetas[i], thetas[i-1])
	}
	assert.Greater(t, errs[len(errs)-1], 0.0, "theta=1 must actually approximate")
}

// TestMulVec_ApproximationStaysReasonable: θ = 0.5 on smooth kernels keeps
// the empirical error small; this is validation, not a proven bound.
func TestMulVec_ApproximationStaysReasonable(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	k, err := kernel.Gaussian(10)
	require.NoError(t, err)

	pts := clusteredPoints(rng, 300)
	f, err := barneshut.New(k, pts, 0.5)
	require.NoError(t, err)

	v := make([]float64, len(pts))
	for i := range v {
		v[i] = rng.NormFloat64()
	}

	got, err := f.MulVec(v)
	require.NoError(t, err)
	want := bruteMulVec(t, f, v)
	assert.Less(t, maxRelErr(want, got), 1e-2)
}

// TestMulVec_WorkersMatchSequential verifies parallel fan-out parity.
func TestMulVec_WorkersMatchSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	k, err := kernel.Exponential(4)
	require.NoError(t, err)

	pts := clusteredPoints(rng, 120)
	v := make([]float64, len(pts))
	for i := range v {
		v[i] = rng.NormFloat64()
	}

	seq, err := barneshut.New(k, pts, 0.4)
	require.NoError(t, err)
	par, err := barneshut.New(k, pts, 0.4, barneshut.WithWorkers(4))
	require.NoError(t, err)

	a, err := seq.MulVec(v)
	require.NoError(t, err)
	b, err := par.MulVec(v)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same tree, same traversal, same numbers")
}

// TestMulVec_Guards covers shape errors and the empty set.
func TestMulVec_Guards(t *testing.T) {
	k, err := kernel.Gaussian(1)
	require.NoError(t, err)

	f, err := barneshut.New(k, [][]float64{{0}, {1}}, 0.5)
	require.NoError(t, err)
	_, err = f.MulVec([]float64{1})
	assert.ErrorIs(t, err, barneshut.ErrDimensionMismatch)

	empty, err := barneshut.New(k, nil, 0.5)
	require.NoError(t, err)
	out, err := empty.MulVec(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

// TestAt_ExactAndBounds: entries are never approximated.
func TestAt_ExactAndBounds(t *testing.T) {
	k, err := kernel.Gaussian(2)
	require.NoError(t, err)

	pts := [][]float64{{0, 0}, {3, 4}}
	f, err := barneshut.New(k, pts, 0.9)
	require.NoError(t, err)

	got, err := f.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, k.Eval(pts[0], pts[1]), got)

	_, err = f.At(2, 0)
	assert.ErrorIs(t, err, barneshut.ErrOutOfRange)
}

// TestTreeStats_Shape sanity-checks the built tree: a full binary split has
// Nodes = 2·Leaves − 1, and identical points collapse to one leaf.
func TestTreeStats_Shape(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	k, err := kernel.Gaussian(1)
	require.NoError(t, err)

	pts := clusteredPoints(rng, 256)
	f, err := barneshut.New(k, pts, 0.5, barneshut.WithLeafSize(4))
	require.NoError(t, err)

	s := f.TreeStats()
	assert.Equal(t, 2*s.Leaves-1, s.Nodes)
	assert.Greater(t, s.Height, 0)
	assert.Equal(t, 0.5, f.Theta())

	// Coincident points: a degenerate box must stop splitting.
	same := [][]float64{{1, 1}, {1, 1}, {1, 1}, {1, 1}, {1, 1}}
	g, err := barneshut.New(k, same, 0.5, barneshut.WithLeafSize(2))
	require.NoError(t, err)
	assert.Equal(t, barneshut.Stats{Nodes: 1, Leaves: 1, Height: 0}, g.TreeStats())

	v := []float64{1, 1, 1, 1, 1}
	out, err := g.MulVec(v)
	require.NoError(t, err)
	for _, o := range out {
		assert.InDelta(t, 5.0, o, 1e-12, "k(x,x)=1 on coincident points")
	}
}
