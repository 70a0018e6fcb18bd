package toeplitz_test

import (
	"testing"

	"github.com/katalvlaran/gram/toeplitz"
)

// benchmarkMulVec times the transform multiply at size n.
func benchmarkMulVec(b *testing.B, n int) {
	seq := decaySeq(n, 0.1)
	v := make([]float64, n)
	for i := range v {
		v[i] = float64(i % 11)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := toeplitz.MulVec(seq, v, toeplitz.WithDirectThreshold(0)); err != nil {
			b.Fatalf("MulVec: %v", err)
		}
	}
}

// benchmarkSolve times the Levinson recursion at size n.
func benchmarkSolve(b *testing.B, n int) {
	seq := decaySeq(n, 0.3)
	rhs := make([]float64, n)
	for i := range rhs {
		rhs[i] = float64(i%5) - 2
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := toeplitz.Solve(seq, rhs); err != nil {
			b.Fatalf("Solve: %v", err)
		}
	}
}

func BenchmarkMulVec_256(b *testing.B)  { benchmarkMulVec(b, 256) }
func BenchmarkMulVec_4096(b *testing.B) { benchmarkMulVec(b, 4096) }
func BenchmarkSolve_256(b *testing.B)   { benchmarkSolve(b, 256) }
func BenchmarkSolve_1024(b *testing.B)  { benchmarkSolve(b, 1024) }
