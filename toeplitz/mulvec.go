// Package toeplitz: matrix-vector multiply via circulant embedding.
//
// Algorithm Outline:
//  1. Choose m = next power of two with m ≥ 2n−1.
//  2. Embed t into a circulant generating sequence c of length m:
//     c[0] = t[0], c[k] = c[m−k] = t[k] for k = 1..n−1, zeros between.
//     The leading n×n block of the circulant implied by c is exactly the
//     symmetric Toeplitz matrix implied by t.
//  3. Zero-pad v to length m.
//  4. Multiply in the Fourier domain: a circulant acts on a vector as a
//     circular convolution, which the FFT diagonalizes.
//  5. The first n entries of the inverse transform are T·v.
//
// Complexity: O(m log m) with m < 4n. The embedding lives only within a
// single call and is never persisted.
package toeplitz

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

// MulVec computes T·v for the symmetric Toeplitz matrix implied by t.
//
// Sequences shorter than DirectThreshold are multiplied directly — exact,
// and cheaper than planning a transform. Returns ErrEmptySequence for an
// empty t and ErrDimensionMismatch when len(v) != len(t).
func MulVec(t, v []float64, opts ...Option) ([]float64, error) {
	if len(t) == 0 {
		return nil, ErrEmptySequence
	}
	if len(v) != len(t) {
		return nil, fmt.Errorf("MulVec: len(v)=%d, n=%d: %w", len(v), len(t), ErrDimensionMismatch)
	}

	o := gatherOptions(opts)
	if len(t) < o.directThreshold {
		return mulVecDirect(t, v), nil
	}

	return mulVecFFT(t, v), nil
}

// mulVecDirect is the exact O(n²) product; also the tiny-n fast path.
func mulVecDirect(t, v []float64) []float64 {
	n := len(t)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var acc float64
		for j := 0; j < n; j++ {
			d := i - j
			if d < 0 {
				d = -d
			}
			acc += t[d] * v[j]
		}
		out[i] = acc
	}

	return out
}

// mulVecFFT is the circulant-embedding transform path.
func mulVecFFT(t, v []float64) []float64 {
	n := len(t)
	m := embedLength(n)

	// Circulant generating sequence: t forward from 0, mirrored at the top.
	// m ≥ 2n−1 guarantees the mirrored indices never collide with the
	// forward ones.
	c := make([]float64, m)
	c[0] = t[0]
	for k := 1; k < n; k++ {
		c[k] = t[k]
		c[m-k] = t[k]
	}

	// Zero-padded operand.
	pad := make([]float64, m)
	copy(pad, v)

	fft := fourier.NewFFT(m)
	ch := fft.Coefficients(nil, c)
	vh := fft.Coefficients(nil, pad)
	for i := range ch {
		ch[i] *= vh[i]
	}

	// gonum's Sequence is unnormalized: divide by m to invert.
	conv := fft.Sequence(nil, ch)
	out := make([]float64, n)
	inv := 1 / float64(m)
	for i := 0; i < n; i++ {
		out[i] = conv[i] * inv
	}

	return out
}

// embedLength returns the smallest power of two ≥ 2n−1. Powers of two keep
// the transform plan trivial and the convolution length below 4n.
func embedLength(n int) int {
	need := 2*n - 1
	m := 1
	for m < need {
		m <<= 1
	}

	return m
}
