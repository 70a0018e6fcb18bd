// Package gramian: sentinel error set.
// All constructors and matrix operations return these sentinels; tests match
// them via errors.Is. Context, where essential, is added by wrapping with
// fmt.Errorf("...: %w", ErrX) — callers still match the sentinel.
package gramian

import "errors"

var (
	// ErrNilKernel indicates an invalid (zero-value) kernel was supplied.
	ErrNilKernel = errors.New("gramian: kernel carries no callable")

	// ErrDimensionMismatch indicates incompatible shapes, e.g. MulVec with
	// len(v) != Cols, or row/col point sets of differing dimension.
	ErrDimensionMismatch = errors.New("gramian: dimension mismatch")

	// ErrOutOfRange indicates an entry index outside the logical size.
	ErrOutOfRange = errors.New("gramian: index out of range")

	// ErrRaggedPoints indicates a point sequence whose members do not share
	// one fixed dimension.
	ErrRaggedPoints = errors.New("gramian: points must share a fixed dimension")

	// ErrNotToeplitz indicates a direct solve was requested on a matrix that
	// is not backed by a Toeplitz representation.
	ErrNotToeplitz = errors.New("gramian: solve requires a Toeplitz-structured matrix")

	// ErrBadGrid indicates an invalid regular-grid descriptor (negative
	// count, or non-finite start/step).
	ErrBadGrid = errors.New("gramian: invalid grid descriptor")
)
