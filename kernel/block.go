// Package kernel: matrix-valued kernels.
//
// A BlockKernel maps a pair of points to a small dense block instead of a
// scalar — the shape taken by gradient and Hessian kernels, where the block
// collects partial derivatives. It carries the same Trait contract as the
// scalar Kernel, so the structured Gramian machinery applies to each of its
// scalar entry views without modification.
package kernel

// BlockFunc is a pure callable mapping two points to a rows×cols dense
// block. The same purity rules as Func apply.
type BlockFunc func(x, y []float64) [][]float64

// BlockKernel is an immutable (callable, Trait, block shape) triple.
// The zero BlockKernel is invalid; construct via NewBlock.
type BlockKernel struct {
	fn         BlockFunc
	trait      Trait
	rows, cols int
}

// NewBlock builds a BlockKernel from a callable, its trait and the declared
// block shape. The callable is trusted to return blocks of exactly that
// shape. Returns ErrNilFunc, ErrBadTrait or ErrBadBlock on invalid input.
func NewBlock(fn BlockFunc, trait Trait, rows, cols int) (BlockKernel, error) {
	if fn == nil {
		return BlockKernel{}, ErrNilFunc
	}
	if !trait.valid() {
		return BlockKernel{}, ErrBadTrait
	}
	if rows <= 0 || cols <= 0 {
		return BlockKernel{}, ErrBadBlock
	}

	return BlockKernel{fn: fn, trait: trait, rows: rows, cols: cols}, nil
}

// Eval applies the kernel, returning the full rows×cols block.
func (k BlockKernel) Eval(x, y []float64) [][]float64 {
	return k.fn(x, y)
}

// Trait returns the structural classification of the block kernel. The tag
// covers every entry of the block: a stationary block kernel has stationary
// entries.
func (k BlockKernel) Trait() Trait {
	return k.trait
}

// BlockShape returns the declared (rows, cols) of each block.
func (k BlockKernel) BlockShape() (rows, cols int) {
	return k.rows, k.cols
}

// Valid reports whether the BlockKernel carries a callable.
func (k BlockKernel) Valid() bool {
	return k.fn != nil
}

// At returns the scalar sub-kernel selecting entry (p, q) of every block.
// The sub-kernel inherits the block kernel's trait, which is what lets a
// Gramian over one derivative component ride the same fast paths.
// Returns ErrBlockIndex if (p, q) lies outside the block shape.
//
// Each evaluation computes the full block and discards the rest; callers
// multiplying against many entry views should restructure around Eval.
func (k BlockKernel) At(p, q int) (Kernel, error) {
	if !k.Valid() {
		return Kernel{}, ErrNilFunc
	}
	if p < 0 || p >= k.rows || q < 0 || q >= k.cols {
		return Kernel{}, ErrBlockIndex
	}

	return Kernel{
		fn:    func(x, y []float64) float64 { return k.fn(x, y)[p][q] },
		trait: k.trait,
	}, nil
}
