// Package kernel defines kernel functions as first-class values: a pure
// callable paired with a structural Trait that downstream engines use to
// pick specialized matrix representations.
//
// What lives here:
//
//   - Trait — the closed structural classification (Generic, Isotropic,
//     DotProduct, StationaryLinearFunctional). Resolved once, at Gramian
//     construction; never re-dispatched per matrix entry.
//   - Kernel — an immutable (callable, Trait) pair built via New.
//   - Combinators — Sum, Product, Scale, Power. Each combinator is an
//     explicit expression node that derives the combined Trait structurally
//     from its operands; it never adopts one operand's trait blindly.
//   - Catalogue — a handful of standard kernels (Gaussian, Exponential,
//     Matérn-3/2, Linear, Constant) used by tests, examples and callers who
//     do not bring their own.
//   - BlockKernel — the matrix-valued extension point: a kernel whose value
//     is a small dense block (gradient/Hessian kernels). It satisfies the
//     same construction contract, so the structured machinery applies to it
//     without modification.
//
// Trait algebra (decided per combinator, documented on each):
//
//	Sum/Product:  T ⊕ T = T;  Isotropic ⊕ Stationary = Stationary;  else Generic
//	Scale/Power:  trait preserved
//
// All kernels are pure functions of their two inputs; the package holds no
// mutable state.
package kernel
