// Package matrix is a dense, row-major float64 matrix library with value semantics.
//
// The matrix package provides:
//
//   - Dense: an owned r×c buffer (uint32 dimensions, both > 0) with bounds-safe
//     At/Set, deep Clone and an explicit, idempotent Release.
//   - Binary kernels returning a fresh result: Add, Sub, Hadamard, Mul,
//     HoriCat and Kronecker (with a staged overflow guard on the result size).
//   - Unary kernels: Transpose (fresh result), MulByScalar and Invert (in place).
//   - Facades: NewIdentity, ZerosLike, Scale, Reciprocal, AllClose, aliases.
//
// Every kernel accepts the Matrix interface. *Dense operands take a flat-slice
// fast path; anything else goes through At/Set in fixed row-major order.
// Errors are package sentinels (ErrInvalidDimension, ErrOverflow,
// ErrAllocationFailure, ...) wrapped with the operation name; match them with
// errors.Is. No kernel returns a partial result.
//
// A Dense is not safe for concurrent mutation.
package matrix
