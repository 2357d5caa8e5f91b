// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Each facade delegates to its canonical kernel; no logic is duplicated.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import "fmt"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols uint32) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n uint32) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	stride := int(n) + 1
	for off := 0; off < len(I.data); off += stride {
		I.data[off] = 1.0
	}

	return I, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
func CloneMatrix(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("CloneMatrix", err)
	}

	return m.Clone(), nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// ---------- Aliases (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// HadamardProd is an alias for Hadamard: element-wise product a ⊙ b.
func HadamardProd(a, b Matrix) (Matrix, error) { return Hadamard(a, b) }

// Kron is an alias for Kronecker: a ⊗ b.
func Kron(a, b Matrix) (Matrix, error) { return Kronecker(a, b) }

// Concat is an alias for HoriCat: [a | b].
func Concat(a, b Matrix) (Matrix, error) { return HoriCat(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ---------- Copying variants of the in-place operators ----------

// Scale returns alpha*m as a new matrix; m is not modified.
// Composition: Clone → MulByScalar.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	return cloneThen("Scale", m, func(c Matrix) error { return MulByScalar(alpha, c) })
}

// Reciprocal returns a new matrix with elements k/m[i,j]; m is not modified.
// Composition: Clone → Invert.
func Reciprocal(k float64, m Matrix) (Matrix, error) {
	return cloneThen("Reciprocal", m, func(c Matrix) error { return Invert(k, c) })
}

func cloneThen(tag string, m Matrix, f func(Matrix) error) (Matrix, error) {
	if err := ValidateOperand(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	c := m.Clone()
	if err := f(c); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return c, nil
}

// ---------- Numeric compare ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
// rtol and atol must be finite; negative values are normalized to their magnitude.
//
// Time: O(r*c). Space: O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// Equal reports exact element-wise equality (AllClose with zero tolerances).
func Equal(a, b Matrix) (bool, error) {
	ok, err := ewAllClose(a, b, 0, 0)
	if err != nil {
		return false, fmt.Errorf("Equal: %w", err)
	}

	return ok, nil
}
