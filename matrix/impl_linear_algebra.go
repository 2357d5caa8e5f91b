// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition, subtraction and Hadamard product, matrix
// multiplication and transpose. All functions perform strict fail-fast
// validation and never return a partially computed result.
//
// Purpose:
//   - Canonical linear-algebra kernels used across the package.
//   - Operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel allocates a fresh *Dense; inputs are never mutated or aliased.
//   - Fast-path when all operands are *Dense (flat slices); otherwise a fixed
//     i→j At/Set fallback.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opHadamard    = "Hadamard"
	opKronecker   = "Kronecker"
	opHoriCat     = "HoriCat"
	opMulByScalar = "MulByScalar"
	opInvert      = "Invert"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// atErrorf and setErrorf attach coordinates for fallback-path accessor failures.
func atErrorf(tag string, i, j uint32, err error) error {
	return matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
}

func setErrorf(tag string, i, j uint32, err error) error {
	return matrixErrorf(tag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
}

// bothDense returns the concrete operands when a and b are both *Dense.
func bothDense(a, b Matrix) (*Dense, *Dense, bool) {
	da, okA := a.(*Dense)
	if !okA {
		return nil, nil, false
	}
	db, okB := b.(*Dense)
	if !okB {
		return nil, nil, false
	}

	return da, db, true
}

// elementwise computes out[i,j] = f(a[i,j], b[i,j]) for identically shaped a, b.
// Internal helper shared by Add, Sub and Hadamard.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense: single flat loop 0..n-1.
//     Otherwise fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimension, ErrDimensionMismatch, ErrAllocationFailure.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func elementwise(a, b Matrix, f func(x, y float64) float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, db, ok := bothDense(a, b); ok {
		for idx := range res.data {
			res.data[idx] = f(da.data[idx], db.data[idx])
		}

		return res, nil
	}

	// Fallback: interface path with fixed i→j order.
	var i, j uint32
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, atErrorf(opTag, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, atErrorf(opTag, i, j, err)
			}
			res.data[int(i)*int(cols)+int(j)] = f(av, bv)
		}
	}

	return res, nil
}

func add(x, y float64) float64 { return x + y }
func sub(x, y float64) float64 { return x - y }
func mul(x, y float64) float64 { return x * y }

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil/released input), ErrInvalidDimension (zero dimension),
//     ErrDimensionMismatch (shape mismatch), ErrAllocationFailure.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return elementwise(a, b, add, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Same contract as Add.
func Sub(a, b Matrix) (Matrix, error) { return elementwise(a, b, sub, opSub) }

// Hadamard computes the element-wise product (a ⊙ b) with a fresh Dense result.
// Both inputs must have identical, non-zero shapes; operands are not mutated.
//
// Notes:
//   - Hadamard ≠ matrix multiplication; use Mul for A×B.
func Hadamard(a, b Matrix) (Matrix, error) { return elementwise(a, b, mul, opHadamard) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (non-nil, non-zero) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Allocate zeroed C (A.Rows × B.Cols).
//   - Stage 3: If A and B are *Dense, accumulate i→k→j with row-major strides;
//     otherwise i→j→k through At.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimension, ErrDimensionMismatch (inner mismatch),
//     ErrAllocationFailure.
//
// Determinism:
//   - Fixed loop orders. The summation order over the shared dimension only
//     affects rounding, not the mathematical result.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	if da, db, ok := bothDense(a, b); ok {
		// da.data layout: i*aCols + k; db.data layout: k*bCols + j
		n, inner, m := int(aRows), int(aCols), int(bCols)
		var i, j, k int
		var av float64
		var rowA, rowB, rowR int
		for i = 0; i < n; i++ {
			rowA = i * inner
			rowR = i * m
			for k = 0; k < inner; k++ {
				av = da.data[rowA+k]
				rowB = k * m
				for j = 0; j < m; j++ {
					res.data[rowR+j] += av * db.data[rowB+j]
				}
			}
		}

		return res, nil
	}

	// Fallback: generic interface triple-loop (i-j-k).
	var i, j, k uint32
	var av, bv, current float64
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, atErrorf(opMul, i, k, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, atErrorf(opMul, k, j, err)
				}
				current += av * bv
			}
			res.data[int(i)*int(bCols)+int(j)] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimension, ErrAllocationFailure.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateOperand(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		r, c := int(rows), int(cols)
		var i, j, baseSrc int
		for i = 0; i < r; i++ {
			baseSrc = i * c
			for j = 0; j < c; j++ {
				res.data[j*r+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var i, j uint32
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(opTranspose, i, j, err)
			}
			res.data[int(j)*int(rows)+int(i)] = v
		}
	}

	return res, nil
}
