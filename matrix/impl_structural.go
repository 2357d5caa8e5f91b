// SPDX-License-Identifier: MIT

// Package matrix: dimension-changing kernels (Kronecker product, horizontal
// concatenation). Both grow the result beyond either operand, so both run an
// overflow guard before allocating.

package matrix

// Kronecker computes the Kronecker product A ⊗ B.
// The (m,n) block of the result is A[m,n]·B:
//
//	out[m*B.Rows()+p, n*B.Cols()+q] = A[m,n] * B[p,q]
//
// Implementation:
//   - Stage 1: ValidateKronecker (zero dims → overflow byte limit → overflow dims).
//   - Stage 2: Allocate Dense(A.Rows*B.Rows, A.Cols*B.Cols).
//   - Stage 3: m→n→p→q block fill; flat offsets when both are *Dense.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimension, ErrOverflow, ErrAllocationFailure.
//
// Complexity:
//   - Time O(ra*ca*rb*cb), Space O(ra*ca*rb*cb).
func Kronecker(a, b Matrix) (Matrix, error) {
	if err := ValidateKronecker(a, b); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}

	aRows, aCols, bRows, bCols := a.Rows(), a.Cols(), b.Rows(), b.Cols()
	res, err := NewDense(aRows*bRows, aCols*bCols) // products validated to fit uint32
	if err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	width := int(aCols) * int(bCols) // result row stride

	if da, db, ok := bothDense(a, b); ok {
		ra, ca, rb, cb := int(aRows), int(aCols), int(bRows), int(bCols)
		var m, n, p, q int
		var av float64
		var rowOff, srcB int
		for m = 0; m < ra; m++ {
			for n = 0; n < ca; n++ {
				av = da.data[m*ca+n]
				for p = 0; p < rb; p++ {
					rowOff = (m*rb+p)*width + n*cb
					srcB = p * cb
					for q = 0; q < cb; q++ {
						res.data[rowOff+q] = av * db.data[srcB+q]
					}
				}
			}
		}

		return res, nil
	}

	var m, n, p, q uint32
	var av, bv float64
	for m = 0; m < aRows; m++ {
		for n = 0; n < aCols; n++ {
			if av, err = a.At(m, n); err != nil {
				return nil, atErrorf(opKronecker, m, n, err)
			}
			for p = 0; p < bRows; p++ {
				for q = 0; q < bCols; q++ {
					if bv, err = b.At(p, q); err != nil {
						return nil, atErrorf(opKronecker, p, q, err)
					}
					res.data[int(m*bRows+p)*width+int(n*bCols+q)] = av * bv
				}
			}
		}
	}

	return res, nil
}

// HoriCat concatenates a and b side by side: [A | B].
// Columns [0, A.Cols) of each row come from A, columns [A.Cols, A.Cols+B.Cols) from B.
//
// Implementation:
//   - Stage 1: ValidateHoriCat (non-zero dims, equal rows, widened cols fit uint32).
//   - Stage 2: Allocate Dense(A.Rows, A.Cols+B.Cols).
//   - Stage 3: per row, copy A's row then B's row (copy() on the *Dense path).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimension, ErrDimensionMismatch (row counts differ),
//     ErrOverflow, ErrAllocationFailure.
//
// Complexity:
//   - Time O(r*(ca+cb)), Space O(r*(ca+cb)).
func HoriCat(a, b Matrix) (Matrix, error) {
	if err := ValidateHoriCat(a, b); err != nil {
		return nil, matrixErrorf(opHoriCat, err)
	}

	rows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, aCols+bCols)
	if err != nil {
		return nil, matrixErrorf(opHoriCat, err)
	}
	ca, cb := int(aCols), int(bCols)
	width := ca + cb

	if da, db, ok := bothDense(a, b); ok {
		var i, dst int
		for i = 0; i < int(rows); i++ {
			dst = i * width
			copy(res.data[dst:dst+ca], da.data[i*ca:(i+1)*ca])
			copy(res.data[dst+ca:dst+width], db.data[i*cb:(i+1)*cb])
		}

		return res, nil
	}

	var i, j uint32
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < aCols; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, atErrorf(opHoriCat, i, j, err)
			}
			res.data[int(i)*width+int(j)] = v
		}
		for j = 0; j < bCols; j++ {
			if v, err = b.At(i, j); err != nil {
				return nil, atErrorf(opHoriCat, i, j, err)
			}
			res.data[int(i)*width+ca+int(j)] = v
		}
	}

	return res, nil
}
