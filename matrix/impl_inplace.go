// SPDX-License-Identifier: MIT

// Package matrix: in-place element transforms.
// MulByScalar and Invert mutate their receiver and return only an error.
// Validation happens before the first write, so a rejected call leaves the
// receiver untouched.

package matrix

// MulByScalar multiplies every element of m by scalar, in place.
// Implementation:
//   - Stage 1: ValidateOperand(m).
//   - Stage 2: flat loop on *Dense; otherwise read all values via At, then write via Set.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimension.
//
// Complexity:
//   - Time O(r*c), Space O(1) on *Dense, O(r*c) on the generic path.
func MulByScalar(scalar float64, m Matrix) error {
	return transformInPlace(m, func(x float64) float64 { return x * scalar }, opMulByScalar)
}

// Invert replaces every element x of m by k/x, in place.
// Division by zero follows IEEE-754: k/0 is ±Inf (or NaN when k is 0 or NaN);
// this is not treated as an error.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimension.
//
// Complexity:
//   - Time O(r*c).
func Invert(k float64, m Matrix) error {
	return transformInPlace(m, func(x float64) float64 { return k / x }, opInvert)
}

// transformInPlace applies f to every element of m in row-major order.
// The generic path buffers new values before writing any of them so that a
// failing At leaves m unchanged.
func transformInPlace(m Matrix, f func(float64) float64, opTag string) error {
	if err := ValidateOperand(m); err != nil {
		return matrixErrorf(opTag, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			dm.data[idx] = f(v)
		}

		return nil
	}

	rows, cols := m.Rows(), m.Cols()
	next := make([]float64, 0, int(rows)*int(cols))
	var i, j uint32
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return atErrorf(opTag, i, j, err)
			}
			next = append(next, f(v))
		}
	}
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if err = m.Set(i, j, next[int(i)*int(cols)+int(j)]); err != nil {
				return setErrorf(opTag, i, j, err)
			}
		}
	}

	return nil
}
