// SPDX-License-Identifier: MIT

// Package matrix: private element-wise helpers behind public facades.

package matrix

import "math"

// ewAllClose implements AllClose.
// Implementation:
//   - Stage 1: reject non-finite tolerances; normalize negatives.
//   - Stage 2: validate both operands (NotNil → NonZero) and identical shape.
//   - Stage 3: flat compare on *Dense pairs; i→j At compare otherwise; early exit.
//
// Time: O(r*c). Space: O(1).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrBadTolerance)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	if da, db, ok := bothDense(a, b); ok {
		for idx := range da.data {
			if !closeEnough(da.data[idx], db.data[idx], rtol, atol) {
				return false, nil
			}
		}

		return true, nil
	}

	rows, cols := a.Rows(), a.Cols()
	var i, j uint32
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, atErrorf("AllClose", i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, atErrorf("AllClose", i, j, err)
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough is the scalar predicate of AllClose.
// Exact equality short-circuits (covers equal infinities); NaN never matches.
func closeEnough(x, y, rtol, atol float64) bool {
	if x == y {
		return true
	}
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}

	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}
