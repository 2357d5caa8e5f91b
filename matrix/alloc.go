// SPDX-License-Identifier: MIT

package matrix

import (
	"math/bits"
	"runtime"
)

// elemSize is sizeof(float64) in bytes.
const elemSize = 8

// maxInt is the largest slice length the platform can address.
const maxInt = uint64(^uint(0) >> 1)

// allocate returns a zero-filled buffer of rows*cols elements or ErrAllocationFailure.
// Implementation:
//   - Stage 1: compute element count and byte size in 64-bit arithmetic
//     (bits.Mul64 reports a carry instead of wrapping).
//   - Stage 2: reject sizes above maxBytes or the addressable int range.
//   - Stage 3: make(); a runtime makeslice panic is converted into ErrAllocationFailure.
//
// There is exactly one allocation, so nothing needs rolling back on failure.
// Complexity: O(rows*cols) zeroing by the runtime.
func allocate(rows, cols uint32, maxBytes uint64) (buf []float64, err error) {
	n := uint64(rows) * uint64(cols) // < 2^64 since both factors < 2^32
	hi, size := bits.Mul64(n, elemSize)
	if hi != 0 || size > maxBytes || n > maxInt {
		return nil, ErrAllocationFailure
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			buf, err = nil, ErrAllocationFailure
		}
	}()

	return make([]float64, int(n)), nil
}
