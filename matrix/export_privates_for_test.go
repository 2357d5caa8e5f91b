// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for private helpers.
//
// Purpose:
//   - Expose the allocator and the Kronecker byte-limit predicate to matrix_test ONLY.
//   - Compiled only with `go test` (the _test.go suffix), never in production builds.

// AllocateTestOnly passes through to allocate.
func AllocateTestOnly(rows, cols uint32, maxBytes uint64) ([]float64, error) {
	return allocate(rows, cols, maxBytes)
}

// KroneckerBytesExceededTestOnly passes through to kroneckerBytesExceeded.
func KroneckerBytesExceededTestOnly(rows, cols uint64) bool {
	return kroneckerBytesExceeded(rows, cols)
}

// CloseEnoughTestOnly passes through to closeEnough.
func CloseEnoughTestOnly(x, y, rtol, atol float64) bool {
	return closeEnough(x, y, rtol, atol)
}
