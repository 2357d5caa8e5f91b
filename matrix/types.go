// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Kernels accept Matrix so that foreign implementations work through the
// generic At/Set path; *Dense operands unlock the flat-slice fast paths.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Dimensions are unsigned 32-bit counts; a live matrix always reports Rows() > 0
// and Cols() > 0.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() uint32

	// Cols returns the number of columns in the matrix.
	Cols() uint32

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i>=Rows() or j>=Cols().
	At(i, j uint32) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j uint32, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix shares no storage with the original.
	Clone() Matrix
}
