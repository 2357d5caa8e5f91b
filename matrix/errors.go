// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Kernels wrap
// with fmt.Errorf("<Op>: %w", ErrX) via matrixErrorf; callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil/released -> zero dimension -> shape compatibility -> overflow -> allocation.

var (
	// ErrInvalidDimension is returned when a row or column count is zero, either
	// at construction or on an operand handed to a kernel.
	ErrInvalidDimension = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Add/Sub/Hadamard on different shapes, Mul where a.Cols != b.Rows,
	// or HoriCat with different row counts. It is a specialization of
	// ErrInvalidDimension: errors.Is(err, ErrInvalidDimension) holds as well.
	ErrDimensionMismatch = fmt.Errorf("%w: operand shapes are incompatible", ErrInvalidDimension)

	// ErrOverflow signals that a result shape or its byte size is not
	// representable (Kronecker limits, widened HoriCat column count).
	ErrOverflow = errors.New("matrix: dimension overflow")

	// ErrAllocationFailure signals that storage for a new Dense could not be obtained.
	ErrAllocationFailure = errors.New("matrix: allocation failure")

	// ErrNilMatrix indicates that a nil or released Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil or released matrix")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadTolerance signals a NaN or ±Inf tolerance passed to AllClose.
	ErrBadTolerance = errors.New("matrix: tolerance must be finite")
)
