// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand validation.
//  - Keep kernels minimal by delegating nil/zero/shape/overflow checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    wrap uniformly and callers can still match with errors.Is.
//
// Note:
//  - Each composite validator follows a fixed sequence:
//    NotNil → NonZero → shape compatibility → overflow.
//  - All checks are O(1), deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
	"math/bits"
)

// KroneckerByteLimit is the largest byte size a Kronecker result may request
// before the product is rejected with ErrOverflow.
// 0x3FFFFFFF00000001 is (2^31-1)^2.
const KroneckerByteLimit uint64 = 0x3FFFFFFF00000001

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is usable: non-nil interface,
// non-nil *Dense pointer, and not released.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d.Released() {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonZero ensures both dimensions are positive.
// Assumes m is not nil (caller must ensure).
func ValidateNonZero(m Matrix) error {
	if m.Rows() == 0 || m.Cols() == 0 {
		return validatorErrorf("ValidateNonZero", ErrInvalidDimension)
	}

	return nil
}

// ValidateOperand is the composite NotNil → NonZero used for every kernel input.
func ValidateOperand(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateNonZero(m)
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// validateBinary runs ValidateOperand on both inputs, left first.
func validateBinary(tag string, a, b Matrix) error {
	if err := ValidateOperand(a); err != nil {
		return validatorErrorf(tag, err)
	}
	if err := ValidateOperand(b); err != nil {
		return validatorErrorf(tag, err)
	}

	return nil
}

// ValidateBinarySameShape – Composite: Operand(a) → Operand(b) → SameShape.
// Used by Add, Sub and Hadamard.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := validateBinary("ValidateBinarySameShape", a, b); err != nil {
		return err
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – Composite: Operand(a) → Operand(b) → a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	if err := validateBinary("ValidateMulCompatible", a, b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateHoriCat – Composite: Operand(a) → Operand(b) → a.Rows == b.Rows →
// a.Cols + b.Cols representable in uint32.
func ValidateHoriCat(a, b Matrix) error {
	if err := validateBinary("ValidateHoriCat", a, b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateHoriCat: Rows", ErrDimensionMismatch)
	}
	if uint64(a.Cols())+uint64(b.Cols()) > math.MaxUint32 {
		return validatorErrorf("ValidateHoriCat: Columns", ErrOverflow)
	}

	return nil
}

// ValidateKronecker checks that the Kronecker product of a and b is representable.
// Implementation (order is part of the contract):
//   - Stage 1: any of the four dimensions zero → ErrInvalidDimension
//     (nil/released operands → ErrNilMatrix before that).
//   - Stage 2: a.Rows*b.Rows*a.Cols*b.Cols*8 > KroneckerByteLimit → ErrOverflow.
//     Computed in 64-bit arithmetic; an intermediate carry out of 64 bits
//     counts as exceeding the limit.
//   - Stage 3: a.Rows*b.Rows > MaxUint32 or a.Cols*b.Cols > MaxUint32 → ErrOverflow.
//
// Complexity: O(1).
func ValidateKronecker(a, b Matrix) error {
	if err := validateBinary("ValidateKronecker", a, b); err != nil {
		return err
	}

	rows := uint64(a.Rows()) * uint64(b.Rows()) // < 2^64
	cols := uint64(a.Cols()) * uint64(b.Cols()) // < 2^64
	if kroneckerBytesExceeded(rows, cols) {
		return validatorErrorf("ValidateKronecker: Limit", ErrOverflow)
	}
	if rows > math.MaxUint32 || cols > math.MaxUint32 {
		return validatorErrorf("ValidateKronecker: Dimensions", ErrOverflow)
	}

	return nil
}

// kroneckerBytesExceeded reports rows*cols*elemSize > KroneckerByteLimit without wrapping.
func kroneckerBytesExceeded(rows, cols uint64) bool {
	hi, elems := bits.Mul64(rows, cols)
	if hi != 0 {
		return true
	}
	hi, size := bits.Mul64(elems, elemSize)

	return hi != 0 || size > KroneckerByteLimit
}
