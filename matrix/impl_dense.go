// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Own storage exclusively: one allocation per instance, never shared, never resized.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Release: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxRow     = "Row"
	ctxNewFrom = "NewDenseFrom"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable via %w.
func denseErrorf(method string, row, col uint32, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both > 0 while the instance is live.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense with nil data is released (or was never constructed through NewDense)
// and is rejected by every kernel with ErrNilMatrix.
type Dense struct {
	r, c uint32    // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimension.
//   - Stage 2: resolve options and allocate one zero-filled buffer.
//
// Behavior highlights:
//   - No partially constructed instance is ever returned: on any failure the
//     result is nil and nothing was retained.
//
// Errors:
//   - ErrInvalidDimension (zero rows or cols).
//   - ErrAllocationFailure (size above the configured ceiling or not addressable).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols uint32, opts ...Option) (*Dense, error) {
	if rows == 0 || cols == 0 {
		return nil, ErrInvalidDimension
	}
	o := gatherOptions(opts...)
	buf, err := allocate(rows, cols, o.maxBytes)
	if err != nil {
		return nil, err
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseFrom builds a Dense by copying a rectangular [][]float64 literal.
// Implementation:
//   - Stage 1: validate non-empty, rectangular and representable in uint32.
//   - Stage 2: NewDense then copy row by row.
//
// Errors:
//   - ErrInvalidDimension (no rows or empty first row).
//   - ErrDimensionMismatch (ragged rows).
//   - ErrOverflow (more than MaxUint32 rows or columns).
//   - ErrAllocationFailure (from NewDense).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxNewFrom, ErrInvalidDimension)
	}
	if uint64(len(rows)) > math.MaxUint32 || uint64(len(rows[0])) > math.MaxUint32 {
		return nil, fmt.Errorf("%s: %w", ctxNewFrom, ErrOverflow)
	}
	cols := len(rows[0])
	for i := range rows {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				ctxNewFrom, i, len(rows[i]), cols, ErrDimensionMismatch)
		}
	}

	m, err := NewDense(uint32(len(rows)), uint32(cols), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewFrom, err)
	}
	for i := range rows {
		copy(m.data[i*cols:(i+1)*cols], rows[i])
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() uint32 { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() uint32 { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols uint32) { return m.r, m.c }

// Released reports whether m no longer owns storage.
func (m *Dense) Released() bool { return m == nil || m.data == nil }

// Release drops the element buffer and ends the lifetime of m.
// Subsequent kernel calls with m return ErrNilMatrix and accessors return
// ErrOutOfRange. Calling Release more than once is a no-op.
// Complexity: O(1); the buffer is reclaimed by the garbage collector.
func (m *Dense) Release() {
	if m == nil {
		return
	}
	m.data = nil
	m.r, m.c = 0, 0
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col uint32) (int, error) {
	if row >= m.r || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return int(row)*int(m.c) + int(col), nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Dense) At(row, col uint32) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Any float64 is accepted, including NaN and ±Inf.
// Complexity: O(1).
func (m *Dense) Set(row, col uint32, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i uint32) ([]float64, error) {
	if i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	c := int(m.c)
	out := make([]float64, c)
	copy(out, m.data[int(i)*c:int(i)*c+c])

	return out, nil
}

// Do visits every element in row-major order until fn returns false.
// fn must not mutate m. A released Dense visits nothing.
// Complexity: O(r*c).
func (m *Dense) Do(fn func(i, j uint32, v float64) bool) {
	if m.Released() {
		return
	}
	c := int(m.c)
	for off, v := range m.data {
		if !fn(uint32(off/c), uint32(off%c), v) {
			return
		}
	}
}

// Clone returns a deep copy (new buffer, same shape).
// Cloning a released Dense yields another released Dense.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	if m.data == nil {
		return &Dense{}
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String is a human-readable dump of rows for diagnostics.
// Not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	r, c := int(m.r), int(m.c)
	for i = 0; i < r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * c
		for j = 0; j < c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
