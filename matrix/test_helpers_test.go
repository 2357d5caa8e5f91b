// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Offer wrappers that force the generic (non-*Dense) code paths.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto the At/Set fallback path.
type hide struct{ matrix.Matrix }

// shapeOnly reports arbitrary dimensions without owning storage.
// Kernels must reject or fail to allocate before touching elements, so any
// At/Set call on it is a test failure surfaced as ErrOutOfRange.
type shapeOnly struct{ r, c uint32 }

func (s shapeOnly) Rows() uint32 { return s.r }
func (s shapeOnly) Cols() uint32 { return s.c }
func (s shapeOnly) At(_, _ uint32) (float64, error) { return 0, matrix.ErrOutOfRange }
func (s shapeOnly) Set(_, _ uint32, _ float64) error { return matrix.ErrOutOfRange }
func (s shapeOnly) Clone() matrix.Matrix { return s }

// failingAt is a readable matrix whose At fails at one coordinate.
type failingAt struct {
	matrix.Matrix
	badI, badJ uint32
}

func (f failingAt) At(i, j uint32) (float64, error) {
	if i == f.badI && j == f.badJ {
		return 0, matrix.ErrOutOfRange
	}

	return f.Matrix.At(i, j)
}

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c uint32) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// FromRows builds a *Dense from a literal or fails the test.
func FromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// NewFilledDense builds r×c *Dense from a row-major flat slice.
func NewFilledDense(t testing.TB, r, c uint32, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != int(r)*int(c) {
		t.Fatalf("NewFilledDense: want %d values, got %d", int(r)*int(c), len(vals))
	}
	d := MustDense(t, r, c)
	var i, j uint32
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[int(i)*int(c)+int(j)])
		}
	}

	return d
}

// RandomFill fills a Matrix with deterministic U(-1,1) values by seed.
func RandomFill(t testing.TB, m matrix.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Rows(), m.Cols()
	var i, j uint32
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				t.Fatalf("Set RandomFill(%d,%d): %v", i, j, err)
			}
		}
	}
}

// RandFilledDense returns a new r×c Dense filled with deterministic U(-1,1).
func RandFilledDense(t testing.TB, r, c uint32, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	RandomFill(t, m, seed)

	return m
}

// MustSet writes v to m[i,j] or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j uint32, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j uint32) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// ToRows materializes m as [][]float64 for readable comparisons.
func ToRows(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	var i, j uint32
	for i = 0; i < m.Rows(); i++ {
		out[i] = make([]float64, m.Cols())
		for j = 0; j < m.Cols(); j++ {
			out[i][j] = MustAt(t, m, i, j)
		}
	}

	return out
}

// CompareExact asserts got equals want element for element.
func CompareExact(t testing.TB, want [][]float64, got matrix.Matrix) {
	t.Helper()
	if int(got.Rows()) != len(want) || (len(want) > 0 && int(got.Cols()) != len(want[0])) {
		t.Fatalf("shape: want %dx%d, got %dx%d", len(want), len(want[0]), got.Rows(), got.Cols())
	}
	for i := range want {
		for j := range want[i] {
			if v := MustAt(t, got, uint32(i), uint32(j)); v != want[i][j] {
				t.Fatalf("[%d,%d]: want %v, got %v", i, j, want[i][j], v)
			}
		}
	}
}

// CompareClose asserts AllClose(a, b, rtol, atol).
func CompareClose(t testing.TB, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("matrices differ beyond rtol=%g atol=%g:\n%v\n%v", rtol, atol, ToRows(t, a), ToRows(t, b))
	}
}
