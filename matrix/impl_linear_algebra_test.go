// Package matrix_test contains unit tests for the element-wise, Mul and
// Transpose kernels.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// scenario returns the 2x2 fixtures A=[[1,2],[3,4]] and B=[[5,6],[7,8]].
func scenario(t *testing.T) (*matrix.Dense, *matrix.Dense) {
	t.Helper()

	return FromRows(t, [][]float64{{1, 2}, {3, 4}}), FromRows(t, [][]float64{{5, 6}, {7, 8}})
}

// TestScenario_2x2 pins the concrete results on both the fast and fallback paths.
func TestScenario_2x2(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		op   func(a, b matrix.Matrix) (matrix.Matrix, error)
		want [][]float64
	}{
		{"Add", matrix.Add, [][]float64{{6, 8}, {10, 12}}},
		{"Sub", matrix.Sub, [][]float64{{-4, -4}, {-4, -4}}},
		{"Hadamard", matrix.Hadamard, [][]float64{{5, 12}, {21, 32}}},
		{"Mul", matrix.Mul, [][]float64{{19, 22}, {43, 50}}},
		{"HoriCat", matrix.HoriCat, [][]float64{{1, 2, 5, 6}, {3, 4, 7, 8}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			A, B := scenario(t)

			fast, err := tc.op(A, B)
			require.NoError(t, err)
			CompareExact(t, tc.want, fast)

			slow, err := tc.op(hide{A}, B)
			require.NoError(t, err)
			CompareExact(t, tc.want, slow)

			// inputs untouched
			CompareExact(t, [][]float64{{1, 2}, {3, 4}}, A)
			CompareExact(t, [][]float64{{5, 6}, {7, 8}}, B)
		})
	}

	t.Run("Transpose", func(t *testing.T) {
		A, _ := scenario(t)
		for _, in := range []matrix.Matrix{A, hide{A}} {
			got, err := matrix.Transpose(in)
			require.NoError(t, err)
			CompareExact(t, [][]float64{{1, 3}, {2, 4}}, got)
		}
	})
}

func TestAdd_FastPath_6x6_Correctness(t *testing.T) {
	t.Parallel()

	const rows, cols = 6, 6
	A := MustDense(t, rows, cols)
	B := MustDense(t, rows, cols)
	var i, j uint32
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			MustSet(t, A, i, j, float64(i+j))
			MustSet(t, B, i, j, float64(10-int(i+j)))
		}
	}

	S, err := matrix.Add(A, B)
	require.NoError(t, err)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			require.Equal(t, 10.0, MustAt(t, S, i, j), "[%d,%d]", i, j)
		}
	}
}

// TestAddSub_RoundTrip checks Sub(Add(A,B),B) ≈ A over several shapes and seeds.
func TestAddSub_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, shape := range [][2]uint32{{1, 1}, {3, 7}, {16, 4}} {
		for seed := int64(1); seed <= 3; seed++ {
			t.Run(fmt.Sprintf("%dx%d/seed=%d", shape[0], shape[1], seed), func(t *testing.T) {
				A := RandFilledDense(t, shape[0], shape[1], seed)
				B := RandFilledDense(t, shape[0], shape[1], seed+100)

				S, err := matrix.Add(A, B)
				require.NoError(t, err)
				back, err := matrix.Sub(S, hide{B})
				require.NoError(t, err)
				CompareClose(t, back, A, 1e-12, 1e-12)
			})
		}
	}
}

func TestTranspose_Involution(t *testing.T) {
	t.Parallel()

	A := RandFilledDense(t, 5, 3, 7)
	At, err := matrix.Transpose(A)
	require.NoError(t, err)
	require.Equal(t, uint32(3), At.Rows())
	require.Equal(t, uint32(5), At.Cols())

	Att, err := matrix.Transpose(At)
	require.NoError(t, err)
	eq, err := matrix.Equal(Att, A)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestMul_Rectangular_FastEqualsFallback(t *testing.T) {
	t.Parallel()

	A := RandFilledDense(t, 4, 6, 11)
	B := RandFilledDense(t, 6, 3, 12)

	fast, err := matrix.Mul(A, B)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{A}, hide{B})
	require.NoError(t, err)

	require.Equal(t, uint32(4), fast.Rows())
	require.Equal(t, uint32(3), fast.Cols())
	CompareClose(t, fast, slow, 1e-12, 1e-12)
}

func TestMul_Identity(t *testing.T) {
	t.Parallel()

	A := RandFilledDense(t, 4, 4, 3)
	I, err := matrix.NewIdentity(4)
	require.NoError(t, err)

	AI, err := matrix.Mul(A, I)
	require.NoError(t, err)
	eq, err := matrix.Equal(AI, A)
	require.NoError(t, err)
	require.True(t, eq)
}

// TestBinaryKernels_Errors covers shape mismatch, zero dims and nil inputs.
func TestBinaryKernels_Errors(t *testing.T) {
	t.Parallel()

	ops := map[string]func(a, b matrix.Matrix) (matrix.Matrix, error){
		"Add":      matrix.Add,
		"Sub":      matrix.Sub,
		"Hadamard": matrix.Hadamard,
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			res, err := op(MustDense(t, 2, 2), MustDense(t, 2, 3))
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
			require.ErrorIs(t, err, matrix.ErrInvalidDimension)
			require.Nil(t, res)

			_, err = op(MustDense(t, 2, 2), MustDense(t, 3, 2))
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

			_, err = op(shapeOnly{0, 2}, shapeOnly{0, 2})
			require.ErrorIs(t, err, matrix.ErrInvalidDimension)
			require.NotErrorIs(t, err, matrix.ErrDimensionMismatch)

			_, err = op(nil, MustDense(t, 2, 2))
			require.ErrorIs(t, err, matrix.ErrNilMatrix)

			require.Contains(t, err.Error(), name+": ")
		})
	}

	t.Run("Mul", func(t *testing.T) {
		_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

		_, err = matrix.Mul(shapeOnly{2, 0}, shapeOnly{0, 2})
		require.ErrorIs(t, err, matrix.ErrInvalidDimension)
	})

	t.Run("Transpose", func(t *testing.T) {
		_, err := matrix.Transpose(shapeOnly{3, 0})
		require.ErrorIs(t, err, matrix.ErrInvalidDimension)

		_, err = matrix.Transpose(nil)
		require.ErrorIs(t, err, matrix.ErrNilMatrix)
	})
}

// TestFallback_AccessorFailure: a failing At aborts with no result.
func TestFallback_AccessorFailure(t *testing.T) {
	t.Parallel()

	A, B := scenario(t)
	bad := failingAt{Matrix: A, badI: 1, badJ: 1}

	for name, op := range map[string]func(a, b matrix.Matrix) (matrix.Matrix, error){
		"Add": matrix.Add, "Mul": matrix.Mul, "Kronecker": matrix.Kronecker, "HoriCat": matrix.HoriCat,
	} {
		res, err := op(bad, B)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, name)
		require.Nil(t, res, name)
	}

	res, err := matrix.Transpose(bad)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Nil(t, res)
}
