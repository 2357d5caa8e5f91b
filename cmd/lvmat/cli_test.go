package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/katalvlaran/lvmat/matrix"
	"github.com/logrusorgru/aurora"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var (
		cli shell
		out bytes.Buffer
	)

	cli.Stdout = &out
	cli.Au = aurora.NewAurora(false)

	parser, err := kong.New(&cli, options(&cli.Global)...)
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	if err != nil {
		return out.String(), err
	}

	err = ctx.Run()

	return out.String(), err
}

const demoOutput = `Matrix l:
  1   1
  2   2
Matrix r:
  5   6
  5   6
KroneckerProduct:
  5   6   5   6
  5   6   5   6
 10  12  10  12
 10  12  10  12
HadamardMultiplication:
  5   6
 10  12
HorizontalConcatenation:
  1   1   5   6
  2   2   5   6
Basic matrix multiplcation:
 10  12
 20  24
Basic matrix addition:
  6   7
  7   8
Basic matrix subtraction:
 -4  -5
 -3  -4
Transposition:
  1   2
  1   2
`

func TestDemo(t *testing.T) {
	t.Run("default_size_matches_reference_output", func(t *testing.T) {
		out, err := runCLI(t, "demo")
		require.NoError(t, err)
		require.Equal(t, demoOutput, out)
	})

	t.Run("verbose_does_not_change_stdout", func(t *testing.T) {
		out, err := runCLI(t, "-vv", "demo")
		require.NoError(t, err)
		require.Equal(t, demoOutput, out)
	})

	t.Run("writes_heatmaps", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "maps")
		_, err := runCLI(t, "demo", "--size", "3", "--heatmap-dir", dir)
		require.NoError(t, err)

		for _, name := range []string{"l", "r", "kronecker", "hadamard", "horicat", "mul", "add", "sub", "transpose"} {
			fi, err := os.Stat(filepath.Join(dir, name+".png"))
			require.NoError(t, err, name)
			require.Positive(t, fi.Size(), name)
		}
	})

	t.Run("zero_size_is_rejected", func(t *testing.T) {
		_, err := runCLI(t, "demo", "--size", "0")
		require.ErrorIs(t, err, matrix.ErrInvalidDimension)
	})
}

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"mul", []string{"eval", "mul", "--left", "1,2;3,4", "--right", "5,6;7,8"}, "mul:\n 19  22\n 43  50\n"},
		{"horicat", []string{"eval", "horicat", "-l", "1;2", "-r", "3,4;5,6"}, "horicat:\n  1   3   4\n  2   5   6\n"},
		{"transpose", []string{"eval", "transpose", "--left", "1,2,3"}, "transpose:\n  1\n  2\n  3\n"},
		{"scale", []string{"eval", "scale", "--left=-1,2", "--scalar", "3"}, "scale:\n -3   6\n"},
		{"invert", []string{"eval", "invert", "--left", "1,2;4,8", "-k", "8"}, "invert:\n  8   4\n  2   1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := runCLI(t, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	_, err := runCLI(t, "eval", "add", "--left", "1,2")
	require.ErrorIs(t, err, errMissingRight)

	_, err = runCLI(t, "eval", "add", "--left", "1,2", "--right", "1;2")
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = runCLI(t, "eval", "frobnicate", "--left", "1")
	require.Error(t, err)

	_, err = runCLI(t, "eval", "mul", "--left", "1,x", "--right", "1")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "lvmat")
}
