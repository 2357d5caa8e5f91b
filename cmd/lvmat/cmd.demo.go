package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/render"
)

type demoCmd struct {
	Size       uint32 `name:"size" short:"n" default:"2" help:"dimension of the generated square inputs"`
	HeatmapDir string `name:"heatmap-dir" type:"path" help:"also write a PNG heat map of every result into this directory"`
}

// demoStep is one captioned operation of the demonstration.
type demoStep struct {
	caption string
	file    string
	run     func(l, r matrix.Matrix) (matrix.Matrix, error)
}

var demoSteps = []demoStep{
	{"KroneckerProduct:", "kronecker", matrix.Kronecker},
	{"HadamardMultiplication:", "hadamard", matrix.Hadamard},
	{"HorizontalConcatenation:", "horicat", matrix.HoriCat},
	{"Basic matrix multiplcation:", "mul", matrix.Mul},
	{"Basic matrix addition:", "add", matrix.Add},
	{"Basic matrix subtraction:", "sub", matrix.Sub},
	{"Transposition:", "transpose", func(l, _ matrix.Matrix) (matrix.Matrix, error) { return matrix.Transpose(l) }},
}

// inputs builds l[i][j] = i+1 and r[i][j] = j+5.
func (t demoCmd) inputs() (l, r *matrix.Dense, err error) {
	if l, err = matrix.NewDense(t.Size, t.Size); err != nil {
		return nil, nil, err
	}

	if r, err = matrix.NewDense(t.Size, t.Size); err != nil {
		return nil, nil, err
	}

	var i, j uint32
	for i = 0; i < t.Size; i++ {
		for j = 0; j < t.Size; j++ {
			if err = l.Set(i, j, float64(i+1)); err != nil {
				return nil, nil, err
			}
			if err = r.Set(i, j, float64(j+5)); err != nil {
				return nil, nil, err
			}
		}
	}

	return l, r, nil
}

func (t demoCmd) Run(g *Global) (err error) {
	var (
		l, r *matrix.Dense
		res  matrix.Matrix
	)

	if l, r, err = t.inputs(); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	defer l.Release()
	defer r.Release()

	if t.HeatmapDir != "" {
		if err = os.MkdirAll(t.HeatmapDir, 0o755); err != nil {
			return fmt.Errorf("demo: %w", err)
		}
	}

	if err = t.emit(g, "Matrix l:", "l", l); err != nil {
		return err
	}

	if err = t.emit(g, "Matrix r:", "r", r); err != nil {
		return err
	}

	for _, step := range demoSteps {
		if res, err = step.run(l, r); err != nil {
			return fmt.Errorf("demo: %s %w", step.caption, err)
		}

		err = t.emit(g, step.caption, step.file, res)
		release(res)
		if err != nil {
			return err
		}
	}

	return nil
}

// emit reports m and, when requested, writes its heat map.
func (t demoCmd) emit(g *Global, caption, file string, m matrix.Matrix) error {
	if err := g.report(caption, m); err != nil {
		return fmt.Errorf("demo: %w", err)
	}

	if t.HeatmapDir == "" {
		return nil
	}

	path := filepath.Join(t.HeatmapDir, file+".png")
	if err := render.Heatmap(m, path, render.WithTitle(caption)); err != nil {
		return fmt.Errorf("demo: %w", err)
	}

	return nil
}
