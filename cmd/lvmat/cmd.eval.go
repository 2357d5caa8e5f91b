package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmat/matrix"
)

var errMissingRight = errors.New("operation requires --right")

type evalCmd struct {
	Op     string        `arg:"" enum:"kronecker,hadamard,horicat,mul,add,sub,transpose,scale,invert" help:"operation: kronecker, hadamard, horicat, mul, add, sub, transpose, scale, invert"`
	Left   *matrix.Dense `name:"left" short:"l" required:"" help:"left operand; rows separated by ';', columns by ','"`
	Right  *matrix.Dense `name:"right" short:"r" help:"right operand of binary operations"`
	Scalar float64       `name:"scalar" short:"k" default:"1" help:"factor for scale, numerator for invert"`
}

var binaryOps = map[string]func(a, b matrix.Matrix) (matrix.Matrix, error){
	"kronecker": matrix.Kronecker,
	"hadamard":  matrix.Hadamard,
	"horicat":   matrix.HoriCat,
	"mul":       matrix.Mul,
	"add":       matrix.Add,
	"sub":       matrix.Sub,
}

func (t evalCmd) Run(g *Global) (err error) {
	var res matrix.Matrix

	defer t.Left.Release()

	switch t.Op {
	case "transpose":
		res, err = matrix.Transpose(t.Left)
	case "scale":
		err = matrix.MulByScalar(t.Scalar, t.Left)
		res = t.Left
	case "invert":
		err = matrix.Invert(t.Scalar, t.Left)
		res = t.Left
	default:
		if t.Right == nil {
			return fmt.Errorf("eval %s: %w", t.Op, errMissingRight)
		}
		defer t.Right.Release()
		res, err = binaryOps[t.Op](t.Left, t.Right)
	}

	if err != nil {
		return fmt.Errorf("eval %s: %w", t.Op, err)
	}

	if err = g.report(t.Op+":", res); err != nil {
		return fmt.Errorf("eval %s: %w", t.Op, err)
	}

	if res != matrix.Matrix(t.Left) {
		release(res)
	}

	return nil
}
