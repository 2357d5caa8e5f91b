package main

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/katalvlaran/lvmat/matrix"
)

const (
	rowSep = ";"
	colSep = ","
)

var errEmptyLiteral = errors.New("empty matrix literal")

var denseType = reflect.TypeOf(&matrix.Dense{})

// parseLiteral reads "1,2;3,4" as [[1 2] [3 4]].
// Whitespace around numbers is ignored; ragged rows are rejected.
func parseLiteral(s string) (*matrix.Dense, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errEmptyLiteral
	}

	lines := strings.Split(s, rowSep)
	rows := make([][]float64, 0, len(lines))
	for i, line := range lines {
		fields := strings.Split(line, colSep)
		row := make([]float64, 0, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("literal %q: element [%d,%d]: %w", s, i, j, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("literal %q: %w", s, err)
	}

	return m, nil
}

// parseLiteralFlag decodes a *matrix.Dense flag value.
func parseLiteralFlag(ctx *kong.DecodeContext, target reflect.Value) (err error) {
	var raw string

	if err = ctx.Scan.PopValueInto("matrix", &raw); err != nil {
		return err
	}

	m, err := parseLiteral(raw)
	if err != nil {
		return err
	}

	target.Set(reflect.ValueOf(m))

	return nil
}
