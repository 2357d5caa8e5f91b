package main

import (
	"fmt"
	"io"
	"log"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/render"
	"github.com/logrusorgru/aurora"
)

// float64 element size, for the -v byte report.
const elemBytes = 8

type Global struct {
	Verbosity int           `help:"increase verbosity of logging" short:"v" type:"counter" default:"0"`
	Stdout    io.Writer     `kong:"-"`
	Au        aurora.Aurora `kong:"-"`
}

func (g *Global) colors() aurora.Aurora {
	if g.Au == nil {
		return aurora.NewAurora(false)
	}

	return g.Au
}

// report prints caption then m in the fixed-width text layout.
// -v logs the shape and buffer size, -vv also dumps the value.
func (g *Global) report(caption string, m matrix.Matrix) error {
	if _, err := fmt.Fprintln(g.Stdout, g.colors().Bold(caption)); err != nil {
		return err
	}

	if err := render.Text(g.Stdout, m); err != nil {
		return err
	}

	if g.Verbosity > 0 {
		size := uint64(m.Rows()) * uint64(m.Cols()) * elemBytes
		log.Printf("%s %dx%d %s\n", caption, m.Rows(), m.Cols(), humanize.Bytes(size))
	}

	if g.Verbosity > 1 {
		log.Println(caption, spew.Sdump(m))
	}

	return nil
}

// release frees m when it owns storage.
func release(m matrix.Matrix) {
	if d, ok := m.(*matrix.Dense); ok {
		d.Release()
	}
}
