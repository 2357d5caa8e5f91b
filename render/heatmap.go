// SPDX-License-Identifier: MIT

package render

import (
	"image/color"
	"math"
	"strconv"

	"github.com/katalvlaran/lvmat/matrix"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Defaults for Heatmap.
const (
	DefaultPaletteSize = 64
	DefaultWidthInch   = 4.0
	DefaultHeightInch  = 4.0
)

const (
	panicPaletteSize = "render: WithPaletteSize: size must be >= 2"
	panicSizeInvalid = "render: WithSize: width and height must be finite and > 0"
)

// HeatmapOption configures Heatmap.
type HeatmapOption func(*heatmapOptions)

type heatmapOptions struct {
	title       string
	paletteSize int
	width       float64 // inches
	height      float64 // inches
}

// WithTitle sets the plot title. Empty means no title.
func WithTitle(title string) HeatmapOption {
	return func(o *heatmapOptions) { o.title = title }
}

// WithPaletteSize sets the number of colours in the heat palette.
// Panics if n < 2.
func WithPaletteSize(n int) HeatmapOption {
	if n < 2 {
		panic(panicPaletteSize)
	}

	return func(o *heatmapOptions) { o.paletteSize = n }
}

// WithSize sets the image size in inches.
// Panics on non-positive or non-finite values.
func WithSize(width, height float64) HeatmapOption {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		panic(panicSizeInvalid)
	}

	return func(o *heatmapOptions) { o.width, o.height = width, height }
}

func gatherHeatmapOptions(opts []HeatmapOption) heatmapOptions {
	o := heatmapOptions{
		paletteSize: DefaultPaletteSize,
		width:       DefaultWidthInch,
		height:      DefaultHeightInch,
	}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// grid is a snapshot of a matrix laid out as plotter.GridXYZ.
// Grid row r holds matrix row rows-1-r so that matrix row 0 ends up on top.
type grid struct {
	rows, cols int
	z          []float64 // row-major, already flipped
}

func (g grid) Dims() (c, r int)   { return g.cols, g.rows }
func (g grid) Z(c, r int) float64 { return g.z[r*g.cols+c] }
func (g grid) X(c int) float64    { return float64(c) }
func (g grid) Y(r int) float64    { return float64(r) }

// finiteRange reports the min and max over finite cells; ok is false when
// there are none.
func (g grid) finiteRange() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range g.z {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo, hi, ok = math.Min(lo, v), math.Max(hi, v), true
	}

	return lo, hi, ok
}

// snapshot copies m into a grid, flipping rows.
func snapshot(m matrix.Matrix) (grid, error) {
	rows, cols := m.Rows(), m.Cols()
	g := grid{rows: int(rows), cols: int(cols), z: make([]float64, int(rows)*int(cols))}
	var i, j uint32
	for i = 0; i < rows; i++ {
		base := (int(rows) - 1 - int(i)) * g.cols
		for j = 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return grid{}, err
			}
			g.z[base+int(j)] = v
		}
	}

	return g, nil
}

// Heatmap renders m as a heat map and saves it to path.
// The image format follows the extension of path (png, svg, pdf, jpg, ...).
// Non-finite elements are drawn outside the palette: +Inf with the hottest
// colour, -Inf with the coldest, NaN in grey.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrInvalidDimension for bad input.
//   - accessor errors and gonum/plot save errors (unknown extension, I/O), wrapped.
func Heatmap(m matrix.Matrix, path string, opts ...HeatmapOption) error {
	if err := matrix.ValidateOperand(m); err != nil {
		return renderErrorf("Heatmap", err)
	}
	o := gatherHeatmapOptions(opts)

	g, err := snapshot(m)
	if err != nil {
		return renderErrorf("Heatmap", err)
	}

	pal := palette.Heat(o.paletteSize, 1)
	colors := pal.Colors()
	h := plotter.NewHeatMap(g, pal)
	h.Underflow = colors[0]
	h.Overflow = colors[len(colors)-1]
	h.NaN = color.Gray{Y: 128}

	lo, hi, ok := g.finiteRange()
	if !ok {
		lo, hi = 0, 0
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	h.Min, h.Max = lo, hi

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "col"
	p.Y.Label.Text = "row"
	p.X.Tick.Marker = indexTicks(g.cols, false)
	p.Y.Tick.Marker = indexTicks(g.rows, true)
	p.Add(h)

	if err = p.Save(vg.Length(o.width)*vg.Inch, vg.Length(o.height)*vg.Inch, path); err != nil {
		return renderErrorf("Heatmap", err)
	}

	return nil
}

// maxTicks bounds the labelled ticks per axis.
const maxTicks = 10

// indexTicks labels integer cell positions with matrix indices. When flipped,
// grid position r carries the label of matrix row n-1-r.
func indexTicks(n int, flipped bool) plot.Ticker {
	return plot.TickerFunc(func(_, _ float64) []plot.Tick {
		step := (n + maxTicks - 1) / maxTicks
		ticks := make([]plot.Tick, 0, n)
		for pos := 0; pos < n; pos++ {
			idx := pos
			if flipped {
				idx = n - 1 - pos
			}
			t := plot.Tick{Value: float64(pos)}
			if idx%step == 0 {
				t.Label = strconv.Itoa(idx)
			}
			ticks = append(ticks, t)
		}

		return ticks
	})
}
