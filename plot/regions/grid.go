// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regions

import (
	"github.com/dive4dec/cs5483-25b/colors/palette"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// Grid is a regular grid of class color indexes. It implements
// the gonum plotter.GridXYZ interface, with column c at XS[c]
// and row r at YS[r].
type Grid struct {
	XS, YS []float64

	// Index[c*len(YS)+r] is the color index at (XS[c], YS[r]).
	Index []int
}

// Dims returns the number of columns and rows of the grid.
func (g *Grid) Dims() (c, r int) {
	return len(g.XS), len(g.YS)
}

// At returns the color index at column c, row r.
func (g *Grid) At(c, r int) int {
	return g.Index[c*len(g.YS)+r]
}

// Z returns the color index at column c, row r.
func (g *Grid) Z(c, r int) float64 {
	return float64(g.At(c, r))
}

// X returns the coordinate of column c.
func (g *Grid) X(c int) float64 {
	return g.XS[c]
}

// Y returns the coordinate of row r.
func (g *Grid) Y(r int) float64 {
	return g.YS[r]
}

// cellEdges returns the extent of cell i when len(vs) cells tile
// [vs[0], vs[len(vs)-1]] evenly. The cell of sample i contains vs[i].
func cellEdges(vs []float64, i int) (lo, hi float64) {
	n := len(vs)
	w := (vs[n-1] - vs[0]) / float64(n)
	lo, hi = vs[0]+float64(i)*w, vs[0]+float64(i+1)*w
	if i == n-1 {
		hi = vs[n-1]
	}
	return
}

// cells presents a Grid to a heat map with each value at the center
// of its tile, so that the heat map cells end at the grid extent.
type cells struct {
	*Grid
}

func (c cells) X(i int) float64 {
	lo, hi := cellEdges(c.XS, i)
	return 0.5 * (lo + hi)
}

func (c cells) Y(j int) float64 {
	lo, hi := cellEdges(c.YS, j)
	return 0.5 * (lo + hi)
}

// Fill draws each grid cell in the color of its class index.
// It is a gonum heat map whose palette has one color per index.
type Fill struct {
	*plotter.HeatMap
}

// NewFill returns a Fill for the given grid, with the colors of pal
// at the given opacity, from 0 to 1.
func NewFill(g *Grid, pal palette.Categorical, alpha float64) *Fill {
	n := 2 // a heat map needs Min < Max
	for _, idx := range g.Index {
		n = max(n, idx+1)
	}
	cols := make(palette.Categorical, n)
	for i := range cols {
		cols[i] = palette.WithAlpha(pal.At(i), alpha)
	}
	hm := plotter.NewHeatMap(cells{g}, cols)
	hm.Min, hm.Max = 0, float64(n-1)
	return &Fill{HeatMap: hm}
}

// GlyphBoxes returns nil: the cells need no padding.
func (f *Fill) GlyphBoxes(*plot.Plot) []plot.GlyphBox {
	return nil
}

// Boundaries draws line segments between neighboring grid cells
// that have different class indexes, implementing the plot.Plotter
// interface.
type Boundaries struct {
	Grid *Grid

	// LineStyle is the style of the boundary lines.
	LineStyle draw.LineStyle
}

// NewBoundaries returns Boundaries for the given grid.
func NewBoundaries(g *Grid, sty draw.LineStyle) *Boundaries {
	return &Boundaries{Grid: g, LineStyle: sty}
}

// Segments returns the boundary segments in data coordinates,
// each as [x0, y0, x1, y1].
func (b *Boundaries) Segments() [][4]float64 {
	g := b.Grid
	cols, rows := g.Dims()
	var segs [][4]float64
	for i := 0; i < cols; i++ {
		x0, x1 := cellEdges(g.XS, i)
		for j := 0; j < rows; j++ {
			y0, y1 := cellEdges(g.YS, j)
			idx := g.At(i, j)
			if i+1 < cols && g.At(i+1, j) != idx {
				segs = append(segs, [4]float64{x1, y0, x1, y1})
			}
			if j+1 < rows && g.At(i, j+1) != idx {
				segs = append(segs, [4]float64{x0, y1, x1, y1})
			}
		}
	}
	return segs
}

// Plot implements the plot.Plotter interface.
func (b *Boundaries) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, s := range b.Segments() {
		c.StrokeLine2(b.LineStyle, trX(s[0]), trY(s[1]), trX(s[2]), trY(s[3]))
	}
}

// DataRange implements the plot.DataRanger interface.
func (b *Boundaries) DataRange() (xmin, xmax, ymin, ymax float64) {
	return gridRange(b.Grid)
}

func gridRange(g *Grid) (xmin, xmax, ymin, ymax float64) {
	cols, rows := g.Dims()
	if cols == 0 || rows == 0 {
		return
	}
	return g.XS[0], g.XS[cols-1], g.YS[0], g.YS[rows-1]
}
