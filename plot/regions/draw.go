// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regions

import (
	"cmp"
	"image"
	"image/color"

	"github.com/dive4dec/cs5483-25b/base/errors"
	"github.com/dive4dec/cs5483-25b/base/iox/imagex"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Render draws the decision regions of clf for the labeled points
// (X, y) onto plt and returns plt. See [Compute] for the inputs and
// [Draw] for what is drawn. opts may be nil for the defaults.
func Render[L cmp.Ordered](plt *plot.Plot, X mat.Matrix, y []L, clf Classifier[L], opts *Options[L]) (*plot.Plot, error) {
	if plt == nil {
		return nil, ErrNoPlot
	}
	r, err := Compute(X, y, clf, opts)
	if err != nil {
		return nil, err
	}
	var st Style
	if opts != nil {
		st = opts.Style
	}
	Draw(plt, r, &st)
	return plt, nil
}

// Draw adds the region fill, the sample scatter and the legend
// to plt, and sets the axis ranges to the bounding box of the
// samples. sty may be nil for the defaults.
//
// The legend title is its first row, with no thumbnail, followed by
// one row per class. When drawn, the plot widens an axis whose samples
// all share one value to that value ± 1.
func Draw[L cmp.Ordered](plt *plot.Plot, r *Regions[L], sty *Style) {
	var st Style
	if sty != nil {
		st = *sty
	}
	st.Defaults()

	g := r.Grid()
	plt.Add(NewFill(g, st.Palette, st.Alpha))
	if st.Boundaries {
		plt.Add(NewBoundaries(g, st.BoundaryStyle))
	}

	byClass := make(map[int]plotter.XYs)
	for i, idx := range r.LabelIndex {
		byClass[idx] = append(byClass[idx], r.Points[i])
	}
	for idx := range r.Classes {
		pts := byClass[idx]
		if len(pts) == 0 {
			continue
		}
		sc := errors.Log1(plotter.NewScatter(pts))
		if sc == nil {
			continue
		}
		sc.GlyphStyle = st.glyphStyle(idx)
		plt.Add(sc)
	}

	plt.X.Min, plt.X.Max = r.X.Min, r.X.Max
	plt.Y.Min, plt.Y.Max = r.Y.Min, r.Y.Max
	if st.XLabel != "" {
		plt.X.Label.Text = st.XLabel
	}
	if st.YLabel != "" {
		plt.Y.Label.Text = st.YLabel
	}

	plt.Legend.Top = true
	plt.Legend.Left = true
	plt.Legend.Add(st.LegendTitle)
	for _, e := range r.Legend(&st) {
		plt.Legend.Add(e.Name, e)
	}
}

// LegendEntry is one class in the legend,
// implementing the plot.Thumbnailer interface.
type LegendEntry struct {
	Name  string
	Index int
	Glyph draw.GlyphStyle
}

// Thumbnail implements the plot.Thumbnailer interface.
func (e LegendEntry) Thumbnail(c *draw.Canvas) {
	c.DrawGlyph(e.Glyph, c.Center())
}

// Color returns the color of the entry.
func (e LegendEntry) Color() color.Color {
	return e.Glyph.Color
}

// Legend returns one legend entry per class, in class order.
func (r *Regions[L]) Legend(sty *Style) []LegendEntry {
	var st Style
	if sty != nil {
		st = *sty
	}
	st.Defaults()
	names := r.ClassNames()
	es := make([]LegendEntry, len(names))
	for i, nm := range names {
		es[i] = LegendEntry{Name: nm, Index: i, Glyph: st.glyphStyle(i)}
	}
	return es
}

// Image draws plt into a new raster image of the given size.
func Image(plt *plot.Plot, w, h vg.Length) *image.RGBA {
	c := vgimg.New(w, h)
	plt.Draw(draw.New(c))
	return imagex.AsRGBA(c.Image())
}
