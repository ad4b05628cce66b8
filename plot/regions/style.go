// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regions

import (
	"image/color"
	"math"

	"github.com/dive4dec/cs5483-25b/colors/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Style has the drawing options for decision regions.
type Style struct {

	// Palette gives the color of each class index. Classes beyond its
	// length reuse its colors. default: Set1
	Palette palette.Categorical

	// Alpha is the opacity of the region fill. default: 0.4
	Alpha float64

	// PointRadius is the radius of the sample markers. default: 2.5pt
	PointRadius vg.Length

	// Ring is the color of the thin border around each sample marker.
	// default: white
	Ring color.Color

	// RingWidth is the width of the marker border. default: 0.75pt
	RingWidth vg.Length

	// Boundaries draws lines along the borders between regions.
	Boundaries bool

	// BoundaryStyle is the line style of the region borders.
	// default: black, 0.5pt
	BoundaryStyle draw.LineStyle

	// LegendTitle is the title shown above the legend. default: Classes
	LegendTitle string

	// XLabel and YLabel label the axes when non-empty.
	XLabel, YLabel string
}

// Defaults sets any unset fields to their default values.
func (st *Style) Defaults() {
	if st.Palette == nil {
		st.Palette = palette.Set1
	}
	if st.Alpha <= 0 || math.IsNaN(st.Alpha) {
		st.Alpha = 0.4
	}
	if st.PointRadius <= 0 {
		st.PointRadius = vg.Points(2.5)
	}
	if st.Ring == nil {
		st.Ring = color.White
	}
	if st.RingWidth <= 0 {
		st.RingWidth = vg.Points(0.75)
	}
	if st.BoundaryStyle.Color == nil {
		st.BoundaryStyle.Color = color.Black
	}
	if st.BoundaryStyle.Width <= 0 {
		st.BoundaryStyle.Width = vg.Points(0.5)
	}
	if st.LegendTitle == "" {
		st.LegendTitle = "Classes"
	}
}

// RingGlyph is a filled circle with a thin border,
// implementing the draw.GlyphDrawer interface.
type RingGlyph struct {
	Ring  color.Color
	Width vg.Length
}

// DrawGlyph implements the draw.GlyphDrawer interface.
func (g RingGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	var p vg.Path
	p.Move(vg.Point{X: pt.X + sty.Radius, Y: pt.Y})
	p.Arc(pt, sty.Radius, 0, 2*math.Pi)
	p.Close()
	c.Fill(p)
	if g.Width > 0 && g.Ring != nil {
		c.SetLineStyle(draw.LineStyle{Color: g.Ring, Width: g.Width})
		c.Stroke(p)
	}
}

// glyphStyle returns the marker style for the given class index.
func (st *Style) glyphStyle(idx int) draw.GlyphStyle {
	return draw.GlyphStyle{
		Color:  st.Palette.At(idx),
		Radius: st.PointRadius,
		Shape:  RingGlyph{Ring: st.Ring, Width: st.RingWidth},
	}
}
