// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides categorical color palettes for
// assigning one color per class in plots.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/dive4dec/cs5483-25b/base/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// Categorical is a fixed, ordered list of distinct colors.
// Indexes past the end wrap around, so more categories than
// colors produce repeated colors. It implements the gonum
// plot palette.Palette interface.
type Categorical []color.Color

var (
	// Set1 is the ColorBrewer Set1 qualitative palette (9 colors).
	Set1 = MustHex("#e41a1c", "#377eb8", "#4daf4a", "#984ea3", "#ff7f00", "#ffff33", "#a65628", "#f781bf", "#999999")

	// Tab10 is the Tableau 10 qualitative palette.
	Tab10 = MustHex("#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf")
)

// Colors returns the colors of the palette.
func (c Categorical) Colors() []color.Color {
	return c
}

// Len returns the number of distinct colors.
func (c Categorical) Len() int {
	return len(c)
}

// At returns the color for the given category index,
// wrapping around modulo the palette length.
func (c Categorical) At(i int) color.Color {
	n := len(c)
	if n == 0 {
		return color.Black
	}
	i %= n
	if i < 0 {
		i += n
	}
	return c[i]
}

// FromHex returns a palette from the given hex color strings ("#rrggbb").
func FromHex(hex ...string) (Categorical, error) {
	pal := make(Categorical, len(hex))
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette: color %d: %w", i, err)
		}
		r, g, b := c.RGB255()
		pal[i] = color.NRGBA{r, g, b, 255}
	}
	return pal, nil
}

// MustHex is [FromHex] that panics on an invalid color.
func MustHex(hex ...string) Categorical {
	pal, err := FromHex(hex...)
	errors.Must(err)
	return pal
}

// Spaced returns n colors with hues evenly spaced around the
// HCL color wheel, at constant chroma and luminance.
func Spaced(n int) Categorical {
	pal := make(Categorical, n)
	for i := range pal {
		h := 360 * float64(i) / float64(n)
		r, g, b := colorful.Hcl(h, 0.4, 0.65).Clamped().RGB255()
		pal[i] = color.NRGBA{r, g, b, 255}
	}
	return pal
}

// Named returns the palette with the given name: "set1", "tab10",
// or "spaced:N" for [Spaced] with N colors.
func Named(name string) (Categorical, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); {
	case n == "" || n == "set1":
		return Set1, nil
	case n == "tab10":
		return Tab10, nil
	case strings.HasPrefix(n, "spaced:"):
		var k int
		if _, err := fmt.Sscanf(n, "spaced:%d", &k); err != nil || k <= 0 {
			return nil, fmt.Errorf("palette: invalid spaced palette %q", name)
		}
		return Spaced(k), nil
	}
	return nil, fmt.Errorf("palette: unknown palette %q", name)
}

// WithAlpha returns the color with its opacity set to alpha (0-1).
func WithAlpha(c color.Color, alpha float64) color.NRGBA {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	alpha = math.Max(0, math.Min(1, alpha))
	nc.A = uint8(math.Round(alpha * 255))
	return nc
}
