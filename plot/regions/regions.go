// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package regions draws the decision regions of a 2D classifier:
// a filled map of the class predicted at every point of a dense grid
// over the bounding box of the data, overlaid with a scatter plot
// of the labeled samples and a legend of the classes.
package regions

import (
	"cmp"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/dive4dec/cs5483-25b/base/errors"
	"github.com/dive4dec/cs5483-25b/base/minmax"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/plotter"
)

var (
	ErrNoPlot          = errors.New("regions: nil plot")
	ErrNoData          = errors.New("regions: no data points")
	ErrDimension       = errors.New("regions: features must have exactly 2 columns")
	ErrLength          = errors.New("regions: labels and features differ in length")
	ErrNotFinite       = errors.New("regions: non-finite feature value")
	ErrPredictionCount = errors.New("regions: classifier returned wrong number of predictions")
)

// DefaultResolution is the default number of grid points per axis.
const DefaultResolution = 200

// Classifier predicts one label for each row of a batch of 2D
// coordinates, in the order given. The batch is an n×2 matrix.
type Classifier[L cmp.Ordered] interface {
	Predict(X mat.Matrix) ([]L, error)
}

// ClassifierFunc adapts a function to the [Classifier] interface.
type ClassifierFunc[L cmp.Ordered] func(X mat.Matrix) ([]L, error)

// Predict calls f(X).
func (f ClassifierFunc[L]) Predict(X mat.Matrix) ([]L, error) {
	return f(X)
}

// Options are the options for [Compute] and [Render].
type Options[L cmp.Ordered] struct {

	// TargetNames is the canonical ordering of the classes: the position
	// of a label in it is its color index. If nil, the sorted unique
	// labels are used.
	TargetNames []L

	// Resolution is the number of grid points per axis. default: 200
	Resolution int

	// Style configures the drawing.
	Style Style
}

// Defaults sets any unset options to their default values.
func (o *Options[L]) Defaults() {
	if o.Resolution <= 0 {
		o.Resolution = DefaultResolution
	}
	o.Style.Defaults()
}

// Regions is the result of evaluating a classifier over the
// bounding box of a labeled 2D dataset.
type Regions[L cmp.Ordered] struct {

	// Classes is the canonical class ordering.
	Classes []L

	// X and Y are the bounding box of the features.
	X, Y minmax.F64

	// XS and YS are the grid coordinates along each axis,
	// linearly spaced over the bounding box including both ends.
	XS, YS []float64

	// Predicted has the predicted label at each grid point, with
	// Predicted[i*len(YS)+j] at (XS[i], YS[j]).
	Predicted []L

	// GridIndex is the color index of each entry of Predicted.
	GridIndex []int

	// Points are the sample features.
	Points plotter.XYs

	// LabelIndex is the color index of the true label of each sample.
	LabelIndex []int

	// Missing lists labels that are not in Classes, sorted.
	// They are given color index 0.
	Missing []L
}

// Unique returns the sorted unique values of labels.
func Unique[L cmp.Ordered](labels []L) []L {
	u := slices.Clone(labels)
	slices.Sort(u)
	return slices.Compact(u)
}

// dedupe returns names without repeats, keeping the first of each
// in order. It returns nil for nil.
func dedupe[L cmp.Ordered](names []L) []L {
	if names == nil {
		return nil
	}
	seen := make(map[L]bool, len(names))
	out := make([]L, 0, len(names))
	for _, nm := range names {
		if !seen[nm] {
			seen[nm] = true
			out = append(out, nm)
		}
	}
	return out
}

// Compute evaluates clf over a Resolution×Resolution grid spanning the
// bounding box of X, and maps predicted and true labels to color
// indexes. X must be n×2 with n ≥ 1 and y must have n labels.
// Errors returned by clf are passed through unchanged.
func Compute[L cmp.Ordered](X mat.Matrix, y []L, clf Classifier[L], opts *Options[L]) (*Regions[L], error) {
	var o Options[L]
	if opts != nil {
		o = *opts
	}
	o.Defaults()

	if X == nil {
		return nil, ErrNoData
	}
	n, nc := X.Dims()
	if nc != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrDimension, nc)
	}
	if n == 0 {
		return nil, ErrNoData
	}
	if len(y) != n {
		return nil, fmt.Errorf("%w: %d labels for %d samples", ErrLength, len(y), n)
	}

	r := &Regions[L]{Points: make(plotter.XYs, n)}
	r.X.SetInfinity()
	r.Y.SetInfinity()
	for i := range n {
		x, v := X.At(i, 0), X.At(i, 1)
		if !isFinite(x) || !isFinite(v) {
			return nil, fmt.Errorf("%w: row %d", ErrNotFinite, i)
		}
		r.Points[i].X, r.Points[i].Y = x, v
		r.X.FitValInRange(x)
		r.Y.FitValInRange(v)
	}

	r.Classes = dedupe(o.TargetNames)
	if r.Classes == nil {
		r.Classes = Unique(y)
	}

	res := o.Resolution
	r.XS = r.X.Span(res)
	r.YS = r.Y.Span(res)
	grid := mat.NewDense(res*res, 2, nil)
	for i, gx := range r.XS {
		for j, gy := range r.YS {
			k := i*res + j
			grid.Set(k, 0, gx)
			grid.Set(k, 1, gy)
		}
	}

	pred, err := clf.Predict(grid)
	if err != nil {
		return nil, err
	}
	if len(pred) != res*res {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrPredictionCount, len(pred), res*res)
	}
	r.Predicted = pred

	ix := newIndexer(r.Classes)
	r.GridIndex = ix.indexes(pred)
	r.LabelIndex = ix.indexes(y)
	r.Missing = ix.missingLabels()
	if len(r.Missing) > 0 {
		slog.Warn("regions: labels missing from target names are colored as the first class", "missing", fmt.Sprint(r.Missing))
	}
	return r, nil
}

// ClassNames returns the classes formatted for display.
func (r *Regions[L]) ClassNames() []string {
	names := make([]string, len(r.Classes))
	for i, c := range r.Classes {
		names[i] = fmt.Sprint(c)
	}
	return names
}

// Grid returns the grid of color indexes.
func (r *Regions[L]) Grid() *Grid {
	return &Grid{XS: r.XS, YS: r.YS, Index: r.GridIndex}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// indexer maps labels to their position in the class list.
type indexer[L cmp.Ordered] struct {
	pos     map[L]int
	missing map[L]struct{}
}

func newIndexer[L cmp.Ordered](classes []L) *indexer[L] {
	ix := &indexer[L]{pos: make(map[L]int, len(classes)), missing: map[L]struct{}{}}
	for i, c := range classes {
		if _, ok := ix.pos[c]; !ok {
			ix.pos[c] = i
		}
	}
	return ix
}

func (ix *indexer[L]) indexes(labels []L) []int {
	idx := make([]int, len(labels))
	for i, l := range labels {
		p, ok := ix.pos[l]
		if !ok {
			ix.missing[l] = struct{}{}
		}
		idx[i] = p
	}
	return idx
}

func (ix *indexer[L]) missingLabels() []L {
	if len(ix.missing) == 0 {
		return nil
	}
	ms := make([]L, 0, len(ix.missing))
	for l := range ix.missing {
		ms = append(ms, l)
	}
	slices.Sort(ms)
	return ms
}
