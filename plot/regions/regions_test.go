// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regions

import (
	"errors"
	"testing"

	"github.com/dive4dec/cs5483-25b/base/randx"
	"github.com/dive4dec/cs5483-25b/colors/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// recorder is a classifier that splits on the first coordinate
// and remembers the batches it was asked to predict.
type recorder struct {
	batches [][][2]float64
}

func (rc *recorder) Predict(X mat.Matrix) ([]string, error) {
	n, _ := X.Dims()
	batch := make([][2]float64, n)
	out := make([]string, n)
	for i := range n {
		batch[i] = [2]float64{X.At(i, 0), X.At(i, 1)}
		if X.At(i, 0) < 0.5 {
			out[i] = "A"
		} else {
			out[i] = "B"
		}
	}
	rc.batches = append(rc.batches, batch)
	return out, nil
}

func square() (*mat.Dense, []string) {
	return mat.NewDense(4, 2, []float64{0, 0, 1, 1, 0, 1, 1, 0}), []string{"A", "A", "B", "B"}
}

func TestSquareScenario(t *testing.T) {
	X, y := square()
	rc := &recorder{}
	r, err := Compute[string](X, y, rc, &Options[string]{Resolution: 2})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, r.Classes)
	assert.Equal(t, 0.0, r.X.Min)
	assert.Equal(t, 1.0, r.X.Max)
	assert.Equal(t, 0.0, r.Y.Min)
	assert.Equal(t, 1.0, r.Y.Max)

	require.Len(t, rc.batches, 1)
	assert.Equal(t, [][2]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, rc.batches[0])
	assert.Equal(t, []string{"A", "A", "B", "B"}, r.Predicted)
	assert.Equal(t, []int{0, 0, 1, 1}, r.GridIndex)
	assert.Equal(t, []int{0, 0, 1, 1}, r.LabelIndex)
	assert.Empty(t, r.Missing)

	plt := plot.New()
	got, err := Render[string](plt, X, y, &recorder{}, &Options[string]{Resolution: 2})
	require.NoError(t, err)
	assert.Same(t, plt, got)
	assert.Equal(t, 0.0, plt.X.Min)
	assert.Equal(t, 1.0, plt.X.Max)
	assert.Equal(t, 0.0, plt.Y.Min)
	assert.Equal(t, 1.0, plt.Y.Max)

	legend := r.Legend(nil)
	require.Len(t, legend, 2)
	assert.Equal(t, "A", legend[0].Name)
	assert.Equal(t, "B", legend[1].Name)
	assert.NotEqual(t, legend[0].Color(), legend[1].Color())
	assertLegendRows(t, plt, "Classes", "A", "B")
}

func TestDerivedClasses(t *testing.T) {
	X := mat.NewDense(5, 2, []float64{0, 0, 1, 0, 2, 0, 3, 0, 4, 1})
	y := []int{3, 1, 2, 1, 3}
	clf := ClassifierFunc[int](func(X mat.Matrix) ([]int, error) {
		n, _ := X.Dims()
		return make([]int, n), nil
	})
	r, err := Compute[int](X, y, clf, &Options[int]{Resolution: 3})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, r.Classes)
	assert.Equal(t, []int{2, 0, 1, 0, 2}, r.LabelIndex)
	// predicted 0 is not a class
	assert.Equal(t, []int{0}, r.Missing)
	assert.Equal(t, []string{"1", "2", "3"}, r.ClassNames())

	assert.Equal(t, []string{"a", "b", "c"}, Unique([]string{"c", "a", "b", "a", "c"}))
}

func TestTargetNamesOrder(t *testing.T) {
	X, y := square()
	r, err := Compute[string](X, y, &recorder{}, &Options[string]{TargetNames: []string{"B", "A"}, Resolution: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, r.Classes)
	assert.Equal(t, []int{1, 1, 0, 0}, r.GridIndex)
	assert.Equal(t, []int{1, 1, 0, 0}, r.LabelIndex)

	legend := r.Legend(nil)
	assert.Equal(t, "B", legend[0].Name)
	assert.Len(t, legend, 2)
}

func TestDuplicateTargetNames(t *testing.T) {
	X, y := square()
	plt := plot.New()
	opts := &Options[string]{TargetNames: []string{"A", "A", "B", "A"}, Resolution: 2}
	_, err := Render[string](plt, X, y, &recorder{}, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A", "B", "A"}, opts.TargetNames)

	r, err := Compute[string](X, y, &recorder{}, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, r.Classes)
	assert.Equal(t, []int{0, 0, 1, 1}, r.GridIndex)
	assert.Len(t, r.Legend(nil), 2)
	assertLegendRows(t, plt, "Classes", "A", "B")
}

// assertLegendRows asserts that the legend of plt has exactly the
// given rows, by comparing its extent with a legend of those rows.
func assertLegendRows(t *testing.T, plt *plot.Plot, rows ...string) {
	t.Helper()
	c := draw.New(vgimg.New(4*vg.Inch, 3*vg.Inch))
	want := plot.NewLegend()
	want.Top, want.Left = true, true
	for _, row := range rows {
		want.Add(row)
	}
	assert.True(t, plt.Legend.Top)
	assert.True(t, plt.Legend.Left)
	assert.Equal(t, want.Rectangle(c), plt.Legend.Rectangle(c))
}

func TestMissingTargetName(t *testing.T) {
	X, y := square()
	plt := plot.New()
	opts := &Options[string]{TargetNames: []string{"A"}, Resolution: 2}
	assert.NotPanics(t, func() {
		_, err := Render[string](plt, X, y, &recorder{}, opts)
		assert.NoError(t, err)
	})

	r, err := Compute[string](X, y, &recorder{}, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, r.Missing)
	// unknown labels fall back to the first color
	assert.Equal(t, []int{0, 0, 0, 0}, r.LabelIndex)
	assert.Len(t, r.Legend(nil), 1)
}

func TestPredictionErrorPassesThrough(t *testing.T) {
	X, y := square()
	errPredict := errors.New("model not ready")
	clf := ClassifierFunc[string](func(mat.Matrix) ([]string, error) {
		return nil, errPredict
	})
	_, err := Render[string](plot.New(), X, y, clf, nil)
	assert.Same(t, errPredict, err)
}

func TestInputErrors(t *testing.T) {
	X, y := square()
	rc := &recorder{}

	_, err := Render[string](nil, X, y, rc, nil)
	assert.ErrorIs(t, err, ErrNoPlot)

	_, err = Compute[string](nil, y, rc, nil)
	assert.ErrorIs(t, err, ErrNoData)

	X3 := mat.NewDense(2, 3, []float64{0, 1, 2, 3, 4, 5})
	_, err = Compute[string](X3, y[:2], rc, nil)
	assert.ErrorIs(t, err, ErrDimension)

	_, err = Compute[string](X, y[:3], rc, nil)
	assert.ErrorIs(t, err, ErrLength)

	Xinf := mat.NewDense(1, 2, []float64{0, 1})
	Xinf.Set(0, 1, 1/zero())
	_, err = Compute[string](Xinf, y[:1], rc, nil)
	assert.ErrorIs(t, err, ErrNotFinite)

	short := ClassifierFunc[string](func(mat.Matrix) ([]string, error) {
		return []string{"A"}, nil
	})
	_, err = Compute[string](X, y, short, &Options[string]{Resolution: 2})
	assert.ErrorIs(t, err, ErrPredictionCount)
	assert.Empty(t, rc.batches)
}

func zero() float64 { return 0 }

func TestGridSpansBoundingBox(t *testing.T) {
	rnd := randx.NewSysRand(5)
	n := 40
	X := mat.NewDense(n, 2, nil)
	y := make([]string, n)
	for i := range n {
		X.Set(i, 0, randx.GaussianGen(2, 3, rnd))
		X.Set(i, 1, randx.GaussianGen(10, 2, rnd))
		y[i] = []string{"x", "y", "z"}[i%3]
	}
	rc := &recorder{}
	opts := &Options[string]{Resolution: 7}
	r, err := Compute[string](X, y, rc, opts)
	require.NoError(t, err)

	xmin, xmax := mat.Min(X.ColView(0)), mat.Max(X.ColView(0))
	ymin, ymax := mat.Min(X.ColView(1)), mat.Max(X.ColView(1))
	assert.Equal(t, xmin, r.X.Min)
	assert.Equal(t, xmax, r.X.Max)
	assert.Equal(t, ymin, r.Y.Min)
	assert.Equal(t, ymax, r.Y.Max)

	require.Len(t, rc.batches, 1)
	assert.Len(t, rc.batches[0], 49)
	assert.Equal(t, [2]float64{xmin, ymin}, rc.batches[0][0])
	assert.Equal(t, [2]float64{xmax, ymax}, rc.batches[0][48])
	assert.Len(t, r.XS, 7)
	assert.InDelta(t, (xmax-xmin)/6, r.XS[1]-r.XS[0], 1e-12)

	plt := plot.New()
	Draw(plt, r, nil)
	assert.Equal(t, xmin, plt.X.Min)
	assert.Equal(t, xmax, plt.X.Max)
	assert.Equal(t, ymin, plt.Y.Min)
	assert.Equal(t, ymax, plt.Y.Max)
	assert.Len(t, r.Legend(nil), 3)
}

func TestDefaultResolution(t *testing.T) {
	X, y := square()
	rc := &recorder{}
	r, err := Compute[string](X, y, rc, nil)
	require.NoError(t, err)
	assert.Len(t, r.Predicted, DefaultResolution*DefaultResolution)
	assert.Len(t, r.XS, DefaultResolution)
}

func TestSinglePoint(t *testing.T) {
	X := mat.NewDense(1, 2, []float64{2, 3})
	r, err := Compute[string](X, []string{"A"}, &recorder{}, &Options[string]{Resolution: 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 2, 2}, r.XS)
	assert.Len(t, r.Predicted, 16)
	plt := plot.New()
	Draw(plt, r, nil)
	assert.Equal(t, 2.0, plt.X.Min)
	assert.Equal(t, 2.0, plt.X.Max)

	// drawing widens the zero-width ranges
	Image(plt, 2*vg.Inch, 2*vg.Inch)
	assert.Equal(t, [2]float64{1, 3}, [2]float64{plt.X.Min, plt.X.Max})
	assert.Equal(t, [2]float64{2, 4}, [2]float64{plt.Y.Min, plt.Y.Max})
}

func TestGrid(t *testing.T) {
	g := &Grid{XS: []float64{0, 1, 2}, YS: []float64{0, 2}, Index: []int{0, 0, 0, 1, 1, 1}}
	var _ plotter.GridXYZ = g
	c, r := g.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, r)
	assert.Equal(t, 1.0, g.Z(1, 1))
	assert.Equal(t, 0.0, g.Z(1, 0))
	assert.Equal(t, 2.0, g.X(2))
	assert.Equal(t, 2.0, g.Y(1))

	lo, hi := cellEdges(g.XS, 0)
	assert.InDeltaSlice(t, []float64{0, 2.0 / 3}, []float64{lo, hi}, 1e-12)
	lo, hi = cellEdges(g.XS, 1)
	assert.InDeltaSlice(t, []float64{2.0 / 3, 4.0 / 3}, []float64{lo, hi}, 1e-12)
	lo, hi = cellEdges(g.XS, 2)
	assert.InDeltaSlice(t, []float64{4.0 / 3, 2}, []float64{lo, hi}, 1e-12)

	xmin, xmax, ymin, ymax := NewFill(g, nil, 0.4).DataRange()
	assert.InDeltaSlice(t, []float64{0, 2, 0, 2}, []float64{xmin, xmax, ymin, ymax}, 1e-12)
}

func TestFillColors(t *testing.T) {
	g := &Grid{XS: []float64{0, 1}, YS: []float64{0, 1}, Index: []int{0, 2, 1, 0}}
	f := NewFill(g, palette.Set1, 0.5)
	assert.Equal(t, 0.0, f.Min)
	assert.Equal(t, 2.0, f.Max)
	cols := f.Palette.Colors()
	require.Len(t, cols, 3)
	for i, c := range cols {
		assert.Equal(t, palette.WithAlpha(palette.Set1.At(i), 0.5), c)
	}
	assert.Nil(t, f.GlyphBoxes(nil))

	// a single class still gets a valid dynamic range
	one := NewFill(&Grid{XS: []float64{0, 1}, YS: []float64{0, 1}, Index: make([]int, 4)}, palette.Set1, 0.4)
	assert.Less(t, one.Min, one.Max)
}

func TestBoundarySegments(t *testing.T) {
	X, y := square()
	r, err := Compute[string](X, y, &recorder{}, &Options[string]{Resolution: 2})
	require.NoError(t, err)
	var st Style
	st.Defaults()
	b := NewBoundaries(r.Grid(), st.BoundaryStyle)
	assert.Equal(t, [][4]float64{{0.5, 0, 0.5, 0.5}, {0.5, 0.5, 0.5, 1}}, b.Segments())
}

func TestStyleDefaults(t *testing.T) {
	st := Style{Alpha: 0.8, LegendTitle: "Species"}
	st.Defaults()
	assert.Equal(t, 0.8, st.Alpha)
	assert.Equal(t, "Species", st.LegendTitle)
	assert.Equal(t, 9, st.Palette.Len())

	var def Style
	def.Defaults()
	assert.Equal(t, 0.4, def.Alpha)
	assert.Equal(t, "Classes", def.LegendTitle)
}
