// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset provides labeled 2D datasets: loading them from
// delimited text files and generating synthetic ones.
package dataset

import (
	"fmt"
	"math"

	"github.com/dive4dec/cs5483-25b/base/errors"
	"github.com/dive4dec/cs5483-25b/base/minmax"
	"github.com/dive4dec/cs5483-25b/base/randx"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrNoRows    = errors.New("dataset: no data rows")
	ErrNoColumn  = errors.New("dataset: column not found")
	ErrTooNarrow = errors.New("dataset: need two feature columns and a label column")
)

// Dataset is a set of 2D points with a string label for each.
type Dataset struct {

	// Names are the names of the two feature columns.
	Names [2]string

	// Label is the name of the label column.
	Label string

	// X has one row per sample and two columns.
	X *mat.Dense

	// Y has the label of each sample.
	Y []string
}

// Len returns the number of samples.
func (ds *Dataset) Len() int {
	return len(ds.Y)
}

// Range returns the range of the given feature column.
func (ds *Dataset) Range(col int) minmax.F64 {
	var r minmax.F64
	r.SetInfinity()
	for i := range ds.Len() {
		r.FitValInRange(ds.X.At(i, col))
	}
	return r
}

func newDataset(n int) *Dataset {
	return &Dataset{
		Names: [2]string{"x1", "x2"},
		Label: "y",
		X:     mat.NewDense(n, 2, nil),
		Y:     make([]string, n),
	}
}

// Blobs returns n points drawn from isotropic gaussians of the given
// standard deviation around each center, labeled "0", "1", ... by
// center. The centers get equal shares of the samples, within one,
// in shuffled order. A nil rnd uses the global random source.
func Blobs(n int, centers [][2]float64, sigma float64, rnd randx.Rand) (*Dataset, error) {
	if n <= 0 || len(centers) == 0 {
		return nil, ErrNoRows
	}
	if rnd == nil {
		rnd = randx.NewGlobalRand()
	}
	ds := newDataset(n)
	for i, k := range rnd.Perm(n) {
		c := k % len(centers)
		ds.X.Set(i, 0, randx.GaussianGen(centers[c][0], sigma, rnd))
		ds.X.Set(i, 1, randx.GaussianGen(centers[c][1], sigma, rnd))
		ds.Y[i] = fmt.Sprint(c)
	}
	return ds, nil
}

// Moons returns n points on two interleaving half circles, with
// gaussian noise of the given standard deviation added. The upper
// moon is labeled "0" and the lower one "1".
func Moons(n int, noise float64, rnd randx.Rand) (*Dataset, error) {
	if n <= 0 {
		return nil, ErrNoRows
	}
	ds := newDataset(n)
	nOuter := (n + 1) / 2
	nInner := n - nOuter
	angle := func(i, m int) float64 {
		if m <= 1 {
			return 0
		}
		return math.Pi * float64(i) / float64(m-1)
	}
	for i := range n {
		var x, y float64
		if i < nOuter {
			a := angle(i, nOuter)
			x, y = math.Cos(a), math.Sin(a)
			ds.Y[i] = "0"
		} else {
			a := angle(i-nOuter, nInner)
			x, y = 1-math.Cos(a), 0.5-math.Sin(a)
			ds.Y[i] = "1"
		}
		if noise > 0 {
			x = randx.GaussianGen(x, noise, rnd)
			y = randx.GaussianGen(y, noise, rnd)
		}
		ds.X.Set(i, 0, x)
		ds.X.Set(i, 1, y)
	}
	return ds, nil
}
