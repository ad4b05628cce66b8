// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classify

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NearestCentroid predicts the class whose mean training point is
// closest in Euclidean distance. Ties go to the smallest class.
type NearestCentroid[L cmp.Ordered] struct {

	// Classes are the sorted class labels seen by Fit.
	Classes []L

	// Centroids has one row per class, the mean of its samples.
	Centroids *mat.Dense

	// Workers is the number of goroutines used by Predict.
	// default: GOMAXPROCS
	Workers int
}

// Fit computes the centroid of each class.
func (m *NearestCentroid[L]) Fit(X mat.Matrix, y []L) error {
	n, d, err := checkFit(X, y)
	if err != nil {
		return err
	}
	classes := slices.Clone(y)
	slices.Sort(classes)
	classes = slices.Compact(classes)
	pos := make(map[L]int, len(classes))
	for i, c := range classes {
		pos[c] = i
	}

	cents := mat.NewDense(len(classes), d, nil)
	counts := make([]float64, len(classes))
	row := make([]float64, d)
	for i := range n {
		mat.Row(row, i, X)
		c := pos[y[i]]
		floats.Add(cents.RawRowView(c), row)
		counts[c]++
	}
	for c, cnt := range counts {
		floats.Scale(1/cnt, cents.RawRowView(c))
	}
	m.Classes = classes
	m.Centroids = cents
	return nil
}

// Predict returns the predicted label of each row of X.
func (m *NearestCentroid[L]) Predict(X mat.Matrix) ([]L, error) {
	d := 0
	if m.Centroids != nil {
		_, d = m.Centroids.Dims()
	}
	n, err := checkPredict(X, d)
	if err != nil || n == 0 {
		return nil, err
	}
	out := make([]L, n)
	err = parallelRows(n, m.Workers, func(i int) error {
		out[i] = m.nearest(mat.Row(nil, i, X))
		return nil
	})
	return out, err
}

// nearest returns the class of the centroid closest to xi.
func (m *NearestCentroid[L]) nearest(xi []float64) L {
	best, bestDist := 0, math.Inf(1)
	for c := range m.Classes {
		if dist := floats.Distance(xi, m.Centroids.RawRowView(c), 2); dist < bestDist {
			best, bestDist = c, dist
		}
	}
	return m.Classes[best]
}
