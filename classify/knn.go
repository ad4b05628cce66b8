// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classify

import (
	"cmp"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// KNN is a k-nearest-neighbor classifier: it predicts the majority
// label among the K training samples closest in Euclidean distance.
// Ties go to the smallest label.
type KNN[L cmp.Ordered] struct {

	// K is the number of neighbors that vote. default: 5
	K int

	// Workers is the number of goroutines used by Predict.
	// default: GOMAXPROCS
	Workers int

	x *mat.Dense
	y []L
}

// NewKNN returns a new KNN classifier with k neighbors.
func NewKNN[L cmp.Ordered](k int) *KNN[L] {
	return &KNN[L]{K: k}
}

// Fit stores a copy of the training data.
func (m *KNN[L]) Fit(X mat.Matrix, y []L) error {
	if _, _, err := checkFit(X, y); err != nil {
		return err
	}
	if m.K <= 0 {
		m.K = 5
	}
	m.x = mat.DenseCopyOf(X)
	m.y = append([]L(nil), y...)
	return nil
}

// Predict returns the predicted label of each row of X.
func (m *KNN[L]) Predict(X mat.Matrix) ([]L, error) {
	d := 0
	if m.x != nil {
		_, d = m.x.Dims()
	}
	n, err := checkPredict(X, d)
	if err != nil || n == 0 {
		return nil, err
	}
	out := make([]L, n)
	err = parallelRows(n, m.Workers, func(i int) error {
		out[i] = m.predictRow(mat.Row(nil, i, X))
		return nil
	})
	return out, err
}

// predictRow finds the K nearest neighbors of a single point.
func (m *KNN[L]) predictRow(xi []float64) L {
	type neighbor struct {
		dist  float64
		label L
	}
	ntrain, _ := m.x.Dims()
	k := min(m.K, ntrain)
	nbrs := make([]neighbor, 0, k+1)
	for j := 0; j < ntrain; j++ {
		dist := floats.Distance(xi, m.x.RawRowView(j), 2)
		if len(nbrs) == k && dist >= nbrs[k-1].dist {
			continue
		}
		pos := sort.Search(len(nbrs), func(a int) bool { return nbrs[a].dist > dist })
		nbrs = append(nbrs, neighbor{})
		copy(nbrs[pos+1:], nbrs[pos:])
		nbrs[pos] = neighbor{dist: dist, label: m.y[j]}
		if len(nbrs) > k {
			nbrs = nbrs[:k]
		}
	}
	labels := make([]L, len(nbrs))
	for i, nb := range nbrs {
		labels[i] = nb.label
	}
	return vote(labels)
}
