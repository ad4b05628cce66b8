// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package classify provides simple classifiers over real-valued
// features, used to draw example decision regions.
package classify

import (
	"cmp"
	"fmt"
	"runtime"
	"slices"

	"github.com/dive4dec/cs5483-25b/base/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrNotFitted = errors.New("classify: model is not fitted")
	ErrNoData    = errors.New("classify: no training data")
	ErrLength    = errors.New("classify: labels and features differ in length")
	ErrDimension = errors.New("classify: wrong number of feature columns")
)

// checkFit validates training data and returns its dimensions.
func checkFit[L any](X mat.Matrix, y []L) (n, d int, err error) {
	if X == nil {
		return 0, 0, ErrNoData
	}
	n, d = X.Dims()
	if n == 0 || d == 0 {
		return 0, 0, ErrNoData
	}
	if len(y) != n {
		return 0, 0, fmt.Errorf("%w: %d labels for %d samples", ErrLength, len(y), n)
	}
	return n, d, nil
}

// checkPredict validates a prediction batch against the fitted dimension.
func checkPredict(X mat.Matrix, d int) (int, error) {
	if d == 0 {
		return 0, ErrNotFitted
	}
	if X == nil {
		return 0, nil
	}
	n, c := X.Dims()
	if c != d {
		return 0, fmt.Errorf("%w: got %d, fitted with %d", ErrDimension, c, d)
	}
	return n, nil
}

// parallelRows calls fn for each row of an n-row batch, splitting
// the rows into one contiguous chunk per worker.
func parallelRows(n, workers int, fn func(i int) error) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// vote returns the most common label, with ties going to the smallest.
func vote[L cmp.Ordered](labels []L) L {
	counts := make(map[L]int, len(labels))
	for _, l := range labels {
		counts[l]++
	}
	keys := make([]L, 0, len(counts))
	for l := range counts {
		keys = append(keys, l)
	}
	slices.Sort(keys)
	best := keys[0]
	for _, l := range keys[1:] {
		if counts[l] > counts[best] {
			best = l
		}
	}
	return best
}
