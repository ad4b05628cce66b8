// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values.
package minmax

import "math"

// F64 represents a min / max range for float64 values.
type F64 struct {
	Min float64
	Max float64
}

// SetInfinity sets the Min to +Inf, Max to -Inf, suitable for
// iteratively calling FitValInRange.
func (mr *F64) SetInfinity() {
	mr.Min = math.Inf(1)
	mr.Max = math.Inf(-1)
}

// Range returns Max - Min
func (mr *F64) Range() float64 {
	return mr.Max - mr.Min
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max range
// returns true if we had to adjust to fit.
func (mr *F64) FitValInRange(val float64) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// Span returns n values linearly spaced from Min to Max inclusive.
// A single value is Min.
func (mr *F64) Span(n int) []float64 {
	if n <= 0 {
		return nil
	}
	vs := make([]float64, n)
	if n == 1 {
		vs[0] = mr.Min
		return vs
	}
	step := mr.Range() / float64(n-1)
	for i := range vs {
		vs[i] = mr.Min + float64(i)*step
	}
	vs[n-1] = mr.Max
	return vs
}
