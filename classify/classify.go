// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package classify buckets a continuous attribute into a small number
// of ordered, labeled classes suitable for a discrete map legend.
//
// The class boundaries are a hybrid of data and taste: the observed
// minimum and maximum bracket a short list of interior breakpoints
// that a human curated by inspecting quantiles (see Suggest) and
// rounding them to numbers a legend reader can take in at a glance.
// Make accepts the curated breakpoints as an argument; it never
// invents them.
package classify

import (
	"fmt"
	"math"
	"sort"
)

// Breaks is a classification of a numeric attribute into len(Labels)
// ordered intervals. Bounds has one more element than Labels and is
// strictly ascending. The first interval is closed on both ends;
// every later interval is open on the left and closed on the right,
// so the intervals partition [Bounds[0], Bounds[len(Bounds)-1]].
type Breaks struct {
	Bounds []float64
	Labels []string
}

// Make brackets the curated interior breakpoints with the observed
// minimum and maximum of values and derives one display label per
// interval. Each interval is labeled by its own upper bound rounded
// to two decimals; with four interior breakpoints this yields the
// five labels a map legend shows.
//
// NaN elements of values are treated as absent and ignored. Make
// fails if no value is observed at all, or if the breakpoints are
// not strictly ascending and strictly inside the observed range.
func Make(values, interior []float64) (Breaks, error) {
	lo, hi := math.NaN(), math.NaN()
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(lo) || v < lo {
			lo = v
		}
		if math.IsNaN(hi) || v > hi {
			hi = v
		}
	}
	if math.IsNaN(lo) {
		return Breaks{}, fmt.Errorf("classify: no observed values")
	}
	if len(interior) == 0 {
		return Breaks{}, fmt.Errorf("classify: no interior breakpoints")
	}
	for i := 1; i < len(interior); i++ {
		if !(interior[i-1] < interior[i]) {
			return Breaks{}, fmt.Errorf("classify: breakpoints not strictly ascending: %v", interior)
		}
	}
	if !(lo < interior[0]) || !(interior[len(interior)-1] < hi) {
		return Breaks{}, fmt.Errorf("classify: breakpoints %v not strictly inside observed range [%g, %g]", interior, lo, hi)
	}

	bounds := make([]float64, 0, len(interior)+2)
	bounds = append(bounds, lo)
	bounds = append(bounds, interior...)
	bounds = append(bounds, hi)

	labels := make([]string, len(bounds)-1)
	for i := range labels {
		labels[i] = fmt.Sprintf("%.2f", bounds[i+1])
	}
	return Breaks{Bounds: bounds, Labels: labels}, nil
}

// Class returns the index of the interval containing v, or -1 when v
// is NaN or outside [Bounds[0], Bounds[len(Bounds)-1]].
func (b Breaks) Class(v float64) int {
	if math.IsNaN(v) || len(b.Bounds) < 2 {
		return -1
	}
	if v < b.Bounds[0] || v > b.Bounds[len(b.Bounds)-1] {
		return -1
	}
	// Leftmost bound >= v. The first interval absorbs its own
	// lower bound; every other interval owns only its upper bound.
	i := sort.SearchFloat64s(b.Bounds, v)
	if i == 0 {
		return 0
	}
	return i - 1
}

// Label returns the display label of v's class. Absent values stay
// absent: a NaN or out-of-range v yields "", never a class.
func (b Breaks) Label(v float64) string {
	i := b.Class(v)
	if i < 0 {
		return ""
	}
	return b.Labels[i]
}

// Apply assigns a category to each value, in order. NaNs produce "".
func Apply(b Breaks, values []float64) []string {
	cats := make([]string, len(values))
	for i, v := range values {
		cats[i] = b.Label(v)
	}
	return cats
}
