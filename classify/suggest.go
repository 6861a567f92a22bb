// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classify

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Suggest returns n evenly spaced interior sample quantiles of values
// (for n = 4, the 20/40/60/80th percentiles), skipping NaNs. It is an
// aid for curating breakpoints, not a substitute: round the result to
// pretty numbers and pass those to Make.
func Suggest(values []float64, n int) []float64 {
	var xs []float64
	for _, v := range values {
		if !math.IsNaN(v) {
			xs = append(xs, v)
		}
	}
	if len(xs) == 0 || n <= 0 {
		return nil
	}
	s := stats.Sample{Xs: xs}
	qs := make([]float64, n)
	for i := range qs {
		qs[i] = s.Quantile(float64(i+1) / float64(n+1))
	}
	return qs
}

// Round rounds each element of xs to the nearest multiple of step.
// Round(Suggest(values, 4), 0.05) is a reasonable starting point for
// hand curation.
func Round(xs []float64, step float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = math.Round(x/step) * step
	}
	return out
}
