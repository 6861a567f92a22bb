// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package choroplot

import (
	"io"
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
)

// DistributionPlot writes an SVG of the empirical CDF of values with
// the suggested interior breakpoints marked on the curve. This is the
// inspection step of breakpoint curation: look at where the quantiles
// fall, then round them to numbers a legend reader can hold in their
// head and put those in the map configuration.
func DistributionPlot(w io.Writer, name string, values, suggested []float64) error {
	var xs []float64
	for _, v := range values {
		if !math.IsNaN(v) {
			xs = append(xs, v)
		}
	}

	plot := gg.NewPlot(new(table.Builder).Add(name, xs).Done())
	plot.Stat(ggstat.ECDF{X: name})
	plot.Add(gg.LayerSteps{
		LayerPaths: gg.LayerPaths{X: name, Y: "cumulative density"},
		Step:       gg.StepHV,
	})

	if len(suggested) > 0 {
		fracs := make([]float64, len(suggested))
		for i := range fracs {
			fracs[i] = float64(i+1) / float64(len(suggested)+1)
		}
		plot.SetData(new(table.Builder).
			Add(name, suggested).
			Add("cumulative density", fracs).
			Done())
		plot.Add(gg.LayerPoints{X: name, Y: "cumulative density"})
	}

	plot.Add(gg.Title("distribution of " + name))
	plot.Add(gg.AxisLabel("y", "cumulative density"))
	return plot.WriteSVG(w, 600, 400)
}
