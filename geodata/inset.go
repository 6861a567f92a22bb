// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geodata

import (
	"strings"

	"github.com/paulmach/orb"
)

// Displace returns a copy of fs with the geometry of every feature
// selected by pred translated by (dx, dy) degrees. Spanish maps
// conventionally draw the Canary Islands in an inset displaced
// northeast of their true position, next to the mainland.
func Displace(fs []Feature, pred func(Feature) bool, dx, dy float64) []Feature {
	out := make([]Feature, len(fs))
	for i, f := range fs {
		if pred(f) {
			f.Geom = translate(f.Geom, dx, dy)
		}
		out[i] = f
	}
	return out
}

// CodePrefix selects features whose code starts with any of the given
// prefixes. Canary municipalities share the province prefixes "35"
// and "38"; the community code is "05".
func CodePrefix(prefixes ...string) func(Feature) bool {
	return func(f Feature) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(f.Code, p) {
				return true
			}
		}
		return false
	}
}

// InsetFrame returns the closed ring drawn around a displaced
// archipelago, padded out from b by pad degrees.
func InsetFrame(b orb.Bound, pad float64) orb.Ring {
	b = b.Pad(pad)
	min, max := b.Min, b.Max
	return orb.Ring{
		min,
		{max[0], min[1]},
		max,
		{min[0], max[1]},
		min,
	}
}

func translate(mp orb.MultiPolygon, dx, dy float64) orb.MultiPolygon {
	out := make(orb.MultiPolygon, len(mp))
	for i, poly := range mp {
		op := make(orb.Polygon, len(poly))
		for j, ring := range poly {
			or := make(orb.Ring, len(ring))
			for k, pt := range ring {
				or[k] = orb.Point{pt[0] + dx, pt[1] + dy}
			}
			op[j] = or
		}
		out[i] = op
	}
	return out
}
