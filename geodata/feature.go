// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geodata loads administrative geometries and attribute
// tables and joins them into renderable features.
package geodata

import (
	"github.com/paulmach/orb"
)

// A Feature is one administrative unit: its join code, display name,
// polygon geometry, joined attribute value, and derived category.
// Value is NaN until a join supplies it and stays NaN when the
// attribute table has no row for the code. Category is "" until a
// classification assigns one; "" means "no data" to the renderer.
type Feature struct {
	Code     string
	Name     string
	Geom     orb.MultiPolygon
	Value    float64
	Category string
}

// Values returns the attribute column of fs, in feature order.
func Values(fs []Feature) []float64 {
	vs := make([]float64, len(fs))
	for i, f := range fs {
		vs[i] = f.Value
	}
	return vs
}

// Bound returns the bounding box of all feature geometries.
func Bound(fs []Feature) orb.Bound {
	var b orb.Bound
	first := true
	for _, f := range fs {
		if len(f.Geom) == 0 {
			continue
		}
		if first {
			b = f.Geom.Bound()
			first = false
			continue
		}
		b = b.Union(f.Geom.Bound())
	}
	return b
}
