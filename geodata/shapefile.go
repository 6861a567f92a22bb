// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geodata

import (
	"fmt"
	"math"
	"strings"

	shp "github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
)

// ReadShapefile decodes the polygon records of an ESRI shapefile into
// features, reading the join code and display name from the named DBF
// fields. nameField may be ""; codeField is required. Non-polygon
// records are skipped.
func ReadShapefile(path, codeField, nameField string) ([]Feature, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geodata: %w", err)
	}
	defer r.Close()

	codeIdx, nameIdx := -1, -1
	var names []string
	for i, f := range r.Fields() {
		names = append(names, f.String())
		switch f.String() {
		case codeField:
			codeIdx = i
		case nameField:
			nameIdx = i
		}
	}
	if codeIdx < 0 {
		return nil, fmt.Errorf("geodata: %s: no field %q (have %s)", path, codeField, strings.Join(names, ", "))
	}

	var fs []Feature
	for r.Next() {
		row, shape := r.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok {
			continue
		}
		f := Feature{
			Code:  strings.TrimSpace(r.ReadAttribute(row, codeIdx)),
			Geom:  toMultiPolygon(poly),
			Value: math.NaN(),
		}
		if nameIdx >= 0 {
			f.Name = strings.TrimSpace(r.ReadAttribute(row, nameIdx))
		}
		fs = append(fs, f)
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("geodata: %s: %w", path, err)
	}
	if len(fs) == 0 {
		return nil, fmt.Errorf("geodata: %s: no polygon records", path)
	}
	return fs, nil
}

// toMultiPolygon converts a shapefile polygon to orb form. Each part
// becomes its own single-ring polygon; holes are resolved at render
// time with an even-odd fill rule, so the outer/hole distinction does
// not matter here.
func toMultiPolygon(p *shp.Polygon) orb.MultiPolygon {
	offsets := make([]int, 0, len(p.Parts)+1)
	for _, off := range p.Parts {
		offsets = append(offsets, int(off))
	}
	if len(offsets) == 0 {
		offsets = []int{0}
	}
	offsets = append(offsets, len(p.Points))

	var mp orb.MultiPolygon
	for i := 0; i+1 < len(offsets); i++ {
		lo, hi := offsets[i], offsets[i+1]
		if lo < 0 || hi > len(p.Points) || hi-lo < 3 {
			continue
		}
		ring := make(orb.Ring, 0, hi-lo)
		for _, pt := range p.Points[lo:hi] {
			ring = append(ring, orb.Point{pt.X, pt.Y})
		}
		mp = append(mp, orb.Polygon{ring})
	}
	return mp
}
