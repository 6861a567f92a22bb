// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geodata

import (
	"fmt"
	"math"
	"path/filepath"
	"testing"

	shp "github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestShapefile builds a two-record polygon shapefile: a
// multi-part record (outer ring, hole, and a degenerate two-point
// part) and a plain single-ring record.
func writeTestShapefile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "munis.shp")

	w, err := shp.Create(path, shp.POLYGON)
	require.NoError(t, err)
	w.SetFields([]shp.Field{
		shp.StringField("CODIGOINE", 10),
		shp.StringField("NOMBRE", 40),
	})

	madrid := (*shp.Polygon)(shp.NewPolyLine([][]shp.Point{
		{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}},
		{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 1, Y: 1}},
		{{X: 3, Y: 3}, {X: 3.5, Y: 3.5}},
	}))
	w.Write(madrid)
	// go-shp's Writer pads DBF records with NULs instead of the spaces
	// the format calls for, so pad values to the field width ourselves.
	require.NoError(t, w.WriteAttribute(0, 0, fmt.Sprintf("%-10s", "28079")))
	require.NoError(t, w.WriteAttribute(0, 1, fmt.Sprintf("%-40s", "Madrid")))

	valverde := (*shp.Polygon)(shp.NewPolyLine([][]shp.Point{
		{{X: 10, Y: 0}, {X: 11, Y: 0}, {X: 11, Y: 1}, {X: 10, Y: 1}, {X: 10, Y: 0}},
	}))
	w.Write(valverde)
	require.NoError(t, w.WriteAttribute(1, 0, fmt.Sprintf("%-10s", "38048")))
	require.NoError(t, w.WriteAttribute(1, 1, fmt.Sprintf("%-40s", "Valverde")))

	w.Close()
	return path
}

func TestReadShapefile(t *testing.T) {
	fs, err := ReadShapefile(writeTestShapefile(t), "CODIGOINE", "NOMBRE")
	require.NoError(t, err)
	require.Len(t, fs, 2)

	madrid := fs[0]
	assert.Equal(t, "28079", madrid.Code)
	assert.Equal(t, "Madrid", madrid.Name)
	assert.True(t, math.IsNaN(madrid.Value), "value must stay absent until a join")
	assert.Empty(t, madrid.Category)

	// The outer ring and the hole survive as separate single-ring
	// polygons; the two-point part is dropped.
	require.Len(t, madrid.Geom, 2)
	require.Len(t, madrid.Geom[0][0], 5)
	assert.Equal(t, orb.Point{0, 0}, madrid.Geom[0][0][0])
	assert.Equal(t, orb.Point{4, 4}, madrid.Geom[0][0][2])
	assert.Equal(t, orb.Point{0, 0}, madrid.Geom[0][0][4], "ring must stay closed")
	assert.Equal(t, orb.Point{1, 1}, madrid.Geom[1][0][0])

	valverde := fs[1]
	assert.Equal(t, "38048", valverde.Code)
	assert.Equal(t, "Valverde", valverde.Name)
	require.Len(t, valverde.Geom, 1)
	require.Len(t, valverde.Geom[0][0], 5)
	assert.Equal(t, orb.Point{10, 0}, valverde.Geom[0][0][0])
}

func TestReadShapefileNoNameField(t *testing.T) {
	fs, err := ReadShapefile(writeTestShapefile(t), "CODIGOINE", "")
	require.NoError(t, err)
	require.Len(t, fs, 2)
	assert.Equal(t, "28079", fs[0].Code)
	assert.Empty(t, fs[0].Name)
}

func TestReadShapefileMissingField(t *testing.T) {
	_, err := ReadShapefile(writeTestShapefile(t), "MUNICIPIO", "NOMBRE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"MUNICIPIO"`)
	// The error names the fields that do exist.
	assert.Contains(t, err.Error(), "CODIGOINE")
}

func TestToMultiPolygon(t *testing.T) {
	// A record with no part offsets reads as one implicit part.
	p := &shp.Polygon{Points: []shp.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}}
	mp := toMultiPolygon(p)
	require.Len(t, mp, 1)
	require.Len(t, mp[0][0], 4)
	assert.Equal(t, orb.Point{1, 1}, mp[0][0][2])

	// Degenerate parts disappear entirely.
	p = &shp.Polygon{Points: []shp.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}}
	assert.Empty(t, toMultiPolygon(p))

	// Part offsets are honored, including the implicit end of the
	// last part.
	p = &shp.Polygon{
		Parts:  []int32{0, 3},
		Points: []shp.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 5, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 6}},
	}
	mp = toMultiPolygon(p)
	require.Len(t, mp, 2)
	require.Len(t, mp[0][0], 3)
	require.Len(t, mp[1][0], 3)
	assert.Equal(t, orb.Point{5, 5}, mp[1][0][0])
}
