// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geodata

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x, y, side float64) orb.MultiPolygon {
	return orb.MultiPolygon{{
		{{x, y}, {x + side, y}, {x + side, y + side}, {x, y + side}, {x, y}},
	}}
}

func TestJoin(t *testing.T) {
	nan := math.NaN()
	features := []Feature{
		{Code: "01", Geom: square(0, 0, 1), Value: nan},
		{Code: "02", Geom: square(2, 0, 1), Value: nan},
		{Code: "03", Geom: square(4, 0, 1), Value: nan},
	}
	rows := []Row{
		{Key: "01", Value: 0.8},
		{Key: "03", Value: 1.2},
		{Key: "99", Value: 9.9}, // no geometry; contributes nothing
	}

	joined, err := Join(features, rows)
	require.NoError(t, err)
	require.Len(t, joined, 3, "the join must keep every geometry")

	assert.Equal(t, 0.8, joined[0].Value)
	assert.True(t, math.IsNaN(joined[1].Value), "unmatched feature must stay absent")
	assert.Equal(t, 1.2, joined[2].Value)

	// The input features are not mutated.
	assert.True(t, math.IsNaN(features[0].Value))
}

func TestJoinDuplicateKey(t *testing.T) {
	features := []Feature{{Code: "01", Geom: square(0, 0, 1)}}
	rows := []Row{{Key: "01", Value: 1}, {Key: "01", Value: 2}}
	_, err := Join(features, rows)
	assert.ErrorContains(t, err, "duplicate")
}

func TestBound(t *testing.T) {
	fs := []Feature{
		{Code: "a", Geom: square(0, 0, 1)},
		{Code: "b", Geom: square(3, 2, 1)},
		{Code: "empty"},
	}
	b := Bound(fs)
	assert.Equal(t, orb.Point{0, 0}, b.Min)
	assert.Equal(t, orb.Point{4, 3}, b.Max)
}

func TestValues(t *testing.T) {
	fs := []Feature{{Value: 1.5}, {Value: math.NaN()}}
	vs := Values(fs)
	require.Len(t, vs, 2)
	assert.Equal(t, 1.5, vs[0])
	assert.True(t, math.IsNaN(vs[1]))
}
