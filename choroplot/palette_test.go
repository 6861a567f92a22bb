// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package choroplot

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiverging(t *testing.T) {
	five := Diverging(5)
	require.Len(t, five, 5)
	// The five-class case is the published design, verbatim.
	assert.Equal(t, color.RGBA{0xd7, 0x19, 0x1c, 0xff}, five[0])
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xbf, 0xff}, five[2])
	assert.Equal(t, color.RGBA{0x2c, 0x7b, 0xb6, 0xff}, five[4])

	// Other lengths sample the ramp but keep its extremes.
	three := Diverging(3)
	require.Len(t, three, 3)
	assert.Equal(t, five[0], three[0])
	assert.Equal(t, five[4], three[2])

	assert.Len(t, Diverging(7), 7)
	assert.Equal(t, five[0], Diverging(1)[0])
}

func TestCSS(t *testing.T) {
	assert.Equal(t, "#d7191c", css(color.RGBA{0xd7, 0x19, 0x1c, 0xff}))
}
