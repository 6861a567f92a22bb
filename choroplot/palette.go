// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package choroplot

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-gg/palette"
)

// rdYlBu holds the anchors of the 5-class RdYlBu diverging design
// from colorbrewer.org, low (red) to high (blue).
var rdYlBu = []color.RGBA{
	{0xd7, 0x19, 0x1c, 0xff},
	{0xfd, 0xae, 0x61, 0xff},
	{0xff, 0xff, 0xbf, 0xff},
	{0xab, 0xd9, 0xe9, 0xff},
	{0x2c, 0x7b, 0xb6, 0xff},
}

// Diverging returns n ordered fill colors from the RdYlBu ramp, low
// to high. Pairing color i with class i keeps the ramp's extremes on
// the extremes of the data range. Classification never depends on the
// palette; this is strictly a legend-side concern.
func Diverging(n int) []color.RGBA {
	if n == len(rdYlBu) {
		out := make([]color.RGBA, n)
		copy(out, rdYlBu)
		return out
	}
	g := palette.RGBGradient{Colors: rdYlBu}
	out := make([]color.RGBA, n)
	for i := range out {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		r, gr, b, a := g.Map(x).RGBA()
		out[i] = color.RGBA{uint8(r >> 8), uint8(gr >> 8), uint8(b >> 8), uint8(a >> 8)}
	}
	return out
}

func css(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
