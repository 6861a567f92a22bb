// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package choroplot

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/ajstarks/svgo"
	"github.com/paulmach/orb"

	"rentamap/classify"
	"rentamap/geodata"
)

// A Map is one fully prepared choropleth: categorized features, the
// classification that produced the categories, and any decoration
// rings (the frame around a displaced inset).
type Map struct {
	Features []geodata.Feature
	Breaks   classify.Breaks
	Frames   []orb.Ring
}

const margin = 20

// Render writes m as a styled SVG image. It is a stateless
// transformation: the same map and theme always produce the same
// bytes. Features whose category is not one of the classification's
// labels (in particular "") fill with the theme's missing-data color.
func (m Map) Render(w io.Writer, t Theme) error {
	if len(m.Breaks.Labels) == 0 {
		return fmt.Errorf("choroplot: map has no classification")
	}
	if len(m.Features) == 0 {
		return fmt.Errorf("choroplot: map has no features")
	}

	fill := make(map[string]string, len(m.Breaks.Labels))
	colors := Diverging(len(m.Breaks.Labels))
	for i, label := range m.Breaks.Labels {
		fill[label] = css(colors[i])
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(t.Width, t.Height, `font-family="Roboto,&quot;Helvetica Neue&quot;,Helvetica,Arial,sans-serif"`)
	canvas.Rect(0, 0, t.Width, t.Height, "fill:"+t.Background)

	top := 0
	if t.Title != "" || t.Subtitle != "" {
		top = 60
	}
	bottom := legendHeight(t)

	proj := fitProjection(m.bound(),
		margin, float64(top)+margin,
		float64(t.Width)-2*margin, float64(t.Height-top-bottom)-2*margin)

	for _, f := range m.Features {
		c, ok := fill[f.Category]
		if !ok {
			c = t.MissingColor
		}
		canvas.Path(pathData(f.Geom, proj),
			fmt.Sprintf("fill:%s; fill-rule:evenodd; stroke:%s; stroke-width:0.5", c, t.Stroke))
	}
	for _, r := range m.Frames {
		canvas.Path(ringData(r, proj), "fill:none; stroke:"+t.Stroke+"; stroke-width:1")
	}

	if t.Title != "" {
		canvas.Text(t.Width/2, 30, t.Title, "text-anchor:middle; font-size:20px; font-weight:bold")
	}
	if t.Subtitle != "" {
		canvas.Text(t.Width/2, 52, t.Subtitle, "text-anchor:middle; font-size:13px; fill:#444")
	}
	m.legend(canvas, colors, t)
	if t.Caption != "" {
		canvas.Text(t.Width-margin, t.Height-8, t.Caption, "text-anchor:end; font-size:10px; fill:#666")
	}

	canvas.End()
	return ew.err
}

func (m Map) bound() orb.Bound {
	b := geodata.Bound(m.Features)
	for _, r := range m.Frames {
		b = b.Union(orb.Polygon{r}.Bound())
	}
	return b
}

func legendHeight(t Theme) int {
	h := 58
	if t.LegendTitle != "" {
		h += 16
	}
	return h
}

// legend draws the manually constructed horizontal legend: one swatch
// per class labeled by the class's upper bound, plus a detached
// missing-data swatch, centered at the bottom of the canvas.
func (m Map) legend(canvas *svg.SVG, colors []color.RGBA, t Theme) {
	const (
		sw, sh = 52, 14
		gap    = 14 // between the class strip and the missing swatch
	)
	n := len(m.Breaks.Labels)
	total := n*sw + gap + sw
	x := (t.Width - total) / 2
	y := t.Height - 50

	if t.LegendTitle != "" {
		canvas.Text(t.Width/2, y-10, t.LegendTitle, "text-anchor:middle; font-size:12px")
	}
	for i, label := range m.Breaks.Labels {
		canvas.Rect(x+i*sw, y, sw, sh,
			fmt.Sprintf("fill:%s; stroke:%s; stroke-width:0.5", css(colors[i]), t.Stroke))
		canvas.Text(x+i*sw+sw/2, y+sh+14, label, "text-anchor:middle; font-size:11px")
	}
	mx := x + n*sw + gap
	canvas.Rect(mx, y, sw, sh,
		fmt.Sprintf("fill:%s; stroke:%s; stroke-width:0.5", t.MissingColor, t.Stroke))
	canvas.Text(mx+sw/2, y+sh+14, t.MissingLabel, "text-anchor:middle; font-size:11px")
}

// A projection maps lon/lat degrees onto the canvas. Longitude
// degrees are scaled by the cosine of the mid-latitude so the map
// keeps a familiar aspect; there is no real projection math here.
type projection struct {
	bound  orb.Bound
	kx     float64
	scale  float64
	x0, y0 float64
}

func fitProjection(b orb.Bound, x, y, w, h float64) projection {
	midLat := (b.Min[1] + b.Max[1]) / 2
	kx := math.Cos(midLat * math.Pi / 180)
	dx := (b.Max[0] - b.Min[0]) * kx
	dy := b.Max[1] - b.Min[1]
	if dx <= 0 || dy <= 0 {
		return projection{bound: b, kx: kx, scale: 1, x0: x, y0: y}
	}
	s := math.Min(w/dx, h/dy)
	return projection{
		bound: b,
		kx:    kx,
		scale: s,
		x0:    x + (w-dx*s)/2,
		y0:    y + (h-dy*s)/2,
	}
}

func (p projection) point(pt orb.Point) (float64, float64) {
	x := p.x0 + (pt[0]-p.bound.Min[0])*p.kx*p.scale
	y := p.y0 + (p.bound.Max[1]-pt[1])*p.scale
	return x, y
}

// pathData renders every ring of mp into one path element so an
// even-odd fill resolves holes without knowing ring winding.
func pathData(mp orb.MultiPolygon, p projection) string {
	var sb strings.Builder
	for _, poly := range mp {
		for _, ring := range poly {
			appendRing(&sb, ring, p)
		}
	}
	return sb.String()
}

func ringData(r orb.Ring, p projection) string {
	var sb strings.Builder
	appendRing(&sb, r, p)
	return sb.String()
}

func appendRing(sb *strings.Builder, r orb.Ring, p projection) {
	for i, pt := range r {
		x, y := p.point(pt)
		cmd := byte('L')
		if i == 0 {
			cmd = 'M'
		}
		fmt.Fprintf(sb, "%c%.2f %.2f", cmd, x, y)
	}
	sb.WriteByte('Z')
}

// errWriter latches the first write error so Render can report it;
// svgo itself ignores fmt.Fprintf results.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
