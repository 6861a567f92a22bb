// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package choroplot draws categorized geographic features as a styled
// SVG choropleth with a discrete bottom legend.
package choroplot

// A Theme is the complete visual configuration of a map: a plain
// value constructed once and passed explicitly to Render. Nothing in
// this package keeps styling state between calls, so two maps built
// in the same process cannot leak style into each other.
type Theme struct {
	Width, Height int

	// Background is the canvas fill. The house style is ivory.
	Background string

	Title    string
	Subtitle string
	Caption  string

	// LegendTitle heads the horizontal legend strip at the bottom
	// of the canvas.
	LegendTitle string

	// MissingColor and MissingLabel style features whose category
	// is empty (no attribute value joined).
	MissingColor string
	MissingLabel string

	// Stroke outlines every feature and the inset frame.
	Stroke string
}

// DefaultTheme returns the house style. Callers adjust the text
// fields and pass the result to Render.
func DefaultTheme() Theme {
	return Theme{
		Width:        1000,
		Height:       800,
		Background:   "ivory",
		MissingColor: "#c8c8c8",
		MissingLabel: "sin datos",
		Stroke:       "#6e6e6e",
	}
}
