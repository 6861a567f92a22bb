// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/aclements/go-gg/table"

	"rentamap/geodata"
)

// printTable writes the joined, categorized features as an aligned
// text table, which is handy for eyeballing a join before rendering.
func printTable(w io.Writer, fs []geodata.Feature) {
	codes := make([]string, len(fs))
	names := make([]string, len(fs))
	values := make([]float64, len(fs))
	cats := make([]string, len(fs))
	for i, f := range fs {
		codes[i] = f.Code
		names[i] = f.Name
		values[i] = f.Value
		cats[i] = f.Category
	}
	t := new(table.Builder).
		Add("code", codes).
		Add("name", names).
		Add("value", values).
		Add("category", cats).
		Done()
	table.Fprint(w, t)
}
