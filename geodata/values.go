// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geodata

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// A Row is one attribute record: a join key and its numeric value.
// Value is NaN when the cell was blank or unparseable.
type Row struct {
	Key   string
	Value float64
}

// ReadValues loads an attribute table from a CSV file with a header
// row. key derives the join key of each record and valueCol names the
// numeric attribute column. sep is the field separator; 0 means comma.
// INE exports are often semicolon-separated so that decimal commas can
// go unquoted. Blank and malformed numbers load as NaN rather than
// failing: a unit with no published figure still has a geometry to
// render.
func ReadValues(path string, key KeyFunc, valueCol string, sep rune) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geodata: %w", err)
	}
	defer f.Close()
	rows, err := readValues(f, key, valueCol, sep)
	if err != nil {
		return nil, fmt.Errorf("geodata: %s: %w", path, err)
	}
	return rows, nil
}

func readValues(r io.Reader, key KeyFunc, valueCol string, sep rune) ([]Row, error) {
	cr := csv.NewReader(r)
	if sep != 0 {
		cr.Comma = sep
	}
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	if _, ok := cols[valueCol]; !ok {
		return nil, fmt.Errorf("no column %q (have %s)", valueCol, strings.Join(header, ", "))
	}

	var rows []Row
	for line := 2; ; line++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rec := make(map[string]string, len(cols))
		for name, i := range cols {
			if i < len(fields) {
				rec[name] = fields[i]
			}
		}
		k, err := key(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, Row{Key: k, Value: parseValue(rec[valueCol])})
	}
	return rows, nil
}

func parseValue(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	// Spanish statistical sources write decimal commas and dot
	// thousands separators.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
