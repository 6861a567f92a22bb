// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geodata

import (
	"fmt"
	"math"
)

// Join attaches attribute values to features by code. The join is
// outer on the geometry side: every feature is kept, and a feature
// with no matching row keeps a NaN value so it renders as missing
// data instead of disappearing from the map. Duplicate keys on the
// attribute side are an error; with them the join would be
// order-dependent.
func Join(features []Feature, rows []Row) ([]Feature, error) {
	byKey := make(map[string]float64, len(rows))
	for _, r := range rows {
		if _, dup := byKey[r.Key]; dup {
			return nil, fmt.Errorf("geodata: duplicate attribute key %q", r.Key)
		}
		byKey[r.Key] = r.Value
	}

	out := make([]Feature, len(features))
	for i, f := range features {
		if v, ok := byKey[f.Code]; ok {
			f.Value = v
		} else {
			f.Value = math.NaN()
		}
		out[i] = f
	}
	return out, nil
}
