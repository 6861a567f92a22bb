// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geodata

import (
	"fmt"
	"strconv"
	"strings"
)

// Attribute tables and geometry sources rarely agree on how a unit is
// keyed. The conversions live here as named functions so a drifting
// convention breaks a test instead of a join.

// MunicipalityCode builds the five-digit INE municipality key from
// its province and municipality sub-codes, zero-padding each part.
// The income table carries the two codes in separate columns; the
// geometry source concatenates them.
func MunicipalityCode(prov, mun string) string {
	return pad(strings.TrimSpace(prov), 2) + pad(strings.TrimSpace(mun), 3)
}

// CommunityCode converts a 0-based autonomous-community id into the
// two-digit INE code. The income table counts communities from zero;
// INE codes start at "01".
func CommunityCode(id int) string {
	return fmt.Sprintf("%02d", id+1)
}

func pad(s string, n int) string {
	for len(s) < n {
		s = "0" + s
	}
	return s
}

// A KeyFunc derives the join key for one attribute record, given the
// record's cells by column name.
type KeyFunc func(rec map[string]string) (string, error)

// VerbatimKey keys records by a single column, as written.
func VerbatimKey(col string) KeyFunc {
	return func(rec map[string]string) (string, error) {
		k := strings.TrimSpace(rec[col])
		if k == "" {
			return "", fmt.Errorf("geodata: empty key column %q", col)
		}
		return k, nil
	}
}

// MunicipalityKey keys records by MunicipalityCode over the named
// province and municipality columns.
func MunicipalityKey(provCol, munCol string) KeyFunc {
	return func(rec map[string]string) (string, error) {
		prov, mun := rec[provCol], rec[munCol]
		if strings.TrimSpace(prov) == "" || strings.TrimSpace(mun) == "" {
			return "", fmt.Errorf("geodata: empty key columns %q, %q", provCol, munCol)
		}
		return MunicipalityCode(prov, mun), nil
	}
}

// CommunityKey keys records by CommunityCode over the named 0-based
// community id column.
func CommunityKey(col string) KeyFunc {
	return func(rec map[string]string) (string, error) {
		id, err := strconv.Atoi(strings.TrimSpace(rec[col]))
		if err != nil {
			return "", fmt.Errorf("geodata: key column %q: %w", col, err)
		}
		return CommunityCode(id), nil
	}
}
