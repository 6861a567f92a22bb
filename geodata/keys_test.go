// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geodata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMunicipalityCode(t *testing.T) {
	// Valverde, El Hierro: province 38, municipality 48.
	assert.Equal(t, "38048", MunicipalityCode("38", "48"))
	assert.Equal(t, "38048", MunicipalityCode("38", "048"))
	// Madrid keeps its full sub-code.
	assert.Equal(t, "28079", MunicipalityCode("28", "79"))
	assert.Equal(t, "01001", MunicipalityCode("1", "1"))
}

func TestCommunityCode(t *testing.T) {
	// The income table counts communities from zero; INE codes
	// start at "01" (Andalucía).
	assert.Equal(t, "01", CommunityCode(0))
	assert.Equal(t, "05", CommunityCode(4)) // Canarias
	assert.Equal(t, "19", CommunityCode(18))
}

func TestKeyFuncs(t *testing.T) {
	mun := MunicipalityKey("cpro", "cmun")
	k, err := mun(map[string]string{"cpro": "38", "cmun": "48"})
	require.NoError(t, err)
	assert.Equal(t, "38048", k)

	_, err = mun(map[string]string{"cpro": "38"})
	assert.Error(t, err)

	com := CommunityKey("ccaa")
	k, err = com(map[string]string{"ccaa": "4"})
	require.NoError(t, err)
	assert.Equal(t, "05", k)

	_, err = com(map[string]string{"ccaa": "canarias"})
	assert.Error(t, err)

	verb := VerbatimKey("code")
	k, err = verb(map[string]string{"code": " ES70 "})
	require.NoError(t, err)
	assert.Equal(t, "ES70", k)

	_, err = verb(map[string]string{})
	assert.Error(t, err)
}
