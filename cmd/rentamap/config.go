// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"rentamap/geodata"
)

// A MapConfig describes one map: where the geometries and the
// attribute table live, how to derive the join key, the curated
// classification breakpoints, and the text around the map. The
// breakpoints are configuration on purpose: choosing them is a human
// decision made by inspecting quantiles (-inspect), not something the
// pipeline computes.
type MapConfig struct {
	Shapefile string `yaml:"shapefile"`
	CodeField string `yaml:"code_field"`
	NameField string `yaml:"name_field"`

	Data        string    `yaml:"data"`
	Key         KeyConfig `yaml:"key"`
	ValueColumn string    `yaml:"value_column"`

	// Separator is the CSV field separator, default comma. INE
	// exports are usually ";" so decimal commas need no quoting.
	Separator string `yaml:"csv_separator"`

	// Breaks holds the curated interior breakpoints. The observed
	// minimum and maximum bracket them at classification time.
	Breaks []float64 `yaml:"breaks"`

	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	Caption     string `yaml:"caption"`
	LegendTitle string `yaml:"legend_title"`

	Inset *InsetConfig `yaml:"inset"`
}

// A KeyConfig names the key-derivation mode and its columns.
type KeyConfig struct {
	// Mode is "verbatim", "community" or "municipality".
	Mode   string `yaml:"mode"`
	Column string `yaml:"column"`

	// ProvinceColumn and MunicipalityColumn apply to the
	// municipality mode, whose key concatenates two sub-codes.
	ProvinceColumn     string `yaml:"province_column"`
	MunicipalityColumn string `yaml:"municipality_column"`
}

// An InsetConfig displaces a non-contiguous territory nearer the main
// landmass and frames it, the way Spanish maps draw the Canaries.
type InsetConfig struct {
	CodePrefixes []string `yaml:"code_prefixes"`
	DX           float64  `yaml:"dx"`
	DY           float64  `yaml:"dy"`
	FramePad     float64  `yaml:"frame_pad"`
}

func loadConfig(path string) (*MapConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := new(MapConfig)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	// cfg.Shapefile may be empty when -fetch supplies it; main
	// checks after the flags are applied.
	if cfg.CodeField == "" {
		return nil, fmt.Errorf("%s: no code_field", path)
	}
	if cfg.Data == "" {
		return nil, fmt.Errorf("%s: no data", path)
	}
	if cfg.ValueColumn == "" {
		return nil, fmt.Errorf("%s: no value_column", path)
	}
	if _, err := cfg.Key.keyFunc(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if _, err := cfg.separator(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *MapConfig) separator() (rune, error) {
	if c.Separator == "" {
		return ',', nil
	}
	rs := []rune(c.Separator)
	if len(rs) != 1 {
		return 0, fmt.Errorf("csv_separator %q is not a single character", c.Separator)
	}
	return rs[0], nil
}

func (k KeyConfig) keyFunc() (geodata.KeyFunc, error) {
	switch k.Mode {
	case "", "verbatim":
		if k.Column == "" {
			return nil, fmt.Errorf("verbatim key needs a column")
		}
		return geodata.VerbatimKey(k.Column), nil
	case "community":
		if k.Column == "" {
			return nil, fmt.Errorf("community key needs a column")
		}
		return geodata.CommunityKey(k.Column), nil
	case "municipality":
		if k.ProvinceColumn == "" || k.MunicipalityColumn == "" {
			return nil, fmt.Errorf("municipality key needs province_column and municipality_column")
		}
		return geodata.MunicipalityKey(k.ProvinceColumn, k.MunicipalityColumn), nil
	}
	return nil, fmt.Errorf("unknown key mode %q", k.Mode)
}
