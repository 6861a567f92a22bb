// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rentamap renders choropleth maps of Spanish income data.
//
// rentamap reads a YAML map description (see MapConfig) naming a
// polygon shapefile, a CSV attribute table, the join key derivation,
// and the curated classification breakpoints, and writes a styled SVG
// choropleth: every administrative unit filled by its income class,
// units with no published figure in the missing-data color, and a
// discrete five-class legend along the bottom.
//
// Two descriptions are the usual inputs: the autonomous communities
// joined with the relative income of under-30 households, and the
// municipalities joined with average net income per household. The
// Canary Islands are displaced into a framed inset next to the
// mainland in both.
//
// The classification breakpoints are curated by hand. Run with
// -inspect to plot the value distribution with its quantiles marked,
// round the quantiles to numbers a legend can show, and put those in
// the description's breaks list.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"rentamap/choroplot"
	"rentamap/classify"
	"rentamap/geodata"
)

func main() {
	log.SetPrefix("rentamap: ")
	log.SetFlags(0)

	var (
		flagConfig  = flag.String("config", "", "read map description from `file`")
		flagOut     = flag.String("o", "", "write output to `file` (default: stdout)")
		flagInspect = flag.Bool("inspect", false, "plot the value distribution with suggested breakpoints instead of the map")
		flagTable   = flag.Bool("table", false, "print the joined, categorized table instead of the map")
		flagFetch   = flag.String("fetch", "", "download the zipped shapefile from `url` into the cache and use it")
		flagCache   = flag.String("cache", defaultCacheDir(), "cache downloaded archives in `dir`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -config map.yaml [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *flagConfig == "" || flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*flagConfig)
	if err != nil {
		log.Fatal(err)
	}

	if *flagFetch != "" {
		archive, err := geodata.Fetch(context.Background(), http.DefaultClient, *flagFetch, *flagCache)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Shapefile, err = geodata.ExtractShapefile(archive)
		if err != nil {
			log.Fatal(err)
		}
	}
	if cfg.Shapefile == "" {
		log.Fatalf("%s: no shapefile and no -fetch", *flagConfig)
	}

	features, err := geodata.ReadShapefile(cfg.Shapefile, cfg.CodeField, cfg.NameField)
	if err != nil {
		log.Fatal(err)
	}

	key, err := cfg.Key.keyFunc()
	if err != nil {
		log.Fatal(err)
	}
	sep, err := cfg.separator()
	if err != nil {
		log.Fatal(err)
	}
	rows, err := geodata.ReadValues(cfg.Data, key, cfg.ValueColumn, sep)
	if err != nil {
		log.Fatal(err)
	}
	features, err = geodata.Join(features, rows)
	if err != nil {
		log.Fatal(err)
	}

	out := os.Stdout
	if *flagOut != "" {
		out, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer out.Close()
	}

	values := geodata.Values(features)
	if *flagInspect {
		n := len(cfg.Breaks)
		if n == 0 {
			n = 4
		}
		suggested := classify.Suggest(values, n)
		if err := choroplot.DistributionPlot(out, cfg.ValueColumn, values, suggested); err != nil {
			log.Fatal(err)
		}
		return
	}

	breaks, err := classify.Make(values, cfg.Breaks)
	if err != nil {
		log.Fatal(err)
	}
	for i := range features {
		features[i].Category = breaks.Label(features[i].Value)
	}

	if *flagTable {
		printTable(out, features)
		return
	}

	m := choroplot.Map{Features: features, Breaks: breaks}
	if cfg.Inset != nil {
		pred := geodata.CodePrefix(cfg.Inset.CodePrefixes...)
		m.Features = geodata.Displace(m.Features, pred, cfg.Inset.DX, cfg.Inset.DY)
		var inset []geodata.Feature
		for _, f := range m.Features {
			if pred(f) {
				inset = append(inset, f)
			}
		}
		if len(inset) > 0 {
			m.Frames = append(m.Frames, geodata.InsetFrame(geodata.Bound(inset), cfg.Inset.FramePad))
		}
	}

	theme := choroplot.DefaultTheme()
	theme.Title = cfg.Title
	theme.Subtitle = cfg.Subtitle
	theme.Caption = cfg.Caption
	theme.LegendTitle = cfg.LegendTitle

	if err := m.Render(out, theme); err != nil {
		log.Fatal(err)
	}
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "cache"
	}
	return filepath.Join(dir, "rentamap")
}
