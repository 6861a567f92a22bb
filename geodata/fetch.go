// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geodata

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Fetch downloads rawurl into cacheDir and returns the local path. An
// archive that is already cached is reused without touching the
// network, so a map can be rebuilt offline.
func Fetch(ctx context.Context, client *http.Client, rawurl, cacheDir string) (string, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return "", fmt.Errorf("geodata: %w", err)
	}
	name := path.Base(u.Path)
	if name == "" || name == "/" || name == "." {
		return "", fmt.Errorf("geodata: %s: cannot derive a file name", rawurl)
	}
	dst := filepath.Join(cacheDir, name)
	if _, err := os.Stat(dst); err == nil {
		return dst, nil
	}

	if err := os.MkdirAll(cacheDir, 0777); err != nil {
		return "", fmt.Errorf("geodata: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return "", fmt.Errorf("geodata: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("geodata: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geodata: GET %s: %s", rawurl, resp.Status)
	}

	// Download to a temporary name so an interrupted fetch never
	// poisons the cache.
	tmp, err := os.CreateTemp(cacheDir, name+".tmp*")
	if err != nil {
		return "", fmt.Errorf("geodata: %w", err)
	}
	_, err = io.Copy(tmp, resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), dst)
	}
	if err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("geodata: %w", err)
	}
	return dst, nil
}

// ExtractShapefile unpacks the .shp, .dbf and .shx members of a
// zipped shapefile archive next to the archive and returns the path
// of the .shp file.
func ExtractShapefile(zipPath string) (string, error) {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", fmt.Errorf("geodata: %w", err)
	}
	defer zr.Close()

	dir := filepath.Dir(zipPath)
	shpPath := ""
	for _, f := range zr.File {
		ext := strings.ToLower(path.Ext(f.Name))
		switch ext {
		case ".shp", ".dbf", ".shx":
		default:
			continue
		}
		dst := filepath.Join(dir, path.Base(f.Name))
		if err := extractFile(f, dst); err != nil {
			return "", fmt.Errorf("geodata: %s: %w", f.Name, err)
		}
		if ext == ".shp" {
			shpPath = dst
		}
	}
	if shpPath == "" {
		return "", fmt.Errorf("geodata: %s: no .shp member", zipPath)
	}
	return shpPath, nil
}

func extractFile(f *zip.File, dst string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	w, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, rc)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return err
}
