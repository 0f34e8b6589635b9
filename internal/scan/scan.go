// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan finds FIT activity files under a directory tree and picks
// out the ones whose GPX counterpart has not been produced yet.
package scan

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/fit2gpx/internal/convert"
	"github.com/pdiddy/fit2gpx/pkg/types"
)

// fitSignature sits at byte offset 8 of every FIT file header.
var fitSignature = []byte(".FIT")

const headerLen = 12

// HasFITHeader reports whether data starts with a FIT file header.
func HasFITHeader(data []byte) bool {
	return len(data) >= headerLen && bytes.Equal(data[8:headerLen], fitSignature)
}

// sniffFIT reads the file header and checks the FIT signature. Files too
// short to hold a header are simply not FIT files.
func sniffFIT(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	header := make([]byte, headerLen)
	n, err := f.Read(header)
	if err != nil && n == 0 {
		return false, nil
	}
	return HasFITHeader(header[:n]), nil
}

// Files walks root and returns every FIT file beneath it, sorted. A file
// qualifies by its .fit extension (case-insensitive); with cfg.Sniff set,
// the header signature is checked as well, so renamed non-FIT files are
// excluded.
func Files(root string, cfg types.ScanConfig) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".fit") {
			return nil
		}
		if cfg.Sniff {
			ok, err := sniffFIT(path)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

// Pending filters files down to the ones whose derived GPX output does not
// exist yet, preserving order.
func Pending(files []string) []string {
	var pending []string
	for _, f := range files {
		if _, err := os.Stat(convert.OutputPath(f)); err != nil {
			pending = append(pending, f)
		}
	}
	return pending
}
