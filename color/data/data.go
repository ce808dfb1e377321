// Package data embeds the spectral tables shipped with the toolbox.
//
// Each table is a plain-text file of whitespace separated columns: the first
// column is wavelength in nanometres, the remaining columns are responses.
// Lines beginning with '%' are comments.
//
//   - cmfxyz:   CIE 1931 2° observer, 380–780 nm, 3 channels
//   - cmfrgb:   CIE 1931 RGB colour matching functions, 3 channels
//   - cones:    L, M, S cone sensitivities, 3 channels
//   - redbrick: reflectance of red brick, 350–1000 nm, 1 channel
//   - solar:    solar irradiance at sea level, 380–900 nm, 1 channel
package data

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Ext is the file suffix of spectral tables.
const Ext = ".dat"

//go:embed *.dat
var files embed.FS

// FS returns the embedded tables as a read-only file system.
func FS() fs.FS {
	return files
}

// Names returns the base names of all embedded tables, sorted.
func Names() []string {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != Ext {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), Ext))
	}
	sort.Strings(names)
	return names
}
