// Package assets maps gloss tokens to renderable asset descriptors using a
// layered fallback policy: exact dataset match, per-character
// fingerspelling, then literal text.
package assets

import (
	"os"
	"path/filepath"
	"strings"
)

// Index maps an uppercase sign symbol (letter or word) to a representative
// media file path.
type Index map[string]string

var mediaExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".mp4":  {},
	".gif":  {},
}

// BuildIndex scans a dataset laid out as one subdirectory per symbol and
// picks the first media file per directory (lexicographic order, so the
// pick is stable across runs). A missing or unreadable dataset directory
// yields an empty index: every token then resolves through fingerspelling
// or text fallback.
func BuildIndex(dir string) Index {
	idx := Index{}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return idx
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		sub := filepath.Join(dir, e.Name())
		files, err := os.ReadDir(sub)
		if err != nil {
			continue
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(f.Name()))
			if _, ok := mediaExts[ext]; ok {
				idx[strings.ToUpper(e.Name())] = filepath.Join(sub, f.Name())
				break
			}
		}
	}
	return idx
}
