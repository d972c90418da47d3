package diagfmt

import (
	"path/filepath"
	"strings"

	"quill/internal/source"
)

// displayPath renders a file path according to mode; base is the
// directory relative paths are computed against.
func displayPath(f *source.File, mode PathMode, base string) string {
	if f == nil {
		return "<unknown>"
	}
	p := filepath.FromSlash(f.Path)
	switch mode {
	case PathModeBasename:
		return filepath.Base(p)
	case PathModeAbsolute:
		if abs, err := filepath.Abs(p); err == nil {
			return abs
		}
		return p
	case PathModeRelative, PathModeAuto:
		abs, err := filepath.Abs(p)
		if err != nil || base == "" {
			return p
		}
		rel, err := filepath.Rel(base, abs)
		if err != nil {
			return p
		}
		if mode == PathModeAuto && strings.HasPrefix(rel, "..") {
			return p
		}
		return rel
	}
	return p
}
