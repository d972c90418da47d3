package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"quill/internal/source"
)

// Каталоги, в которые обход не заходит.
var skippedDirs = map[string]struct{}{
	"node_modules": {},
	".git":         {},
	".hg":          {},
	".svn":         {},
}

// CollectSourceFiles expands paths into a sorted, duplicate-free list of
// supported files. Directories are walked recursively, skipping VCS and
// node_modules directories.
func CollectSourceFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if source.SupportedExt(p) {
				addFile(p)
			}
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if _, skip := skippedDirs[d.Name()]; skip && path != p {
					return filepath.SkipDir
				}
				return nil
			}
			if source.SupportedExt(path) {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
