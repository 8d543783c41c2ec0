package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"
)

// Scan walks cfg.Root depth-first, filters candidate files, counts their
// lines and aggregates the result per extension.
//
// A root that does not exist or is not a directory is a configuration error
// and fails the whole scan. Per-file read errors are warned about, recorded
// on the report, and do not stop the walk.
func Scan(cfg ScanConfig) (*Report, error) {
	info, err := os.Stat(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("cannot scan %s: %w", cfg.Root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("cannot scan %s: not a directory", cfg.Root)
	}

	filter := newFileFilter(&cfg)
	report := newReport()
	root := filepath.Clean(cfg.Root)

	var ignoreMatcher gitignore.IgnoreMatcher
	if !cfg.NoIgnore {
		gitIgnorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			matcher, err := gitignore.NewGitIgnore(gitIgnorePath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not parse .gitignore file %s: %v\n", gitIgnorePath, err)
			} else {
				ignoreMatcher = matcher
			}
		}
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error accessing path %s: %v\n", path, err)
			return nil
		}
		if path == root {
			return nil
		}

		name := d.Name()
		isDir := d.IsDir()

		if !cfg.ShowHidden && isHidden(name) {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}

		// The matcher relativizes against its own base (the root), so it
		// gets the full path.
		if ignoreMatcher != nil && ignoreMatcher.Match(path, isDir) {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}

		relPath, _ := filepath.Rel(root, path)

		if cfg.MaxDepth > 0 && countPathSeparators(relPath) >= cfg.MaxDepth {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}

		if isDir {
			// Exact-name pruning skips the whole subtree, independent of
			// the path-prefix filter applied to files.
			if filter.pruneDir(name) {
				return fs.SkipDir
			}
			return nil
		}

		if !filter.keep(normalizePath(path), name) {
			return nil
		}

		lines, countErr := countLines(path)
		if countErr != nil {
			// The file contributes zero lines; the scan carries on.
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, countErr)
			report.addError(path, countErr)
			return nil
		}
		report.add(fileExtension(name), lines)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", root, err)
	}

	return report, nil
}

// isHidden reports whether a base name is a dotfile. "." and ".." are not
// considered hidden.
func isHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return len(name) > 0 && name[0] == '.'
}

// countPathSeparators counts separators in a relative path, which equals the
// depth below the walk root.
func countPathSeparators(path string) int {
	path = filepath.ToSlash(path)
	if path == "." || path == "" {
		return 0
	}
	return strings.Count(strings.Trim(path, "/"), "/")
}
