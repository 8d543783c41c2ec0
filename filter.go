package main

import (
	"path/filepath"
	"strings"
)

// normalizePath canonicalizes a path for prefix comparison: `.`/`..`
// segments are resolved and separators become forward slashes. Best-effort,
// never fails.
func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// resolvePrefix normalizes a user-supplied include/exclude prefix. Relative
// prefixes are interpreted relative to the scan root.
func resolvePrefix(root, prefix string) string {
	if filepath.IsAbs(prefix) {
		return normalizePath(prefix)
	}
	return normalizePath(filepath.Join(root, prefix))
}

// fileExtension returns the trailing dot-suffix of a file name, or the
// NoExtension sentinel when the name contains no dot. Unlike filepath.Ext,
// dotfiles like ".gitignore" keep their full name as the extension.
func fileExtension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return NoExtension
	}
	return name[idx:]
}

// fileFilter decides, per candidate file, whether it should be counted.
// All decisions are over strings; the filter does no I/O.
type fileFilter struct {
	includes    []string
	excludes    []string
	includeExts map[string]struct{}
	excludeExts map[string]struct{}

	// excludeNames holds the raw exclusion entries for exact directory-name
	// pruning, distinct from the normalized prefix matching above.
	excludeNames map[string]struct{}

	inclusionMode bool
}

func newFileFilter(cfg *ScanConfig) *fileFilter {
	f := &fileFilter{
		includeExts:  make(map[string]struct{}, len(cfg.IncludeExtensions)),
		excludeExts:  make(map[string]struct{}, len(cfg.ExcludeExtensions)),
		excludeNames: make(map[string]struct{}, len(cfg.Excludes)),
	}

	f.inclusionMode = len(cfg.Includes) > 0
	for _, p := range cfg.Includes {
		f.includes = append(f.includes, resolvePrefix(cfg.Root, p))
	}

	// Inclusion mode takes precedence: exclusion prefixes and exclusion
	// extensions are ignored entirely when includes are set.
	if !f.inclusionMode {
		for _, p := range cfg.Excludes {
			f.excludes = append(f.excludes, resolvePrefix(cfg.Root, p))
			f.excludeNames[p] = struct{}{}
		}
		for _, ext := range cfg.ExcludeExtensions {
			f.excludeExts[ext] = struct{}{}
		}
	}
	for _, ext := range cfg.IncludeExtensions {
		f.includeExts[ext] = struct{}{}
	}
	return f
}

// pruneDir reports whether a directory with this exact name should be
// skipped without descending into it. Only exclusion mode prunes.
func (f *fileFilter) pruneDir(name string) bool {
	_, pruned := f.excludeNames[name]
	return pruned
}

// keep reports whether the file at path (already normalized, name is its
// base name) passes the configured filters.
func (f *fileFilter) keep(path, name string) bool {
	ext := fileExtension(name)

	if f.inclusionMode {
		if !hasAnyPrefix(path, f.includes) {
			return false
		}
		if len(f.includeExts) > 0 {
			_, ok := f.includeExts[ext]
			return ok
		}
		return true
	}

	if hasAnyPrefix(path, f.excludes) {
		return false
	}
	if len(f.includeExts) > 0 {
		_, ok := f.includeExts[ext]
		return ok
	}
	if len(f.excludeExts) > 0 {
		if _, excluded := f.excludeExts[ext]; excluded {
			return false
		}
	}
	return true
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
