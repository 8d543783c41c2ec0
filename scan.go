package main

import "sort"

// NoExtension is the reporting bucket for file names without a dot.
const NoExtension = ".noext"

// ScanConfig describes one scan. It is built once from flags (or directly by
// a caller) and not mutated while the scan runs.
//
// Includes and Excludes are mutually exclusive modes: when Includes is
// non-empty the scan runs in inclusion mode and Excludes/ExcludeExtensions
// are ignored. The same applies to IncludeExtensions vs ExcludeExtensions on
// the extension axis.
type ScanConfig struct {
	// Root is the directory to scan.
	Root string

	// Includes are path prefixes, relative to Root unless absolute. When
	// non-empty, only files whose normalized path starts with one of them
	// are counted.
	Includes []string
	// IncludeExtensions restricts counting to these extensions when
	// non-empty (e.g. ".go", ".py").
	IncludeExtensions []string

	// Excludes are path prefixes to skip. Entries that exactly match a
	// directory name also prune that directory wherever it appears.
	Excludes []string
	// ExcludeExtensions are extensions to skip.
	ExcludeExtensions []string

	// ShowHidden includes dotfiles and dot-directories in the walk.
	ShowHidden bool
	// NoIgnore disables the root .gitignore.
	NoIgnore bool
	// MaxDepth bounds traversal depth below Root (0 = no limit).
	MaxDepth int
}

// FileError records a file that could not be read. Such files contribute
// zero lines and do not stop the scan.
type FileError struct {
	Path string
	Err  error
}

// ExtensionCount is one row of the final report.
type ExtensionCount struct {
	Extension string
	Lines     int
}

// Report accumulates line counts during a scan. Extensions remember the
// order they were first seen so that equal counts sort stably.
type Report struct {
	counts map[string]int
	order  []string

	// TotalLines is the sum over all extensions.
	TotalLines int
	// Errors lists files that failed to read.
	Errors []FileError
}

func newReport() *Report {
	return &Report{counts: make(map[string]int)}
}

func (r *Report) add(ext string, lines int) {
	if _, seen := r.counts[ext]; !seen {
		r.order = append(r.order, ext)
	}
	r.counts[ext] += lines
	r.TotalLines += lines
}

func (r *Report) addError(path string, err error) {
	r.Errors = append(r.Errors, FileError{Path: path, Err: err})
}

// Lines returns the count for one extension bucket.
func (r *Report) Lines(ext string) int {
	return r.counts[ext]
}

// Extensions returns the per-extension counts sorted by count descending.
// Ties keep first-encountered order.
func (r *Report) Extensions() []ExtensionCount {
	out := make([]ExtensionCount, 0, len(r.order))
	for _, ext := range r.order {
		out = append(out, ExtensionCount{Extension: ext, Lines: r.counts[ext]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Lines > out[j].Lines
	})
	return out
}
