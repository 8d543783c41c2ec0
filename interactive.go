package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
)

// runInteractiveFinder lets the user pick the scan root from a fuzzy finder
// over the directories below the current working directory. Returns "" with
// a nil error when the user aborts the selection.
func runInteractiveFinder(showHidden bool) (string, error) {
	candidates := []string{"."}
	root := "."

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // keep collecting candidates
		}
		if path == root || !d.IsDir() {
			return nil
		}
		if !showHidden && isHidden(d.Name()) {
			return fs.SkipDir
		}
		candidates = append(candidates, path)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("error scanning for directories: %w", err)
	}

	idx, err := fuzzyfinder.Find(
		candidates,
		func(i int) string {
			return candidates[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Select the directory to count. Enter to confirm."
			}
			path := candidates[i]
			entries, readErr := os.ReadDir(path)
			if readErr != nil {
				return fmt.Sprintf("Directory: %s\nError reading contents: %v", path, readErr)
			}
			return fmt.Sprintf("Directory: %s\nEntries: %d", path, len(entries))
		}),
	)
	if err != nil {
		if err == fuzzyfinder.ErrAbort {
			fmt.Fprintln(os.Stderr, "Interactive selection aborted.")
			return "", nil
		}
		return "", fmt.Errorf("fuzzy finder error: %w", err)
	}

	return candidates[idx], nil
}
