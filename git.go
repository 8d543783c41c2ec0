package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// isGitURL reports whether the scan target looks like a Git repository URL
// rather than a local directory. Plain https:// URLs without a .git suffix
// are deliberately not treated as repositories.
func isGitURL(input string) bool {
	return strings.HasSuffix(input, ".git") ||
		strings.HasPrefix(input, "git@")
}

// cloneGitRepo clones the default branch of a repository into a temporary
// directory and returns its path. The caller owns cleanup of the directory
// on success; on failure it is removed here.
//
// Only the worktree matters for counting, so the clone is shallow and
// single-branch.
func cloneGitRepo(url string) (string, error) {
	tempDir, err := os.MkdirTemp("", "linetally-git-")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Cloning %s...\n", url)
	_, err = git.PlainClone(tempDir, false, &git.CloneOptions{
		URL:           url,
		Depth:         1,
		ReferenceName: plumbing.HEAD,
		SingleBranch:  true,
	})
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return "", fmt.Errorf("failed to clone repository %s: %w", url, err)
	}
	return tempDir, nil
}
