package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsGitURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://github.com/user/repo.git", true},
		{"git@github.com:user/repo.git", true},
		{"git@example.com:user/repo", true},
		{"https://example.com/page", false},
		{"./local/dir", false},
		{"repo", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isGitURL(tt.input), "isGitURL(%q)", tt.input)
	}
}
