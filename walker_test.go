package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureTree builds the reference tree used across scan tests:
// a.py (3 lines), b.py (5 lines), c.txt (2 lines).
func fixtureTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "a.py", []byte("1\n2\n3\n"))
	writeFile(t, dir, "b.py", []byte("1\n2\n3\n4\n5\n"))
	writeFile(t, dir, "c.txt", []byte("1\n2\n"))
	return dir
}

func TestScanNoFilters(t *testing.T) {
	dir := fixtureTree(t)

	report, err := Scan(ScanConfig{Root: dir})
	require.NoError(t, err)

	assert.Equal(t, 8, report.Lines(".py"))
	assert.Equal(t, 2, report.Lines(".txt"))
	assert.Equal(t, 10, report.TotalLines)

	exts := report.Extensions()
	require.Len(t, exts, 2)
	assert.Equal(t, ExtensionCount{".py", 8}, exts[0], ".py sorts before .txt (8 > 2)")
	assert.Equal(t, ExtensionCount{".txt", 2}, exts[1])
}

func TestScanExcludeExtensions(t *testing.T) {
	dir := fixtureTree(t)

	report, err := Scan(ScanConfig{Root: dir, ExcludeExtensions: []string{".txt"}})
	require.NoError(t, err)

	assert.Equal(t, 8, report.Lines(".py"))
	assert.Zero(t, report.Lines(".txt"))
	assert.Equal(t, 8, report.TotalLines)
}

func TestScanIncludeWithIncludeExtensions(t *testing.T) {
	dir := fixtureTree(t)

	report, err := Scan(ScanConfig{
		Root:              dir,
		Includes:          []string{"."},
		IncludeExtensions: []string{".py"},
	})
	require.NoError(t, err)

	assert.Equal(t, 8, report.TotalLines)
	assert.Equal(t, 8, report.Lines(".py"))
	assert.Zero(t, report.Lines(".txt"))
}

func TestScanPrunesExcludedDirName(t *testing.T) {
	dir := fixtureTree(t)
	sub := filepath.Join(dir, "node_modules", "pkg")
	require.NoError(t, os.MkdirAll(sub, 0755))
	writeFile(t, sub, "huge.js", []byte("1\n2\n3\n4\n"))

	report, err := Scan(ScanConfig{Root: dir, Excludes: []string{"node_modules"}})
	require.NoError(t, err)

	assert.Zero(t, report.Lines(".js"), "pruned subtree contributes nothing")
	assert.Equal(t, 10, report.TotalLines)
}

func TestScanNoExtBucket(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Makefile", []byte("all:\n\techo hi\n"))

	report, err := Scan(ScanConfig{Root: dir})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Lines(NoExtension))
	assert.Zero(t, report.Lines(""), "never an empty-string bucket")
}

func TestScanSkipsHiddenByDefault(t *testing.T) {
	dir := fixtureTree(t)
	writeFile(t, dir, ".secret.py", []byte("1\n2\n"))
	hiddenDir := filepath.Join(dir, ".cache")
	require.NoError(t, os.MkdirAll(hiddenDir, 0755))
	writeFile(t, hiddenDir, "d.py", []byte("1\n"))

	report, err := Scan(ScanConfig{Root: dir})
	require.NoError(t, err)
	assert.Equal(t, 10, report.TotalLines)

	report, err = Scan(ScanConfig{Root: dir, ShowHidden: true})
	require.NoError(t, err)
	assert.Equal(t, 13, report.TotalLines)
}

func TestScanRespectsGitignore(t *testing.T) {
	dir := fixtureTree(t)
	writeFile(t, dir, ".gitignore", []byte("c.txt\n"))

	report, err := Scan(ScanConfig{Root: dir})
	require.NoError(t, err)
	assert.Zero(t, report.Lines(".txt"))
	assert.Equal(t, 8, report.TotalLines)

	report, err = Scan(ScanConfig{Root: dir, NoIgnore: true})
	require.NoError(t, err)
	assert.Equal(t, 10, report.TotalLines)
}

func TestScanMaxDepth(t *testing.T) {
	dir := fixtureTree(t)
	sub := filepath.Join(dir, "deep")
	require.NoError(t, os.MkdirAll(sub, 0755))
	writeFile(t, sub, "d.py", []byte("1\n"))

	report, err := Scan(ScanConfig{Root: dir, MaxDepth: 1})
	require.NoError(t, err)
	assert.Equal(t, 10, report.TotalLines, "files below max depth are not counted")

	report, err = Scan(ScanConfig{Root: dir})
	require.NoError(t, err)
	assert.Equal(t, 11, report.TotalLines)
}

func TestScanIdempotent(t *testing.T) {
	dir := fixtureTree(t)
	cfg := ScanConfig{Root: dir}

	first, err := Scan(cfg)
	require.NoError(t, err)
	second, err := Scan(cfg)
	require.NoError(t, err)

	assert.Equal(t, first.TotalLines, second.TotalLines)
	assert.Equal(t, first.Extensions(), second.Extensions())
}

func TestScanTotalEqualsSumOfExtensions(t *testing.T) {
	dir := fixtureTree(t)
	writeFile(t, dir, "README", []byte("hello\n"))

	report, err := Scan(ScanConfig{Root: dir})
	require.NoError(t, err)

	sum := 0
	for _, ec := range report.Extensions() {
		sum += ec.Lines
	}
	assert.Equal(t, report.TotalLines, sum)
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(ScanConfig{Root: filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, err)
}

func TestScanRootIsFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "f.txt", []byte("1\n"))

	_, err := Scan(ScanConfig{Root: path})
	assert.Error(t, err)
}

func TestScanUnreadableFileIsNonFatal(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission bits are not enforced")
	}
	dir := fixtureTree(t)
	locked := writeFile(t, dir, "locked.py", []byte("1\n2\n"))
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0644) })

	report, err := Scan(ScanConfig{Root: dir})
	require.NoError(t, err)

	assert.Equal(t, 10, report.TotalLines, "unreadable file contributes zero lines")
	require.Len(t, report.Errors, 1)
	assert.Equal(t, locked, report.Errors[0].Path)
}
