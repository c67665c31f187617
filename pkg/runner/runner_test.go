package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/marklint/pkg/rule"
	"github.com/yaklabco/marklint/pkg/rules"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func builtinSet(t *testing.T) *rule.Set {
	t.Helper()
	set, err := rule.NewSet(rules.Builtin(), nil)
	require.NoError(t, err)
	return set
}

func TestRunLintsDiscoveredFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "clean.md", "all good\n")
	writeFile(t, dir, "dirty.md", "trailing space \n")
	writeFile(t, dir, "notes.txt", "ignored \n")

	r := New(builtinSet(t), "commonmark")
	result, err := r.Run(context.Background(), Options{WorkingDir: dir})
	require.NoError(t, err)

	require.Len(t, result.Files, 2)
	assert.Equal(t, 1, result.FilesWithFindings)
	assert.Equal(t, 1, result.TotalFindings)
	assert.Equal(t, 0, result.Errored)

	// Discovery order is sorted, so outcomes are deterministic.
	assert.Equal(t, "clean.md", filepath.Base(result.Files[0].Path))
	assert.Equal(t, "dirty.md", filepath.Base(result.Files[1].Path))
}

func TestRunFixRewritesFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "doc.md", "one \n\n\n\ntwo")

	r := New(builtinSet(t), "commonmark")
	result, err := r.Run(context.Background(), Options{WorkingDir: dir, Fix: true})
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesFixed)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\n\ntwo\n", string(got))

	// Fixed files carry no remaining fixable findings.
	require.Len(t, result.Files, 1)
	for _, f := range result.Files[0].Findings {
		_, fixable := f.Diagnostic.Fix()
		assert.False(t, fixable)
	}
}

func TestRunFixLeavesCleanFilesAlone(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "doc.md", "already clean\n")

	before, err := os.Stat(path)
	require.NoError(t, err)

	r := New(builtinSet(t), "commonmark")
	result, err := r.Run(context.Background(), Options{WorkingDir: dir, Fix: true})
	require.NoError(t, err)
	assert.Equal(t, 0, result.FilesFixed)

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestRunEmptyDirectory(t *testing.T) {
	t.Parallel()

	r := New(builtinSet(t), "commonmark")
	result, err := r.Run(context.Background(), Options{WorkingDir: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.md", "")
	writeFile(t, dir, "b.markdown", "")
	writeFile(t, dir, "c.txt", "")
	writeFile(t, dir, "nested/d.md", "")
	writeFile(t, dir, ".hidden/e.md", "")
	writeFile(t, dir, "vendor/f.md", "")

	files, err := Discover(context.Background(), Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor"},
	})
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		rel, relErr := filepath.Rel(dir, f)
		require.NoError(t, relErr)
		names = append(names, filepath.ToSlash(rel))
	}
	assert.Equal(t, []string{"a.md", "b.markdown", "nested/d.md"}, names)
}

func TestDiscoverExplicitFileBypassesExtensionFilter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "README.txt", "")

	files, err := Discover(context.Background(), Options{
		WorkingDir: dir,
		Paths:      []string{"README.txt"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestDiscoverMissingPath(t *testing.T) {
	t.Parallel()

	_, err := Discover(context.Background(), Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"no-such-file.md"},
	})
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.md", "x\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(builtinSet(t), "commonmark")
	_, err := r.Run(ctx, Options{WorkingDir: dir})
	assert.Error(t, err)
}
