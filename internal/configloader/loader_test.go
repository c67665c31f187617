package configloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/marklint/pkg/config"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "yaml",
			file:    "cfg.yaml",
			content: "default: true\nno-trailing-spaces:\n  br_spaces: 0\n",
		},
		{
			name:    "json",
			file:    "cfg.json",
			content: `{"default": true, "no-trailing-spaces": {"br_spaces": 0}}`,
		},
		{
			name:    "toml",
			file:    "cfg.toml",
			content: "default = true\n\n[no-trailing-spaces]\nbr_spaces = 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeConfig(t, t.TempDir(), tt.file, tt.content)

			cfg, err := Load(path)
			require.NoError(t, err)

			assert.Equal(t, true, cfg["default"])
			options, ok := cfg["no-trailing-spaces"].(map[string]any)
			require.True(t, ok, "options decode to a plain mapping")
			assert.Contains(t, options, "br_spaces")
		})
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "cfg.ini", "default=true")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadExtendsChain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "base.yaml", "default: false\nwhitespace: true\n")
	child := writeConfig(t, dir, "child.yaml", "extends: base.yaml\nwhitespace: false\n")

	cfg, err := Load(child)
	require.NoError(t, err)

	// Child keys win; the linkage key is stripped.
	assert.Equal(t, false, cfg["whitespace"])
	assert.Equal(t, false, cfg["default"])
	assert.NotContains(t, cfg, config.ExtendsKey)
}

func TestLoadExtendsCycle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "a.yaml", "extends: b.yaml\n")
	writeConfig(t, dir, "b.yaml", "extends: a.yaml\n")

	_, err := Load(filepath.Join(dir, "a.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too deep")
}

func TestDiscoverWalksUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	expect := writeConfig(t, root, ".marklint.yaml", "default: true\n")

	nested := filepath.Join(root, "docs", "guides")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	assert.Equal(t, expect, Discover(nested))
}

func TestDiscoverStopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	outer := t.TempDir()
	writeConfig(t, outer, ".marklint.yaml", "default: true\n")

	repo := filepath.Join(outer, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	// The repo has no config of its own and the search must not escape it.
	assert.Empty(t, Discover(repo))
}

func TestLoadForDirMissingConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))

	path, cfg, err := LoadForDir(dir)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Empty(t, cfg)
}
