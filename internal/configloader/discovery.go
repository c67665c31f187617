package configloader

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/yaklabco/marklint/pkg/config"
)

// configFileNames are searched in order of preference within a directory.
//
//nolint:gochecknoglobals // read-only lookup table
var configFileNames = []string{
	".marklint.yaml",
	".marklint.yml",
	".marklint.json",
	".marklint.toml",
	"marklint.yaml",
	"marklint.yml",
}

// vcsRootMarkers stop the upward search at a repository boundary.
//
//nolint:gochecknoglobals // read-only lookup table
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// Discover searches workDir and its ancestors for a project config file,
// stopping after a VCS root. It returns the empty string when none exists.
func Discover(workDir string) string {
	dir, err := filepath.Abs(workDir)
	if err != nil {
		return ""
	}

	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}

		if isVCSRoot(dir) {
			return ""
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// LoadForDir discovers and loads the project configuration for a
// directory. A missing config yields an empty mapping, not an error.
func LoadForDir(workDir string) (string, config.Config, error) {
	path := Discover(workDir)
	if path == "" {
		return "", config.Config{}, nil
	}
	cfg, err := Load(path)
	if err != nil {
		return path, nil, err
	}
	return path, cfg, nil
}

func isVCSRoot(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if slices.Contains(vcsRootMarkers, entry.Name()) {
			return true
		}
	}
	return false
}
