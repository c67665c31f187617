package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// Discover resolves opts.Paths to a sorted, duplicate-free list of absolute
// document paths. Directories are walked recursively; hidden directories
// and excluded globs are skipped.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	extensions := opts.effectiveExtensions()

	seen := map[string]struct{}{}
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			// Explicitly named files bypass the extension filter but not
			// the excludes.
			if !excluded(absPath, workDir, opts.ExcludeGlobs) {
				add(absPath)
			}
			continue
		}

		walked, err := walkDirectory(ctx, absPath, workDir, extensions, opts.ExcludeGlobs)
		if err != nil {
			return nil, err
		}
		for _, f := range walked {
			add(f)
		}
	}

	sort.Strings(files)
	return files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		return os.Getwd()
	}
	return filepath.Abs(workDir)
}

func walkDirectory(ctx context.Context, root, workDir string, extensions, excludes []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if path != root && (hiddenName(entry.Name()) || excluded(path, workDir, excludes)) {
				return filepath.SkipDir
			}
			return nil
		}

		if !slices.Contains(extensions, strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		if excluded(path, workDir, excludes) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, nil
}

func hiddenName(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// excluded matches glob patterns against the slash-separated path relative
// to workDir, both as a whole and per path segment, so "vendor" excludes
// any vendor directory at any depth.
func excluded(path, workDir string, excludes []string) bool {
	if len(excludes) == 0 {
		return false
	}

	rel, err := filepath.Rel(workDir, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range excludes {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		for _, segment := range strings.Split(rel, "/") {
			if ok, _ := filepath.Match(pattern, segment); ok {
				return true
			}
		}
	}
	return false
}
