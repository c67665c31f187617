// Package runner orchestrates linting and fixing across many files with a
// worker pool. Per-file processing is the synchronous engine pipeline; the
// only shared state between workers is the read-only rule set and
// configuration.
package runner

import "github.com/yaklabco/marklint/pkg/config"

// DefaultMaxFixPasses bounds the fix loop. Fix application can expose new
// findings (collapsing blank lines can create new trailing context, for
// example), so fixing re-lints until stable or this many passes.
const DefaultMaxFixPasses = 3

// Options controls one multi-file run.
type Options struct {
	// Paths are the files or directories to process. Empty means the
	// current directory.
	Paths []string

	// WorkingDir resolves relative Paths. Empty means the process working
	// directory.
	WorkingDir string

	// Extensions are the file extensions treated as markup documents,
	// lowercase with leading dot. Empty means DefaultExtensions().
	Extensions []string

	// ExcludeGlobs skip matching files or directories, matched against
	// slash-separated paths relative to WorkingDir.
	ExcludeGlobs []string

	// Jobs caps concurrent workers. Zero or negative means one worker per
	// CPU.
	Jobs int

	// Fix applies every fix-bearing finding and writes files back.
	Fix bool

	// MaxFixPasses bounds the re-lint loop when fixing. Zero means
	// DefaultMaxFixPasses.
	MaxFixPasses int

	// Lenient downgrades rule faults to synthetic findings instead of
	// failing the file.
	Lenient bool

	// NoInlineConfig ignores inline directives in documents.
	NoInlineConfig bool

	// Flavor selects the markup flavor for the tokenizer.
	Flavor string

	// Config is the merged configuration for this run.
	Config config.Config
}

// DefaultExtensions returns the extensions treated as markup documents.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

func (o Options) effectiveMaxFixPasses() int {
	if o.MaxFixPasses <= 0 {
		return DefaultMaxFixPasses
	}
	return o.MaxFixPasses
}
