// Package reporter renders run results for people and machines. The text
// reporter is the styled terminal view; the JSON reporter emits the
// versioned result shapes.
package reporter

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/yaklabco/marklint/pkg/result"
	"github.com/yaklabco/marklint/pkg/runner"
)

// Format selects an output renderer.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// IsValid reports whether the format is known.
func (f Format) IsValid() bool {
	return f == FormatText || f == FormatJSON
}

// Options configures a Reporter.
type Options struct {
	// Format selects the renderer. Empty means text.
	Format Format

	// Writer receives the output. Nil means stdout.
	Writer io.Writer

	// Color is "auto", "always" or "never"; text output only.
	Color string

	// UseAlias renders rule aliases instead of canonical names.
	UseAlias bool

	// Version selects the result shape for machine output.
	Version result.Version

	// ShowSummary appends an aggregate line to text output.
	ShowSummary bool

	// WorkingDir, when set, shortens file paths relative to it.
	WorkingDir string
}

// Reporter formats and writes a run's results. It returns the number of
// findings written.
type Reporter interface {
	Report(ctx context.Context, res *runner.Result) (int, error)
}

// New creates a Reporter for the options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
