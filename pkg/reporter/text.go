package reporter

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/marklint/internal/ui/pretty"
	"github.com/yaklabco/marklint/pkg/result"
	"github.com/yaklabco/marklint/pkg/runner"
)

const bufWriterSize = 32 * 1024

// TextReporter writes one styled line per finding, grouped by file in run
// order.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, res *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if res == nil || len(res.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success("No files to check."))
		}
		return 0, nil
	}

	total := 0
	for _, file := range res.Files {
		if file.Err != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.Path(r.displayPath(file.Path)),
				r.styles.Failure(fmt.Sprintf("error: %v", file.Err)))
			continue
		}

		builder := result.NewBuilder(result.V3)
		builder.Add(file.Path, file.Findings)
		for _, entry := range builder.Results().Entries(file.Path) {
			r.writeEntry(file.Path, entry)
			total++
		}
	}

	if r.opts.ShowSummary {
		r.writeSummary(res, total)
	}
	return total, nil
}

func (r *TextReporter) writeEntry(path string, e result.Entry) {
	name := e.RuleName
	if r.opts.UseAlias {
		name = e.RuleAlias
	}

	fmt.Fprintf(r.bw, "%s%s %s %s",
		r.styles.Path(r.displayPath(path)),
		r.styles.Location(fmt.Sprintf(":%d:", e.LineNumber)),
		r.styles.RuleID(name),
		e.RuleDescription)
	if e.RuleDeprecated {
		fmt.Fprintf(r.bw, " %s", r.styles.Dim("(deprecated)"))
	}
	if e.ErrorDetail != "" {
		fmt.Fprintf(r.bw, " %s", r.styles.Detail("["+e.ErrorDetail+"]"))
	}
	if e.ErrorContext != "" {
		fmt.Fprintf(r.bw, " %s", r.styles.Detail(fmt.Sprintf("[Context: %q]", e.ErrorContext)))
	}
	fmt.Fprintln(r.bw)
}

func (r *TextReporter) writeSummary(res *runner.Result, total int) {
	line := fmt.Sprintf("%d finding(s) in %d of %d file(s)",
		total, res.FilesWithFindings, len(res.Files))
	if res.FilesFixed > 0 {
		line += fmt.Sprintf(", %d file(s) fixed", res.FilesFixed)
	}
	if res.Errored > 0 {
		line += fmt.Sprintf(", %d file(s) errored", res.Errored)
	}

	if total == 0 && res.Errored == 0 {
		fmt.Fprintln(r.bw, r.styles.Success(line))
	} else {
		fmt.Fprintln(r.bw, r.styles.Failure(line))
	}
}

func (r *TextReporter) displayPath(path string) string {
	if r.opts.WorkingDir == "" {
		return path
	}
	rel, err := filepath.Rel(r.opts.WorkingDir, path)
	if err != nil || len(rel) >= len(path) {
		return path
	}
	return rel
}
