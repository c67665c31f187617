package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/marklint/pkg/result"
	"github.com/yaklabco/marklint/pkg/runner"
)

// JSONReporter emits the versioned result object, keyed by file path, plus
// a parallel object of per-file processing errors when any occurred.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

type jsonOutput struct {
	Results *result.Results   `json:"results"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, res *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	builder := result.NewBuilder(r.opts.Version)
	errors := map[string]string{}
	total := 0

	if res != nil {
		for _, file := range res.Files {
			if file.Err != nil {
				errors[file.Path] = file.Err.Error()
				continue
			}
			builder.Add(file.Path, file.Findings)
			total += len(file.Findings)
		}
	}

	out := jsonOutput{Results: builder.Results()}
	if len(errors) > 0 {
		out.Errors = errors
	}

	enc := json.NewEncoder(r.bw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return 0, fmt.Errorf("encode results: %w", err)
	}
	return total, nil
}
