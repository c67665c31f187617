package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/marklint/pkg/fix"
	"github.com/yaklabco/marklint/pkg/fsutil"
	"github.com/yaklabco/marklint/pkg/lint"
	"github.com/yaklabco/marklint/pkg/parser/goldmark"
	"github.com/yaklabco/marklint/pkg/rule"
)

// Runner processes files concurrently with a shared rule set. The rule set
// and configuration are read-only across workers; each file's pipeline is
// synchronous.
type Runner struct {
	set       *rule.Set
	tokenizer *goldmark.Tokenizer
}

// New creates a Runner over the given rule set.
func New(set *rule.Set, flavor string) *Runner {
	return &Runner{
		set:       set,
		tokenizer: goldmark.New(flavor),
	}
}

// Outcome is one file's processing result.
type Outcome struct {
	// Path is the absolute file path.
	Path string

	// Findings are the file's filtered findings, after fixing when fixing
	// is enabled.
	Findings []lint.Finding

	// Fixed reports whether the file was rewritten.
	Fixed bool

	// Err is the file's processing failure, if any. Other files still
	// complete.
	Err error
}

// Result aggregates a whole run.
type Result struct {
	// Files holds one outcome per discovered file, in discovery order.
	Files []Outcome

	// FilesWithFindings counts files with at least one finding.
	FilesWithFindings int

	// TotalFindings counts findings across all files.
	TotalFindings int

	// FilesFixed counts files rewritten by the fix loop.
	FilesFixed int

	// Errored counts files that failed to process.
	Errored int
}

func (r *Result) accumulate(outcome Outcome) {
	r.Files = append(r.Files, outcome)
	switch {
	case outcome.Err != nil:
		r.Errored++
	case len(outcome.Findings) > 0:
		r.FilesWithFindings++
	}
	r.TotalFindings += len(outcome.Findings)
	if outcome.Fixed {
		r.FilesFixed++
	}
}

// Run discovers and processes files. The returned result lists outcomes in
// discovery order regardless of worker completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]Outcome, 0, len(files))}
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan Outcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]Outcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- Outcome, opts Options) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processFile(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processFile runs one file through the pipeline. With fixing enabled it
// re-lints after each application round until no fixes remain or the pass
// limit is reached, then writes the file back once.
func (r *Runner) processFile(ctx context.Context, path string, opts Options) Outcome {
	outcome := Outcome{Path: path}

	content, err := fsutil.ReadText(ctx, path)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	lintOpts := lint.Options{Lenient: opts.Lenient, NoInlineConfig: opts.NoInlineConfig}
	text := string(content)

	findings, err := r.lintText(path, text, opts, lintOpts)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	if opts.Fix {
		for pass := 0; pass < opts.effectiveMaxFixPasses(); pass++ {
			fixes := lint.Fixes(findings)
			if len(fixes) == 0 {
				break
			}
			text = fix.Apply(text, fixes)
			findings, err = r.lintText(path, text, opts, lintOpts)
			if err != nil {
				outcome.Err = err
				return outcome
			}
		}

		wrote, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte(text), fsutil.FileMode(path))
		if err != nil {
			outcome.Err = err
			return outcome
		}
		outcome.Fixed = wrote
	}

	outcome.Findings = findings
	return outcome
}

func (r *Runner) lintText(path, text string, opts Options, lintOpts lint.Options) ([]lint.Finding, error) {
	d := r.tokenizer.Parse(path, []byte(text))
	findings, err := lint.Run(d, r.set, opts.Config, lintOpts)
	if err != nil {
		return nil, fmt.Errorf("lint %s: %w", path, err)
	}
	return findings, nil
}
