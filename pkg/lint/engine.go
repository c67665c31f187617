// Package lint runs a validated rule set over one document: the rule runner
// invokes each enabled check with a capability-limited context, snapshots
// and validates every reported diagnostic, and the directive resolver
// filters findings by inline enable/disable markers.
package lint

import (
	"fmt"

	"github.com/yaklabco/marklint/pkg/config"
	"github.com/yaklabco/marklint/pkg/doc"
	"github.com/yaklabco/marklint/pkg/fix"
	"github.com/yaklabco/marklint/pkg/rule"
)

// Options controls one analysis run.
type Options struct {
	// Lenient converts rule faults and invalid diagnostics into one
	// synthetic diagnostic for the offending rule instead of aborting the
	// run.
	Lenient bool

	// NoInlineConfig disables inline directive processing.
	NoInlineConfig bool
}

// Finding pairs a raw diagnostic with the rule that produced it.
type Finding struct {
	Rule       rule.Rule
	Diagnostic rule.Diagnostic
}

// Run executes every enabled rule of set against d, in registration order,
// and returns the directive-filtered findings. Findings keep rule
// registration order, then each rule's own emission order; they are not
// sorted here.
func Run(d *doc.Document, set *rule.Set, cfg config.Config, opts Options) ([]Finding, error) {
	var findings []Finding

	for _, r := range set.Rules() {
		enabled, options := config.Resolve(r.Names, r.Tags, cfg)
		if !enabled {
			continue
		}

		ruleFindings, err := runRule(d, r, options)
		if err != nil {
			if !opts.Lenient {
				return nil, &RuleFaultError{RuleName: r.Name(), Err: err}
			}
			ruleFindings = []Finding{syntheticFinding(r, err)}
		}
		findings = append(findings, ruleFindings...)
	}

	if !opts.NoInlineConfig {
		findings = FilterDirectives(findings, d)
	}
	return findings, nil
}

// runRule invokes one check function, snapshotting and validating each
// reported diagnostic. Panics inside the check are converted to errors.
func runRule(d *doc.Document, r rule.Rule, options map[string]any) (findings []Finding, err error) {
	params := rule.Params{
		Name:        d.Name,
		Lines:       d.Lines,
		Tokens:      d.Tokens,
		FrontMatter: d.FrontMatter,
		Config:      options,
	}

	var invalid error
	report := func(diag rule.Diagnostic) {
		if invalid != nil {
			return
		}
		snapshot := diag.Clone()
		if vErr := validateDiagnostic(snapshot, d); vErr != nil {
			invalid = vErr
			return
		}
		findings = append(findings, Finding{Rule: r, Diagnostic: snapshot})
	}

	defer func() {
		if rec := recover(); rec != nil {
			findings = nil
			err = fmt.Errorf("panic: %v", rec)
		}
	}()

	if err := r.Function(params, report); err != nil {
		return nil, err
	}
	if invalid != nil {
		return nil, invalid
	}
	return findings, nil
}

// syntheticFinding builds the lenient-mode replacement diagnostic for a
// failed rule.
func syntheticFinding(r rule.Rule, err error) Finding {
	return Finding{
		Rule: r,
		Diagnostic: rule.Diagnostic{
			LineNumber: 1,
			Detail:     "This rule threw an exception: " + err.Error(),
		},
	}
}

// Fixes extracts the normalized fix descriptions carried by findings, in
// order.
func Fixes(findings []Finding) []fix.Info {
	var infos []fix.Info
	for _, f := range findings {
		if info, ok := f.Diagnostic.Fix(); ok {
			infos = append(infos, info)
		}
	}
	return infos
}
