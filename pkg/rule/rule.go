// Package rule defines the rule model: rule identity, the capability-limited
// parameters handed to a check function, the raw diagnostics a check
// reports, and the validated rule set.
package rule

import (
	"github.com/yaklabco/marklint/pkg/doc"
	"github.com/yaklabco/marklint/pkg/fix"
)

// Diagnostic is one raw finding reported by a rule. Line and column numbers
// are 1-based. The engine snapshots every diagnostic at the moment it is
// reported, so a check function may reuse the value afterwards.
type Diagnostic struct {
	// LineNumber is the 1-based line the finding refers to. Required.
	LineNumber int

	// Detail is optional free text elaborating on the finding.
	Detail string

	// Context is an optional short excerpt of the offending text.
	Context string

	// Range is an optional (column, length) pair, both 1-based, bounded by
	// the referenced line.
	Range []int

	// FixInfo optionally describes an automatic fix.
	FixInfo *fix.Info
}

// Clone returns a deep copy of the diagnostic. Reported diagnostics are
// cloned before validation so later mutation by the reporting rule cannot
// affect captured values.
func (d Diagnostic) Clone() Diagnostic {
	out := d
	if d.Range != nil {
		out.Range = make([]int, len(d.Range))
		copy(out.Range, d.Range)
	}
	if d.FixInfo != nil {
		info := *d.FixInfo
		out.FixInfo = &info
	}
	return out
}

// Fix returns the diagnostic's normalized fix description, if it has one.
func (d Diagnostic) Fix() (fix.Info, bool) {
	if d.FixInfo == nil {
		return fix.Info{}, false
	}
	return d.FixInfo.Normalize(d.LineNumber), true
}

// ReportFunc is the reporting operation a check function calls for each
// finding.
type ReportFunc func(Diagnostic)

// Params is the read-only context a check function receives for one
// document.
type Params struct {
	// Name identifies the input (file path or string key).
	Name string

	// Lines is the document split into lines.
	Lines []string

	// Tokens is the block token stream from the external parser.
	Tokens []doc.Token

	// FrontMatter is the document's front matter range, if any.
	FrontMatter doc.LineRange

	// Config holds the rule's resolved options, never nil.
	Config map[string]any
}

// CheckFunc inspects one document and reports findings. A returned error is
// a rule fault; whether it aborts the run depends on the engine's mode.
type CheckFunc func(params Params, report ReportFunc) error

// Rule is one named, independent check. Rules are constructed once at set
// build time and immutable thereafter.
type Rule struct {
	// Names holds the canonical name first, then any aliases.
	Names []string

	// Description is a short human-readable summary.
	Description string

	// Information optionally links to documentation for the rule.
	Information string

	// Tags categorize the rule for configuration and suppression.
	Tags []string

	// Deprecated marks retained rules whose use is discouraged; result
	// rendering flags them.
	Deprecated bool

	// Function is the check implementation.
	Function CheckFunc
}

// Name returns the rule's canonical name.
func (r Rule) Name() string {
	if len(r.Names) == 0 {
		return ""
	}
	return r.Names[0]
}

// Alias returns the rule's second name when present, else the canonical
// name.
func (r Rule) Alias() string {
	if len(r.Names) > 1 {
		return r.Names[1]
	}
	return r.Name()
}

// Option helpers mirror the loosely typed options mappings produced by
// config decoding.

// OptionBool returns a boolean option or the default.
func (p Params) OptionBool(key string, def bool) bool {
	if v, ok := p.Config[key].(bool); ok {
		return v
	}
	return def
}

// OptionInt returns an integer option or the default. Float values from
// JSON decoding are truncated.
func (p Params) OptionInt(key string, def int) int {
	switch v := p.Config[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

// OptionString returns a string option or the default.
func (p Params) OptionString(key string, def string) string {
	if v, ok := p.Config[key].(string); ok {
		return v
	}
	return def
}
