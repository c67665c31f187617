// Package result assembles filtered findings into versioned result shapes.
// Four versions share one stable ordering by line number; each has a fixed
// JSON form and a common human-readable string rendering.
package result

import (
	"slices"

	"github.com/yaklabco/marklint/pkg/fix"
	"github.com/yaklabco/marklint/pkg/lint"
)

// Version selects one of the four result shapes.
type Version int

const (
	// V0 maps each rule's canonical name to a duplicate-free list of line
	// numbers.
	V0 Version = iota

	// V1 lists entries with a single name/alias pair per rule.
	V1

	// V2 lists entries carrying the rule's full name list.
	V2

	// V3 is V2 plus the fix description when a finding carries one.
	V3
)

// Entry is one assembled finding. All fields are populated regardless of
// version; serialization prunes to the version's shape.
type Entry struct {
	LineNumber      int
	RuleName        string
	RuleAlias       string
	RuleNames       []string
	RuleDescription string
	RuleInformation string
	RuleDeprecated  bool
	ErrorDetail     string
	ErrorContext    string
	ErrorRange      []int
	FixInfo         *fix.Info
}

// Builder accumulates per-input entries at one version. Inputs keep the
// order they were added in.
type Builder struct {
	version Version
	inputs  []string
	entries map[string][]Entry
}

// NewBuilder returns an empty Builder for the given version.
func NewBuilder(version Version) *Builder {
	return &Builder{
		version: version,
		entries: map[string][]Entry{},
	}
}

// Add assembles one input's findings. Entries are stable-sorted by line
// number only, so same-line findings keep their emission order.
func (b *Builder) Add(input string, findings []lint.Finding) {
	entries := make([]Entry, 0, len(findings))
	for _, f := range findings {
		entries = append(entries, newEntry(f))
	}
	slices.SortStableFunc(entries, func(a, z Entry) int {
		return a.LineNumber - z.LineNumber
	})

	if _, seen := b.entries[input]; !seen {
		b.inputs = append(b.inputs, input)
	}
	b.entries[input] = append(b.entries[input], entries...)
}

// Results returns the assembled results. The Builder may keep accumulating
// afterwards; the returned value snapshots the input list.
func (b *Builder) Results() *Results {
	return &Results{
		version: b.version,
		inputs:  slices.Clone(b.inputs),
		entries: b.entries,
	}
}

func newEntry(f lint.Finding) Entry {
	e := Entry{
		LineNumber:      f.Diagnostic.LineNumber,
		RuleName:        f.Rule.Name(),
		RuleAlias:       f.Rule.Alias(),
		RuleNames:       slices.Clone(f.Rule.Names),
		RuleDescription: f.Rule.Description,
		RuleInformation: f.Rule.Information,
		RuleDeprecated:  f.Rule.Deprecated,
		ErrorDetail:     f.Diagnostic.Detail,
		ErrorContext:    f.Diagnostic.Context,
		ErrorRange:      slices.Clone(f.Diagnostic.Range),
	}
	if info, ok := f.Diagnostic.Fix(); ok {
		e.FixInfo = &info
	}
	return e
}

// Results is the assembled, ordered result set for one analysis run.
type Results struct {
	version Version
	inputs  []string
	entries map[string][]Entry
}

// Version returns the shape the results were assembled at.
func (r *Results) Version() Version {
	return r.version
}

// Inputs returns the input identifiers in addition order.
func (r *Results) Inputs() []string {
	return slices.Clone(r.inputs)
}

// Entries returns one input's ordered entries.
func (r *Results) Entries(input string) []Entry {
	return r.entries[input]
}

// Summary collapses one input's entries to canonical rule name mapped to a
// duplicate-free, ordered list of line numbers. This is the payload shape of
// V0.
func (r *Results) Summary(input string) map[string][]int {
	out := map[string][]int{}
	for _, e := range r.entries[input] {
		if slices.Contains(out[e.RuleName], e.LineNumber) {
			continue
		}
		out[e.RuleName] = append(out[e.RuleName], e.LineNumber)
	}
	return out
}
