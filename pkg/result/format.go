package result

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yaklabco/marklint/pkg/fix"
)

// Version-specific JSON payloads. V0 serializes via Summary directly.

type entryV1 struct {
	LineNumber      int    `json:"lineNumber"`
	RuleName        string `json:"ruleName"`
	RuleAlias       string `json:"ruleAlias"`
	RuleDescription string `json:"ruleDescription"`
	RuleInformation string `json:"ruleInformation,omitempty"`
	ErrorDetail     string `json:"errorDetail,omitempty"`
	ErrorContext    string `json:"errorContext,omitempty"`
	ErrorRange      []int  `json:"errorRange,omitempty"`
}

type entryV2 struct {
	LineNumber      int      `json:"lineNumber"`
	RuleNames       []string `json:"ruleNames"`
	RuleDescription string   `json:"ruleDescription"`
	RuleInformation string   `json:"ruleInformation,omitempty"`
	ErrorDetail     string   `json:"errorDetail,omitempty"`
	ErrorContext    string   `json:"errorContext,omitempty"`
	ErrorRange      []int    `json:"errorRange,omitempty"`
}

type entryV3 struct {
	entryV2
	FixInfo *fix.Info `json:"fixInfo,omitempty"`
}

// MarshalJSON renders the whole result set as one object keyed by input
// identifier, with the version's payload shape as values.
func (r *Results) MarshalJSON() ([]byte, error) {
	switch r.version {
	case V0:
		out := make(map[string]map[string][]int, len(r.inputs))
		for _, input := range r.inputs {
			out[input] = r.Summary(input)
		}
		return json.Marshal(out)
	case V1:
		out := make(map[string][]entryV1, len(r.inputs))
		for _, input := range r.inputs {
			entries := make([]entryV1, 0, len(r.entries[input]))
			for _, e := range r.entries[input] {
				entries = append(entries, entryV1{
					LineNumber:      e.LineNumber,
					RuleName:        e.RuleName,
					RuleAlias:       e.RuleAlias,
					RuleDescription: e.RuleDescription,
					RuleInformation: e.RuleInformation,
					ErrorDetail:     e.ErrorDetail,
					ErrorContext:    e.ErrorContext,
					ErrorRange:      e.ErrorRange,
				})
			}
			out[input] = entries
		}
		return json.Marshal(out)
	case V2:
		out := make(map[string][]entryV2, len(r.inputs))
		for _, input := range r.inputs {
			entries := make([]entryV2, 0, len(r.entries[input]))
			for _, e := range r.entries[input] {
				entries = append(entries, v2Entry(e))
			}
			out[input] = entries
		}
		return json.Marshal(out)
	default:
		out := make(map[string][]entryV3, len(r.inputs))
		for _, input := range r.inputs {
			entries := make([]entryV3, 0, len(r.entries[input]))
			for _, e := range r.entries[input] {
				entries = append(entries, entryV3{
					entryV2: v2Entry(e),
					FixInfo: e.FixInfo,
				})
			}
			out[input] = entries
		}
		return json.Marshal(out)
	}
}

func v2Entry(e Entry) entryV2 {
	return entryV2{
		LineNumber:      e.LineNumber,
		RuleNames:       e.RuleNames,
		RuleDescription: e.RuleDescription,
		RuleInformation: e.RuleInformation,
		ErrorDetail:     e.ErrorDetail,
		ErrorContext:    e.ErrorContext,
		ErrorRange:      e.ErrorRange,
	}
}

// Format renders the result set as one line per finding:
//
//	<id>: <lineNumber>: <names> <description>[ [<detail>]][ [Context: "<context>"]]
//
// Names are joined by '/'; useAlias selects a rule's alias over its
// canonical name when it carries only the single name/alias pair shape.
// Deprecated rules are marked after their description. Lines are joined by
// newline with no trailing newline.
func (r *Results) Format(useAlias bool) string {
	var lines []string
	for _, input := range r.inputs {
		for _, e := range r.entries[input] {
			lines = append(lines, formatEntry(input, e, r.version, useAlias))
		}
	}
	return strings.Join(lines, "\n")
}

func formatEntry(input string, e Entry, version Version, useAlias bool) string {
	names := strings.Join(e.RuleNames, "/")
	if version <= V1 {
		names = e.RuleName
		if useAlias {
			names = e.RuleAlias
		}
	}

	description := e.RuleDescription
	if e.RuleDeprecated {
		description += " (deprecated)"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d: %s %s", input, e.LineNumber, names, description)
	if e.ErrorDetail != "" {
		fmt.Fprintf(&sb, " [%s]", e.ErrorDetail)
	}
	if e.ErrorContext != "" {
		fmt.Fprintf(&sb, " [Context: %q]", e.ErrorContext)
	}
	return sb.String()
}
