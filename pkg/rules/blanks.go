package rules

import (
	"fmt"

	"github.com/yaklabco/marklint/pkg/fix"
	"github.com/yaklabco/marklint/pkg/rule"
	"github.com/yaklabco/marklint/pkg/textscan"
)

// NoMultipleBlanks flags consecutive blank lines beyond the configured
// maximum. Blank lines inside code blocks are the code's business and are
// ignored.
func NoMultipleBlanks() rule.Rule {
	return rule.Rule{
		Names:       []string{"ML012", "no-multiple-blanks"},
		Description: "Multiple consecutive blank lines",
		Information: ruleInfo("ML012"),
		Tags:        []string{"whitespace", "blank_lines"},
		Function: func(params rule.Params, report rule.ReportFunc) error {
			maximum := params.OptionInt("maximum", 1)
			if maximum < 1 {
				maximum = 1
			}

			run := 0
			for i, line := range params.Lines {
				n := i + 1
				if lineInCode(params.Tokens, n) || !textscan.IsBlankLine(line) {
					run = 0
					continue
				}
				run++
				if run <= maximum {
					continue
				}
				report(rule.Diagnostic{
					LineNumber: n,
					Detail:     fmt.Sprintf("Expected: %d; Actual: %d", maximum, run),
					FixInfo:    &fix.Info{DeleteCount: fix.DeleteLine},
				})
			}
			return nil
		},
	}
}

// SingleTrailingNewline requires the document to end with exactly one
// newline character.
func SingleTrailingNewline() rule.Rule {
	return rule.Rule{
		Names:       []string{"ML047", "single-trailing-newline"},
		Description: "Files should end with a single newline character",
		Information: ruleInfo("ML047"),
		Tags:        []string{"blank_lines"},
		Function: func(params rule.Params, report rule.ReportFunc) error {
			if len(params.Lines) == 0 {
				return nil
			}
			last := len(params.Lines) - 1
			if params.Lines[last] == "" {
				// A trailing separator splits into a final empty line.
				return nil
			}
			report(rule.Diagnostic{
				LineNumber: last + 1,
				FixInfo: &fix.Info{
					EditColumn: len(params.Lines[last]) + 1,
					InsertText: "\n",
				},
			})
			return nil
		},
	}
}
