package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/marklint/pkg/fix"
	"github.com/yaklabco/marklint/pkg/rule"
)

// NoTrailingSpaces flags lines ending in whitespace. The br_spaces option
// tolerates a run of exactly that many spaces as a hard line break; values
// below 2 disable the exemption because fewer spaces do not form a break.
func NoTrailingSpaces() rule.Rule {
	return rule.Rule{
		Names:       []string{"ML009", "no-trailing-spaces"},
		Description: "Trailing spaces",
		Information: ruleInfo("ML009"),
		Tags:        []string{"whitespace"},
		Function: func(params rule.Params, report rule.ReportFunc) error {
			brSpaces := params.OptionInt("br_spaces", 2)
			if brSpaces < 2 {
				brSpaces = 0
			}

			for i, line := range params.Lines {
				trimmed := strings.TrimRight(line, " \t")
				if trimmed == line {
					continue
				}
				count := len(line) - len(trimmed)
				// Only a run of actual spaces forms a hard break.
				if brSpaces != 0 && line[len(trimmed):] == strings.Repeat(" ", brSpaces) {
					continue
				}
				report(rule.Diagnostic{
					LineNumber: i + 1,
					Detail:     fmt.Sprintf("Expected: 0 or %d; Actual: %d", brSpaces, count),
					Range:      []int{len(trimmed) + 1, count},
					FixInfo: &fix.Info{
						EditColumn:  len(trimmed) + 1,
						DeleteCount: count,
					},
				})
			}
			return nil
		},
	}
}

// NoHardTabs flags tab characters. Each tab gets its own finding so the fix
// engine can replace them right to left without shifting later columns.
func NoHardTabs() rule.Rule {
	return rule.Rule{
		Names:       []string{"ML010", "no-hard-tabs"},
		Description: "Hard tabs",
		Information: ruleInfo("ML010"),
		Tags:        []string{"whitespace", "hard_tab"},
		Function: func(params rule.Params, report rule.ReportFunc) error {
			spacesPerTab := params.OptionInt("spaces_per_tab", 1)
			if spacesPerTab < 0 {
				spacesPerTab = 1
			}
			includeCode := params.OptionBool("code_blocks", true)

			for i, line := range params.Lines {
				if !includeCode && lineInCode(params.Tokens, i+1) {
					continue
				}
				for col, ch := range []byte(line) {
					if ch != '\t' {
						continue
					}
					report(rule.Diagnostic{
						LineNumber: i + 1,
						Detail:     fmt.Sprintf("Column: %d", col+1),
						Range:      []int{col + 1, 1},
						FixInfo: &fix.Info{
							EditColumn:  col + 1,
							DeleteCount: 1,
							InsertText:  strings.Repeat(" ", spacesPerTab),
						},
					})
				}
			}
			return nil
		},
	}
}
