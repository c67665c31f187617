package rules

import (
	"fmt"
	"regexp"

	"github.com/yaklabco/marklint/pkg/fix"
	"github.com/yaklabco/marklint/pkg/rule"
)

var (
	// reversedLinkRe matches (text)[destination], the swapped form of a
	// markup link. A leading caret in the bracket part is a footnote, not
	// a destination.
	reversedLinkRe = regexp.MustCompile(`\(([^()]*)\)\[([^\]^][^\]]*)\]`)

	// bareURLRe matches an http(s) URL not already delimited.
	bareURLRe = regexp.MustCompile(`https?://[^\s<>\[\]()"']+`)
)

// NoReversedLinks flags (text)[destination] and fixes it to
// [text](destination).
func NoReversedLinks() rule.Rule {
	return rule.Rule{
		Names:       []string{"ML011", "no-reversed-links"},
		Description: "Reversed link syntax",
		Information: ruleInfo("ML011"),
		Tags:        []string{"links"},
		Function: func(params rule.Params, report rule.ReportFunc) error {
			for i, line := range params.Lines {
				n := i + 1
				if lineInCode(params.Tokens, n) || params.FrontMatter.Contains(n) {
					continue
				}
				spans := codeSpanRanges(line)

				for _, m := range reversedLinkRe.FindAllStringSubmatchIndex(line, -1) {
					col, length := m[0]+1, m[1]-m[0]
					if inRanges(spans, col, length) {
						continue
					}
					text := line[m[2]:m[3]]
					dest := line[m[4]:m[5]]
					report(rule.Diagnostic{
						LineNumber: n,
						Context:    line[m[0]:m[1]],
						Range:      []int{col, length},
						FixInfo: &fix.Info{
							EditColumn:  col,
							DeleteCount: length,
							InsertText:  fmt.Sprintf("[%s](%s)", text, dest),
						},
					})
				}
			}
			return nil
		},
	}
}

// delimitsURL reports whether the byte before a URL marks it as already
// delimited: an autolink bracket, link syntax, or a quote inside inline
// HTML.
func delimitsURL(b byte) bool {
	return b == '<' || b == '(' || b == '[' || b == '"' || b == '\''
}

// NoBareURLs flags URLs pasted without angle brackets or link syntax and
// fixes them by wrapping in angle brackets.
func NoBareURLs() rule.Rule {
	return rule.Rule{
		Names:       []string{"ML034", "no-bare-urls"},
		Description: "Bare URL used",
		Information: ruleInfo("ML034"),
		Tags:        []string{"links", "url"},
		Function: func(params rule.Params, report rule.ReportFunc) error {
			for i, line := range params.Lines {
				n := i + 1
				if lineInCode(params.Tokens, n) || params.FrontMatter.Contains(n) {
					continue
				}
				spans := codeSpanRanges(line)

				for _, m := range bareURLRe.FindAllStringIndex(line, -1) {
					col, length := m[0]+1, m[1]-m[0]
					if inRanges(spans, col, length) {
						continue
					}
					if m[0] > 0 && delimitsURL(line[m[0]-1]) {
						continue
					}
					url := line[m[0]:m[1]]
					report(rule.Diagnostic{
						LineNumber: n,
						Context:    url,
						Range:      []int{col, length},
						FixInfo: &fix.Info{
							EditColumn:  col,
							DeleteCount: length,
							InsertText:  "<" + url + ">",
						},
					})
				}
			}
			return nil
		},
	}
}
