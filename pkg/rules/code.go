package rules

import (
	"strings"

	"github.com/yaklabco/marklint/pkg/doc"
	"github.com/yaklabco/marklint/pkg/fix"
	"github.com/yaklabco/marklint/pkg/langdetect"
	"github.com/yaklabco/marklint/pkg/rule"
	"github.com/yaklabco/marklint/pkg/textscan"
)

// NoSpaceInCode flags inline code spans with leading or trailing spaces.
// A single space on both sides is the conventional way to embed a span that
// starts or ends with a backtick and is allowed.
func NoSpaceInCode() rule.Rule {
	return rule.Rule{
		Names:       []string{"ML038", "no-space-in-code"},
		Description: "Spaces inside code span elements",
		Information: ruleInfo("ML038"),
		Tags:        []string{"whitespace", "code"},
		Function: func(params rule.Params, report rule.ReportFunc) error {
			for _, span := range singleLineSpans(params) {
				trimmed := strings.Trim(span.Content, " ")
				if span.Content == trimmed {
					continue
				}
				if trimmed != "" && span.Content == " "+trimmed+" " {
					continue
				}
				report(rule.Diagnostic{
					LineNumber: span.StartLine,
					Context:    span.Content,
					Range:      []int{span.StartColumn, len(span.Content)},
					FixInfo: &fix.Info{
						EditColumn:  span.StartColumn,
						DeleteCount: len(span.Content),
						InsertText:  trimmed,
					},
				})
			}
			return nil
		},
	}
}

// singleLineSpans scans each line independently for code spans, skipping
// code blocks. Per-line scanning keeps span columns valid as fix targets;
// spans that cross line boundaries have no single-line edit anyway.
func singleLineSpans(params rule.Params) []textscan.CodeSpan {
	var spans []textscan.CodeSpan
	for i, line := range params.Lines {
		n := i + 1
		if lineInCode(params.Tokens, n) || params.FrontMatter.Contains(n) {
			continue
		}
		for span := range textscan.CodeSpans(line) {
			span.StartLine = n
			spans = append(spans, span)
		}
	}
	return spans
}

// FencedCodeLanguage requires an info string on fenced code blocks. The fix
// appends the language guessed from the block's content to the opening
// fence.
func FencedCodeLanguage() rule.Rule {
	return rule.Rule{
		Names:       []string{"ML040", "fenced-code-language"},
		Description: "Fenced code blocks should have a language specified",
		Information: ruleInfo("ML040"),
		Tags:        []string{"code", "language"},
		Function: func(params rule.Params, report rule.ReportFunc) error {
			for _, tok := range params.Tokens {
				if tok.Kind != doc.KindFencedCode || tok.Info != "" {
					continue
				}
				if tok.StartLine < 1 || tok.StartLine > len(params.Lines) {
					continue
				}

				fenceLine := params.Lines[tok.StartLine-1]
				fenceEnd := fenceRunEnd(fenceLine)
				if fenceEnd == 0 {
					continue
				}

				// Body lines sit between the fences.
				start, end := tok.StartLine, tok.EndLine-1
				if end > len(params.Lines) {
					end = len(params.Lines)
				}
				var body string
				if start < end {
					body = strings.Join(params.Lines[start:end], "\n")
				}

				report(rule.Diagnostic{
					LineNumber: tok.StartLine,
					Context:    fenceLine,
					FixInfo: &fix.Info{
						EditColumn: fenceEnd + 1,
						InsertText: langdetect.Detect([]byte(body)),
					},
				})
			}
			return nil
		},
	}
}

// fenceRunEnd returns the 1-based column of the last fence character on an
// opening fence line, or 0 when the line is not a fence.
func fenceRunEnd(line string) int {
	i := 0
	for i < len(line) && line[i] == ' ' {
		i++
	}
	if i >= len(line) || (line[i] != '`' && line[i] != '~') {
		return 0
	}
	marker := line[i]
	for i < len(line) && line[i] == marker {
		i++
	}
	return i
}
