// Package rules holds the built-in rule pack. Each rule is a self-contained
// check over document lines or tokens; Builtin returns them in registration
// order.
package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/marklint/pkg/doc"
	"github.com/yaklabco/marklint/pkg/textscan"
)

// ruleInfo returns the documentation link for a rule identifier.
func ruleInfo(id string) string {
	return fmt.Sprintf("https://github.com/yaklabco/marklint/blob/main/docs/rules/%s.md",
		strings.ToLower(id))
}

// lineInCode reports whether a 1-based line falls inside a fenced or
// indented code block.
func lineInCode(tokens []doc.Token, line int) bool {
	for _, tok := range tokens {
		if tok.Kind != doc.KindFencedCode && tok.Kind != doc.KindIndentedCode {
			continue
		}
		if line >= tok.StartLine && line <= tok.EndLine {
			return true
		}
	}
	return false
}

// codeSpanRanges returns the 1-based (column, length) extents of inline
// code spans on a single line, ticks included.
func codeSpanRanges(line string) [][2]int {
	var ranges [][2]int
	for span := range textscan.CodeSpans(line) {
		length := span.TickCount*2 + len(span.Content)
		ranges = append(ranges, [2]int{span.StartColumn - span.TickCount, length})
	}
	return ranges
}

// inRanges reports whether the 1-based columns [col, col+length) overlap
// any of the given extents.
func inRanges(ranges [][2]int, col, length int) bool {
	for _, r := range ranges {
		if col < r[0]+r[1] && r[0] < col+length {
			return true
		}
	}
	return false
}
