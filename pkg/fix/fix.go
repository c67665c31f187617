// Package fix implements the deterministic multi-edit fix engine. It applies
// an arbitrary set of line-addressed edits produced independently by many
// rules to the original text exactly once, with a fixed conflict-resolution
// order that makes the result independent of input order.
package fix

import (
	"slices"
	"strings"

	"github.com/yaklabco/marklint/pkg/textscan"
)

// DeleteLine is the sentinel delete count meaning "remove the addressed line
// and one adjoining line separator".
const DeleteLine = -1

// Info describes one text edit attached to a diagnostic.
//
// LineNumber of 0 means "the diagnostic's line"; callers of Apply must
// resolve it first. EditColumn of 0 means column 1. A DeleteCount of
// DeleteLine removes the whole line.
type Info struct {
	LineNumber  int    `json:"lineNumber,omitempty" yaml:"lineNumber,omitempty"`
	EditColumn  int    `json:"editColumn,omitempty" yaml:"editColumn,omitempty"`
	DeleteCount int    `json:"deleteCount,omitempty" yaml:"deleteCount,omitempty"`
	InsertText  string `json:"insertText,omitempty" yaml:"insertText,omitempty"`
}

// Normalize returns info with defaults filled in: the line number falls back
// to diagLine and the edit column to 1.
func (i Info) Normalize(diagLine int) Info {
	if i.LineNumber == 0 {
		i.LineNumber = diagLine
	}
	if i.EditColumn == 0 {
		i.EditColumn = 1
	}
	return i
}

// ApplyFix applies a single normalized edit to one line using 1-based column
// numbering. The second return value is false when the edit deletes the
// whole line. Newlines in the inserted text are rewritten to lineEnding.
func ApplyFix(line string, info Info, lineEnding string) (string, bool) {
	info = info.Normalize(info.LineNumber)
	if info.DeleteCount == DeleteLine {
		return "", false
	}
	if lineEnding == "" {
		lineEnding = "\n"
	}

	editIndex := info.EditColumn - 1
	insert := strings.ReplaceAll(info.InsertText, "\n", lineEnding)
	return line[:editIndex] + insert + line[editIndex+info.DeleteCount:], true
}

// Apply applies every edit to input and returns the corrected text, joined
// with the dominant line ending detected in input. An empty edit set returns
// input unchanged, preserving its original line-ending mix.
func Apply(input string, fixes []Info) string {
	return ApplyWithLineEnding(input, fixes, "")
}

// ApplyWithLineEnding is Apply with an explicit output line ending. An empty
// lineEnding selects the detected one.
func ApplyWithLineEnding(input string, fixes []Info, lineEnding string) string {
	if len(fixes) == 0 {
		return input
	}
	if lineEnding == "" {
		lineEnding = textscan.PreferredLineEnding(input)
	}

	lines := textscan.SplitLines(input)
	deleted := make([]bool, len(lines))

	ordered := make([]Info, len(fixes))
	for i, info := range fixes {
		ordered[i] = info.Normalize(info.LineNumber)
	}
	sortFixes(ordered)

	// Apply bottom-to-top, right-to-left over the original column numbering.
	// lastEditIndex tracks the leftmost column consumed on the current line;
	// an edit whose range was already consumed is discarded, which makes the
	// result order-independent for non-contradictory edit sets.
	lastLineIndex := -1
	lastEditIndex := -1
	for _, info := range ordered {
		lineIndex := info.LineNumber - 1
		if lineIndex < 0 || lineIndex >= len(lines) {
			continue
		}
		editIndex := info.EditColumn - 1

		untouched := lineIndex != lastLineIndex
		rightmost := editIndex + info.DeleteCount
		consumedBoundary := lastEditIndex
		if info.DeleteCount <= 0 {
			// A pure insertion at the consumed column would re-edit it.
			consumedBoundary--
		}

		if untouched || info.DeleteCount == DeleteLine || rightmost <= consumedBoundary {
			line, keep := ApplyFix(lines[lineIndex], info, lineEnding)
			if keep {
				lines[lineIndex] = line
			} else {
				deleted[lineIndex] = true
			}
		}
		lastLineIndex = lineIndex
		lastEditIndex = editIndex
	}

	kept := make([]string, 0, len(lines))
	for i, line := range lines {
		if !deleted[i] {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, lineEnding)
}

// sortFixes orders edits for right-to-left application: descending line
// number, whole-line deletions first within a line, then descending edit
// column, then the larger of (delete count, inserted-text length) first.
func sortFixes(fixes []Info) {
	slices.SortStableFunc(fixes, func(a, b Info) int {
		if a.LineNumber != b.LineNumber {
			return b.LineNumber - a.LineNumber
		}
		aDeletes := a.DeleteCount == DeleteLine
		bDeletes := b.DeleteCount == DeleteLine
		if aDeletes != bDeletes {
			if aDeletes {
				return -1
			}
			return 1
		}
		if a.EditColumn != b.EditColumn {
			return b.EditColumn - a.EditColumn
		}
		return span(b) - span(a)
	})
}

// span is the edit's tie-break weight at an identical column: the larger of
// its delete count and inserted-text length.
func span(i Info) int {
	return max(i.DeleteCount, len(i.InsertText))
}
