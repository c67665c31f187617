package textscan

import "strings"

// IsBlankLine reports whether line is blank for linting purposes: empty,
// all whitespace, or consisting solely of blockquote markers and blanked
// HTML comment content.
func IsBlankLine(line string) bool {
	if strings.TrimSpace(line) == "" {
		return true
	}

	stripped := stripCommentSpans(line)
	stripped = strings.ReplaceAll(stripped, ">", "")
	stripped = strings.Map(func(r rune) rune {
		if r == rune(commentPlaceholder) {
			return -1
		}
		return r
	}, stripped)
	return strings.TrimSpace(stripped) == ""
}

// stripCommentSpans removes complete HTML comments from line, a trailing
// unterminated comment opening, and a leading comment close left over from a
// comment spanning earlier lines.
func stripCommentSpans(line string) string {
	for {
		begin := strings.Index(line, htmlCommentBegin)
		if begin == -1 {
			break
		}
		end := strings.Index(line[begin:], htmlCommentEnd)
		if end == -1 {
			// Comment continues on a later line.
			line = line[:begin]
			break
		}
		line = line[:begin] + line[begin+end+len(htmlCommentEnd):]
	}

	// A close with no matching open means the line starts inside a comment.
	if end := strings.Index(line, htmlCommentEnd); end != -1 {
		line = line[end+len(htmlCommentEnd):]
	}
	return line
}
