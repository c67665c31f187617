package textscan

import "strings"

const (
	htmlCommentBegin = "<!--"
	htmlCommentEnd   = "-->"

	// commentPlaceholder fills blanked comment interiors. Placeholders are
	// character-for-character so column numbers computed by rules stay valid.
	commentPlaceholder = '.'
)

// ClearHTMLComments replaces the interior of every well-formed HTML comment
// in input with placeholder characters of identical length. Line separators
// inside comments are preserved so line and column numbering is unaffected.
// Malformed or unterminated comment-like sequences are left untouched.
func ClearHTMLComments(input string) string {
	var b strings.Builder
	i := 0
	for {
		begin := strings.Index(input[i:], htmlCommentBegin)
		if begin == -1 {
			break
		}
		begin += i

		interiorStart := begin + len(htmlCommentBegin)
		end := strings.Index(input[interiorStart:], htmlCommentEnd)
		if end == -1 {
			break
		}
		end += interiorStart

		interior := input[interiorStart:end]
		if !validCommentInterior(interior) {
			b.WriteString(input[i:interiorStart])
			i = interiorStart
			continue
		}

		b.WriteString(input[i:interiorStart])
		for j := 0; j < len(interior); j++ {
			if interior[j] == '\r' || interior[j] == '\n' {
				b.WriteByte(interior[j])
			} else {
				b.WriteByte(commentPlaceholder)
			}
		}
		i = end
	}
	if i == 0 {
		return input
	}
	b.WriteString(input[i:])
	return b.String()
}

// validCommentInterior reports whether text is a legal HTML comment interior.
// The HTML syntax forbids interiors that start with ">" or "->", end with
// "-", or contain "--".
func validCommentInterior(text string) bool {
	if strings.HasPrefix(text, ">") || strings.HasPrefix(text, "->") {
		return false
	}
	if strings.HasSuffix(text, "-") {
		return false
	}
	return !strings.Contains(text, "--")
}
