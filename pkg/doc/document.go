// Package doc defines the immutable document model consumed by the lint
// engine: raw text, split lines, the detected line ending, the token stream
// produced by an external parser, and the front matter range.
package doc

import "github.com/yaklabco/marklint/pkg/textscan"

// TokenKind classifies a block-level token from the external parser.
type TokenKind uint8

const (
	KindParagraph TokenKind = iota
	KindHeading
	KindBlockquote
	KindList
	KindFencedCode
	KindIndentedCode
	KindHTMLBlock
	KindThematicBreak
)

// Token is one block-level region of the document, addressed by 1-based
// inclusive line numbers.
type Token struct {
	Kind TokenKind

	// StartLine is the first line of the block, including any opening fence.
	StartLine int

	// EndLine is the last line of the block, including any closing fence.
	EndLine int

	// Info carries the info string for fenced code blocks, empty otherwise.
	Info string
}

// LineRange is a 1-based inclusive range of lines. The zero value means
// "no range".
type LineRange struct {
	Start int
	End   int
}

// Empty reports whether the range is unset.
func (r LineRange) Empty() bool {
	return r.Start == 0
}

// Contains reports whether line falls within the range.
func (r LineRange) Contains(line int) bool {
	return !r.Empty() && line >= r.Start && line <= r.End
}

// Document is an immutable view of one input for the duration of an
// analysis pass.
type Document struct {
	// Name identifies the input (file path or string key).
	Name string

	// Content is the raw text.
	Content string

	// Lines is Content split on all three line-ending styles.
	Lines []string

	// LineEnding is the dominant line ending detected in Content.
	LineEnding string

	// Tokens is the block token stream from the external parser.
	Tokens []Token

	// FrontMatter is the front matter line range, if any.
	FrontMatter LineRange
}

// New builds a Document from content and an externally supplied token
// stream. The front matter range is detected from the leading lines; callers
// that already know the range can set it with NewWithFrontMatter.
func New(name, content string, tokens []Token) *Document {
	d := NewWithFrontMatter(name, content, tokens, LineRange{})
	d.FrontMatter = DetectFrontMatter(d.Lines)
	return d
}

// NewWithFrontMatter builds a Document with an explicit front matter range.
func NewWithFrontMatter(name, content string, tokens []Token, frontMatter LineRange) *Document {
	return &Document{
		Name:        name,
		Content:     content,
		Lines:       textscan.SplitLines(content),
		LineEnding:  textscan.PreferredLineEnding(content),
		Tokens:      tokens,
		FrontMatter: frontMatter,
	}
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// Line returns the content of the 1-based line number, or "" when out of
// range.
func (d *Document) Line(n int) string {
	if n < 1 || n > len(d.Lines) {
		return ""
	}
	return d.Lines[n-1]
}

// InCode reports whether line falls inside a fenced or indented code block.
func (d *Document) InCode(line int) bool {
	for _, tok := range d.Tokens {
		if tok.Kind != KindFencedCode && tok.Kind != KindIndentedCode {
			continue
		}
		if line >= tok.StartLine && line <= tok.EndLine {
			return true
		}
	}
	return false
}
