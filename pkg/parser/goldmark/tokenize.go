// Package goldmark adapts the goldmark parser into the block token stream
// the lint engine consumes. Tokens address 1-based inclusive line ranges;
// fenced code tokens are widened to include their fence lines so code
// detection covers the fences themselves.
package goldmark

import (
	"regexp"
	"slices"
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/marklint/pkg/doc"
	"github.com/yaklabco/marklint/pkg/textscan"
)

// Flavor identifies the markup flavor the tokenizer parses.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

var (
	// closingFenceRe matches a closing code fence line.
	closingFenceRe = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})[ \t]*$")

	// thematicBreakRe matches a thematic break line.
	thematicBreakRe = regexp.MustCompile(`^ {0,3}([-_*])[ \t]*(?:[-_*][ \t]*){2,}$`)
)

// Tokenizer turns raw markup into block tokens.
type Tokenizer struct {
	flavor string
	md     goldmark.Markdown
}

// New creates a tokenizer for the given flavor. Unknown flavors fall back
// to CommonMark.
func New(flavor string) *Tokenizer {
	if flavor != FlavorGFM {
		flavor = FlavorCommonMark
	}
	var opts []goldmark.Option
	if flavor == FlavorGFM {
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	}
	return &Tokenizer{flavor: flavor, md: goldmark.New(opts...)}
}

// Flavor returns the configured flavor.
func (t *Tokenizer) Flavor() string {
	return t.flavor
}

// Parse builds a Document for one input: lines, line ending, front matter
// and the token stream. Tokens falling entirely inside front matter are
// dropped; the parser sees those lines as content, the engine must not.
func (t *Tokenizer) Parse(name string, content []byte) *doc.Document {
	lines := textscan.SplitLines(string(content))
	frontMatter := doc.DetectFrontMatter(lines)

	tokens := t.Tokenize(content)
	if !frontMatter.Empty() {
		tokens = slices.DeleteFunc(tokens, func(tok doc.Token) bool {
			return tok.EndLine <= frontMatter.End
		})
	}

	return doc.NewWithFrontMatter(name, string(content), tokens, frontMatter)
}

// Tokenize parses content and returns its block tokens ordered by start
// line.
func (t *Tokenizer) Tokenize(content []byte) []doc.Token {
	root := t.md.Parser().Parse(text.NewReader(content))
	idx := newLineIndex(content)
	lines := textscan.SplitLines(string(content))

	var tokens []doc.Token
	var visit func(n ast.Node)
	visit = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if tok, ok := t.token(c, idx, lines, content); ok {
				tokens = append(tokens, tok)
			}
			switch c.Kind() {
			case ast.KindFencedCodeBlock, ast.KindCodeBlock, ast.KindHTMLBlock:
			default:
				visit(c)
			}
		}
	}
	visit(root)

	resolveThematicBreaks(tokens, lines)

	slices.SortStableFunc(tokens, func(a, z doc.Token) int {
		return a.StartLine - z.StartLine
	})
	return tokens
}

// token maps one AST node to a block token. Nodes that only structure the
// tree, list items for example, produce no token of their own.
func (t *Tokenizer) token(n ast.Node, idx *lineIndex, lines []string, content []byte) (doc.Token, bool) {
	switch n.Kind() {
	case ast.KindParagraph, ast.KindTextBlock:
		start, end := nodeRange(n, idx)
		return doc.Token{Kind: doc.KindParagraph, StartLine: start, EndLine: end}, start != 0
	case ast.KindHeading:
		return headingToken(n, idx, lines)
	case ast.KindBlockquote:
		start, end := nodeRange(n, idx)
		return doc.Token{Kind: doc.KindBlockquote, StartLine: start, EndLine: end}, start != 0
	case ast.KindList:
		start, end := nodeRange(n, idx)
		return doc.Token{Kind: doc.KindList, StartLine: start, EndLine: end}, start != 0
	case ast.KindFencedCodeBlock:
		return fencedToken(n.(*ast.FencedCodeBlock), idx, lines, content)
	case ast.KindCodeBlock:
		start, end := nodeRange(n, idx)
		return doc.Token{Kind: doc.KindIndentedCode, StartLine: start, EndLine: end}, start != 0
	case ast.KindHTMLBlock:
		return htmlToken(n.(*ast.HTMLBlock), idx)
	case ast.KindThematicBreak:
		// Position is resolved later from the surrounding tokens; the
		// node itself carries no segment.
		return doc.Token{Kind: doc.KindThematicBreak}, true
	default:
		return doc.Token{}, false
	}
}

// headingToken widens a setext heading to include its underline.
func headingToken(n ast.Node, idx *lineIndex, lines []string) (doc.Token, bool) {
	start, end := nodeRange(n, idx)
	if start == 0 {
		return doc.Token{}, false
	}
	if !isATXHeading(lines, start) && end < len(lines) {
		end++
	}
	return doc.Token{Kind: doc.KindHeading, StartLine: start, EndLine: end}, true
}

func isATXHeading(lines []string, start int) bool {
	line := lines[start-1]
	i := 0
	for i < len(line) && line[i] == ' ' {
		i++
	}
	return i < len(line) && line[i] == '#'
}

// fencedToken widens a fenced code block to its fence lines. The body
// segments exclude both fences; an unterminated block keeps its last body
// line as the end.
func fencedToken(fc *ast.FencedCodeBlock, idx *lineIndex, lines []string, content []byte) (doc.Token, bool) {
	bodyStart, bodyEnd := nodeRange(fc, idx)

	var start int
	switch {
	case bodyStart != 0:
		start = bodyStart - 1
	case fc.Info != nil:
		start = idx.lineOf(fc.Info.Segment.Start)
	default:
		return doc.Token{}, false
	}

	end := bodyEnd
	if end == 0 {
		end = start
	}
	if end < len(lines) && closingFenceRe.MatchString(lines[end]) {
		end++
	}

	return doc.Token{
		Kind:      doc.KindFencedCode,
		StartLine: start,
		EndLine:   end,
		Info:      string(fc.Language(content)),
	}, true
}

func htmlToken(h *ast.HTMLBlock, idx *lineIndex) (doc.Token, bool) {
	start, end := nodeRange(h, idx)
	if start == 0 {
		return doc.Token{}, false
	}
	if h.HasClosure() {
		end = idx.lineOf(h.ClosureLine.Start)
	}
	return doc.Token{Kind: doc.KindHTMLBlock, StartLine: start, EndLine: end}, true
}

// resolveThematicBreaks assigns a line to each break token by scanning the
// gap between its neighbors for the break pattern.
func resolveThematicBreaks(tokens []doc.Token, lines []string) {
	prevEnd := 0
	for i := range tokens {
		if tokens[i].Kind != doc.KindThematicBreak {
			if tokens[i].EndLine > prevEnd {
				prevEnd = tokens[i].EndLine
			}
			continue
		}

		nextStart := len(lines) + 1
		for j := i + 1; j < len(tokens); j++ {
			if tokens[j].StartLine != 0 {
				nextStart = tokens[j].StartLine
				break
			}
		}

		for n := prevEnd + 1; n < nextStart; n++ {
			if thematicBreakRe.MatchString(lines[n-1]) {
				tokens[i].StartLine = n
				tokens[i].EndLine = n
				prevEnd = n
				break
			}
		}
	}
}

// nodeRange computes a node's 1-based inclusive line range from its own
// segments, or the union of its children's ranges for container nodes.
func nodeRange(n ast.Node, idx *lineIndex) (int, int) {
	if l := n.Lines(); l != nil && l.Len() > 0 {
		first := l.At(0)
		last := l.At(l.Len() - 1)
		stop := last.Stop - 1
		if stop < last.Start {
			stop = last.Start
		}
		return idx.lineOf(first.Start), idx.lineOf(stop)
	}

	var start, end int
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		cs, ce := nodeRange(c, idx)
		if cs == 0 {
			continue
		}
		if start == 0 || cs < start {
			start = cs
		}
		if ce > end {
			end = ce
		}
	}
	return start, end
}

// lineIndex maps byte offsets to 1-based line numbers.
type lineIndex struct {
	starts []int
}

func newLineIndex(content []byte) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		} else if content[i] == '\r' && (i+1 >= len(content) || content[i+1] != '\n') {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{starts: starts}
}

func (ix *lineIndex) lineOf(offset int) int {
	return sort.Search(len(ix.starts), func(i int) bool {
		return ix.starts[i] > offset
	})
}
