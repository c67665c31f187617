package lint

import (
	"regexp"
	"strings"

	"github.com/yaklabco/marklint/pkg/doc"
)

// directiveRe matches an inline directive comment anywhere in a line. The
// longer verbs come first so "disable-next-line" is not read as "disable".
var directiveRe = regexp.MustCompile(
	`<!--\s*marklint-(disable-next-line|disable-line|disable|enable)((?:\s[^>]*)?)-->`)

// suppression is the set of rule identifiers suppressed at one line.
// Identifiers are stored lowercased.
type suppression struct {
	// all suppresses every rule, subject to exceptions.
	all bool

	// disabled holds individually disabled identifiers.
	disabled map[string]bool

	// exceptions holds identifiers re-enabled while all is set.
	exceptions map[string]bool
}

func (s suppression) matches(identifiers []string) bool {
	for _, id := range identifiers {
		if s.disabled[strings.ToLower(id)] {
			return true
		}
	}
	if !s.all {
		return false
	}
	for _, id := range identifiers {
		if s.exceptions[strings.ToLower(id)] {
			return false
		}
	}
	return true
}

// FilterDirectives drops findings suppressed by inline directives at their
// reported line. A bare disable suppresses all rules until a matching
// enable or end of document; directives inside front matter or code blocks
// are inert. It runs over complete findings for the whole document because
// directive scope can begin before any given finding's line.
func FilterDirectives(findings []Finding, d *doc.Document) []Finding {
	perLine := suppressionsByLine(d)

	kept := findings[:0]
	for _, f := range findings {
		line := f.Diagnostic.LineNumber
		if line >= 1 && line < len(perLine) && perLine[line].matches(identifiers(f.Rule.Names, f.Rule.Tags)) {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

// suppressionsByLine computes the effective suppression set for every line.
// Index 0 is unused; the slice has LineCount()+1 entries.
func suppressionsByLine(d *doc.Document) []suppression {
	perLine := make([]suppression, d.LineCount()+1)

	current := suppression{
		disabled:   map[string]bool{},
		exceptions: map[string]bool{},
	}
	lineOnly := map[int][]string{}     // line -> identifiers ("" means all)
	nextLineOnly := map[int][]string{} // same, targeting the following line

	for n := 1; n <= d.LineCount(); n++ {
		if d.FrontMatter.Contains(n) || d.InCode(n) {
			perLine[n] = current
			continue
		}

		for _, m := range directiveRe.FindAllStringSubmatch(d.Line(n), -1) {
			verb := m[1]
			names := strings.Fields(m[2])

			switch verb {
			case "disable":
				current = applyDisable(current, names)
			case "enable":
				current = applyEnable(current, names)
			case "disable-line":
				lineOnly[n] = append(lineOnly[n], directiveIdents(names)...)
			case "disable-next-line":
				nextLineOnly[n+1] = append(nextLineOnly[n+1], directiveIdents(names)...)
			}
		}

		perLine[n] = current
	}

	for n := 1; n <= d.LineCount(); n++ {
		ids := append(lineOnly[n], nextLineOnly[n]...)
		if len(ids) == 0 {
			continue
		}
		perLine[n] = addLineSuppressions(perLine[n], ids)
	}

	return perLine
}

// directiveIdents normalizes a directive's identifier list; an empty list
// becomes the bare-directive marker.
func directiveIdents(names []string) []string {
	if len(names) == 0 {
		return []string{""}
	}
	return names
}

func applyDisable(s suppression, names []string) suppression {
	out := cloneSuppression(s)
	if len(names) == 0 {
		out.all = true
		out.disabled = map[string]bool{}
		out.exceptions = map[string]bool{}
		return out
	}
	for _, name := range names {
		lower := strings.ToLower(name)
		out.disabled[lower] = true
		delete(out.exceptions, lower)
	}
	return out
}

func applyEnable(s suppression, names []string) suppression {
	out := cloneSuppression(s)
	if len(names) == 0 {
		out.all = false
		out.disabled = map[string]bool{}
		out.exceptions = map[string]bool{}
		return out
	}
	for _, name := range names {
		lower := strings.ToLower(name)
		delete(out.disabled, lower)
		if out.all {
			out.exceptions[lower] = true
		}
	}
	return out
}

func addLineSuppressions(s suppression, ids []string) suppression {
	out := cloneSuppression(s)
	for _, id := range ids {
		if id == "" {
			out.all = true
			out.exceptions = map[string]bool{}
			continue
		}
		lower := strings.ToLower(id)
		out.disabled[lower] = true
		delete(out.exceptions, lower)
	}
	return out
}

// cloneSuppression copies s so stored per-line snapshots stay immutable.
func cloneSuppression(s suppression) suppression {
	out := suppression{
		all:        s.all,
		disabled:   make(map[string]bool, len(s.disabled)),
		exceptions: make(map[string]bool, len(s.exceptions)),
	}
	for k := range s.disabled {
		out.disabled[k] = true
	}
	for k := range s.exceptions {
		out.exceptions[k] = true
	}
	return out
}

// identifiers collects a rule's names and tags for suppression matching.
func identifiers(names, tags []string) []string {
	out := make([]string, 0, len(names)+len(tags))
	out = append(out, names...)
	out = append(out, tags...)
	return out
}
