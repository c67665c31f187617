package doc

import "strings"

// DetectFrontMatter returns the line range of a leading front matter block,
// or the zero range if the document has none. YAML blocks are delimited by
// "---" lines; TOML blocks by "+++" lines. The opening delimiter must be the
// first line of the document.
func DetectFrontMatter(lines []string) LineRange {
	if len(lines) < 2 {
		return LineRange{}
	}

	var closers []string
	switch strings.TrimRight(lines[0], " \t") {
	case "---":
		closers = []string{"---", "..."}
	case "+++":
		closers = []string{"+++"}
	default:
		return LineRange{}
	}

	for i := 1; i < len(lines); i++ {
		trimmed := strings.TrimRight(lines[i], " \t")
		for _, closer := range closers {
			if trimmed == closer {
				return LineRange{Start: 1, End: i + 1}
			}
		}
	}

	// Unterminated block is not front matter.
	return LineRange{}
}
