// Package textscan provides stateless text utilities shared by rules and the
// lint engine: line splitting, line-ending detection, inline code span
// scanning, HTML comment blanking, and blank-line classification.
package textscan

import "runtime"

// SplitLines splits content on any of the three line-ending styles
// (\r\n, \r, \n). A trailing line ending produces a final empty element,
// so "a\n" yields ["a", ""].
func SplitLines(content string) []string {
	lines := make([]string, 0, 16)
	start := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			lines = append(lines, content[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, content[start:i])
			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	lines = append(lines, content[start:])
	return lines
}

// PreferredLineEnding returns the most frequent line ending in content.
// Ties are broken by a fixed precedence: "\n" over "\r\n" over "\r".
// Content with no line endings yields the platform default.
func PreferredLineEnding(content string) string {
	var cr, lf, crlf int
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			lf++
		case '\r':
			if i+1 < len(content) && content[i+1] == '\n' {
				crlf++
				i++
			} else {
				cr++
			}
		}
	}

	switch {
	case cr == 0 && lf == 0 && crlf == 0:
		return platformLineEnding()
	case lf >= crlf && lf >= cr:
		return "\n"
	case crlf >= cr:
		return "\r\n"
	default:
		return "\r"
	}
}

func platformLineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}
