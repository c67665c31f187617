// Package langdetect guesses the language of a code snippet. It backs the
// fenced-code-language rule's automatic fix: the detected name becomes the
// fence info string. Detection uses go-enry with a small set of fast
// pattern checks in front of the classifier.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fallback is returned when no language can be determined with confidence.
const Fallback = "text"

// classifierCandidates bounds the enry classifier to languages that show up
// in documentation code blocks.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Rust", "Java", "C", "C++", "SQL", "JSON", "YAML",
	"HTML", "CSS", "Dockerfile",
}

// Detect returns a lowercase fence tag for the snippet, or Fallback.
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return Fallback
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return fenceTag(lang)
	}

	if lang := detectByPattern(trimmed); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return fenceTag(lang)
	}

	return Fallback
}

// detectByPattern recognizes a few unambiguous leading constructs cheaper
// and more reliably than the classifier.
func detectByPattern(trimmed []byte) string {
	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")):
		return "go"
	case bytes.HasPrefix(trimmed, []byte("FROM ")):
		return "dockerfile"
	case bytes.HasPrefix(trimmed, []byte("SELECT ")), bytes.HasPrefix(trimmed, []byte("select ")):
		return "sql"
	case bytes.HasPrefix(trimmed, []byte("{")) && bytes.Contains(trimmed, []byte(`":`)):
		return "json"
	case bytes.HasPrefix(trimmed, []byte("#!/")):
		return "bash"
	case bytes.HasPrefix(trimmed, []byte("def ")) && bytes.Contains(trimmed, []byte("):")):
		return "python"
	case bytes.HasPrefix(trimmed, []byte("fn ")) && bytes.Contains(trimmed, []byte("println!")):
		return "rust"
	}
	return ""
}

// fenceTag maps an enry language name to the tag conventionally used on
// code fences.
func fenceTag(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
