package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/marklint/pkg/doc"
	"github.com/yaklabco/marklint/pkg/fix"
	"github.com/yaklabco/marklint/pkg/lint"
	"github.com/yaklabco/marklint/pkg/rule"
)

// pipeline lints content with the full built-in pack and returns the
// findings plus the text after applying every fix.
func pipeline(t *testing.T, content string) ([]lint.Finding, string) {
	t.Helper()

	set, err := rule.NewSet(Builtin(), nil)
	require.NoError(t, err)

	d := doc.New("test.md", content, nil)
	findings, err := lint.Run(d, set, nil, lint.Options{})
	require.NoError(t, err)

	fixed := fix.Apply(content, lint.Fixes(findings))
	return findings, fixed
}

// Applying every fix, then re-linting the corrected text, must leave no
// fix-bearing findings.
func TestBuiltinFixesAreIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"trailing space \nand\ttabs\there\n",
		"a\n\n\n\nb\n",
		"no trailing newline",
		"see (docs)[https://example.com] and https://example.org now\n",
		"use ` padded` spans  \n",
		"mixed\t \n\n\n\nend",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			_, fixed := pipeline(t, input)
			reFindings, reFixed := pipeline(t, fixed)

			assert.Equal(t, fixed, reFixed, "second pass must be a no-op")
			assert.Empty(t, lint.Fixes(reFindings), "second pass must carry no fixes")
		})
	}
}

func TestPipelineFixesTrailingWhitespace(t *testing.T) {
	t.Parallel()

	_, fixed := pipeline(t, "one \ntwo\tthree   \n")
	assert.Equal(t, "one\ntwo three\n", fixed)
}

func TestPipelineCollapsesBlankRuns(t *testing.T) {
	t.Parallel()

	_, fixed := pipeline(t, "a\n\n\n\nb\n")
	assert.Equal(t, "a\n\nb\n", fixed)
}
