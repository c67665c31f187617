package result

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/marklint/pkg/fix"
	"github.com/yaklabco/marklint/pkg/lint"
	"github.com/yaklabco/marklint/pkg/rule"
)

var (
	spacingRule = rule.Rule{
		Names:       []string{"spacing-rule", "SR001"},
		Description: "Spacing is wrong",
		Information: "https://example.com/rules/spacing",
		Tags:        []string{"whitespace"},
	}
	headingRule = rule.Rule{
		Names:       []string{"heading-rule"},
		Description: "Heading is wrong",
	}
)

func sampleFindings() []lint.Finding {
	return []lint.Finding{
		{Rule: spacingRule, Diagnostic: rule.Diagnostic{
			LineNumber: 4,
			Detail:     "expected 1 space",
			Context:    "a  b",
			Range:      []int{2, 2},
			FixInfo:    &fix.Info{EditColumn: 2, DeleteCount: 1},
		}},
		{Rule: headingRule, Diagnostic: rule.Diagnostic{LineNumber: 1}},
		{Rule: spacingRule, Diagnostic: rule.Diagnostic{LineNumber: 1}},
	}
}

func TestBuilderOrdering(t *testing.T) {
	t.Parallel()

	b := NewBuilder(V3)
	b.Add("a.md", sampleFindings())
	results := b.Results()

	entries := results.Entries("a.md")
	require.Len(t, entries, 3)

	// Stable sort by line number only: the two line-1 findings keep their
	// emission order.
	assert.Equal(t, 1, entries[0].LineNumber)
	assert.Equal(t, "heading-rule", entries[0].RuleName)
	assert.Equal(t, 1, entries[1].LineNumber)
	assert.Equal(t, "spacing-rule", entries[1].RuleName)
	assert.Equal(t, 4, entries[2].LineNumber)
}

func TestSummaryDeduplicatesLines(t *testing.T) {
	t.Parallel()

	findings := []lint.Finding{
		{Rule: spacingRule, Diagnostic: rule.Diagnostic{LineNumber: 2}},
		{Rule: spacingRule, Diagnostic: rule.Diagnostic{LineNumber: 2}},
		{Rule: spacingRule, Diagnostic: rule.Diagnostic{LineNumber: 5}},
		{Rule: headingRule, Diagnostic: rule.Diagnostic{LineNumber: 2}},
	}

	b := NewBuilder(V0)
	b.Add("a.md", findings)

	assert.Equal(t, map[string][]int{
		"spacing-rule": {2, 5},
		"heading-rule": {2},
	}, b.Results().Summary("a.md"))
}

func TestMarshalJSONShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		version Version
		want    string
	}{
		{
			name:    "v0 collapses to rule name and lines",
			version: V0,
			want: `{"a.md":{` +
				`"heading-rule":[1],` +
				`"spacing-rule":[1,4]}}`,
		},
		{
			name:    "v1 single name and alias",
			version: V1,
			want: `{"a.md":[` +
				`{"lineNumber":1,"ruleName":"heading-rule","ruleAlias":"heading-rule","ruleDescription":"Heading is wrong"},` +
				`{"lineNumber":1,"ruleName":"spacing-rule","ruleAlias":"SR001","ruleDescription":"Spacing is wrong","ruleInformation":"https://example.com/rules/spacing"},` +
				`{"lineNumber":4,"ruleName":"spacing-rule","ruleAlias":"SR001","ruleDescription":"Spacing is wrong","ruleInformation":"https://example.com/rules/spacing","errorDetail":"expected 1 space","errorContext":"a  b","errorRange":[2,2]}]}`,
		},
		{
			name:    "v2 full name list",
			version: V2,
			want: `{"a.md":[` +
				`{"lineNumber":1,"ruleNames":["heading-rule"],"ruleDescription":"Heading is wrong"},` +
				`{"lineNumber":1,"ruleNames":["spacing-rule","SR001"],"ruleDescription":"Spacing is wrong","ruleInformation":"https://example.com/rules/spacing"},` +
				`{"lineNumber":4,"ruleNames":["spacing-rule","SR001"],"ruleDescription":"Spacing is wrong","ruleInformation":"https://example.com/rules/spacing","errorDetail":"expected 1 space","errorContext":"a  b","errorRange":[2,2]}]}`,
		},
		{
			name:    "v3 adds fix info",
			version: V3,
			want: `{"a.md":[` +
				`{"lineNumber":1,"ruleNames":["heading-rule"],"ruleDescription":"Heading is wrong"},` +
				`{"lineNumber":1,"ruleNames":["spacing-rule","SR001"],"ruleDescription":"Spacing is wrong","ruleInformation":"https://example.com/rules/spacing"},` +
				`{"lineNumber":4,"ruleNames":["spacing-rule","SR001"],"ruleDescription":"Spacing is wrong","ruleInformation":"https://example.com/rules/spacing","errorDetail":"expected 1 space","errorContext":"a  b","errorRange":[2,2],"fixInfo":{"lineNumber":4,"editColumn":2,"deleteCount":1}}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := NewBuilder(tt.version)
			b.Add("a.md", sampleFindings())

			got, err := json.Marshal(b.Results())
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	b := NewBuilder(V2)
	b.Add("docs/readme.md", sampleFindings())

	want := "docs/readme.md: 1: heading-rule Heading is wrong\n" +
		"docs/readme.md: 1: spacing-rule/SR001 Spacing is wrong\n" +
		"docs/readme.md: 4: spacing-rule/SR001 Spacing is wrong [expected 1 space] [Context: \"a  b\"]"
	assert.Equal(t, want, b.Results().Format(false))
}

func TestFormatAliasSelection(t *testing.T) {
	t.Parallel()

	findings := []lint.Finding{
		{Rule: spacingRule, Diagnostic: rule.Diagnostic{LineNumber: 2}},
	}

	b := NewBuilder(V1)
	b.Add("a.md", findings)
	results := b.Results()

	assert.Equal(t, "a.md: 2: spacing-rule Spacing is wrong", results.Format(false))
	assert.Equal(t, "a.md: 2: SR001 Spacing is wrong", results.Format(true))
}

func TestFormatDeprecatedMarked(t *testing.T) {
	t.Parallel()

	old := rule.Rule{
		Names:       []string{"old-rule"},
		Description: "Old check",
		Deprecated:  true,
	}
	b := NewBuilder(V1)
	b.Add("a.md", []lint.Finding{{Rule: old, Diagnostic: rule.Diagnostic{LineNumber: 3}}})

	assert.Equal(t, "a.md: 3: old-rule Old check (deprecated)", b.Results().Format(false))
}

func TestInputsKeepAdditionOrder(t *testing.T) {
	t.Parallel()

	b := NewBuilder(V1)
	b.Add("z.md", nil)
	b.Add("a.md", nil)
	b.Add("z.md", nil)

	assert.Equal(t, []string{"z.md", "a.md"}, b.Results().Inputs())
}
