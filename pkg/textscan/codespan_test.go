package textscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectSpans(input string) []CodeSpan {
	var spans []CodeSpan
	for span := range CodeSpans(input) {
		spans = append(spans, span)
	}
	return spans
}

func TestCodeSpans(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []CodeSpan
	}{
		{
			name:  "no spans",
			input: "plain text\n",
			want:  nil,
		},
		{
			name:  "single span",
			input: "a `code` b",
			want: []CodeSpan{
				{Content: "code", StartLine: 1, StartColumn: 4, TickCount: 1},
			},
		},
		{
			name:  "double ticks",
			input: "``a ` b``",
			want: []CodeSpan{
				{Content: "a ` b", StartLine: 1, StartColumn: 3, TickCount: 2},
			},
		},
		{
			name:  "skips longer runs inside span",
			input: "``code ``` more``",
			want: []CodeSpan{
				{Content: "code ``` more", StartLine: 1, StartColumn: 3, TickCount: 2},
			},
		},
		{
			name:  "multiple spans",
			input: "`a` and `b`",
			want: []CodeSpan{
				{Content: "a", StartLine: 1, StartColumn: 2, TickCount: 1},
				{Content: "b", StartLine: 1, StartColumn: 10, TickCount: 1},
			},
		},
		{
			name:  "span on later line",
			input: "first\nsee `x` here",
			want: []CodeSpan{
				{Content: "x", StartLine: 2, StartColumn: 6, TickCount: 1},
			},
		},
		{
			name:  "multi line span",
			input: "`a\nb` tail",
			want: []CodeSpan{
				{Content: "a\nb", StartLine: 1, StartColumn: 2, TickCount: 1},
			},
		},
		{
			name:  "unterminated run is literal",
			input: "a ` b",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, collectSpans(tt.input))
		})
	}
}

func TestCodeSpansRestartable(t *testing.T) {
	t.Parallel()

	seq := CodeSpans("`a` `b`")

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}

	assert.Equal(t, 2, first)
	assert.Equal(t, first, second)
}

func TestCodeSpansEarlyBreak(t *testing.T) {
	t.Parallel()

	var got []CodeSpan
	for span := range CodeSpans("`a` `b` `c`") {
		got = append(got, span)
		if len(got) == 2 {
			break
		}
	}

	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Content)
	assert.Equal(t, "b", got[1].Content)
}
