package textscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", []string{""}},
		{"no newline", "hello", []string{"hello"}},
		{"trailing lf", "hello\n", []string{"hello", ""}},
		{"lf", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb", []string{"a", "b"}},
		{"cr", "a\rb", []string{"a", "b"}},
		{"mixed", "a\nb\r\nc\rd", []string{"a", "b", "c", "d"}},
		{"blank lines", "a\n\n\nb", []string{"a", "", "", "b"}},
		{"trailing crlf", "a\r\n", []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SplitLines(tt.content))
		})
	}
}

func TestPreferredLineEnding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"all lf", "a\nb\nc\n", "\n"},
		{"all crlf", "a\r\nb\r\n", "\r\n"},
		{"all cr", "a\rb\rc\r", "\r"},
		{"crlf majority", "a\r\nb\r\nc\n", "\r\n"},
		{"cr majority", "a\rb\rc\n", "\r"},
		{"tie lf wins over crlf", "a\nb\r\n", "\n"},
		{"tie crlf wins over cr", "a\r\nb\r", "\r\n"},
		{"three way tie", "a\nb\r\nc\r", "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PreferredLineEnding(tt.content))
		})
	}
}

func TestPreferredLineEndingNoEndings(t *testing.T) {
	t.Parallel()

	got := PreferredLineEnding("no endings here")
	assert.Equal(t, platformLineEnding(), got)

	got = PreferredLineEnding("")
	assert.Equal(t, platformLineEnding(), got)
}
