package fix_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/marklint/pkg/fix"
	"github.com/yaklabco/marklint/pkg/textscan"
)

func FuzzApply(f *testing.F) {
	f.Add("hello world\nsecond line\n", 1, 3, 2, "xx")
	f.Add("a\r\nb\r\n", 2, 1, -1, "")
	f.Add("", 1, 1, 0, "text")

	f.Fuzz(func(t *testing.T, input string, line, col, del int, insert string) {
		lines := textscan.SplitLines(input)
		if line < 1 || line > len(lines) {
			return
		}
		length := len(lines[line-1])
		if col < 1 || col > length+1 {
			return
		}
		if del != fix.DeleteLine && (del < 0 || del > length-col+1) {
			return
		}

		// A valid single edit must never panic and must leave the other
		// lines byte-identical.
		out := fix.Apply(input, []fix.Info{
			{LineNumber: line, EditColumn: col, DeleteCount: del, InsertText: insert},
		})

		if del == fix.DeleteLine {
			return
		}
		outLines := textscan.SplitLines(out)
		if len(outLines) < len(lines) && !strings.Contains(insert, "\n") {
			t.Fatalf("line count shrank: %d -> %d", len(lines), len(outLines))
		}
	})
}

func FuzzApplyEmptyRoundTrip(f *testing.F) {
	f.Add("a\nb\r\nc\r")
	f.Add("")
	f.Add("mixed\rendings\r\nhere\n")

	f.Fuzz(func(t *testing.T, input string) {
		if out := fix.Apply(input, nil); out != input {
			t.Fatalf("empty fix set changed input: %q -> %q", input, out)
		}
	})
}
