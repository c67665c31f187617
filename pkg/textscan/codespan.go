package textscan

import "iter"

// CodeSpan is one inline code span found in a document.
type CodeSpan struct {
	// Content is the text between the opening and closing tick runs.
	// For spans crossing line boundaries it includes the embedded separators.
	Content string

	// StartLine is the 1-based line of the first content character.
	StartLine int

	// StartColumn is the 1-based column of the first content character.
	StartColumn int

	// TickCount is the length of the delimiting backtick run.
	TickCount int
}

// CodeSpans returns a restartable sequence of inline code spans in input.
// A span opens at a run of N backticks and closes at the next run of exactly
// N backticks; shorter or longer runs inside the span are skipped.
func CodeSpans(input string) iter.Seq[CodeSpan] {
	return func(yield func(CodeSpan) bool) {
		line, column := 1, 1
		idx := 0

		advance := func(to int) {
			for ; idx < to; idx++ {
				if input[idx] == '\n' {
					line++
					column = 1
				} else if input[idx] == '\r' && (idx+1 >= len(input) || input[idx+1] != '\n') {
					line++
					column = 1
				} else {
					column++
				}
			}
		}

		for idx < len(input) {
			if input[idx] != '`' {
				advance(idx + 1)
				continue
			}

			ticks := tickRunLength(input, idx)
			open := idx
			advance(open + ticks)
			startLine, startColumn := line, column
			contentStart := idx

			end := findClosingRun(input, contentStart, ticks)
			if end == -1 {
				// Unterminated span: the tick run is literal text.
				continue
			}

			advance(end)
			span := CodeSpan{
				Content:     input[contentStart:end],
				StartLine:   startLine,
				StartColumn: startColumn,
				TickCount:   ticks,
			}
			if !yield(span) {
				return
			}
			advance(end + ticks)
		}
	}
}

// tickRunLength returns the length of the backtick run starting at idx.
func tickRunLength(input string, idx int) int {
	n := 0
	for idx+n < len(input) && input[idx+n] == '`' {
		n++
	}
	return n
}

// findClosingRun returns the index of the next backtick run of exactly want
// ticks at or after from, or -1 if none exists.
func findClosingRun(input string, from, want int) int {
	for i := from; i < len(input); i++ {
		if input[i] != '`' {
			continue
		}
		n := tickRunLength(input, i)
		if n == want {
			return i
		}
		i += n - 1
	}
	return -1
}
