// internal/buffer/buffer.go
package buffer

import "strings"

// Terminator is the line-terminator character separating stored lines.
const Terminator = '\n'

// Store defines the interface for line-oriented document storage.
// Stored lines never contain the terminator. A store always holds at
// least one line; an empty document is a single empty line, never zero
// lines. The document text is the lines joined with a single
// terminator between each pair (no trailing terminator).
type Store interface {
	SetText(text string)
	Text() string
	LineCount() int
	Line(i int) string
	Lines() []string
	LineLen(i int) int
	SetLine(i int, line string)
	ReplaceLines(i, n int, repl []string)
}

// SplitLines splits text on the terminator. Empty input yields a
// single empty line, never an empty slice, and a trailing terminator
// yields a final empty entry, so JoinLines(SplitLines(t)) == t.
func SplitLines(text string) []string {
	return strings.Split(text, string(Terminator))
}

// JoinLines joins lines with a single terminator between each pair.
func JoinLines(lines []string) string {
	return strings.Join(lines, string(Terminator))
}
