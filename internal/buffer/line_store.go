// internal/buffer/line_store.go
package buffer

import "unicode/utf8"

// LineStore is the baseline Store implementation backed by a line
// slice. Multi-line edits rebuild the slice, which is O(document
// size) per edit; the Store interface leaves room for a rope or
// piece-table replacement without changing callers.
type LineStore struct {
	lines []string
}

// NewLineStore creates a store holding a single empty line.
func NewLineStore() *LineStore {
	return &LineStore{
		// Start with a single empty line, common for new documents
		lines: []string{""},
	}
}

// SetText replaces all lines with the split of text.
func (ls *LineStore) SetText(text string) {
	ls.lines = SplitLines(text)
}

// Text joins all lines back into the document text.
func (ls *LineStore) Text() string {
	return JoinLines(ls.lines)
}

// LineCount returns the number of lines, always >= 1.
func (ls *LineStore) LineCount() int {
	return len(ls.lines)
}

// Line returns the line at index i, or an empty string when i is out
// of range. Callers translating fast edits may briefly hold stale
// indices, so out-of-range access is not an error.
func (ls *LineStore) Line(i int) string {
	if i < 0 || i >= len(ls.lines) {
		return ""
	}
	return ls.lines[i]
}

// Lines returns a defensive copy of all lines.
func (ls *LineStore) Lines() []string {
	out := make([]string, len(ls.lines))
	copy(out, ls.lines)
	return out
}

// LineLen returns the length of line i in runes, 0 when out of range.
func (ls *LineStore) LineLen(i int) int {
	if i < 0 || i >= len(ls.lines) {
		return 0
	}
	return utf8.RuneCountInString(ls.lines[i])
}

// SetLine replaces the line at index i. Out-of-range indices are
// ignored.
func (ls *LineStore) SetLine(i int, line string) {
	if i < 0 || i >= len(ls.lines) {
		return
	}
	ls.lines[i] = line
}

// ReplaceLines replaces n lines starting at index i with repl. The
// range is clamped into the current line span; the at-least-one-line
// invariant is restored if the replacement empties the store.
func (ls *LineStore) ReplaceLines(i, n int, repl []string) {
	if i < 0 {
		i = 0
	}
	if i > len(ls.lines) {
		i = len(ls.lines)
	}
	if n < 0 {
		n = 0
	}
	if i+n > len(ls.lines) {
		n = len(ls.lines) - i
	}

	out := make([]string, 0, len(ls.lines)-n+len(repl))
	out = append(out, ls.lines[:i]...)
	out = append(out, repl...)
	out = append(out, ls.lines[i+n:]...)
	ls.lines = out

	if len(ls.lines) == 0 {
		ls.lines = []string{""}
	}
}

// Ensure LineStore satisfies the Store interface
var _ Store = (*LineStore)(nil)
