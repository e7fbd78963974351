// internal/types/change.go
package types

// Change summarizes a single document mutation for incremental
// consumers (highlighters, LSP sync, line-numbered views).
// Offsets are absolute rune offsets into the joined document text.
type Change struct {
	StartOffset  int // Start of the edit
	OldEndOffset int // End of the replaced span in the old text
	NewEndOffset int // End of the inserted span in the new text

	Start  Position // Start position (same in old and new text)
	OldEnd Position // End position of the replaced span, old coordinates
	NewEnd Position // End position of the inserted span, new coordinates
}

// LineDelta describes a line-range invalidation: the first affected
// line plus how many lines the mutation removed and added there.
type LineDelta struct {
	StartLine    int
	RemovedLines int
	AddedLines   int
}
