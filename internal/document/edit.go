// internal/document/edit.go
package document

import (
	"strings"
	"unicode/utf8"

	"github.com/strandtext/strand/internal/buffer"
	"github.com/strandtext/strand/internal/history"
	"github.com/strandtext/strand/internal/types"
)

// InsertText inserts text at the given absolute offset. Offsets are
// clamped into the document; inserting an empty string is a no-op.
func (d *Document) InsertText(offset int, text string) {
	if text == "" {
		return
	}

	ch, delta := d.applyInsert(offset, text)

	if !d.replaying {
		d.history.Push(history.Record{
			Kind:  history.Insert,
			Pos:   ch.StartOffset,
			After: text,
		})
	}
	d.dispatch(ch, delta)
}

// DeleteText removes the text between start and end. Inverted ranges
// are swapped, out-of-document offsets clamped; an empty range is a
// no-op.
func (d *Document) DeleteText(start, end int) {
	start, end = d.normalizeRange(start, end)
	if start == end {
		return
	}

	removed, ch, delta := d.applyDelete(start, end)

	if !d.replaying {
		d.history.Push(history.Record{
			Kind:   history.Delete,
			Pos:    start,
			Before: removed,
		})
	}
	d.dispatch(ch, delta)
}

// ReplaceText replaces the range [start, end) with newText. The
// composition runs as a delete followed by an insert, each raising its
// own notifications, but records a single Replace entry so one undo
// step reverses both halves.
func (d *Document) ReplaceText(start, end int, newText string) {
	start, end = d.normalizeRange(start, end)
	if start == end && newText == "" {
		return
	}

	before := d.textRange(start, end)

	wasReplaying := d.replaying
	d.replaying = true
	d.DeleteText(start, end)
	d.InsertText(start, newText)
	d.replaying = wasReplaying

	if !d.replaying {
		d.history.Push(history.Record{
			Kind:   history.Replace,
			Pos:    start,
			Before: before,
			After:  newText,
		})
	}
}

// TextRange returns the text between start and end, exactly what
// DeleteText over the same range would remove. Inverted ranges are
// swapped and offsets clamped.
func (d *Document) TextRange(start, end int) string {
	start, end = d.normalizeRange(start, end)
	return d.textRange(start, end)
}

// normalizeRange clamps both offsets into the document and orders
// them.
func (d *Document) normalizeRange(start, end int) (int, int) {
	start = d.index.Clamp(start)
	end = d.index.Clamp(end)
	if start > end {
		start, end = end, start
	}
	return start, end
}

// textRange assumes a normalized range.
func (d *Document) textRange(start, end int) string {
	sp := d.index.ToLineCol(start)
	ep := d.index.ToLineCol(end)

	if sp.Line == ep.Line {
		r := []rune(d.store.Line(sp.Line))
		return string(r[sp.Col:ep.Col])
	}

	// First line's suffix, whole interior lines, last line's prefix.
	parts := make([]string, 0, ep.Line-sp.Line+1)
	first := []rune(d.store.Line(sp.Line))
	parts = append(parts, string(first[sp.Col:]))
	for i := sp.Line + 1; i < ep.Line; i++ {
		parts = append(parts, d.store.Line(i))
	}
	last := []rune(d.store.Line(ep.Line))
	parts = append(parts, string(last[:ep.Col]))
	return buffer.JoinLines(parts)
}

// applyInsert performs the splice and returns the edit summary plus a
// line delta when the insert spanned lines. Recording and
// notification are the caller's concern.
func (d *Document) applyInsert(offset int, text string) (types.Change, *types.LineDelta) {
	offset = d.index.Clamp(offset)
	pos := d.index.ToLineCol(offset)

	lineRunes := []rune(d.store.Line(pos.Line))
	prefix := string(lineRunes[:pos.Col])
	suffix := string(lineRunes[pos.Col:])

	var delta *types.LineDelta
	if !strings.ContainsRune(text, buffer.Terminator) {
		// Splice into the target line; no line-count change.
		d.store.SetLine(pos.Line, prefix+text+suffix)
	} else {
		// The first fragment extends the prefix, the last fragment
		// precedes the suffix, interior fragments become lines
		// verbatim; the one original line is replaced by the run.
		parts := buffer.SplitLines(text)
		run := make([]string, len(parts))
		run[0] = prefix + parts[0]
		for i := 1; i < len(parts)-1; i++ {
			run[i] = parts[i]
		}
		run[len(parts)-1] = parts[len(parts)-1] + suffix
		d.store.ReplaceLines(pos.Line, 1, run)
		delta = &types.LineDelta{
			StartLine:    pos.Line,
			RemovedLines: 1,
			AddedLines:   len(parts),
		}
	}

	d.index.Invalidate()
	d.modified = true

	newEnd := offset + utf8.RuneCountInString(text)
	return types.Change{
		StartOffset:  offset,
		OldEndOffset: offset,
		NewEndOffset: newEnd,
		Start:        pos,
		OldEnd:       pos,
		NewEnd:       d.index.ToLineCol(newEnd),
	}, delta
}

// applyDelete performs the removal and returns the removed text, the
// edit summary and a line delta when the range spanned lines. The
// range must be normalized and non-empty.
func (d *Document) applyDelete(start, end int) (string, types.Change, *types.LineDelta) {
	sp := d.index.ToLineCol(start)
	ep := d.index.ToLineCol(end)

	// Capture the doomed text before mutating.
	removed := d.textRange(start, end)

	var delta *types.LineDelta
	if sp.Line == ep.Line {
		r := []rune(d.store.Line(sp.Line))
		d.store.SetLine(sp.Line, string(r[:sp.Col])+string(r[ep.Col:]))
	} else {
		// The spanned lines collapse into one merged line.
		first := []rune(d.store.Line(sp.Line))
		last := []rune(d.store.Line(ep.Line))
		merged := string(first[:sp.Col]) + string(last[ep.Col:])
		d.store.ReplaceLines(sp.Line, ep.Line-sp.Line+1, []string{merged})
		delta = &types.LineDelta{
			StartLine:    sp.Line,
			RemovedLines: ep.Line - sp.Line + 1,
			AddedLines:   1,
		}
	}

	d.index.Invalidate()
	d.modified = true

	return removed, types.Change{
		StartOffset:  start,
		OldEndOffset: end,
		NewEndOffset: start,
		Start:        sp,
		OldEnd:       ep,
		NewEnd:       sp,
	}, delta
}
