// Package document implements the text-document engine: line storage,
// offset/position conversion and transactional reversible editing with
// change notifications.
//
// All offsets and columns are rune (code point) indices, one indexable
// unit per stored character. A Document is exclusively owned by one
// editing session; operations run synchronously on the calling
// goroutine and must not be invoked concurrently.
package document

import (
	"github.com/strandtext/strand/internal/buffer"
	"github.com/strandtext/strand/internal/event"
	"github.com/strandtext/strand/internal/history"
	"github.com/strandtext/strand/internal/logger"
	"github.com/strandtext/strand/internal/position"
	"github.com/strandtext/strand/internal/types"
)

// Document aggregates a line store and an undo/redo log behind the
// editing façade. The zero value is not usable; use New.
type Document struct {
	store   buffer.Store
	index   *position.Index
	history *history.Log
	events  *event.Manager

	modified  bool
	replaying bool // Suppresses recording while undo/redo replays a record
}

// New creates an empty document holding a single empty line.
func New() *Document {
	return NewWithHistoryDepth(history.DefaultMaxEntries)
}

// NewWithHistoryDepth creates an empty document whose undo log keeps
// at most depth records.
func NewWithHistoryDepth(depth int) *Document {
	store := buffer.NewLineStore()
	return &Document{
		store:   store,
		index:   position.NewIndex(store),
		history: history.NewLog(depth),
	}
}

// SetEventManager sets the manager change notifications are dispatched
// through. Without one, mutations run silently.
func (d *Document) SetEventManager(mgr *event.Manager) {
	d.events = mgr
}

// Events returns the event manager, which may be nil.
func (d *Document) Events() *event.Manager {
	return d.events
}

// SetText replaces the whole document, clears the history and resets
// the modified flag. Both change notifications fire with a
// whole-document line range.
func (d *Document) SetText(text string) {
	oldEndOffset := d.index.TextLen()
	oldEnd := d.index.ToLineCol(oldEndOffset)
	oldCount := d.store.LineCount()

	d.store.SetText(text)
	d.index.Invalidate()
	d.history.Clear()
	d.modified = false

	newEndOffset := d.index.TextLen()
	d.dispatch(types.Change{
		StartOffset:  0,
		OldEndOffset: oldEndOffset,
		NewEndOffset: newEndOffset,
		OldEnd:       oldEnd,
		NewEnd:       d.index.ToLineCol(newEndOffset),
	}, &types.LineDelta{
		StartLine:    0,
		RemovedLines: oldCount,
		AddedLines:   d.store.LineCount(),
	})
}

// Clear resets the document to a single empty line, clearing history
// and the modified flag.
func (d *Document) Clear() {
	logger.Debugf("document: cleared")
	d.SetText("")
}

// Text returns the whole document text.
func (d *Document) Text() string {
	return d.store.Text()
}

// TextLen returns the document length in runes.
func (d *Document) TextLen() int {
	return d.index.TextLen()
}

// LineCount returns the number of lines, always >= 1.
func (d *Document) LineCount() int {
	return d.store.LineCount()
}

// Line returns the line at index i without its terminator, or an
// empty string when i is out of range.
func (d *Document) Line(i int) string {
	return d.store.Line(i)
}

// Lines returns a defensive copy of all lines.
func (d *Document) Lines() []string {
	return d.store.Lines()
}

// OffsetToPosition converts an absolute offset to a line/column
// position, clamping into the document.
func (d *Document) OffsetToPosition(offset int) types.Position {
	return d.index.ToLineCol(offset)
}

// PositionToOffset converts a line/column position to an absolute
// offset, clamping into the document.
func (d *Document) PositionToOffset(pos types.Position) int {
	return d.index.ToOffset(pos)
}

// Modified reports whether any mutation (including undo/redo) ran
// since the last SetText, Clear or ResetModified.
func (d *Document) Modified() bool {
	return d.modified
}

// ResetModified clears the modified flag, typically after a save.
func (d *Document) ResetModified() {
	d.modified = false
}

// SetUndoRedoEnabled toggles history recording. While disabled,
// mutations still happen but push no records; used for programmatic
// bulk operations that should not be individually undoable.
func (d *Document) SetUndoRedoEnabled(enabled bool) {
	d.history.SetEnabled(enabled)
}

// UndoRedoEnabled reports whether history recording is active.
func (d *Document) UndoRedoEnabled() bool {
	return d.history.Enabled()
}

// ClearUndoRedo empties both history stacks.
func (d *Document) ClearUndoRedo() {
	d.history.Clear()
}

// CanUndo reports whether an undo step is available.
func (d *Document) CanUndo() bool {
	return d.history.CanUndo()
}

// CanRedo reports whether a redo step is available.
func (d *Document) CanRedo() bool {
	return d.history.CanRedo()
}

// dispatch raises the text-changed notification and, when the line
// structure changed, the line-range notification.
func (d *Document) dispatch(ch types.Change, delta *types.LineDelta) {
	if d.events == nil {
		return
	}
	d.events.Dispatch(event.TypeTextChanged, event.TextChangedData{Change: ch})
	if delta != nil {
		d.events.Dispatch(event.TypeLinesChanged, event.LinesChangedData{Delta: *delta})
	}
}
