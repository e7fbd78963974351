// internal/document/undo.go
package document

import (
	"unicode/utf8"

	"github.com/strandtext/strand/internal/history"
	"github.com/strandtext/strand/internal/logger"
)

// Undo reverts the most recent recorded edit. It returns false when
// the undo stack is empty. The inverse runs through the normal
// mutation path with the replay gate set, so notifications still fire
// but no new record is pushed and the redo stack survives.
func (d *Document) Undo() bool {
	rec, ok := d.history.PopUndo()
	if !ok {
		return false
	}
	logger.Debugf("document: undoing %v at %d", rec.Kind, rec.Pos)

	d.replaying = true
	switch rec.Kind {
	case history.Insert:
		// Undo an insert by deleting the inserted span.
		d.DeleteText(rec.Pos, rec.Pos+utf8.RuneCountInString(rec.After))
	case history.Delete:
		// Undo a delete by restoring the removed text in place.
		d.InsertText(rec.Pos, rec.Before)
	case history.Replace:
		d.DeleteText(rec.Pos, rec.Pos+utf8.RuneCountInString(rec.After))
		d.InsertText(rec.Pos, rec.Before)
	}
	d.replaying = false

	d.history.PushRedo(rec)
	return true
}

// Redo re-applies the most recently undone edit. It returns false
// when the redo stack is empty.
func (d *Document) Redo() bool {
	rec, ok := d.history.PopRedo()
	if !ok {
		return false
	}
	logger.Debugf("document: redoing %v at %d", rec.Kind, rec.Pos)

	d.replaying = true
	switch rec.Kind {
	case history.Insert:
		d.InsertText(rec.Pos, rec.After)
	case history.Delete:
		d.DeleteText(rec.Pos, rec.Pos+utf8.RuneCountInString(rec.Before))
	case history.Replace:
		d.DeleteText(rec.Pos, rec.Pos+utf8.RuneCountInString(rec.Before))
		d.InsertText(rec.Pos, rec.After)
	}
	d.replaying = false

	d.history.PushUndo(rec)
	return true
}
