package history

import (
	"sync"

	"github.com/strandtext/strand/internal/logger"
)

const DefaultMaxEntries = 100

// Log holds the undo and redo stacks. The two stacks are always a
// partition of the recorded history relative to the current point in
// time: undo and redo move exactly one record between them, and any
// new user edit clears the redo stack.
//
// The log only stores records; applying their inverses is the
// document's job, so that undo execution reuses the same mutation
// primitives under its replay gate.
type Log struct {
	mu         sync.Mutex
	undo       []Record
	redo       []Record
	enabled    bool
	maxEntries int
}

// NewLog creates a log recording at most maxEntries undo records.
func NewLog(maxEntries int) *Log {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Log{
		undo:       make([]Record, 0, maxEntries),
		enabled:    true,
		maxEntries: maxEntries,
	}
}

// Push records a new user edit and clears the redo stack. It is a
// no-op while recording is disabled.
func (l *Log) Push(rec Record) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled {
		return
	}

	l.undo = append(l.undo, rec)
	l.redo = l.redo[:0]

	// FIFO eviction once the stack exceeds its bound
	if len(l.undo) > l.maxEntries {
		l.undo = l.undo[len(l.undo)-l.maxEntries:]
	}

	logger.Debugf("history: recorded %v at %d (undo depth %d)", rec.Kind, rec.Pos, len(l.undo))
}

// PopUndo removes and returns the most recent undo record.
func (l *Log) PopUndo() (Record, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.undo) == 0 {
		return Record{}, false
	}
	rec := l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]
	return rec, true
}

// PopRedo removes and returns the most recent redo record.
func (l *Log) PopRedo() (Record, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.redo) == 0 {
		return Record{}, false
	}
	rec := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]
	return rec, true
}

// PushRedo parks an undone record on the redo stack.
func (l *Log) PushRedo(rec Record) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.redo = append(l.redo, rec)
}

// PushUndo returns a redone record to the undo stack without clearing
// the redo stack. Only redo may use this; user edits go through Push.
func (l *Log) PushUndo(rec Record) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.undo = append(l.undo, rec)
}

// CanUndo reports whether an undo record is available.
func (l *Log) CanUndo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.undo) > 0
}

// CanRedo reports whether a redo record is available.
func (l *Log) CanRedo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.redo) > 0
}

// UndoDepth returns the number of undoable records.
func (l *Log) UndoDepth() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.undo)
}

// RedoDepth returns the number of redoable records.
func (l *Log) RedoDepth() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.redo)
}

// SetEnabled toggles recording. Disabling does not discard existing
// records; mutations simply stop producing new ones.
func (l *Log) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

// Enabled reports whether recording is active.
func (l *Log) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// Clear empties both stacks. Call this when the whole document is
// replaced.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.undo = l.undo[:0]
	l.redo = l.redo[:0]
	logger.Debugf("history: cleared")
}
