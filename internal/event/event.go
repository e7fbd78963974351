// internal/event/event.go
package event

import "github.com/strandtext/strand/internal/types"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Document Events
	TypeTextChanged  // Fired after every successful mutation, including undo/redo
	TypeLinesChanged // Fired only when the mutation invalidated a line range
	TypeDocumentLoaded
	TypeDocumentSaved
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// --- Specific Event Data Structures ---

// TextChangedData carries an edit summary for incremental consumers
// (highlighter, LSP sync). Listeners must treat it as a read-only
// snapshot taken on the mutating goroutine.
type TextChangedData struct {
	Change types.Change
}

// LinesChangedData carries the first affected line index plus the
// removed/added line counts, so consumers can limit re-work to the
// affected window.
type LinesChangedData struct {
	Delta types.LineDelta
}

// DocumentLoadedData contains info about the opened file.
type DocumentLoadedData struct {
	FilePath string
}

// DocumentSavedData contains info about the saved file.
type DocumentSavedData struct {
	FilePath string
}
