// Package clipboard provides register-based copy/cut/paste over a
// document, optionally mirrored to the system clipboard.
package clipboard

import (
	"unicode/utf8"

	sysclip "github.com/atotto/clipboard"
	"github.com/strandtext/strand/internal/document"
	"github.com/strandtext/strand/internal/logger"
)

// Manager holds the clipboard register for one editing session.
type Manager struct {
	doc       *document.Document
	register  string
	useSystem bool
}

// NewManager creates a clipboard manager for doc. With useSystem set,
// copies are mirrored to the system clipboard and pastes prefer its
// contents.
func NewManager(doc *document.Document, useSystem bool) *Manager {
	return &Manager{
		doc:       doc,
		useSystem: useSystem,
	}
}

// Copy stores the text between start and end in the register.
// Returns false when the range is empty.
func (m *Manager) Copy(start, end int) bool {
	text := m.doc.TextRange(start, end)
	if text == "" {
		return false
	}
	m.set(text)
	return true
}

// CopyLine stores line i including its terminator, so pasting at a
// line start reproduces a whole line. Returns false out of range.
func (m *Manager) CopyLine(i int) bool {
	if i < 0 || i >= m.doc.LineCount() {
		return false
	}
	m.set(m.doc.Line(i) + "\n")
	return true
}

// Cut copies the range into the register and deletes it from the
// document. The deletion is recorded through the normal undo path.
func (m *Manager) Cut(start, end int) bool {
	text := m.doc.TextRange(start, end)
	if text == "" {
		return false
	}
	m.set(text)
	m.doc.DeleteText(start, end)
	return true
}

// Paste inserts the register contents at offset and returns the
// offset just past the pasted text. Returns false when the register
// is empty.
func (m *Manager) Paste(offset int) (int, bool) {
	text := m.get()
	if text == "" {
		return offset, false
	}
	offset = m.doc.PositionToOffset(m.doc.OffsetToPosition(offset))
	m.doc.InsertText(offset, text)
	return offset + utf8.RuneCountInString(text), true
}

func (m *Manager) set(text string) {
	m.register = text
	if m.useSystem {
		if err := sysclip.WriteAll(text); err != nil {
			logger.Warnf("clipboard: system write failed: %v", err)
		}
	}
	logger.Debugf("clipboard: stored %d bytes", len(text))
}

func (m *Manager) get() string {
	if m.useSystem {
		if text, err := sysclip.ReadAll(); err == nil && text != "" {
			return text
		}
		// Fall back to the internal register when the system
		// clipboard is unavailable.
	}
	return m.register
}
