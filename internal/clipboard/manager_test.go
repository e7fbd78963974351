package clipboard

import (
	"testing"

	"github.com/strandtext/strand/internal/document"
)

func newDoc(text string) *document.Document {
	d := document.New()
	d.SetText(text)
	return d
}

func TestCopyPaste(t *testing.T) {
	d := newDoc("abc\ndef")
	m := NewManager(d, false)

	if !m.Copy(0, 3) {
		t.Fatal("Copy returned false")
	}

	end, ok := m.Paste(7)
	if !ok {
		t.Fatal("Paste returned false")
	}
	if end != 10 {
		t.Errorf("paste end = %d, want 10", end)
	}
	if got := d.Text(); got != "abc\ndefabc" {
		t.Errorf("Text() = %q", got)
	}
}

func TestCopyAcrossLines(t *testing.T) {
	d := newDoc("abc\ndef")
	m := NewManager(d, false)

	m.Copy(2, 5)

	if _, ok := m.Paste(0); !ok {
		t.Fatal("Paste returned false")
	}
	if got := d.Text(); got != "c\ndabc\ndef" {
		t.Errorf("Text() = %q", got)
	}
}

func TestCopyLine(t *testing.T) {
	d := newDoc("abc\ndef")
	m := NewManager(d, false)

	if !m.CopyLine(1) {
		t.Fatal("CopyLine returned false")
	}
	if _, ok := m.Paste(0); !ok {
		t.Fatal("Paste returned false")
	}
	if got := d.Text(); got != "def\nabc\ndef" {
		t.Errorf("Text() = %q", got)
	}

	if m.CopyLine(9) {
		t.Error("CopyLine out of range should return false")
	}
}

func TestCutIsUndoable(t *testing.T) {
	d := newDoc("abc\ndef")
	m := NewManager(d, false)

	if !m.Cut(0, 4) {
		t.Fatal("Cut returned false")
	}
	if got := d.Text(); got != "def" {
		t.Fatalf("Text() = %q", got)
	}

	if !d.Undo() {
		t.Fatal("Undo after cut failed")
	}
	if got := d.Text(); got != "abc\ndef" {
		t.Errorf("undo did not restore the cut: %q", got)
	}

	// The register survives the undo.
	if _, ok := m.Paste(0); !ok {
		t.Fatal("Paste after undo failed")
	}
	if got := d.Text(); got != "abc\nabc\ndef" {
		t.Errorf("Text() = %q", got)
	}
}

func TestPasteEmptyRegister(t *testing.T) {
	d := newDoc("abc")
	m := NewManager(d, false)

	if _, ok := m.Paste(0); ok {
		t.Error("Paste with empty register should return false")
	}
	if d.Text() != "abc" {
		t.Errorf("empty paste mutated the document: %q", d.Text())
	}
}
