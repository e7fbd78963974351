// internal/tui/view.go
package tui

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/strandtext/strand/internal/clipboard"
	"github.com/strandtext/strand/internal/document"
	"github.com/strandtext/strand/internal/logger"
	"github.com/strandtext/strand/internal/types"
)

// View owns the cursor and viewport state for one document and turns
// key events into document edits.
type View struct {
	doc  *document.Document
	clip *clipboard.Manager

	cursor   types.Position
	viewY    int // First visible buffer line
	viewX    int // First visible visual column
	tabWidth int

	FilePath string
	Status   string

	// Save is invoked on Ctrl-S. An error becomes the status message.
	Save func() error
}

// NewView creates a view over doc.
func NewView(doc *document.Document, clip *clipboard.Manager, tabWidth int) *View {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return &View{
		doc:      doc,
		clip:     clip,
		tabWidth: tabWidth,
	}
}

// Cursor returns the current cursor position.
func (v *View) Cursor() types.Position {
	return v.cursor
}

// HandleKey processes one key event. It returns false when the event
// asks to quit the editor.
func (v *View) HandleKey(ev *tcell.EventKey) bool {
	v.Status = ""

	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyEscape:
		return false
	case tcell.KeyCtrlS:
		v.save()
	case tcell.KeyCtrlZ:
		if v.doc.Undo() {
			v.moveToOffset(v.doc.TextLen())
			v.Status = "undo"
		} else {
			v.Status = "nothing to undo"
		}
	case tcell.KeyCtrlY:
		if v.doc.Redo() {
			v.moveToOffset(v.doc.TextLen())
			v.Status = "redo"
		} else {
			v.Status = "nothing to redo"
		}
	case tcell.KeyCtrlK:
		v.cutLine()
	case tcell.KeyCtrlU:
		v.paste()
	case tcell.KeyEnter:
		v.insert("\n")
	case tcell.KeyTab:
		v.insert("\t")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		v.backspace()
	case tcell.KeyDelete:
		off := v.offset()
		v.doc.DeleteText(off, off+1)
	case tcell.KeyLeft:
		v.moveToOffset(v.offset() - 1)
	case tcell.KeyRight:
		v.moveToOffset(v.offset() + 1)
	case tcell.KeyUp:
		v.moveVertical(-1)
	case tcell.KeyDown:
		v.moveVertical(1)
	case tcell.KeyHome:
		v.cursor.Col = 0
	case tcell.KeyEnd:
		v.cursor.Col = v.lineLen(v.cursor.Line)
	case tcell.KeyPgUp:
		v.moveVertical(-pageStride)
	case tcell.KeyPgDn:
		v.moveVertical(pageStride)
	case tcell.KeyRune:
		v.insert(string(ev.Rune()))
	}
	return true
}

const pageStride = 20

func (v *View) insert(text string) {
	off := v.offset()
	v.doc.InsertText(off, text)
	v.moveToOffset(off + utf8.RuneCountInString(text))
}

func (v *View) backspace() {
	off := v.offset()
	if off == 0 {
		return
	}
	v.doc.DeleteText(off-1, off)
	v.moveToOffset(off - 1)
}

func (v *View) cutLine() {
	line := v.cursor.Line
	start := v.doc.PositionToOffset(types.Position{Line: line, Col: 0})
	end := start + v.lineLen(line)
	if line < v.doc.LineCount()-1 {
		end++ // Take the terminator so the line disappears.
	}
	if v.clip == nil || !v.clip.Cut(start, end) {
		return
	}
	v.moveToOffset(start)
	v.Status = "line cut"
}

func (v *View) paste() {
	if v.clip == nil {
		return
	}
	if end, ok := v.clip.Paste(v.offset()); ok {
		v.moveToOffset(end)
	}
}

func (v *View) save() {
	if v.Save == nil {
		v.Status = "no file to save to"
		return
	}
	if err := v.Save(); err != nil {
		logger.Errorf("save failed: %v", err)
		v.Status = "save failed: " + err.Error()
		return
	}
	v.doc.ResetModified()
	v.Status = "saved " + v.FilePath
}

// offset returns the cursor as an absolute offset.
func (v *View) offset() int {
	return v.doc.PositionToOffset(v.cursor)
}

// moveToOffset places the cursor at the clamped offset.
func (v *View) moveToOffset(off int) {
	v.cursor = v.doc.OffsetToPosition(off)
}

func (v *View) moveVertical(delta int) {
	line := v.cursor.Line + delta
	if line < 0 {
		line = 0
	}
	if max := v.doc.LineCount() - 1; line > max {
		line = max
	}
	v.cursor.Line = line
	if l := v.lineLen(line); v.cursor.Col > l {
		v.cursor.Col = l
	}
}

func (v *View) lineLen(i int) int {
	return utf8.RuneCountInString(v.doc.Line(i))
}

// scrollToCursor adjusts the viewport so the cursor stays visible
// within a text area of the given size.
func (v *View) scrollToCursor(textWidth, textHeight int) {
	if textHeight <= 0 || textWidth <= 0 {
		return
	}
	if v.cursor.Line < v.viewY {
		v.viewY = v.cursor.Line
	}
	if v.cursor.Line >= v.viewY+textHeight {
		v.viewY = v.cursor.Line - textHeight + 1
	}

	visCol := v.visualColumn(v.doc.Line(v.cursor.Line), v.cursor.Col)
	if visCol < v.viewX {
		v.viewX = visCol
	}
	if visCol >= v.viewX+textWidth {
		v.viewX = visCol - textWidth + 1
	}
}
