// internal/tui/drawing.go
package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// visualColumn converts a rune index within line into a visual column,
// accounting for tab stops and wide grapheme clusters.
func (v *View) visualColumn(line string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	visual := 0
	runeCount := 0

	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		if runeCount >= runeIndex {
			break
		}
		runes := gr.Runes()
		if len(runes) == 1 && runes[0] == '\t' {
			visual += v.tabWidth - visual%v.tabWidth
		} else {
			visual += gr.Width()
		}
		runeCount += len(runes)
	}
	return visual
}

// Draw renders the visible portion of the document, the line number
// gutter and the status bar, then places the hardware cursor.
func Draw(s *Screen, v *View) {
	width, height := s.Size()
	statusBarHeight := 1
	textHeight := height - statusBarHeight
	if textHeight <= 0 || width <= 0 {
		return
	}

	lineCount := v.doc.LineCount()
	maxDigits := int(math.Log10(float64(lineCount))) + 1
	gutterWidth := maxDigits + 1 // Number column plus one space
	if gutterWidth >= width {
		gutterWidth = 0 // Screen too narrow for a gutter
	}
	textWidth := width - gutterWidth

	v.scrollToCursor(textWidth, textHeight)

	defaultStyle := tcell.StyleDefault
	gutterStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	for screenY := 0; screenY < textHeight; screenY++ {
		lineIdx := screenY + v.viewY

		for x := 0; x < width; x++ {
			s.screen.SetContent(x, screenY, ' ', nil, defaultStyle)
		}

		if lineIdx >= lineCount {
			continue
		}

		if gutterWidth > 0 {
			style := gutterStyle
			if lineIdx == v.cursor.Line {
				style = style.Bold(true)
			}
			num := fmt.Sprintf("%*d", maxDigits, lineIdx+1)
			for i, r := range num {
				s.screen.SetContent(i, screenY, r, nil, style)
			}
		}

		drawLine(s, v, v.doc.Line(lineIdx), screenY, gutterWidth, textWidth)
	}

	drawStatusBar(s, v, width, textHeight)

	cursorX := gutterWidth + v.visualColumn(v.doc.Line(v.cursor.Line), v.cursor.Col) - v.viewX
	cursorY := v.cursor.Line - v.viewY
	if cursorX >= gutterWidth && cursorX < width && cursorY >= 0 && cursorY < textHeight {
		s.screen.ShowCursor(cursorX, cursorY)
	} else {
		s.screen.HideCursor()
	}
}

// drawLine renders one buffer line into the text area, horizontally
// shifted by the viewport.
func drawLine(s *Screen, v *View, line string, screenY, gutterWidth, textWidth int) {
	visual := 0
	style := tcell.StyleDefault

	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		runes := gr.Runes()

		if len(runes) == 1 && runes[0] == '\t' {
			next := visual + v.tabWidth - visual%v.tabWidth
			visual = next
			continue
		}

		w := gr.Width()
		screenX := gutterWidth + visual - v.viewX
		if screenX >= gutterWidth && screenX+w <= gutterWidth+textWidth {
			s.screen.SetContent(screenX, screenY, runes[0], runes[1:], style)
		}
		visual += w
		if visual-v.viewX >= textWidth {
			break
		}
	}
}

func drawStatusBar(s *Screen, v *View, width, y int) {
	style := tcell.StyleDefault.Reverse(true)

	name := v.FilePath
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if v.doc.Modified() {
		modified = " [+]"
	}
	left := fmt.Sprintf(" %s%s", name, modified)
	if v.Status != "" {
		left += "  " + v.Status
	}
	right := fmt.Sprintf("%d:%d ", v.cursor.Line+1, v.cursor.Col+1)

	for x := 0; x < width; x++ {
		s.screen.SetContent(x, y, ' ', nil, style)
	}
	for i, r := range left {
		if i >= width {
			break
		}
		s.screen.SetContent(i, y, r, nil, style)
	}
	start := width - len(right)
	if start > len(left) {
		for i, r := range right {
			s.screen.SetContent(start+i, y, r, nil, style)
		}
	}
}
