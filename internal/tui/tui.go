// internal/tui/tui.go
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Screen manages the terminal screen using tcell.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes the tcell screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	s.SetStyle(tcell.StyleDefault)
	return &Screen{screen: s}, nil
}

// Close finalizes the tcell screen.
func (s *Screen) Close() {
	if s.screen != nil {
		s.screen.Fini()
	}
}

// PollEvent retrieves the next event, blocking until one arrives.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear clears the entire screen.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show makes the changes visible.
func (s *Screen) Show() {
	s.screen.Show()
}

// Size returns the width and height of the terminal screen.
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}
