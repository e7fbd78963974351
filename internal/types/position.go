// internal/types/position.go
package types

// Position identifies a location within the document.
// Line is the 0-based line index.
// Col is the 0-based column (rune) index within the line.
// Rune indices keep one indexable unit per stored character.
type Position struct {
	Line int
	Col  int // Rune index
}
