// Package history provides the undo/redo log of reversible edit
// records.
package history

// Kind tags which operation produced a record.
type Kind int

const (
	Insert Kind = iota
	Delete
	Replace
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}

// Record is a single reversible edit: the absolute rune offset where
// the edit began, the text the edit removed and the text it inserted.
// Inverting a record is deleting After and restoring Before at Pos.
type Record struct {
	Kind   Kind
	Pos    int
	Before string // Text removed by the edit
	After  string // Text inserted by the edit
}
