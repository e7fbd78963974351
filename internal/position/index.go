// Package position converts between absolute rune offsets and
// line/column positions over a line source.
package position

import (
	"sort"

	"github.com/strandtext/strand/internal/types"
)

// Source provides the line dimensions the index needs. LineLen is in
// runes and excludes the terminator.
type Source interface {
	LineCount() int
	LineLen(i int) int
}

// Index caches line-start offsets in a prefix-sum slice that is
// rebuilt lazily after Invalidate, so lookups cost O(log n) instead of
// an O(n) walk over the lines. Every offset accounts for an implicit
// terminator after each line except the last.
type Index struct {
	src    Source
	starts []int // starts[i] = offset of the first rune of line i
	total  int   // document length in runes
	valid  bool
}

// NewIndex creates an index over src. The index holds no state of its
// own beyond the cache; call Invalidate after every mutation of src.
func NewIndex(src Source) *Index {
	return &Index{src: src}
}

// Invalidate marks the cached prefix sums stale. The next lookup
// rebuilds them.
func (x *Index) Invalidate() {
	x.valid = false
}

func (x *Index) ensure() {
	if x.valid {
		return
	}
	n := x.src.LineCount()
	if cap(x.starts) >= n {
		x.starts = x.starts[:n]
	} else {
		x.starts = make([]int, n)
	}
	offset := 0
	for i := 0; i < n; i++ {
		x.starts[i] = offset
		offset += x.src.LineLen(i) + 1 // account for the terminator
	}
	x.total = offset - 1 // no terminator after the last line
	x.valid = true
}

// TextLen returns the document length in runes.
func (x *Index) TextLen() int {
	x.ensure()
	return x.total
}

// Clamp returns offset clamped into [0, TextLen].
func (x *Index) Clamp(offset int) int {
	x.ensure()
	if offset < 0 {
		return 0
	}
	if offset > x.total {
		return x.total
	}
	return offset
}

// ToLineCol converts an absolute offset to a line/column position.
// Offsets <= 0 map to the document start; offsets beyond the end map
// to the end of the last line. An offset addressing a terminator maps
// to the end column of its line.
func (x *Index) ToLineCol(offset int) types.Position {
	x.ensure()
	if offset <= 0 {
		return types.Position{}
	}
	last := len(x.starts) - 1
	if offset >= x.total {
		return types.Position{Line: last, Col: x.src.LineLen(last)}
	}
	// Largest line whose start offset is <= offset.
	line := sort.Search(len(x.starts), func(i int) bool {
		return x.starts[i] > offset
	}) - 1
	return types.Position{Line: line, Col: offset - x.starts[line]}
}

// ToOffset converts a line/column position to an absolute offset.
// The line is clamped into the document and the column into its line.
func (x *Index) ToOffset(pos types.Position) int {
	x.ensure()
	line := pos.Line
	if line < 0 {
		line = 0
	}
	if last := len(x.starts) - 1; line > last {
		line = last
	}
	col := pos.Col
	if col < 0 {
		col = 0
	}
	if lineLen := x.src.LineLen(line); col > lineLen {
		col = lineLen
	}
	return x.starts[line] + col
}
