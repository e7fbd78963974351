package position

import (
	"testing"

	"github.com/strandtext/strand/internal/buffer"
	"github.com/strandtext/strand/internal/types"
)

func newIndex(text string) (*Index, *buffer.LineStore) {
	ls := buffer.NewLineStore()
	ls.SetText(text)
	return NewIndex(ls), ls
}

func TestToLineCol(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		offset int
		want   types.Position
	}{
		{"start", "abc\ndef", 0, types.Position{Line: 0, Col: 0}},
		{"mid first line", "abc\ndef", 2, types.Position{Line: 0, Col: 2}},
		{"end of first line", "abc\ndef", 3, types.Position{Line: 0, Col: 3}},
		{"start of second line", "abc\ndef", 4, types.Position{Line: 1, Col: 0}},
		{"document end", "abc\ndef", 7, types.Position{Line: 1, Col: 3}},
		{"negative clamps to start", "abc\ndef", -5, types.Position{}},
		{"beyond end clamps to last", "abc\ndef", 99, types.Position{Line: 1, Col: 3}},
		{"empty document", "", 0, types.Position{}},
		{"empty document beyond", "", 10, types.Position{}},
		{"blank line", "a\n\nb", 2, types.Position{Line: 1, Col: 0}},
		{"multibyte runes", "日本\n語", 3, types.Position{Line: 1, Col: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, _ := newIndex(tt.text)
			if got := x.ToLineCol(tt.offset); got != tt.want {
				t.Errorf("ToLineCol(%d) = %+v, want %+v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestToOffsetClamping(t *testing.T) {
	x, _ := newIndex("abc\ndef")

	tests := []struct {
		pos  types.Position
		want int
	}{
		{types.Position{Line: 0, Col: 0}, 0},
		{types.Position{Line: 1, Col: 2}, 6},
		{types.Position{Line: -3, Col: -1}, 0},
		{types.Position{Line: 0, Col: 99}, 3},
		{types.Position{Line: 99, Col: 99}, 7},
	}

	for _, tt := range tests {
		if got := x.ToOffset(tt.pos); got != tt.want {
			t.Errorf("ToOffset(%+v) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

// Every reachable offset must survive the round trip through
// line/column coordinates.
func TestRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"a",
		"abc\ndef",
		"line1\nline2\nline3",
		"\n\n",
		"héllo\nwörld\n",
		"日本語\nテキスト",
	}

	for _, text := range texts {
		x, _ := newIndex(text)
		for offset := 0; offset <= x.TextLen(); offset++ {
			pos := x.ToLineCol(offset)
			if got := x.ToOffset(pos); got != offset {
				t.Errorf("text %q: ToOffset(ToLineCol(%d)) = %d via %+v", text, offset, got, pos)
			}
		}
	}
}

func TestInvalidateTracksMutation(t *testing.T) {
	x, ls := newIndex("abc")

	if got := x.TextLen(); got != 3 {
		t.Fatalf("TextLen() = %d, want 3", got)
	}

	ls.SetText("abc\ndef")
	x.Invalidate()

	if got := x.TextLen(); got != 7 {
		t.Errorf("TextLen() after mutation = %d, want 7", got)
	}
	if got := x.ToLineCol(4); (got != types.Position{Line: 1, Col: 0}) {
		t.Errorf("ToLineCol(4) after mutation = %+v", got)
	}
}
