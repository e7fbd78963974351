package buffer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{""}},
		{"single line", "abc", []string{"abc"}},
		{"two lines", "abc\ndef", []string{"abc", "def"}},
		{"trailing terminator", "abc\n", []string{"abc", ""}},
		{"leading terminator", "\nabc", []string{"", "abc"}},
		{"blank interior line", "a\n\nb", []string{"a", "", "b"}},
		{"only terminators", "\n\n", []string{"", "", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitLines(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
			if joined := JoinLines(got); joined != tt.text {
				t.Errorf("JoinLines(SplitLines(%q)) = %q", tt.text, joined)
			}
		})
	}
}

func TestNewLineStore(t *testing.T) {
	ls := NewLineStore()

	if ls.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", ls.LineCount())
	}
	if ls.Line(0) != "" {
		t.Errorf("expected empty line, got %q", ls.Line(0))
	}
	if ls.Text() != "" {
		t.Errorf("expected empty text, got %q", ls.Text())
	}
}

func TestLineStoreRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"abc",
		"abc\ndef",
		"line1\nline2\nline3",
		"trailing\n",
		"\n",
		"héllo\nwörld",
	}

	ls := NewLineStore()
	for _, text := range texts {
		ls.SetText(text)
		if got := ls.Text(); got != text {
			t.Errorf("SetText(%q); Text() = %q", text, got)
		}
	}
}

func TestLineStoreLineOutOfRange(t *testing.T) {
	ls := NewLineStore()
	ls.SetText("abc\ndef")

	if got := ls.Line(-1); got != "" {
		t.Errorf("Line(-1) = %q, want empty", got)
	}
	if got := ls.Line(2); got != "" {
		t.Errorf("Line(2) = %q, want empty", got)
	}
	if got := ls.LineLen(5); got != 0 {
		t.Errorf("LineLen(5) = %d, want 0", got)
	}
}

func TestLineStoreLineLenRunes(t *testing.T) {
	ls := NewLineStore()
	ls.SetText("héllo\n日本語")

	if got := ls.LineLen(0); got != 5 {
		t.Errorf("LineLen(0) = %d, want 5", got)
	}
	if got := ls.LineLen(1); got != 3 {
		t.Errorf("LineLen(1) = %d, want 3", got)
	}
}

func TestLineStoreLinesIsCopy(t *testing.T) {
	ls := NewLineStore()
	ls.SetText("abc\ndef")

	lines := ls.Lines()
	lines[0] = "mutated"

	if ls.Line(0) != "abc" {
		t.Errorf("mutating Lines() result changed the store: %q", ls.Line(0))
	}
}

func TestLineStoreReplaceLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		i, n int
		repl []string
		want []string
	}{
		{"replace middle", "a\nb\nc", 1, 1, []string{"x", "y"}, []string{"a", "x", "y", "c"}},
		{"replace all with none", "a\nb", 0, 2, nil, []string{""}},
		{"insert at end", "a\nb", 2, 0, []string{"c"}, []string{"a", "b", "c"}},
		{"clamp range", "a\nb", 1, 5, []string{"z"}, []string{"a", "z"}},
		{"negative start", "a\nb", -2, 1, []string{"z"}, []string{"z", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := NewLineStore()
			ls.SetText(tt.text)
			ls.ReplaceLines(tt.i, tt.n, tt.repl)
			if diff := cmp.Diff(tt.want, ls.Lines()); diff != "" {
				t.Errorf("ReplaceLines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLineStoreSetLine(t *testing.T) {
	ls := NewLineStore()
	ls.SetText("a\nb")

	ls.SetLine(1, "changed")
	if ls.Text() != "a\nchanged" {
		t.Errorf("unexpected text after SetLine: %q", ls.Text())
	}

	// Out of range is ignored
	ls.SetLine(7, "nope")
	if ls.Text() != "a\nchanged" {
		t.Errorf("out-of-range SetLine mutated the store: %q", ls.Text())
	}
}
