package history

import "testing"

func TestLogPushPop(t *testing.T) {
	l := NewLog(0)

	if l.CanUndo() || l.CanRedo() {
		t.Fatal("fresh log should have nothing to undo or redo")
	}
	if _, ok := l.PopUndo(); ok {
		t.Error("PopUndo on empty log should fail")
	}

	l.Push(Record{Kind: Insert, Pos: 3, After: "XY"})
	l.Push(Record{Kind: Delete, Pos: 0, Before: "a"})

	if got := l.UndoDepth(); got != 2 {
		t.Fatalf("UndoDepth() = %d, want 2", got)
	}

	rec, ok := l.PopUndo()
	if !ok || rec.Kind != Delete {
		t.Fatalf("PopUndo() = %+v, %v; want the delete record", rec, ok)
	}
}

func TestUndoRedoPartition(t *testing.T) {
	l := NewLog(0)
	l.Push(Record{Kind: Insert, Pos: 0, After: "a"})
	l.Push(Record{Kind: Insert, Pos: 1, After: "b"})

	// Undo moves exactly one record across.
	rec, _ := l.PopUndo()
	l.PushRedo(rec)

	if l.UndoDepth() != 1 || l.RedoDepth() != 1 {
		t.Fatalf("depths = %d/%d, want 1/1", l.UndoDepth(), l.RedoDepth())
	}

	// Redo moves it back without clearing anything.
	rec, _ = l.PopRedo()
	l.PushUndo(rec)

	if l.UndoDepth() != 2 || l.RedoDepth() != 0 {
		t.Fatalf("depths = %d/%d, want 2/0", l.UndoDepth(), l.RedoDepth())
	}
}

func TestNewEditClearsRedo(t *testing.T) {
	l := NewLog(0)
	l.Push(Record{Kind: Insert, Pos: 0, After: "a"})

	rec, _ := l.PopUndo()
	l.PushRedo(rec)

	l.Push(Record{Kind: Insert, Pos: 0, After: "b"})

	if l.CanRedo() {
		t.Error("a new user edit must clear the redo stack")
	}
}

func TestDisabledRecording(t *testing.T) {
	l := NewLog(0)
	l.SetEnabled(false)
	l.Push(Record{Kind: Insert, Pos: 0, After: "a"})

	if l.CanUndo() {
		t.Error("push while disabled should not record")
	}

	l.SetEnabled(true)
	l.Push(Record{Kind: Insert, Pos: 0, After: "a"})
	if !l.CanUndo() {
		t.Error("push after re-enable should record")
	}
}

func TestMaxEntriesEviction(t *testing.T) {
	l := NewLog(3)
	for i := 0; i < 5; i++ {
		l.Push(Record{Kind: Insert, Pos: i, After: "x"})
	}

	if got := l.UndoDepth(); got != 3 {
		t.Fatalf("UndoDepth() = %d, want 3", got)
	}

	// The oldest records were evicted; the newest survives on top.
	rec, _ := l.PopUndo()
	if rec.Pos != 4 {
		t.Errorf("top record Pos = %d, want 4", rec.Pos)
	}
}

func TestClear(t *testing.T) {
	l := NewLog(0)
	l.Push(Record{Kind: Insert, Pos: 0, After: "a"})
	rec, _ := l.PopUndo()
	l.PushRedo(rec)

	l.Clear()

	if l.CanUndo() || l.CanRedo() {
		t.Error("Clear must empty both stacks")
	}
}
