package event

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/strandtext/strand/internal/types"
)

func TestDispatchOrder(t *testing.T) {
	m := NewManager()

	var order []int
	m.Subscribe(TypeTextChanged, func(e Event) bool {
		order = append(order, 1)
		return false
	})
	m.Subscribe(TypeTextChanged, func(e Event) bool {
		order = append(order, 2)
		return false
	})

	m.Dispatch(TypeTextChanged, TextChangedData{})

	if diff := cmp.Diff([]int{1, 2}, order); diff != "" {
		t.Errorf("handlers ran out of registration order (-want +got):\n%s", diff)
	}
}

func TestDispatchPayload(t *testing.T) {
	m := NewManager()

	var got types.LineDelta
	m.Subscribe(TypeLinesChanged, func(e Event) bool {
		got = e.Data.(LinesChangedData).Delta
		return false
	})

	want := types.LineDelta{StartLine: 2, RemovedLines: 1, AddedLines: 3}
	m.Dispatch(TypeLinesChanged, LinesChangedData{Delta: want})

	if got != want {
		t.Errorf("payload = %+v, want %+v", got, want)
	}
}

func TestDispatchTypeIsolation(t *testing.T) {
	m := NewManager()

	calls := 0
	m.Subscribe(TypeTextChanged, func(e Event) bool {
		calls++
		return false
	})

	m.Dispatch(TypeLinesChanged, LinesChangedData{})
	m.Dispatch(TypeDocumentSaved, DocumentSavedData{FilePath: "x"})

	if calls != 0 {
		t.Errorf("handler for TypeTextChanged saw %d unrelated events", calls)
	}
}

func TestDispatchNoHandlers(t *testing.T) {
	m := NewManager()
	// Must not panic with no subscribers.
	m.Dispatch(TypeTextChanged, TextChangedData{})
}
