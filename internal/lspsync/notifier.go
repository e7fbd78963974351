// Package lspsync mirrors document edits as LSP textDocument/didChange
// notifications. The notifier subscribes to the document's change
// events and hands versioned incremental changes to a caller-supplied
// sink, typically a jsonrpc connection to a language server.
package lspsync

import (
	"sync"

	"github.com/sourcegraph/go-lsp"
	"github.com/strandtext/strand/internal/buffer"
	"github.com/strandtext/strand/internal/document"
	"github.com/strandtext/strand/internal/event"
	"github.com/strandtext/strand/internal/types"
)

// Sink receives the outgoing didChange parameters. Implementations
// must not call back into the document.
type Sink func(params lsp.DidChangeTextDocumentParams)

// Notifier tracks one document and reports its edits to a Sink.
//
// It keeps a mirror of the lines as they were before the latest edit
// so that the removed range can be expressed in the coordinates the
// server still has.
type Notifier struct {
	mu      sync.Mutex
	doc     *document.Document
	uri     lsp.DocumentURI
	version int
	mirror  []string
	sink    Sink
}

// NewNotifier attaches a notifier to doc. The document must already
// have an event manager; edits made before the call are not reported.
func NewNotifier(doc *document.Document, uri lsp.DocumentURI, sink Sink) *Notifier {
	n := &Notifier{
		doc:    doc,
		uri:    uri,
		mirror: buffer.SplitLines(doc.Text()),
		sink:   sink,
	}
	if events := doc.Events(); events != nil {
		events.Subscribe(event.TypeTextChanged, n.onTextChanged)
	}
	return n
}

// Version returns the version number of the last notification sent.
func (n *Notifier) Version() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.version
}

// FullSync sends the entire document as a single change, the way a
// server expecting full synchronization wants it.
func (n *Notifier) FullSync() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.version++
	n.mirror = buffer.SplitLines(n.doc.Text())
	n.emit(lsp.TextDocumentContentChangeEvent{Text: n.doc.Text()})
}

func (n *Notifier) onTextChanged(e event.Event) bool {
	data, ok := e.Data.(event.TextChangedData)
	if !ok {
		return false
	}
	ch := data.Change

	n.mu.Lock()
	defer n.mu.Unlock()

	removed := n.mirrorRange(ch.Start, ch.OldEnd)
	rng := lsp.Range{
		Start: n.toLSP(ch.Start),
		End:   n.toLSP(ch.OldEnd),
	}

	n.version++
	n.mirror = buffer.SplitLines(n.doc.Text())
	n.emit(lsp.TextDocumentContentChangeEvent{
		Range:       &rng,
		RangeLength: uint(utf16Len(removed)),
		Text:        n.doc.TextRange(ch.StartOffset, ch.NewEndOffset),
	})
	return false
}

func (n *Notifier) emit(change lsp.TextDocumentContentChangeEvent) {
	if n.sink == nil {
		return
	}
	n.sink(lsp.DidChangeTextDocumentParams{
		TextDocument: lsp.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: lsp.TextDocumentIdentifier{URI: n.uri},
			Version:                n.version,
		},
		ContentChanges: []lsp.TextDocumentContentChangeEvent{change},
	})
}

// toLSP converts a line/rune-column position into LSP line/UTF-16
// coordinates using the pre-edit mirror.
func (n *Notifier) toLSP(pos types.Position) lsp.Position {
	return lsp.Position{
		Line:      pos.Line,
		Character: runeToUTF16(n.mirrorLine(pos.Line), pos.Col),
	}
}

func (n *Notifier) mirrorLine(i int) string {
	if i < 0 || i >= len(n.mirror) {
		return ""
	}
	return n.mirror[i]
}

// mirrorRange extracts the text between two positions from the
// pre-edit mirror, analogous to the document's own range read.
func (n *Notifier) mirrorRange(start, end types.Position) string {
	if start.Line == end.Line {
		runes := []rune(n.mirrorLine(start.Line))
		from, to := clampCol(start.Col, len(runes)), clampCol(end.Col, len(runes))
		if from > to {
			from, to = to, from
		}
		return string(runes[from:to])
	}

	first := []rune(n.mirrorLine(start.Line))
	parts := []string{string(first[clampCol(start.Col, len(first)):])}
	for i := start.Line + 1; i < end.Line; i++ {
		parts = append(parts, n.mirrorLine(i))
	}
	last := []rune(n.mirrorLine(end.Line))
	parts = append(parts, string(last[:clampCol(end.Col, len(last))]))
	return buffer.JoinLines(parts)
}

func clampCol(col, max int) int {
	if col < 0 {
		return 0
	}
	if col > max {
		return max
	}
	return col
}
