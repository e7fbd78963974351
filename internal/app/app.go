// internal/app/app.go
package app

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/strandtext/strand/internal/clipboard"
	"github.com/strandtext/strand/internal/config"
	"github.com/strandtext/strand/internal/document"
	"github.com/strandtext/strand/internal/event"
	"github.com/strandtext/strand/internal/logger"
	"github.com/strandtext/strand/internal/tui"
)

// App owns the editor session: one document, its clipboard, and the
// terminal screen.
type App struct {
	cfg    *config.Config
	doc    *document.Document
	clip   *clipboard.Manager
	screen *tui.Screen
	view   *tui.View
}

// New assembles the application around filePath. An empty filePath
// starts with an empty unnamed document.
func New(cfg *config.Config, filePath string) (*App, error) {
	doc := document.NewWithHistoryDepth(cfg.Editor.HistoryDepth)
	events := event.NewManager()
	doc.SetEventManager(events)

	if filePath != "" {
		if err := loadFile(doc, filePath); err != nil {
			return nil, err
		}
		events.Dispatch(event.TypeDocumentLoaded, event.DocumentLoadedData{FilePath: filePath})
	}

	clip := clipboard.NewManager(doc, cfg.Editor.SystemClipboard)

	screen, err := tui.NewScreen()
	if err != nil {
		return nil, err
	}

	view := tui.NewView(doc, clip, cfg.Editor.TabWidth)
	view.FilePath = filePath
	view.Save = func() error {
		if view.FilePath == "" {
			return fmt.Errorf("no file name")
		}
		if err := os.WriteFile(view.FilePath, []byte(doc.Text()), 0o644); err != nil {
			return err
		}
		events.Dispatch(event.TypeDocumentSaved, event.DocumentSavedData{FilePath: view.FilePath})
		return nil
	}

	return &App{
		cfg:    cfg,
		doc:    doc,
		clip:   clip,
		screen: screen,
		view:   view,
	}, nil
}

// Run drives the poll-and-draw loop until the user quits.
func (a *App) Run() error {
	defer a.screen.Close()

	for {
		a.screen.Clear()
		tui.Draw(a.screen, a.view)
		a.screen.Show()

		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventResize:
			// Next Draw picks up the new size.
		case *tcell.EventKey:
			if !a.view.HandleKey(ev) {
				logger.Infof("quit requested")
				return nil
			}
		case nil:
			return nil
		}
	}
}

// loadFile reads filePath into doc. A missing file is not an error so
// that editing a new file works.
func loadFile(doc *document.Document, filePath string) error {
	data, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		logger.Infof("new file: %s", filePath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read '%s': %w", filePath, err)
	}
	doc.SetText(string(data))
	return nil
}
