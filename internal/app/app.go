// Package app hosts one editor in a terminal text field: it owns the buffer,
// turns tcell key and mouse events into editor calls, and draws.
package app

import (
	"fmt"
	"time"

	"github.com/bethropolis/editbox/internal/buffer"
	"github.com/bethropolis/editbox/internal/config"
	"github.com/bethropolis/editbox/internal/core"
	"github.com/bethropolis/editbox/internal/event"
	"github.com/bethropolis/editbox/internal/logger"
	"github.com/bethropolis/editbox/internal/statusbar"
	"github.com/bethropolis/editbox/internal/theme"
	"github.com/bethropolis/editbox/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the host components and main loop.
type App struct {
	tuiManager   *tui.TUI
	editor       *core.Editor
	buffer       *buffer.TextBuffer
	layout       tui.Layout
	field        tui.Field
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	activeTheme  *theme.Theme
	clipboard    Clipboard

	start     time.Time // Click timestamps are seconds since start
	mouseDown bool
}

// NewApp loads filePath (may be empty or missing) and wires the components.
func NewApp(cfg *config.Config, filePath string) (*App, error) {
	th := theme.Default()
	if cfg.Editor.ThemeFile != "" {
		loaded, err := theme.LoadFile(cfg.Editor.ThemeFile)
		if err != nil {
			logger.Warnf("App: %v, using default theme", err)
		} else {
			th = loaded
		}
	}

	tuiManager, err := tui.New(th.GetStyle(theme.StyleDefault))
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	a, err := newApp(cfg, filePath, tuiManager, th)
	if err != nil {
		tuiManager.Close()
		return nil, err
	}
	return a, nil
}

// newApp does the wiring that needs no real terminal.
func newApp(cfg *config.Config, filePath string, tuiManager *tui.TUI, th *theme.Theme) (*App, error) {
	buf := buffer.NewTextBuffer("")
	if filePath != "" {
		if err := buf.Load(filePath); err != nil {
			return nil, fmt.Errorf("loading '%s': %w", filePath, err)
		}
	}

	a := &App{
		tuiManager: tuiManager,
		editor: core.NewEditor(
			core.WithDoubleClickTime(cfg.Editor.DoubleClickTime),
			core.WithHistoryLimit(cfg.Editor.HistoryLimit),
		),
		buffer:       buf,
		layout:       tui.NewLayout(buf.Bytes()),
		statusBar:    statusbar.New(),
		eventManager: event.NewManager(),
		activeTheme:  th,
		clipboard:    newClipboard(cfg.Editor.SystemClipboard),
		start:        time.Now(),
	}

	a.eventManager.Subscribe(event.TypeBufferModified, a.handleBufferModified)
	a.eventManager.Subscribe(event.TypeBufferSaved, a.handleBufferSaved)
	a.eventManager.Subscribe(event.TypeCursorMoved, a.handleCursorMoved)
	a.eventManager.Subscribe(event.TypeSelectionChanged, a.handleSelectionChanged)

	a.resize()
	a.statusBar.SetFileInfo(buf.FilePath(), buf.IsModified())
	a.statusBar.SetCursorInfo(0, core.ClickIdle.String())
	return a, nil
}

// Run polls events until quit.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	a.statusBar.SetTemporaryMessage("Ctrl+S Save | Ctrl+Z/Ctrl+Y Undo/Redo | Ctrl+Q Quit")
	a.draw()

	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return nil
		}
		if !a.HandleEvent(ev) {
			a.eventManager.Dispatch(event.TypeAppQuit, nil)
			return nil
		}
		a.draw()
	}
}

// HandleEvent applies one terminal event. It returns false when the app should quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	before := a.snapshot()
	edited := false

	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.GetScreen().Sync()
		a.resize()
	case *tcell.EventKey:
		var quit bool
		edited, quit = a.handleKey(ev)
		if quit {
			return false
		}
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}

	a.notify(before, edited)
	return true
}

// Editor and Buffer expose the hosted engine and its text.
func (a *App) Editor() *core.Editor { return a.editor }

func (a *App) Buffer() *buffer.TextBuffer { return a.buffer }

func (a *App) resize() {
	width, height := a.tuiManager.Size()
	a.field = tui.Field{
		Width:   width,
		Height:  height - config.StatusBarHeight,
		ScrollY: a.field.ScrollY,
	}
}

func (a *App) draw() {
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()

	a.field.ScrollTo(a.layout, a.editor.Cursor())
	a.field.Draw(screen, a.layout, a.editor, a.activeTheme)
	a.statusBar.Draw(screen, width, height, a.activeTheme)
	a.tuiManager.Show()
}

// save writes the buffer back to its file.
func (a *App) save() {
	if err := a.buffer.Save(""); err != nil {
		logger.Errorf("App: save failed: %v", err)
		a.statusBar.SetTemporaryMessage("Save failed: %v", err)
		return
	}
	a.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: a.buffer.FilePath()})
}
