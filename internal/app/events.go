package app

import (
	"github.com/bethropolis/editbox/internal/core/selection"
	"github.com/bethropolis/editbox/internal/event"
	"github.com/bethropolis/editbox/internal/logger"
	"github.com/bethropolis/editbox/internal/tui"
)

// state is what the host compares before and after an input event.
type state struct {
	cursor    int
	selecting bool
	sel       selection.Selection
}

func (a *App) snapshot() state {
	sel, ok := a.editor.Selection()
	return state{cursor: a.editor.Cursor(), selecting: ok, sel: sel}
}

// notify dispatches events for whatever changed since before.
func (a *App) notify(before state, edited bool) {
	after := a.snapshot()

	if edited {
		a.eventManager.Dispatch(event.TypeBufferModified, event.BufferModifiedData{
			Length: a.buffer.Len(),
			Cursor: after.cursor,
		})
	}
	if after.cursor != before.cursor {
		a.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{Offset: after.cursor})
	}
	if after.selecting != before.selecting || after.sel != before.sel {
		start, end := after.sel.Bounds()
		a.eventManager.Dispatch(event.TypeSelectionChanged, event.SelectionChangedData{
			Active: after.selecting,
			Start:  start,
			End:    end,
		})
	}
	a.statusBar.SetCursorInfo(after.cursor, a.editor.ClickState().Mode.String())
}

func (a *App) handleBufferModified(e event.Event) bool {
	a.layout = tui.NewLayout(a.buffer.Bytes())
	a.statusBar.SetFileInfo(a.buffer.FilePath(), a.buffer.IsModified())
	if data, ok := e.Data.(event.BufferModifiedData); ok {
		logger.DebugTagf("app", "Buffer modified: %d bytes, cursor %d", data.Length, data.Cursor)
	}
	return false
}

func (a *App) handleBufferSaved(e event.Event) bool {
	a.statusBar.SetFileInfo(a.buffer.FilePath(), a.buffer.IsModified())
	if data, ok := e.Data.(event.BufferSavedData); ok {
		a.statusBar.SetTemporaryMessage("Saved %s", data.FilePath)
	}
	return false
}

func (a *App) handleCursorMoved(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		logger.DebugTagf("app", "Cursor at %d", data.Offset)
	}
	return false
}

func (a *App) handleSelectionChanged(e event.Event) bool {
	if data, ok := e.Data.(event.SelectionChangedData); ok {
		a.statusBar.SetSelection(data.Active, data.Start, data.End)
	}
	return false
}
