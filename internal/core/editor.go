// internal/core/editor.go
package core

import (
	"github.com/bethropolis/editbox/internal/buffer"
	"github.com/bethropolis/editbox/internal/core/history"
	"github.com/bethropolis/editbox/internal/core/selection"
	"github.com/bethropolis/editbox/internal/core/text"
	"github.com/bethropolis/editbox/internal/logger"
)

// DoubleClickTime is the longest gap, in host clock seconds, between two
// clicks at the same offset that still counts as a repeat click.
const DoubleClickTime = 0.5

// Editor is the editing state of one text field. It never holds the text;
// every operation receives the host-owned buffer.
type Editor struct {
	cursor int

	// --- Selection State ---
	selecting bool
	selection selection.Selection

	history *history.Manager

	// --- Click State ---
	click           ClickState
	clicksCounter   int
	lastClickTime   float64
	lastClick       int
	clicked         bool // False until the first ClickDown
	doubleClickTime float64
}

// Option configures an Editor.
type Option func(*Editor)

// WithDoubleClickTime overrides DoubleClickTime. Non-positive values are ignored.
func WithDoubleClickTime(seconds float64) Option {
	return func(e *Editor) {
		if seconds > 0 {
			e.doubleClickTime = seconds
		}
	}
}

// WithHistoryLimit caps the undo stack depth. Zero keeps every edit.
func WithHistoryLimit(limit int) Option {
	return func(e *Editor) {
		e.history = history.NewManager(limit)
	}
}

// NewEditor creates an Editor with the cursor at offset 0 and empty history.
func NewEditor(opts ...Option) *Editor {
	e := &Editor{
		history:         history.NewManager(0),
		doubleClickTime: DoubleClickTime,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Cursor returns the cursor byte offset.
func (e *Editor) Cursor() int {
	return e.cursor
}

// SetCursor places the cursor at offset, clamped to the buffer and aligned
// back onto a scalar boundary. Selection and history are untouched.
func (e *Editor) SetCursor(buf buffer.Buffer, offset int) {
	data := buf.Bytes()
	if offset < 0 {
		offset = 0
	}
	e.cursor = text.AlignBackward(data, offset)
}

// Selection returns the active selection, if any.
func (e *Editor) Selection() (selection.Selection, bool) {
	return e.selection, e.selecting
}

// HasSelection returns true if there is an active selection.
func (e *Editor) HasSelection() bool {
	return e.selecting
}

func (e *Editor) setSelection(anchor, head int) {
	e.selection = selection.New(anchor, head)
	e.selecting = true
}

// clearSelection drops the selection but leaves the click state alone.
func (e *Editor) clearSelection() {
	e.selecting = false
	e.selection = selection.Selection{}
}

// SelectedText returns the selected substring of buf.
func (e *Editor) SelectedText(buf buffer.Buffer) (string, bool) {
	if !e.selecting {
		return "", false
	}
	return e.selection.Text(buf.Bytes()), true
}

// InSelectedRange reports whether offset lies in the half-open selection range.
func (e *Editor) InSelectedRange(offset int) bool {
	return e.selecting && e.selection.Contains(offset)
}

// CanUndo reports whether Undo would change anything.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether Redo would change anything.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// --- Editing ---

// beginEdit is the preamble every history-mutating edit shares.
func (e *Editor) beginEdit() {
	e.history.ClearRedo()
	e.clearSelection()
}

func (e *Editor) execute(cmd history.Command, buf buffer.Buffer) {
	cmd.Apply(&e.cursor, buf)
	e.history.Record(cmd)
}

// InsertCharacter inserts ch at the cursor and moves the cursor past it.
func (e *Editor) InsertCharacter(buf buffer.Buffer, ch rune) {
	e.beginEdit()
	e.execute(history.NewInsertCharacter(e.cursor, ch), buf)
}

// InsertString inserts s at the cursor and moves the cursor past it.
func (e *Editor) InsertString(buf buffer.Buffer, s string) {
	e.beginEdit()
	e.execute(history.NewInsertString(e.cursor, s), buf)
}

// DeleteSelected removes the selected text, if any, and always clears the selection.
func (e *Editor) DeleteSelected(buf buffer.Buffer) {
	e.history.ClearRedo()

	if e.selecting {
		e.execute(history.NewDeleteRange(buf, e.selection.Anchor, e.selection.Head), buf)
	}
	e.clearSelection()
}

// DeleteNextCharacter removes the character under the cursor (forward delete).
func (e *Editor) DeleteNextCharacter(buf buffer.Buffer) {
	e.beginEdit()

	if cmd, ok := history.NewDeleteCharacter(e.cursor, buf); ok {
		e.execute(cmd, buf)
	}
}

// DeleteCurrentCharacter removes the character before the cursor (backspace).
func (e *Editor) DeleteCurrentCharacter(buf buffer.Buffer) {
	if e.cursor <= 0 {
		return
	}
	e.cursor = text.PrevBoundary(buf.Bytes(), e.cursor)
	e.DeleteNextCharacter(buf)
}

// Undo reverts the last edit. No-op when there is nothing to undo.
func (e *Editor) Undo(buf buffer.Buffer) {
	if e.history.Undo(&e.cursor, buf) {
		logger.DebugTagf("core", "Undo: cursor at %d", e.cursor)
	}
}

// Redo reapplies the last undone edit. No-op when there is nothing to redo.
func (e *Editor) Redo(buf buffer.Buffer) {
	if e.history.Redo(&e.cursor, buf) {
		logger.DebugTagf("core", "Redo: cursor at %d", e.cursor)
	}
}

// ResetHistory drops both history stacks, e.g. after the host reloads the buffer.
func (e *Editor) ResetHistory() {
	e.history.Clear()
}
