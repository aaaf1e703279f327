package core

import (
	"github.com/bethropolis/editbox/internal/buffer"
	"github.com/bethropolis/editbox/internal/core/text"
)

// --- Cursor movement ---

// MoveCursor moves the cursor by delta bytes, clamped to the buffer and
// pushed further in the direction of travel until it sits on a scalar
// boundary. With extend the selection head follows the cursor and the
// anchor stays; without it the selection is dropped.
func (e *Editor) MoveCursor(buf buffer.Buffer, delta int, extend bool) {
	data := buf.Bytes()
	start := e.cursor

	target := start + delta
	if target < 0 {
		target = 0
	}
	if target > len(data) {
		target = len(data)
	}
	switch {
	case delta > 0:
		target = text.AlignForward(data, target)
	case delta < 0:
		target = text.AlignBackward(data, target)
	}
	e.cursor = target

	if !extend {
		e.clearSelection()
		return
	}
	if !e.selecting {
		e.setSelection(start, target)
		return
	}
	e.selection.Head = target
}

// MoveCursorNextWord jumps to the first character of the next word.
func (e *Editor) MoveCursorNextWord(buf buffer.Buffer, extend bool) {
	distance := text.FindWordEnd(buf.Bytes(), e.cursor+1) + 1
	e.MoveCursor(buf, distance, extend)
}

// MoveCursorPrevWord jumps back to the previous word boundary.
func (e *Editor) MoveCursorPrevWord(buf buffer.Buffer, extend bool) {
	if e.cursor <= 1 {
		return
	}
	distance := text.FindWordBegin(buf.Bytes(), e.cursor-1) + 1
	e.MoveCursor(buf, -distance, extend)
}

// MoveCursorWithinLine advances up to count characters, stopping at a
// newline or the end of the buffer. Negative counts are ignored.
func (e *Editor) MoveCursorWithinLine(buf buffer.Buffer, count int, extend bool) {
	for i := 0; i < count; i++ {
		data := buf.Bytes()
		if e.cursor >= len(data) || data[e.cursor] == '\n' {
			break
		}
		e.MoveCursor(buf, 1, extend)
	}
}

// FindLineBegin returns the distance from the cursor back to its line start.
func (e *Editor) FindLineBegin(buf buffer.Buffer) int {
	return text.FindLineBegin(buf.Bytes(), e.cursor)
}

// FindLineEnd returns the distance from the cursor forward to its line end.
func (e *Editor) FindLineEnd(buf buffer.Buffer) int {
	return text.FindLineEnd(buf.Bytes(), e.cursor)
}

// --- Selection ---

// SelectAll selects the whole buffer and ends any click session.
func (e *Editor) SelectAll(buf buffer.Buffer) {
	e.setSelection(0, buf.Len())
	e.click = ClickState{}
}

// Deselect clears the selection and resets the click state to idle.
func (e *Editor) Deselect() {
	e.click = ClickState{}
	e.clearSelection()
}

// SelectWord selects the word around the cursor and returns its bounds.
func (e *Editor) SelectWord(buf buffer.Buffer) (from, to int) {
	data := buf.Bytes()
	from = e.cursor - text.FindWordBegin(data, e.cursor)
	to = e.cursor + text.FindWordEnd(data, e.cursor)

	e.setSelection(from, to)
	return from, to
}

// SelectLine selects the line around the cursor and returns its bounds.
func (e *Editor) SelectLine(buf buffer.Buffer) (from, to int) {
	from = e.cursor - e.FindLineBegin(buf)
	to = e.cursor + e.FindLineEnd(buf)

	e.setSelection(from, to)
	return from, to
}
