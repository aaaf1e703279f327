package core

import (
	"fmt"

	"github.com/bethropolis/editbox/internal/buffer"
	"github.com/bethropolis/editbox/internal/core/text"
	"github.com/bethropolis/editbox/internal/logger"
)

// ClickMode is the phase of a mouse selection session.
type ClickMode int

const (
	ClickIdle ClickMode = iota
	ClickSelectingChars
	ClickSelectingWords
	ClickSelectingLines
	ClickSettled // Selection made and mouse released
)

func (m ClickMode) String() string {
	switch m {
	case ClickIdle:
		return "Idle"
	case ClickSelectingChars:
		return "SelectingChars"
	case ClickSelectingWords:
		return "SelectingWords"
	case ClickSelectingLines:
		return "SelectingLines"
	case ClickSettled:
		return "Settled"
	}
	return fmt.Sprintf("ClickMode(%d)", int(m))
}

// ClickState is the current mode plus the data that mode carries.
// Anchor is set in ClickSelectingChars; From and To hold the word or line
// the session started on in ClickSelectingWords and ClickSelectingLines.
type ClickState struct {
	Mode   ClickMode
	Anchor int
	From   int
	To     int
}

// ClickState returns the gesture state.
func (e *Editor) ClickState() ClickState {
	return e.click
}

// ClickCount returns the repeat counter of the current click sequence.
func (e *Editor) ClickCount() int {
	return e.clicksCounter
}

// ClickDown handles a pointer press at offset. time is the host clock in
// seconds. A press at the same offset as the last one within the double
// click time is a repeat; repeats cycle word, line, then nothing.
func (e *Editor) ClickDown(time float64, buf buffer.Buffer, offset int) {
	e.cursor = offset

	repeat := e.clicked && e.lastClick == offset && time-e.lastClickTime < e.doubleClickTime
	if repeat {
		e.clicksCounter++
		switch e.clicksCounter % 3 {
		case 0:
			e.Deselect()
		case 1:
			from, to := e.SelectWord(buf)
			e.click = ClickState{Mode: ClickSelectingWords, From: from, To: to}
		case 2:
			from, to := e.SelectLine(buf)
			e.click = ClickState{Mode: ClickSelectingLines, From: from, To: to}
		}
	} else {
		e.clicksCounter = 0
		switch e.click.Mode {
		case ClickIdle, ClickSettled:
			e.click = ClickState{Mode: ClickSelectingChars, Anchor: offset}
			e.setSelection(offset, offset)
		default:
			// A press while a session is still open means the release was lost
			e.click = ClickState{}
			e.clearSelection()
		}
	}

	e.clicked = true
	e.lastClickTime = time
	e.lastClick = offset

	logger.DebugTagf("click", "ClickDown at %d: %v, count %d", offset, e.click.Mode, e.clicksCounter)
}

// ClickMove handles pointer motion with the button held.
func (e *Editor) ClickMove(buf buffer.Buffer, offset int) {
	e.cursor = offset

	if offset != e.lastClick {
		e.clicksCounter = 0
	}

	data := buf.Bytes()
	switch e.click.Mode {
	case ClickSelectingChars:
		e.setSelection(e.click.Anchor, offset)

	case ClickSelectingWords:
		from, to := e.click.From, e.click.To
		switch {
		case offset < from:
			wordBegin := e.cursor - text.FindWordBegin(data, e.cursor)
			e.setSelection(wordBegin, to)
			e.cursor = wordBegin
		case offset > to:
			wordEnd := e.cursor + text.FindWordEnd(data, e.cursor)
			e.setSelection(from, wordEnd)
			e.cursor = wordEnd
		default:
			// Back inside the starting word: snap to it
			e.setSelection(from, to)
			e.cursor = to
		}

	case ClickSelectingLines:
		from, to := e.click.From, e.click.To
		switch {
		case offset < from:
			lineBegin := e.cursor - text.FindLineBegin(data, e.cursor)
			e.setSelection(lineBegin, to)
			e.cursor = lineBegin
		case offset > to:
			lineEnd := e.cursor + text.FindLineEnd(data, e.cursor)
			e.setSelection(from, lineEnd)
			e.cursor = lineEnd
		default:
			e.setSelection(from, to)
			e.cursor = to
		}
	}

	e.lastClick = offset
}

// ClickUp ends the session. A non-empty selection settles; a zero-width one
// is dropped.
func (e *Editor) ClickUp(buf buffer.Buffer) {
	e.click = ClickState{}
	if !e.selecting {
		return
	}
	if e.selection.IsEmpty() {
		e.clearSelection()
		return
	}
	e.click = ClickState{Mode: ClickSettled}
	logger.DebugTagf("click", "ClickUp: settled on [%d, %d)", min(e.selection.Anchor, e.selection.Head), max(e.selection.Anchor, e.selection.Head))
}
