package app

import (
	"github.com/bethropolis/editbox/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// handleKey maps a key press to editor operations.
func (a *App) handleKey(ev *tcell.EventKey) (edited, quit bool) {
	ed, buf := a.editor, a.buffer
	extend := ev.Modifiers()&tcell.ModShift != 0
	word := ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0

	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return false, true
	case tcell.KeyEscape:
		ed.Deselect()

	case tcell.KeyRune:
		a.typeText(string(ev.Rune()))
		return true, false
	case tcell.KeyEnter:
		a.typeText("\n")
		return true, false
	case tcell.KeyTab:
		a.typeText("\t")
		return true, false

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if ed.HasSelection() {
			ed.DeleteSelected(buf)
		} else {
			ed.DeleteCurrentCharacter(buf)
		}
		return true, false
	case tcell.KeyDelete:
		if ed.HasSelection() {
			ed.DeleteSelected(buf)
		} else {
			ed.DeleteNextCharacter(buf)
		}
		return true, false

	case tcell.KeyLeft:
		if word {
			ed.MoveCursorPrevWord(buf, extend)
		} else {
			ed.MoveCursor(buf, -1, extend)
		}
	case tcell.KeyRight:
		if word {
			ed.MoveCursorNextWord(buf, extend)
		} else {
			ed.MoveCursor(buf, 1, extend)
		}
	case tcell.KeyUp:
		a.moveVertical(-1, extend)
	case tcell.KeyDown:
		a.moveVertical(1, extend)
	case tcell.KeyHome:
		ed.MoveCursor(buf, a.lineStart()-ed.Cursor(), extend)
	case tcell.KeyEnd:
		ed.MoveCursorWithinLine(buf, ed.FindLineEnd(buf), extend)

	case tcell.KeyCtrlA:
		ed.SelectAll(buf)
	case tcell.KeyCtrlZ:
		ed.Undo(buf)
		return true, false
	case tcell.KeyCtrlY:
		ed.Redo(buf)
		return true, false
	case tcell.KeyCtrlC:
		a.copySelection()
	case tcell.KeyCtrlX:
		if a.copySelection() {
			ed.DeleteSelected(buf)
			return true, false
		}
	case tcell.KeyCtrlV:
		text, err := a.clipboard.ReadAll()
		if err != nil {
			logger.Warnf("App: paste failed: %v", err)
			a.statusBar.SetTemporaryMessage("Paste failed: %v", err)
			return false, false
		}
		if text != "" {
			a.typeText(text)
			return true, false
		}
	case tcell.KeyCtrlS:
		a.save()
	}
	return false, false
}

// typeText replaces the selection, if any, with text.
func (a *App) typeText(text string) {
	ed, buf := a.editor, a.buffer
	if ed.HasSelection() {
		ed.DeleteSelected(buf)
	}
	runes := []rune(text)
	if len(runes) == 1 {
		ed.InsertCharacter(buf, runes[0])
		return
	}
	ed.InsertString(buf, text)
}

// copySelection puts the selected text on the clipboard.
func (a *App) copySelection() bool {
	text, ok := a.editor.SelectedText(a.buffer)
	if !ok || text == "" {
		return false
	}
	if err := a.clipboard.WriteAll(text); err != nil {
		logger.Warnf("App: copy failed: %v", err)
		a.statusBar.SetTemporaryMessage("Copy failed: %v", err)
		return false
	}
	return true
}

// lineStart is the offset of the first character on the cursor's line.
func (a *App) lineStart() int {
	start, _ := a.layout.Line(a.layout.LineOf(a.editor.Cursor()))
	return start
}

// moveVertical keeps the screen column while changing line.
func (a *App) moveVertical(lines int, extend bool) {
	cursor := a.editor.Cursor()
	line := a.layout.LineOf(cursor) + lines
	if line < 0 || line >= a.layout.LineCount() {
		return
	}
	target := a.layout.OffsetAt(line, a.layout.ColumnOf(cursor))
	a.editor.MoveCursor(a.buffer, target-cursor, extend)
}

// handleMouse feeds button 1 presses, drags and releases to the click
// state machine, and scrolls on the wheel.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		if a.field.ScrollY > 0 {
			a.field.ScrollY--
		}
		return
	case buttons&tcell.WheelDown != 0:
		if a.field.ScrollY < a.layout.LineCount()-1 {
			a.field.ScrollY++
		}
		return
	}

	x, y := ev.Position()
	offset := a.field.OffsetAt(a.layout, x, y)

	if buttons&tcell.Button1 != 0 {
		if !a.mouseDown {
			a.mouseDown = true
			a.editor.ClickDown(ev.When().Sub(a.start).Seconds(), a.buffer, offset)
		} else {
			a.editor.ClickMove(a.buffer, offset)
		}
		return
	}
	if a.mouseDown {
		a.mouseDown = false
		a.editor.ClickUp(a.buffer)
	}
}
