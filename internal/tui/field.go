package tui

import (
	"github.com/bethropolis/editbox/internal/core"
	"github.com/bethropolis/editbox/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// Field is the on-screen rectangle showing the editor's text. It only
// translates between screen cells and buffer offsets; the editor owns
// cursor and selection.
type Field struct {
	X, Y          int
	Width, Height int
	ScrollY       int // Top visible line
}

// OffsetAt maps a screen cell to a buffer offset, clamping cells outside the field.
func (f *Field) OffsetAt(layout Layout, sx, sy int) int {
	line := f.ScrollY + sy - f.Y
	if line < 0 {
		line = 0
	}
	if line >= layout.LineCount() {
		line = layout.LineCount() - 1
	}
	return layout.OffsetAt(line, sx-f.X)
}

// ScrollTo adjusts ScrollY so the line holding offset is visible.
func (f *Field) ScrollTo(layout Layout, offset int) {
	if f.Height <= 0 {
		return
	}
	line := layout.LineOf(offset)
	if line < f.ScrollY {
		f.ScrollY = line
	} else if line >= f.ScrollY+f.Height {
		f.ScrollY = line - f.Height + 1
	}
}

// Draw paints the visible lines, highlighting the selection and placing the
// terminal cursor.
func (f *Field) Draw(screen tcell.Screen, layout Layout, ed *core.Editor, th *theme.Theme) {
	defStyle := th.GetStyle(theme.StyleDefault)
	selStyle := th.GetStyle(theme.StyleSelection)

	for row := 0; row < f.Height; row++ {
		y := f.Y + row
		for x := f.X; x < f.X+f.Width; x++ {
			screen.SetContent(x, y, ' ', nil, defStyle)
		}

		line := f.ScrollY + row
		if line >= layout.LineCount() {
			continue
		}
		start, end := layout.Line(line)

		x := f.X
		offset := start
		rest := layout.buf[start:end]
		state := -1
		for len(rest) > 0 && x < f.X+f.Width {
			var cluster []byte
			var width int
			cluster, rest, width, state = nextCluster(rest, state)

			style := defStyle
			if ed.InSelectedRange(offset) {
				style = selStyle
			}
			runes := []rune(string(cluster))
			if runes[0] == '\t' {
				runes = []rune{' '}
			}
			screen.SetContent(x, y, runes[0], runes[1:], style)

			x += width
			offset += len(cluster)
		}

		// A selected newline shows as one highlighted cell past the line end
		if end < len(layout.buf) && ed.InSelectedRange(end) && x < f.X+f.Width {
			screen.SetContent(x, y, ' ', nil, selStyle)
		}
	}

	cursor := ed.Cursor()
	line := layout.LineOf(cursor)
	if line >= f.ScrollY && line < f.ScrollY+f.Height {
		screen.ShowCursor(f.X+layout.ColumnOf(cursor), f.Y+line-f.ScrollY)
	} else {
		screen.HideCursor()
	}
}
