package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/editbox/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// MessageTimeout is how long a temporary message stays visible.
const MessageTimeout = 4 * time.Second

// StatusBar is the bottom line showing file, cursor and selection info.
type StatusBar struct {
	mu sync.RWMutex

	filePath   string
	isModified bool
	cursor     int
	selStart   int
	selEnd     int
	selecting  bool
	clickMode  string

	tempMessage     string
	tempMessageTime time.Time
}

func New() *StatusBar {
	return &StatusBar{}
}

// SetFileInfo updates the file path and modified flag.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the cursor offset and click mode shown.
func (sb *StatusBar) SetCursorInfo(cursor int, clickMode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursor = cursor
	sb.clickMode = clickMode
}

// SetSelection updates the selection range shown; active false hides it.
func (sb *StatusBar) SetSelection(active bool, start, end int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.selecting, sb.selStart, sb.selEnd = active, start, end
}

// SetTemporaryMessage displays a message for MessageTimeout.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// Text returns the line to display and whether it is a temporary message.
func (sb *StatusBar) Text(now time.Time) (string, bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.tempMessageTime.IsZero() {
		if now.Sub(sb.tempMessageTime) <= MessageTimeout {
			return sb.tempMessage, true
		}
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	path := sb.filePath
	if path == "" {
		path = "[No Name]"
	}
	modified := ""
	if sb.isModified {
		modified = " [Modified]"
	}
	sel := ""
	if sb.selecting {
		sel = fmt.Sprintf(" -- Sel: %d-%d", sb.selStart, sb.selEnd)
	}
	return fmt.Sprintf("%s%s -- Offset: %d%s -- %s", path, modified, sb.cursor, sel, sb.clickMode), false
}

// Draw renders the status bar on the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, th *theme.Theme) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	text, isMessage := sb.Text(time.Now())
	style := th.GetStyle(theme.StyleStatusBar)
	if isMessage {
		style = th.GetStyle(theme.StyleMessage)
	} else if sb.modified() {
		style = th.GetStyle(theme.StyleModified)
	}

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	x := 0
	for gr.Next() {
		w := gr.Width()
		if x+w > width {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
}

func (sb *StatusBar) modified() bool {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.isModified
}
