// Package theme maps the text field's style names to tcell styles.
package theme

import (
	"github.com/bethropolis/editbox/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names the field drawing looks up.
const (
	StyleDefault   = "Default"
	StyleSelection = "Selection"
	StyleCursor    = "Cursor"
	StyleStatusBar = "StatusBar"
	StyleModified  = "StatusBar.Modified"
	StyleMessage   = "StatusBar.Message"
)

// Theme is a named set of styles.
type Theme struct {
	Name   string
	Styles map[string]tcell.Style
}

// GetStyle returns the named style, falling back to the part before the
// first dot and then to Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}
	for i := 0; i < len(name); i++ {
		if name[i] == '.' {
			if style, ok := t.Styles[name[:i]]; ok {
				return style
			}
			break
		}
	}
	if style, ok := t.Styles[StyleDefault]; ok {
		return style
	}
	logger.Warnf("Theme '%s': style '%s' and 'Default' missing, using tcell default", t.Name, name)
	return tcell.StyleDefault
}

// Default returns the built-in theme.
func Default() *Theme {
	fg := tcell.NewHexColor(0xc5cdd9)
	bar := tcell.NewHexColor(0x2a2f38)
	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(fg)

	return &Theme{
		Name: "Default",
		Styles: map[string]tcell.Style{
			StyleDefault:   base,
			StyleSelection: base.Reverse(true),
			StyleCursor:    base.Underline(true),
			StyleStatusBar: tcell.StyleDefault.Background(bar).Foreground(fg),
			StyleModified:  tcell.StyleDefault.Background(bar).Foreground(tcell.NewHexColor(0xe5c07b)).Bold(true),
			StyleMessage:   tcell.StyleDefault.Background(bar).Foreground(tcell.ColorWhite).Bold(true),
		},
	}
}
