// internal/theme/loader.go
package theme

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/editbox/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// TomlStyleDef is one style entry in a theme file. Pointers mark unset values.
type TomlStyleDef struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// TomlTheme is the layout of a theme file.
type TomlTheme struct {
	Name   string                  `toml:"name"`
	Styles map[string]TomlStyleDef `toml:"styles"`
}

// LoadFile parses a TOML theme. Styles missing from the file are taken from
// the built-in theme; the others inherit unset attributes from Default.
func LoadFile(filePath string) (*Theme, error) {
	var tomlTheme TomlTheme
	metadata, err := toml.DecodeFile(filePath, &tomlTheme)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Theme file '%s': unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	if tomlTheme.Name == "" {
		tomlTheme.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	t := Default()
	t.Name = tomlTheme.Name

	base := t.Styles[StyleDefault]
	if def, ok := tomlTheme.Styles[StyleDefault]; ok {
		if base, err = convertTomlStyle(def, tcell.StyleDefault); err != nil {
			return nil, fmt.Errorf("theme '%s': style 'Default': %w", t.Name, err)
		}
		t.Styles[StyleDefault] = base
	}

	for name, def := range tomlTheme.Styles {
		if name == StyleDefault {
			continue
		}
		style, err := convertTomlStyle(def, base)
		if err != nil {
			logger.Warnf("Theme '%s': skipping style '%s': %v", t.Name, name, err)
			continue
		}
		t.Styles[name] = style
	}

	logger.Debugf("Loaded theme '%s' from '%s'", t.Name, filePath)
	return t, nil
}

func convertTomlStyle(def TomlStyleDef, style tcell.Style) (tcell.Style, error) {
	if def.Fg != nil {
		color, err := parseColor(*def.Fg)
		if err != nil {
			return style, fmt.Errorf("invalid foreground color: %w", err)
		}
		style = style.Foreground(color)
	}
	if def.Bg != nil {
		color, err := parseColor(*def.Bg)
		if err != nil {
			return style, fmt.Errorf("invalid background color: %w", err)
		}
		style = style.Background(color)
	}
	if def.Bold != nil {
		style = style.Bold(*def.Bold)
	}
	if def.Underline != nil {
		style = style.Underline(*def.Underline)
	}
	if def.Reverse != nil {
		style = style.Reverse(*def.Reverse)
	}
	return style, nil
}

// parseColor accepts #RRGGBB, "reset", "default" and tcell color names.
func parseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "#"):
		if len(s) != 7 {
			return tcell.ColorDefault, fmt.Errorf("'%s' must be #RRGGBB", s)
		}
		val, err := strconv.ParseInt(s[1:], 16, 32)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid hex value '%s': %w", s, err)
		}
		return tcell.NewHexColor(int32(val)), nil
	case s == "reset":
		return tcell.ColorReset, nil
	case s == "default":
		return tcell.ColorDefault, nil
	}
	if color, ok := tcell.ColorNames[s]; ok {
		return color, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color '%s'", s)
}
