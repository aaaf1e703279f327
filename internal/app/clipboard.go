package app

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard is where copy and cut put text and paste reads it from.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// systemClipboard talks to the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("system clipboard read: %w", err)
	}
	return text, nil
}

func (systemClipboard) WriteAll(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard write: %w", err)
	}
	return nil
}

// registerClipboard keeps text in memory, for terminals without a system clipboard.
type registerClipboard struct {
	text string
}

func (r *registerClipboard) ReadAll() (string, error) { return r.text, nil }

func (r *registerClipboard) WriteAll(text string) error {
	r.text = text
	return nil
}

// newClipboard picks the system clipboard when asked for and available.
func newClipboard(useSystem bool) Clipboard {
	if useSystem && !clipboard.Unsupported {
		return systemClipboard{}
	}
	return &registerClipboard{}
}
