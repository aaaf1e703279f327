// internal/buffer/text_buffer.go
package buffer

import (
	"errors"
	"fmt"
	"os"
)

// TextBuffer is a flat byte-slice Buffer optionally backed by a file.
type TextBuffer struct {
	data     []byte
	filePath string
	modified bool // Track if buffer has unsaved changes
}

// NewTextBuffer creates a buffer holding a copy of text.
func NewTextBuffer(text string) *TextBuffer {
	return &TextBuffer{data: []byte(text)}
}

// Load reads a file into the buffer, replacing existing content.
// A missing file yields an empty buffer bound to that path.
func (tb *TextBuffer) Load(filePath string) error {
	tb.modified = false

	content, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			tb.data = tb.data[:0]
			tb.filePath = filePath
			return nil
		}
		return fmt.Errorf("failed to read file '%s': %w", filePath, err)
	}
	tb.data = content
	tb.filePath = filePath
	return nil
}

// Save writes the buffer to filePath, or to the loaded path if empty.
func (tb *TextBuffer) Save(filePath string) error {
	path := tb.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}

	if err := os.WriteFile(path, tb.data, 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}
	tb.filePath = path
	tb.modified = false
	return nil
}

func (tb *TextBuffer) Bytes() []byte { return tb.data }

func (tb *TextBuffer) Len() int { return len(tb.data) }

func (tb *TextBuffer) String() string { return string(tb.data) }

func (tb *TextBuffer) FilePath() string { return tb.filePath }

// IsModified returns true if the buffer has unsaved changes.
func (tb *TextBuffer) IsModified() bool { return tb.modified }

// Insert places text at offset. The offset is not checked for scalar alignment.
func (tb *TextBuffer) Insert(offset int, text []byte) error {
	if offset < 0 || offset > len(tb.data) {
		return fmt.Errorf("insert at %d (len %d): %w", offset, len(tb.data), ErrOutOfRange)
	}
	if len(text) == 0 {
		return nil
	}

	grown := make([]byte, 0, len(tb.data)+len(text))
	grown = append(grown, tb.data[:offset]...)
	grown = append(grown, text...)
	grown = append(grown, tb.data[offset:]...)
	tb.data = grown
	tb.modified = true
	return nil
}

// Delete removes [start, end). The bounds may be given in either order.
func (tb *TextBuffer) Delete(start, end int) error {
	if start > end {
		start, end = end, start
	}
	if start < 0 || end > len(tb.data) {
		return fmt.Errorf("delete [%d, %d) (len %d): %w", start, end, len(tb.data), ErrOutOfRange)
	}
	if start == end {
		return nil
	}

	tb.data = append(tb.data[:start], tb.data[end:]...)
	tb.modified = true
	return nil
}

// Ensure TextBuffer satisfies the Buffer interface
var _ Buffer = (*TextBuffer)(nil)
