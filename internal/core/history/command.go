// Package history provides invertible edit commands and the undo/redo stacks
// that own them.
package history

import (
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/editbox/internal/buffer"
	"github.com/bethropolis/editbox/internal/core/text"
	"github.com/bethropolis/editbox/internal/logger"
)

// Kind identifies which mutation a Command records.
type Kind int

const (
	InsertCharacter Kind = iota
	InsertString
	DeleteCharacter
	DeleteRange
)

func (k Kind) String() string {
	switch k {
	case InsertCharacter:
		return "InsertCharacter"
	case InsertString:
		return "InsertString"
	case DeleteCharacter:
		return "DeleteCharacter"
	case DeleteRange:
		return "DeleteRange"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Command is a single reversible text mutation. Commands are plain values;
// the fields a kind does not use stay zero.
type Command struct {
	Kind   Kind
	Offset int    // Cursor offset at construction (InsertCharacter, InsertString, DeleteCharacter)
	Char   rune   // Inserted or deleted character
	Text   string // Inserted payload or deleted substring
	Start  int    // DeleteRange bounds, in the order the selection held them
	End    int
}

// NewInsertCharacter records inserting ch at cursor.
func NewInsertCharacter(cursor int, ch rune) Command {
	return Command{Kind: InsertCharacter, Offset: cursor, Char: ch}
}

// NewInsertString records inserting s at cursor.
func NewInsertString(cursor int, s string) Command {
	return Command{Kind: InsertString, Offset: cursor, Text: s}
}

// NewDeleteCharacter snapshots the character at cursor. ok is false when
// there is no character to delete there.
func NewDeleteCharacter(cursor int, buf buffer.Buffer) (cmd Command, ok bool) {
	data := buf.Bytes()
	if cursor < 0 || cursor >= len(data) || !text.IsBoundary(data, cursor) {
		return Command{}, false
	}
	ch, size := utf8.DecodeRune(data[cursor:])
	// Text keeps the raw bytes so invalid UTF-8 comes back unchanged on undo
	return Command{Kind: DeleteCharacter, Offset: cursor, Char: ch, Text: string(data[cursor : cursor+size])}, true
}

// NewDeleteRange snapshots the text between start and end, in either order.
func NewDeleteRange(buf buffer.Buffer, start, end int) Command {
	lo, hi := orderedClamp(start, end, buf.Len())
	return Command{
		Kind:  DeleteRange,
		Text:  string(buf.Bytes()[lo:hi]),
		Start: start,
		End:   end,
	}
}

// Apply performs the mutation and leaves the cursor after the affected text.
func (c Command) Apply(cursor *int, buf buffer.Buffer) {
	switch c.Kind {
	case InsertCharacter:
		*cursor = c.Offset
		if c.Offset > buf.Len() {
			*cursor = buf.Len()
			return
		}
		if !c.mutate(buf.Insert(c.Offset, utf8.AppendRune(nil, c.Char))) {
			return
		}
		*cursor = text.NextBoundary(buf.Bytes(), c.Offset)

	case InsertString:
		*cursor = c.Offset
		if c.Offset > buf.Len() {
			*cursor = buf.Len()
			return
		}
		if !c.mutate(buf.Insert(c.Offset, []byte(c.Text))) {
			return
		}
		*cursor = c.Offset + len(c.Text)

	case DeleteCharacter:
		*cursor = c.Offset
		if c.Offset < buf.Len() {
			end := min(c.Offset+len(c.deleted()), buf.Len())
			c.mutate(buf.Delete(c.Offset, end))
		}

	case DeleteRange:
		lo, hi := orderedClamp(c.Start, c.End, buf.Len())
		c.mutate(buf.Delete(lo, hi))
		*cursor = lo
	}
}

// Unapply reverts Apply and puts the cursor back where the edit started.
// Undoing a DeleteCharacter leaves the cursor after the restored character.
func (c Command) Unapply(cursor *int, buf buffer.Buffer) {
	switch c.Kind {
	case InsertCharacter:
		*cursor = c.Offset
		if c.Offset < buf.Len() {
			size := text.ScalarLen(buf.Bytes(), c.Offset)
			c.mutate(buf.Delete(c.Offset, c.Offset+size))
		}

	case InsertString:
		*cursor = c.Offset
		if c.Offset < buf.Len() {
			end := c.Offset + len(c.Text)
			if end > buf.Len() {
				end = buf.Len()
			}
			c.mutate(buf.Delete(c.Offset, end))
		}

	case DeleteCharacter:
		*cursor = c.Offset
		if c.Offset > buf.Len() {
			*cursor = buf.Len()
			return
		}
		restored := c.deleted()
		if c.mutate(buf.Insert(c.Offset, restored)) {
			*cursor = c.Offset + len(restored)
		}

	case DeleteRange:
		lo := min(c.Start, c.End)
		if lo < 0 {
			lo = 0
		}
		*cursor = lo
		if lo > buf.Len() {
			*cursor = buf.Len()
			return
		}
		c.mutate(buf.Insert(lo, []byte(c.Text)))
	}
}

// deleted returns the bytes a DeleteCharacter removes. Commands built
// without Text fall back to the encoding of Char.
func (c Command) deleted() []byte {
	if c.Text != "" {
		return []byte(c.Text)
	}
	return utf8.AppendRune(nil, c.Char)
}

// mutate reports whether a buffer call succeeded, logging the failure otherwise.
func (c Command) mutate(err error) bool {
	if err != nil {
		logger.DebugTagf("history", "%v skipped: %v", c.Kind, err)
		return false
	}
	return true
}

func orderedClamp(a, b, length int) (lo, hi int) {
	lo, hi = min(a, b), max(a, b)
	if lo < 0 {
		lo = 0
	}
	if hi > length {
		hi = length
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}
