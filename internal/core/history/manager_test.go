package history

import (
	"testing"

	"github.com/bethropolis/editbox/internal/buffer"
)

func record(m *Manager, cursor *int, buf buffer.Buffer, cmd Command) {
	cmd.Apply(cursor, buf)
	m.Record(cmd)
}

func TestManagerUndoRedo(t *testing.T) {
	buf := buffer.NewTextBuffer("")
	m := NewManager(0)
	cursor := 0

	record(m, &cursor, buf, NewInsertCharacter(cursor, 'a'))
	record(m, &cursor, buf, NewInsertString(cursor, "bc"))

	if buf.String() != "abc" || cursor != 3 {
		t.Fatalf("setup: text %q cursor %d", buf.String(), cursor)
	}

	if !m.Undo(&cursor, buf) {
		t.Fatal("Undo() = false, want true")
	}
	if buf.String() != "a" || cursor != 1 {
		t.Errorf("after Undo: text %q cursor %d, want %q 1", buf.String(), cursor, "a")
	}
	if m.UndoLen() != 1 || m.RedoLen() != 1 {
		t.Errorf("stacks = %d/%d, want 1/1", m.UndoLen(), m.RedoLen())
	}

	if !m.Redo(&cursor, buf) {
		t.Fatal("Redo() = false, want true")
	}
	if buf.String() != "abc" || cursor != 3 {
		t.Errorf("after Redo: text %q cursor %d, want %q 3", buf.String(), cursor, "abc")
	}
	if m.CanRedo() {
		t.Error("CanRedo() = true after redoing everything")
	}
}

func TestManagerEmptyStacks(t *testing.T) {
	buf := buffer.NewTextBuffer("abc")
	m := NewManager(0)
	cursor := 2

	if m.Undo(&cursor, buf) || m.Redo(&cursor, buf) {
		t.Error("Undo/Redo on empty stacks returned true")
	}
	if cursor != 2 || buf.String() != "abc" {
		t.Errorf("state changed: text %q cursor %d", buf.String(), cursor)
	}
}

func TestManagerClearRedo(t *testing.T) {
	buf := buffer.NewTextBuffer("")
	m := NewManager(0)
	cursor := 0

	record(m, &cursor, buf, NewInsertCharacter(cursor, 'a'))
	m.Undo(&cursor, buf)
	if !m.CanRedo() {
		t.Fatal("CanRedo() = false after Undo")
	}

	m.ClearRedo()
	if m.CanRedo() {
		t.Error("CanRedo() = true after ClearRedo")
	}
	if m.CanUndo() {
		t.Error("CanUndo() = true, undo stack should be empty")
	}
}

func TestManagerHistoryLimit(t *testing.T) {
	buf := buffer.NewTextBuffer("")
	m := NewManager(2)
	cursor := 0

	for _, ch := range "abc" {
		record(m, &cursor, buf, NewInsertCharacter(cursor, ch))
	}
	if m.UndoLen() != 2 {
		t.Fatalf("UndoLen() = %d, want 2", m.UndoLen())
	}

	for m.Undo(&cursor, buf) {
	}
	// The oldest insert was evicted and stays in the buffer
	if buf.String() != "a" {
		t.Errorf("text = %q, want %q", buf.String(), "a")
	}
}

func TestManagerClear(t *testing.T) {
	buf := buffer.NewTextBuffer("")
	m := NewManager(-5)
	cursor := 0

	record(m, &cursor, buf, NewInsertCharacter(cursor, 'a'))
	record(m, &cursor, buf, NewInsertCharacter(cursor, 'b'))
	m.Undo(&cursor, buf)

	m.Clear()
	if m.CanUndo() || m.CanRedo() {
		t.Errorf("stacks = %d/%d after Clear, want 0/0", m.UndoLen(), m.RedoLen())
	}
}
