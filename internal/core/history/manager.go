package history

import (
	"github.com/bethropolis/editbox/internal/buffer"
	"github.com/bethropolis/editbox/internal/logger"
)

// Manager holds the undo and redo stacks. A command lives on exactly one
// stack at a time; Undo and Redo move it across.
type Manager struct {
	undo       []Command
	redo       []Command
	maxHistory int // 0 means unlimited
}

// NewManager creates a history manager. maxHistory <= 0 keeps every edit.
func NewManager(maxHistory int) *Manager {
	if maxHistory < 0 {
		maxHistory = 0
	}
	return &Manager{maxHistory: maxHistory}
}

// Record pushes an already applied command onto the undo stack.
// It does not touch the redo stack; callers clear it before editing.
func (m *Manager) Record(cmd Command) {
	m.undo = append(m.undo, cmd)

	if m.maxHistory > 0 && len(m.undo) > m.maxHistory {
		// Oldest edits fall off first
		dropped := len(m.undo) - m.maxHistory
		m.undo = append(m.undo[:0:0], m.undo[dropped:]...)
	}

	logger.DebugTagf("history", "Recorded %v. Undo: %d, Redo: %d", cmd.Kind, len(m.undo), len(m.redo))
}

// ClearRedo drops every pending redo entry.
func (m *Manager) ClearRedo() {
	m.redo = m.redo[:0]
}

// Undo reverts the most recent command. Returns false if there was nothing to undo.
func (m *Manager) Undo(cursor *int, buf buffer.Buffer) bool {
	if len(m.undo) == 0 {
		logger.DebugTagf("history", "Nothing to undo.")
		return false
	}

	cmd := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]

	cmd.Unapply(cursor, buf)
	m.redo = append(m.redo, cmd)

	logger.DebugTagf("history", "Undid %v, cursor now %d", cmd.Kind, *cursor)
	return true
}

// Redo reapplies the most recently undone command.
func (m *Manager) Redo(cursor *int, buf buffer.Buffer) bool {
	if len(m.redo) == 0 {
		logger.DebugTagf("history", "Nothing to redo.")
		return false
	}

	cmd := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]

	cmd.Apply(cursor, buf)
	m.undo = append(m.undo, cmd)

	logger.DebugTagf("history", "Redid %v, cursor now %d", cmd.Kind, *cursor)
	return true
}

// Clear resets both stacks. Call this when the host swaps the buffer.
func (m *Manager) Clear() {
	m.undo = m.undo[:0]
	m.redo = m.redo[:0]
	logger.DebugTagf("history", "Cleared.")
}

// CanUndo reports whether there is an edit to undo.
func (m *Manager) CanUndo() bool { return len(m.undo) > 0 }

// CanRedo reports whether there is an undone edit to redo.
func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

// UndoLen returns the depth of the undo stack.
func (m *Manager) UndoLen() int { return len(m.undo) }

// RedoLen returns the depth of the redo stack.
func (m *Manager) RedoLen() int { return len(m.redo) }
