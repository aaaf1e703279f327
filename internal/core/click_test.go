package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bethropolis/editbox/internal/buffer"
	"github.com/bethropolis/editbox/internal/core/selection"
)

func TestClickCycling(t *testing.T) {
	buf := buffer.NewTextBuffer("hello world\nsecond line")
	ed := NewEditor()

	steps := []struct {
		time      float64
		wantState ClickState
		wantSel   *selection.Selection
	}{
		{0.0, ClickState{Mode: ClickSelectingChars, Anchor: 2}, &selection.Selection{Anchor: 2, Head: 2}},
		{0.1, ClickState{Mode: ClickSelectingWords, From: 0, To: 6}, &selection.Selection{Anchor: 0, Head: 6}},
		{0.2, ClickState{Mode: ClickSelectingLines, From: 0, To: 11}, &selection.Selection{Anchor: 0, Head: 11}},
		{0.3, ClickState{Mode: ClickIdle}, nil},
		{0.4, ClickState{Mode: ClickSelectingWords, From: 0, To: 6}, &selection.Selection{Anchor: 0, Head: 6}},
	}

	for i, step := range steps {
		ed.ClickDown(step.time, buf, 2)

		if diff := cmp.Diff(step.wantState, ed.ClickState()); diff != "" {
			t.Errorf("click %d state (-want +got):\n%s", i, diff)
		}
		sel, ok := ed.Selection()
		if step.wantSel == nil {
			if ok {
				t.Errorf("click %d: selection %+v, want none", i, sel)
			}
			continue
		}
		if diff := cmp.Diff(*step.wantSel, sel); !ok || diff != "" {
			t.Errorf("click %d selection (-want +got):\n%s", i, diff)
		}
	}
	if ed.ClickCount() != 4 {
		t.Errorf("ClickCount() = %d, want 4", ed.ClickCount())
	}
}

func TestClickOutsideDoubleClickTime(t *testing.T) {
	buf := buffer.NewTextBuffer("hello world")
	ed := NewEditor()

	ed.ClickDown(0, buf, 2)
	ed.ClickUp(buf)
	if ed.HasSelection() {
		t.Error("zero-width click left a selection")
	}
	if ed.ClickState().Mode != ClickIdle {
		t.Errorf("mode = %v, want Idle", ed.ClickState().Mode)
	}

	ed.ClickDown(DoubleClickTime+0.1, buf, 2)
	if diff := cmp.Diff(ClickState{Mode: ClickSelectingChars, Anchor: 2}, ed.ClickState()); diff != "" {
		t.Errorf("state (-want +got):\n%s", diff)
	}
	if ed.ClickCount() != 0 {
		t.Errorf("ClickCount() = %d, want 0", ed.ClickCount())
	}
}

func TestClickDoubleClickTimeOption(t *testing.T) {
	buf := buffer.NewTextBuffer("hello world")
	ed := NewEditor(WithDoubleClickTime(2))

	ed.ClickDown(0, buf, 2)
	ed.ClickUp(buf)
	ed.ClickDown(1.5, buf, 2)
	if ed.ClickState().Mode != ClickSelectingWords {
		t.Errorf("mode = %v, want SelectingWords", ed.ClickState().Mode)
	}
}

func TestClickDownWithoutRelease(t *testing.T) {
	buf := buffer.NewTextBuffer("hello world")
	ed := NewEditor()

	ed.ClickDown(0, buf, 2)
	ed.ClickDown(1, buf, 5)
	if ed.ClickState().Mode != ClickIdle {
		t.Errorf("mode = %v, want Idle", ed.ClickState().Mode)
	}
	if ed.HasSelection() {
		t.Error("stale session left a selection")
	}
	if ed.Cursor() != 5 {
		t.Errorf("cursor = %d, want 5", ed.Cursor())
	}
}

func TestClickDragChars(t *testing.T) {
	buf := buffer.NewTextBuffer("hello world")
	ed := NewEditor()

	ed.ClickDown(0, buf, 2)
	ed.ClickMove(buf, 7)
	if diff := cmp.Diff(selection.New(2, 7), selectionOf(t, ed)); diff != "" {
		t.Errorf("selection (-want +got):\n%s", diff)
	}
	if ed.Cursor() != 7 {
		t.Errorf("cursor = %d, want 7", ed.Cursor())
	}

	ed.ClickUp(buf)
	if ed.ClickState().Mode != ClickSettled {
		t.Errorf("mode = %v, want Settled", ed.ClickState().Mode)
	}
	if got, _ := ed.SelectedText(buf); got != "llo w" {
		t.Errorf("SelectedText() = %q, want %q", got, "llo w")
	}

	// A new press after settling starts over
	ed.ClickDown(5, buf, 4)
	if diff := cmp.Diff(ClickState{Mode: ClickSelectingChars, Anchor: 4}, ed.ClickState()); diff != "" {
		t.Errorf("state (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(selection.New(4, 4), selectionOf(t, ed)); diff != "" {
		t.Errorf("selection (-want +got):\n%s", diff)
	}
}

func TestClickDragWords(t *testing.T) {
	buf := buffer.NewTextBuffer("hello world foo")
	ed := NewEditor()

	ed.ClickDown(0, buf, 7)
	ed.ClickUp(buf)
	ed.ClickDown(0.1, buf, 7)
	if diff := cmp.Diff(ClickState{Mode: ClickSelectingWords, From: 5, To: 12}, ed.ClickState()); diff != "" {
		t.Fatalf("state (-want +got):\n%s", diff)
	}

	moves := []struct {
		offset     int
		wantSel    selection.Selection
		wantCursor int
	}{
		{13, selection.New(5, 15), 15},
		{2, selection.New(0, 12), 0},
		{8, selection.New(5, 12), 12},
	}
	for _, m := range moves {
		ed.ClickMove(buf, m.offset)
		if diff := cmp.Diff(m.wantSel, selectionOf(t, ed)); diff != "" {
			t.Errorf("move to %d selection (-want +got):\n%s", m.offset, diff)
		}
		if ed.Cursor() != m.wantCursor {
			t.Errorf("move to %d: cursor = %d, want %d", m.offset, ed.Cursor(), m.wantCursor)
		}
	}

	ed.ClickUp(buf)
	if got, _ := ed.SelectedText(buf); got != " world " {
		t.Errorf("SelectedText() = %q, want %q", got, " world ")
	}
}

func TestClickDragLines(t *testing.T) {
	buf := buffer.NewTextBuffer("ab\ncd\nef")
	ed := NewEditor()

	ed.ClickDown(0, buf, 4)
	ed.ClickDown(0.1, buf, 4)
	ed.ClickDown(0.2, buf, 4)
	if diff := cmp.Diff(ClickState{Mode: ClickSelectingLines, From: 2, To: 5}, ed.ClickState()); diff != "" {
		t.Fatalf("state (-want +got):\n%s", diff)
	}

	moves := []struct {
		offset     int
		wantSel    selection.Selection
		wantCursor int
	}{
		{7, selection.New(2, 8), 8},
		{0, selection.New(0, 5), 0},
		{3, selection.New(2, 5), 5},
	}
	for _, m := range moves {
		ed.ClickMove(buf, m.offset)
		if diff := cmp.Diff(m.wantSel, selectionOf(t, ed)); diff != "" {
			t.Errorf("move to %d selection (-want +got):\n%s", m.offset, diff)
		}
		if ed.Cursor() != m.wantCursor {
			t.Errorf("move to %d: cursor = %d, want %d", m.offset, ed.Cursor(), m.wantCursor)
		}
	}
}

func TestClickMoveResetsCounter(t *testing.T) {
	buf := buffer.NewTextBuffer("hello world")
	ed := NewEditor()

	ed.ClickDown(0, buf, 2)
	ed.ClickDown(0.1, buf, 2)
	if ed.ClickCount() != 1 {
		t.Fatalf("ClickCount() = %d, want 1", ed.ClickCount())
	}

	ed.ClickMove(buf, 3)
	if ed.ClickCount() != 0 {
		t.Errorf("ClickCount() = %d after moving, want 0", ed.ClickCount())
	}
}

func TestSelectAllEndsClickSession(t *testing.T) {
	buf := buffer.NewTextBuffer("hello")
	ed := NewEditor()

	ed.ClickDown(0, buf, 2)
	ed.SelectAll(buf)
	if ed.ClickState().Mode != ClickIdle {
		t.Errorf("mode = %v, want Idle", ed.ClickState().Mode)
	}
}

func TestClickModeString(t *testing.T) {
	if got := ClickSelectingLines.String(); got != "SelectingLines" {
		t.Errorf("String() = %q", got)
	}
	if got := ClickMode(42).String(); got != "ClickMode(42)" {
		t.Errorf("String() = %q", got)
	}
}
