package statusbar

import (
	"strings"
	"testing"
	"time"
)

func TestText(t *testing.T) {
	sb := New()
	sb.SetCursorInfo(12, "Settled")

	text, isMessage := sb.Text(time.Now())
	if isMessage {
		t.Error("isMessage = true without a message")
	}
	if want := "[No Name] -- Offset: 12 -- Settled"; text != want {
		t.Errorf("Text() = %q, want %q", text, want)
	}

	sb.SetFileInfo("notes.txt", true)
	sb.SetSelection(true, 3, 9)
	text, _ = sb.Text(time.Now())
	for _, want := range []string{"notes.txt [Modified]", "Sel: 3-9"} {
		if !strings.Contains(text, want) {
			t.Errorf("Text() = %q, missing %q", text, want)
		}
	}
}

func TestTemporaryMessageExpires(t *testing.T) {
	sb := New()
	sb.SetTemporaryMessage("Saved %s", "notes.txt")

	text, isMessage := sb.Text(time.Now())
	if !isMessage || text != "Saved notes.txt" {
		t.Errorf("Text() = (%q, %v), want message", text, isMessage)
	}

	_, isMessage = sb.Text(time.Now().Add(MessageTimeout + time.Second))
	if isMessage {
		t.Error("message still shown after MessageTimeout")
	}
	if _, isMessage = sb.Text(time.Now()); isMessage {
		t.Error("expired message came back")
	}
}
