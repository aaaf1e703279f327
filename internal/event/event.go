// internal/event/event.go
package event

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeBufferModified   // Text changed through an edit, undo or redo
	TypeBufferSaved      // Buffer written to disk
	TypeCursorMoved      // Cursor offset changed
	TypeSelectionChanged // Selection started, changed or cleared
	TypeAppQuit          // Fired just before the host exits
)

func (t Type) String() string {
	switch t {
	case TypeBufferModified:
		return "BufferModified"
	case TypeBufferSaved:
		return "BufferSaved"
	case TypeCursorMoved:
		return "CursorMoved"
	case TypeSelectionChanged:
		return "SelectionChanged"
	case TypeAppQuit:
		return "AppQuit"
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData describes the buffer after a change.
type BufferModifiedData struct {
	Length int
	Cursor int
}

// BufferSavedData carries the saved path.
type BufferSavedData struct {
	FilePath string
}

// CursorMovedData carries the new cursor offset.
type CursorMovedData struct {
	Offset int
}

// SelectionChangedData carries the normalized selection, Active false when cleared.
type SelectionChangedData struct {
	Active     bool
	Start, End int
}
