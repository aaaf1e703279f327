// Package selection defines the anchor/head selection range the editor keeps.
package selection

// Selection is an ordered pair of byte offsets. Anchor stays put while the
// user extends; Head follows the cursor. Either may be the smaller one.
type Selection struct {
	Anchor int
	Head   int
}

// New returns a selection from anchor to head.
func New(anchor, head int) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// Bounds returns the selection normalized so that start <= end.
func (s Selection) Bounds() (start, end int) {
	if s.Anchor <= s.Head {
		return s.Anchor, s.Head
	}
	return s.Head, s.Anchor
}

// IsEmpty reports a zero-width selection.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Contains treats the selection as the half-open range [start, end).
func (s Selection) Contains(offset int) bool {
	start, end := s.Bounds()
	return offset >= start && offset < end
}

// Text returns the selected bytes of buf as a string, clamped to buf.
func (s Selection) Text(buf []byte) string {
	start, end := s.Bounds()
	if start < 0 {
		start = 0
	}
	if end > len(buf) {
		end = len(buf)
	}
	if start >= end {
		return ""
	}
	return string(buf[start:end])
}
