// Package text holds the read-only boundary scans the editor uses to find
// words and lines in a byte buffer. Distances are returned in bytes so that
// callers can add or subtract them from a cursor offset directly.
package text

// IsWordDelimiter reports whether b separates words.
func IsWordDelimiter(b byte) bool {
	return b == ' ' || b == '(' || b == ')' || b == ';' || b == '"'
}

func isWordStop(b byte) bool {
	return IsWordDelimiter(b) || b == '\n'
}

// FindWordBegin scans backward from offset and returns the distance to the
// nearest delimiter or newline, or to the buffer start. An offset at or past
// the end of buf is treated as sitting on a delimiter.
func FindWordBegin(buf []byte, offset int) int {
	pos := offset
	distance := 0

	for pos > 0 {
		current := byte(' ')
		if pos < len(buf) {
			current = buf[pos]
		}
		if isWordStop(current) {
			break
		}
		distance++
		pos--
	}
	return distance
}

// FindWordEnd scans forward from offset and returns the distance to the
// first character of the next word. Once a delimiter or newline is seen the
// scan keeps going over delimiters, so the result never lands on trailing
// whitespace; a newline itself stops the scan.
func FindWordEnd(buf []byte, offset int) int {
	if offset < 0 {
		offset = 0
	}
	pos := offset
	distance := 0
	skippingSpaces := false

	for pos < len(buf) {
		current := buf[pos]
		if isWordStop(current) {
			skippingSpaces = true
		}
		if skippingSpaces && !IsWordDelimiter(current) {
			break
		}
		pos++
		distance++
	}
	return distance
}

// FindLineBegin returns the distance from cursor back to the nearest newline
// at or before it, or to the buffer start.
func FindLineBegin(buf []byte, cursor int) int {
	last := len(buf) - 1
	if last < 0 {
		last = 0
	}
	pos := cursor
	if pos > last {
		pos = last
	}
	if pos < 0 {
		pos = 0
	}

	for pos > 0 && buf[pos] != '\n' {
		pos--
	}
	if cursor < pos {
		return 0
	}
	return cursor - pos
}

// FindLineEnd returns the distance from cursor forward to the nearest
// newline, or to the buffer end.
func FindLineEnd(buf []byte, cursor int) int {
	pos := cursor
	if pos > len(buf) {
		pos = len(buf)
	}
	if pos < 0 {
		pos = 0
	}

	for pos < len(buf) && buf[pos] != '\n' {
		pos++
	}
	if pos < cursor {
		return 0
	}
	return pos - cursor
}
