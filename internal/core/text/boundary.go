package text

import "unicode/utf8"

// IsBoundary reports whether offset starts a scalar value in buf.
// Both ends of the buffer count as boundaries; offsets outside do not.
func IsBoundary(buf []byte, offset int) bool {
	if offset == 0 || offset == len(buf) {
		return true
	}
	if offset < 0 || offset > len(buf) {
		return false
	}
	return utf8.RuneStart(buf[offset])
}

// AlignForward returns the first boundary at or after offset, clamped to len(buf).
func AlignForward(buf []byte, offset int) int {
	if offset < 0 {
		return 0
	}
	for offset < len(buf) && !IsBoundary(buf, offset) {
		offset++
	}
	if offset > len(buf) {
		return len(buf)
	}
	return offset
}

// AlignBackward returns the last boundary at or before offset, clamped to 0.
func AlignBackward(buf []byte, offset int) int {
	if offset > len(buf) {
		return len(buf)
	}
	for offset > 0 && !IsBoundary(buf, offset) {
		offset--
	}
	if offset < 0 {
		return 0
	}
	return offset
}

// NextBoundary returns the boundary one scalar value after offset.
func NextBoundary(buf []byte, offset int) int {
	if offset >= len(buf) {
		return len(buf)
	}
	return AlignForward(buf, offset+1)
}

// PrevBoundary returns the boundary one scalar value before offset.
func PrevBoundary(buf []byte, offset int) int {
	if offset <= 0 {
		return 0
	}
	return AlignBackward(buf, offset-1)
}

// ScalarLen returns the byte length of the scalar value starting at offset,
// or 0 when offset is not inside buf.
func ScalarLen(buf []byte, offset int) int {
	if offset < 0 || offset >= len(buf) {
		return 0
	}
	_, size := utf8.DecodeRune(buf[offset:])
	return size
}
