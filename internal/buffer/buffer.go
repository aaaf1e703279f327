// internal/buffer/buffer.go
package buffer

import "errors"

// ErrOutOfRange is returned when an offset falls outside [0, Len()].
var ErrOutOfRange = errors.New("offset out of range")

// Buffer is the host-owned text storage the editor mutates.
// All offsets are byte offsets into UTF-8 text.
type Buffer interface {
	Bytes() []byte // Read-only view, valid until the next mutation
	Len() int
	Insert(offset int, text []byte) error
	Delete(start, end int) error
}
