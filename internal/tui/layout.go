package tui

import (
	"sort"

	"github.com/rivo/uniseg"
)

// Layout indexes the line starts of a buffer snapshot. It is rebuilt after
// every edit; the text field has no wrapping.
type Layout struct {
	buf        []byte
	lineStarts []int
}

// NewLayout scans buf for newlines.
func NewLayout(buf []byte) Layout {
	starts := []int{0}
	for i, b := range buf {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return Layout{buf: buf, lineStarts: starts}
}

func (l Layout) LineCount() int { return len(l.lineStarts) }

// Line returns the byte range of line i, excluding its newline.
func (l Layout) Line(i int) (start, end int) {
	if i < 0 {
		i = 0
	}
	if i >= len(l.lineStarts) {
		i = len(l.lineStarts) - 1
	}
	start = l.lineStarts[i]
	end = len(l.buf)
	if i+1 < len(l.lineStarts) {
		end = l.lineStarts[i+1] - 1
	}
	return start, end
}

// LineOf returns the line holding offset.
func (l Layout) LineOf(offset int) int {
	// First start greater than offset, minus one
	return sort.SearchInts(l.lineStarts, offset+1) - 1
}

// ColumnOf returns the screen column of offset within its line, measured in
// grapheme cluster widths.
func (l Layout) ColumnOf(offset int) int {
	start, end := l.Line(l.LineOf(offset))
	if offset > end {
		offset = end
	}
	col := 0
	rest := l.buf[start:offset]
	state := -1
	for len(rest) > 0 {
		var width int
		_, rest, width, state = nextCluster(rest, state)
		col += width
	}
	return col
}

// OffsetAt maps a line and screen column to the byte offset of the cluster
// under that column. Columns past the end of the line map to the line end.
// Cluster starts are always scalar boundaries.
func (l Layout) OffsetAt(line, col int) int {
	start, end := l.Line(line)
	if col <= 0 {
		return start
	}

	offset := start
	x := 0
	rest := l.buf[start:end]
	state := -1
	for len(rest) > 0 {
		var cluster []byte
		var width int
		cluster, rest, width, state = nextCluster(rest, state)
		if col < x+width {
			return offset
		}
		x += width
		offset += len(cluster)
	}
	return end
}

// nextCluster splits the first grapheme cluster off b. A tab takes one cell;
// uniseg reports it as zero-width.
func nextCluster(b []byte, state int) (cluster, rest []byte, width, newState int) {
	cluster, rest, width, newState = uniseg.FirstGraphemeCluster(b, state)
	if len(cluster) == 1 && cluster[0] == '\t' {
		width = 1
	}
	return cluster, rest, width, newState
}
