package tui

import "testing"

func TestLayoutLines(t *testing.T) {
	l := NewLayout([]byte("ab\ncd\n"))

	if l.LineCount() != 3 {
		t.Fatalf("LineCount() = %d, want 3", l.LineCount())
	}
	tests := []struct{ line, start, end int }{
		{0, 0, 2},
		{1, 3, 5},
		{2, 6, 6},
		{9, 6, 6},
	}
	for _, tt := range tests {
		start, end := l.Line(tt.line)
		if start != tt.start || end != tt.end {
			t.Errorf("Line(%d) = (%d, %d), want (%d, %d)", tt.line, start, end, tt.start, tt.end)
		}
	}

	for offset, want := range map[int]int{0: 0, 2: 0, 3: 1, 5: 1, 6: 2} {
		if got := l.LineOf(offset); got != want {
			t.Errorf("LineOf(%d) = %d, want %d", offset, got, want)
		}
	}
}

func TestLayoutWideColumns(t *testing.T) {
	l := NewLayout([]byte("日本x\nab"))

	for offset, want := range map[int]int{0: 0, 3: 2, 6: 4, 7: 5, 10: 2} {
		if got := l.ColumnOf(offset); got != want {
			t.Errorf("ColumnOf(%d) = %d, want %d", offset, got, want)
		}
	}

	tests := []struct{ line, col, want int }{
		{0, 0, 0},
		{0, 1, 0},
		{0, 2, 3},
		{0, 4, 6},
		{0, 100, 7},
		{1, 1, 9},
		{1, -3, 8},
	}
	for _, tt := range tests {
		if got := l.OffsetAt(tt.line, tt.col); got != tt.want {
			t.Errorf("OffsetAt(%d, %d) = %d, want %d", tt.line, tt.col, got, tt.want)
		}
	}
}

func TestLayoutTabs(t *testing.T) {
	l := NewLayout([]byte("\tab\n\t\tx"))

	for offset, want := range map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 0, 5: 1, 6: 2} {
		if got := l.ColumnOf(offset); got != want {
			t.Errorf("ColumnOf(%d) = %d, want %d", offset, got, want)
		}
	}

	tests := []struct{ line, col, want int }{
		{0, 0, 0},
		{0, 1, 1},
		{0, 2, 2},
		{1, 1, 5},
		{1, 2, 6},
		{1, 9, 7},
	}
	for _, tt := range tests {
		if got := l.OffsetAt(tt.line, tt.col); got != tt.want {
			t.Errorf("OffsetAt(%d, %d) = %d, want %d", tt.line, tt.col, got, tt.want)
		}
	}
}

func TestFieldOffsetAtAndScroll(t *testing.T) {
	l := NewLayout([]byte("one\ntwo\nthree\nfour"))
	f := &Field{X: 0, Y: 0, Width: 10, Height: 2}

	if got := f.OffsetAt(l, 1, 1); got != 5 {
		t.Errorf("OffsetAt(1, 1) = %d, want 5", got)
	}
	if got := f.OffsetAt(l, 2, 40); got != 16 {
		t.Errorf("OffsetAt below text = %d, want 16", got)
	}

	f.ScrollTo(l, 15) // line 3
	if f.ScrollY != 2 {
		t.Errorf("ScrollY = %d, want 2", f.ScrollY)
	}
	f.ScrollTo(l, 0)
	if f.ScrollY != 0 {
		t.Errorf("ScrollY = %d, want 0", f.ScrollY)
	}
}
