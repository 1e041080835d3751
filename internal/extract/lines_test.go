package extract

import (
	"reflect"
	"testing"
)

func TestLineIndex_Position(t *testing.T) {
	src := []byte("first\nsecond\nthird")
	idx := NewLineIndex(src)

	tests := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{6, 2, 1},
		{8, 2, 3},
		{13, 3, 1},
		{17, 3, 5},
	}

	for _, tt := range tests {
		line, col := idx.Position(tt.offset)
		if line != tt.wantLine || col != tt.wantCol {
			t.Errorf("Position(%d) = %d:%d, want %d:%d",
				tt.offset, line, col, tt.wantLine, tt.wantCol)
		}
	}
}

func TestLineIndex_Line(t *testing.T) {
	idx := NewLineIndex([]byte("alpha\r\nbeta\ngamma"))

	tests := []struct {
		n    int
		want string
	}{
		{1, "alpha"},
		{2, "beta"},
		{3, "gamma"},
		{0, ""},
		{4, ""},
	}
	for _, tt := range tests {
		if got := idx.Line(tt.n); got != tt.want {
			t.Errorf("Line(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestLineIndex_Context(t *testing.T) {
	idx := NewLineIndex([]byte("l1\nl2\nl3\nl4\nl5"))

	tests := []struct {
		name   string
		line   int
		around int
		want   []string
	}{
		{"zero means none", 3, 0, nil},
		{"middle", 3, 1, []string{"l2", "l3", "l4"}},
		{"clipped at start", 1, 2, []string{"l1", "l2", "l3"}},
		{"clipped at end", 5, 2, []string{"l3", "l4", "l5"}},
		{"covers whole file", 3, 10, []string{"l1", "l2", "l3", "l4", "l5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idx.Context(tt.line, tt.around)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Context(%d, %d) = %v, want %v", tt.line, tt.around, got, tt.want)
			}
		})
	}
}

func TestLineIndex_LineCount(t *testing.T) {
	if got := NewLineIndex([]byte("one\ntwo\n")).LineCount(); got != 3 {
		t.Errorf("LineCount with trailing newline = %d, want 3", got)
	}
	if got := NewLineIndex([]byte("single")).LineCount(); got != 1 {
		t.Errorf("LineCount single line = %d, want 1", got)
	}
}
