package extract

import (
	"sort"
	"strings"
)

// LineIndex maps byte offsets in a file to 1-based line/column positions
// and serves context windows. Built once per file, linear in file length.
type LineIndex struct {
	src    string
	starts []int
}

// NewLineIndex builds the line-start offset table for src.
func NewLineIndex(src []byte) *LineIndex {
	s := string(src)
	starts := []int{0}
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{src: s, starts: starts}
}

// Position returns the 1-based line and byte column for a 0-based offset.
func (l *LineIndex) Position(offset int) (line, column int) {
	line = sort.Search(len(l.starts), func(i int) bool {
		return l.starts[i] > offset
	})
	column = offset - l.starts[line-1] + 1
	return line, column
}

// LineCount returns the number of lines in the file.
func (l *LineIndex) LineCount() int {
	return len(l.starts)
}

// Line returns the content of a 1-based line without its newline.
func (l *LineIndex) Line(n int) string {
	if n < 1 || n > len(l.starts) {
		return ""
	}
	start := l.starts[n-1]
	end := len(l.src)
	if n < len(l.starts) {
		end = l.starts[n] - 1
	}
	return strings.TrimSuffix(l.src[start:end], "\r")
}

// Context returns the lines within around lines of the given 1-based
// line, clipped to file bounds. around == 0 yields nil.
func (l *LineIndex) Context(line, around int) []string {
	if around <= 0 {
		return nil
	}
	first := line - around
	if first < 1 {
		first = 1
	}
	last := line + around
	if last > len(l.starts) {
		last = len(l.starts)
	}

	out := make([]string, 0, last-first+1)
	for n := first; n <= last; n++ {
		out = append(out, l.Line(n))
	}
	return out
}
