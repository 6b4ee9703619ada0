package nerdfont

import (
	"sort"
	"unicode/utf8"

	"github.com/tukoda/nerdfont-go/internal/util"
)

// LineIndex maps UTF-16 offsets of one text snapshot to line/character
// positions. Line breaks are "\n", "\r\n" and a lone "\r".
type LineIndex struct {
	// lineStarts[i] is the UTF-16 offset of the first character of line i.
	lineStarts []int
	length     int
}

// NewLineIndex 预先计算每一行的起始偏移量（UTF-16 code units）
func NewLineIndex(text string) *LineIndex {
	starts := []int{0}
	offset := 0
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == '\r' && i+1 < len(text) && text[i+1] == '\n':
			offset += 2
			i += 2
			starts = append(starts, offset)
		case c == '\r' || c == '\n':
			offset++
			i++
			starts = append(starts, offset)
		default:
			r, size := utf8.DecodeRuneInString(text[i:])
			offset += util.RuneUnits(r)
			i += size
		}
	}
	return &LineIndex{lineStarts: starts, length: offset}
}

// Len returns the text length in UTF-16 code units.
func (idx *LineIndex) Len() int {
	return idx.length
}

// LineCount returns the number of lines, counting a trailing empty line.
func (idx *LineIndex) LineCount() int {
	return len(idx.lineStarts)
}

// PositionAt converts offset to a zero-based position. Offsets are clamped
// to [0, Len()].
func (idx *LineIndex) PositionAt(offset int) Position {
	offset = max(0, min(offset, idx.length))
	// last line whose start is <= offset
	line := sort.Search(len(idx.lineStarts), func(i int) bool {
		return idx.lineStarts[i] > offset
	}) - 1
	return Position{Line: line, Character: offset - idx.lineStarts[line]}
}

// Range returns the start and end positions of d.
func (idx *LineIndex) Range(d Decoration) (start, end Position) {
	return idx.PositionAt(d.Start), idx.PositionAt(d.End)
}

// PositionAt converts a UTF-16 offset into text to a line/character position.
// Use a LineIndex when converting many offsets of the same text.
func PositionAt(text string, offset int) Position {
	return NewLineIndex(text).PositionAt(offset)
}
