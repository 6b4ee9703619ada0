package util

import "unicode/utf8"

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Characters outside the BMP (codepoint > 0xFFFF) take 2 UTF-16 code units
// (a surrogate pair); all others take 1. Invalid UTF-8 bytes decode to
// U+FFFD and count as 1.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		count += RuneUnits(r)
	}
	return count
}

// RuneUnits returns the number of UTF-16 code units needed for r.
func RuneUnits(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}

// OffsetTable 字节位置到 UTF-16 偏移量的累积表
//
// table[i] 是字节位置 i 处的 UTF-16 偏移量；位于多字节字符中间的位置
// 取该字符起始处的值。
type OffsetTable []int

// BuildOffsetTable builds a cumulative UTF-16 offset table for each byte position.
func BuildOffsetTable(text string) OffsetTable {
	offsets := make(OffsetTable, len(text)+1)
	cum := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		for j := 0; j < size; j++ {
			offsets[i+j] = cum
		}
		cum += RuneUnits(r)
		i += size
	}
	offsets[len(text)] = cum
	return offsets
}

// At returns the UTF-16 offset for a byte position, clamped to the table.
func (t OffsetTable) At(bytePos int) int {
	if bytePos <= 0 || len(t) == 0 {
		return 0
	}
	if bytePos >= len(t) {
		return t[len(t)-1]
	}
	return t[bytePos]
}

// Cursor 增量地把递增的字节位置换算成 UTF-16 偏移量，无需预先建表
type Cursor struct {
	text  string
	pos   int
	units int
}

// NewCursor returns a cursor positioned at the start of text.
func NewCursor(text string) *Cursor {
	return &Cursor{text: text}
}

// Advance moves the cursor to bytePos and returns the UTF-16 offset there.
// bytePos must not be smaller than any position previously passed.
func (c *Cursor) Advance(bytePos int) int {
	if bytePos > len(c.text) {
		bytePos = len(c.text)
	}
	for c.pos < bytePos {
		r, size := utf8.DecodeRuneInString(c.text[c.pos:])
		c.units += RuneUnits(r)
		c.pos += size
	}
	return c.units
}
