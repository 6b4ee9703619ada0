package nerdfont

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionAt(t *testing.T) {
	text := "ab\ncd\r\nef\rgh"
	tests := []struct {
		offset int
		want   Position
	}{
		{0, Position{Line: 0, Character: 0}},
		{2, Position{Line: 0, Character: 2}},
		{3, Position{Line: 1, Character: 0}},
		{5, Position{Line: 1, Character: 2}},
		{7, Position{Line: 2, Character: 0}},
		{10, Position{Line: 3, Character: 0}},
		{12, Position{Line: 3, Character: 2}},
		{-4, Position{Line: 0, Character: 0}},
		{99, Position{Line: 3, Character: 2}},
	}
	idx := NewLineIndex(text)
	assert.Equal(t, 4, idx.LineCount())
	assert.Equal(t, 12, idx.Len())
	for _, tt := range tests {
		assert.Equal(t, tt.want, idx.PositionAt(tt.offset), "offset %d", tt.offset)
		assert.Equal(t, tt.want, PositionAt(text, tt.offset), "offset %d", tt.offset)
	}
}

func TestPositionAt_TrailingNewline(t *testing.T) {
	idx := NewLineIndex("a\n")
	assert.Equal(t, 2, idx.LineCount())
	assert.Equal(t, Position{Line: 1, Character: 0}, idx.PositionAt(2))
}

func TestPositionAt_SurrogatePairs(t *testing.T) {
	// 📌 counts as two characters
	idx := NewLineIndex("x\n📌\\uf015")
	assert.Equal(t, Position{Line: 1, Character: 2}, idx.PositionAt(4))
}

func TestLineIndex_Range(t *testing.T) {
	text := "line one\n  icon: \"\\uf015\"\n"
	got := Decorate(text)
	require.Len(t, got, 1)
	start, end := NewLineIndex(text).Range(got[0])
	assert.Equal(t, Position{Line: 1, Character: 9}, start)
	assert.Equal(t, Position{Line: 1, Character: 15}, end)
}
