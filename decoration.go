package nerdfont

import (
	"github.com/tukoda/nerdfont-go/internal/cook"
	"github.com/tukoda/nerdfont-go/internal/glyph"
	"github.com/tukoda/nerdfont-go/internal/types"
	"github.com/tukoda/nerdfont-go/internal/util"
)

// 导出类型别名
type (
	EscapeMarker = types.EscapeMarker
	CombinedRun  = types.CombinedRun
	Decoration   = types.Decoration
	GlyphRange   = types.GlyphRange
	Position     = types.Position
)

// Errors returned by Cook.
var (
	ErrCodePointRange  = cook.ErrCodePointRange
	ErrMalformedEscape = cook.ErrMalformedEscape
)

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Decoration offsets are UTF-16 code units, not Go string bytes or runes.
func UTF16Len(text string) int {
	return util.UTF16Len(text)
}

// Cook 将转义序列转换为其表示的字符
//
// raw 可以是多个转义序列的拼接，中间允许单个空格。数值超过 0x10FFFF 时
// 返回 ErrCodePointRange；无法识别的文本返回 ErrMalformedEscape。
// 未配对的代理项解码为 U+FFFD。
func Cook(raw string) (string, error) {
	return cook.String(raw)
}

// IsGlyph reports whether cp falls inside a nerd font glyph range.
func IsGlyph(cp rune) bool {
	return glyph.IsGlyph(cp)
}

// GlyphSetOf returns the name of the glyph set (e.g. "Devicons") containing cp.
func GlyphSetOf(cp rune) (string, bool) {
	return glyph.SetOf(cp)
}

// GlyphRanges returns a copy of the glyph range table, ordered by Low.
func GlyphRanges() []GlyphRange {
	return glyph.Ranges()
}
