package nerdfont

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// extractSpan 从文本中提取 UTF-16 区间覆盖的子串
func extractSpan(text string, start, end int) string {
	utf16Offset := 0
	byteStart, byteEnd := -1, -1
	for i, ch := range text {
		if utf16Offset == start && byteStart == -1 {
			byteStart = i
		}
		if utf16Offset == end {
			byteEnd = i
			break
		}
		if ch > 0xFFFF {
			utf16Offset += 2
		} else {
			utf16Offset++
		}
	}
	if byteStart == -1 {
		return ""
	}
	if byteEnd == -1 {
		byteEnd = len(text)
	}
	return text[byteStart:byteEnd]
}

func TestDecorate_NoEscapes(t *testing.T) {
	for _, text := range []string{"", "hello world", "func main() {}\n", "你好 📌"} {
		got := Decorate(text)
		assert.NotNil(t, got)
		assert.Empty(t, got, "text %q", text)
	}
}

func TestDecorate_SingleGlyph(t *testing.T) {
	text := "\\ue7a2"
	got := Decorate(text)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].Start)
	assert.Equal(t, 6, got[0].End)
	assert.Equal(t, string(rune(0xE7A2)), got[0].Text)
	assert.Equal(t, "'\\ue7a2' => "+string(rune(0xE7A2)), got[0].HoverMessage)
}

func TestDecorate_SpanMatchesRaw(t *testing.T) {
	text := "const icons = [\"\\uf015\", \"&#xe0b0;\", \"U+F0001\", \"\\U0000E7A2\"] // 📌"
	got := Decorate(text)
	require.Len(t, got, 3)
	assert.Equal(t, "\\uf015", extractSpan(text, got[0].Start, got[0].End))
	assert.Equal(t, "&#xe0b0", extractSpan(text, got[1].Start, got[1].End))
	assert.Equal(t, "\\U0000E7A2", extractSpan(text, got[2].Start, got[2].End))
}

func TestDecorate_AdjacentPairCombined(t *testing.T) {
	// the pair is combined into one run; it is not a glyph, so nothing is emitted
	assert.Empty(t, Decorate("\\ud83d\\ude00"))

	runs := Combine(slices.Collect(Scan("\\ud83d\\ude00")))
	require.Len(t, runs, 1)
	cooked, err := Cook(runs[0].Raw)
	require.NoError(t, err)
	assert.Equal(t, "😀", cooked)
	assert.Equal(t, 2, UTF16Len(cooked))
}

func TestDecorate_GapOfTwoSplits(t *testing.T) {
	got := Decorate("\\ue7a2  \\ue7a3")
	require.Len(t, got, 2)
	assert.Equal(t, string(rune(0xE7A2)), got[0].Text)
	assert.Equal(t, string(rune(0xE7A3)), got[1].Text)
}

func TestDecorate_GapOfOneDropsRun(t *testing.T) {
	// two glyphs one space apart cook to three code units, which is not one character
	assert.Empty(t, Decorate("\\ue7a2 \\ue7a3"))
}

func TestDecorate_NonGlyphFiltered(t *testing.T) {
	assert.Empty(t, Decorate("\\u0041"))
	assert.Empty(t, Decorate("&#65; \\x41 U+0041"))
}

func TestDecorate_MixedSyntaxes(t *testing.T) {
	text := "\\u2665 and &#x2665; and U+2665"
	got := Decorate(text)
	require.Len(t, got, 3)
	heart := string(rune(0x2665))
	for _, d := range got {
		assert.Equal(t, heart, d.Text)
	}
	assert.Equal(t, "\\u2665", extractSpan(text, got[0].Start, got[0].End))
	assert.Equal(t, "&#x2665", extractSpan(text, got[1].Start, got[1].End))
	assert.Equal(t, "U+2665", extractSpan(text, got[2].Start, got[2].End))
}

func TestDecorate_Idempotent(t *testing.T) {
	text := strings.Repeat("icon \\uf015 | \\u0041 | &#xe0b0; | U+F0001 | \\ud83d\\ude00\n", 20)
	first := Decorate(text)
	second := Decorate(text)
	assert.Equal(t, first, second)
	assert.Len(t, first, 40)
}

func TestDecorate_Boundaries(t *testing.T) {
	text := "\\uf015 middle \\ue0b0"
	got := Decorate(text)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Start)
	assert.Equal(t, UTF16Len(text), got[1].End)
}

func TestDecorate_OrderedAndWithinText(t *testing.T) {
	text := "📌 \\uf015 你好 \\ue0b0  \\ue7a2"
	got := Decorate(text)
	require.Len(t, got, 3)
	for i, d := range got {
		assert.Less(t, d.Start, d.End)
		assert.LessOrEqual(t, d.End, UTF16Len(text))
		if i > 0 {
			assert.LessOrEqual(t, got[i-1].End, d.Start)
		}
	}
	assert.Equal(t, 3, got[0].Start)
}

func TestDecorate_OutOfRangeIgnored(t *testing.T) {
	got := Decorate("U+110000  \\uf015")
	require.Len(t, got, 1)
	assert.Equal(t, string(rune(0xF015)), got[0].Text)
}

func TestDecorate_CombineSurrogates(t *testing.T) {
	text := "\\U000F0001"
	assert.Empty(t, Decorate(text))

	got := Decorate(text, WithCombineSurrogates(true))
	require.Len(t, got, 1)
	assert.Equal(t, string(rune(0xF0001)), got[0].Text)

	got = Decorate(text, WithConfig(&Config{CombineSurrogates: true}))
	assert.Len(t, got, 1)
}

func TestDecorateMarkdown(t *testing.T) {
	text := "Prose \\uf015 is ignored.\n\nUse `\\ue0b0` inline or:\n\n```sh\nPS1=\"\\ue7a2 \"\n```\n"
	got := DecorateMarkdown(text)
	require.Len(t, got, 2)
	assert.Equal(t, "\\ue0b0", extractSpan(text, got[0].Start, got[0].End))
	assert.Equal(t, "\\ue7a2", extractSpan(text, got[1].Start, got[1].End))

	assert.Len(t, Decorate(text), 3)
	assert.Equal(t, got, Decorate(text, WithMarkdown(true)))
}

func TestClassify_Exported(t *testing.T) {
	runs := Combine(slices.Collect(Scan("\\uf015")))
	require.Len(t, runs, 1)
	d, ok := Classify(runs[0])
	require.True(t, ok)
	assert.Equal(t, 0, d.Start)
	assert.Equal(t, 6, d.End)

	runs = Combine(slices.Collect(Scan("\\u0041")))
	_, ok = Classify(runs[0])
	assert.False(t, ok)
}

func TestCombine_Empty(t *testing.T) {
	assert.Empty(t, Combine(nil))
}
