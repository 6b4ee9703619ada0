package types

// GlyphRange 一个 nerd font 字形块的闭区间 [Low, High]
type GlyphRange struct {
	Low  rune   `json:"low"`
	High rune   `json:"high"`
	Set  string `json:"set"`
}

// Contains reports whether cp lies inside the inclusive range.
func (r GlyphRange) Contains(cp rune) bool {
	return cp >= r.Low && cp <= r.High
}

// EscapeMarker 源文本中的一次转义序列出现
//
// Start/End 是 UTF-16 code unit 偏移量，Raw 是匹配到的原始子串（例如 `&#x2665`）。
type EscapeMarker struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Raw   string `json:"raw"`
}

// CombinedRun 一组相邻的 EscapeMarker，作为一个逻辑字符处理
type CombinedRun struct {
	First   EscapeMarker
	Last    EscapeMarker
	Markers []EscapeMarker

	// Raw is the concatenation of the markers' raw text, with a single
	// space standing in for each one-unit gap.
	Raw string
}

// Start returns the UTF-16 offset of the first marker.
func (r CombinedRun) Start() int { return r.First.Start }

// End returns the UTF-16 offset just past the last marker.
func (r CombinedRun) End() int { return r.Last.End }

// Decoration 管道的唯一输出：烹饪后的字符、覆盖的区间及悬停说明
type Decoration struct {
	Text         string `json:"text"`
	Start        int    `json:"start"`
	End          int    `json:"end"`
	HoverMessage string `json:"hover_message"`
}

// ToDict 将 Decoration 转换为 map
func (d Decoration) ToDict() map[string]interface{} {
	return map[string]interface{}{
		"text":          d.Text,
		"start":         d.Start,
		"end":           d.End,
		"hover_message": d.HoverMessage,
	}
}

// Position is a zero-based line/character pair; Character counts UTF-16 code units.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}
