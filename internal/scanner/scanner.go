// Package scanner tokenizes text into escaped code-point literals.
package scanner

import (
	"iter"
	"regexp"
	"slices"

	"github.com/tukoda/nerdfont-go/internal/types"
	"github.com/tukoda/nerdfont-go/internal/util"
)

// Pattern 匹配所有支持的转义形式，按书写顺序优先（leftmost-first）
//
//	\uXXXX  \UXXXXXXXX  \xXX  &#xH{1,4}  &#D{1,5}  U+H{4,6}
const Pattern = `\\u[0-9a-fA-F]{4}|\\U[0-9a-fA-F]{8}|\\x[0-9a-fA-F]{2}|&#x[0-9a-fA-F]{1,4}|&#\d{1,5}|U\+[0-9a-fA-F]{4,6}`

var escapeRe = regexp.MustCompile(Pattern)

// Scan returns the escape markers of text in left-to-right order.
//
// The sequence is lazy: matching advances only as the consumer pulls
// markers, and each iteration starts again from offset 0.
func Scan(text string) iter.Seq[types.EscapeMarker] {
	return func(yield func(types.EscapeMarker) bool) {
		cur := util.NewCursor(text)
		pos := 0
		for pos < len(text) {
			loc := escapeRe.FindStringIndex(text[pos:])
			if loc == nil {
				return
			}
			begin, end := pos+loc[0], pos+loc[1]
			raw := text[begin:end]
			start := cur.Advance(begin)
			// matches are pure ASCII, one code unit per byte
			marker := types.EscapeMarker{
				Start: start,
				End:   start + len(raw),
				Raw:   raw,
			}
			if !yield(marker) {
				return
			}
			pos = end
		}
	}
}

// ScanAll collects every marker of text.
func ScanAll(text string) []types.EscapeMarker {
	return slices.Collect(Scan(text))
}
