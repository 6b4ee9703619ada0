package markdown

import (
	"iter"
	"slices"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/tukoda/nerdfont-go/internal/types"
	"github.com/tukoda/nerdfont-go/internal/util"
)

// StandardOptions goldmark 扩展配置（GFM + 定义列表 + 脚注）
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,            // GitHub Flavored Markdown (tables, strikethrough, tasklists)
		extension.DefinitionList, // 定义列表
		extension.Footnote,       // 脚注
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
}

// Region kinds.
const (
	KindCodeSpan  = "code_span"
	KindCodeBlock = "code_block"
)

// Region 记录代码区域在原文中的位置（UTF-16 偏移量）
type Region struct {
	Kind     string // "code_span" or "code_block"
	Language string // fenced code block info string, may be empty
	Start    int
	End      int
}

// ParseAST 仅解析为 AST，不遍历
func ParseAST(source []byte) ast.Node {
	md := goldmark.New(StandardOptions...)
	return md.Parser().Parse(text.NewReader(source))
}

// CodeRegions 解析 Markdown 并返回所有代码区域，按起始位置排序
//
// 行内代码按文本片段记录，代码块按行记录；偏移量与 Scan 返回的
// EscapeMarker 使用同一套 UTF-16 坐标。
func CodeRegions(markdown string) []Region {
	source := []byte(markdown)
	node := ParseAST(source)
	offsets := util.BuildOffsetTable(markdown)

	regions := make([]Region, 0)
	add := func(kind, lang string, seg text.Segment) {
		if seg.Stop <= seg.Start {
			return
		}
		regions = append(regions, Region{
			Kind:     kind,
			Language: lang,
			Start:    offsets.At(seg.Start),
			End:      offsets.At(seg.Stop),
		})
	}

	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.CodeSpan:
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					add(KindCodeSpan, "", t.Segment)
				}
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			lang := string(n.Language(source))
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				add(KindCodeBlock, lang, lines.At(i))
			}
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				add(KindCodeBlock, "", lines.At(i))
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	// footnote definitions are moved to the end of the tree
	slices.SortStableFunc(regions, func(a, b Region) int {
		return a.Start - b.Start
	})
	return regions
}

// Within keeps the markers that lie wholly inside one of regions.
// regions must be sorted by Start, as returned by CodeRegions.
func Within(markers iter.Seq[types.EscapeMarker], regions []Region) iter.Seq[types.EscapeMarker] {
	return func(yield func(types.EscapeMarker) bool) {
		i := 0
		for m := range markers {
			for i < len(regions) && regions[i].End <= m.Start {
				i++
			}
			if i == len(regions) {
				return
			}
			if regions[i].Start <= m.Start && m.End <= regions[i].End {
				if !yield(m) {
					return
				}
			}
		}
	}
}
