package nerdfont

import (
	"iter"
	"slices"

	"github.com/tukoda/nerdfont-go/internal/classifier"
	"github.com/tukoda/nerdfont-go/internal/combiner"
	"github.com/tukoda/nerdfont-go/internal/markdown"
	"github.com/tukoda/nerdfont-go/internal/scanner"
)

// Scan 按从左到右的顺序惰性地返回 text 中的转义序列标记
//
// 每次遍历都从偏移量 0 重新开始。
func Scan(text string) iter.Seq[EscapeMarker] {
	return scanner.Scan(text)
}

// Combine groups adjacent markers (gap of 0 or 1 code unit) into runs.
// Every marker appears in exactly one run; order is preserved.
func Combine(markers []EscapeMarker) []CombinedRun {
	return combiner.Combine(slices.Values(markers))
}

// Classify cooks run and returns its decoration when the result is a nerd
// font glyph. Runs that are not glyphs, cook to an invalid code point, or
// do not form a single character are dropped.
func Classify(run CombinedRun, opts ...Option) (Decoration, bool) {
	return newClassifier(applyOptions(opts...)).Classify(run)
}

// Decorate 扫描 text 并返回所有 nerd font 字形的装饰
//
// 管道：text → markers → combined runs → decorations。纯函数，对同一输入
// 总是返回相同的结果；没有匹配时返回空切片。
//
// 参数：
//   - text: 完整的文档文本
//   - opts: 可选配置（WithMarkdown、WithCoverage、WithCombineSurrogates、WithConfig）
func Decorate(text string, opts ...Option) []Decoration {
	options := applyOptions(opts...)

	markers := scanner.Scan(text)
	if options.Markdown {
		markers = markdown.Within(markers, markdown.CodeRegions(text))
	}
	runs := combiner.Combine(markers)
	return newClassifier(options).ClassifyAll(runs)
}

// DecorateMarkdown is Decorate restricted to the code spans and code blocks
// of a Markdown document.
func DecorateMarkdown(text string, opts ...Option) []Decoration {
	return Decorate(text, append(slices.Clip(opts), WithMarkdown(true))...)
}

func newClassifier(options *DecorateOptions) *classifier.Classifier {
	return classifier.New(classifier.Config{
		Logger:            Logger(),
		Coverage:          options.Coverage,
		CombineSurrogates: options.CombineSurrogates(),
	})
}
