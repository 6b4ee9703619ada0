// Package classifier cooks combined escape runs and keeps the ones that
// denote nerd font glyphs.
package classifier

import (
	"log/slog"
	"unicode"
	"unicode/utf16"

	"github.com/tukoda/nerdfont-go/internal/cook"
	"github.com/tukoda/nerdfont-go/internal/glyph"
	"github.com/tukoda/nerdfont-go/internal/types"
)

// Coverage reports whether a font can display a rune.
type Coverage interface {
	HasGlyph(r rune) bool
}

// Config 分类器配置
type Config struct {
	Logger *slog.Logger

	// Coverage, when set, must cover every cooked rune of an accepted run.
	Coverage Coverage

	// CombineSurrogates tests a valid surrogate pair as the supplementary
	// code point it encodes instead of testing each half.
	CombineSurrogates bool
}

// Classifier turns runs into decorations. It holds no per-call state and is
// safe for concurrent use.
type Classifier struct {
	logger            *slog.Logger
	coverage          Coverage
	combineSurrogates bool
}

// New creates a Classifier. A nil Logger discards diagnostics.
func New(cfg Config) *Classifier {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Classifier{
		logger:            logger,
		coverage:          cfg.Coverage,
		combineSurrogates: cfg.CombineSurrogates,
	}
}

// Classify cooks run and returns its decoration if it denotes a glyph.
func (c *Classifier) Classify(run types.CombinedRun) (types.Decoration, bool) {
	units, err := cook.Units(run.Raw)
	if err != nil {
		c.logger.Debug("dropping escape run", "raw", run.Raw, "error", err)
		return types.Decoration{}, false
	}
	if !c.accept(run.Raw, units) {
		return types.Decoration{}, false
	}

	cooked := string(utf16.Decode(units))
	if c.coverage != nil {
		for _, r := range cooked {
			if !c.coverage.HasGlyph(r) {
				c.logger.Debug("glyph missing from font", "raw", run.Raw, "rune", r)
				return types.Decoration{}, false
			}
		}
	}

	return types.Decoration{
		Text:         cooked,
		Start:        run.Start(),
		End:          run.End(),
		HoverMessage: "'" + run.Raw + "' => " + cooked,
	}, true
}

// ClassifyAll keeps the decorations of runs in order.
func (c *Classifier) ClassifyAll(runs []types.CombinedRun) []types.Decoration {
	decorations := make([]types.Decoration, 0)
	for _, run := range runs {
		if d, ok := c.Classify(run); ok {
			decorations = append(decorations, d)
		}
	}
	return decorations
}

// accept applies the glyph table to the cooked code units.
func (c *Classifier) accept(raw string, units []uint16) bool {
	switch len(units) {
	case 1:
		return glyph.IsGlyph(rune(units[0]))
	case 2:
		hi, lo := rune(units[0]), rune(units[1])
		if c.combineSurrogates {
			if r := utf16.DecodeRune(hi, lo); r != unicode.ReplacementChar {
				return glyph.IsGlyph(r)
			}
		}
		// each code unit is tested on its own
		return glyph.IsGlyph(hi) && glyph.IsGlyph(lo)
	default:
		c.logger.Debug("unsupported escape run", "raw", raw, "units", len(units))
		return false
	}
}
