package nerdfont

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"

	"github.com/tukoda/nerdfont-go/internal/classifier"
)

// Coverage reports whether a font can display a rune.
type Coverage = classifier.Coverage

// FontCoverage answers Coverage queries from a parsed TrueType/OpenType font.
//
// FontCoverage keeps the parsed font.Font, which is read-only and safe for
// concurrent use.
type FontCoverage struct {
	font *font.Font
}

// NewFontCoverage parses font data (TTF or OTF). The caller loads the bytes.
func NewFontCoverage(data []byte) (*FontCoverage, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("nerdfont: parse font: %w", err)
	}
	return &FontCoverage{font: face.Font}, nil
}

// HasGlyph reports whether the font maps r to a glyph.
func (c *FontCoverage) HasGlyph(r rune) bool {
	_, ok := c.font.NominalGlyph(r)
	return ok
}
