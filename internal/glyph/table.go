// Package glyph holds the fixed table of code-point ranges that patched
// nerd fonts populate with icons.
package glyph

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/tukoda/nerdfont-go/internal/types"
)

// Glyph set names.
const (
	SetIECPower       = "IEC Power Symbols"
	SetOcticons       = "Octicons"
	SetPomicons       = "Pomicons"
	SetPowerline      = "Powerline"
	SetPowerlineExtra = "Powerline Extra"
	SetFontAwesomeExt = "Font Awesome Extension"
	SetWeatherIcons   = "Weather Icons"
	SetSetiUI         = "Seti-UI + Custom"
	SetDevicons       = "Devicons"
	SetCodicons       = "Codicons"
	SetFontAwesome    = "Font Awesome"
	SetFontLogos      = "Font Logos"
	SetMaterialDesign = "Material Design"
)

// ranges is ordered by Low. F400-F533 and F500-FD46 overlap; lookups by
// name report the first match.
var ranges = [...]types.GlyphRange{
	{Low: 0x23FB, High: 0x23FE, Set: SetIECPower},
	{Low: 0x2665, High: 0x2665, Set: SetOcticons},
	{Low: 0x26A1, High: 0x26A1, Set: SetOcticons},
	{Low: 0x2B58, High: 0x2B58, Set: SetIECPower},
	{Low: 0xE000, High: 0xE00A, Set: SetPomicons},
	{Low: 0xE0A0, High: 0xE0A2, Set: SetPowerline},
	{Low: 0xE0A3, High: 0xE0A3, Set: SetPowerlineExtra},
	{Low: 0xE0B0, High: 0xE0B3, Set: SetPowerline},
	{Low: 0xE0B4, High: 0xE0C8, Set: SetPowerlineExtra},
	{Low: 0xE0CA, High: 0xE0CA, Set: SetPowerlineExtra},
	{Low: 0xE0CC, High: 0xE0D7, Set: SetPowerlineExtra},
	{Low: 0xE200, High: 0xE2A9, Set: SetFontAwesomeExt},
	{Low: 0xE300, High: 0xE3E3, Set: SetWeatherIcons},
	{Low: 0xE5FA, High: 0xE6B5, Set: SetSetiUI},
	{Low: 0xE700, High: 0xE7C5, Set: SetDevicons},
	{Low: 0xEA60, High: 0xEC1E, Set: SetCodicons},
	{Low: 0xED00, High: 0xEFC1, Set: SetFontAwesome},
	{Low: 0xF000, High: 0xF2FF, Set: SetFontAwesome},
	{Low: 0xF300, High: 0xF372, Set: SetFontLogos},
	{Low: 0xF400, High: 0xF533, Set: SetOcticons},
	{Low: 0xF500, High: 0xFD46, Set: SetMaterialDesign},
	{Low: 0xF0001, High: 0xF1AF0, Set: SetMaterialDesign},
}

// Table is the union of all ranges, built once at init.
var Table = buildTable()

func buildTable() *unicode.RangeTable {
	tables := make([]*unicode.RangeTable, 0, len(ranges))
	for _, r := range ranges {
		tables = append(tables, rangeTable(r))
	}
	return rangetable.Merge(tables...)
}

func rangeTable(r types.GlyphRange) *unicode.RangeTable {
	if r.High <= 0xFFFF {
		return &unicode.RangeTable{
			R16: []unicode.Range16{{Lo: uint16(r.Low), Hi: uint16(r.High), Stride: 1}},
		}
	}
	return &unicode.RangeTable{
		R32: []unicode.Range32{{Lo: uint32(r.Low), Hi: uint32(r.High), Stride: 1}},
	}
}

// IsGlyph reports whether cp lies in any nerd font glyph range.
func IsGlyph(cp rune) bool {
	return unicode.Is(Table, cp)
}

// SetOf returns the name of the glyph set containing cp.
func SetOf(cp rune) (string, bool) {
	for _, r := range ranges {
		if r.Contains(cp) {
			return r.Set, true
		}
	}
	return "", false
}

// Ranges returns a copy of the range table in order.
func Ranges() []types.GlyphRange {
	out := make([]types.GlyphRange, len(ranges))
	copy(out, ranges[:])
	return out
}
