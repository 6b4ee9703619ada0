package buffer

import (
	"unicode/utf16"
)

// UnitBuffer accumulates cooked text as UTF-16 code units.
//
// Code units are kept raw so that lone surrogates written by separate
// escapes survive until the whole run has been cooked.
type UnitBuffer struct {
	units []uint16
}

// New creates a new UnitBuffer.
func New() *UnitBuffer {
	return &UnitBuffer{
		units: make([]uint16, 0, 4),
	}
}

// WriteUnit appends a single code unit, which may be half of a surrogate pair.
func (ub *UnitBuffer) WriteUnit(u uint16) {
	ub.units = append(ub.units, u)
}

// WriteRune appends r, split into a surrogate pair when it lies outside the BMP.
func (ub *UnitBuffer) WriteRune(r rune) {
	if r > 0xFFFF {
		hi, lo := utf16.EncodeRune(r)
		ub.units = append(ub.units, uint16(hi), uint16(lo))
		return
	}
	ub.units = append(ub.units, uint16(r))
}

// WriteString appends text as UTF-16.
func (ub *UnitBuffer) WriteString(text string) {
	for _, r := range text {
		ub.WriteRune(r)
	}
}

// Len returns the number of code units written so far.
func (ub *UnitBuffer) Len() int {
	return len(ub.units)
}

// Units returns a copy of the accumulated code units.
func (ub *UnitBuffer) Units() []uint16 {
	out := make([]uint16, len(ub.units))
	copy(out, ub.units)
	return out
}

// String decodes the accumulated code units; unpaired surrogates become U+FFFD.
func (ub *UnitBuffer) String() string {
	if len(ub.units) == 0 {
		return ""
	}
	return string(utf16.Decode(ub.units))
}

// Reset clears the buffer.
func (ub *UnitBuffer) Reset() {
	ub.units = ub.units[:0]
}
