// Package cook turns escape sequences back into the characters they denote.
package cook

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/tukoda/nerdfont-go/internal/buffer"
)

// MaxCodePoint is the largest valid Unicode code point.
const MaxCodePoint = 0x10FFFF

var (
	// ErrCodePointRange 数值超出 Unicode 范围
	ErrCodePointRange = errors.New("code point out of range")
	// ErrMalformedEscape 文本不是受支持的转义形式
	ErrMalformedEscape = errors.New("malformed escape sequence")
)

// form describes how one escape syntax is decoded.
type form struct {
	base int
	// unit forms write their value as one UTF-16 code unit, so a \u escape
	// may contribute half of a surrogate pair.
	unit bool
}

// forms is indexed by capture group, in the same order as escapeRe.
var forms = []form{
	{base: 16, unit: true}, // \uXXXX
	{base: 16},             // \UXXXXXXXX
	{base: 16, unit: true}, // \xXX
	{base: 16},             // &#xH{1,4}
	{base: 10},             // &#D{1,5}
	{base: 16},             // U+H{4,6}
}

var escapeRe = regexp.MustCompile(`^(?:\\u([0-9a-fA-F]{4})|\\U([0-9a-fA-F]{8})|\\x([0-9a-fA-F]{2})|&#x([0-9a-fA-F]{1,4})|&#(\d{1,5})|U\+([0-9a-fA-F]{4,6}))`)

// Units cooks raw into UTF-16 code units.
//
// raw is a concatenation of escape sequences, optionally separated by single
// spaces which are copied through unchanged.
func Units(raw string) ([]uint16, error) {
	ub := buffer.New()
	for pos := 0; pos < len(raw); {
		if raw[pos] == ' ' {
			ub.WriteUnit(' ')
			pos++
			continue
		}
		m := escapeRe.FindStringSubmatchIndex(raw[pos:])
		if m == nil {
			return nil, fmt.Errorf("%w at byte %d of %q", ErrMalformedEscape, pos, raw)
		}
		if err := writeEscape(ub, raw[pos:], m); err != nil {
			return nil, err
		}
		pos += m[1]
	}
	return ub.Units(), nil
}

// String cooks raw into a Go string. Unpaired surrogates decode to U+FFFD.
func String(raw string) (string, error) {
	units, err := Units(raw)
	if err != nil {
		return "", err
	}
	ub := buffer.New()
	for _, u := range units {
		ub.WriteUnit(u)
	}
	return ub.String(), nil
}

func writeEscape(ub *buffer.UnitBuffer, s string, m []int) error {
	for i, f := range forms {
		lo, hi := m[2+2*i], m[3+2*i]
		if lo < 0 {
			continue
		}
		digits := s[lo:hi]
		v, err := strconv.ParseUint(digits, f.base, 32)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrMalformedEscape, s[:m[1]], err)
		}
		switch {
		case v > MaxCodePoint:
			return fmt.Errorf("%w: %q is 0x%X", ErrCodePointRange, s[:m[1]], v)
		case f.unit || v <= 0xFFFF:
			ub.WriteUnit(uint16(v))
		default:
			ub.WriteRune(rune(v))
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrMalformedEscape, s[:m[1]])
}
