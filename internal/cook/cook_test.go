package cook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnits(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []uint16
	}{
		{"empty", "", []uint16{}},
		{"short u", "\\ue7a2", []uint16{0xE7A2}},
		{"surrogate pair", "\\ud83d\\ude00", []uint16{0xD83D, 0xDE00}},
		{"lone surrogate", "\\ud83d", []uint16{0xD83D}},
		{"long U", "\\U0001F600", []uint16{0xD83D, 0xDE00}},
		{"long U bmp", "\\U0000E7A2", []uint16{0xE7A2}},
		{"hex byte", "\\x41", []uint16{0x41}},
		{"html hex", "&#x2665", []uint16{0x2665}},
		{"html hex short", "&#x41", []uint16{0x41}},
		{"html decimal", "&#9829", []uint16{0x2665}},
		{"html decimal supplementary", "&#99999", []uint16{0xD821, 0xDE9F}},
		{"unicode notation", "U+2665", []uint16{0x2665}},
		{"unicode notation supplementary", "U+F0001", []uint16{0xDB80, 0xDC01}},
		{"space separated", "\\ud83d \\ude00", []uint16{0xD83D, ' ', 0xDE00}},
		{"mixed forms", "&#x41U+0042\\x43", []uint16{0x41, 0x42, 0x43}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Units(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnits_OutOfRange(t *testing.T) {
	for _, raw := range []string{"U+110000", "U+FFFFFF", "\\UFFFFFFFF", "\\u0041\\U00110000"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Units(raw)
			assert.ErrorIs(t, err, ErrCodePointRange)
		})
	}
}

func TestUnits_Malformed(t *testing.T) {
	for _, raw := range []string{"abc", "\\u12", "\\u0041,\\u0042"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Units(raw)
			assert.ErrorIs(t, err, ErrMalformedEscape)
		})
	}
}

func TestString(t *testing.T) {
	got, err := String("\\ud83d\\ude00")
	require.NoError(t, err)
	assert.Equal(t, "😀", got)

	got, err = String("\\ue7a2")
	require.NoError(t, err)
	assert.Equal(t, string(rune(0xE7A2)), got)

	got, err = String("U+F0001")
	require.NoError(t, err)
	assert.Equal(t, string(rune(0xF0001)), got)
}

func TestString_Error(t *testing.T) {
	got, err := String("U+110000")
	assert.Error(t, err)
	assert.Empty(t, got)
}
