package vga

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Rune returns the unicode equivalent of the cell's glyph. Control codes are
// returned as space.
func (c Char) Rune() rune {
	if c.Char < 0x20 {
		return ' '
	}
	return charmap.CodePage437.DecodeByte(c.Char)
}

// Text returns the contents of b as UTF-8, one line per row with trailing
// blanks removed.
func (b *Buffer) Text() string {
	var sb strings.Builder
	line := make([]rune, Width)
	for row := range Height {
		for col := range Width {
			line[col] = b.Load(row, col).Rune()
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
