package console

import (
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

type rawWriter struct{ w *Writer }

func (r rawWriter) Write(p []byte) (n int, err error) {
	for _, b := range p {
		r.w.WriteByte(b)
	}
	return len(p), nil
}

// Raw returns an io.Writer which writes bytes to w without replacing
// unprintable ones, i.e. the full code page 437 can be used.
func Raw(w *Writer) io.Writer { return rawWriter{w} }

// NewCP437Writer returns a writer which translates UTF-8 text to code page 437
// before writing it to w. Characters that have no glyph in code page 437,
// control characters except newline and invalid UTF-8 are written as
// Placeholder.
//
// Incomplete UTF-8 sequences at the end of a write are buffered until the
// next write. Close flushes them.
func NewCP437Writer(w *Writer) io.WriteCloser {
	return transform.NewWriter(Raw(w), transform.Chain(
		runes.Map(glyph),
		charmap.CodePage437.NewEncoder(),
	))
}

const placeholderRune = '■' // Placeholder in code page 437

func glyph(r rune) rune {
	if r == '\n' {
		return r
	}
	if r < 0x20 || r == 0x7f {
		return placeholderRune
	}
	if _, ok := charmap.CodePage437.EncodeRune(r); !ok {
		return placeholderRune
	}
	return r
}
