// Package console implements a line buffered text console on top of the VGA
// text buffer.
//
// Text is always written to the bottom row. When the row is full or a newline
// is written, all rows scroll up by one and the bottom row is cleared. Rows
// scrolled off the top are lost.
package console

import (
	"github.com/clktmr/vgatext/debug"
	"github.com/clktmr/vgatext/vga"
)

// Placeholder is the glyph written instead of bytes the console doesn't
// print, a small filled square in code page 437.
const Placeholder = 0xfe

// Writer writes text to a vga.Buffer and keeps track of the cursor.
//
// A Writer expects to be the only writer of its buffer. It's not safe for
// concurrent use, callers running in multiple goroutines or interrupt handlers
// must serialize access.
type Writer struct {
	column int // in the bottom row, 0..vga.Width
	color  vga.ColorCode
	buf    *vga.Buffer
}

// NewWriter returns a Writer for buf, writing with color fg on bg. The
// contents of buf are left as they are.
func NewWriter(buf *vga.Buffer, fg, bg vga.Color) *Writer {
	return &Writer{
		color: vga.NewColorCode(fg, bg),
		buf:   buf,
	}
}

// WriteByte writes b unfiltered at the cursor and advances it. A newline
// starts a new line without using a cell. If the current line is full, a new
// line is started before writing b.
//
// WriteByte always returns nil.
func (w *Writer) WriteByte(b byte) error {
	if b == '\n' {
		w.newLine()
		return nil
	}

	if w.column >= vga.Width {
		w.newLine()
	}

	w.buf.Store(vga.Height-1, w.column, vga.Char{Char: b, Color: w.color})
	w.column++

	debug.AssertRange(w.column, 0, vga.Width, "console: column out of range")
	return nil
}

// WriteString writes s byte by byte. Printable ASCII characters and newlines
// are written as they are, all other bytes are replaced by Placeholder. Multi
// byte UTF-8 sequences therefore result in one placeholder per byte.
//
// WriteString always writes all of s and returns a nil error.
func (w *Writer) WriteString(s string) (n int, err error) {
	for i := 0; i < len(s); i++ {
		w.WriteByte(printable(s[i]))
	}
	return len(s), nil
}

// Write is the same as WriteString for byte slices.
func (w *Writer) Write(p []byte) (n int, err error) {
	for _, b := range p {
		w.WriteByte(printable(b))
	}
	return len(p), nil
}

func printable(b byte) byte {
	if b == '\n' || (b >= 0x20 && b <= 0x7e) {
		return b
	}
	return Placeholder
}

// newLine scrolls the screen up by one row and moves the cursor to the start
// of the cleared bottom row.
func (w *Writer) newLine() {
	for row := 1; row < vga.Height; row++ {
		w.buf.CopyRow(row-1, row)
	}
	w.buf.FillRow(vga.Height-1, w.blank())
	w.column = 0
}

func (w *Writer) blank() vga.Char {
	return vga.Char{Char: ' ', Color: w.color}
}

// Clear blanks the whole screen with the current background color and moves
// the cursor to the start of the bottom row.
func (w *Writer) Clear() {
	w.buf.Fill(w.blank())
	w.column = 0
}

// Column returns the cursor position in the bottom row.
func (w *Writer) Column() int { return w.column }

// Color returns the color code used for subsequent writes.
func (w *Writer) Color() vga.ColorCode { return w.color }

// SetColor changes the color of subsequent writes. Text already on the
// screen keeps its color.
func (w *Writer) SetColor(fg, bg vga.Color) {
	w.color = vga.NewColorCode(fg, bg)
}

// Buffer returns the text buffer w writes to.
func (w *Writer) Buffer() *vga.Buffer { return w.buf }
