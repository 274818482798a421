package vga

import (
	"errors"
	"io"

	"github.com/clktmr/vgatext/mmio"
)

var ErrOffset = errors.New("vga: negative offset")

// ReadAt implements io.ReaderAt for the raw bytes of the text buffer, as laid
// out in device memory.
func (b *Buffer) ReadAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, ErrOffset
	}
	if off >= Size {
		return 0, io.EOF
	}
	if left := Size - int(off); len(p) > left {
		p = p[:left]
		err = io.EOF
	}

	mmio.ReadIO(b.regs(), int(off), p)
	return len(p), err
}

// WriteAt implements io.WriterAt for the raw bytes of the text buffer.
func (b *Buffer) WriteAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, ErrOffset
	}
	if off >= Size {
		return 0, io.ErrShortWrite
	}
	if left := Size - int(off); len(p) > left {
		p = p[:left]
		err = io.ErrShortWrite
	}

	mmio.WriteIO(b.regs(), int(off), p)
	return len(p), err
}
