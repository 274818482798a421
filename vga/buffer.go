package vga

import (
	"unsafe"

	"github.com/clktmr/vgatext/debug"
	"github.com/clktmr/vgatext/mmio"
)

// Char is the content of a single cell.
type Char struct {
	Char  byte // code page 437
	Color ColorCode
}

// Cell is a character cell in device memory. It's exactly two bytes, the
// character code followed by the color attribute. Both are always written
// together with a single store.
type Cell struct {
	r mmio.U16
}

func (c *Cell) Load() Char {
	v := c.r.Load()
	return Char{Char: byte(v), Color: ColorCode(v >> 8)}
}

func (c *Cell) Store(ch Char) {
	c.r.Store(uint16(ch.Color)<<8 | uint16(ch.Char))
}

// Buffer has the exact layout of the text buffer in device memory.
type Buffer struct {
	_     [0]uint32 // alignment required by mmio.U16
	chars [Height][Width]Cell
}

// Map returns the text buffer at physical address addr.
//
// The caller must guarantee that addr maps a valid text buffer for the
// lifetime of the process and that nothing else writes to it. Map doesn't
// probe the device, breaking this contract results in undefined behaviour.
// Only a single Buffer should be mapped per device.
func Map(addr mmio.Addr) *Buffer {
	debug.Assert(addr&3 == 0, "vga: unaligned text buffer")
	return (*Buffer)(unsafe.Pointer(addr))
}

// Load returns the cell at row and col. Panics if out of range.
func (b *Buffer) Load(row, col int) Char {
	return b.chars[row][col].Load()
}

// Store sets the cell at row and col. Panics if out of range.
func (b *Buffer) Store(row, col int, ch Char) {
	b.chars[row][col].Store(ch)
}

// CopyRow copies all cells of row src to row dst.
func (b *Buffer) CopyRow(dst, src int) {
	d, s := &b.chars[dst], &b.chars[src]
	for col := range d {
		d[col].Store(s[col].Load())
	}
}

// FillRow sets all cells of row to ch.
func (b *Buffer) FillRow(row int, ch Char) {
	r := &b.chars[row]
	for col := range r {
		r[col].Store(ch)
	}
}

// Fill sets all cells to ch.
func (b *Buffer) Fill(ch Char) {
	for row := range b.chars {
		b.FillRow(row, ch)
	}
}

// regs returns all cells as a flat slice of registers, in device memory
// order.
func (b *Buffer) regs() []mmio.U16 {
	return unsafe.Slice(&b.chars[0][0].r, Width*Height)
}
