// The vga package provides access to the text mode buffer of VGA compatible
// display adapters.
//
// In text mode 3 the adapter displays a grid of 80x25 character cells, read
// from device memory at physical address 0xb8000. Every cell is two bytes: the
// code page 437 character code followed by a color attribute. The adapter is
// expected to be in this mode already, this package does no mode setting.
//
// Accessing the hardware is in general unsafe. Use the console driver to
// write text instead.
package vga

// Dimensions of the text buffer in character cells.
const (
	Width  = 80
	Height = 25
)

// BaseAddr is the physical address of the text buffer.
const BaseAddr = 0xb8000

// Size is the size of the text buffer in bytes.
const Size = Width * Height * 2
