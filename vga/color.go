package vga

import "image/color"

// Color is one of the 16 colors of the standard text mode palette. It fits in
// 4 bits.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

var colorNames = [16]string{
	"Black", "Blue", "Green", "Cyan", "Red", "Magenta", "Brown", "LightGray",
	"DarkGray", "LightBlue", "LightGreen", "LightCyan", "LightRed", "Pink", "Yellow", "White",
}

func (c Color) String() string {
	return colorNames[c&0xf]
}

// RGBA implements color.Color with the default DAC palette of the adapter.
func (c Color) RGBA() (r, g, b, a uint32) {
	return Palette[c&0xf].RGBA()
}

// Palette holds the RGB values the adapter's DAC is programmed with after
// reset, indexed by Color.
var Palette = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xff},
	color.RGBA{0x00, 0x00, 0xaa, 0xff},
	color.RGBA{0x00, 0xaa, 0x00, 0xff},
	color.RGBA{0x00, 0xaa, 0xaa, 0xff},
	color.RGBA{0xaa, 0x00, 0x00, 0xff},
	color.RGBA{0xaa, 0x00, 0xaa, 0xff},
	color.RGBA{0xaa, 0x55, 0x00, 0xff},
	color.RGBA{0xaa, 0xaa, 0xaa, 0xff},
	color.RGBA{0x55, 0x55, 0x55, 0xff},
	color.RGBA{0x55, 0x55, 0xff, 0xff},
	color.RGBA{0x55, 0xff, 0x55, 0xff},
	color.RGBA{0x55, 0xff, 0xff, 0xff},
	color.RGBA{0xff, 0x55, 0x55, 0xff},
	color.RGBA{0xff, 0x55, 0xff, 0xff},
	color.RGBA{0xff, 0xff, 0x55, 0xff},
	color.RGBA{0xff, 0xff, 0xff, 0xff},
}

// ColorCode is the attribute byte of a cell. The low nibble selects the
// foreground, the high nibble the background color.
//
// Depending on the adapter's configuration, bit 7 enables blinking instead of
// selecting a bright background.
type ColorCode uint8

func NewColorCode(fg, bg Color) ColorCode {
	return ColorCode(bg&0xf)<<4 | ColorCode(fg&0xf)
}

func (c ColorCode) Foreground() Color { return Color(c & 0xf) }
func (c ColorCode) Background() Color { return Color(c >> 4) }
