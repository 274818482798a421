package img

import (
	"image"
	"image/color"
	"testing"

	"github.com/clktmr/vgatext/vga"
)

func TestNearest(t *testing.T) {
	tests := map[string]struct {
		c        color.Color
		expected vga.Color
	}{
		"exact":       {vga.Palette[vga.Cyan], vga.Cyan},
		"orange":      {color.RGBA{0xb0, 0x50, 0x08, 0xff}, vga.Brown},
		"almostWhite": {color.RGBA{0xf8, 0xf8, 0xf8, 0xff}, vga.White},
		"transparent": {color.RGBA{}, vga.Black},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := vga.Color(nearest(tc.c)); got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	// red above blue, same size as the converted image
	src := image.NewRGBA(image.Rect(0, 0, vga.Width, 2*vga.Height))
	for y := range 2 * vga.Height {
		for x := range vga.Width {
			c := vga.Palette[vga.Red]
			if y >= vga.Height {
				c = vga.Palette[vga.Blue]
			}
			src.Set(x, y, c)
		}
	}

	for _, dither := range []bool{false, true} {
		buf := Convert(src, dither)
		tests := map[int]vga.ColorCode{
			0:              vga.NewColorCode(vga.Red, vga.Red),
			vga.Height / 2: vga.NewColorCode(vga.Red, vga.Blue),
			vga.Height - 1: vga.NewColorCode(vga.Blue, vga.Blue),
		}
		for row, expected := range tests {
			got := buf.Load(row, 3)
			if got.Char != upperHalfBlock || got.Color != expected {
				t.Errorf("dither %v, row %d: expected %#02x, got %v", dither, row, expected, got)
			}
		}
	}
}
