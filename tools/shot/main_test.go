package shot

import (
	"image"
	"image/color"
	"testing"

	"github.com/clktmr/vgatext/drivers/console"
	"github.com/clktmr/vgatext/vga"
	"golang.org/x/image/font/basicfont"
)

func TestRender(t *testing.T) {
	buf := new(vga.Buffer)
	console.NewWriter(buf, vga.White, vga.Blue).WriteString("A ")

	face := basicfont.Face7x13
	cell := CellSize(face)
	if cell != (image.Point{7, 13}) {
		t.Fatalf("unexpected cell size %v", cell)
	}

	img := Render(buf, face)
	if b := img.Bounds(); b.Dx() != vga.Width*7 || b.Dy() != vga.Height*13 {
		t.Fatalf("unexpected image size %v", b)
	}

	eq := func(a, b color.Color) bool {
		r0, g0, b0, a0 := a.RGBA()
		r1, g1, b1, a1 := b.RGBA()
		return r0 == r1 && g0 == g1 && b0 == b1 && a0 == a1
	}

	// the blank cell is blue, the glyph cell has some white pixels
	origin := image.Point{0, (vga.Height - 1) * 13}
	if c := img.At(origin.X+7, origin.Y); !eq(c, vga.Blue) {
		t.Fatalf("expected blue background, got %v", c)
	}
	lit := 0
	for y := origin.Y; y < origin.Y+13; y++ {
		for x := origin.X; x < origin.X+7; x++ {
			if eq(img.At(x, y), vga.White) {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("glyph not drawn")
	}

	// untouched cells are black
	if c := img.At(0, 0); !eq(c, vga.Black) {
		t.Fatalf("expected black, got %v", c)
	}
}
