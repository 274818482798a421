// Package shot implements the shot command, which renders a text buffer
// snapshot to a PNG image.
package shot

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/clktmr/vgatext/tools/view"
	"github.com/clktmr/vgatext/vga"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const usageString = `Text buffer snapshot to PNG converter.

Usage: %s [flags] <snapshot>

`

var (
	flags = flag.NewFlagSet("shot", flag.ExitOnError)

	raw     = flags.Bool("raw", false, "snapshot is a plain memory dump")
	outfile = flags.String("o", "", "output `file` (default snapshot name with .png)")
	infile  string
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "shot")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 1 {
		infile = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}

	buf, err := view.Open(infile, *raw)
	if err != nil {
		log.Fatalln(err)
	}

	if *outfile == "" {
		*outfile = strings.TrimSuffix(infile, filepath.Ext(infile)) + ".png"
	}
	w, err := os.Create(*outfile)
	if err != nil {
		log.Fatalln(err)
	}
	defer w.Close()

	err = png.Encode(w, Render(buf, basicfont.Face7x13))
	if err != nil {
		log.Fatalln(err)
	}
}

// CellSize returns the size of a character cell in pixels for face. Faces
// are expected to be monospace.
func CellSize(face font.Face) image.Point {
	adv, _ := face.GlyphAdvance('M')
	return image.Point{adv.Ceil(), face.Metrics().Height.Ceil()}
}

// Render draws buf with face, using the adapter's default palette.
func Render(buf *vga.Buffer, face font.Face) *image.RGBA {
	cell := CellSize(face)
	img := image.NewRGBA(image.Rect(0, 0, vga.Width*cell.X, vga.Height*cell.Y))
	ascent := face.Metrics().Ascent

	d := font.Drawer{Dst: img, Face: face}
	for row := range vga.Height {
		for col := range vga.Width {
			ch := buf.Load(row, col)
			pt := image.Point{col * cell.X, row * cell.Y}
			r := image.Rectangle{pt, pt.Add(cell)}
			draw.Draw(img, r, image.NewUniform(ch.Color.Background()), image.Point{}, draw.Src)

			glyph := ch.Rune()
			if glyph == ' ' {
				continue
			}
			d.Src = image.NewUniform(ch.Color.Foreground())
			d.Dot = fixed.Point26_6{X: fixed.I(pt.X), Y: fixed.I(pt.Y) + ascent}
			d.DrawString(string(glyph))
		}
	}
	return img
}
