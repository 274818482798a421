// Package img implements the img command, which converts a picture to a text
// buffer snapshot.
package img

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/clktmr/vgatext/vga"
	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
)

const usageString = `Image to text buffer snapshot converter.

The image is scaled to 80x50 pixels, two pixels per character cell. Note that
bright background colors need blinking to be disabled on the adapter.

Usage: %s [flags] <image>

`

var (
	flags = flag.NewFlagSet("img", flag.ExitOnError)

	dither  = flags.Bool("dither", false, "enable Floyd-Steinberg error diffusion")
	outfile = flags.String("o", "", "output `file` (default image name with .vga)")

	imagefile string
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "img")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 1 {
		imagefile = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}

	r, err := os.Open(imagefile)
	if err != nil {
		log.Fatalln(err)
	}
	defer r.Close()

	src, _, err := image.Decode(r)
	if err != nil {
		log.Fatalln(err)
	}

	if *outfile == "" {
		*outfile = strings.TrimSuffix(imagefile, filepath.Ext(imagefile)) + ".vga"
	}
	w, err := os.Create(*outfile)
	if err != nil {
		log.Fatalln(err)
	}
	defer w.Close()

	err = vga.Encode(w, Convert(src, *dither))
	if err != nil {
		log.Fatalln(err)
	}
}

const upperHalfBlock = 0xdf

// Convert draws src to a new text buffer. Every cell shows two pixels with
// the upper half block glyph, the upper pixel in the foreground and the lower
// pixel in the background color.
func Convert(src image.Image, dither bool) *vga.Buffer {
	scaled := image.NewRGBA(image.Rect(0, 0, vga.Width, 2*vga.Height))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	pixels := image.NewPaletted(scaled.Bounds(), vga.Palette)
	if dither {
		xdraw.FloydSteinberg.Draw(pixels, pixels.Bounds(), scaled, image.Point{})
	} else {
		for y := range pixels.Rect.Dy() {
			for x := range pixels.Rect.Dx() {
				pixels.SetColorIndex(x, y, nearest(scaled.At(x, y)))
			}
		}
	}

	buf := new(vga.Buffer)
	for row := range vga.Height {
		for col := range vga.Width {
			upper := vga.Color(pixels.ColorIndexAt(col, 2*row))
			lower := vga.Color(pixels.ColorIndexAt(col, 2*row+1))
			buf.Store(row, col, vga.Char{
				Char:  upperHalfBlock,
				Color: vga.NewColorCode(upper, lower),
			})
		}
	}
	return buf
}

var labPalette [16]colorful.Color

func init() {
	for i := range labPalette {
		labPalette[i], _ = colorful.MakeColor(vga.Palette[i])
	}
}

// nearest returns the palette index closest to c in CIE L*a*b* space, which
// matches perceived color differences better than RGB distance.
func nearest(c color.Color) uint8 {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return uint8(vga.Black)
	}

	best, dist := 0, math.Inf(1)
	for i, p := range labPalette {
		if d := cc.DistanceLab(p); d < dist {
			best, dist = i, d
		}
	}
	return uint8(best)
}
