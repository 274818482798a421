// Package view implements the view command, which shows a text buffer
// snapshot in the terminal.
package view

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/clktmr/vgatext/vga"
	"github.com/gdamore/tcell/v2"
)

const usageString = `Show a text buffer snapshot in the terminal.

Keys: r reloads the snapshot, q or Esc quits.

Usage: %s [flags] <snapshot>

`

var (
	flags = flag.NewFlagSet("view", flag.ExitOnError)

	raw      = flags.Bool("raw", false, "snapshot is a plain memory dump")
	snapshot string
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "view")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 1 {
		snapshot = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}

	buf, err := Open(snapshot, *raw)
	if err != nil {
		log.Fatalln(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalln(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalln(err)
	}
	defer screen.Fini()

	Draw(screen, buf)
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				return
			case ev.Rune() == 'r':
				if b, err := Open(snapshot, *raw); err == nil {
					buf = b
				}
				Draw(screen, buf)
			}
		}
	}
}

// Open reads a snapshot file, either in the format written by vga.Encode or
// as a raw memory dump.
func Open(name string, raw bool) (*vga.Buffer, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if raw {
		return vga.DecodeRaw(f)
	}
	return vga.Decode(f)
}

var palette [16]tcell.Color

func init() {
	for i := range palette {
		r, g, b, _ := vga.Color(i).RGBA()
		palette[i] = tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
	}
}

// Style returns the terminal style of a color attribute.
func Style(c vga.ColorCode) tcell.Style {
	return tcell.StyleDefault.
		Foreground(palette[c.Foreground()]).
		Background(palette[c.Background()])
}

// Draw renders buf to the top left corner of screen.
func Draw(screen tcell.Screen, buf *vga.Buffer) {
	screen.Clear()
	for row := range vga.Height {
		for col := range vga.Width {
			ch := buf.Load(row, col)
			screen.SetContent(col, row, ch.Rune(), nil, Style(ch.Color))
		}
	}
	screen.Show()
}
