package view

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/clktmr/vgatext/drivers/console"
	"github.com/clktmr/vgatext/vga"
	"github.com/gdamore/tcell/v2"
)

func TestDraw(t *testing.T) {
	buf := new(vga.Buffer)
	w := console.NewWriter(buf, vga.Yellow, vga.Blue)
	w.WriteString("Hi\xc3\xb6")

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(vga.Width, vga.Height)

	Draw(screen, buf)

	for col, r := range []rune("Hi■■") {
		got, _, style, _ := screen.GetContent(col, vga.Height-1)
		if got != r {
			t.Errorf("col %d: expected %q, got %q", col, r, got)
		}
		fg, bg, _ := style.Decompose()
		if fg != palette[vga.Yellow] || bg != palette[vga.Blue] {
			t.Errorf("col %d: unexpected colors %v on %v", col, fg, bg)
		}
	}
}

func TestOpen(t *testing.T) {
	buf := new(vga.Buffer)
	console.NewWriter(buf, vga.White, vga.Black).WriteString("saved")

	dir := t.TempDir()
	name := filepath.Join(dir, "screen.vga")
	f, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	if err := vga.Encode(f, buf); err != nil {
		t.Fatal(err)
	}
	f.Close()

	loaded, err := Open(name, false)
	if err != nil {
		t.Fatal(err)
	}
	if *loaded != *buf {
		t.Fatal("loaded snapshot differs")
	}

	if _, err := Open(name, true); err != vga.ErrFormat {
		t.Fatalf("expected %v for short raw dump, got %v", vga.ErrFormat, err)
	}
}
