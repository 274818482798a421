package vga_test

import (
	"sync"
	"testing"

	"github.com/clktmr/vgatext/machine"
	"github.com/clktmr/vgatext/vga"
)

func device(t testing.TB) *vga.Buffer {
	cons := machine.Console()
	if cons == nil {
		t.Fatal("console not initialized")
	}
	return cons.Buffer()
}

// Cells stored through the buffer must be visible in the raw device memory.
func TestDeviceStore(t *testing.T) {
	buf := device(t)
	const row, col = 0, vga.Width - 2

	saved := [2]vga.Char{buf.Load(row, col), buf.Load(row, col+1)}
	t.Cleanup(func() {
		buf.Store(row, col, saved[0])
		buf.Store(row, col+1, saved[1])
	})

	buf.Store(row, col, vga.Char{Char: 'o', Color: 0x2f})
	buf.Store(row, col+1, vga.Char{Char: 'k', Color: 0x2f})

	raw := make([]byte, 4)
	_, err := buf.ReadAt(raw, (row*vga.Width+col)*2)
	if err != nil {
		t.Fatal(err)
	}
	expected := []byte{'o', 0x2f, 'k', 0x2f}
	if string(raw) != string(expected) {
		t.Fatalf("expected % x, got % x", expected, raw)
	}
}

// Cells sharing a 32 bit word are written from different goroutines. No store
// may clobber its neighbour.
func TestConcurrentNeighbours(t *testing.T) {
	buf := device(t)
	const row = 1

	var saved [vga.Width]vga.Char
	for col := range saved {
		saved[col] = buf.Load(row, col)
	}
	t.Cleanup(func() {
		for col, c := range saved {
			buf.Store(row, col, c)
		}
	})

	var wg sync.WaitGroup
	for col := range vga.Width {
		wg.Add(1)
		go func(col int) {
			defer wg.Done()
			for i := range 1000 {
				buf.Store(row, col, vga.Char{Char: byte('a' + col%26), Color: vga.ColorCode(i)})
			}
		}(col)
	}
	wg.Wait()

	for col := range vga.Width {
		got := buf.Load(row, col)
		expected := vga.Char{Char: byte('a' + col%26), Color: vga.ColorCode(999 & 0xff)}
		if got != expected {
			t.Errorf("col %d: expected %v, got %v", col, expected, got)
		}
	}
}

func BenchmarkStore(b *testing.B) {
	buf := device(b)
	saved := buf.Load(2, 0)
	defer buf.Store(2, 0, saved)

	b.ResetTimer()
	for i := range b.N {
		buf.Store(2, 0, vga.Char{Char: byte(i), Color: 0x07})
	}
}
