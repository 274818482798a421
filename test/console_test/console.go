package console_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/clktmr/vgatext/drivers/console"
	"github.com/clktmr/vgatext/machine"
	"github.com/clktmr/vgatext/vga"
)

// offscreen returns a writer on a copy of the device contents, so the test
// log on the screen isn't disturbed.
func offscreen(t testing.TB) (*console.Writer, *vga.Buffer) {
	cons := machine.Console()
	if cons == nil {
		t.Fatal("console not initialized")
	}
	raw := make([]byte, vga.Size)
	_, err := cons.Buffer().ReadAt(raw, 0)
	if err != nil {
		t.Fatal(err)
	}
	buf := new(vga.Buffer)
	_, err = buf.WriteAt(raw, 0)
	if err != nil {
		t.Fatal(err)
	}
	return console.NewWriter(buf, vga.White, vga.Blue), buf
}

func TestScroll(t *testing.T) {
	w, buf := offscreen(t)
	w.WriteString("\n")
	for i := range vga.Height {
		fmt.Fprintf(w, "line %d\n", i)
	}

	lines := strings.Split(buf.Text(), "\n")
	for i := range vga.Height - 1 {
		expected := fmt.Sprintf("line %d", i+1)
		if lines[i] != expected {
			t.Fatalf("row %d: expected %q, got %q", i, expected, lines[i])
		}
	}
	if lines[vga.Height-1] != "" {
		t.Fatalf("expected empty bottom row, got %q", lines[vga.Height-1])
	}
}

// Writes through the machine console are serialized, every line must show up
// unbroken.
func TestConcurrentWrite(t *testing.T) {
	const numGoroutines = 10

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := range numGoroutines {
		go func() {
			defer wg.Done()
			machine.DefaultWrite(1, fmt.Appendf(nil, "\nconcurrent write %d", i))
		}()
	}
	wg.Wait()
	machine.DefaultWrite(1, []byte("\n"))

	text := machine.Console().Buffer().Text()
	for i := range numGoroutines {
		expected := fmt.Sprintf("concurrent write %d", i)
		if !strings.Contains(text, expected) {
			t.Errorf("missing %q", expected)
		}
	}
}

func BenchmarkWriteString(b *testing.B) {
	w, _ := offscreen(b)
	s := strings.Repeat("x", vga.Width/2)

	b.ResetTimer()
	for range b.N {
		w.WriteString(s)
	}
}

func BenchmarkNewLine(b *testing.B) {
	w, _ := offscreen(b)

	b.ResetTimer()
	for range b.N {
		w.WriteByte('\n')
	}
}
