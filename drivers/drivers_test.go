package drivers_test

import (
	"strings"
	"testing"

	"github.com/clktmr/vgatext/drivers"
	"github.com/clktmr/vgatext/drivers/console"
	"github.com/clktmr/vgatext/vga"
)

func TestSystemWriter(t *testing.T) {
	buf := new(vga.Buffer)
	syswriter := drivers.NewSystemWriter(console.NewWriter(buf, vga.LightGray, vga.Black))

	p := []byte("panic: oops\n")
	if n := syswriter(2, p); n != len(p) {
		t.Fatalf("expected %d, got %d", len(p), n)
	}
	if !strings.Contains(buf.Text(), "panic: oops") {
		t.Fatalf("message not on screen:\n%s", buf.Text())
	}
}
