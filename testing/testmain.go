// Package testing provides a TestMain for tests that should also run on the
// target, where the text console is the only output device.
package testing

import (
	"io"
	"os"
	"testing"

	"github.com/clktmr/vgatext/machine"
	"github.com/clktmr/vgatext/vga"
)

// TestMain should be used as TestMain for packages of this module.
//
// It initializes the machine console and mirrors everything the tests write
// to stdout to it, including the final PASS or FAIL line which the run tool
// waits for.
func TestMain(m *testing.M) {
	machine.Init(vga.LightGray, vga.Black)

	stdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	os.Stdout = w

	done := make(chan struct{})
	go func() {
		io.Copy(io.MultiWriter(stdout, machine.DefaultWriter), r)
		close(done)
	}()

	code := m.Run()

	os.Stdout = stdout
	w.Close()
	<-done
	r.Close()

	os.Exit(code)
}
