//go:build !baremetal

package machine

import "github.com/clktmr/vgatext/vga"

// Hosted builds have no adapter, the console writes to ordinary memory with
// the same layout.
func displayBuffer() *vga.Buffer {
	return new(vga.Buffer)
}
