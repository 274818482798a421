//go:build baremetal

package machine

import "github.com/clktmr/vgatext/vga"

// On bare metal the bootloader leaves the adapter in text mode 3 with the
// buffer identity mapped.
func displayBuffer() *vga.Buffer {
	return vga.Map(vga.BaseAddr)
}
