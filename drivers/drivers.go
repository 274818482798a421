// Builds upon the vga package to provide common interfaces and higher-level
// features.
package drivers

import "io"

// SystemWriter is the signature of the runtime's hook for print(), println()
// and panic messages.
type SystemWriter func(int, []byte) int

// Returns a SystemWriter from an io.Writer, e.g. a console.Writer. The file
// descriptor is ignored, stdout and stderr end up on the same device.
func NewSystemWriter(w io.Writer) SystemWriter {
	return func(fd int, p []byte) int {
		n, _ := w.Write(p)
		return n
	}
}
