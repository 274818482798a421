// Package machine holds the process wide console and the failsafe output
// paths used during early boot and for fault reporting.
//
// The text buffer is a single device. Init creates the only console.Writer
// for it, all other code should write through DefaultWriter or the Writer
// returned by Init.
package machine

import (
	"sync"
	"sync/atomic"

	"github.com/clktmr/vgatext/drivers/console"
	"github.com/clktmr/vgatext/vga"
)

var (
	initOnce sync.Once
	cons     atomic.Pointer[console.Writer]
	mtx      sync.Mutex // serializes writes to cons
)

// Init creates the console, writing fg on bg. Only the first call has an
// effect, later calls return the existing console with its current state.
func Init(fg, bg vga.Color) *console.Writer {
	initOnce.Do(func() {
		cons.Store(console.NewWriter(displayBuffer(), fg, bg))
	})
	return cons.Load()
}

// Console returns the console created by Init or nil.
func Console() *console.Writer {
	return cons.Load()
}
