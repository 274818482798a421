// Package mmio provides volatile access to memory mapped device memory.
//
// Go has no volatile qualifier. Registers in this package are accessed with
// atomic operations instead, which the compiler never elides, merges or
// reorders. The package assumes a little endian CPU, as found on every PC
// compatible machine.
package mmio

import (
	"sync/atomic"
	"unsafe"
)

// Addr represents a physical memory address. On the target, physical memory
// is identity mapped during early boot.
type Addr uintptr

// U16 is a 16 bit wide device register.
//
// Since there are no 16 bit atomics, a U16 is accessed through the enclosing
// naturally aligned 32 bit word. A U16 must therefore be placed in 4 byte
// aligned memory with a size that is a multiple of 4, e.g. an even length
// array of U16 inside a struct with 32 bit alignment.
type U16 struct {
	r uint16
}

// word returns the aligned 32 bit word containing r and the bit offset of r
// within it.
func (r *U16) word() (w *uint32, shift uint) {
	w = (*uint32)(unsafe.Pointer(uintptr(unsafe.Pointer(&r.r)) &^ 3))
	shift = uint(uintptr(unsafe.Pointer(&r.r))&2) << 3
	return
}

// Load reads the register.
func (r *U16) Load() uint16 {
	w, shift := r.word()
	return uint16(atomic.LoadUint32(w) >> shift)
}

// Store writes v to the register with a single store. The neighbouring
// register sharing the same word is written back unchanged.
func (r *U16) Store(v uint16) {
	w, shift := r.word()
	for {
		old := atomic.LoadUint32(w)
		if atomic.CompareAndSwapUint32(w, old, old&^(0xffff<<shift)|uint32(v)<<shift) {
			return
		}
	}
}

// Addr returns the address of the register.
func (r *U16) Addr() uintptr {
	return uintptr(unsafe.Pointer(&r.r))
}
