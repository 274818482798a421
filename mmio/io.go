package mmio

// WriteIO copies p to regs, starting at byte offset off. Registers hold their
// low byte at the lower address. Note that it needs to read a register if p's
// start or end doesn't fall on a register boundary.
func WriteIO(regs []U16, off int, p []byte) {
	i := off >> 1
	if off&1 != 0 && len(p) > 0 { // first register, high byte only
		regs[i].Store(regs[i].Load()&0x00ff | uint16(p[0])<<8)
		p, i = p[1:], i+1
	}
	for ; len(p) >= 2; p, i = p[2:], i+1 {
		regs[i].Store(uint16(p[0]) | uint16(p[1])<<8)
	}
	if len(p) == 1 { // last register, low byte only
		regs[i].Store(regs[i].Load()&0xff00 | uint16(p[0]))
	}
}

// ReadIO copies from regs, starting at byte offset off, to p.
func ReadIO(regs []U16, off int, p []byte) {
	i := off >> 1
	if off&1 != 0 && len(p) > 0 {
		p[0] = byte(regs[i].Load() >> 8)
		p, i = p[1:], i+1
	}
	for ; len(p) >= 2; p, i = p[2:], i+1 {
		v := regs[i].Load()
		p[0], p[1] = byte(v), byte(v>>8)
	}
	if len(p) == 1 {
		p[0] = byte(regs[i].Load())
	}
}
