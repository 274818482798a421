package machine

var excNames = [32]string{
	0:  "Divide Error",
	1:  "Debug",
	2:  "Non-maskable Interrupt",
	3:  "Breakpoint",
	4:  "Overflow",
	5:  "Bound Range Exceeded",
	6:  "Invalid Opcode",
	7:  "Device Not Available",
	8:  "Double Fault",
	10: "Invalid TSS",
	11: "Segment Not Present",
	12: "Stack-Segment Fault",
	13: "General Protection",
	14: "Page Fault",
	16: "x87 Floating-Point",
	17: "Alignment Check",
	18: "Machine Check",
	19: "SIMD Floating-Point",
	20: "Virtualization",
	21: "Control Protection",
	28: "Hypervisor Injection",
	29: "VMM Communication",
	30: "Security",
}

// Exception prints a report of a CPU exception to the console, for use by the
// interrupt handlers of unrecoverable faults.
//
//go:nosplit
func Exception(vector, errorCode, rip, rflags uint64) {
	var buf [16]byte
	name := excNames[vector&31]
	if name == "" {
		name = "Reserved"
	}
	DefaultWrite(0, []byte("Unhandled "))
	DefaultWrite(0, []byte(name))
	DefaultWrite(0, []byte(" Exception"))

	DefaultWrite(0, []byte("\nvector    0x"))
	DefaultWrite(0, itoa(buf[:], vector))
	DefaultWrite(0, []byte("\nerrorcode 0x"))
	DefaultWrite(0, itoa(buf[:], errorCode))
	DefaultWrite(0, []byte("\nrip       0x"))
	DefaultWrite(0, itoa(buf[:], rip))
	DefaultWrite(0, []byte("\nrflags    0x"))
	DefaultWrite(0, itoa(buf[:], rflags))
	DefaultWrite(0, []byte("\n"))
}

//go:nosplit
func itoa(buf []byte, num uint64) []byte {
	for i := range 16 {
		char := byte(num>>(60-(4*i))) & 0xf
		if char > 9 {
			char += 'a' - 10
		} else {
			char += '0'
		}
		buf[i] = char
	}
	return buf
}
