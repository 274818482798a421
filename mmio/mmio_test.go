package mmio_test

import (
	"bytes"
	"testing"
	"unsafe"

	"github.com/clktmr/vgatext/mmio"
)

type device struct {
	_    [0]uint32
	regs [32]mmio.U16
}

func TestStoreKeepsNeighbour(t *testing.T) {
	var dev device
	if uintptr(unsafe.Pointer(&dev))&3 != 0 {
		t.Fatal("device not aligned")
	}

	for i := range dev.regs {
		dev.regs[i].Store(uint16(0x1100 * (i + 1)))
	}
	dev.regs[5].Store(0xbeef)

	for i := range dev.regs {
		expected := uint16(0x1100 * (i + 1))
		if i == 5 {
			expected = 0xbeef
		}
		if got := dev.regs[i].Load(); got != expected {
			t.Errorf("register %d: expected %#04x, got %#04x", i, expected, got)
		}
	}
}

func TestByteOrder(t *testing.T) {
	var dev device
	dev.regs[1].Store(0x1e48)

	raw := (*[len(dev.regs) * 2]byte)(unsafe.Pointer(&dev.regs))
	if raw[2] != 0x48 || raw[3] != 0x1e {
		t.Fatalf("expected low byte first, got % x", raw[2:4])
	}
}

func TestReadWriteIO(t *testing.T) {
	testdata := []byte("Hello everybody, I'm Bonzo!")
	initBytes := make([]byte, 64)
	for i := range initBytes {
		initBytes[i] = byte(i+0x30) % 64
	}

	for busAlign := 0; busAlign < 7; busAlign += 1 {
		for sliceLen := 0; sliceLen < len(testdata); sliceLen += 1 {
			var dev device
			rxbuf := make([]byte, 64)

			mmio.WriteIO(dev.regs[:], 0, initBytes)

			tx := testdata[:sliceLen]
			mmio.WriteIO(dev.regs[:], busAlign, tx)

			rx := make([]byte, sliceLen)
			mmio.ReadIO(dev.regs[:], busAlign, rx)

			if !bytes.Equal(tx, rx) {
				t.Logf("tx %q", string(tx))
				t.Logf("rx %q", string(rx))
				t.Error("mismatch at ", busAlign, sliceLen)
			}

			mmio.ReadIO(dev.regs[:], 0, rxbuf)
			start := busAlign
			if !bytes.Equal(rxbuf[:start], initBytes[:start]) {
				t.Logf("got      %q", string(rxbuf[:start]))
				t.Logf("expected %q", string(initBytes[:start]))
				t.Error("modified preceding data", busAlign, sliceLen)
			}
			end := busAlign + sliceLen
			if !bytes.Equal(rxbuf[end:], initBytes[end:]) {
				t.Logf("got      %q", string(rxbuf[end:]))
				t.Logf("expected %q", string(initBytes[end:]))
				t.Error("modified succeeding data", busAlign, sliceLen)
			}
			if t.Failed() {
				t.Fatal()
			}
		}
	}
}
