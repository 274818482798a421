package vga

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"testing"

	"github.com/sigurn/crc8"
)

func TestDecodeChecksum(t *testing.T) {
	var file bytes.Buffer
	zw := zlib.NewWriter(&file)
	raw := make([]byte, Size)
	raw[0] = 'x'
	hdr := header{Magic: magic, Width: Width, Height: Height}
	hdr.Checksum = crc8.Checksum(raw, crcTable) ^ 0xff
	binary.Write(zw, binary.BigEndian, hdr)
	zw.Write(raw)
	zw.Close()

	_, err := Decode(&file)
	if err != ErrChecksum {
		t.Fatalf("expected %v, got %v", ErrChecksum, err)
	}
}
