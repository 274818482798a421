package vga

import (
	"compress/zlib"
	"encoding/binary"
	"errors"
	"io"

	"github.com/sigurn/crc8"
)

// Snapshots of a text buffer are stored as a zlib stream of a header,
// followed by the raw cells.

var (
	ErrFormat   = errors.New("vga: not a text buffer snapshot")
	ErrChecksum = errors.New("vga: snapshot checksum mismatch")
)

var magic = [4]byte{'V', 'G', 'A', 'T'}

var crcTable = crc8.MakeTable(crc8.CRC8)

type header struct {
	Magic         [4]byte
	Width, Height uint16
	Checksum      uint8
}

// Encode writes a snapshot of b to w.
func Encode(w io.Writer, b *Buffer) error {
	raw := make([]byte, Size)
	b.ReadAt(raw, 0)

	var hdr = header{
		Magic:    magic,
		Width:    Width,
		Height:   Height,
		Checksum: crc8.Checksum(raw, crcTable),
	}

	zw := zlib.NewWriter(w)
	err := binary.Write(zw, binary.BigEndian, hdr)
	if err != nil {
		zw.Close()
		return err
	}

	_, err = zw.Write(raw)
	if err != nil {
		zw.Close()
		return err
	}

	return zw.Close()
}

// Decode reads a snapshot written by Encode into a newly allocated Buffer.
func Decode(r io.Reader) (*Buffer, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, ErrFormat
	}
	defer zr.Close()

	var hdr header
	err = binary.Read(zr, binary.BigEndian, &hdr)
	if err != nil {
		return nil, ErrFormat
	}
	if hdr.Magic != magic || hdr.Width != Width || hdr.Height != Height {
		return nil, ErrFormat
	}

	raw := make([]byte, Size)
	_, err = io.ReadFull(zr, raw)
	if err != nil {
		return nil, ErrFormat
	}
	if crc8.Checksum(raw, crcTable) != hdr.Checksum {
		return nil, ErrChecksum
	}

	b := new(Buffer)
	b.WriteAt(raw, 0)
	return b, nil
}

// DecodeRaw reads a plain memory dump of the text buffer, as written by e.g.
// QEMU's monitor command `pmemsave 0xb8000 4000 <file>`.
func DecodeRaw(r io.Reader) (*Buffer, error) {
	raw := make([]byte, Size)
	_, err := io.ReadFull(r, raw)
	if err != nil {
		return nil, ErrFormat
	}

	b := new(Buffer)
	b.WriteAt(raw, 0)
	return b, nil
}
