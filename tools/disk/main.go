// Package disk implements the disk command, which creates a disk image with a
// bootable FAT32 partition holding the kernel and bootloader files.
package disk

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	diskfs "github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/disk"
	"github.com/diskfs/go-diskfs/filesystem"
	"github.com/diskfs/go-diskfs/partition/mbr"
)

const usageString = `Create a disk image with a bootable FAT32 partition.

Every file argument is copied to the root directory of the partition. Use
src=dst to place it somewhere else, e.g. grub.cfg=/boot/grub/grub.cfg. The
bootloader itself must be installed separately.

Usage: %s [flags] <file>...

`

var (
	flags = flag.NewFlagSet("disk", flag.ExitOnError)

	outfile = flags.String("o", "disk.img", "output `file`")
	size    = flags.Int64("size", 64, "image size in MiB")
	label   = flags.String("label", "VGATEXT", "volume label")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "disk")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() < 1 {
		flags.Usage()
		os.Exit(1)
	}

	files := make([]File, 0, flags.NArg())
	for _, arg := range flags.Args() {
		files = append(files, ParseFile(arg))
	}

	err := Create(*outfile, *size<<20, *label, files)
	if err != nil {
		log.Fatalln("disk:", err)
	}
}

// File is a host file and its destination path in the partition.
type File struct {
	Src, Dst string
}

// ParseFile parses a command line argument of the form src[=dst].
func ParseFile(arg string) File {
	src, dst, ok := strings.Cut(arg, "=")
	if !ok {
		dst = filepath.Base(src)
	}
	return File{Src: src, Dst: path.Join("/", dst)}
}

const (
	sectorSize     = 512
	partitionStart = 2048 // 1 MiB aligned
)

var ErrSize = errors.New("image too small")

// Create writes a disk image of size bytes to name, with a single bootable
// FAT32 partition containing files.
func Create(name string, size int64, label string, files []File) error {
	sectors := size/sectorSize - partitionStart
	if sectors <= 0 {
		return ErrSize
	}

	img, err := diskfs.Create(name, size, diskfs.Raw, diskfs.SectorSizeDefault)
	if err != nil {
		return err
	}

	table := &mbr.Table{
		LogicalSectorSize:  sectorSize,
		PhysicalSectorSize: sectorSize,
		Partitions: []*mbr.Partition{{
			Bootable: true,
			Type:     mbr.Fat32LBA,
			Start:    partitionStart,
			Size:     uint32(sectors),
		}},
	}
	err = img.Partition(table)
	if err != nil {
		return fmt.Errorf("partition: %w", err)
	}

	fs, err := img.CreateFilesystem(disk.FilesystemSpec{
		Partition:   1,
		FSType:      filesystem.TypeFat32,
		VolumeLabel: label,
	})
	if err != nil {
		return fmt.Errorf("create filesystem: %w", err)
	}

	for _, f := range files {
		err = copyFile(fs, f)
		if err != nil {
			return fmt.Errorf("%s: %w", f.Src, err)
		}
	}
	return nil
}

func copyFile(fs filesystem.FileSystem, f File) error {
	src, err := os.Open(f.Src)
	if err != nil {
		return err
	}
	defer src.Close()

	if dir := path.Dir(f.Dst); dir != "/" {
		err = fs.Mkdir(dir)
		if err != nil {
			return err
		}
	}

	dst, err := fs.OpenFile(f.Dst, os.O_CREATE|os.O_RDWR)
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, src)
	return err
}
