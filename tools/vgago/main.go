package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/clktmr/vgatext/tools/disk"
	"github.com/clktmr/vgatext/tools/img"
	"github.com/clktmr/vgatext/tools/run"
	"github.com/clktmr/vgatext/tools/shot"
	"github.com/clktmr/vgatext/tools/view"
)

const usageString = `vgago is a tool for development of kernels with a VGA text console.

Usage:

	%s <command> [arguments]

The commands are:

	run      execute a kernel in an emulator and report the test result
	view     show a text buffer snapshot in the terminal
	shot     render a text buffer snapshot to a PNG image
	img      convert an image to a text buffer snapshot
	disk     create a bootable disk image
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "run":
		run.Main(flag.Args())
	case "view":
		view.Main(flag.Args())
	case "shot":
		shot.Main(flag.Args())
	case "img":
		img.Main(flag.Args())
	case "disk":
		disk.Main(flag.Args())
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}
