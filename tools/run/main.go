// Package run implements the run command, which boots a kernel in an emulator
// and reports the result of the tests it runs.
package run

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aymanbagabas/go-pty"
	"github.com/buildkite/shellwords"
	"golang.org/x/term"
)

const usageString = `Run a kernel in an emulator.

The emulator's serial output is printed until a line "PASS", "FAIL" or a
panic is seen. The exit code is 0 if the tests passed.

Usage: %s [flags] <kernel>

`

// The emulator command line used if neither -emu nor $VGATEXT_RUN are set.
const defaultEmulator = "qemu-system-x86_64 -device isa-debug-exit,iobase=0xf4,iosize=0x04 -serial stdio -display none -kernel"

var (
	flags = flag.NewFlagSet("run", flag.ExitOnError)

	kernel   string
	emulator = flags.String("emu", "", "emulator command, the kernel path is appended (default $VGATEXT_RUN or qemu)")
	usePty   = flags.Bool("pty", false, "run the emulator in a pseudo terminal")
	timeout  = flags.Duration("timeout", 0, "stop the emulator after `duration` and fail")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "run")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 1 {
		kernel = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}

	cmdline := *emulator
	if cmdline == "" {
		cmdline = os.Getenv("VGATEXT_RUN")
	}
	if cmdline == "" {
		cmdline = defaultEmulator
	}
	cmdargs, err := emulatorArgs(cmdline, kernel)
	if err != nil {
		log.Fatalln("run:", err)
	}

	var code int
	if *usePty {
		code, err = runPty(cmdargs)
	} else {
		code, err = runPipe(cmdargs)
	}
	if err != nil {
		log.Fatalln("run:", err)
	}
	os.Exit(code)
}

func emulatorArgs(cmdline, kernel string) ([]string, error) {
	args, err := shellwords.Split(cmdline)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, errors.New("empty emulator command")
	}
	return append(args, kernel), nil
}

// The kernel can report its result by writing to QEMU's isa-debug-exit port,
// which makes QEMU exit with status (value << 1) | 1.
const (
	debugExitSuccess = 0x10<<1 | 1
	debugExitFailed  = 0x11<<1 | 1
)

// verdict reports whether line ends a test run and its exit code.
func verdict(line string) (code int, done bool) {
	switch {
	case strings.HasPrefix(line, "fatal error:"), strings.HasPrefix(line, "panic:"):
		return 1, true
	case line == "FAIL":
		return 1, true
	case line == "PASS":
		return 0, true
	}
	return 0, false
}

// result combines the verdict seen in the output with the emulator's exit
// status.
func result(code int, seen bool, status int) int {
	switch {
	case status == debugExitFailed:
		return 1
	case seen:
		return code
	case status == debugExitSuccess:
		return 0
	case timedOut.Load():
		return 1
	}
	return status
}

// Time to let a panic print its stack trace before stopping the emulator.
var stopDelay = 500 * time.Millisecond

// scan prints the emulator's output line by line. After the first verdict it
// keeps printing for stopDelay and calls stop.
func scan(r io.Reader, stop func(), raw bool) (code int, seen bool) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if raw {
			log.Print(line + "\r")
		} else {
			log.Println(line)
		}
		if seen {
			continue
		}
		if code, seen = verdict(line); seen {
			time.AfterFunc(stopDelay, stop)
		}
	}
	return
}

var timedOut atomic.Bool

// watchdog calls stop on interrupt or after the timeout.
func watchdog(stop func()) {
	sigintr := make(chan os.Signal, 1)
	signal.Notify(sigintr, os.Interrupt)

	var expired <-chan time.Time
	if *timeout > 0 {
		expired = time.After(*timeout)
	}

	go func() {
		select {
		case <-sigintr:
		case <-expired:
			timedOut.Store(true)
			log.Println("run: timeout")
		}
		stop()
	}()
}

func runPipe(args []string) (int, error) {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stderr = os.Stderr
	processGroupEnable(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return 0, fmt.Errorf("open stdout: %w", err)
	}

	err = cmd.Start()
	if err != nil {
		return 0, fmt.Errorf("start command: %w", err)
	}

	stop := sync.OnceFunc(func() {
		stdout.Close()
		err := processGroupKill(cmd)
		if err != nil {
			log.Println(err)
		}
	})
	watchdog(stop)

	code, seen := scan(stdout, stop, false)
	cmd.Wait()
	return result(code, seen, cmd.ProcessState.ExitCode()), nil
}

func runPty(args []string) (int, error) {
	p, err := pty.New()
	if err != nil {
		return 0, fmt.Errorf("open pty: %w", err)
	}
	defer p.Close()

	raw := false
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return 0, err
		}
		defer term.Restore(fd, state)
		raw = true
		go io.Copy(p, os.Stdin)
	}

	cmd := p.Command(args[0], args[1:]...)
	err = cmd.Start()
	if err != nil {
		return 0, fmt.Errorf("start command: %w", err)
	}

	stop := sync.OnceFunc(func() {
		p.Close()
		cmd.Process.Kill()
	})
	watchdog(stop)

	code, seen := scan(p, stop, raw)
	cmd.Wait()
	return result(code, seen, cmd.ProcessState.ExitCode()), nil
}
