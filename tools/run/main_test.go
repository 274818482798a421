package run

import (
	"slices"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestEmulatorArgs(t *testing.T) {
	tests := map[string]struct {
		cmdline string
		args    []string
		fail    bool
	}{
		"default": {defaultEmulator, []string{"qemu-system-x86_64", "-device",
			"isa-debug-exit,iobase=0xf4,iosize=0x04", "-serial", "stdio",
			"-display", "none", "-kernel", "kernel.elf"}, false},
		"quoted": {`emu -name "my vm"`, []string{"emu", "-name", "my vm", "kernel.elf"}, false},
		"empty":  {"", nil, true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			args, err := emulatorArgs(tc.cmdline, "kernel.elf")
			if tc.fail {
				if err == nil {
					t.Fatalf("expected error, got %q", args)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(args, tc.args) {
				t.Fatalf("expected %q, got %q", tc.args, args)
			}
		})
	}
}

func TestVerdict(t *testing.T) {
	tests := map[string]struct {
		code int
		done bool
	}{
		"PASS":                         {0, true},
		"FAIL":                         {1, true},
		"panic: runtime error":         {1, true},
		"fatal error: all goroutines":  {1, true},
		"--- FAIL: TestWrap (0.00s)":   {0, false},
		"=== RUN   TestHello":          {0, false},
		"ok  	github.com/clktmr/vgatext": {0, false},
	}
	for line, tc := range tests {
		code, done := verdict(line)
		if code != tc.code || done != tc.done {
			t.Errorf("%q: expected %d/%v, got %d/%v", line, tc.code, tc.done, code, done)
		}
	}
}

func TestResult(t *testing.T) {
	tests := map[string]struct {
		code, status int
		seen         bool
		expected     int
	}{
		"passed":            {0, -1, true, 0},
		"failed":            {1, -1, true, 1},
		"debugExitSuccess":  {0, debugExitSuccess, false, 0},
		"debugExitFailed":   {0, debugExitFailed, false, 1},
		"passedButExitFail": {0, debugExitFailed, true, 1},
		"emulatorError":     {0, 2, false, 2},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := result(tc.code, tc.seen, tc.status); got != tc.expected {
				t.Fatalf("expected %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestScan(t *testing.T) {
	stopDelay = time.Millisecond
	var stopped atomic.Int32
	stop := func() { stopped.Add(1) }

	output := "=== RUN   TestHello\r\n--- PASS: TestHello\r\nPASS\r\ntrailing\r\n"
	code, seen := scan(strings.NewReader(output), stop, false)
	if !seen || code != 0 {
		t.Fatalf("expected pass, got %d/%v", code, seen)
	}

	output = "panic: boom\nFAIL\n"
	code, seen = scan(strings.NewReader(output), stop, false)
	if !seen || code != 1 {
		t.Fatalf("expected failure, got %d/%v", code, seen)
	}

	code, seen = scan(strings.NewReader("booting\n"), stop, false)
	if seen {
		t.Fatalf("unexpected verdict %d", code)
	}

	deadline := time.Now().Add(time.Second)
	for stopped.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if n := stopped.Load(); n != 2 {
		t.Fatalf("expected 2 stops, got %d", n)
	}
}
