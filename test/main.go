// Command test is a kernel running the tests which need the real text buffer.
// Build it with -tags baremetal and execute it with 'vgago run'.
package main

import (
	"os"
	"reflect"
	"runtime"
	"testing"

	"github.com/clktmr/vgatext/drivers"
	"github.com/clktmr/vgatext/machine"
	"github.com/clktmr/vgatext/vga"

	"github.com/clktmr/vgatext/test/console_test"
	"github.com/clktmr/vgatext/test/vga_test"
)

func init() {
	machine.Init(vga.LightGray, vga.Black).Clear()

	// Redirect stdout and stderr to the console
	r, w, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	os.Stdout, os.Stderr = w, w
	syswriter := drivers.NewSystemWriter(machine.DefaultWriter)
	go func() {
		buf := make([]byte, 512)
		for {
			n, err := r.Read(buf)
			syswriter(1, buf[:n])
			if err != nil {
				return
			}
		}
	}()
}

func main() {
	os.Args = append(os.Args, "-test.v")
	os.Args = append(os.Args, "-test.bench=.")
	testing.Main(
		matchAll,
		[]testing.InternalTest{
			newInternalTest(vga_test.TestDeviceStore),
			newInternalTest(vga_test.TestConcurrentNeighbours),
			newInternalTest(console_test.TestScroll),
			newInternalTest(console_test.TestConcurrentWrite),
		},
		[]testing.InternalBenchmark{
			newInternalBenchmark(vga_test.BenchmarkStore),
			newInternalBenchmark(console_test.BenchmarkWriteString),
			newInternalBenchmark(console_test.BenchmarkNewLine),
		}, nil,
	)
}

func matchAll(_ string, _ string) (bool, error) { return true, nil }

func newInternalTest(testFn func(*testing.T)) testing.InternalTest {
	return testing.InternalTest{
		runtime.FuncForPC(reflect.ValueOf(testFn).Pointer()).Name(),
		testFn,
	}
}

func newInternalBenchmark(testFn func(*testing.B)) testing.InternalBenchmark {
	return testing.InternalBenchmark{
		runtime.FuncForPC(reflect.ValueOf(testFn).Pointer()).Name(),
		testFn,
	}
}
