//go:build !debug

// Package debug provides assertions that can be enabled with the debug build
// tag or will otherwise compile to no-ops.
//
// Drivers use them to check invariants of state that lives in device memory,
// where a violation would silently corrupt the screen instead of crashing.
package debug

// Guard more complex assertions (i.e. anything that could panic) with `if
// debug.Enabled{...}`, otherwise they can't be removed in release builds.
const Enabled = false

// Assert panics if b is false.
func Assert(b bool, message string) {}

// AssertRange panics if v is outside the closed interval [lo, hi].
func AssertRange(v, lo, hi int, message string) {}
