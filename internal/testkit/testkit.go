// Package testkit is the reporting harness for generated Brix test
// blocks. A test body is a plain function receiving a *T; failed
// expectations record messages instead of transferring control, and the
// runner folds each body into a pass/fail result. Values are only read
// through the runtime's public equality/length/containment accessors.
package testkit

import (
	"fmt"
	"math"

	"brix/internal/rt"
)

// T collects expectation failures for one test body. The zero value is
// ready to use.
type T struct {
	failures []string
}

// Failf records a failure message. The body keeps running; there is no
// non-local transfer out of a test.
func (t *T) Failf(format string, args ...any) {
	t.failures = append(t.failures, fmt.Sprintf(format, args...))
}

// Failed reports whether any expectation failed so far.
func (t *T) Failed() bool {
	return len(t.failures) > 0
}

// ExpectTrue records a failure unless cond holds.
func (t *T) ExpectTrue(cond bool, what string) {
	if !cond {
		t.Failf("expected %s", what)
	}
}

// ExpectFloat records a failure unless got is within tol of want.
func (t *T) ExpectFloat(got, want, tol float64, what string) {
	if math.Abs(got-want) > tol {
		t.Failf("%s: got %g, want %g (tol %g)", what, got, want, tol)
	}
}

// ExpectInt records a failure unless got equals want.
func (t *T) ExpectInt(got, want int64, what string) {
	if got != want {
		t.Failf("%s: got %d, want %d", what, got, want)
	}
}

// ExpectStrEq records a failure unless the two runtime strings compare
// equal by value.
func (t *T) ExpectStrEq(h *rt.Heap, got, want rt.Handle) {
	if !h.StrEq(got, want) {
		t.Failf("strings differ: got %q, want %q", h.StrData(got), h.StrData(want))
	}
}

// ExpectStrContains records a failure unless sub occurs in s.
func (t *T) ExpectStrContains(h *rt.Heap, s, sub rt.Handle) {
	if !h.StrContains(s, sub) {
		t.Failf("string %q does not contain %q", h.StrData(s), h.StrData(sub))
	}
}

// ExpectMatEq records a failure unless the two float matrices compare
// equal elementwise within tol.
func (t *T) ExpectMatEq(h *rt.Heap, got, want rt.Handle, tol float64) {
	if !h.MatApproxEq(got, want, tol) {
		t.Failf("matrices differ: got %dx%d, want %dx%d (tol %g)",
			h.MatRows(got), h.MatCols(got), h.MatRows(want), h.MatCols(want), tol)
	}
}
