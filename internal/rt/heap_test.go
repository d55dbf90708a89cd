package rt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brix/internal/rt"
)

// wantFault asserts that fn raises a runtime fault with the given code.
func wantFault(t *testing.T, code rt.FaultCode, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		rec := recover()
		require.NotNil(t, rec, "expected fault %s, got none", code)
		rtErr, ok := rec.(*rt.Error)
		require.True(t, ok, "expected *rt.Error, got %T: %v", rec, rec)
		require.Equal(t, code, rtErr.Code, "fault message: %s", rtErr.Message)
	}()
	fn()
}

func TestRetainReleasePairing(t *testing.T) {
	h := rt.NewHeap()
	m := h.NewFloatMatrix(2, 3)
	require.Equal(t, 1, h.RefCount(m))

	// Retain then release leaves the count unchanged net.
	h.Retain(m)
	require.Equal(t, 2, h.RefCount(m))
	h.Release(m)
	require.Equal(t, 1, h.RefCount(m))

	// N retains require N releases before destruction.
	const n = 5
	for i := 0; i < n; i++ {
		h.Retain(m)
	}
	for i := 0; i < n; i++ {
		h.Release(m)
	}
	require.Equal(t, 1, h.RefCount(m))

	h.Release(m)
	require.NoError(t, errOrNil(h.CheckLeaks()))
}

func errOrNil(e *rt.Error) error {
	if e == nil {
		return nil
	}
	return e
}

func TestUseAfterFinalReleaseIsFatal(t *testing.T) {
	h := rt.NewHeap()
	m := h.NewFloatMatrix(1, 1)
	h.Release(m)

	wantFault(t, rt.FaultUseAfterFree, func() { h.MatRows(m) })
	wantFault(t, rt.FaultDoubleRelease, func() { h.Release(m) })
	wantFault(t, rt.FaultUseAfterFree, func() { h.Retain(m) })
}

func TestNilHandleRetainReleaseAreNoOps(t *testing.T) {
	h := rt.NewHeap()
	require.Equal(t, rt.Handle(0), h.Retain(0))
	h.Release(0) // must not fault
}

func TestInvalidHandleIsFatal(t *testing.T) {
	h := rt.NewHeap()
	wantFault(t, rt.FaultInvalidHandle, func() { h.Release(99) })
	wantFault(t, rt.FaultInvalidHandle, func() { h.Get(99) })
}

func TestHandlesAreNeverReused(t *testing.T) {
	h := rt.NewHeap()
	a := h.NewFloatMatrix(1, 1)
	h.Release(a)
	b := h.NewFloatMatrix(1, 1)
	assert.NotEqual(t, a, b)
	h.Release(b)
}

func TestCheckLeaksReportsLiveObjects(t *testing.T) {
	h := rt.NewHeap()
	m := h.NewFloatMatrix(2, 2)
	s := h.NewString("x")

	leak := h.CheckLeaks()
	require.NotNil(t, leak)
	assert.Equal(t, rt.FaultHeapLeak, leak.Code)
	assert.Contains(t, leak.Message, "2 objects still alive")

	h.Release(m)
	h.Release(s)
	require.Nil(t, h.CheckLeaks())
}

func TestExtentOverflowIsFatal(t *testing.T) {
	h := rt.NewHeap()
	wantFault(t, rt.FaultExtentOverflow, func() { h.NewFloatMatrix(-1, 3) })
	wantFault(t, rt.FaultExtentOverflow, func() { h.NewIntMatrix(1<<32, 1<<32) })
}

func TestZeroExtentMatrixIsValid(t *testing.T) {
	h := rt.NewHeap()
	m := h.NewFloatMatrix(0, 5)
	assert.Equal(t, 0, h.MatRows(m))
	assert.Equal(t, 5, h.MatCols(m))
	h.Release(m)
}
