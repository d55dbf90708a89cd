package rt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brix/internal/rt"
)

func TestClosureCallSeesEnv(t *testing.T) {
	h := rt.NewHeap()
	env := h.NewEnv([]rt.Value{rt.MakeInt(40)})

	add := func(h *rt.Heap, env rt.Handle, args []rt.Value) rt.Value {
		base := h.EnvSlot(env, 0)
		return rt.MakeInt(base.Int + args[0].Int)
	}
	c := h.NewClosure(add, env, nil)

	out := h.CallClosure(c, rt.MakeInt(2))
	assert.Equal(t, rt.VKInt, out.Kind)
	assert.Equal(t, int64(42), out.Int)
}

func TestDestructorRunsExactlyOnceBeforeEnvFreed(t *testing.T) {
	h := rt.NewHeap()
	env := h.NewEnv([]rt.Value{rt.MakeFloat(1.5)})

	calls := 0
	drop := func(h *rt.Heap, env rt.Handle) {
		calls++
		// The environment must still be readable from inside the destructor.
		assert.Equal(t, 1.5, h.EnvSlot(env, 0).Float)
	}
	c := h.NewClosure(func(_ *rt.Heap, _ rt.Handle, _ []rt.Value) rt.Value {
		return rt.MakeInt(0)
	}, env, drop)

	h.Retain(c)
	h.Release(c)
	assert.Equal(t, 0, calls, "destructor must wait for the final release")

	h.Release(c)
	assert.Equal(t, 1, calls)
	wantFault(t, rt.FaultUseAfterFree, func() { h.EnvLen(env) })
}

func TestClosureWithoutDestructorStillFreesEnv(t *testing.T) {
	h := rt.NewHeap()
	env := h.NewEnv([]rt.Value{rt.MakeInt(7)})
	c := h.NewClosure(func(_ *rt.Heap, _ rt.Handle, _ []rt.Value) rt.Value {
		return rt.MakeInt(0)
	}, env, nil)

	h.Release(c)
	wantFault(t, rt.FaultUseAfterFree, func() { h.EnvLen(env) })
	assert.Nil(t, h.CheckLeaks())
}

func TestDestructorReleasesCapturesTransitively(t *testing.T) {
	h := rt.NewHeap()
	mat := h.NewFloatMatrixFrom(1, 1, []float64{3})
	env := h.NewEnv([]rt.Value{rt.MakeHandle(mat)})

	drop := func(h *rt.Heap, env rt.Handle) {
		h.Release(h.EnvSlot(env, 0).H)
	}
	c := h.NewClosure(func(h *rt.Heap, env rt.Handle, _ []rt.Value) rt.Value {
		return rt.MakeFloat(h.MatAt(h.EnvSlot(env, 0).H, 0, 0))
	}, env, drop)

	assert.Equal(t, 3.0, h.CallClosure(c).Float)

	h.Release(c)
	wantFault(t, rt.FaultUseAfterFree, func() { h.MatRows(mat) })
	assert.Nil(t, h.CheckLeaks())
}

func TestCapturedClosureChain(t *testing.T) {
	h := rt.NewHeap()

	// inner captures nothing; outer captures inner.
	inner := h.NewClosure(func(_ *rt.Heap, _ rt.Handle, _ []rt.Value) rt.Value {
		return rt.MakeInt(1)
	}, 0, nil)
	outerEnv := h.NewEnv([]rt.Value{rt.MakeHandle(inner)})
	outer := h.NewClosure(func(h *rt.Heap, env rt.Handle, _ []rt.Value) rt.Value {
		return h.CallClosure(h.EnvSlot(env, 0).H)
	}, outerEnv, func(h *rt.Heap, env rt.Handle) {
		h.Release(h.EnvSlot(env, 0).H)
	})

	require.Equal(t, int64(1), h.CallClosure(outer).Int)

	h.Release(outer)
	wantFault(t, rt.FaultUseAfterFree, func() { h.CallClosure(inner) })
	assert.Nil(t, h.CheckLeaks())
}

func TestNilCodeValueIsFatal(t *testing.T) {
	h := rt.NewHeap()
	wantFault(t, rt.FaultNilOperand, func() { h.NewClosure(nil, 0, nil) })
}

func TestEnvSlotBounds(t *testing.T) {
	h := rt.NewHeap()
	env := h.NewEnv([]rt.Value{rt.MakeInt(1)})
	assert.Equal(t, 1, h.EnvLen(env))
	wantFault(t, rt.FaultOutOfBounds, func() { h.EnvSlot(env, 1) })
	wantFault(t, rt.FaultOutOfBounds, func() { h.EnvSlot(env, -1) })
}
