package rt

// Closures are the runtime basis for first-class functions with captured
// environments. The code value is borrowed; the environment record is
// exclusively owned. Retain/release on a closure transitively manages
// whatever the environment owns through the destructor contract: the
// capturing code supplies a destructor that releases its captures, and the
// heap invokes it exactly once when the closure's reference count reaches
// zero, before the environment record is released.

// NewEnv allocates an environment record owning a copy of slots. The heap
// treats the slots as opaque: contained heap references are released by
// the closure's destructor, not by the heap.
func (h *Heap) NewEnv(slots []Value) Handle {
	handle, obj := h.alloc(OKEnv)
	obj.Slots = append([]Value(nil), slots...)
	return handle
}

// EnvSlot returns slot i of an environment record.
func (h *Heap) EnvSlot(env Handle, i int) Value {
	obj := h.env("env_slot", env)
	if i < 0 || i >= len(obj.Slots) {
		fatal(FaultOutOfBounds, "env_slot: index %d out of bounds for length %d", i, len(obj.Slots))
	}
	return obj.Slots[i]
}

// EnvLen returns the slot count of an environment record.
func (h *Heap) EnvLen(env Handle) int {
	return len(h.env("env_len", env).Slots)
}

func (h *Heap) env(op string, a Handle) *Object {
	if a == 0 {
		fatalNilOperand(op)
	}
	obj := h.Get(a)
	if obj.Kind != OKEnv {
		fatal(FaultTypeMismatch, "%s: expected env, got %s", op, kindLabel(obj.Kind))
	}
	return obj
}

// NewClosure allocates a closure with reference count 1. fn is the
// non-owned code value; env is the owned environment handle (0 for a
// capture-free closure); drop is the optional environment destructor.
func (h *Heap) NewClosure(fn ClosureFn, env Handle, drop EnvDestructor) Handle {
	if fn == nil {
		fatalNilOperand("closure_new")
	}
	handle, obj := h.alloc(OKClosure)
	obj.Fn = fn
	obj.Env = env
	obj.EnvDrop = drop
	return handle
}

func (h *Heap) closure(op string, a Handle) *Object {
	if a == 0 {
		fatalNilOperand(op)
	}
	obj := h.Get(a)
	if obj.Kind != OKClosure {
		fatal(FaultTypeMismatch, "%s: expected closure, got %s", op, kindLabel(obj.Kind))
	}
	return obj
}

// ClosureEnv returns the environment handle of a closure.
func (h *Heap) ClosureEnv(a Handle) Handle {
	return h.closure("closure_env", a).Env
}

// CallClosure applies the closure's code value to args with its own
// environment. The runtime never schedules or suspends; the call runs to
// completion on the caller's thread.
func (h *Heap) CallClosure(a Handle, args ...Value) Value {
	obj := h.closure("closure_call", a)
	return obj.Fn(h, obj.Env, args)
}
