package rt

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"fortio.org/safecast"
)

// Handle is a stable, monotonically increasing reference to a heap object.
// Handle(0) is always invalid and is the runtime's "absent value".
type Handle uint32

// ObjectKind identifies the kind of heap object.
type ObjectKind uint8

const (
	OKFloatMatrix ObjectKind = iota
	OKIntMatrix
	OKComplexMatrix
	OKString
	OKClosure
	OKEnv
)

// ClosureFn is the non-owned code value of a closure. The heap stores it
// but never invokes or frees it; callers apply it with the closure's own
// environment handle.
type ClosureFn func(h *Heap, env Handle, args []Value) Value

// EnvDestructor releases whatever the environment owns. It is supplied by
// the capturing code at construction; the heap invokes it exactly once,
// before the environment record itself is released.
type EnvDestructor func(h *Heap, env Handle)

// Object is a refcounted heap record. RefCount starts at 1 on allocation;
// reaching zero destroys the payload and marks the record dead. A dead
// record is never observed by well-formed generated code.
type Object struct {
	Kind     ObjectKind
	RefCount int
	Alive    bool
	AllocID  uint64

	Rows, Cols int
	F64        []float64    // OKFloatMatrix
	I64        []int64      // OKIntMatrix
	C128       []complex128 // OKComplexMatrix
	Bytes      []byte       // OKString

	Fn      ClosureFn     // OKClosure
	Env     Handle        // OKClosure, owned
	EnvDrop EnvDestructor // OKClosure, optional

	Slots []Value // OKEnv, opaque to the heap
}

// Heap stores all owned runtime values. It is confined to a single logical
// owner thread: RefCount is not atomic and concurrent retain/release on a
// shared value is unsupported.
type Heap struct {
	next        Handle
	nextAllocID uint64
	objs        map[Handle]*Object

	// Diag receives one-line diagnostics for reported-recoverable errors
	// (non-square determinant, singular inverse). Defaults to stderr.
	Diag io.Writer
}

// NewHeap returns an empty heap writing diagnostics to stderr.
func NewHeap() *Heap {
	return &Heap{Diag: os.Stderr}
}

func (h *Heap) initIfNeeded() {
	if h.objs == nil {
		h.objs = make(map[Handle]*Object, 128)
	}
	if h.next == 0 {
		h.next = 1
	}
	if h.nextAllocID == 0 {
		h.nextAllocID = 1
	}
}

func (h *Heap) alloc(kind ObjectKind) (Handle, *Object) {
	h.initIfNeeded()
	handle := h.next
	h.next++
	allocID := h.nextAllocID
	h.nextAllocID++
	obj := &Object{
		Kind:     kind,
		RefCount: 1,
		Alive:    true,
		AllocID:  allocID,
	}
	h.objs[handle] = obj
	return handle, obj
}

// extent validates matrix dimensions and returns the element count.
// Negative or overflowing extents are fatal: there is no recoverable
// out-of-memory path anywhere in this runtime.
func (h *Heap) extent(op string, rows, cols int) int {
	if rows < 0 || cols < 0 {
		fatal(FaultExtentOverflow, "%s: negative extent %dx%d", op, rows, cols)
	}
	total64 := int64(rows) * int64(cols)
	if rows != 0 && total64/int64(rows) != int64(cols) {
		fatal(FaultExtentOverflow, "%s: extent overflow %dx%d", op, rows, cols)
	}
	total, err := safecast.Conv[int](total64)
	if err != nil {
		fatal(FaultExtentOverflow, "%s: extent overflow %dx%d", op, rows, cols)
	}
	return total
}

// Get resolves a handle to a live object. Handle 0, unknown handles and
// dead records are fatal.
func (h *Heap) Get(handle Handle) *Object {
	h.initIfNeeded()
	if handle == 0 {
		fatal(FaultInvalidHandle, "invalid handle 0")
	}
	obj, ok := h.objs[handle]
	if !ok || obj == nil {
		fatal(FaultInvalidHandle, "invalid handle %d", handle)
	}
	if !obj.Alive {
		fatal(FaultUseAfterFree, "use after free: handle %d (alloc=%d)", handle, obj.AllocID)
	}
	return obj
}

// Retain increments the reference count and returns the same handle.
// Retain on handle 0 is a no-op.
func (h *Heap) Retain(handle Handle) Handle {
	if handle == 0 {
		return 0
	}
	obj := h.Get(handle)
	obj.RefCount++
	return handle
}

// Release decrements the reference count; at zero it destroys owned
// payload resources and marks the record dead. Release on handle 0 is a
// no-op. Releasing a dead record is fatal.
func (h *Heap) Release(handle Handle) {
	if handle == 0 {
		return
	}
	h.initIfNeeded()
	obj, ok := h.objs[handle]
	if !ok || obj == nil {
		fatal(FaultInvalidHandle, "invalid handle %d", handle)
	}
	if !obj.Alive {
		fatal(FaultDoubleRelease, "double release: handle %d (alloc=%d)", handle, obj.AllocID)
	}
	obj.RefCount--
	if obj.RefCount > 0 {
		return
	}
	h.destroy(obj)
}

func (h *Heap) destroy(obj *Object) {
	obj.Alive = false

	switch obj.Kind {
	case OKClosure:
		// The destructor is a capability supplied by the capturing code:
		// it releases whatever the environment owns. It runs exactly once,
		// before the environment record itself goes away. The code value
		// is never freed.
		if obj.EnvDrop != nil {
			obj.EnvDrop(h, obj.Env)
		}
		h.Release(obj.Env)
		obj.Fn = nil
		obj.EnvDrop = nil
		obj.Env = 0
	case OKEnv:
		// Environment slots are opaque: captured references are released
		// by the closure destructor, never walked by the heap.
		obj.Slots = nil
	case OKFloatMatrix:
		obj.F64 = nil
	case OKIntMatrix:
		obj.I64 = nil
	case OKComplexMatrix:
		obj.C128 = nil
	case OKString:
		obj.Bytes = nil
	}
}

// RefCount returns the current reference count of a live object.
func (h *Heap) RefCount(handle Handle) int {
	return h.Get(handle).RefCount
}

func (h *Heap) lookup(handle Handle) (*Object, bool) {
	if h == nil {
		return nil, false
	}
	h.initIfNeeded()
	obj, ok := h.objs[handle]
	return obj, ok && obj != nil
}

// CheckLeaks returns a FaultHeapLeak error describing objects still alive,
// or nil when every allocation has been released.
func (h *Heap) CheckLeaks() *Error {
	if h == nil {
		return nil
	}
	leakCount := 0
	kindCounts := make(map[ObjectKind]int, 8)
	const maxList = 8
	list := make([]string, 0, maxList)
	for handle := Handle(1); handle < h.next; handle++ {
		obj, ok := h.lookup(handle)
		if !ok || !obj.Alive {
			continue
		}
		leakCount++
		kindCounts[obj.Kind]++
		if len(list) < maxList {
			list = append(list, fmt.Sprintf("%s#%d(rc=%d)", kindLabel(obj.Kind), handle, obj.RefCount))
		}
	}
	if leakCount == 0 {
		return nil
	}
	msg := fmt.Sprintf("heap leak detected: %d objects still alive", leakCount)
	kindList := make([]string, 0, len(kindCounts))
	for kind := range kindCounts {
		kindList = append(kindList, fmt.Sprintf("%s=%d", kindLabel(kind), kindCounts[kind]))
	}
	sort.Strings(kindList)
	if len(kindList) > 0 {
		msg += " (" + strings.Join(kindList, ", ") + ")"
	}
	if len(list) > 0 {
		msg += ": " + strings.Join(list, ", ")
	}
	return fault(FaultHeapLeak, "%s", msg)
}

func (h *Heap) reportf(code FaultCode, format string, args ...any) {
	w := h.Diag
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "fault %s: %s\n", code, fmt.Sprintf(format, args...))
}

func kindLabel(k ObjectKind) string {
	switch k {
	case OKFloatMatrix:
		return "matrix"
	case OKIntMatrix:
		return "intmatrix"
	case OKComplexMatrix:
		return "complexmatrix"
	case OKString:
		return "string"
	case OKClosure:
		return "closure"
	case OKEnv:
		return "env"
	default:
		return "object"
	}
}
