// Package rt implements the reference-counted value runtime of the Brix
// language: the ownership kernel, the five heap value types, elementwise
// arithmetic with promotion, and the dense linear-algebra entry points
// generated code calls into.
package rt

import "fmt"

// ValueKind identifies the runtime type of a Value.
type ValueKind uint8

const (
	// VKInvalid represents an invalid value.
	VKInvalid ValueKind = iota
	// VKInt represents a signed 64-bit integer scalar.
	VKInt
	// VKFloat represents a 64-bit float scalar.
	VKFloat
	// VKAtom represents an interned atom id.
	VKAtom
	// VKHandle represents a reference to a heap object.
	VKHandle
)

// String returns a human-readable name for the value kind.
func (k ValueKind) String() string {
	switch k {
	case VKInvalid:
		return "invalid"
	case VKInt:
		return "int"
	case VKFloat:
		return "float"
	case VKAtom:
		return "atom"
	case VKHandle:
		return "handle"
	default:
		return fmt.Sprintf("ValueKind(%d)", k)
	}
}

// Value is a scalar or a heap reference as stored in closure environments.
// Heap values are identified by Handle; scalars and atoms are immediate.
type Value struct {
	Kind  ValueKind
	Int   int64   // for VKInt and VKAtom
	Float float64 // for VKFloat
	H     Handle  // for VKHandle
}

// IsHeap reports whether the value references a heap object.
func (v Value) IsHeap() bool {
	return v.Kind == VKHandle && v.H != 0
}

// MakeInt constructs an integer scalar value.
func MakeInt(i int64) Value {
	return Value{Kind: VKInt, Int: i}
}

// MakeFloat constructs a float scalar value.
func MakeFloat(f float64) Value {
	return Value{Kind: VKFloat, Float: f}
}

// MakeAtom constructs an atom value from an interned id.
func MakeAtom(id int64) Value {
	return Value{Kind: VKAtom, Int: id}
}

// MakeHandle constructs a heap reference value.
func MakeHandle(h Handle) Value {
	return Value{Kind: VKHandle, H: h}
}
