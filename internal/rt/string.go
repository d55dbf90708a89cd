package rt

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// NewString allocates an immutable string value with reference count 1.
// Empty input yields a valid zero-length string, never an absent payload.
// Every string-producing operation allocates a new value; a published
// string is never mutated.
func (h *Heap) NewString(s string) Handle {
	handle, obj := h.alloc(OKString)
	obj.Bytes = []byte(s)
	return handle
}

func (h *Heap) str(op string, a Handle) *Object {
	if a == 0 {
		fatalNilOperand(op)
	}
	obj := h.Get(a)
	if obj.Kind != OKString {
		fatal(FaultTypeMismatch, "%s: expected string, got %s", op, kindLabel(obj.Kind))
	}
	return obj
}

// StrData returns the string contents.
func (h *Heap) StrData(a Handle) string {
	return string(h.str("str_data", a).Bytes)
}

// StrByteSize returns the length in bytes.
func (h *Heap) StrByteSize(a Handle) int {
	return len(h.str("str_byte_size", a).Bytes)
}

// StrLen returns the length in characters.
func (h *Heap) StrLen(a Handle) int {
	return utf8.RuneCount(h.str("str_length", a).Bytes)
}

// StrConcat returns a fresh string holding a followed by b.
func (h *Heap) StrConcat(a, b Handle) Handle {
	ao := h.str("str_concat", a)
	bo := h.str("str_concat", b)
	out := make([]byte, 0, len(ao.Bytes)+len(bo.Bytes))
	out = append(out, ao.Bytes...)
	out = append(out, bo.Bytes...)
	handle, obj := h.alloc(OKString)
	obj.Bytes = out
	return handle
}

// StrEq reports value equality: length first, then byte content.
// Identity is irrelevant.
func (h *Heap) StrEq(a, b Handle) bool {
	ao := h.str("str_eq", a)
	bo := h.str("str_eq", b)
	if len(ao.Bytes) != len(bo.Bytes) {
		return false
	}
	return string(ao.Bytes) == string(bo.Bytes)
}

// StrContains reports whether sub occurs in a.
func (h *Heap) StrContains(a, sub Handle) bool {
	ao := h.str("str_contains", a)
	so := h.str("str_contains", sub)
	return strings.Contains(string(ao.Bytes), string(so.Bytes))
}

// StrUpper returns a fresh uppercased string.
func (h *Heap) StrUpper(a Handle) Handle {
	obj := h.str("str_uppercase", a)
	return h.NewString(upperCaser.String(string(obj.Bytes)))
}

// StrLower returns a fresh lowercased string.
func (h *Heap) StrLower(a Handle) Handle {
	obj := h.str("str_lowercase", a)
	return h.NewString(lowerCaser.String(string(obj.Bytes)))
}

// StrCapitalize returns a fresh string with the first character
// uppercased and the rest untouched.
func (h *Heap) StrCapitalize(a Handle) Handle {
	obj := h.str("str_capitalize", a)
	s := string(obj.Bytes)
	if s == "" {
		return h.NewString("")
	}
	_, size := utf8.DecodeRuneInString(s)
	return h.NewString(upperCaser.String(s[:size]) + s[size:])
}

// StrReplace returns a fresh string with the first occurrence of old
// replaced by new.
func (h *Heap) StrReplace(a, old, new Handle) Handle {
	ao := h.str("str_replace", a)
	oo := h.str("str_replace", old)
	no := h.str("str_replace", new)
	return h.NewString(strings.Replace(string(ao.Bytes), string(oo.Bytes), string(no.Bytes), 1))
}

// StrReplaceAll returns a fresh string with every occurrence of old
// replaced by new.
func (h *Heap) StrReplaceAll(a, old, new Handle) Handle {
	ao := h.str("str_replace_all", a)
	oo := h.str("str_replace_all", old)
	no := h.str("str_replace_all", new)
	return h.NewString(strings.ReplaceAll(string(ao.Bytes), string(oo.Bytes), string(no.Bytes)))
}
