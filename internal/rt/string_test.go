package rt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brix/internal/rt"
)

func TestStrConcat(t *testing.T) {
	h := rt.NewHeap()
	a := h.NewString("ab")
	b := h.NewString("cd")

	c := h.StrConcat(a, b)
	assert.Equal(t, "abcd", h.StrData(c))
	assert.Equal(t, 4, h.StrLen(c))

	// Operands survive the operation.
	assert.Equal(t, "ab", h.StrData(a))
	assert.Equal(t, "cd", h.StrData(b))
	assert.Equal(t, 1, h.RefCount(c), "result is a fresh allocation")
}

func TestStrEqComparesContent(t *testing.T) {
	h := rt.NewHeap()
	a := h.NewString("hello")
	b := h.NewString("hello")
	c := h.NewString("world")

	assert.NotEqual(t, a, b, "distinct handles")
	assert.True(t, h.StrEq(a, b))
	assert.False(t, h.StrEq(a, c))
	assert.True(t, h.StrEq(a, a))
}

func TestEmptyStringIsValid(t *testing.T) {
	h := rt.NewHeap()
	s := h.NewString("")
	assert.Equal(t, 0, h.StrLen(s))
	assert.Equal(t, 0, h.StrByteSize(s))
	assert.Equal(t, "", h.StrData(s))

	other := h.NewString("x")
	joined := h.StrConcat(s, other)
	assert.Equal(t, "x", h.StrData(joined))
}

func TestStrLenCountsRunes(t *testing.T) {
	h := rt.NewHeap()
	s := h.NewString("héllo")
	assert.Equal(t, 5, h.StrLen(s))
	assert.Equal(t, 6, h.StrByteSize(s))
}

func TestStrCaseOps(t *testing.T) {
	h := rt.NewHeap()
	s := h.NewString("gRay Fox")

	up := h.StrUpper(s)
	assert.Equal(t, "GRAY FOX", h.StrData(up))

	lo := h.StrLower(s)
	assert.Equal(t, "gray fox", h.StrData(lo))

	cap := h.StrCapitalize(h.NewString("wild boar"))
	assert.Equal(t, "Wild boar", h.StrData(cap))

	empty := h.StrCapitalize(h.NewString(""))
	assert.Equal(t, "", h.StrData(empty))
}

func TestStrReplace(t *testing.T) {
	h := rt.NewHeap()
	s := h.NewString("a-b-c")

	first := h.StrReplace(s, h.NewString("-"), h.NewString("+"))
	assert.Equal(t, "a+b-c", h.StrData(first))

	all := h.StrReplaceAll(s, h.NewString("-"), h.NewString("+"))
	assert.Equal(t, "a+b+c", h.StrData(all))

	// Original untouched.
	assert.Equal(t, "a-b-c", h.StrData(s))
}

func TestStrContains(t *testing.T) {
	h := rt.NewHeap()
	s := h.NewString("needle in haystack")
	assert.True(t, h.StrContains(s, h.NewString("needle")))
	assert.False(t, h.StrContains(s, h.NewString("thread")))
	assert.True(t, h.StrContains(s, h.NewString("")))
}

func TestStrOpsOnDeadHandleAreFatal(t *testing.T) {
	h := rt.NewHeap()
	s := h.NewString("gone")
	require.Equal(t, 1, h.RefCount(s))
	h.Release(s)

	wantFault(t, rt.FaultUseAfterFree, func() { h.StrData(s) })
}
