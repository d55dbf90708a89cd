package rt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"brix/internal/rt"
)

func TestMatSetPopulatesElements(t *testing.T) {
	h := rt.NewHeap()
	m := h.NewFloatMatrix(2, 2)
	h.MatSet(m, 0, 0, 2)
	h.MatSet(m, 1, 1, 2)

	assert.Equal(t, 2.0, h.MatAt(m, 0, 0))
	assert.Equal(t, 0.0, h.MatAt(m, 0, 1))
	assert.Equal(t, 4.0, h.MatDet(m))
}

func TestIntMatSetPopulatesElements(t *testing.T) {
	h := rt.NewHeap()
	m := h.NewIntMatrix(1, 2)
	h.IntMatSet(m, 0, 1, -5)

	assert.Equal(t, int64(0), h.IntMatAt(m, 0, 0))
	assert.Equal(t, int64(-5), h.IntMatAt(m, 0, 1))
}

func TestSetOutOfBoundsIsFatal(t *testing.T) {
	h := rt.NewHeap()
	m := h.NewFloatMatrix(2, 2)
	im := h.NewIntMatrix(2, 2)

	wantFault(t, rt.FaultOutOfBounds, func() { h.MatSet(m, 2, 0, 1) })
	wantFault(t, rt.FaultOutOfBounds, func() { h.MatSet(m, 0, -1, 1) })
	wantFault(t, rt.FaultOutOfBounds, func() { h.IntMatSet(im, 0, 2, 1) })
}

func TestSetOnWrongKindIsFatal(t *testing.T) {
	h := rt.NewHeap()
	s := h.NewString("not a matrix")
	wantFault(t, rt.FaultTypeMismatch, func() { h.MatSet(s, 0, 0, 1) })
}
