package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brix/internal/rt/linalg"
)

func TestDetClosedForms(t *testing.T) {
	assert.Equal(t, 7.0, linalg.Det([]float64{7}, 1))
	assert.Equal(t, 4.0, linalg.Det([]float64{2, 0, 0, 2}, 2))
	assert.Equal(t, -2.0, linalg.Det([]float64{1, 2, 3, 4}, 2))
}

func TestDetElimination(t *testing.T) {
	// Upper triangular: determinant is the diagonal product.
	a := []float64{
		2, 1, 3,
		0, 4, 5,
		0, 0, 6,
	}
	assert.InDelta(t, 48.0, linalg.Det(a, 3), 1e-9)

	// Row swap flips the sign; elimination must still land on +48.
	b := []float64{
		0, 4, 5,
		2, 1, 3,
		0, 0, 6,
	}
	assert.InDelta(t, -48.0, linalg.Det(b, 3), 1e-9)
}

func TestDetSingularTolerance(t *testing.T) {
	// Rank-deficient: second row is a multiple of the first.
	a := []float64{
		1, 2, 3,
		2, 4, 6,
		1, 0, 1,
	}
	assert.Equal(t, 0.0, linalg.Det(a, 3))
}

func TestDetDoesNotMutateInput(t *testing.T) {
	a := []float64{1, 2, 0, 3, 4, 0, 0, 0, 5}
	orig := append([]float64(nil), a...)
	linalg.Det(a, 3)
	assert.Equal(t, orig, a)
}

func TestInv2x2(t *testing.T) {
	inv, err := linalg.Inv([]float64{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	want := []float64{-2, 1, 1.5, -0.5}
	for i := range want {
		assert.InDelta(t, want[i], inv[i], 1e-12)
	}
}

func TestInvTimesOriginalIsIdentity(t *testing.T) {
	a := []float64{
		4, 7, 2,
		3, 6, 1,
		2, 5, 3,
	}
	n := 3
	inv, err := linalg.Inv(a, n)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += a[i*n+k] * inv[k*n+j]
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, sum, 1e-9, "product[%d][%d]", i, j)
		}
	}
}

func TestInvSingular(t *testing.T) {
	_, err := linalg.Inv([]float64{1, 2, 2, 4}, 2)
	require.ErrorIs(t, err, linalg.ErrSingular)
}

func TestSingularTolLiteral(t *testing.T) {
	// The threshold is part of the behavioral contract.
	require.Equal(t, 1e-10, linalg.SingularTol)
}
