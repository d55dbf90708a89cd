// Package linalg implements the dense linear-algebra kernel of the Brix
// runtime on raw row-major slices. It has no knowledge of the heap or of
// reference counting; the rt package wraps it into value-level entry points.
package linalg

import (
	"errors"
	"math"
)

// SingularTol is the pivot magnitude below which a matrix is treated as
// singular. The literal is fixed for behavioral compatibility with
// generated code; it is a heuristic, not an exact rank test.
const SingularTol = 1e-10

// ErrSingular is returned by Inv when elimination meets a pivot below
// SingularTol.
var ErrSingular = errors.New("linalg: matrix is singular")

// Det computes the determinant of the n×n row-major matrix a.
// a is not modified. Sizes 1 and 2 use closed forms; larger sizes run
// Gaussian elimination with partial pivoting on a copy. A pivot below
// SingularTol yields 0.0.
func Det(a []float64, n int) float64 {
	if n == 1 {
		return a[0]
	}
	if n == 2 {
		return a[0]*a[3] - a[1]*a[2]
	}

	w := append([]float64(nil), a...)
	det := 1.0

	for i := 0; i < n; i++ {
		pivot := i
		for j := i + 1; j < n; j++ {
			if math.Abs(w[j*n+i]) > math.Abs(w[pivot*n+i]) {
				pivot = j
			}
		}
		if pivot != i {
			swapRows(w, n, i, pivot)
			det = -det
		}
		if math.Abs(w[i*n+i]) < SingularTol {
			return 0.0
		}
		for j := i + 1; j < n; j++ {
			factor := w[j*n+i] / w[i*n+i]
			for k := i; k < n; k++ {
				w[j*n+k] -= factor * w[i*n+k]
			}
		}
		det *= w[i*n+i]
	}
	return det
}

// Inv computes the inverse of the n×n row-major matrix a via Gauss-Jordan
// elimination on the augmented matrix [A | I] with partial pivoting.
// a is not modified. Returns ErrSingular when a pivot falls below
// SingularTol.
func Inv(a []float64, n int) ([]float64, error) {
	stride := 2 * n
	aug := make([]float64, n*stride)
	for i := 0; i < n; i++ {
		copy(aug[i*stride:i*stride+n], a[i*n:(i+1)*n])
		aug[i*stride+n+i] = 1.0
	}

	for i := 0; i < n; i++ {
		pivot := i
		for j := i + 1; j < n; j++ {
			if math.Abs(aug[j*stride+i]) > math.Abs(aug[pivot*stride+i]) {
				pivot = j
			}
		}
		if pivot != i {
			swapRows(aug, stride, i, pivot)
		}
		if math.Abs(aug[i*stride+i]) < SingularTol {
			return nil, ErrSingular
		}
		pv := aug[i*stride+i]
		for k := 0; k < stride; k++ {
			aug[i*stride+k] /= pv
		}
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			factor := aug[j*stride+i]
			for k := 0; k < stride; k++ {
				aug[j*stride+k] -= factor * aug[i*stride+k]
			}
		}
	}

	inv := make([]float64, n*n)
	for i := 0; i < n; i++ {
		copy(inv[i*n:(i+1)*n], aug[i*stride+n:i*stride+stride])
	}
	return inv, nil
}

func swapRows(a []float64, stride, i, j int) {
	ri := a[i*stride : i*stride+stride]
	rj := a[j*stride : j*stride+stride]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
