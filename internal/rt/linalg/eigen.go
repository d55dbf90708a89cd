package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// Eigen computes the eigenvalues of the n×n row-major matrix a and, when
// vectors is true, its right eigenvectors. It delegates to the dgeev-style
// nonsymmetric eigensolver, sizing the workspace with a query call first.
//
// values is an n-element slice. vecs is nil unless vectors is true, in
// which case it is an n×n row-major matrix whose column j is the
// eigenvector for values[j].
//
// A complex-conjugate eigenvalue pair occupies two adjacent packed real
// columns in the solver output: column j holds the real part and column
// j+1 the imaginary part of the first vector of the pair. Both the vector
// and its conjugate are written out and the scan advances by two columns.
func Eigen(a []float64, n int, vectors bool) (values, vecs []complex128, err error) {
	if n == 0 {
		return nil, nil, nil
	}
	work := make([]float64, n*n)
	copy(work, a)
	ga := blas64.General{Rows: n, Cols: n, Stride: n, Data: work}

	wr := make([]float64, n)
	wi := make([]float64, n)
	vl := blas64.General{Rows: n, Cols: n, Stride: n, Data: make([]float64, n*n)}
	vr := blas64.General{Rows: n, Cols: n, Stride: n, Data: make([]float64, n*n)}

	jobvr := lapack.RightEVNone
	if vectors {
		jobvr = lapack.RightEVCompute
	}

	// Workspace query, then the real call with the optimal size.
	query := make([]float64, 1)
	lapack64.Geev(lapack.LeftEVNone, jobvr, ga, wr, wi, vl, vr, query, -1)
	lwork := int(query[0])
	ws := make([]float64, lwork)
	first := lapack64.Geev(lapack.LeftEVNone, jobvr, ga, wr, wi, vl, vr, ws, lwork)
	if first != 0 {
		return nil, nil, fmt.Errorf("linalg: eigensolver failed to converge (first unconverged index %d)", first)
	}

	values = make([]complex128, n)
	for i := 0; i < n; i++ {
		values[i] = complex(wr[i], wi[i])
	}
	if !vectors {
		return values, nil, nil
	}

	vecs = make([]complex128, n*n)
	for j := 0; j < n; {
		if wi[j] == 0 {
			for i := 0; i < n; i++ {
				vecs[i*n+j] = complex(vr.Data[i*vr.Stride+j], 0)
			}
			j++
			continue
		}
		for i := 0; i < n; i++ {
			re := vr.Data[i*vr.Stride+j]
			im := vr.Data[i*vr.Stride+j+1]
			vecs[i*n+j] = complex(re, im)
			vecs[i*n+j+1] = complex(re, -im)
		}
		j += 2
	}
	return values, vecs, nil
}
