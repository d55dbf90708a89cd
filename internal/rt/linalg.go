package rt

import "brix/internal/rt/linalg"

// Linear-algebra entry points. Determinant and inverse follow the split
// error model: non-square determinant input is a reported error returning
// 0.0, and a singular or non-square inverse yields an absent result with
// a returned fault. Everything else here is fatal on misuse.

// MatDet computes the determinant of a square float matrix. For a
// non-square input it reports a diagnostic and returns 0.0. A pivot
// magnitude below linalg.SingularTol makes the matrix count as singular
// and also yields 0.0; that is a tolerance heuristic, not an exact test.
func (h *Heap) MatDet(a Handle) float64 {
	obj := h.floatMatrix("matrix_det", a)
	if obj.Rows != obj.Cols {
		h.reportf(FaultNonSquare, "matrix_det: square matrix required, got %dx%d", obj.Rows, obj.Cols)
		return 0.0
	}
	if obj.Rows == 0 {
		return 1.0
	}
	return linalg.Det(obj.F64, obj.Rows)
}

// MatInv computes the inverse of a square float matrix. This is the one
// linear-algebra operation with a recoverable failure signal: a singular
// or non-square input yields handle 0 and a non-nil fault, and the
// diagnostic is also reported.
func (h *Heap) MatInv(a Handle) (Handle, *Error) {
	obj := h.floatMatrix("matrix_inv", a)
	if obj.Rows != obj.Cols {
		h.reportf(FaultNonSquare, "matrix_inv: square matrix required, got %dx%d", obj.Rows, obj.Cols)
		return 0, fault(FaultNonSquare, "matrix_inv: square matrix required, got %dx%d", obj.Rows, obj.Cols)
	}
	inv, err := linalg.Inv(obj.F64, obj.Rows)
	if err != nil {
		h.reportf(FaultSingular, "matrix_inv: matrix is singular (not invertible)")
		return 0, fault(FaultSingular, "matrix_inv: matrix is singular (not invertible)")
	}
	handle, res := h.alloc(OKFloatMatrix)
	res.Rows = obj.Rows
	res.Cols = obj.Cols
	res.F64 = inv
	return handle, nil
}

// MatEigvals computes the eigenvalues of a square float matrix, packaged
// as an n×1 complex matrix. Non-square input and solver failure are
// fatal.
func (h *Heap) MatEigvals(a Handle) Handle {
	obj := h.floatMatrix("matrix_eigvals", a)
	if obj.Rows != obj.Cols {
		fatalNonSquare("matrix_eigvals", obj.Rows, obj.Cols)
	}
	values, _, err := linalg.Eigen(obj.F64, obj.Rows, false)
	if err != nil {
		fatal(FaultSolverFailure, "matrix_eigvals: %v", err)
	}
	return h.newComplexMatrix(obj.Rows, 1, values)
}

// MatEigvecs computes the right eigenvectors of a square float matrix,
// packaged as an n×n complex matrix whose column j pairs with eigenvalue
// j. Complex-conjugate pairs come out as a vector and its conjugate in
// adjacent columns. Non-square input and solver failure are fatal.
func (h *Heap) MatEigvecs(a Handle) Handle {
	obj := h.floatMatrix("matrix_eigvecs", a)
	if obj.Rows != obj.Cols {
		fatalNonSquare("matrix_eigvecs", obj.Rows, obj.Cols)
	}
	_, vecs, err := linalg.Eigen(obj.F64, obj.Rows, true)
	if err != nil {
		fatal(FaultSolverFailure, "matrix_eigvecs: %v", err)
	}
	return h.newComplexMatrix(obj.Rows, obj.Rows, vecs)
}
