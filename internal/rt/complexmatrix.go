package rt

// Complex matrices are algorithm outputs only (eigenvalues and
// eigenvectors); they are never constructed by user code and never
// participate in elementwise arithmetic.

func (h *Heap) newComplexMatrix(rows, cols int, data []complex128) Handle {
	handle, obj := h.alloc(OKComplexMatrix)
	obj.Rows = rows
	obj.Cols = cols
	obj.C128 = data
	return handle
}

func (h *Heap) complexMatrix(op string, a Handle) *Object {
	if a == 0 {
		fatalNilOperand(op)
	}
	obj := h.Get(a)
	if obj.Kind != OKComplexMatrix {
		fatal(FaultTypeMismatch, "%s: expected complexmatrix, got %s", op, kindLabel(obj.Kind))
	}
	return obj
}

// CplxRows returns the row count of a complex matrix.
func (h *Heap) CplxRows(a Handle) int {
	return h.complexMatrix("complexmatrix_rows", a).Rows
}

// CplxCols returns the column count of a complex matrix.
func (h *Heap) CplxCols(a Handle) int {
	return h.complexMatrix("complexmatrix_cols", a).Cols
}

// CplxAt returns the element at (row, col). Out-of-bounds access is fatal.
func (h *Heap) CplxAt(a Handle, row, col int) complex128 {
	obj := h.complexMatrix("complexmatrix_at", a)
	if row < 0 || row >= obj.Rows || col < 0 || col >= obj.Cols {
		fatal(FaultOutOfBounds, "complexmatrix_at: index (%d,%d) out of bounds for %dx%d", row, col, obj.Rows, obj.Cols)
	}
	return obj.C128[row*obj.Cols+col]
}
