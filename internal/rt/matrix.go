package rt

// NewFloatMatrix allocates a zero-filled rows×cols float matrix with
// reference count 1. A 1×n or n×1 shape represents a 1-D sequence.
func (h *Heap) NewFloatMatrix(rows, cols int) Handle {
	total := h.extent("matrix_new", rows, cols)
	handle, obj := h.alloc(OKFloatMatrix)
	obj.Rows = rows
	obj.Cols = cols
	obj.F64 = make([]float64, total)
	return handle
}

// NewFloatMatrixFrom allocates a rows×cols float matrix populated with a
// copy of data, which must hold exactly rows*cols elements in row-major
// order. This is the ingestion boundary: collaborators such as the CSV
// reader hand over a fully populated buffer.
func (h *Heap) NewFloatMatrixFrom(rows, cols int, data []float64) Handle {
	total := h.extent("matrix_from", rows, cols)
	if len(data) != total {
		fatal(FaultShapeMismatch, "matrix_from: buffer length %d != %dx%d", len(data), rows, cols)
	}
	handle, obj := h.alloc(OKFloatMatrix)
	obj.Rows = rows
	obj.Cols = cols
	obj.F64 = append([]float64(nil), data...)
	return handle
}

// floatMatrix resolves a handle to a live float matrix object.
func (h *Heap) floatMatrix(op string, a Handle) *Object {
	if a == 0 {
		fatalNilOperand(op)
	}
	obj := h.Get(a)
	if obj.Kind != OKFloatMatrix {
		fatal(FaultTypeMismatch, "%s: expected matrix, got %s", op, kindLabel(obj.Kind))
	}
	return obj
}

// MatRows returns the row count of a float matrix.
func (h *Heap) MatRows(a Handle) int {
	return h.floatMatrix("matrix_rows", a).Rows
}

// MatCols returns the column count of a float matrix.
func (h *Heap) MatCols(a Handle) int {
	return h.floatMatrix("matrix_cols", a).Cols
}

// MatAt returns the element at (row, col). Out-of-bounds access is fatal.
func (h *Heap) MatAt(a Handle, row, col int) float64 {
	obj := h.floatMatrix("matrix_at", a)
	if row < 0 || row >= obj.Rows || col < 0 || col >= obj.Cols {
		fatal(FaultOutOfBounds, "matrix_at: index (%d,%d) out of bounds for %dx%d", row, col, obj.Rows, obj.Cols)
	}
	return obj.F64[row*obj.Cols+col]
}

// MatSet stores v at (row, col). This is the population entry point for
// literal matrices built element by element; arithmetic never mutates in
// place. Out-of-bounds access is fatal.
func (h *Heap) MatSet(a Handle, row, col int, v float64) {
	obj := h.floatMatrix("matrix_set", a)
	if row < 0 || row >= obj.Rows || col < 0 || col >= obj.Cols {
		fatal(FaultOutOfBounds, "matrix_set: index (%d,%d) out of bounds for %dx%d", row, col, obj.Rows, obj.Cols)
	}
	obj.F64[row*obj.Cols+col] = v
}

// MatEq reports exact elementwise equality of two float matrices,
// including shape.
func (h *Heap) MatEq(a, b Handle) bool {
	ao := h.floatMatrix("matrix_eq", a)
	bo := h.floatMatrix("matrix_eq", b)
	if ao.Rows != bo.Rows || ao.Cols != bo.Cols {
		return false
	}
	for i, v := range ao.F64 {
		if v != bo.F64[i] {
			return false
		}
	}
	return true
}

// MatApproxEq reports elementwise equality within tol, including shape.
func (h *Heap) MatApproxEq(a, b Handle, tol float64) bool {
	ao := h.floatMatrix("matrix_eq", a)
	bo := h.floatMatrix("matrix_eq", b)
	if ao.Rows != bo.Rows || ao.Cols != bo.Cols {
		return false
	}
	for i, v := range ao.F64 {
		d := v - bo.F64[i]
		if d < -tol || d > tol {
			return false
		}
	}
	return true
}

// MatTranspose returns a fresh cols×rows matrix with rows and columns
// swapped.
func (h *Heap) MatTranspose(a Handle) Handle {
	obj := h.floatMatrix("matrix_transpose", a)
	rows, cols := obj.Rows, obj.Cols
	out := make([]float64, len(obj.F64))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j*rows+i] = obj.F64[i*cols+j]
		}
	}
	handle, res := h.alloc(OKFloatMatrix)
	res.Rows = cols
	res.Cols = rows
	res.F64 = out
	return handle
}

// MatEye returns the n×n identity matrix.
func (h *Heap) MatEye(n int) Handle {
	total := h.extent("matrix_eye", n, n)
	handle, obj := h.alloc(OKFloatMatrix)
	obj.Rows = n
	obj.Cols = n
	obj.F64 = make([]float64, total)
	for i := 0; i < n; i++ {
		obj.F64[i*n+i] = 1.0
	}
	return handle
}
