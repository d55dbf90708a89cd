package rt

// NewIntMatrix allocates a zero-initialized rows×cols integer matrix with
// reference count 1.
func (h *Heap) NewIntMatrix(rows, cols int) Handle {
	total := h.extent("intmatrix_new", rows, cols)
	handle, obj := h.alloc(OKIntMatrix)
	obj.Rows = rows
	obj.Cols = cols
	obj.I64 = make([]int64, total)
	return handle
}

// NewIntMatrixFrom allocates a rows×cols integer matrix populated with a
// copy of data (exactly rows*cols elements, row-major).
func (h *Heap) NewIntMatrixFrom(rows, cols int, data []int64) Handle {
	total := h.extent("intmatrix_from", rows, cols)
	if len(data) != total {
		fatal(FaultShapeMismatch, "intmatrix_from: buffer length %d != %dx%d", len(data), rows, cols)
	}
	handle, obj := h.alloc(OKIntMatrix)
	obj.Rows = rows
	obj.Cols = cols
	obj.I64 = append([]int64(nil), data...)
	return handle
}

func (h *Heap) intMatrix(op string, a Handle) *Object {
	if a == 0 {
		fatalNilOperand(op)
	}
	obj := h.Get(a)
	if obj.Kind != OKIntMatrix {
		fatal(FaultTypeMismatch, "%s: expected intmatrix, got %s", op, kindLabel(obj.Kind))
	}
	return obj
}

// IntMatRows returns the row count of an integer matrix.
func (h *Heap) IntMatRows(a Handle) int {
	return h.intMatrix("intmatrix_rows", a).Rows
}

// IntMatCols returns the column count of an integer matrix.
func (h *Heap) IntMatCols(a Handle) int {
	return h.intMatrix("intmatrix_cols", a).Cols
}

// IntMatAt returns the element at (row, col). Out-of-bounds access is
// fatal.
func (h *Heap) IntMatAt(a Handle, row, col int) int64 {
	obj := h.intMatrix("intmatrix_at", a)
	if row < 0 || row >= obj.Rows || col < 0 || col >= obj.Cols {
		fatal(FaultOutOfBounds, "intmatrix_at: index (%d,%d) out of bounds for %dx%d", row, col, obj.Rows, obj.Cols)
	}
	return obj.I64[row*obj.Cols+col]
}

// IntMatSet stores v at (row, col). Out-of-bounds access is fatal.
func (h *Heap) IntMatSet(a Handle, row, col int, v int64) {
	obj := h.intMatrix("intmatrix_set", a)
	if row < 0 || row >= obj.Rows || col < 0 || col >= obj.Cols {
		fatal(FaultOutOfBounds, "intmatrix_set: index (%d,%d) out of bounds for %dx%d", row, col, obj.Rows, obj.Cols)
	}
	obj.I64[row*obj.Cols+col] = v
}

// IntMatEq reports exact elementwise equality of two integer matrices,
// including shape.
func (h *Heap) IntMatEq(a, b Handle) bool {
	ao := h.intMatrix("intmatrix_eq", a)
	bo := h.intMatrix("intmatrix_eq", b)
	if ao.Rows != bo.Rows || ao.Cols != bo.Cols {
		return false
	}
	for i, v := range ao.I64 {
		if v != bo.I64[i] {
			return false
		}
	}
	return true
}

// PromoteIntMat converts an integer matrix to a fresh float matrix
// element-by-element. Magnitudes beyond the float mantissa (2^53) lose
// precision; the conversion is documented lossy, never an error. Integer
// matrices never promote implicitly: mixed arithmetic requires the caller
// to promote first.
func (h *Heap) PromoteIntMat(a Handle) Handle {
	obj := h.intMatrix("intmatrix_promote", a)
	out := make([]float64, len(obj.I64))
	for i, v := range obj.I64 {
		out[i] = float64(v)
	}
	handle, res := h.alloc(OKFloatMatrix)
	res.Rows = obj.Rows
	res.Cols = obj.Cols
	res.F64 = out
	return handle
}
