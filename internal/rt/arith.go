package rt

import "math"

// Elementwise arithmetic over float matrices. Every operation allocates a
// fresh result; inputs are never mutated and the result never aliases
// them. All error paths here are fatal: nil operand, shape mismatch and
// zero divisors have no recoverable form (spelled out per entry point so
// generated code gets one diagnostic per call site).

func (h *Heap) mapFloat(op string, a Handle, f func(float64) float64) Handle {
	obj := h.floatMatrix(op, a)
	out := make([]float64, len(obj.F64))
	for i, v := range obj.F64 {
		out[i] = f(v)
	}
	handle, res := h.alloc(OKFloatMatrix)
	res.Rows = obj.Rows
	res.Cols = obj.Cols
	res.F64 = out
	return handle
}

func (h *Heap) zipFloat(op string, a, b Handle, f func(x, y float64) float64) Handle {
	ao := h.floatMatrix(op, a)
	bo := h.floatMatrix(op, b)
	if ao.Rows != bo.Rows || ao.Cols != bo.Cols {
		fatalShape(op, ao.Rows, ao.Cols, bo.Rows, bo.Cols)
	}
	out := make([]float64, len(ao.F64))
	for i, v := range ao.F64 {
		out[i] = f(v, bo.F64[i])
	}
	handle, res := h.alloc(OKFloatMatrix)
	res.Rows = ao.Rows
	res.Cols = ao.Cols
	res.F64 = out
	return handle
}

// checkNoZero faults when any element of the divisor matrix is zero.
func (h *Heap) checkNoZero(op string, b Handle) {
	obj := h.floatMatrix(op, b)
	for _, v := range obj.F64 {
		if v == 0 {
			fatalDivZero(op)
		}
	}
}

// checkSameShape faults on dimension mismatch; shape errors take
// precedence over divisor scans.
func (h *Heap) checkSameShape(op string, a, b Handle) {
	ao := h.floatMatrix(op, a)
	bo := h.floatMatrix(op, b)
	if ao.Rows != bo.Rows || ao.Cols != bo.Cols {
		fatalShape(op, ao.Rows, ao.Cols, bo.Rows, bo.Cols)
	}
}

// MatAddScalar returns a + s elementwise.
func (h *Heap) MatAddScalar(a Handle, s float64) Handle {
	return h.mapFloat("matrix_add_scalar", a, func(x float64) float64 { return x + s })
}

// ScalarAddMat returns s + a elementwise.
func (h *Heap) ScalarAddMat(s float64, a Handle) Handle {
	return h.mapFloat("scalar_add_matrix", a, func(x float64) float64 { return s + x })
}

// MatSubScalar returns a - s elementwise.
func (h *Heap) MatSubScalar(a Handle, s float64) Handle {
	return h.mapFloat("matrix_sub_scalar", a, func(x float64) float64 { return x - s })
}

// ScalarSubMat returns s - a elementwise.
func (h *Heap) ScalarSubMat(s float64, a Handle) Handle {
	return h.mapFloat("scalar_sub_matrix", a, func(x float64) float64 { return s - x })
}

// MatMulScalar returns a * s elementwise.
func (h *Heap) MatMulScalar(a Handle, s float64) Handle {
	return h.mapFloat("matrix_mul_scalar", a, func(x float64) float64 { return x * s })
}

// ScalarMulMat returns s * a elementwise.
func (h *Heap) ScalarMulMat(s float64, a Handle) Handle {
	return h.mapFloat("scalar_mul_matrix", a, func(x float64) float64 { return s * x })
}

// MatDivScalar returns a / s elementwise. s == 0 is fatal.
func (h *Heap) MatDivScalar(a Handle, s float64) Handle {
	if s == 0 {
		fatalDivZero("matrix_div_scalar")
	}
	return h.mapFloat("matrix_div_scalar", a, func(x float64) float64 { return x / s })
}

// ScalarDivMat returns s / a elementwise. Any zero element in a is fatal.
func (h *Heap) ScalarDivMat(s float64, a Handle) Handle {
	h.checkNoZero("scalar_div_matrix", a)
	return h.mapFloat("scalar_div_matrix", a, func(x float64) float64 { return s / x })
}

// MatModScalar returns mod(a, s) elementwise. s == 0 is fatal.
func (h *Heap) MatModScalar(a Handle, s float64) Handle {
	if s == 0 {
		fatalDivZero("matrix_mod_scalar")
	}
	return h.mapFloat("matrix_mod_scalar", a, func(x float64) float64 { return math.Mod(x, s) })
}

// ScalarModMat returns mod(s, a) elementwise. Any zero element in a is
// fatal.
func (h *Heap) ScalarModMat(s float64, a Handle) Handle {
	h.checkNoZero("scalar_mod_matrix", a)
	return h.mapFloat("scalar_mod_matrix", a, func(x float64) float64 { return math.Mod(s, x) })
}

// MatPowScalar returns a ** s elementwise.
func (h *Heap) MatPowScalar(a Handle, s float64) Handle {
	return h.mapFloat("matrix_pow_scalar", a, func(x float64) float64 { return math.Pow(x, s) })
}

// ScalarPowMat returns s ** a elementwise.
func (h *Heap) ScalarPowMat(s float64, a Handle) Handle {
	return h.mapFloat("scalar_pow_matrix", a, func(x float64) float64 { return math.Pow(s, x) })
}

// MatAdd returns a + b elementwise. Shape mismatch is fatal.
func (h *Heap) MatAdd(a, b Handle) Handle {
	return h.zipFloat("matrix_add", a, b, func(x, y float64) float64 { return x + y })
}

// MatSub returns a - b elementwise. Shape mismatch is fatal.
func (h *Heap) MatSub(a, b Handle) Handle {
	return h.zipFloat("matrix_sub", a, b, func(x, y float64) float64 { return x - y })
}

// MatMulElem returns a * b elementwise. This is not linear-algebra
// multiplication. Shape mismatch is fatal.
func (h *Heap) MatMulElem(a, b Handle) Handle {
	return h.zipFloat("matrix_mul", a, b, func(x, y float64) float64 { return x * y })
}

// MatDivElem returns a / b elementwise. Shape mismatch and any zero
// element in b are fatal.
func (h *Heap) MatDivElem(a, b Handle) Handle {
	h.checkSameShape("matrix_div", a, b)
	h.checkNoZero("matrix_div", b)
	return h.zipFloat("matrix_div", a, b, func(x, y float64) float64 { return x / y })
}

// MatModElem returns mod(a, b) elementwise. Shape mismatch and any zero
// element in b are fatal.
func (h *Heap) MatModElem(a, b Handle) Handle {
	h.checkSameShape("matrix_mod", a, b)
	h.checkNoZero("matrix_mod", b)
	return h.zipFloat("matrix_mod", a, b, math.Mod)
}

// MatPowElem returns a ** b elementwise. Shape mismatch is fatal.
func (h *Heap) MatPowElem(a, b Handle) Handle {
	return h.zipFloat("matrix_pow", a, b, math.Pow)
}
