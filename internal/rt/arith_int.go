package rt

import "math"

// Integer matrix arithmetic. Division and modulo truncate toward zero;
// power is computed through a floating intermediate and truncated back.
// Integer matrices never auto-promote: mixed operations require an
// explicit PromoteIntMat first.

func (h *Heap) mapInt(op string, a Handle, f func(int64) int64) Handle {
	obj := h.intMatrix(op, a)
	out := make([]int64, len(obj.I64))
	for i, v := range obj.I64 {
		out[i] = f(v)
	}
	handle, res := h.alloc(OKIntMatrix)
	res.Rows = obj.Rows
	res.Cols = obj.Cols
	res.I64 = out
	return handle
}

func (h *Heap) zipInt(op string, a, b Handle, f func(x, y int64) int64) Handle {
	ao := h.intMatrix(op, a)
	bo := h.intMatrix(op, b)
	if ao.Rows != bo.Rows || ao.Cols != bo.Cols {
		fatalShape(op, ao.Rows, ao.Cols, bo.Rows, bo.Cols)
	}
	out := make([]int64, len(ao.I64))
	for i, v := range ao.I64 {
		out[i] = f(v, bo.I64[i])
	}
	handle, res := h.alloc(OKIntMatrix)
	res.Rows = ao.Rows
	res.Cols = ao.Cols
	res.I64 = out
	return handle
}

func (h *Heap) checkNoZeroInt(op string, b Handle) {
	obj := h.intMatrix(op, b)
	for _, v := range obj.I64 {
		if v == 0 {
			fatalDivZero(op)
		}
	}
}

func (h *Heap) checkSameShapeInt(op string, a, b Handle) {
	ao := h.intMatrix(op, a)
	bo := h.intMatrix(op, b)
	if ao.Rows != bo.Rows || ao.Cols != bo.Cols {
		fatalShape(op, ao.Rows, ao.Cols, bo.Rows, bo.Cols)
	}
}

// intPow computes x ** y through a float intermediate, truncated back to
// integer. This reproduces the generated code's behavior exactly,
// including precision loss for large magnitudes.
func intPow(x, y int64) int64 {
	return int64(math.Pow(float64(x), float64(y)))
}

// IntMatAddScalar returns a + s elementwise.
func (h *Heap) IntMatAddScalar(a Handle, s int64) Handle {
	return h.mapInt("intmatrix_add_scalar", a, func(x int64) int64 { return x + s })
}

// ScalarAddIntMat returns s + a elementwise.
func (h *Heap) ScalarAddIntMat(s int64, a Handle) Handle {
	return h.mapInt("scalar_add_intmatrix", a, func(x int64) int64 { return s + x })
}

// IntMatSubScalar returns a - s elementwise.
func (h *Heap) IntMatSubScalar(a Handle, s int64) Handle {
	return h.mapInt("intmatrix_sub_scalar", a, func(x int64) int64 { return x - s })
}

// ScalarSubIntMat returns s - a elementwise.
func (h *Heap) ScalarSubIntMat(s int64, a Handle) Handle {
	return h.mapInt("scalar_sub_intmatrix", a, func(x int64) int64 { return s - x })
}

// IntMatMulScalar returns a * s elementwise.
func (h *Heap) IntMatMulScalar(a Handle, s int64) Handle {
	return h.mapInt("intmatrix_mul_scalar", a, func(x int64) int64 { return x * s })
}

// ScalarMulIntMat returns s * a elementwise.
func (h *Heap) ScalarMulIntMat(s int64, a Handle) Handle {
	return h.mapInt("scalar_mul_intmatrix", a, func(x int64) int64 { return s * x })
}

// IntMatDivScalar returns a / s elementwise, truncating. s == 0 is fatal.
func (h *Heap) IntMatDivScalar(a Handle, s int64) Handle {
	if s == 0 {
		fatalDivZero("intmatrix_div_scalar")
	}
	return h.mapInt("intmatrix_div_scalar", a, func(x int64) int64 { return x / s })
}

// ScalarDivIntMat returns s / a elementwise, truncating. Any zero element
// in a is fatal.
func (h *Heap) ScalarDivIntMat(s int64, a Handle) Handle {
	h.checkNoZeroInt("scalar_div_intmatrix", a)
	return h.mapInt("scalar_div_intmatrix", a, func(x int64) int64 { return s / x })
}

// IntMatModScalar returns a % s elementwise. s == 0 is fatal.
func (h *Heap) IntMatModScalar(a Handle, s int64) Handle {
	if s == 0 {
		fatalDivZero("intmatrix_mod_scalar")
	}
	return h.mapInt("intmatrix_mod_scalar", a, func(x int64) int64 { return x % s })
}

// ScalarModIntMat returns s % a elementwise. Any zero element in a is
// fatal.
func (h *Heap) ScalarModIntMat(s int64, a Handle) Handle {
	h.checkNoZeroInt("scalar_mod_intmatrix", a)
	return h.mapInt("scalar_mod_intmatrix", a, func(x int64) int64 { return s % x })
}

// IntMatPowScalar returns a ** s elementwise.
func (h *Heap) IntMatPowScalar(a Handle, s int64) Handle {
	return h.mapInt("intmatrix_pow_scalar", a, func(x int64) int64 { return intPow(x, s) })
}

// ScalarPowIntMat returns s ** a elementwise.
func (h *Heap) ScalarPowIntMat(s int64, a Handle) Handle {
	return h.mapInt("scalar_pow_intmatrix", a, func(x int64) int64 { return intPow(s, x) })
}

// IntMatAdd returns a + b elementwise. Shape mismatch is fatal.
func (h *Heap) IntMatAdd(a, b Handle) Handle {
	return h.zipInt("intmatrix_add", a, b, func(x, y int64) int64 { return x + y })
}

// IntMatSub returns a - b elementwise. Shape mismatch is fatal.
func (h *Heap) IntMatSub(a, b Handle) Handle {
	return h.zipInt("intmatrix_sub", a, b, func(x, y int64) int64 { return x - y })
}

// IntMatMulElem returns a * b elementwise. Shape mismatch is fatal.
func (h *Heap) IntMatMulElem(a, b Handle) Handle {
	return h.zipInt("intmatrix_mul", a, b, func(x, y int64) int64 { return x * y })
}

// IntMatDivElem returns a / b elementwise, truncating. Shape mismatch and
// any zero element in b are fatal.
func (h *Heap) IntMatDivElem(a, b Handle) Handle {
	h.checkSameShapeInt("intmatrix_div", a, b)
	h.checkNoZeroInt("intmatrix_div", b)
	return h.zipInt("intmatrix_div", a, b, func(x, y int64) int64 { return x / y })
}

// IntMatModElem returns a % b elementwise. Shape mismatch and any zero
// element in b are fatal.
func (h *Heap) IntMatModElem(a, b Handle) Handle {
	h.checkSameShapeInt("intmatrix_mod", a, b)
	h.checkNoZeroInt("intmatrix_mod", b)
	return h.zipInt("intmatrix_mod", a, b, func(x, y int64) int64 { return x % y })
}

// IntMatPowElem returns a ** b elementwise. Shape mismatch is fatal.
func (h *Heap) IntMatPowElem(a, b Handle) Handle {
	return h.zipInt("intmatrix_pow", a, b, intPow)
}
