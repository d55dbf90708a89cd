package rt

import (
	"math"
	"sort"
)

// Descriptive statistics over float matrices: straightforward reductions
// with the empty matrix mapped to 0.0.

// MatSum returns the sum of all elements.
func (h *Heap) MatSum(a Handle) float64 {
	obj := h.floatMatrix("matrix_sum", a)
	sum := 0.0
	for _, v := range obj.F64 {
		sum += v
	}
	return sum
}

// MatMean returns the mean of all elements, 0.0 for an empty matrix.
func (h *Heap) MatMean(a Handle) float64 {
	obj := h.floatMatrix("matrix_mean", a)
	if len(obj.F64) == 0 {
		return 0.0
	}
	return h.MatSum(a) / float64(len(obj.F64))
}

// MatMedian returns the median over a sorted copy of the elements, the
// mean of the two middle elements for an even count, 0.0 for an empty
// matrix.
func (h *Heap) MatMedian(a Handle) float64 {
	obj := h.floatMatrix("matrix_median", a)
	total := len(obj.F64)
	if total == 0 {
		return 0.0
	}
	tmp := append([]float64(nil), obj.F64...)
	sort.Float64s(tmp)
	if total%2 == 0 {
		return (tmp[total/2-1] + tmp[total/2]) / 2.0
	}
	return tmp[total/2]
}

// MatVariance returns the population variance, 0.0 for an empty matrix.
func (h *Heap) MatVariance(a Handle) float64 {
	obj := h.floatMatrix("matrix_variance", a)
	total := len(obj.F64)
	if total == 0 {
		return 0.0
	}
	mean := h.MatMean(a)
	sumSq := 0.0
	for _, v := range obj.F64 {
		d := v - mean
		sumSq += d * d
	}
	return sumSq / float64(total)
}

// MatStd returns the population standard deviation.
func (h *Heap) MatStd(a Handle) float64 {
	return math.Sqrt(h.MatVariance(a))
}

// MatMin returns the smallest element, 0.0 for an empty matrix.
func (h *Heap) MatMin(a Handle) float64 {
	obj := h.floatMatrix("matrix_min", a)
	if len(obj.F64) == 0 {
		return 0.0
	}
	min := obj.F64[0]
	for _, v := range obj.F64[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// MatMax returns the largest element, 0.0 for an empty matrix.
func (h *Heap) MatMax(a Handle) float64 {
	obj := h.floatMatrix("matrix_max", a)
	if len(obj.F64) == 0 {
		return 0.0
	}
	max := obj.F64[0]
	for _, v := range obj.F64[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// MatAbs returns a fresh matrix with the absolute value of every element.
func (h *Heap) MatAbs(a Handle) Handle {
	return h.mapFloat("matrix_abs", a, math.Abs)
}
