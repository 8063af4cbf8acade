package layergo

import (
	"github.com/hupe1980/layergo/internal/simd"
	"github.com/hupe1980/layergo/num"
)

// MinMax returns the smallest and largest element. For an empty layer it
// returns (num.MaxBound, num.MinBound). NaN elements are skipped.
func MinMax[T num.Number](l *Layer[T]) (lo, hi T) {
	lo, hi = num.MaxBound[T](), num.MinBound[T]()
	for _, v := range l.data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// MinMaxIndices returns the indices of the smallest and largest element.
// Ties resolve to the first occurrence. Both are zero for an empty layer.
func MinMaxIndices[T num.Number](l *Layer[T]) (minIdx, maxIdx int) {
	lo, hi := num.MaxBound[T](), num.MinBound[T]()
	for i, v := range l.data {
		if v < lo {
			lo, minIdx = v, i
		}
		if v > hi {
			hi, maxIdx = v, i
		}
	}
	return minIdx, maxIdx
}

// MinIndex returns the index of the first smallest element.
func MinIndex[T num.Number](l *Layer[T]) int {
	i, _ := MinMaxIndices(l)
	return i
}

// MaxIndex returns the index of the first largest element.
func MaxIndex[T num.Number](l *Layer[T]) int {
	_, i := MinMaxIndices(l)
	return i
}

// Sum returns the sum of all elements. Integer sums wrap on overflow.
func Sum[T num.Number](l *Layer[T]) T {
	if f, ok := asFloat32(l.data); ok {
		return T(simd.Sum(f))
	}

	var sum T
	for _, v := range l.data {
		sum += v
	}
	return sum
}

// Average returns the arithmetic mean. Integer layers are summed and
// divided in float64 and the mean is truncated toward zero. It is NaN for an
// empty float layer and panics with a division by zero for an empty integer
// layer.
func Average[T num.Number](l *Layer[T]) T {
	n := len(l.data)
	if num.IsFloat[T]() {
		return Sum(l) / T(n)
	}
	if n == 0 {
		panic("layergo: Average of an empty integer layer: integer divide by zero")
	}

	var sum float64
	for _, v := range l.data {
		sum += float64(v)
	}
	return T(sum / float64(n))
}

// WeightedAverage returns Σ l[i]·weights[i] / Σ weights[i]. Integer layers
// are accumulated in float64 and the result is truncated toward zero; a zero
// integer weight sum panics.
func WeightedAverage[T num.Number](l, weights *Layer[T]) T {
	checkLength("WeightedAverage", len(l.data), len(weights.data))

	if f, ok := asFloat32(l.data); ok {
		w, _ := asFloat32(weights.data)
		return T(simd.Dot(f, w) / simd.Sum(w))
	}

	w := weights.data[:len(l.data)]
	if num.IsFloat[T]() {
		var sum, weightSum T
		for i, v := range l.data {
			sum += v * w[i]
			weightSum += w[i]
		}
		return sum / weightSum
	}

	var sum, weightSum float64
	for i, v := range l.data {
		sum += float64(v) * float64(w[i])
		weightSum += float64(w[i])
	}
	if weightSum == 0 {
		panic("layergo: WeightedAverage with zero integer weight sum: integer divide by zero")
	}
	return T(sum / weightSum)
}

// Unique returns the set of distinct elements.
func Unique[T comparable](l *Layer[T]) map[T]struct{} {
	set := make(map[T]struct{})
	for _, v := range l.data {
		set[v] = struct{}{}
	}
	return set
}

// asFloat32 exposes s as []float32 when T is float32, selecting the
// vectorized kernels.
func asFloat32[T any](s []T) ([]float32, bool) {
	f, ok := any(s).([]float32)
	return f, ok
}
