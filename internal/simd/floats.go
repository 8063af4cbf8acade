package simd

import "sync/atomic"

// kernelSet is a table of float32 kernels.
type kernelSet struct {
	dot       func(a, b []float32) float32
	sum       func(a []float32) float32
	add       func(dst, a, b []float32)
	scale     func(dst, src []float32, s float32)
	addScaled func(dst, a, b []float32, s float32)
	affine    func(dst, src []float32, scale, offset float32)
}

var (
	genericKernels = kernelSet{
		dot:       dotGeneric,
		sum:       sumGeneric,
		add:       addGeneric,
		scale:     scaleGeneric,
		addScaled: addScaledGeneric,
		affine:    affineGeneric,
	}

	unrolledKernels = kernelSet{
		dot:       dotUnrolled,
		sum:       sumUnrolled,
		add:       addUnrolled,
		scale:     scaleUnrolled,
		addScaled: addScaledUnrolled,
		affine:    affineUnrolled,
	}

	kernels atomic.Pointer[kernelSet]
)

// Dot calculates the dot product of two vectors.
//
// SAFETY: assumes len(a) == len(b). Callers check lengths.
func Dot(a, b []float32) float32 {
	return kernels.Load().dot(a, b)
}

// Sum returns the sum of all elements of a.
func Sum(a []float32) float32 {
	return kernels.Load().sum(a)
}

// Add computes dst[i] = a[i] + b[i].
//
// SAFETY: assumes len(a) == len(b) == len(dst). dst may alias a or b.
func Add(dst, a, b []float32) {
	kernels.Load().add(dst, a, b)
}

// Scale computes dst[i] = src[i] * s. dst may alias src.
func Scale(dst, src []float32, s float32) {
	kernels.Load().scale(dst, src, s)
}

// AddScaled computes dst[i] = a[i] + b[i]*s.
//
// SAFETY: assumes len(a) == len(b) == len(dst). dst may alias a or b.
func AddScaled(dst, a, b []float32, s float32) {
	kernels.Load().addScaled(dst, a, b, s)
}

// Affine computes dst[i] = src[i]*scale + offset. dst may alias src.
func Affine(dst, src []float32, scale, offset float32) {
	kernels.Load().affine(dst, src, scale, offset)
}

func dotGeneric(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}
	return ret
}

func sumGeneric(a []float32) float32 {
	var ret float32
	for _, v := range a {
		ret += v
	}
	return ret
}

func addGeneric(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func scaleGeneric(dst, src []float32, s float32) {
	for i := range dst {
		dst[i] = src[i] * s
	}
}

func addScaledGeneric(dst, a, b []float32, s float32) {
	for i := range dst {
		dst[i] = a[i] + b[i]*s
	}
}

func affineGeneric(dst, src []float32, scale, offset float32) {
	for i := range dst {
		dst[i] = src[i]*scale + offset
	}
}
