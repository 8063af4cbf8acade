package layergo

import (
	"github.com/hupe1980/layergo/interp"
	"github.com/hupe1980/layergo/num"
)

// MixValues sets out[i] = interp.Mix(x[i], a, b).
func MixValues[T num.Number](x *Layer[T], a, b T, out *Layer[T]) {
	MapValue(x, b-a, func(t, d T) T { return t*d + a }, out)
}

// MixValueLayer sets out[i] = interp.Mix(x[i], a, b[i]).
func MixValueLayer[T num.Number](x *Layer[T], a T, b, out *Layer[T]) {
	Map2(x, b, func(t, hi T) T { return interp.Mix(t, a, hi) }, out)
}

// MixLayerValue sets out[i] = interp.Mix(x[i], a[i], b).
func MixLayerValue[T num.Number](x, a *Layer[T], b T, out *Layer[T]) {
	Map2(x, a, func(t, lo T) T { return interp.Mix(t, lo, b) }, out)
}

// MixLayers sets out[i] = interp.Mix(x[i], a[i], b[i]).
func MixLayers[T num.Number](x, a, b, out *Layer[T]) {
	Map3(x, a, b, interp.Mix[T], out)
}

// ClampValues sets out[i] = interp.Clamp(x[i], lo, hi).
func ClampValues[T num.Number](x *Layer[T], lo, hi T, out *Layer[T]) {
	Map(x, func(v T) T { return interp.Clamp(v, lo, hi) }, out)
}

// ClampValueLayer sets out[i] = interp.Clamp(x[i], lo, hi[i]).
func ClampValueLayer[T num.Number](x *Layer[T], lo T, hi, out *Layer[T]) {
	Map2(x, hi, func(v, h T) T { return interp.Clamp(v, lo, h) }, out)
}

// ClampLayerValue sets out[i] = interp.Clamp(x[i], lo[i], hi).
func ClampLayerValue[T num.Number](x, lo *Layer[T], hi T, out *Layer[T]) {
	Map2(x, lo, func(v, l T) T { return interp.Clamp(v, l, hi) }, out)
}

// ClampLayers sets out[i] = interp.Clamp(x[i], lo[i], hi[i]).
func ClampLayers[T num.Number](x, lo, hi, out *Layer[T]) {
	Map3(x, lo, hi, interp.Clamp[T], out)
}

// StepValue sets out[i] = interp.Step(x[i], a).
func StepValue[T num.Number](x *Layer[T], a T, out *Layer[T]) {
	MapValue(x, a, interp.Step[T], out)
}

// StepLayer sets out[i] = interp.Step(x[i], a[i]).
func StepLayer[T num.Number](x, a, out *Layer[T]) {
	Map2(x, a, interp.Step[T], out)
}

// LinearstepValues sets out[i] = interp.Linearstep(x[i], a, b).
func LinearstepValues[T num.Float](x *Layer[T], a, b T, out *Layer[T]) {
	Map(x, func(v T) T { return interp.Linearstep(v, a, b) }, out)
}

// LinearstepValueLayer sets out[i] = interp.Linearstep(x[i], a, b[i]).
func LinearstepValueLayer[T num.Float](x *Layer[T], a T, b, out *Layer[T]) {
	Map2(x, b, func(v, hi T) T { return interp.Linearstep(v, a, hi) }, out)
}

// LinearstepLayerValue sets out[i] = interp.Linearstep(x[i], a[i], b).
func LinearstepLayerValue[T num.Float](x, a *Layer[T], b T, out *Layer[T]) {
	Map2(x, a, func(v, lo T) T { return interp.Linearstep(v, lo, b) }, out)
}

// LinearstepLayers sets out[i] = interp.Linearstep(x[i], a[i], b[i]).
func LinearstepLayers[T num.Float](x, a, b, out *Layer[T]) {
	Map3(x, a, b, interp.Linearstep[T], out)
}

// SmoothstepValues sets out[i] = interp.Smoothstep(x[i], a, b).
func SmoothstepValues[T num.Float](x *Layer[T], a, b T, out *Layer[T]) {
	Map(x, func(v T) T { return interp.Smoothstep(v, a, b) }, out)
}

// SmoothstepValueLayer sets out[i] = interp.Smoothstep(x[i], a, b[i]).
func SmoothstepValueLayer[T num.Float](x *Layer[T], a T, b, out *Layer[T]) {
	Map2(x, b, func(v, hi T) T { return interp.Smoothstep(v, a, hi) }, out)
}

// SmoothstepLayerValue sets out[i] = interp.Smoothstep(x[i], a[i], b).
func SmoothstepLayerValue[T num.Float](x, a *Layer[T], b T, out *Layer[T]) {
	Map2(x, a, func(v, lo T) T { return interp.Smoothstep(v, lo, b) }, out)
}

// SmoothstepLayers sets out[i] = interp.Smoothstep(x[i], a[i], b[i]).
func SmoothstepLayers[T num.Float](x, a, b, out *Layer[T]) {
	Map3(x, a, b, interp.Smoothstep[T], out)
}

// Smoothstep2Value sets out[i] = interp.Smoothstep2(x[i], k).
func Smoothstep2Value[T num.Float](x *Layer[T], k T, out *Layer[T]) {
	MapValue(x, k, interp.Smoothstep2[T], out)
}

// Smoothstep2Layer sets out[i] = interp.Smoothstep2(x[i], k[i]).
func Smoothstep2Layer[T num.Float](x, k, out *Layer[T]) {
	Map2(x, k, interp.Smoothstep2[T], out)
}

// Lerp interpolates every element of x piecewise-linearly through the
// control points (xs, ys), folding one Linearstep and one Mix pass per
// interval. xs must be sorted ascending and ys must be at least as long.
//
// scratch1 and scratch2 must have the length of x and be distinct from x,
// out and each other. out may be x.
func Lerp[T num.Float](x *Layer[T], xs, ys []T, scratch1, scratch2, out *Layer[T]) {
	const op = "Lerp"
	checkAtLeast(op, 1, len(xs))
	checkAtLeast(op, len(xs), len(ys))
	n := len(x.data)
	checkLength(op, n, len(scratch1.data))
	checkLength(op, n, len(scratch2.data))
	checkLength(op, n, len(out.data))

	t, result := scratch1, scratch2
	result.Fill(ys[0])
	for i := 1; i < len(xs); i++ {
		LinearstepValues(x, xs[i-1], xs[i], t)
		MixLayerValue(t, result, ys[i], result)
	}
	result.CopyInto(out)
}
