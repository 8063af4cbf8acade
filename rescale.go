package layergo

import (
	"github.com/hupe1980/layergo/internal/simd"
	"github.com/hupe1980/layergo/num"
)

// RescaleFromToRange maps [fromLo, fromHi] affinely onto [toLo, toHi]:
//
//	out[i] = (l[i] - fromLo) · (toHi - toLo)/(fromHi - fromLo) + toLo
//
// A degenerate source range (fromLo == fromHi) yields non-finite values.
func RescaleFromToRange[T num.Float](l *Layer[T], fromLo, fromHi, toLo, toHi T, out *Layer[T]) {
	checkLength("RescaleFromToRange", len(l.data), len(out.data))

	factor := (toHi - toLo) / (fromHi - fromLo)

	if f, ok := asFloat32(l.data); ok {
		o, _ := asFloat32(out.data)
		simd.Affine(o, f, float32(factor), float32(toLo-fromLo*factor))
		return
	}

	o := out.data
	for i, v := range l.data {
		o[i] = (v-fromLo)*factor + toLo
	}
}

// RescaleToRange rescales from the layer's own [min, max] onto [toLo, toHi].
func RescaleToRange[T num.Float](l *Layer[T], toLo, toHi T, out *Layer[T]) {
	fromLo, fromHi := MinMax(l)
	RescaleFromToRange(l, fromLo, fromHi, toLo, toHi, out)
}

// Normalize rescales the layer's own [min, max] onto [0, 1].
func Normalize[T num.Float](l *Layer[T], out *Layer[T]) {
	RescaleToRange(l, 0, 1, out)
}

// RescaleFromTo rescales a non-negative field so that fromHi maps to toHi,
// keeping zero fixed: out[i] = l[i] · toHi/fromHi.
func RescaleFromTo[T num.Float](l *Layer[T], fromHi, toHi T, out *Layer[T]) {
	checkLength("RescaleFromTo", len(l.data), len(out.data))

	factor := toHi / fromHi

	if f, ok := asFloat32(l.data); ok {
		o, _ := asFloat32(out.data)
		simd.Scale(o, f, float32(factor))
		return
	}

	o := out.data
	for i, v := range l.data {
		o[i] = v * factor
	}
}

// RescaleTo rescales a non-negative field so that its maximum maps to toHi.
func RescaleTo[T num.Float](l *Layer[T], toHi T, out *Layer[T]) {
	_, fromHi := MinMax(l)
	RescaleFromTo(l, fromHi, toHi, out)
}
