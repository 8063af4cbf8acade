package vecfield

import (
	"github.com/hupe1980/layergo"
	"github.com/hupe1980/layergo/num"
)

// Magnitudes sets out[i] = |l[i]|.
func Magnitudes[V num.Vector[V]](l *layergo.Layer[V], out *layergo.Layer[float32]) {
	layergo.Map(l, func(v V) float32 { return v.Magnitude() }, out)
}

// MaxMagnitude returns the largest |l[i]|, or zero for an empty layer.
func MaxMagnitude[V num.Vector[V]](l *layergo.Layer[V]) float32 {
	var maxSq float32
	for _, v := range l.Values() {
		if sq := v.MagnitudeSquared(); sq > maxSq {
			maxSq = sq
		}
	}
	return num.Sqrt(maxSq)
}

// RescaleFromTo scales every vector by toMagnitude/fromMagnitude.
func RescaleFromTo[V num.Vector[V]](l *layergo.Layer[V], fromMagnitude, toMagnitude float32, out *layergo.Layer[V]) {
	Scale(l, toMagnitude/fromMagnitude, out)
}

// RescaleTo scales the field so that its longest vector has length
// toMagnitude. An all-zero field yields non-finite components.
func RescaleTo[V num.Vector[V]](l *layergo.Layer[V], toMagnitude float32, out *layergo.Layer[V]) {
	RescaleFromTo(l, MaxMagnitude(l), toMagnitude, out)
}

// NormalizeEach makes every vector unit length.
func NormalizeEach[V num.Vector[V]](l, out *layergo.Layer[V]) {
	layergo.Map(l, func(v V) V { return v.Normalize() }, out)
}

// Average returns the mean vector. Components are NaN for an empty layer.
func Average[V num.Vector[V]](l *layergo.Layer[V]) V {
	var sum V
	for _, v := range l.Values() {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float32(l.Len()))
}

// WeightedAverage returns Σ l[i]·weights[i] / Σ weights[i].
func WeightedAverage[V num.Vector[V]](l *layergo.Layer[V], weights *layergo.Layer[float32]) V {
	layergo.RequireLength("WeightedAverage", l.Len(), weights.Len())

	var sum V
	var weightSum float32
	w := weights.Values()
	for i, v := range l.Values() {
		sum = sum.Add(v.Scale(w[i]))
		weightSum += w[i]
	}
	return sum.Scale(1 / weightSum)
}
