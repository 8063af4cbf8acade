package vecfield

import (
	"github.com/hupe1980/layergo"
	"github.com/hupe1980/layergo/num"
)

// Add sets out[i] = a[i] + b[i].
func Add[V num.Vector[V]](a, b, out *layergo.Layer[V]) {
	layergo.Map2(a, b, func(x, y V) V { return x.Add(y) }, out)
}

// AddValue sets out[i] = a[i] + value.
func AddValue[V num.Vector[V]](a *layergo.Layer[V], value V, out *layergo.Layer[V]) {
	layergo.MapValue(a, value, func(x, v V) V { return x.Add(v) }, out)
}

// Sub sets out[i] = a[i] - b[i].
func Sub[V num.Vector[V]](a, b, out *layergo.Layer[V]) {
	layergo.Map2(a, b, func(x, y V) V { return x.Sub(y) }, out)
}

// SubValue sets out[i] = a[i] - value.
func SubValue[V num.Vector[V]](a *layergo.Layer[V], value V, out *layergo.Layer[V]) {
	layergo.MapValue(a, value, func(x, v V) V { return x.Sub(v) }, out)
}

// Scale sets out[i] = a[i] · s.
func Scale[V num.Vector[V]](a *layergo.Layer[V], s float32, out *layergo.Layer[V]) {
	layergo.MapValue(a, s, func(x V, f float32) V { return x.Scale(f) }, out)
}

// ScaleLayer sets out[i] = a[i] · s[i].
func ScaleLayer[V num.Vector[V]](a *layergo.Layer[V], s *layergo.Layer[float32], out *layergo.Layer[V]) {
	layergo.Map2(a, s, func(x V, f float32) V { return x.Scale(f) }, out)
}

// Dot sets out[i] = a[i] · b[i].
func Dot[V num.Vector[V]](a, b *layergo.Layer[V], out *layergo.Layer[float32]) {
	layergo.Map2(a, b, func(x, y V) float32 { return x.Dot(y) }, out)
}

// DotValue sets out[i] = a[i] · value.
func DotValue[V num.Vector[V]](a *layergo.Layer[V], value V, out *layergo.Layer[float32]) {
	layergo.MapValue(a, value, func(x, v V) float32 { return x.Dot(v) }, out)
}

// Similarity sets out[i] to the cosine similarity of a[i] and b[i].
func Similarity[V num.Vector[V]](a, b *layergo.Layer[V], out *layergo.Layer[float32]) {
	layergo.Map2(a, b, func(x, y V) float32 { return x.Similarity(y) }, out)
}

// SimilarityValue sets out[i] to the cosine similarity of a[i] and value.
func SimilarityValue[V num.Vector[V]](a *layergo.Layer[V], value V, out *layergo.Layer[float32]) {
	layergo.MapValue(a, value, func(x, v V) float32 { return x.Similarity(v) }, out)
}

// AddWeighted sets out[i] = a[i] + b[i]·weights[i].
func AddWeighted[V num.Vector[V]](a, b *layergo.Layer[V], weights *layergo.Layer[float32], out *layergo.Layer[V]) {
	layergo.Map3(a, b, weights, func(x, y V, w float32) V { return x.Add(y.Scale(w)) }, out)
}

// AddValueWeighted sets out[i] = a[i] + value·weights[i].
func AddValueWeighted[V num.Vector[V]](a *layergo.Layer[V], value V, weights *layergo.Layer[float32], out *layergo.Layer[V]) {
	layergo.Map2(a, weights, func(x V, w float32) V { return x.Add(value.Scale(w)) }, out)
}

// SubWeighted sets out[i] = a[i] - b[i]·weights[i].
func SubWeighted[V num.Vector[V]](a, b *layergo.Layer[V], weights *layergo.Layer[float32], out *layergo.Layer[V]) {
	layergo.Map3(a, b, weights, func(x, y V, w float32) V { return x.Sub(y.Scale(w)) }, out)
}

// SubValueWeighted sets out[i] = a[i] - value·weights[i].
func SubValueWeighted[V num.Vector[V]](a *layergo.Layer[V], value V, weights *layergo.Layer[float32], out *layergo.Layer[V]) {
	layergo.Map2(a, weights, func(x V, w float32) V { return x.Sub(value.Scale(w)) }, out)
}

// AddByMask sets out[i] = a[i] + b[i] where mask[i] is true and
// out[i] = a[i] elsewhere.
func AddByMask[V num.Vector[V]](a, b *layergo.Layer[V], mask *layergo.Layer[bool], out *layergo.Layer[V]) {
	layergo.Map3(a, b, mask, func(x, y V, m bool) V {
		if m {
			return x.Add(y)
		}
		return x
	}, out)
}

// AddValueByMask sets out[i] = a[i] + value where mask[i] is true.
func AddValueByMask[V num.Vector[V]](a *layergo.Layer[V], value V, mask *layergo.Layer[bool], out *layergo.Layer[V]) {
	layergo.Map2(a, mask, func(x V, m bool) V {
		if m {
			return x.Add(value)
		}
		return x
	}, out)
}

// SubByMask sets out[i] = a[i] - b[i] where mask[i] is true.
func SubByMask[V num.Vector[V]](a, b *layergo.Layer[V], mask *layergo.Layer[bool], out *layergo.Layer[V]) {
	layergo.Map3(a, b, mask, func(x, y V, m bool) V {
		if m {
			return x.Sub(y)
		}
		return x
	}, out)
}

// SubValueByMask sets out[i] = a[i] - value where mask[i] is true.
func SubValueByMask[V num.Vector[V]](a *layergo.Layer[V], value V, mask *layergo.Layer[bool], out *layergo.Layer[V]) {
	layergo.Map2(a, mask, func(x V, m bool) V {
		if m {
			return x.Sub(value)
		}
		return x
	}, out)
}

// InverseSwizzleAdd scatters through mapping with vector addition, as
// layergo.InverseSwizzleAdd does for scalars.
func InverseSwizzleAdd[V num.Vector[V]](l *layergo.Layer[V], mapping *layergo.Layer[int], add, out *layergo.Layer[V]) {
	layergo.InverseSwizzleFunc(l, mapping, add, func(x, y V) V { return x.Add(y) }, out)
}

// Mix sets out[i] = a[i] + (b[i] - a[i])·x[i].
func Mix[V num.Vector[V]](x *layergo.Layer[float32], a, b, out *layergo.Layer[V]) {
	layergo.Map3(x, a, b, func(t float32, lo, hi V) V { return lo.Add(hi.Sub(lo).Scale(t)) }, out)
}

// MixValues sets out[i] = a + (b - a)·x[i].
func MixValues[V num.Vector[V]](x *layergo.Layer[float32], a, b V, out *layergo.Layer[V]) {
	d := b.Sub(a)
	layergo.Map(x, func(t float32) V { return a.Add(d.Scale(t)) }, out)
}
