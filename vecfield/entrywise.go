package vecfield

import (
	"github.com/hupe1980/layergo"
	"github.com/hupe1980/layergo/num"
)

// EntrywiseMul sets out[i] to the componentwise product of a[i] and b[i].
func EntrywiseMul[V num.Vector[V]](a, b, out *layergo.Layer[V]) {
	layergo.Map2(a, b, func(x, y V) V { return x.EntrywiseMul(y) }, out)
}

// EntrywiseMulValue sets out[i] to the componentwise product of a[i] and value.
func EntrywiseMulValue[V num.Vector[V]](a *layergo.Layer[V], value V, out *layergo.Layer[V]) {
	layergo.MapValue(a, value, func(x, v V) V { return x.EntrywiseMul(v) }, out)
}

// EntrywiseDiv sets out[i] to the componentwise quotient of a[i] and b[i].
func EntrywiseDiv[V num.Vector[V]](a, b, out *layergo.Layer[V]) {
	layergo.Map2(a, b, func(x, y V) V { return x.EntrywiseDiv(y) }, out)
}

// EntrywiseDivValue sets out[i] to the componentwise quotient of a[i] and value.
func EntrywiseDivValue[V num.Vector[V]](a *layergo.Layer[V], value V, out *layergo.Layer[V]) {
	layergo.MapValue(a, value, func(x, v V) V { return x.EntrywiseDiv(v) }, out)
}

// EntrywisePow raises each component of a[i] to the matching component of b[i].
func EntrywisePow[V num.Vector[V]](a, b, out *layergo.Layer[V]) {
	layergo.Map2(a, b, func(x, y V) V { return x.EntrywisePow(y) }, out)
}

// EntrywisePowValue raises each component of a[i] to the matching component of value.
func EntrywisePowValue[V num.Vector[V]](a *layergo.Layer[V], value V, out *layergo.Layer[V]) {
	layergo.MapValue(a, value, func(x, v V) V { return x.EntrywisePow(v) }, out)
}

// EntrywiseMin sets out[i] to the componentwise minimum of a[i] and b[i].
func EntrywiseMin[V num.Vector[V]](a, b, out *layergo.Layer[V]) {
	layergo.Map2(a, b, func(x, y V) V { return x.EntrywiseMin(y) }, out)
}

// EntrywiseMinValue sets out[i] to the componentwise minimum of a[i] and value.
func EntrywiseMinValue[V num.Vector[V]](a *layergo.Layer[V], value V, out *layergo.Layer[V]) {
	layergo.MapValue(a, value, func(x, v V) V { return x.EntrywiseMin(v) }, out)
}

// EntrywiseMax sets out[i] to the componentwise maximum of a[i] and b[i].
func EntrywiseMax[V num.Vector[V]](a, b, out *layergo.Layer[V]) {
	layergo.Map2(a, b, func(x, y V) V { return x.EntrywiseMax(y) }, out)
}

// EntrywiseMaxValue sets out[i] to the componentwise maximum of a[i] and value.
func EntrywiseMaxValue[V num.Vector[V]](a *layergo.Layer[V], value V, out *layergo.Layer[V]) {
	layergo.MapValue(a, value, func(x, v V) V { return x.EntrywiseMax(v) }, out)
}

// EntrywiseSqrt takes the square root of every component.
func EntrywiseSqrt[V num.Vector[V]](a, out *layergo.Layer[V]) {
	layergo.Map(a, func(x V) V { return x.EntrywiseSqrt() }, out)
}

// EntrywiseExp takes e to the power of every component.
func EntrywiseExp[V num.Vector[V]](a, out *layergo.Layer[V]) {
	layergo.Map(a, func(x V) V { return x.EntrywiseExp() }, out)
}

// EntrywiseInv takes the reciprocal of every component.
func EntrywiseInv[V num.Vector[V]](a, out *layergo.Layer[V]) {
	layergo.Map(a, func(x V) V { return x.EntrywiseInv() }, out)
}
