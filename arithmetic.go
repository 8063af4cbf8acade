package layergo

import (
	"github.com/hupe1980/layergo/internal/simd"
	"github.com/hupe1980/layergo/num"
)

// Add sets out[i] = a[i] + b[i].
func Add[T num.Number](a, b, out *Layer[T]) {
	if f, ok := asFloat32(a.data); ok {
		n := len(f)
		checkLength("Add", n, len(b.data))
		checkLength("Add", n, len(out.data))
		bs, _ := asFloat32(b.data)
		o, _ := asFloat32(out.data)
		simd.Add(o, f, bs)
		return
	}
	Map2(a, b, func(x, y T) T { return x + y }, out)
}

// AddValue sets out[i] = a[i] + value.
func AddValue[T num.Number](a *Layer[T], value T, out *Layer[T]) {
	MapValue(a, value, func(x, v T) T { return x + v }, out)
}

// Sub sets out[i] = a[i] - b[i].
func Sub[T num.Number](a, b, out *Layer[T]) {
	Map2(a, b, func(x, y T) T { return x - y }, out)
}

// SubValue sets out[i] = a[i] - value.
func SubValue[T num.Number](a *Layer[T], value T, out *Layer[T]) {
	MapValue(a, value, func(x, v T) T { return x - v }, out)
}

// Mul sets out[i] = a[i] · b[i].
func Mul[T num.Number](a, b, out *Layer[T]) {
	Map2(a, b, func(x, y T) T { return x * y }, out)
}

// MulValue sets out[i] = a[i] · value.
func MulValue[T num.Number](a *Layer[T], value T, out *Layer[T]) {
	if f, ok := asFloat32(a.data); ok {
		checkLength("MulValue", len(f), len(out.data))
		o, _ := asFloat32(out.data)
		simd.Scale(o, f, float32(value))
		return
	}
	MapValue(a, value, func(x, v T) T { return x * v }, out)
}

// Div sets out[i] = a[i] / b[i]. Integer division by zero panics.
func Div[T num.Number](a, b, out *Layer[T]) {
	Map2(a, b, func(x, y T) T { return x / y }, out)
}

// DivValue sets out[i] = a[i] / value.
func DivValue[T num.Number](a *Layer[T], value T, out *Layer[T]) {
	MapValue(a, value, func(x, v T) T { return x / v }, out)
}

// Pow sets out[i] = a[i] ** b[i].
func Pow[T num.Number](a, b, out *Layer[T]) {
	Map2(a, b, num.Pow[T], out)
}

// PowValue sets out[i] = a[i] ** value.
func PowValue[T num.Number](a *Layer[T], value T, out *Layer[T]) {
	MapValue(a, value, num.Pow[T], out)
}

// Min sets out[i] = min(a[i], b[i]).
func Min[T num.Number](a, b, out *Layer[T]) {
	Map2(a, b, func(x, y T) T { return min(x, y) }, out)
}

// MinValue sets out[i] = min(a[i], value).
func MinValue[T num.Number](a *Layer[T], value T, out *Layer[T]) {
	MapValue(a, value, func(x, v T) T { return min(x, v) }, out)
}

// Max sets out[i] = max(a[i], b[i]).
func Max[T num.Number](a, b, out *Layer[T]) {
	Map2(a, b, func(x, y T) T { return max(x, y) }, out)
}

// MaxValue sets out[i] = max(a[i], value).
func MaxValue[T num.Number](a *Layer[T], value T, out *Layer[T]) {
	MapValue(a, value, func(x, v T) T { return max(x, v) }, out)
}

// AddWeighted sets out[i] = a[i] + weights[i]·b[i].
func AddWeighted[T num.Number](a, b, weights, out *Layer[T]) {
	Map3(a, b, weights, func(x, y, w T) T { return x + w*y }, out)
}

// AddValueWeighted sets out[i] = a[i] + weights[i]·value.
func AddValueWeighted[T num.Number](a *Layer[T], value T, weights, out *Layer[T]) {
	if f, ok := asFloat32(a.data); ok {
		n := len(f)
		checkLength("AddValueWeighted", n, len(weights.data))
		checkLength("AddValueWeighted", n, len(out.data))
		w, _ := asFloat32(weights.data)
		o, _ := asFloat32(out.data)
		simd.AddScaled(o, f, w, float32(value))
		return
	}
	Map2(a, weights, func(x, w T) T { return x + w*value }, out)
}

// SubWeighted sets out[i] = a[i] - weights[i]·b[i].
func SubWeighted[T num.Number](a, b, weights, out *Layer[T]) {
	Map3(a, b, weights, func(x, y, w T) T { return x - w*y }, out)
}

// SubValueWeighted sets out[i] = a[i] - weights[i]·value.
func SubValueWeighted[T num.Number](a *Layer[T], value T, weights, out *Layer[T]) {
	if f, ok := asFloat32(a.data); ok {
		n := len(f)
		checkLength("SubValueWeighted", n, len(weights.data))
		checkLength("SubValueWeighted", n, len(out.data))
		w, _ := asFloat32(weights.data)
		o, _ := asFloat32(out.data)
		simd.AddScaled(o, f, w, -float32(value))
		return
	}
	Map2(a, weights, func(x, w T) T { return x - w*value }, out)
}

// AddByMask sets out[i] = a[i] + b[i] where mask[i] is true and
// out[i] = a[i] elsewhere.
func AddByMask[T num.Number](a, b *Layer[T], mask *Layer[bool], out *Layer[T]) {
	Map3(a, b, mask, func(x, y T, m bool) T {
		if m {
			return x + y
		}
		return x
	}, out)
}

// AddValueByMask sets out[i] = a[i] + value where mask[i] is true and
// out[i] = a[i] elsewhere.
func AddValueByMask[T num.Number](a *Layer[T], value T, mask *Layer[bool], out *Layer[T]) {
	Map2(a, mask, func(x T, m bool) T {
		if m {
			return x + value
		}
		return x
	}, out)
}

// SubByMask sets out[i] = a[i] - b[i] where mask[i] is true and
// out[i] = a[i] elsewhere.
func SubByMask[T num.Number](a, b *Layer[T], mask *Layer[bool], out *Layer[T]) {
	Map3(a, b, mask, func(x, y T, m bool) T {
		if m {
			return x - y
		}
		return x
	}, out)
}

// SubValueByMask sets out[i] = a[i] - value where mask[i] is true and
// out[i] = a[i] elsewhere.
func SubValueByMask[T num.Number](a *Layer[T], value T, mask *Layer[bool], out *Layer[T]) {
	Map2(a, mask, func(x T, m bool) T {
		if m {
			return x - value
		}
		return x
	}, out)
}
