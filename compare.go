package layergo

import "cmp"

// Less sets out[i] = a[i] < b[i].
func Less[T cmp.Ordered](a, b *Layer[T], out *Layer[bool]) {
	Map2(a, b, func(x, y T) bool { return x < y }, out)
}

// LessValue sets out[i] = a[i] < value.
func LessValue[T cmp.Ordered](a *Layer[T], value T, out *Layer[bool]) {
	MapValue(a, value, func(x, v T) bool { return x < v }, out)
}

// LessEqual sets out[i] = a[i] <= b[i].
func LessEqual[T cmp.Ordered](a, b *Layer[T], out *Layer[bool]) {
	Map2(a, b, func(x, y T) bool { return x <= y }, out)
}

// LessEqualValue sets out[i] = a[i] <= value.
func LessEqualValue[T cmp.Ordered](a *Layer[T], value T, out *Layer[bool]) {
	MapValue(a, value, func(x, v T) bool { return x <= v }, out)
}

// Greater sets out[i] = a[i] > b[i].
func Greater[T cmp.Ordered](a, b *Layer[T], out *Layer[bool]) {
	Map2(a, b, func(x, y T) bool { return x > y }, out)
}

// GreaterValue sets out[i] = a[i] > value.
func GreaterValue[T cmp.Ordered](a *Layer[T], value T, out *Layer[bool]) {
	MapValue(a, value, func(x, v T) bool { return x > v }, out)
}

// GreaterEqual sets out[i] = a[i] >= b[i].
func GreaterEqual[T cmp.Ordered](a, b *Layer[T], out *Layer[bool]) {
	Map2(a, b, func(x, y T) bool { return x >= y }, out)
}

// GreaterEqualValue sets out[i] = a[i] >= value.
func GreaterEqualValue[T cmp.Ordered](a *Layer[T], value T, out *Layer[bool]) {
	MapValue(a, value, func(x, v T) bool { return x >= v }, out)
}

// Equal sets out[i] = a[i] == b[i].
func Equal[T comparable](a, b *Layer[T], out *Layer[bool]) {
	Map2(a, b, func(x, y T) bool { return x == y }, out)
}

// EqualValue sets out[i] = a[i] == value.
func EqualValue[T comparable](a *Layer[T], value T, out *Layer[bool]) {
	MapValue(a, value, func(x, v T) bool { return x == v }, out)
}

// NotEqual sets out[i] = a[i] != b[i].
func NotEqual[T comparable](a, b *Layer[T], out *Layer[bool]) {
	Map2(a, b, func(x, y T) bool { return x != y }, out)
}

// NotEqualValue sets out[i] = a[i] != value.
func NotEqualValue[T comparable](a *Layer[T], value T, out *Layer[bool]) {
	MapValue(a, value, func(x, v T) bool { return x != v }, out)
}
