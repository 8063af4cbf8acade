package layergo

import "github.com/hupe1980/layergo/num"

// Map sets out[i] = f(l[i]).
func Map[T, U any](l *Layer[T], f func(T) U, out *Layer[U]) {
	checkLength("Map", len(l.data), len(out.data))
	o := out.data
	for i, v := range l.data {
		o[i] = f(v)
	}
}

// MapValue sets out[i] = f(l[i], value), broadcasting value to every index.
func MapValue[T, V, U any](l *Layer[T], value V, f func(T, V) U, out *Layer[U]) {
	checkLength("MapValue", len(l.data), len(out.data))
	o := out.data
	for i, v := range l.data {
		o[i] = f(v, value)
	}
}

// Map2 sets out[i] = f(a[i], b[i]).
func Map2[A, B, U any](a *Layer[A], b *Layer[B], f func(A, B) U, out *Layer[U]) {
	n := len(a.data)
	checkLength("Map2", n, len(b.data))
	checkLength("Map2", n, len(out.data))

	bs, o := b.data[:n], out.data[:n]
	for i, v := range a.data {
		o[i] = f(v, bs[i])
	}
}

// Map3 sets out[i] = f(a[i], b[i], c[i]).
func Map3[A, B, C, U any](a *Layer[A], b *Layer[B], c *Layer[C], f func(A, B, C) U, out *Layer[U]) {
	n := len(a.data)
	checkLength("Map3", n, len(b.data))
	checkLength("Map3", n, len(c.data))
	checkLength("Map3", n, len(out.data))

	bs, cs, o := b.data[:n], c.data[:n], out.data[:n]
	for i, v := range a.data {
		o[i] = f(v, bs[i], cs[i])
	}
}

// Update2 sets l[i] = f(l[i], other[i]) in place.
func Update2[T, U any](l *Layer[T], other *Layer[U], f func(T, U) T) {
	checkLength("Update2", len(l.data), len(other.data))
	src := other.data[:len(l.data)]
	for i, v := range l.data {
		l.data[i] = f(v, src[i])
	}
}

// Convert returns a new layer holding f applied to every element of l.
func Convert[T, U any](l *Layer[T], f func(T) U) *Layer[U] {
	out := New[U](len(l.data))
	Map(l, f, out)
	return out
}

// ConvertNumber returns a new layer with every element of l converted to U
// using Go's numeric conversion rules.
func ConvertNumber[U, T num.Number](l *Layer[T]) *Layer[U] {
	return Convert(l, func(v T) U { return U(v) })
}
