package layergo

import "iter"

// Layer is a fixed-length field holding one value of type T per index of an
// implicit domain. The backing storage is owned by the layer; its length
// never changes after construction.
//
// Operations write into caller-supplied output layers and never allocate.
// Unless documented otherwise, an output may be the same layer as one of the
// inputs.
type Layer[T any] struct {
	data []T
}

// New creates a layer of the given length with every element set to the
// zero value of T.
func New[T any](length int) *Layer[T] {
	return &Layer[T]{data: make([]T, length)}
}

// FromSlice creates a layer holding a copy of values.
func FromSlice[T any](values []T) *Layer[T] {
	data := make([]T, len(values))
	copy(data, values)
	return &Layer[T]{data: data}
}

// Len returns the number of elements.
func (l *Layer[T]) Len() int {
	return len(l.data)
}

// At returns the element at index i.
func (l *Layer[T]) At(i int) T {
	return l.data[i]
}

// Set stores v at index i.
func (l *Layer[T]) Set(i int, v T) {
	l.data[i] = v
}

// Values returns the backing slice. Writes through it modify the layer.
func (l *Layer[T]) Values() []T {
	return l.data
}

// All returns an iterator over index/value pairs.
func (l *Layer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range l.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Fill sets every element to value.
func (l *Layer[T]) Fill(value T) {
	for i := range l.data {
		l.data[i] = value
	}
}

// CopyInto copies every element into out, which must have the same length.
func (l *Layer[T]) CopyInto(out *Layer[T]) {
	checkLength("CopyInto", len(l.data), len(out.data))
	copy(out.data, l.data)
}

// Clone returns an independent copy of the layer.
func (l *Layer[T]) Clone() *Layer[T] {
	return FromSlice(l.data)
}

// Update replaces every element with f applied to it, in place.
func (l *Layer[T]) Update(f func(T) T) {
	for i, v := range l.data {
		l.data[i] = f(v)
	}
}
