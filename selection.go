package layergo

// CopyIntoSelection sets out[i] = other[i] where mask[i] is true and
// out[i] = l[i] elsewhere.
func (l *Layer[T]) CopyIntoSelection(other *Layer[T], mask *Layer[bool], out *Layer[T]) {
	Map3(l, other, mask, func(x, y T, m bool) T {
		if m {
			return y
		}
		return x
	}, out)
}

// FillIntoSelection sets out[i] = value where mask[i] is true and
// out[i] = l[i] elsewhere.
func (l *Layer[T]) FillIntoSelection(value T, mask *Layer[bool], out *Layer[T]) {
	Map2(l, mask, func(x T, m bool) T {
		if m {
			return value
		}
		return x
	}, out)
}
