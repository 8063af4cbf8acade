package layergo

// Not sets out[i] = !mask[i].
func Not(mask, out *Layer[bool]) {
	Map(mask, func(m bool) bool { return !m }, out)
}

// And sets out[i] = a[i] && b[i].
func And(a, b, out *Layer[bool]) {
	Map2(a, b, func(x, y bool) bool { return x && y }, out)
}

// Or sets out[i] = a[i] || b[i].
func Or(a, b, out *Layer[bool]) {
	Map2(a, b, func(x, y bool) bool { return x || y }, out)
}

// CountTrue returns the number of set elements.
func CountTrue(mask *Layer[bool]) int {
	var n int
	for _, m := range mask.data {
		if m {
			n++
		}
	}
	return n
}
