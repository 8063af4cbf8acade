package simd

// Unrolled kernels process four lanes per iteration. Reductions keep four
// independent accumulators and combine them pairwise at the end.

func dotUnrolled(a, b []float32) float32 {
	n := len(a)
	b = b[:n]

	var s0, s1, s2, s3 float32
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	for ; i < n; i++ {
		s0 += a[i] * b[i]
	}

	return (s0 + s1) + (s2 + s3)
}

func sumUnrolled(a []float32) float32 {
	n := len(a)

	var s0, s1, s2, s3 float32
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += a[i]
		s1 += a[i+1]
		s2 += a[i+2]
		s3 += a[i+3]
	}
	for ; i < n; i++ {
		s0 += a[i]
	}

	return (s0 + s1) + (s2 + s3)
}

func addUnrolled(dst, a, b []float32) {
	n := len(dst)
	a, b = a[:n], b[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] + b[i]
		dst[i+1] = a[i+1] + b[i+1]
		dst[i+2] = a[i+2] + b[i+2]
		dst[i+3] = a[i+3] + b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

func scaleUnrolled(dst, src []float32, s float32) {
	n := len(dst)
	src = src[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = src[i] * s
		dst[i+1] = src[i+1] * s
		dst[i+2] = src[i+2] * s
		dst[i+3] = src[i+3] * s
	}
	for ; i < n; i++ {
		dst[i] = src[i] * s
	}
}

func addScaledUnrolled(dst, a, b []float32, s float32) {
	n := len(dst)
	a, b = a[:n], b[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] + b[i]*s
		dst[i+1] = a[i+1] + b[i+1]*s
		dst[i+2] = a[i+2] + b[i+2]*s
		dst[i+3] = a[i+3] + b[i+3]*s
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]*s
	}
}

func affineUnrolled(dst, src []float32, scale, offset float32) {
	n := len(dst)
	src = src[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = src[i]*scale + offset
		dst[i+1] = src[i+1]*scale + offset
		dst[i+2] = src[i+2]*scale + offset
		dst[i+3] = src[i+3]*scale + offset
	}
	for ; i < n; i++ {
		dst[i] = src[i]*scale + offset
	}
}
