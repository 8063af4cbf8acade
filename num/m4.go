package num

// M4 is a 4×4 homogeneous transform stored column-major: A, B, C and D are
// its columns, D holding the translation.
//
// The zero value is the zero matrix, not the identity.
type M4 struct {
	A, B, C, D V4
}

// Identity4 returns the 4×4 identity matrix.
func Identity4() M4 {
	return M4{
		A: V4{X: 1},
		B: V4{Y: 1},
		C: V4{Z: 1},
		D: V4{W: 1},
	}
}

// Translation4 returns the transform that moves points by v.
func Translation4(v V3) M4 {
	m := Identity4()
	m.D = v.Extend(1)
	return m
}

// Extend embeds the linear map m into a homogeneous transform without
// translation.
func (m M3) Extend() M4 {
	return M4{
		A: m.A.Extend(0),
		B: m.B.Extend(0),
		C: m.C.Extend(0),
		D: V4{W: 1},
	}
}

// Translation returns the translation part of m.
func (m M4) Translation() V3 {
	return m.D.XYZ()
}

// MulV4 returns the matrix-vector product m·v.
func (m M4) MulV4(v V4) V4 {
	return m.A.Scale(v.X).Add(m.B.Scale(v.Y)).Add(m.C.Scale(v.Z)).Add(m.D.Scale(v.W))
}

// TransformPoint applies m to p with w = 1.
func (m M4) TransformPoint(p V3) V3 {
	return m.MulV4(p.Extend(1)).XYZ()
}

// Mul returns the matrix product m·o, which applies o first.
func (m M4) Mul(o M4) M4 {
	return M4{m.MulV4(o.A), m.MulV4(o.B), m.MulV4(o.C), m.MulV4(o.D)}
}

// Transpose returns the transpose of m.
func (m M4) Transpose() M4 {
	return M4{
		A: V4{m.A.X, m.B.X, m.C.X, m.D.X},
		B: V4{m.A.Y, m.B.Y, m.C.Y, m.D.Y},
		C: V4{m.A.Z, m.B.Z, m.C.Z, m.D.Z},
		D: V4{m.A.W, m.B.W, m.C.W, m.D.W},
	}
}

// Inverse returns m⁻¹ by cofactor expansion over 2×2 minors. It reports
// false for a singular matrix.
func (m M4) Inverse() (M4, bool) {
	a00, a01, a02, a03 := m.A.X, m.A.Y, m.A.Z, m.A.W
	a10, a11, a12, a13 := m.B.X, m.B.Y, m.B.Z, m.B.W
	a20, a21, a22, a23 := m.C.X, m.C.Y, m.C.Z, m.C.W
	a30, a31, a32, a33 := m.D.X, m.D.Y, m.D.Z, m.D.W

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	if det == 0 {
		return M4{}, false
	}
	inv := 1 / det

	return M4{
		A: V4{
			(a11*b11 - a12*b10 + a13*b09) * inv,
			(a02*b10 - a01*b11 - a03*b09) * inv,
			(a31*b05 - a32*b04 + a33*b03) * inv,
			(a22*b04 - a21*b05 - a23*b03) * inv,
		},
		B: V4{
			(a12*b08 - a10*b11 - a13*b07) * inv,
			(a00*b11 - a02*b08 + a03*b07) * inv,
			(a32*b02 - a30*b05 - a33*b01) * inv,
			(a20*b05 - a22*b02 + a23*b01) * inv,
		},
		C: V4{
			(a10*b10 - a11*b08 + a13*b06) * inv,
			(a01*b08 - a00*b10 - a03*b06) * inv,
			(a30*b04 - a31*b02 + a33*b00) * inv,
			(a21*b02 - a20*b04 - a23*b00) * inv,
		},
		D: V4{
			(a11*b07 - a10*b09 - a12*b06) * inv,
			(a00*b09 - a01*b07 + a02*b06) * inv,
			(a31*b01 - a30*b03 - a32*b00) * inv,
			(a20*b03 - a21*b01 + a22*b00) * inv,
		},
	}, true
}
