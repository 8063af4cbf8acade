package num

// M3 is a 3×3 matrix stored column-major: A, B and C are its columns.
//
// The zero value is the zero matrix, not the identity.
type M3 struct {
	A, B, C V3
}

// Identity3 returns the 3×3 identity matrix.
func Identity3() M3 {
	return M3{A: UnitX(), B: UnitY(), C: UnitZ()}
}

// Add returns m + o.
func (m M3) Add(o M3) M3 {
	return M3{m.A.Add(o.A), m.B.Add(o.B), m.C.Add(o.C)}
}

// Sub returns m - o.
func (m M3) Sub(o M3) M3 {
	return M3{m.A.Sub(o.A), m.B.Sub(o.B), m.C.Sub(o.C)}
}

// Scale returns m * s.
func (m M3) Scale(s float32) M3 {
	return M3{m.A.Scale(s), m.B.Scale(s), m.C.Scale(s)}
}

// MulV3 returns the matrix-vector product m·v.
func (m M3) MulV3(v V3) V3 {
	return m.A.Scale(v.X).Add(m.B.Scale(v.Y)).Add(m.C.Scale(v.Z))
}

// Mul returns the matrix product m·o.
func (m M3) Mul(o M3) M3 {
	return M3{m.MulV3(o.A), m.MulV3(o.B), m.MulV3(o.C)}
}

// Transpose returns the transpose of m.
func (m M3) Transpose() M3 {
	return M3{
		A: V3{m.A.X, m.B.X, m.C.X},
		B: V3{m.A.Y, m.B.Y, m.C.Y},
		C: V3{m.A.Z, m.B.Z, m.C.Z},
	}
}

// Determinant returns det(m).
func (m M3) Determinant() float32 {
	return m.A.Dot(m.B.Cross(m.C))
}

// Inverse returns m⁻¹. It reports false for a singular matrix.
func (m M3) Inverse() (M3, bool) {
	det := m.Determinant()
	if det == 0 {
		return M3{}, false
	}
	// Rows of the inverse are the pairwise cross products of the columns.
	rows := M3{m.B.Cross(m.C), m.C.Cross(m.A), m.A.Cross(m.B)}
	return rows.Transpose().Scale(1 / det), true
}
