package num

// V4 is a 4D vector.
type V4 struct {
	X, Y, Z, W float32
}

// XYZ drops the w component.
func (v V4) XYZ() V3 {
	return V3{v.X, v.Y, v.Z}
}

// Add returns v + o.
func (v V4) Add(o V4) V4 {
	return V4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns v - o.
func (v V4) Sub(o V4) V4 {
	return V4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Scale returns v * s.
func (v V4) Scale(s float32) V4 {
	return V4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the dot product of v and o.
func (v V4) Dot(o V4) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// MagnitudeSquared returns |v|².
func (v V4) MagnitudeSquared() float32 {
	return v.Dot(v)
}

// Magnitude returns |v|.
func (v V4) Magnitude() float32 {
	return Sqrt(v.MagnitudeSquared())
}

// Normalize returns v scaled to unit length.
func (v V4) Normalize() V4 {
	return v.Scale(1 / v.Magnitude())
}

// Similarity returns the cosine of the angle between v and o.
func (v V4) Similarity(o V4) float32 {
	return similarity(v.Dot(o), v.MagnitudeSquared(), o.MagnitudeSquared())
}

// EntrywiseMul returns the Hadamard product of v and o.
func (v V4) EntrywiseMul(o V4) V4 {
	return V4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

// EntrywiseDiv divides v by o componentwise.
func (v V4) EntrywiseDiv(o V4) V4 {
	return V4{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W}
}

// EntrywisePow raises each component of v to the matching power in o.
func (v V4) EntrywisePow(o V4) V4 {
	return V4{Pow(v.X, o.X), Pow(v.Y, o.Y), Pow(v.Z, o.Z), Pow(v.W, o.W)}
}

// EntrywiseMin returns the componentwise minimum.
func (v V4) EntrywiseMin(o V4) V4 {
	return V4{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z), min(v.W, o.W)}
}

// EntrywiseMax returns the componentwise maximum.
func (v V4) EntrywiseMax(o V4) V4 {
	return V4{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z), max(v.W, o.W)}
}

// EntrywiseSqrt returns the componentwise square root.
func (v V4) EntrywiseSqrt() V4 {
	return V4{Sqrt(v.X), Sqrt(v.Y), Sqrt(v.Z), Sqrt(v.W)}
}

// EntrywiseExp returns e raised to each component.
func (v V4) EntrywiseExp() V4 {
	return V4{Exp(v.X), Exp(v.Y), Exp(v.Z), Exp(v.W)}
}

// EntrywiseInv returns the componentwise reciprocal.
func (v V4) EntrywiseInv() V4 {
	return V4{1 / v.X, 1 / v.Y, 1 / v.Z, 1 / v.W}
}
