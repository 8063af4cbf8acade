package num

import "math"

// V3 is a 3D vector.
type V3 struct {
	X, Y, Z float32
}

// UnitX returns the unit vector along x.
func UnitX() V3 { return V3{X: 1} }

// UnitY returns the unit vector along y.
func UnitY() V3 { return V3{Y: 1} }

// UnitZ returns the unit vector along z.
func UnitZ() V3 { return V3{Z: 1} }

// Add returns v + o.
func (v V3) Add(o V3) V3 {
	return V3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v V3) Sub(o V3) V3 {
	return V3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Neg returns -v.
func (v V3) Neg() V3 {
	return V3{-v.X, -v.Y, -v.Z}
}

// Scale returns v * s.
func (v V3) Scale(s float32) V3 {
	return V3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v V3) Dot(o V3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v V3) Cross(o V3) V3 {
	return V3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// MagnitudeSquared returns |v|².
func (v V3) MagnitudeSquared() float32 {
	return v.Dot(v)
}

// Magnitude returns |v|.
func (v V3) Magnitude() float32 {
	return Sqrt(v.MagnitudeSquared())
}

// Normalize returns v scaled to unit length. The zero vector yields NaNs.
func (v V3) Normalize() V3 {
	return v.Scale(1 / v.Magnitude())
}

// Similarity returns the cosine of the angle between v and o.
func (v V3) Similarity(o V3) float32 {
	return similarity(v.Dot(o), v.MagnitudeSquared(), o.MagnitudeSquared())
}

// EntrywiseMul returns the Hadamard product of v and o.
func (v V3) EntrywiseMul(o V3) V3 {
	return V3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// EntrywiseDiv divides v by o componentwise.
func (v V3) EntrywiseDiv(o V3) V3 {
	return V3{v.X / o.X, v.Y / o.Y, v.Z / o.Z}
}

// EntrywisePow raises each component of v to the matching power in o.
func (v V3) EntrywisePow(o V3) V3 {
	return V3{Pow(v.X, o.X), Pow(v.Y, o.Y), Pow(v.Z, o.Z)}
}

// EntrywiseMin returns the componentwise minimum.
func (v V3) EntrywiseMin(o V3) V3 {
	return V3{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z)}
}

// EntrywiseMax returns the componentwise maximum.
func (v V3) EntrywiseMax(o V3) V3 {
	return V3{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z)}
}

// EntrywiseSqrt returns the componentwise square root.
func (v V3) EntrywiseSqrt() V3 {
	return V3{Sqrt(v.X), Sqrt(v.Y), Sqrt(v.Z)}
}

// EntrywiseExp returns e raised to each component.
func (v V3) EntrywiseExp() V3 {
	return V3{Exp(v.X), Exp(v.Y), Exp(v.Z)}
}

// EntrywiseInv returns the componentwise reciprocal.
func (v V3) EntrywiseInv() V3 {
	return V3{1 / v.X, 1 / v.Y, 1 / v.Z}
}

// Extend returns a V4 with v's components and the given w.
func (v V3) Extend(w float32) V4 {
	return V4{v.X, v.Y, v.Z, w}
}

// ToRotationM3 interprets v as an axis-angle rotation, the direction being
// the axis and the magnitude the angle in radians, and returns the rotation
// matrix. The zero vector yields the identity.
func (v V3) ToRotationM3() M3 {
	angle := v.Magnitude()
	if angle == 0 {
		return Identity3()
	}
	axis := v.Scale(1 / angle)
	x, y, z := axis.X, axis.Y, axis.Z

	s64, c64 := math.Sincos(float64(angle))
	s, c := float32(s64), float32(c64)
	t := 1 - c

	return M3{
		A: V3{c + x*x*t, x*y*t + z*s, x*z*t - y*s},
		B: V3{x*y*t - z*s, c + y*y*t, y*z*t + x*s},
		C: V3{x*z*t + y*s, y*z*t - x*s, c + z*z*t},
	}
}
