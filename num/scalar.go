package num

import (
	"math"
	"unsafe"
)

// Zero returns the additive identity of T.
func Zero[T Number]() T {
	return 0
}

// One returns the multiplicative identity of T.
func One[T Number]() T {
	return 1
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}

// IsSigned reports whether T can represent negative values.
func IsSigned[T Number]() bool {
	var zero T
	return zero-1 < zero
}

// MinBound returns a value no element of T compares below: negative
// infinity for floats, the minimum representable value for integers.
// Reductions seed their running maximum with it.
func MinBound[T Number]() T {
	if IsFloat[T]() {
		inf := math.Inf(-1)
		return T(inf)
	}
	if !IsSigned[T]() {
		return 0
	}
	var zero T
	bits := unsafe.Sizeof(zero) * 8
	v := int64(-1) << (bits - 1)
	return T(v)
}

// MaxBound returns a value no element of T compares above: positive
// infinity for floats, the maximum representable value for integers.
// Reductions seed their running minimum with it.
func MaxBound[T Number]() T {
	if IsFloat[T]() {
		inf := math.Inf(1)
		return T(inf)
	}
	var zero T
	bits := unsafe.Sizeof(zero) * 8
	if IsSigned[T]() {
		v := int64(1)<<(bits-1) - 1
		return T(v)
	}
	v := uint64(math.MaxUint64) >> (64 - bits)
	return T(v)
}

// Inv returns 1/x. For integers this is integer division, so it is zero for
// |x| > 1 and panics for x == 0; for floats x == 0 yields an infinity.
func Inv[T Number](x T) T {
	return 1 / x
}

// Pow raises x to the power y. Floats use math.Pow. Integers use
// exponentiation by squaring with wrapping overflow; a negative exponent
// yields Inv of the positive power.
func Pow[T Number](x, y T) T {
	if IsFloat[T]() {
		return T(math.Pow(float64(x), float64(y)))
	}
	if y < 0 {
		return Inv(powInt(x, -y))
	}
	return powInt(x, y)
}

func powInt[T Number](x, y T) T {
	result := T(1)
	for y > 0 {
		if y-(y/2)*2 != 0 {
			result *= x
		}
		x *= x
		y /= 2
	}
	return result
}

// Exp returns e**x.
func Exp[T Float](x T) T {
	return T(math.Exp(float64(x)))
}

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Abs returns the absolute value of x.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
