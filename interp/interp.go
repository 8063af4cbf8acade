package interp

import "github.com/hupe1980/layergo/num"

// Mix blends linearly between a and b: x·(b − a) + a.
func Mix[T num.Number](x, a, b T) T {
	return x*(b-a) + a
}

// Clamp limits x to [lo, hi].
func Clamp[T num.Number](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Step returns one if x > a, else zero.
func Step[T num.Number](x, a T) T {
	if x > a {
		return 1
	}
	return 0
}

// Linearstep maps [a, b] linearly onto [0, 1], saturating outside.
func Linearstep[T num.Float](x, a, b T) T {
	return Clamp((x-a)/(b-a), 0, 1)
}

// LinearstepInv is Linearstep with 1/(b − a) precomputed by the caller.
func LinearstepInv[T num.Float](x, a, invDiff T) T {
	return Clamp((x-a)*invDiff, 0, 1)
}

// Smoothstep is the cubic Hermite easing l²(3 − 2l) of l = Linearstep(x, a, b).
func Smoothstep[T num.Float](x, a, b T) T {
	return hermite(Linearstep(x, a, b))
}

// SmoothstepInv is Smoothstep with 1/(b − a) precomputed by the caller.
func SmoothstepInv[T num.Float](x, a, invDiff T) T {
	return hermite(LinearstepInv(x, a, invDiff))
}

func hermite[T num.Float](l T) T {
	return l * l * (3 - 2*l)
}

// Smoothstep2 is the logistic step 2/(1 + e^(−kx)) − 1, mapping ℝ onto (−1, 1).
func Smoothstep2[T num.Float](x, k T) T {
	return 2/(1+num.Exp(-k*x)) - 1
}

// Smoothstep2Neg is Smoothstep2 mirrored: 2/(1 + e^(kx)) − 1.
func Smoothstep2Neg[T num.Float](x, k T) T {
	return 2/(1+num.Exp(k*x)) - 1
}

// Lerp interpolates piecewise-linearly through the control points (xs, ys).
// xs must be sorted ascending and len(ys) must be at least len(xs); outside
// [xs[0], xs[n-1]] the result saturates to the end values.
func Lerp[T num.Float](x T, xs, ys []T) T {
	result := ys[0]
	for i := 1; i < len(xs); i++ {
		result = Mix(Linearstep(x, xs[i-1], xs[i]), result, ys[i])
	}
	return result
}
