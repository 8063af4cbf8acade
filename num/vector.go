package num

// Additive is implemented by element types with vector addition.
type Additive[V any] interface {
	Add(V) V
	Sub(V) V
}

// Scalable is implemented by element types that can be multiplied by a scalar.
type Scalable[V any] interface {
	Scale(s float32) V
}

// Dotter is implemented by element types with an inner product.
type Dotter[V any] interface {
	Dot(V) float32
	// Similarity is Dot normalized by both magnitudes, in [-1, 1].
	Similarity(V) float32
}

// Magnituder is implemented by element types with a length.
type Magnituder interface {
	Magnitude() float32
	// MagnitudeSquared avoids the square root when only comparing lengths.
	MagnitudeSquared() float32
}

// Normalizer is implemented by element types that can be made unit length.
type Normalizer[V any] interface {
	Normalize() V
}

// Entrywise is implemented by element types supporting componentwise algebra.
type Entrywise[V any] interface {
	EntrywiseMul(V) V
	EntrywiseDiv(V) V
	EntrywisePow(V) V
	EntrywiseMin(V) V
	EntrywiseMax(V) V
	EntrywiseSqrt() V
	EntrywiseExp() V
	EntrywiseInv() V
}

// Vector is the full capability set of a vector-valued layer element.
type Vector[V any] interface {
	Additive[V]
	Scalable[V]
	Dotter[V]
	Magnituder
	Normalizer[V]
	Entrywise[V]
}

var (
	_ Vector[V3] = V3{}
	_ Vector[V4] = V4{}
)

func similarity(dot, magSqA, magSqB float32) float32 {
	return dot / Sqrt(magSqA*magSqB)
}
