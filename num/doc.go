// Package num defines the numeric capabilities layers are generic over.
//
// Scalar element types (8/16/32/64-bit integers, 32/64-bit floats) are
// described by type-set constraints, and their capabilities (identities,
// bounds, inversion, power, exponential, square root) are generic functions.
// Go does not allow methods on predeclared types, so these cannot be
// interfaces.
//
// Vector element types implement narrow method interfaces instead:
//
//	Additive[V]     Add, Sub
//	Scalable[V]     Scale
//	Dotter[V]       Dot, Similarity
//	Magnituder      Magnitude, MagnitudeSquared
//	Normalizer[V]   Normalize
//	Entrywise[V]    EntrywiseMul, EntrywiseDiv, EntrywisePow, ...
//
// Vector[V] composes all of them. V3 and V4 satisfy Vector.
package num
