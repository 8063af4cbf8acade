package layergo

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/layergo/internal/conv"
	"github.com/hupe1980/layergo/num"
)

// Swizzle gathers elements through mapping: out[i] = l[mapping[i]] for every
// position i of mapping. out must be at least as long as mapping; elements
// past len(mapping) are left untouched. out must not be l unless mapping is
// the identity.
//
//	l       = [8, _, 4, 8, 1]
//	mapping = [4, 2, 0, 3]
//	out     = [1, 4, 8, 8]
func (l *Layer[T]) Swizzle(mapping *Layer[int], out *Layer[T]) {
	const op = "Swizzle"
	checkAtLeast(op, len(mapping.data), len(out.data))

	src, o := l.data, out.data
	for i, m := range mapping.data {
		if !conv.IndexInRange(m, len(src)) {
			violate(op, &ErrMappingIndex{Op: op, Position: i, Index: m, Length: len(src)})
		}
		o[i] = src[m]
	}
}

// InverseSwizzleAdd scatters through mapping: out[mapping[i]] = l[mapping[i]] + add[i].
//
// Indices not named by mapping keep whatever out held before the call, so
// callers usually copy l into out first. Duplicate indices do not
// accumulate; the last occurrence in mapping wins. out must have the length
// of l and must not be l unless mapping is the identity.
func InverseSwizzleAdd[T num.Number](l *Layer[T], mapping *Layer[int], add, out *Layer[T]) {
	InverseSwizzleFunc(l, mapping, add, func(a, b T) T { return a + b }, out)
}

// InverseSwizzleFunc is InverseSwizzleAdd with the combining function f
// applied as out[mapping[i]] = f(l[mapping[i]], add[i]).
func InverseSwizzleFunc[T any](l *Layer[T], mapping *Layer[int], add *Layer[T], f func(T, T) T, out *Layer[T]) {
	const op = "InverseSwizzleAdd"
	checkAtLeast(op, len(mapping.data), len(add.data))
	checkLength(op, len(l.data), len(out.data))

	src, a, o := l.data, add.data, out.data
	for i, m := range mapping.data {
		if !conv.IndexInRange(m, len(src)) {
			violate(op, &ErrMappingIndex{Op: op, Position: i, Index: m, Length: len(src)})
		}
		o[m] = f(src[m], a[i])
	}
}

// ValidateMapping checks that every value of mapping indexes a layer of the
// given length. It returns an *ErrMappingIndex for the first offending value.
func ValidateMapping(mapping *Layer[int], length int) error {
	for i, m := range mapping.data {
		if !conv.IndexInRange(m, length) {
			return &ErrMappingIndex{Op: "ValidateMapping", Position: i, Index: m, Length: length}
		}
	}
	return nil
}

// MappingFromUint32 builds a mapping layer from 32-bit indices, as produced
// by mesh and grid builders, and validates it against length.
func MappingFromUint32(values []uint32, length int) (*Layer[int], error) {
	mapping := New[int](len(values))
	for i, v := range values {
		m, err := conv.Uint32ToInt(v)
		if err != nil {
			return nil, fmt.Errorf("mapping[%d]: %w", i, err)
		}
		mapping.data[i] = m
	}

	if err := ValidateMapping(mapping, length); err != nil {
		return nil, err
	}
	return mapping, nil
}

// IsInjective reports whether mapping is valid for length and names every
// index at most once. Scatters through an injective mapping do not depend
// on iteration order.
func IsInjective(mapping *Layer[int], length int) bool {
	seen := bitset.New(uint(max(length, 0)))
	for _, m := range mapping.data {
		if !conv.IndexInRange(m, length) || seen.Test(uint(m)) {
			return false
		}
		seen.Set(uint(m))
	}
	return true
}
