package layergo

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwizzle(t *testing.T) {
	src := FromSlice([]int{8, -1, 4, 8, 1})
	mapping := FromSlice([]int{4, 2, 0, 3})

	t.Run("Gather", func(t *testing.T) {
		out := New[int](4)
		src.Swizzle(mapping, out)
		assert.Equal(t, []int{1, 4, 8, 8}, out.Values())
	})

	t.Run("LongerOutputKeepsTail", func(t *testing.T) {
		out := FromSlice([]int{0, 0, 0, 0, 42})
		src.Swizzle(mapping, out)
		assert.Equal(t, []int{1, 4, 8, 8, 42}, out.Values())
	})

	t.Run("ShortOutput", func(t *testing.T) {
		var lm *ErrLengthMismatch
		assert.ErrorAs(t, recoverError(func() { src.Swizzle(mapping, New[int](3)) }), &lm)
	})

	t.Run("InvalidIndex", func(t *testing.T) {
		bad := FromSlice([]int{0, 5})
		err := recoverError(func() { src.Swizzle(bad, New[int](2)) })

		var mi *ErrMappingIndex
		require.ErrorAs(t, err, &mi)
		assert.Equal(t, 1, mi.Position)
		assert.Equal(t, 5, mi.Index)
		assert.Equal(t, 5, mi.Length)
		assert.True(t, errors.Is(err, ErrPrecondition))

		negative := FromSlice([]int{-1})
		assert.ErrorAs(t, recoverError(func() { src.Swizzle(negative, New[int](1)) }), &mi)
	})
}

func TestInverseSwizzleAdd(t *testing.T) {
	src := FromSlice([]int{1, 2, 3, 0, 9})
	mapping := FromSlice([]int{1, 4, 3, 2})
	add := FromSlice([]int{2, -9, 8, 5})

	t.Run("Scatter", func(t *testing.T) {
		out := src.Clone()
		InverseSwizzleAdd(src, mapping, add, out)
		assert.Equal(t, []int{1, 4, 8, 8, 0}, out.Values())
	})

	t.Run("UntouchedKeepPriorValue", func(t *testing.T) {
		out := FromSlice([]int{-5, 0, 0, 0, 0})
		InverseSwizzleAdd(src, mapping, add, out)
		assert.Equal(t, -5, out.At(0))
	})

	t.Run("DuplicatesLastWins", func(t *testing.T) {
		out := src.Clone()
		InverseSwizzleAdd(src, FromSlice([]int{0, 0}), FromSlice([]int{10, 20}), out)
		assert.Equal(t, 21, out.At(0))
	})

	t.Run("Func", func(t *testing.T) {
		out := src.Clone()
		InverseSwizzleFunc(src, mapping, add, func(a, b int) int { return a * b }, out)
		assert.Equal(t, []int{1, 4, 15, 0, -81}, out.Values())
	})

	t.Run("Preconditions", func(t *testing.T) {
		var lm *ErrLengthMismatch
		assert.ErrorAs(t, recoverError(func() {
			InverseSwizzleAdd(src, mapping, New[int](3), src.Clone())
		}), &lm)
		assert.ErrorAs(t, recoverError(func() {
			InverseSwizzleAdd(src, mapping, add, New[int](4))
		}), &lm)

		var mi *ErrMappingIndex
		assert.ErrorAs(t, recoverError(func() {
			InverseSwizzleAdd(src, FromSlice([]int{7}), add, src.Clone())
		}), &mi)
	})
}

func TestValidateMapping(t *testing.T) {
	assert.NoError(t, ValidateMapping(FromSlice([]int{0, 1, 2}), 3))

	err := ValidateMapping(FromSlice([]int{0, 3}), 3)
	var mi *ErrMappingIndex
	require.ErrorAs(t, err, &mi)
	assert.Equal(t, 1, mi.Position)
}

func TestMappingFromUint32(t *testing.T) {
	m, err := MappingFromUint32([]uint32{2, 0, 1}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, m.Values())

	_, err = MappingFromUint32([]uint32{math.MaxUint32}, 3)
	assert.Error(t, err)

	_, err = MappingFromUint32([]uint32{3}, 3)
	assert.True(t, errors.Is(err, ErrPrecondition))
}

func TestIsInjective(t *testing.T) {
	assert.True(t, IsInjective(FromSlice([]int{2, 0, 1}), 3))
	assert.True(t, IsInjective(FromSlice([]int{4, 1}), 5))
	assert.True(t, IsInjective(New[int](0), 0))

	assert.False(t, IsInjective(FromSlice([]int{1, 4, 1}), 5))
	assert.False(t, IsInjective(FromSlice([]int{5}), 5))
	assert.False(t, IsInjective(FromSlice([]int{-1}), 5))
}
