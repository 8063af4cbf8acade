package layergo

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskAlgebra(t *testing.T) {
	a := FromSlice([]bool{true, true, false, false})
	b := FromSlice([]bool{true, false, true, false})
	out := New[bool](4)

	And(a, b, out)
	assert.Equal(t, []bool{true, false, false, false}, out.Values())

	Or(a, b, out)
	assert.Equal(t, []bool{true, true, true, false}, out.Values())

	Not(a, out)
	assert.Equal(t, []bool{false, false, true, true}, out.Values())

	assert.Equal(t, 2, CountTrue(a))
	assert.Equal(t, 0, CountTrue(New[bool](3)))
}

func TestMaskBitmap(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		mask := FromSlice([]bool{false, true, false, true, true})

		bm, err := MaskToBitmap(mask)
		require.NoError(t, err)
		assert.Equal(t, []uint32{1, 3, 4}, bm.ToArray())

		back, err := MaskFromBitmap(bm, 5)
		require.NoError(t, err)
		assert.Equal(t, mask.Values(), back.Values())
	})

	t.Run("OutOfRange", func(t *testing.T) {
		bm := roaring.BitmapOf(0, 9)

		_, err := MaskFromBitmap(bm, 5)
		var mi *ErrMappingIndex
		require.ErrorAs(t, err, &mi)
		assert.Equal(t, 9, mi.Index)
		assert.ErrorIs(t, err, ErrPrecondition)
	})

	t.Run("Empty", func(t *testing.T) {
		mask, err := MaskFromBitmap(roaring.New(), 3)
		require.NoError(t, err)
		assert.Equal(t, 0, CountTrue(mask))
	})

	t.Run("FillIntoBitmapSelection", func(t *testing.T) {
		l := FromSlice([]float32{1, 2, 3, 4})
		out := New[float32](4)

		require.NoError(t, l.FillIntoBitmapSelection(0, roaring.BitmapOf(1, 2), out))
		assert.Equal(t, []float32{1, 0, 0, 4}, out.Values())

		out.Fill(7)
		require.Error(t, l.FillIntoBitmapSelection(0, roaring.BitmapOf(4), out))
		assert.Equal(t, []float32{7, 7, 7, 7}, out.Values())
	})

	t.Run("MatchesMaskSelection", func(t *testing.T) {
		l := FromSlice([]int{5, 6, 7, 8, 9, 10})
		mask := FromSlice([]bool{true, false, false, true, false, true})
		bm, err := MaskToBitmap(mask)
		require.NoError(t, err)

		viaMask := New[int](6)
		viaBitmap := New[int](6)
		l.FillIntoSelection(0, mask, viaMask)
		require.NoError(t, l.FillIntoBitmapSelection(0, bm, viaBitmap))

		assert.Equal(t, viaMask.Values(), viaBitmap.Values())
	})
}
