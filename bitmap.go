package layergo

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/layergo/internal/conv"
)

// MaskFromBitmap expands a roaring bitmap of indices into a mask layer of
// the given length. Bits at or past length are an error.
func MaskFromBitmap(bm *roaring.Bitmap, length int) (*Layer[bool], error) {
	if err := checkBitmap(bm, length); err != nil {
		return nil, err
	}
	mask := New[bool](length)
	scatterBitmap(bm, mask, true)
	return mask, nil
}

// MaskToBitmap collects the indices of set elements into a roaring bitmap.
func MaskToBitmap(mask *Layer[bool]) (*roaring.Bitmap, error) {
	bm := roaring.New()
	for i, m := range mask.data {
		if !m {
			continue
		}
		id, err := conv.IntToUint32(i)
		if err != nil {
			return nil, fmt.Errorf("mask index %d: %w", i, err)
		}
		bm.Add(id)
	}
	bm.RunOptimize()
	return bm, nil
}

// FillIntoBitmapSelection is FillIntoSelection with the selection given as a
// roaring bitmap: out becomes a copy of l with value stored at every index
// in bm. Only the selected indices are visited after the copy. On error out
// is left unchanged.
func (l *Layer[T]) FillIntoBitmapSelection(value T, bm *roaring.Bitmap, out *Layer[T]) error {
	if err := checkBitmap(bm, len(l.data)); err != nil {
		return err
	}
	l.CopyInto(out)
	scatterBitmap(bm, out, value)
	return nil
}

func checkBitmap(bm *roaring.Bitmap, length int) error {
	if bm.IsEmpty() {
		return nil
	}
	hi, err := conv.Uint32ToInt(bm.Maximum())
	if err != nil {
		return err
	}
	if !conv.IndexInRange(hi, length) {
		return &ErrMappingIndex{Op: "bitmap", Position: int(bm.GetCardinality()) - 1, Index: hi, Length: length}
	}
	return nil
}

func scatterBitmap[T any](bm *roaring.Bitmap, out *Layer[T], value T) {
	it := bm.Iterator()
	for it.HasNext() {
		out.data[it.Next()] = value
	}
}
