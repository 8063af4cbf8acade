package layergo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	a := FromSlice([]float32{1, 2, 3, 4, 5})
	b := FromSlice([]float32{5, 4, 3, 2, 1})

	tests := []struct {
		name string
		op   func(out *Layer[float32])
		want []float32
	}{
		{"Add", func(out *Layer[float32]) { Add(a, b, out) }, []float32{6, 6, 6, 6, 6}},
		{"AddValue", func(out *Layer[float32]) { AddValue(a, 1, out) }, []float32{2, 3, 4, 5, 6}},
		{"Sub", func(out *Layer[float32]) { Sub(a, b, out) }, []float32{-4, -2, 0, 2, 4}},
		{"SubValue", func(out *Layer[float32]) { SubValue(a, 1, out) }, []float32{0, 1, 2, 3, 4}},
		{"Mul", func(out *Layer[float32]) { Mul(a, b, out) }, []float32{5, 8, 9, 8, 5}},
		{"MulValue", func(out *Layer[float32]) { MulValue(a, 2, out) }, []float32{2, 4, 6, 8, 10}},
		{"Div", func(out *Layer[float32]) { Div(a, b, out) }, []float32{0.2, 0.5, 1, 2, 5}},
		{"DivValue", func(out *Layer[float32]) { DivValue(a, 2, out) }, []float32{0.5, 1, 1.5, 2, 2.5}},
		{"Pow", func(out *Layer[float32]) { Pow(a, FromSlice([]float32{2, 2, 2, 0, 1}), out) }, []float32{1, 4, 9, 1, 5}},
		{"PowValue", func(out *Layer[float32]) { PowValue(a, 2, out) }, []float32{1, 4, 9, 16, 25}},
		{"Min", func(out *Layer[float32]) { Min(a, b, out) }, []float32{1, 2, 3, 2, 1}},
		{"MinValue", func(out *Layer[float32]) { MinValue(a, 3, out) }, []float32{1, 2, 3, 3, 3}},
		{"Max", func(out *Layer[float32]) { Max(a, b, out) }, []float32{5, 4, 3, 4, 5}},
		{"MaxValue", func(out *Layer[float32]) { MaxValue(a, 3, out) }, []float32{3, 3, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := New[float32](5)
			tt.op(out)
			assert.InDeltaSlice(t, tt.want, out.Values(), 1e-6)
		})
	}
}

func TestArithmeticIntegers(t *testing.T) {
	a := FromSlice([]int32{7, -3, 10})
	out := New[int32](3)

	Add(a, a, out)
	assert.Equal(t, []int32{14, -6, 20}, out.Values())

	DivValue(a, 2, out)
	assert.Equal(t, []int32{3, -1, 5}, out.Values())

	PowValue(a, 2, out)
	assert.Equal(t, []int32{49, 9, 100}, out.Values())

	MulValue(a, 3, out)
	assert.Equal(t, []int32{21, -9, 30}, out.Values())
}

func TestArithmeticInPlace(t *testing.T) {
	l := FromSlice([]float32{1, 2, 3})
	AddValue(l, 1, l)
	MulValue(l, 2, l)
	Add(l, l, l)
	assert.Equal(t, []float32{8, 12, 16}, l.Values())
}

func TestArithmeticLengthMismatch(t *testing.T) {
	a := New[float32](4)
	short := New[float32](3)

	for name, f := range map[string]func(){
		"Add":              func() { Add(a, short, a) },
		"AddOut":           func() { Add(a, a, short) },
		"MulValue":         func() { MulValue(a, 2, short) },
		"AddValueWeighted": func() { AddValueWeighted(a, 1, short, a) },
		"SubValueWeighted": func() { SubValueWeighted(a, 1, a, short) },
		"AddByMask":        func() { AddByMask(a, a, New[bool](3), a) },
		"IntAdd":           func() { Add(New[int](2), New[int](3), New[int](2)) },
	} {
		t.Run(name, func(t *testing.T) {
			var lm *ErrLengthMismatch
			assert.ErrorAs(t, recoverError(f), &lm)
		})
	}
}

func TestWeighted(t *testing.T) {
	a := FromSlice([]float32{1, 2, 3})
	b := FromSlice([]float32{10, 20, 30})
	w := FromSlice([]float32{0, 0.5, 1})
	out := New[float32](3)

	AddWeighted(a, b, w, out)
	assert.Equal(t, []float32{1, 12, 33}, out.Values())

	SubWeighted(a, b, w, out)
	assert.Equal(t, []float32{1, -8, -27}, out.Values())

	AddValueWeighted(a, 4, w, out)
	assert.Equal(t, []float32{1, 4, 7}, out.Values())

	SubValueWeighted(a, 4, w, out)
	assert.Equal(t, []float32{1, 0, -1}, out.Values())

	ia := FromSlice([]int{1, 2, 3})
	iw := FromSlice([]int{0, 1, 2})
	iout := New[int](3)
	AddValueWeighted(ia, 5, iw, iout)
	assert.Equal(t, []int{1, 7, 13}, iout.Values())
	SubValueWeighted(ia, 5, iw, iout)
	assert.Equal(t, []int{1, -3, -7}, iout.Values())
}

func TestByMask(t *testing.T) {
	mask := FromSlice([]bool{true, false, true})

	t.Run("AddValueByMask", func(t *testing.T) {
		l := FromSlice([]int{1, 2, 3})
		out := New[int](3)
		AddValueByMask(l, 5, mask, out)
		assert.Equal(t, []int{6, 2, 8}, out.Values())
	})

	t.Run("SubValueByMask", func(t *testing.T) {
		l := FromSlice([]int{1, 2, 3})
		SubValueByMask(l, 1, mask, l)
		assert.Equal(t, []int{0, 2, 2}, l.Values())
	})

	t.Run("AddByMask", func(t *testing.T) {
		l := FromSlice([]float64{1, 2, 3})
		other := FromSlice([]float64{10, 20, 30})
		out := New[float64](3)
		AddByMask(l, other, mask, out)
		assert.Equal(t, []float64{11, 2, 33}, out.Values())
	})

	t.Run("SubByMask", func(t *testing.T) {
		l := FromSlice([]float64{1, 2, 3})
		other := FromSlice([]float64{10, 20, 30})
		out := New[float64](3)
		SubByMask(l, other, mask, out)
		assert.Equal(t, []float64{-9, 2, -27}, out.Values())
	})
}
