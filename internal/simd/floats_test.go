package simd

import (
	"math/rand"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var kernelSets = map[string]*kernelSet{
	"generic":  &genericKernels,
	"unrolled": &unrolledKernels,
}

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Empty", []float32{}, []float32{}, 0},
		{"Positive values (size 3)", []float32{1, 2, 3}, []float32{4, 5, 6}, 32},
		{"Mixed values (size 3)", []float32{1, -2, 3}, []float32{-4, 5, -6}, -32},
		{"Exactly 4", []float32{1, 2, 3, 4}, []float32{1, 1, 1, 1}, 10},
		{"Remainder (size 9)", []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}, 285},
	}

	for name, ks := range kernelSets {
		for _, tc := range tests {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				assert.Equal(t, tc.expected, ks.dot(tc.a, tc.b))
			})
		}
	}
}

func TestSum(t *testing.T) {
	for name, ks := range kernelSets {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, float32(0), ks.sum(nil))
			assert.Equal(t, float32(15), ks.sum([]float32{1, 2, 3, 4, 5}))
			assert.Equal(t, float32(-1), ks.sum([]float32{1, -2}))
		})
	}
}

func TestElementwiseKernels(t *testing.T) {
	a := []float32{1, 2, 3, 4, 5, 6, 7}
	b := []float32{7, 6, 5, 4, 3, 2, 1}

	for name, ks := range kernelSets {
		t.Run(name+"/add", func(t *testing.T) {
			dst := make([]float32, len(a))
			ks.add(dst, a, b)
			assert.Equal(t, []float32{8, 8, 8, 8, 8, 8, 8}, dst)
		})

		t.Run(name+"/scale", func(t *testing.T) {
			dst := make([]float32, len(a))
			ks.scale(dst, a, 2)
			assert.Equal(t, []float32{2, 4, 6, 8, 10, 12, 14}, dst)
		})

		t.Run(name+"/addScaled", func(t *testing.T) {
			dst := make([]float32, len(a))
			ks.addScaled(dst, a, b, -1)
			assert.Equal(t, []float32{-6, -4, -2, 0, 2, 4, 6}, dst)
		})

		t.Run(name+"/affine in place", func(t *testing.T) {
			dst := append([]float32(nil), a...)
			ks.affine(dst, dst, 0.5, 1)
			assert.Equal(t, []float32{1.5, 2, 2.5, 3, 3.5, 4, 4.5}, dst)
		})
	}
}

func TestKernelSetsAgree(t *testing.T) {
	r := rand.New(rand.NewSource(4711))
	a := randomFloats(r, 1027)
	b := randomFloats(r, 1027)

	assert.InDelta(t, genericKernels.dot(a, b), unrolledKernels.dot(a, b), 1e-2)
	assert.InDelta(t, genericKernels.sum(a), unrolledKernels.sum(a), 1e-2)
}

func TestSetKernels(t *testing.T) {
	prev := ActiveKernels()
	t.Cleanup(func() { SetKernels(prev) })

	for _, k := range []Kernels{Generic, Unrolled} {
		SetKernels(k)
		assert.Equal(t, k, ActiveKernels())
		assert.Equal(t, float32(32), Dot([]float32{1, 2, 3}, []float32{4, 5, 6}))
	}

	SetKernels(Generic)
	assert.Same(t, &genericKernels, kernels.Load())
	SetKernels(Unrolled)
	assert.Same(t, &unrolledKernels, kernels.Load())
}

func TestParseKernels(t *testing.T) {
	for _, k := range []Kernels{Generic, Unrolled} {
		got, ok := ParseKernels(" " + strings.ToUpper(k.String()) + " ")
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}

	_, ok := ParseKernels("avx512")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Kernels(99).String())
}

func TestSelectKernelsFollowsDetection(t *testing.T) {
	want := Unrolled
	if DetectedISA() == None {
		want = Generic
	}
	assert.Equal(t, want, selectKernels())

	switch runtime.GOARCH {
	case "amd64":
		assert.Equal(t, HasAVX2() || HasAVX512(), DetectedISA() != None)
	case "arm64":
		assert.Equal(t, HasASIMD() || HasSVE2(), DetectedISA() != None)
	default:
		assert.Equal(t, None, DetectedISA())
	}
	assert.Equal(t, "unknown", ISA(99).String())
}

func BenchmarkDot(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	va := randomFloats(r, 1<<16)
	vb := randomFloats(r, 1<<16)

	b.ResetTimer()
	for b.Loop() {
		_ = Dot(va, vb)
	}
}

func BenchmarkAffine(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	src := randomFloats(r, 1<<16)
	dst := make([]float32, len(src))

	b.ResetTimer()
	for b.Loop() {
		Affine(dst, src, 0.5, 1)
	}
}

func randomFloats(r *rand.Rand, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = r.Float32()*2 - 1
	}
	return out
}
