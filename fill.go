package layergo

import "github.com/hupe1980/layergo/num"

// Source is a stream of float32 samples. *random.Random satisfies it.
type Source interface {
	Uniform(lo, hi float32) float32
	Normal(mean, stdDev float32) float32
}

// FillUniform sets every element to a uniform sample from [lo, hi).
func FillUniform[T num.Float](l *Layer[T], src Source, lo, hi T) {
	for i := range l.data {
		l.data[i] = T(src.Uniform(float32(lo), float32(hi)))
	}
}

// FillNormal sets every element to a Gaussian sample.
func FillNormal[T num.Float](l *Layer[T], src Source, mean, stdDev T) {
	for i := range l.data {
		l.data[i] = T(src.Normal(float32(mean), float32(stdDev)))
	}
}
