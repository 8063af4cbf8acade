package testutil

import (
	"context"
	"math"
	"sync"

	"github.com/hupe1980/layergo"
	"github.com/hupe1980/layergo/num"
	"github.com/hupe1980/layergo/random"
	"golang.org/x/sync/errgroup"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *random.Random
	seed uint32
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint32) *RNG {
	return &RNG{
		rand: random.New(seed),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint32 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// Uniform returns a sample in [lo, hi). Together with Normal it makes RNG a
// layergo.Source.
func (r *RNG) Uniform(lo, hi float32) float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uniform(lo, hi)
}

// Normal returns a Gaussian sample.
func (r *RNG) Normal(mean, stdDev float32) float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Normal(mean, stdDev)
}

// UniformLayer generates a layer of n values in [lo, hi).
// Locks only once per call.
func (r *RNG) UniformLayer(n int, lo, hi float32) *layergo.Layer[float32] {
	r.mu.Lock()
	defer r.mu.Unlock()

	l := layergo.New[float32](n)
	layergo.FillUniform(l, r.rand, lo, hi)
	return l
}

// GaussianLayer generates a layer of n normally distributed values.
func (r *RNG) GaussianLayer(n int, mean, stdDev float32) *layergo.Layer[float32] {
	r.mu.Lock()
	defer r.mu.Unlock()

	l := layergo.New[float32](n)
	layergo.FillNormal(l, r.rand, mean, stdDev)
	return l
}

// IntLayer generates a layer of n integers in [0, bound).
func (r *RNG) IntLayer(n, bound int) *layergo.Layer[int] {
	r.mu.Lock()
	defer r.mu.Unlock()

	l := layergo.New[int](n)
	vals := l.Values()
	for i := range vals {
		vals[i] = r.rand.Intn(bound)
	}
	return l
}

// UnitV3Layer generates n unit vectors uniformly distributed on the sphere.
// Uses Gaussian components, which are rotation invariant.
func (r *RNG) UnitV3Layer(n int) *layergo.Layer[num.V3] {
	r.mu.Lock()
	defer r.mu.Unlock()

	l := layergo.New[num.V3](n)
	vals := l.Values()
	for i := range vals {
		for {
			v := num.V3{X: r.rand.Normal(0, 1), Y: r.rand.Normal(0, 1), Z: r.rand.Normal(0, 1)}
			if v.MagnitudeSquared() > 0 {
				vals[i] = v.Normalize()
				break
			}
		}
	}
	return l
}

// ClusteredV3Layer generates vectors scattered around clusters random unit
// centroids with Gaussian noise of the given spread.
func (r *RNG) ClusteredV3Layer(n, clusters int, spread float32) *layergo.Layer[num.V3] {
	centroids := r.UnitV3Layer(clusters).Values()

	r.mu.Lock()
	defer r.mu.Unlock()

	l := layergo.New[num.V3](n)
	vals := l.Values()
	for i := range vals {
		noise := num.V3{X: r.rand.Normal(0, spread), Y: r.rand.Normal(0, spread), Z: r.rand.Normal(0, spread)}
		vals[i] = centroids[i%clusters].Add(noise)
	}
	return l
}

// Permutation generates a mapping of n distinct indices in [0, n)
// (Fisher-Yates).
func (r *RNG) Permutation(n int) *layergo.Layer[int] {
	r.mu.Lock()
	defer r.mu.Unlock()

	l := layergo.New[int](n)
	vals := l.Values()
	for i := range vals {
		vals[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := r.rand.Intn(i + 1)
		vals[i], vals[j] = vals[j], vals[i]
	}
	return l
}

// Zipf returns a Zipfian-distributed value in [0, n).
// P(k) ∝ 1/k^s; s=1.5 concentrates most draws on a few values.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	// Inverse transform over the cumulative weights.
	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1
		}
	}

	return n - 1
}

// ZipfMapping generates a mapping of n indices into a layer of the given
// length with Zipfian skew, so that low indices repeat often. Useful for
// exercising duplicate targets in scatter operations.
func (r *RNG) ZipfMapping(n, length int, s float64) *layergo.Layer[int] {
	r.mu.Lock()
	defer r.mu.Unlock()

	l := layergo.New[int](n)
	vals := l.Values()
	for i := range vals {
		vals[i] = r.zipfLocked(length, s)
	}
	return l
}

// Mask generates a mask with each element set with probability p.
func (r *RNG) Mask(n int, p float64) *layergo.Layer[bool] {
	r.mu.Lock()
	defer r.mu.Unlock()

	l := layergo.New[bool](n)
	vals := l.Values()
	for i := range vals {
		vals[i] = r.rand.Float64() < p
	}
	return l
}

// UniformLayers generates count layers of n values in [0, 1) concurrently.
// Layer i comes from its own generator seeded with seed+i, so the result
// does not depend on scheduling.
func UniformLayers(ctx context.Context, seed uint32, count, n int) ([]*layergo.Layer[float32], error) {
	layers := make([]*layergo.Layer[float32], count)

	g, ctx := errgroup.WithContext(ctx)
	for i := range count {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			l := layergo.New[float32](n)
			layergo.FillUniform(l, random.New(seed+uint32(i)), 0, 1)
			layers[i] = l
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return layers, nil
}

// ReferenceScatterAdd computes InverseSwizzleAdd with plain slices, as an
// oracle for property tests: a copy of src with src[m]+add[i] written at
// each mapping position, last write winning.
func ReferenceScatterAdd[T num.Number](src []T, mapping []int, add []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	for i, m := range mapping {
		out[m] = src[m] + add[i]
	}
	return out
}
