package random

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
)

const (
	n = 624
	m = 397

	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff

	temperingB = 0x9d2c5680
	temperingC = 0xefc60000

	initMultiplier  = 1812433253
	arrayMultiplier = 1664525
	mixMultiplier   = 1566083941

	arraySeed   = 19650218
	defaultSeed = 5489
)

// maxBelowOne is the largest float32 below 1.
var maxBelowOne = math.Nextafter32(1, 0)

// Random is an MT19937 generator.
type Random struct {
	mt     [n]uint32
	i      int
	seeded bool

	// Box–Muller yields samples in pairs; the second one is kept here.
	cached    float32
	hasCached bool
}

// New returns a generator seeded with seed.
func New(seed uint32) *Random {
	r := &Random{}
	r.Seed(seed)
	return r
}

// Seed reinitializes the generator in place and drops any cached normal sample.
func (r *Random) Seed(seed uint32) {
	r.init(arraySeed)

	i := 1
	for range n {
		prev := r.mt[i-1] ^ (r.mt[i-1] >> 30)
		r.mt[i] = (r.mt[i] ^ (prev * arrayMultiplier)) + seed
		i++
		if i >= n {
			r.mt[0] = r.mt[n-1]
			i = 1
		}
	}

	for range n - 1 {
		prev := r.mt[i-1] ^ (r.mt[i-1] >> 30)
		r.mt[i] = (r.mt[i] ^ (prev * mixMultiplier)) - uint32(i)
		i++
		if i >= n {
			r.mt[0] = r.mt[n-1]
			i = 1
		}
	}

	// Guarantees a non-zero state.
	r.mt[0] = upperMask
	r.cached, r.hasCached = 0, false
}

func (r *Random) init(seed uint32) {
	r.mt[0] = seed
	for i := 1; i < n; i++ {
		r.mt[i] = initMultiplier*(r.mt[i-1]^(r.mt[i-1]>>30)) + uint32(i)
	}
	r.i = n
	r.seeded = true
}

// regenerate twists the whole state, producing the next 624 words.
func (r *Random) regenerate() {
	mag01 := [2]uint32{0, matrixA}

	var kk int
	for ; kk < n-m; kk++ {
		y := (r.mt[kk] & upperMask) | (r.mt[kk+1] & lowerMask)
		r.mt[kk] = r.mt[kk+m] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < n-1; kk++ {
		y := (r.mt[kk] & upperMask) | (r.mt[kk+1] & lowerMask)
		r.mt[kk] = r.mt[kk+m-n] ^ (y >> 1) ^ mag01[y&1]
	}
	y := (r.mt[n-1] & upperMask) | (r.mt[0] & lowerMask)
	r.mt[n-1] = r.mt[m-1] ^ (y >> 1) ^ mag01[y&1]

	r.i = 0
}

// Uint32 returns the next tempered 32-bit output.
func (r *Random) Uint32() uint32 {
	if !r.seeded {
		r.init(defaultSeed)
	}
	if r.i >= n {
		r.regenerate()
	}

	y := r.mt[r.i]
	r.i++

	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18

	return y
}

// Float32 returns Uint32()/2³² rounded to float32. The few outputs that
// round up to 1 are clamped to the largest float32 below 1, so the result
// stays in [0, 1).
func (r *Random) Float32() float32 {
	return unitFloat32(r.Uint32())
}

func unitFloat32(u uint32) float32 {
	v := float32(u) / (1 << 32)
	if v >= 1 {
		return maxBelowOne
	}
	return v
}

// Float64 returns a uniform sample in [0, 1) with 53 bits of precision,
// consuming two draws.
func (r *Random) Float64() float64 {
	a := r.Uint32() >> 5
	b := r.Uint32() >> 6
	return (float64(a)*67108864 + float64(b)) * (1.0 / 9007199254740992)
}

// Intn returns a uniform integer in [0, bound). It panics if bound is not
// in (0, 2³²].
func (r *Random) Intn(bound int) int {
	if bound <= 0 || uint64(bound) > 1<<32 {
		panic(fmt.Sprintf("random: invalid bound %d", bound))
	}
	b := uint64(bound)
	// Rejecting the top remainder keeps the modulo unbiased.
	limit := (1 << 32) - (1<<32)%b
	for {
		v := uint64(r.Uint32())
		if v < limit {
			return int(v % b)
		}
	}
}

// Uniform returns a uniform sample in [lo, hi).
func (r *Random) Uniform(lo, hi float32) float32 {
	return lo + float32(r.Float32()*(hi-lo))
}

// Normal returns a Gaussian sample with the given mean and standard
// deviation using the Box–Muller transform. Every other call is served from
// the sample cached by the previous one and consumes no draws.
//
// Each step is rounded to float32, so the sequence matches a generator
// that does the transform in single precision.
func (r *Random) Normal(mean, stdDev float32) float32 {
	if r.hasCached {
		r.hasCached = false
		return mean + float32(r.cached*stdDev)
	}

	a := r.Float32() * 2 * math.Pi
	lg := float32(math.Log(float64(1 - r.Float32())))
	b := float32(math.Sqrt(float64(-2 * lg)))

	sin, cos := math.Sincos(float64(a))
	r.cached = float32(sin) * b
	r.hasCached = true

	current := float32(cos) * b
	return mean + float32(current*stdDev)
}

// Clone returns an independent copy that continues the same sequence.
func (r *Random) Clone() *Random {
	c := *r
	return &c
}

// String summarizes the generator. The state words are reported as a hash.
func (r *Random) String() string {
	h := fnv.New64a()
	var buf [4]byte
	for _, w := range r.mt {
		binary.LittleEndian.PutUint32(buf[:], w)
		_, _ = h.Write(buf[:])
	}

	cached := "none"
	if r.hasCached {
		cached = fmt.Sprintf("%g", r.cached)
	}
	return fmt.Sprintf("Random{mt: %016x, i: %d, cached: %s}", h.Sum64(), r.i, cached)
}
