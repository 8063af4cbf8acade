// Package random provides a deterministic MT19937 pseudorandom generator.
//
// A Random seeded with New(seed) reproduces, bit for bit, the canonical
// MT19937 sequence initialized by array with the single key {seed}. That is
// the sequence CPython's random.seed(seed) produces, so
// random.getrandbits(32) can be used to cross-check. The zero value is
// usable and behaves like a generator seeded with the reference default 5489.
//
// A Random is not safe for concurrent use. Use one generator per worker.
//
//	rng := random.New(42)
//	x := rng.Uniform(-1, 1)
//	g := rng.Normal(0, 1)
package random
