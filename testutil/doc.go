// Package testutil provides testing utilities for layergo.
//
// This package is intended for use in tests and benchmarks only.
// It generates reproducible random layers, mappings and masks from the
// MT19937 generator in package random.
//
// # Random Layers
//
//	rng := testutil.NewRNG(seed)
//	l := rng.UniformLayer(1024, -1, 1)   // uniform [-1, 1)
//	g := rng.GaussianLayer(1024, 0, 1)   // standard normal
//
// # Mappings and Masks
//
//	m := rng.Permutation(1024)           // bijective mapping
//	z := rng.ZipfMapping(1024, 64, 1.5)  // skewed, with duplicates
//	mask := rng.Mask(1024, 0.3)          // ~30% set
//
// # Parallel Fixtures
//
//	layers, _ := testutil.UniformLayers(ctx, seed, 8, 1024)
package testutil
