// Package simd provides float32 hot-loop kernels for dense layers.
//
// # Kernel Sets
//
//   - generic: plain loops
//   - unrolled: four lanes per iteration with independent accumulators
//
// Runtime CPU feature detection (AVX2 and AVX-512 on x86-64, NEON and SVE2 on
// ARM64) selects the unrolled kernels when a wide vector unit is present, so
// the out-of-order core can overlap the dependent adds. Set
// LAYERGO_SIMD=generic or LAYERGO_SIMD=unrolled to override the choice.
//
// # Operations
//
//   - Reductions: Dot, Sum
//   - Elementwise: Add, Scale, AddScaled, Affine
//
// Reductions may differ from a sequential fold in the last bits because
// the unrolled kernels sum in a different order.
package simd
