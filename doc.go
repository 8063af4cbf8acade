// Package layergo provides dense per-element numeric fields and the
// operations used to drive them from simulation loops.
//
// A Layer holds one value per index of an implicit domain, such as the cells
// of a grid or the vertices of a mesh. Operations never allocate: results are
// written into output layers supplied by the caller, so a step function can
// reuse the same buffers every iteration.
//
// # Layers
//
//	height := layergo.New[float32](n)
//	height.Fill(1)
//
//	tmp := layergo.New[float32](n)
//	layergo.MulValue(height, 0.5, tmp)
//	layergo.Normalize(tmp, tmp)
//
// # Remapping
//
// Mapping layers (Layer[int]) produced by grid or mesh builders drive gather
// and scatter:
//
//	src.Swizzle(mapping, out)                         // out[i] = src[mapping[i]]
//	layergo.InverseSwizzleAdd(src, mapping, add, out) // out[mapping[i]] = src[mapping[i]] + add[i]
//
// # Preconditions
//
// Operand, mask, weight and output layers must have the receiver's length,
// and mapping values must index the source layer. Violations panic with an
// *ErrLengthMismatch or *ErrMappingIndex, both of which unwrap to
// ErrPrecondition. Degenerate numeric input, such as rescaling from an empty
// range, propagates as NaN or infinity.
//
// # Concurrency
//
// Layers are not safe for concurrent mutation. Configure should run before
// layers are shared between goroutines.
//
// # Vector fields
//
// Layers of num.V3 or num.V4 are handled by the vecfield package.
package layergo
