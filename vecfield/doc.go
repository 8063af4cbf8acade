// Package vecfield provides operations over vector-valued layers, such as
// velocity or normal fields stored as layergo.Layer[num.V3].
//
// Every element type satisfying num.Vector is supported. Scalar factors,
// weights and the results of inner products are float32 layers.
//
// Length and aliasing rules are those of package layergo.
package vecfield
