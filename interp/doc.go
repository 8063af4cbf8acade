// Package interp provides pure scalar interpolation and easing functions.
//
// The root package exposes each of them over layers, with either bound
// constant or varying per index.
package interp
