// Package conv provides checked integer conversions at the index boundary.
//
// Mapping layers produced by domain collaborators are often stored compactly
// (uint32 indices), while layers are indexed with Go's int. Bitmaps address
// elements with uint32. These helpers reject values that would wrap.
//
// Inside hot loops, where the range is already guaranteed by a prior check,
// use direct casts instead.
package conv
