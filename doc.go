// Package ndwcs is a toolkit for N-dimensional world coordinate
// systems: axis-correlation tracking, lookup-table coordinates, and
// array slicing that keeps coordinates, extra coordinates and metadata
// in lockstep.
//
// 🚀 What is ndwcs?
//
//	A pure-Go library that brings together:
//		• Axis correlation: boolean world×pixel coupling matrices
//		• Coordinate transforms: affine and tabular (lookup-table) mappings
//		• Slicing: index specs that derive transforms, never mutate them
//		• Compound transforms: stitch independent transforms over disjoint axes
//		• Extra coordinates: named per-axis coordinates sliced with the array
//		• Metadata: axis-aware key/value records derived in lockstep
//		• Cube facade: one object tying shape, transform, extras and meta
//
// ✨ Why choose ndwcs?
//
//   - Immutable by construction – every derivation returns a new value;
//     ancestors stay valid
//   - Nothing silently lost – world axes collapsed by slicing are
//     retained as pinned scalars
//   - Explicit errors – sentinel errors per package, matched with errors.Is
//   - Pure Go – numeric solving via gonum, no cgo
//
// Everything is organized under focused subpackages:
//
//	axes/        — axis-correlation matrices
//	coord/       — the Transform interface and the affine Linear transform
//	lut/         — lookup-table coordinates with monotonic and nearest inverses
//	slicing/     — index specs and transform derivation
//	compound/    — block composition of transforms over disjoint pixel axes
//	extracoords/ — named registry of secondary coordinates
//	meta/        — axis-aware metadata
//	cube/        — the facade: WorldAt, PixelFor, Slice, CropByWorld
//
// Start with cube.New, or use the subpackages directly.
package ndwcs
