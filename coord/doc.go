// Package coord defines the coordinate-transform capability contract
// shared by every transform flavor in ndwcs, plus the world-axis
// metadata and sentinel errors those transforms have in common.
//
// What:
//
//   - Transform — the capability every concrete transform satisfies:
//     axis counts, forward/inverse evaluation, world-axis metadata and
//     an axis-correlation matrix. Polymorphism is by capability, not
//     by embedding: lut.Table, compound.Compound and slicing.Sliced
//     implement it independently and compose by delegation.
//   - WorldAxis — opaque per-world-axis metadata (name, physical type,
//     unit) preserved exactly through slicing and composition.
//   - TableSlicer — optional capability: a transform whose sub-range
//     slicing re-slices a stored value table instead of composing an
//     affine remap (lut.Table).
//   - DegenerateReporter — optional capability: a transform that
//     retains world axes collapsed to fixed scalars as queryable 0-D
//     coordinates (slicing.Sliced).
//   - Linear — a closed-form affine transform; the reference
//     implementation of the contract.
//
// Why:
//
//   - One contract lets the slicing and compound layers operate on any
//     transform, including ones defined outside this module.
//   - Immutability: every structural change anywhere in ndwcs returns
//     a new Transform; ancestors stay valid when shared between views.
//
// Errors:
//
//   - ErrRankMismatch: a pixel or world vector has the wrong length.
//   - ErrNotInvertible: the inverse is undefined at the requested
//     world position.
//
// See: cube for the facade storage/visualization layers call into.
package coord
