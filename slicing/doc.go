// Package slicing maps array slicing operations onto coordinate
// transforms: given a transform and a per-axis slice specification, it
// produces a new transform describing the sliced array, with the axis
// correlation, world-axis metadata and degenerate axes kept exactly
// consistent.
//
// What:
//
//   - Spec / Item — a per-pixel-axis specification: keep-all (All),
//     sub-range with step (Range), or collapse-to-scalar (At).
//     Negative indices count from the end, as in the usual array
//     slicing conventions; Range stops clamp to the axis extent.
//   - Apply — pure shape arithmetic: normalizes a Spec against an
//     array shape and computes the sliced shape. Shared by the
//     transform wrapper, extra-coords registry and metadata layers so
//     every consumer slices identically.
//   - Slice — produces the sliced transform:
//     collapsed axes are fixed inside the forward/inverse closures and
//     removed from the pixel-axis set; world axes left unconstrained
//     are removed from the world-axis set but retained as 0-D scalar
//     coordinates, queryable via coord.DegenerateReporter; surviving
//     sub-ranges compose the affine reindex base = start + step*new.
//
// Table-backed transforms (coord.TableSlicer) short-circuit the affine
// composition for pure sub-range specs: their stored value tables are
// re-sliced instead, so repeated slicing never stacks indirection.
//
// An identity spec (every axis kept whole) returns the original
// transform unchanged.
//
// Why retention instead of omission: collapsing every pixel axis that
// governs a world axis pins that world coordinate to one value. The
// value frequently still matters (the wavelength of the image plane
// just extracted from a spectral cube), so the wrapper keeps it
// reachable; whether to expose or hide it is the facade's policy
// decision, not this layer's.
//
// Errors:
//
//   - ErrBadSpec: spec longer than the array rank, malformed range.
//   - ErrOutOfBounds: scalar index outside its axis, or an inverse
//     result outside the sliced extent.
//   - ErrNilTransform: Slice invoked with a nil transform.
//   - coord.ErrRankMismatch: shape length does not match the
//     transform's pixel-axis count.
package slicing
