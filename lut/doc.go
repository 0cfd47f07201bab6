// Package lut implements lookup-table coordinates: transforms backed
// by an explicit ordered table of physical values rather than a
// closed-form function.
//
// What:
//
//   - Table maps pixel index i on each governed axis to the i-th entry
//     of that axis's value sequence (a tabulated time axis, an uneven
//     wavelength grid, a scan-position list).
//   - Forward interpolates linearly between neighboring entries for
//     fractional indices, clamping within ±0.5 of the table edges.
//   - Inverse uses binary search plus linear interpolation on
//     monotonic sequences and nearest-match lookup (lowest index wins
//     on ties) on non-monotonic ones.
//   - SliceTable re-slices the stored sequences for sub-range slicing,
//     keeping O(1) access instead of stacking an affine remap.
//
// Joint tables (NewJoint) govern several pixel axes at once and
// produce one world axis per governed axis. Their correlation matrix
// is all-true: coupling is assumed conservatively even if one axis
// mathematically dominates, because finer independence tracking would
// silently change which axes slicing reports as droppable.
//
// Complexity:
//
//   - Forward: O(1) per axis.
//   - Inverse: O(log n) per monotonic axis, O(n) per non-monotonic axis.
//   - SliceTable: O(extent) once; accesses stay O(1).
//
// Options:
//
//   - Options.Extrapolate: permit evaluation beyond the table edges
//     using the boundary step (default false).
//
// Errors:
//
//   - ErrEmptyTable: a value sequence is empty.
//   - ErrLengthMismatch: joint sequences differ in length.
//   - ErrOutOfRange: forward index beyond the ±0.5 edge band with
//     extrapolation disabled.
//   - ErrBadSlice: malformed SliceTable parameters.
//   - coord.ErrNotInvertible: inverse of a value outside the table's
//     value range with extrapolation disabled.
//   - coord.ErrRankMismatch: wrong-length input vector.
package lut
