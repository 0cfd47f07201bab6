// Package meta stores cube metadata that can be linked to a data axis,
// so that slicing the cube slices the metadata in lockstep — per-scan
// timestamps, detector temperatures along the exposure axis, quality
// flags per spectral plane.
//
// What:
//
//   - Meta holds named entries with an optional comment and an
//     optional single governing array axis.
//   - Unaligned entries (no axis) pass through slicing untouched.
//   - Axis-aligned entries hold one element per index of their axis
//     ([]any of the axis extent). Sub-ranging the axis keeps the
//     matching subsequence; collapsing the axis keeps the single
//     element at the collapsed index and removes the axis link, the
//     same way a collapsed world coordinate is pinned rather than
//     discarded.
//   - Surviving axis links are renumbered when earlier axes drop.
//
// Add mutates the receiver and is construction-time only; Slice
// returns a new Meta and never touches the receiver.
//
// Errors:
//
//   - ErrBadShape: negative extent.
//   - ErrEmptyKey / ErrDuplicateKey / ErrNotFound: naming.
//   - ErrAxisOutOfRange: axis link outside the shape.
//   - ErrNotSequence: an axis-linked value that is not a []any.
//   - ErrLengthMismatch: sequence length differs from the axis extent.
package meta
