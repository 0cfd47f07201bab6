// Package extracoords associates named lookup-table coordinates with
// specific array axes of a cube, independent of the cube's primary
// transform — an exposure-time table along the scan axis, a second
// wavelength calibration, a scan index.
//
// What:
//
//   - Registry holds (name, governing axes, lookup table) entries for
//     a cube of a given shape. Names are unique per cube; governing
//     axes must lie within the cube's rank and match the table's
//     extents.
//   - Slice applies the cube's slice specification to every entry in
//     lockstep: sub-ranges re-slice each table along the matching
//     governed axis, surviving governing axes are renumbered for the
//     dropped cube axes, and entries whose every governing axis
//     collapses become retained 0-D scalar values — still returned by
//     Get, never silently dropped.
//   - Coordinate is one queryable entry: either a live transform over
//     the surviving axes or a pinned scalar value set.
//
// Extra coordinates are never consulted by the primary transform's
// forward or inverse math. The separation is deliberate: auxiliary
// per-axis tags get full slicing semantics without being entangled in
// the primary world-coordinate inversion.
//
// Registry.Add mutates the registry and is construction-time only;
// Slice returns a new Registry and never touches the receiver.
//
// Errors:
//
//   - ErrEmptyName / ErrDuplicateName / ErrNotFound: naming.
//   - ErrAxisOutOfRange / ErrDuplicateAxis: governing-axis validation.
//   - ErrLengthMismatch: table extent differs from the governed cube
//     axis extent.
//   - ErrNilTable / ErrBadShape: construction.
//   - coord.ErrRankMismatch: table pixel count differs from the
//     governing-axis count.
package extracoords
