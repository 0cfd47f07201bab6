// Package cube is the entry point tying the ndwcs layers together:
// a primary coordinate transform, an array shape, optional extra
// coordinates and optional axis-aware metadata, presented as one
// sliceable object.
//
// What:
//
//   - WorldAt answers "what is the world coordinate at array position
//     P", keyed by world-axis name, with extra-coordinate values and
//     pinned global scalars attached.
//   - PixelFor answers "what array position corresponds to world
//     coordinate W", delegating to the transform's inverse and — when
//     requested — falling back to a bounded damped-Newton solve with a
//     finite-difference Jacobian when the inverse is undefined.
//   - Slice answers "what is the result of slicing the cube by S":
//     the primary transform, extra coordinates, metadata and shape are
//     all derived together. The operation is transactional: every
//     layer is derived as a new value before the new cube is
//     assembled, so any failure leaves the receiver untouched.
//   - Globals accumulates the world axes pinned to scalars by
//     successive slices, so a wavelength fixed by extracting an image
//     plane from a spectral cube stays inspectable.
//   - CropByWorld slices the cube down to the pixel ranges bracketing
//     a world-coordinate box.
//
// The facade is the only surface storage and visualization layers
// call; they never inspect correlation matrices or lookup tables
// directly.
//
// Errors:
//
//   - ErrNilTransform / ErrShapeMismatch: construction.
//   - ErrNoConvergence: the approximate inverse solve exceeded its
//     iteration cap.
//   - coord.ErrRankMismatch, coord.ErrNotInvertible and the slicing
//     sentinels propagate from the layers below.
package cube
