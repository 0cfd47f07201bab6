package coord

import (
	"github.com/katalvlaran/ndwcs/axes"
)

// WorldAxis carries the metadata of one world (physical output) axis.
// All three fields are opaque pass-through strings: ndwcs preserves
// them exactly through slicing and composition, never interprets them.
type WorldAxis struct {
	// Name identifies the axis to callers (e.g. "wavelength", "time").
	Name string
	// PhysicalType is a physical-type label (e.g. "pos.eq.ra", "em.wl").
	PhysicalType string
	// Unit is a unit string (e.g. "deg", "nm").
	Unit string
}

// Transform is the capability contract every concrete coordinate
// transform satisfies. A Transform maps pixel (array index) vectors to
// world (physical) vectors and back.
//
// Implementations must be immutable once constructed: structural
// changes (slicing, composition, axis drops) produce new Transform
// values, so a Transform shared between views is always safe to read
// concurrently.
type Transform interface {
	// PixelN reports the number of pixel (array index) axes.
	PixelN() int

	// WorldN reports the number of world (physical output) axes.
	WorldN() int

	// Forward maps a pixel position to a world position.
	// len(pixel) must equal PixelN(); the result has length WorldN().
	// Returns ErrRankMismatch on a wrong-length input.
	Forward(pixel []float64) ([]float64, error)

	// Inverse maps a world position to a pixel position.
	// len(world) must equal WorldN(); the result has length PixelN().
	// Returns ErrRankMismatch on a wrong-length input and
	// ErrNotInvertible where the inverse is undefined.
	Inverse(world []float64) ([]float64, error)

	// WorldAxes returns the per-world-axis metadata, length WorldN().
	// Callers must not mutate the returned slice.
	WorldAxes() []WorldAxis

	// Correlation returns the axis-correlation matrix,
	// WorldN() rows by PixelN() columns.
	Correlation() *axes.Matrix
}

// TableSlicer is an optional capability of transforms backed by an
// explicit value table: sub-ranging re-slices the stored table rather
// than composing an affine reindexing layer, preserving O(1) access.
type TableSlicer interface {
	Transform

	// SliceTable returns a new transform whose governed axis is
	// restricted to extent entries starting at start with the given
	// step. start, step and extent are in pixel-index units.
	SliceTable(axis, start, step, extent int) (Transform, error)
}

// ScalarCoordinate is a world axis collapsed to a fixed scalar value
// by slicing. It is zero-dimensional: queryable, but no longer part of
// the transform's world-axis set.
type ScalarCoordinate struct {
	Axis  WorldAxis
	Value float64
}

// DegenerateReporter is an optional capability of transforms produced
// by slicing: world axes whose every governing pixel axis was
// collapsed are retained as 0-D scalar coordinates instead of being
// silently discarded.
type DegenerateReporter interface {
	Transform

	// DroppedWorld returns the world axes removed by slicing together
	// with their fixed values, in original world-axis order.
	DroppedWorld() []ScalarCoordinate
}
