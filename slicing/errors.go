package slicing

import "errors"

var (
	// ErrBadSpec indicates a malformed slice specification: more items
	// than pixel axes, a non-positive step, or inverted bounds.
	ErrBadSpec = errors.New("slicing: invalid slice specification")
	// ErrOutOfBounds indicates a scalar index outside its axis extent,
	// or an inverse pixel result outside the sliced extent.
	ErrOutOfBounds = errors.New("slicing: pixel index out of bounds")
	// ErrNilTransform indicates a nil transform was passed to Slice.
	ErrNilTransform = errors.New("slicing: transform is nil")
)
