package axes

import "errors"

var (
	// ErrBadShape indicates a negative dimension was requested.
	ErrBadShape = errors.New("axes: matrix dimensions must be >= 0")
	// ErrRaggedRows indicates FromRows input rows of differing lengths.
	ErrRaggedRows = errors.New("axes: all rows must have the same length")
	// ErrIndexOutOfRange indicates an axis index outside the table.
	ErrIndexOutOfRange = errors.New("axes: axis index out of range")
	// ErrUnconstrained indicates a world axis with no governing pixel
	// axis, or a pixel axis governing no world axis.
	ErrUnconstrained = errors.New("axes: unconstrained axis")
)
