package extracoords

import "errors"

var (
	// ErrBadShape indicates a cube shape with a negative extent.
	ErrBadShape = errors.New("extracoords: cube shape extents must be >= 0")
	// ErrEmptyName indicates a zero-length coordinate name.
	ErrEmptyName = errors.New("extracoords: coordinate name must be non-empty")
	// ErrDuplicateName indicates the name is already registered.
	ErrDuplicateName = errors.New("extracoords: coordinate name already registered")
	// ErrNotFound indicates no coordinate under the requested name.
	ErrNotFound = errors.New("extracoords: coordinate not found")
	// ErrAxisOutOfRange indicates a governing axis outside the cube rank.
	ErrAxisOutOfRange = errors.New("extracoords: governing axis out of range")
	// ErrDuplicateAxis indicates a governing axis listed twice.
	ErrDuplicateAxis = errors.New("extracoords: governing axis listed twice")
	// ErrLengthMismatch indicates a table extent differing from its
	// governed cube axis extent.
	ErrLengthMismatch = errors.New("extracoords: table length does not match axis extent")
	// ErrNilTable indicates Add was called with a nil table.
	ErrNilTable = errors.New("extracoords: lookup table is nil")
)
