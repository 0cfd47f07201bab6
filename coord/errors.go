package coord

import "errors"

var (
	// ErrRankMismatch indicates a pixel or world vector whose length does
	// not match the transform's axis count.
	ErrRankMismatch = errors.New("coord: position vector length does not match axis count")

	// ErrNotInvertible indicates the inverse is undefined at the
	// requested world position.
	ErrNotInvertible = errors.New("coord: coordinate not invertible at requested value")
)
