package lut

import "errors"

// Sentinel errors for lookup-table construction and evaluation.
var (
	// ErrEmptyTable indicates a value sequence with no entries.
	ErrEmptyTable = errors.New("lut: value sequence must be non-empty")
	// ErrLengthMismatch indicates joint sequences of differing lengths,
	// or an axis/metadata count mismatch at construction.
	ErrLengthMismatch = errors.New("lut: sequence lengths do not match")
	// ErrOutOfRange indicates a forward index beyond the ±0.5 edge band
	// while extrapolation is disabled.
	ErrOutOfRange = errors.New("lut: pixel index outside table range")
	// ErrBadSlice indicates malformed SliceTable parameters.
	ErrBadSlice = errors.New("lut: invalid table slice parameters")
)

// edgeBand is how far (in index units) evaluation may stray past the
// first/last entry and still clamp to the edge value.
const edgeBand = 0.5

// monotonicity classifies one value sequence for inverse lookup.
type monotonicity int

const (
	// nonMonotonic sequences only support nearest-match inverse lookup.
	nonMonotonic monotonicity = iota
	// increasing sequences are strictly ascending.
	increasing
	// decreasing sequences are strictly descending.
	decreasing
)

// Options configures table evaluation.
//
// Fields:
//   - Extrapolate — when true, Forward continues past the table edges
//     along the boundary step, and monotonic Inverse accepts values
//     beyond the table's value range. When false (the default),
//     Forward clamps within ±0.5 of the edges and errors beyond, and
//     Inverse fails with coord.ErrNotInvertible outside the value range.
type Options struct {
	Extrapolate bool
}

// DefaultOptions returns the default evaluation policy:
// no extrapolation.
func DefaultOptions() Options {
	return Options{Extrapolate: false}
}
