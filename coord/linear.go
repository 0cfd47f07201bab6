package coord

import (
	"fmt"

	"github.com/katalvlaran/ndwcs/axes"
)

// Linear is a closed-form affine transform mapping pixel axis i to
// world axis i as world[i] = offset[i] + scale[i]*pixel[i]. It is the
// reference implementation of the Transform contract and the usual
// stand-in for regularly gridded axes (uniform wavelength steps,
// constant cadence time axes).
//
// Axes are mutually independent, so the correlation matrix is the
// identity. A zero scale makes the corresponding axis non-invertible;
// Forward still works, Inverse returns ErrNotInvertible.
type Linear struct {
	world  []WorldAxis
	scale  []float64
	offset []float64
	corr   *axes.Matrix
}

// compile-time contract check
var _ Transform = (*Linear)(nil)

// NewLinear builds an n-axis affine transform from per-axis metadata,
// scales and offsets. All three slices must have the same non-zero
// length; otherwise ErrRankMismatch is returned.
func NewLinear(world []WorldAxis, scale, offset []float64) (*Linear, error) {
	n := len(world)
	if n == 0 || len(scale) != n || len(offset) != n {
		return nil, fmt.Errorf("coord: NewLinear: %d axes, %d scales, %d offsets: %w",
			n, len(scale), len(offset), ErrRankMismatch)
	}
	corr := axes.Identity(n)

	l := &Linear{
		world:  append([]WorldAxis(nil), world...),
		scale:  append([]float64(nil), scale...),
		offset: append([]float64(nil), offset...),
		corr:   corr,
	}

	return l, nil
}

// PixelN reports the number of pixel axes. Complexity: O(1).
func (l *Linear) PixelN() int { return len(l.scale) }

// WorldN reports the number of world axes. Complexity: O(1).
func (l *Linear) WorldN() int { return len(l.scale) }

// Forward maps a pixel position to world values. Complexity: O(n).
func (l *Linear) Forward(pixel []float64) ([]float64, error) {
	if len(pixel) != len(l.scale) {
		return nil, ErrRankMismatch
	}
	out := make([]float64, len(pixel))
	for i, p := range pixel {
		out[i] = l.offset[i] + l.scale[i]*p
	}

	return out, nil
}

// Inverse maps a world position back to pixel indices.
// Returns ErrNotInvertible on any zero-scale axis. Complexity: O(n).
func (l *Linear) Inverse(world []float64) ([]float64, error) {
	if len(world) != len(l.scale) {
		return nil, ErrRankMismatch
	}
	out := make([]float64, len(world))
	for i, w := range world {
		if l.scale[i] == 0 {
			return nil, fmt.Errorf("coord: Linear.Inverse: axis %d has zero scale: %w",
				i, ErrNotInvertible)
		}
		out[i] = (w - l.offset[i]) / l.scale[i]
	}

	return out, nil
}

// WorldAxes returns the per-axis metadata; callers must not mutate it.
func (l *Linear) WorldAxes() []WorldAxis { return l.world }

// Correlation returns the identity correlation matrix.
func (l *Linear) Correlation() *axes.Matrix { return l.corr }
