package slicing

import (
	"fmt"

	"github.com/katalvlaran/ndwcs/axes"
	"github.com/katalvlaran/ndwcs/coord"
)

// keptAxis describes one surviving pixel axis of a Sliced transform.
type keptAxis struct {
	baseAxis int // pixel axis index in the base transform
	start    int
	step     int
	extent   int
}

// fixedAxis is a pixel axis collapsed to a scalar index.
type fixedAxis struct {
	baseAxis int
	index    int
}

// Sliced wraps a base transform with a slicing operation: collapsed
// pixel axes are closed over their fixed indices, surviving sub-ranges
// compose an affine reindex, and world axes left unconstrained are
// removed from the world-axis set but retained as 0-D scalars.
//
// Sliced never mutates its base; the base stays valid for other views.
type Sliced struct {
	base      coord.Transform
	kept      []keptAxis
	fixed     []fixedAxis
	worldKeep []int // base world-axis indices retained, ascending
	world     []coord.WorldAxis
	corr      *axes.Matrix
	dropped   []coord.ScalarCoordinate
	refWorld  []float64 // base world values at the reference point; nil when nothing was dropped
}

// compile-time contract checks
var (
	_ coord.Transform          = (*Sliced)(nil)
	_ coord.DegenerateReporter = (*Sliced)(nil)
)

// Slice applies spec to a transform over an array of the given shape
// and returns the sliced transform plus the sliced shape.
//
// The shape describes the array the transform currently addresses:
// len(shape) must equal t.PixelN(). An identity spec returns t itself;
// pure sub-range specs on table-backed transforms re-slice the tables;
// everything else is wrapped in a Sliced.
func Slice(t coord.Transform, shape []int, spec Spec) (coord.Transform, []int, error) {
	if t == nil {
		return nil, nil, ErrNilTransform
	}
	if len(shape) != t.PixelN() {
		return nil, nil, fmt.Errorf("slicing: shape rank %d, transform has %d pixel axes: %w",
			len(shape), t.PixelN(), coord.ErrRankMismatch)
	}
	norm, newShape, err := Apply(shape, spec)
	if err != nil {
		return nil, nil, err
	}
	if isIdentity(norm, shape) {
		return t, newShape, nil
	}

	// Table fast path: pure sub-ranging of a table-backed transform
	// re-slices the stored values instead of stacking an affine remap.
	if ts, ok := t.(coord.TableSlicer); ok && !hasScalar(norm) {
		sliced, err := sliceTables(ts, shape, norm)
		if err == nil {
			return sliced, newShape, nil
		}
		// A table that cannot re-slice natively falls through to the
		// generic wrapper.
	}

	sliced, err := newSliced(t, norm)
	if err != nil {
		return nil, nil, err
	}

	return sliced, newShape, nil
}

// hasScalar reports whether a normalized spec collapses any axis.
func hasScalar(norm Spec) bool {
	for _, it := range norm {
		if it.kind == KindScalar {
			return true
		}
	}

	return false
}

// sliceTables applies a pure sub-range spec axis by axis through the
// TableSlicer capability.
func sliceTables(ts coord.TableSlicer, shape []int, norm Spec) (coord.Transform, error) {
	cur := coord.Transform(ts)
	for axis, it := range norm {
		if it.start == 0 && it.step == 1 && it.stop == shape[axis] {
			continue
		}
		slicer, ok := cur.(coord.TableSlicer)
		if !ok {
			return nil, fmt.Errorf("slicing: axis %d lost table capability: %w", axis, ErrBadSpec)
		}
		next, err := slicer.SliceTable(axis, it.start, it.step, it.Extent())
		if err != nil {
			return nil, err
		}
		cur = next
	}

	return cur, nil
}

// newSliced builds the generic wrapper from a normalized spec.
func newSliced(t coord.Transform, norm Spec) (*Sliced, error) {
	s := &Sliced{base: t}
	var collapsed []int
	for axis, it := range norm {
		if it.kind == KindScalar {
			collapsed = append(collapsed, axis)
			s.fixed = append(s.fixed, fixedAxis{baseAxis: axis, index: it.index})
			continue
		}
		s.kept = append(s.kept, keptAxis{
			baseAxis: axis,
			start:    it.start,
			step:     it.step,
			extent:   it.Extent(),
		})
	}

	corr, droppedWorld, err := t.Correlation().DropPixelAxes(collapsed)
	if err != nil {
		return nil, err
	}
	s.corr = corr

	baseWorld := t.WorldAxes()
	isDropped := make([]bool, t.WorldN())
	for _, w := range droppedWorld {
		isDropped[w] = true
	}
	for w := 0; w < t.WorldN(); w++ {
		if !isDropped[w] {
			s.worldKeep = append(s.worldKeep, w)
			s.world = append(s.world, baseWorld[w])
		}
	}

	// World axes whose every governing pixel axis was collapsed are now
	// fixed scalars. Evaluate the base at the reference point (fixed
	// axes at their indices, kept axes at their range starts) to pin
	// their values; the same vector later supplies the dropped world
	// values during Inverse.
	if len(droppedWorld) > 0 {
		ref := s.basePixel(make([]float64, len(s.kept)))
		refWorld, err := t.Forward(ref)
		if err != nil {
			return nil, fmt.Errorf("slicing: evaluating collapsed world axes: %w", err)
		}
		s.refWorld = refWorld
		for _, w := range droppedWorld {
			s.dropped = append(s.dropped, coord.ScalarCoordinate{
				Axis:  baseWorld[w],
				Value: refWorld[w],
			})
		}
	}

	return s, nil
}

// basePixel assembles a base pixel vector from sliced pixel values.
func (s *Sliced) basePixel(pixel []float64) []float64 {
	out := make([]float64, s.base.PixelN())
	for _, f := range s.fixed {
		out[f.baseAxis] = float64(f.index)
	}
	for i, k := range s.kept {
		out[k.baseAxis] = float64(k.start) + float64(k.step)*pixel[i]
	}

	return out
}

// PixelN reports the number of surviving pixel axes.
func (s *Sliced) PixelN() int { return len(s.kept) }

// WorldN reports the number of surviving world axes.
func (s *Sliced) WorldN() int { return len(s.worldKeep) }

// WorldAxes returns the surviving world-axis metadata in base order.
func (s *Sliced) WorldAxes() []coord.WorldAxis { return s.world }

// Correlation returns the recomputed correlation matrix.
func (s *Sliced) Correlation() *axes.Matrix { return s.corr }

// DroppedWorld returns the world axes removed by this slice with their
// fixed values, in base world-axis order.
func (s *Sliced) DroppedWorld() []coord.ScalarCoordinate {
	return append([]coord.ScalarCoordinate(nil), s.dropped...)
}

// Forward maps a sliced pixel position to the surviving world values.
func (s *Sliced) Forward(pixel []float64) ([]float64, error) {
	if len(pixel) != len(s.kept) {
		return nil, coord.ErrRankMismatch
	}
	baseWorld, err := s.base.Forward(s.basePixel(pixel))
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(s.worldKeep))
	for i, w := range s.worldKeep {
		out[i] = baseWorld[w]
	}

	return out, nil
}

// Inverse maps surviving world values back to sliced pixel indices.
// The dropped world axes are supplied from the reference point; a
// result outside [0, extent) on any surviving axis fails with
// ErrOutOfBounds.
func (s *Sliced) Inverse(world []float64) ([]float64, error) {
	if len(world) != len(s.worldKeep) {
		return nil, coord.ErrRankMismatch
	}
	baseWorld := make([]float64, s.base.WorldN())
	if s.refWorld != nil {
		copy(baseWorld, s.refWorld)
	}
	for i, w := range s.worldKeep {
		baseWorld[w] = world[i]
	}

	basePix, err := s.base.Inverse(baseWorld)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(s.kept))
	for i, k := range s.kept {
		p := (basePix[k.baseAxis] - float64(k.start)) / float64(k.step)
		if p < -DefaultEpsilon || p >= float64(k.extent)-DefaultEpsilon {
			return nil, fmt.Errorf("slicing: axis %d inverse index %v outside [0,%d): %w",
				i, p, k.extent, ErrOutOfBounds)
		}
		out[i] = p
	}

	return out, nil
}
