package slicing

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the numeric tolerance applied when checking
// inverse pixel results against the sliced extent.
const DefaultEpsilon = 1e-9

// End marks "to the end of the axis" as a Range stop.
const End = math.MaxInt

// Kind discriminates the three per-axis slice operations.
type Kind int

const (
	// KindAll keeps the axis whole.
	KindAll Kind = iota
	// KindRange keeps a sub-range with a step.
	KindRange
	// KindScalar collapses the axis to a single index.
	KindScalar
)

// Item is the slice operation applied to one pixel axis. Construct
// with All, Range or At; the zero value is All.
type Item struct {
	kind              Kind
	index             int // KindScalar
	start, stop, step int // KindRange; stop is exclusive
}

// All keeps the axis whole.
func All() Item { return Item{kind: KindAll} }

// Range keeps the half-open index range [start, stop) with the given
// step (≥ 1). Negative start/stop count from the end of the axis;
// stop values beyond the extent clamp to it; End means "to the end".
func Range(start, stop, step int) Item {
	return Item{kind: KindRange, start: start, stop: stop, step: step}
}

// From keeps everything from start (inclusive) to the end of the axis.
func From(start int) Item { return Range(start, End, 1) }

// At collapses the axis to the single given index. Negative indices
// count from the end of the axis.
func At(index int) Item { return Item{kind: KindScalar, index: index} }

// Kind reports the item's operation.
func (it Item) Kind() Kind { return it.kind }

// Index reports the scalar index of a KindScalar item.
func (it Item) Index() int { return it.index }

// Bounds reports the (start, stop, step) of a KindRange item.
func (it Item) Bounds() (start, stop, step int) { return it.start, it.stop, it.step }

// Extent reports the number of retained indices of a normalized
// KindRange item; 1 for All specs normalized against extent 1, etc.
// Only meaningful on items returned by Apply.
func (it Item) Extent() int {
	if it.step < 1 || it.stop <= it.start {
		return 0
	}

	return (it.stop - it.start + it.step - 1) / it.step
}

// Spec is a per-pixel-axis slice specification in array-axis order.
// Specs shorter than the array rank are padded with All.
type Spec []Item

// Apply normalizes spec against shape and computes the sliced shape.
// The returned Spec has exactly one item per axis: KindScalar items
// with resolved non-negative indices, and KindRange items with
// resolved start/stop/step (All becomes the full range). Collapsed
// axes do not appear in the returned shape.
//
// Failure modes: ErrBadSpec for a spec longer than the rank, a step
// < 1 or inverted bounds after resolution; ErrOutOfBounds for a scalar
// index outside its axis.
func Apply(shape []int, spec Spec) (Spec, []int, error) {
	if len(spec) > len(shape) {
		return nil, nil, fmt.Errorf("slicing: %d spec items for rank %d: %w",
			len(spec), len(shape), ErrBadSpec)
	}

	norm := make(Spec, len(shape))
	newShape := make([]int, 0, len(shape))
	for axis, extent := range shape {
		it := All()
		if axis < len(spec) {
			it = spec[axis]
		}
		switch it.kind {
		case KindAll:
			norm[axis] = Item{kind: KindRange, start: 0, stop: extent, step: 1}
			newShape = append(newShape, extent)

		case KindScalar:
			idx := it.index
			if idx < 0 {
				idx += extent
			}
			if idx < 0 || idx >= extent {
				return nil, nil, fmt.Errorf("slicing: axis %d index %d outside extent %d: %w",
					axis, it.index, extent, ErrOutOfBounds)
			}
			norm[axis] = Item{kind: KindScalar, index: idx}

		case KindRange:
			if it.step < 1 {
				return nil, nil, fmt.Errorf("slicing: axis %d step %d: %w", axis, it.step, ErrBadSpec)
			}
			start, stop := it.start, it.stop
			if start < 0 {
				start += extent
			}
			if stop < 0 {
				stop += extent
			} else if stop > extent {
				stop = extent
			}
			if start < 0 || start > extent || stop < start {
				return nil, nil, fmt.Errorf("slicing: axis %d range [%d:%d] on extent %d: %w",
					axis, it.start, it.stop, extent, ErrBadSpec)
			}
			norm[axis] = Item{kind: KindRange, start: start, stop: stop, step: it.step}
			newShape = append(newShape, norm[axis].Extent())

		default:
			return nil, nil, fmt.Errorf("slicing: axis %d unknown item kind %d: %w", axis, it.kind, ErrBadSpec)
		}
	}

	return norm, newShape, nil
}

// isIdentity reports whether a normalized spec keeps every axis whole.
func isIdentity(norm Spec, shape []int) bool {
	for axis, it := range norm {
		if it.kind != KindRange || it.start != 0 || it.step != 1 || it.stop != shape[axis] {
			return false
		}
	}

	return true
}
