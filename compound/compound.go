package compound

import (
	"fmt"

	"github.com/katalvlaran/ndwcs/axes"
	"github.com/katalvlaran/ndwcs/coord"
)

// Component pairs a child transform with the global pixel axes its
// local axes occupy. PixelAxes is in child-local order: the child's
// local axis j lives at global index PixelAxes[j].
type Component struct {
	Transform coord.Transform
	PixelAxes []int
}

// Compound presents N independent transforms over disjoint pixel-axis
// blocks as one transform. World axes are concatenated in component
// order; pixel axes are the union of the components' claims.
type Compound struct {
	comps  []Component
	nPix   int
	nWorld int
	world  []coord.WorldAxis
	corr   *axes.Matrix
}

// compile-time contract check
var _ coord.Transform = (*Compound)(nil)

// New composes the given components. Construction fails with
// ErrAxisOverlap when two components claim the same global pixel axis
// and ErrAxisGap when the union of claims does not cover 0..nPix-1
// contiguously.
func New(components ...Component) (*Compound, error) {
	if len(components) == 0 {
		return nil, ErrNoComponents
	}

	c := &Compound{comps: make([]Component, len(components))}
	claims := map[int]bool{}
	maxAxis := -1
	for i, comp := range components {
		if comp.Transform == nil {
			return nil, fmt.Errorf("compound: component %d has nil transform: %w", i, ErrBadMapping)
		}
		if len(comp.PixelAxes) != comp.Transform.PixelN() {
			return nil, fmt.Errorf("compound: component %d maps %d axes for %d pixel axes: %w",
				i, len(comp.PixelAxes), comp.Transform.PixelN(), ErrBadMapping)
		}
		for _, a := range comp.PixelAxes {
			if a < 0 {
				return nil, fmt.Errorf("compound: component %d claims negative axis %d: %w", i, a, ErrBadMapping)
			}
			if claims[a] {
				return nil, fmt.Errorf("compound: pixel axis %d: %w", a, ErrAxisOverlap)
			}
			claims[a] = true
			if a > maxAxis {
				maxAxis = a
			}
		}
		c.comps[i] = Component{
			Transform: comp.Transform,
			PixelAxes: append([]int(nil), comp.PixelAxes...),
		}
		c.nWorld += comp.Transform.WorldN()
		c.world = append(c.world, comp.Transform.WorldAxes()...)
	}
	c.nPix = maxAxis + 1
	for a := 0; a < c.nPix; a++ {
		if !claims[a] {
			return nil, fmt.Errorf("compound: pixel axis %d unclaimed: %w", a, ErrAxisGap)
		}
	}

	corr, err := axes.New(c.nWorld, c.nPix)
	if err != nil {
		return nil, err
	}
	worldBase := 0
	for _, comp := range c.comps {
		child := comp.Transform.Correlation()
		for w := 0; w < child.WorldN(); w++ {
			for p := 0; p < child.PixelN(); p++ {
				v, err := child.At(w, p)
				if err != nil {
					return nil, err
				}
				if v {
					if err := corr.Set(worldBase+w, comp.PixelAxes[p], true); err != nil {
						return nil, err
					}
				}
			}
		}
		worldBase += child.WorldN()
	}
	c.corr = corr

	return c, nil
}

// PixelN reports the total number of pixel axes.
func (c *Compound) PixelN() int { return c.nPix }

// WorldN reports the total number of world axes.
func (c *Compound) WorldN() int { return c.nWorld }

// WorldAxes returns the concatenated child metadata in component
// order. Callers must not mutate the returned slice.
func (c *Compound) WorldAxes() []coord.WorldAxis { return c.world }

// Correlation returns the block-diagonal correlation matrix permuted
// into global pixel order.
func (c *Compound) Correlation() *axes.Matrix { return c.corr }

// Forward gathers each component's pixel block, evaluates the child
// forward, and concatenates the world outputs in component order.
func (c *Compound) Forward(pixel []float64) ([]float64, error) {
	if len(pixel) != c.nPix {
		return nil, coord.ErrRankMismatch
	}
	out := make([]float64, 0, c.nWorld)
	for i, comp := range c.comps {
		local := make([]float64, len(comp.PixelAxes))
		for j, a := range comp.PixelAxes {
			local[j] = pixel[a]
		}
		w, err := comp.Transform.Forward(local)
		if err != nil {
			return nil, fmt.Errorf("compound: component %d forward: %w", i, err)
		}
		out = append(out, w...)
	}

	return out, nil
}

// Inverse splits the world vector by child world counts, inverts each
// child, and scatters the pixel results through the axis mapping.
func (c *Compound) Inverse(world []float64) ([]float64, error) {
	if len(world) != c.nWorld {
		return nil, coord.ErrRankMismatch
	}
	out := make([]float64, c.nPix)
	offset := 0
	for i, comp := range c.comps {
		n := comp.Transform.WorldN()
		p, err := comp.Transform.Inverse(world[offset : offset+n])
		if err != nil {
			return nil, fmt.Errorf("compound: component %d inverse: %w", i, err)
		}
		for j, a := range comp.PixelAxes {
			out[a] = p[j]
		}
		offset += n
	}

	return out, nil
}
