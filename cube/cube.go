package cube

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ndwcs/coord"
	"github.com/katalvlaran/ndwcs/extracoords"
	"github.com/katalvlaran/ndwcs/meta"
	"github.com/katalvlaran/ndwcs/slicing"
)

// Cube pairs an N-dimensional array shape with a primary coordinate
// transform, extra coordinates and metadata. A Cube is immutable:
// Slice and CropByWorld return new cubes; the receiver and any
// ancestors it was sliced from stay valid.
type Cube struct {
	shape   []int
	primary coord.Transform
	extras  *extracoords.Registry
	meta    *meta.Meta
	globals []coord.ScalarCoordinate
}

// New builds a cube around a primary transform and an array shape.
// The transform's pixel-axis count must equal len(shape); attached
// extra coordinates and metadata must be bound to the same shape.
func New(primary coord.Transform, shape []int, opts ...Option) (*Cube, error) {
	if primary == nil {
		return nil, ErrNilTransform
	}
	if len(shape) != primary.PixelN() {
		return nil, fmt.Errorf("cube: shape rank %d, transform has %d pixel axes: %w",
			len(shape), primary.PixelN(), ErrShapeMismatch)
	}
	for _, n := range shape {
		if n < 0 {
			return nil, fmt.Errorf("cube: extent %d: %w", n, ErrShapeMismatch)
		}
	}

	c := &Cube{
		shape:   append([]int(nil), shape...),
		primary: primary,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.extras == nil {
		r, err := extracoords.NewRegistry(c.shape)
		if err != nil {
			return nil, err
		}
		c.extras = r
	} else if !equalShape(c.extras.Shape(), c.shape) {
		return nil, fmt.Errorf("cube: extra-coords shape %v vs cube shape %v: %w",
			c.extras.Shape(), c.shape, ErrShapeMismatch)
	}
	if c.meta != nil && !equalShape(c.meta.Shape(), c.shape) {
		return nil, fmt.Errorf("cube: metadata shape %v vs cube shape %v: %w",
			c.meta.Shape(), c.shape, ErrShapeMismatch)
	}

	return c, nil
}

// Shape returns the array shape.
func (c *Cube) Shape() []int { return append([]int(nil), c.shape...) }

// Primary returns the primary coordinate transform.
func (c *Cube) Primary() coord.Transform { return c.primary }

// Extras returns the extra-coords registry. Adding entries is a
// construction-time operation; slice afterwards.
func (c *Cube) Extras() *extracoords.Registry { return c.extras }

// Meta returns the attached metadata, nil when none was attached.
func (c *Cube) Meta() *meta.Meta { return c.meta }

// Globals returns the world axes pinned to scalar values by the
// slicing operations that produced this cube.
func (c *Cube) Globals() []coord.ScalarCoordinate {
	return append([]coord.ScalarCoordinate(nil), c.globals...)
}

// WorldAt maps an array position to world values keyed by world-axis
// name: the primary transform's axes first, then extra-coordinate
// values for the same position, then pinned global scalars. On a name
// clash the later layer wins.
func (c *Cube) WorldAt(pixel []float64) (map[string]float64, error) {
	if len(pixel) != len(c.shape) {
		return nil, fmt.Errorf("cube: position rank %d for rank-%d cube: %w",
			len(pixel), len(c.shape), coord.ErrRankMismatch)
	}

	world, err := c.primary.Forward(pixel)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(world))
	for i, ax := range c.primary.WorldAxes() {
		out[ax.Name] = world[i]
	}

	for _, name := range c.extras.Names() {
		entry, err := c.extras.Get(name)
		if err != nil {
			return nil, err
		}
		values, err := entry.At(pixel, len(c.shape))
		if err != nil {
			return nil, fmt.Errorf("cube: extra coordinate %q: %w", name, err)
		}
		for i, ax := range entry.WorldAxes() {
			out[ax.Name] = values[i]
		}
	}

	for _, g := range c.globals {
		out[g.Axis.Name] = g.Value
	}

	return out, nil
}

// PixelFor maps world values (in primary world-axis order) to an array
// position. When the transform's own inverse fails and
// opts.Approximate is set, a bounded damped-Newton solve over the
// forward function is attempted instead; ErrNoConvergence reports an
// exhausted iteration cap. A nil opts means DefaultSolveOptions.
func (c *Cube) PixelFor(world []float64, opts *SolveOptions) ([]float64, error) {
	if len(world) != c.primary.WorldN() {
		return nil, fmt.Errorf("cube: world rank %d, transform has %d world axes: %w",
			len(world), c.primary.WorldN(), coord.ErrRankMismatch)
	}
	o := DefaultSolveOptions()
	if opts != nil {
		o = *opts
	}

	pixel, err := c.primary.Inverse(world)
	if err == nil {
		return pixel, nil
	}
	if !o.Approximate {
		return nil, err
	}

	return c.solvePixel(world, o)
}

// Slice derives the cube addressed by spec. The primary transform,
// extra coordinates, metadata and shape are derived together; any
// failure leaves the receiver untouched. World axes collapsed to
// scalars join the new cube's globals.
func (c *Cube) Slice(spec slicing.Spec) (*Cube, error) {
	primary, newShape, err := slicing.Slice(c.primary, c.shape, spec)
	if err != nil {
		return nil, err
	}
	extras, err := c.extras.Slice(spec)
	if err != nil {
		return nil, err
	}
	var m *meta.Meta
	if c.meta != nil {
		m, err = c.meta.Slice(spec)
		if err != nil {
			return nil, err
		}
	}

	globals := append([]coord.ScalarCoordinate(nil), c.globals...)
	if rep, ok := primary.(coord.DegenerateReporter); ok && primary != c.primary {
		globals = append(globals, rep.DroppedWorld()...)
	}

	return &Cube{
		shape:   newShape,
		primary: primary,
		extras:  extras,
		meta:    m,
		globals: globals,
	}, nil
}

// CropByWorld slices the cube down to the pixel ranges bracketing the
// world-coordinate box [min, max] (coordinates in primary world-axis
// order). Both corners are inverted through PixelFor with the given
// solve policy; the enclosing integer ranges, clamped to the cube,
// become a sub-range slice.
func (c *Cube) CropByWorld(min, max []float64, opts *SolveOptions) (*Cube, error) {
	lo, err := c.PixelFor(min, opts)
	if err != nil {
		return nil, err
	}
	hi, err := c.PixelFor(max, opts)
	if err != nil {
		return nil, err
	}

	spec := make(slicing.Spec, len(c.shape))
	for a := range c.shape {
		p0, p1 := lo[a], hi[a]
		if p0 > p1 {
			p0, p1 = p1, p0
		}
		start := int(math.Floor(p0))
		stop := int(math.Ceil(p1)) + 1
		if start < 0 {
			start = 0
		}
		if stop > c.shape[a] {
			stop = c.shape[a]
		}
		spec[a] = slicing.Range(start, stop, 1)
	}

	return c.Slice(spec)
}

// equalShape reports element-wise equality of two shapes.
func equalShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
