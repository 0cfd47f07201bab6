package extracoords

import (
	"fmt"

	"github.com/katalvlaran/ndwcs/coord"
	"github.com/katalvlaran/ndwcs/lut"
	"github.com/katalvlaran/ndwcs/slicing"
)

// Coordinate is one registered extra coordinate: a live transform over
// the cube axes it governs, or — once every governing axis has been
// collapsed by slicing — a pinned 0-D scalar value set.
type Coordinate struct {
	name    string
	axs     []int // governing cube axes, in table-axis order; nil when scalar
	tr      coord.Transform
	scalars []float64
	world   []coord.WorldAxis
}

// Name returns the coordinate's registered name.
func (c *Coordinate) Name() string { return c.name }

// AxisIndices returns the governing cube axes in table-axis order;
// empty for a scalar coordinate.
func (c *Coordinate) AxisIndices() []int { return append([]int(nil), c.axs...) }

// Transform returns the coordinate's transform, nil for a scalar.
func (c *Coordinate) Transform() coord.Transform { return c.tr }

// IsScalar reports whether every governing axis has been collapsed.
func (c *Coordinate) IsScalar() bool { return c.tr == nil }

// ScalarValues returns the pinned world values of a scalar coordinate,
// one per world axis; nil otherwise.
func (c *Coordinate) ScalarValues() []float64 { return append([]float64(nil), c.scalars...) }

// WorldAxes returns the coordinate's world-axis metadata. Scalars keep
// their metadata so a pinned value stays interpretable.
func (c *Coordinate) WorldAxes() []coord.WorldAxis { return c.world }

// At evaluates the coordinate at a cube pixel position (full cube
// rank). Scalar coordinates return their pinned values regardless of
// position.
func (c *Coordinate) At(cubePixel []float64, rank int) ([]float64, error) {
	if len(cubePixel) != rank {
		return nil, coord.ErrRankMismatch
	}
	if c.IsScalar() {
		return c.ScalarValues(), nil
	}
	local := make([]float64, len(c.axs))
	for j, a := range c.axs {
		local[j] = cubePixel[a]
	}

	return c.tr.Forward(local)
}

// Registry associates named extra coordinates with the array axes of
// one cube. Add is construction-time; Slice derives a new Registry.
type Registry struct {
	shape   []int
	entries []*Coordinate
	index   map[string]int
}

// NewRegistry creates an empty registry for a cube of the given shape.
func NewRegistry(shape []int) (*Registry, error) {
	for _, n := range shape {
		if n < 0 {
			return nil, fmt.Errorf("extracoords: extent %d: %w", n, ErrBadShape)
		}
	}

	return &Registry{
		shape: append([]int(nil), shape...),
		index: map[string]int{},
	}, nil
}

// Shape returns the cube shape the registry is bound to.
func (r *Registry) Shape() []int { return append([]int(nil), r.shape...) }

// Len reports the number of registered coordinates.
func (r *Registry) Len() int { return len(r.entries) }

// Names returns the registered names in insertion order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.name
	}

	return out
}

// Add registers a lookup table governing the given cube axes under a
// unique name. The table's pixel axes pair with axs in order, and each
// sequence length must equal the extent of the cube axis it governs.
func (r *Registry) Add(name string, axs []int, table *lut.Table) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := r.index[name]; ok {
		return fmt.Errorf("extracoords: %q: %w", name, ErrDuplicateName)
	}
	if table == nil {
		return fmt.Errorf("extracoords: %q: %w", name, ErrNilTable)
	}
	if table.PixelN() != len(axs) {
		return fmt.Errorf("extracoords: %q: table has %d axes, %d governing axes given: %w",
			name, table.PixelN(), len(axs), coord.ErrRankMismatch)
	}
	seen := map[int]bool{}
	extents := table.Extents()
	for j, a := range axs {
		if a < 0 || a >= len(r.shape) {
			return fmt.Errorf("extracoords: %q: axis %d on rank %d: %w",
				name, a, len(r.shape), ErrAxisOutOfRange)
		}
		if seen[a] {
			return fmt.Errorf("extracoords: %q: axis %d: %w", name, a, ErrDuplicateAxis)
		}
		seen[a] = true
		if extents[j] != r.shape[a] {
			return fmt.Errorf("extracoords: %q: table axis %d has %d entries, cube axis %d extent %d: %w",
				name, j, extents[j], a, r.shape[a], ErrLengthMismatch)
		}
	}

	r.entries = append(r.entries, &Coordinate{
		name:  name,
		axs:   append([]int(nil), axs...),
		tr:    table,
		world: table.WorldAxes(),
	})
	r.index[name] = len(r.entries) - 1

	return nil
}

// Get returns the coordinate registered under name. Coordinates whose
// axes were collapsed by slicing are still returned as scalars.
func (r *Registry) Get(name string) (*Coordinate, error) {
	i, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("extracoords: %q: %w", name, ErrNotFound)
	}

	return r.entries[i], nil
}

// Slice applies the cube's slice specification to every entry and
// returns the registry of the sliced cube. The receiver is untouched.
func (r *Registry) Slice(spec slicing.Spec) (*Registry, error) {
	norm, newShape, err := slicing.Apply(r.shape, spec)
	if err != nil {
		return nil, err
	}

	// New index of each surviving cube axis; -1 for collapsed ones.
	oldToNew := make([]int, len(r.shape))
	next := 0
	for a, it := range norm {
		if it.Kind() == slicing.KindScalar {
			oldToNew[a] = -1
			continue
		}
		oldToNew[a] = next
		next++
	}

	out := &Registry{shape: newShape, index: map[string]int{}}
	for _, e := range r.entries {
		se, err := r.sliceEntry(e, norm, oldToNew)
		if err != nil {
			return nil, fmt.Errorf("extracoords: slicing %q: %w", e.name, err)
		}
		out.entries = append(out.entries, se)
		out.index[se.name] = len(out.entries) - 1
	}

	return out, nil
}

// sliceEntry derives one entry of the sliced registry.
func (r *Registry) sliceEntry(e *Coordinate, norm slicing.Spec, oldToNew []int) (*Coordinate, error) {
	if e.IsScalar() {
		// Pinned values ride through further slicing unchanged.
		return e, nil
	}

	localSpec := make(slicing.Spec, len(e.axs))
	localShape := make([]int, len(e.axs))
	var newAxs []int
	for j, a := range e.axs {
		localSpec[j] = norm[a]
		localShape[j] = r.shape[a]
		if oldToNew[a] >= 0 {
			newAxs = append(newAxs, oldToNew[a])
		}
	}

	tr, _, err := slicing.Slice(e.tr, localShape, localSpec)
	if err != nil {
		return nil, err
	}

	if len(newAxs) > 0 {
		return &Coordinate{name: e.name, axs: newAxs, tr: tr, world: e.world}, nil
	}

	// Every governing axis collapsed: the coordinate is now a pinned
	// 0-D value set, retained rather than dropped.
	scalars := make([]float64, len(e.world))
	rep, ok := tr.(coord.DegenerateReporter)
	if !ok || tr.WorldN() != 0 {
		return nil, fmt.Errorf("extracoords: %q did not fully collapse: %w", e.name, ErrLengthMismatch)
	}
	for i, sc := range rep.DroppedWorld() {
		scalars[i] = sc.Value
	}

	return &Coordinate{name: e.name, scalars: scalars, world: e.world}, nil
}
