package lut

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/ndwcs/axes"
	"github.com/katalvlaran/ndwcs/coord"
)

// Table is a lookup-table coordinate: one ordered value sequence per
// governed pixel axis, sequence i producing world axis i. A Table is
// immutable once constructed; SliceTable returns a new Table.
type Table struct {
	world []coord.WorldAxis
	seqs  [][]float64
	mono  []monotonicity
	corr  *axes.Matrix
	opts  Options
}

// compile-time contract checks
var (
	_ coord.Transform   = (*Table)(nil)
	_ coord.TableSlicer = (*Table)(nil)
)

// New builds a one-axis lookup table: pixel index i on the single
// governed axis maps to values[i]. A nil opts means DefaultOptions.
func New(axis coord.WorldAxis, values []float64, opts *Options) (*Table, error) {
	return NewJoint([]coord.WorldAxis{axis}, [][]float64{values}, opts)
}

// NewJoint builds a joint lookup table over len(values) pixel axes,
// producing one world axis per governed axis. Sequences must be
// non-empty and of equal length (they jointly cover the same index
// range). The correlation matrix of a joint table is all-true:
// coupling is assumed conservatively for every (world, pixel) pair.
func NewJoint(world []coord.WorldAxis, values [][]float64, opts *Options) (*Table, error) {
	n := len(values)
	if n == 0 || len(world) != n {
		return nil, fmt.Errorf("lut: NewJoint: %d axes, %d sequences: %w",
			len(world), n, ErrLengthMismatch)
	}
	for i, seq := range values {
		if len(seq) == 0 {
			return nil, fmt.Errorf("lut: NewJoint: sequence %d: %w", i, ErrEmptyTable)
		}
		if len(seq) != len(values[0]) {
			return nil, fmt.Errorf("lut: NewJoint: sequence %d has length %d, want %d: %w",
				i, len(seq), len(values[0]), ErrLengthMismatch)
		}
	}

	t := &Table{
		world: append([]coord.WorldAxis(nil), world...),
		seqs:  make([][]float64, n),
		mono:  make([]monotonicity, n),
		opts:  DefaultOptions(),
	}
	if opts != nil {
		t.opts = *opts
	}
	for i, seq := range values {
		t.seqs[i] = append([]float64(nil), seq...)
		t.mono[i] = classify(seq)
	}
	if n == 1 {
		t.corr = axes.Identity(1)
	} else {
		full, err := axes.Full(n, n)
		if err != nil {
			return nil, err
		}
		t.corr = full
	}

	return t, nil
}

// PixelN reports the number of governed pixel axes.
func (t *Table) PixelN() int { return len(t.seqs) }

// WorldN reports the number of produced world axes.
func (t *Table) WorldN() int { return len(t.seqs) }

// WorldAxes returns the per-axis metadata; callers must not mutate it.
func (t *Table) WorldAxes() []coord.WorldAxis { return t.world }

// Correlation returns the correlation matrix: identity for a single
// axis, all-true for joint tables.
func (t *Table) Correlation() *axes.Matrix { return t.corr }

// Extents returns the sequence length per governed axis.
func (t *Table) Extents() []int {
	out := make([]int, len(t.seqs))
	for i, seq := range t.seqs {
		out[i] = len(seq)
	}

	return out
}

// Len returns the extent of a governed axis, or 0 when axis is out of
// range.
func (t *Table) Len(axis int) int {
	if axis < 0 || axis >= len(t.seqs) {
		return 0
	}

	return len(t.seqs[axis])
}

// Values returns a copy of the value sequence governing axis.
// Returns nil when axis is out of range.
func (t *Table) Values(axis int) []float64 {
	if axis < 0 || axis >= len(t.seqs) {
		return nil
	}

	return append([]float64(nil), t.seqs[axis]...)
}

// Forward maps fractional pixel indices to world values by direct
// lookup (integer-aligned) or linear interpolation between the
// bracketing entries. Outside the table, values clamp within ±0.5 of
// the boundary and error beyond, unless Extrapolate is set.
func (t *Table) Forward(pixel []float64) ([]float64, error) {
	if len(pixel) != len(t.seqs) {
		return nil, coord.ErrRankMismatch
	}
	out := make([]float64, len(pixel))
	for i, x := range pixel {
		v, err := t.forwardAxis(i, x)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// Inverse maps world values back to fractional pixel indices.
// Monotonic axes use binary search plus interpolation; non-monotonic
// axes return the nearest entry's index, lowest index winning ties.
func (t *Table) Inverse(world []float64) ([]float64, error) {
	if len(world) != len(t.seqs) {
		return nil, coord.ErrRankMismatch
	}
	out := make([]float64, len(world))
	for i, v := range world {
		p, err := t.inverseAxis(i, v)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}

	return out, nil
}

// SliceTable restricts the given axis to extent entries starting at
// start with the given step, re-slicing the stored sequence. The other
// axes are untouched. Implements coord.TableSlicer.
func (t *Table) SliceTable(axis, start, step, extent int) (coord.Transform, error) {
	if axis < 0 || axis >= len(t.seqs) {
		return nil, fmt.Errorf("lut: SliceTable: axis %d of %d: %w", axis, len(t.seqs), ErrBadSlice)
	}
	if start < 0 || step < 1 || extent < 0 {
		return nil, fmt.Errorf("lut: SliceTable: start=%d step=%d extent=%d: %w",
			start, step, extent, ErrBadSlice)
	}
	if extent > 0 && start+(extent-1)*step >= len(t.seqs[axis]) {
		return nil, fmt.Errorf("lut: SliceTable: [%d:%d:%d] exceeds length %d: %w",
			start, start+(extent-1)*step, step, len(t.seqs[axis]), ErrBadSlice)
	}

	sub := make([]float64, extent)
	for i := range sub {
		sub[i] = t.seqs[axis][start+i*step]
	}

	next := &Table{
		world: t.world,
		seqs:  make([][]float64, len(t.seqs)),
		mono:  make([]monotonicity, len(t.seqs)),
		corr:  t.corr,
		opts:  t.opts,
	}
	copy(next.seqs, t.seqs)
	copy(next.mono, t.mono)
	next.seqs[axis] = sub
	next.mono[axis] = classify(sub)

	return next, nil
}

// forwardAxis evaluates one axis of the table at fractional index x.
func (t *Table) forwardAxis(axis int, x float64) (float64, error) {
	seq := t.seqs[axis]
	n := len(seq)
	if n == 0 {
		// Zero-length ranges are legal after slicing; the axis is
		// retained but has no evaluable entries.
		return 0, fmt.Errorf("lut: axis %d has zero extent: %w", axis, ErrOutOfRange)
	}
	last := float64(n - 1)
	switch {
	case x < 0:
		if t.opts.Extrapolate && n > 1 {
			return seq[0] + x*(seq[1]-seq[0]), nil
		}
		if x >= -edgeBand || t.opts.Extrapolate {
			return seq[0], nil
		}
		return 0, fmt.Errorf("lut: axis %d index %v below range: %w", axis, x, ErrOutOfRange)
	case x > last:
		if t.opts.Extrapolate && n > 1 {
			return seq[n-1] + (x-last)*(seq[n-1]-seq[n-2]), nil
		}
		if x <= last+edgeBand || t.opts.Extrapolate {
			return seq[n-1], nil
		}
		return 0, fmt.Errorf("lut: axis %d index %v above range: %w", axis, x, ErrOutOfRange)
	default:
		i := int(math.Floor(x))
		if i == n-1 {
			return seq[n-1], nil
		}
		frac := x - float64(i)

		return seq[i] + frac*(seq[i+1]-seq[i]), nil
	}
}

// inverseAxis locates world value v on one axis of the table.
func (t *Table) inverseAxis(axis int, v float64) (float64, error) {
	seq := t.seqs[axis]
	n := len(seq)
	if n == 0 {
		return 0, fmt.Errorf("lut: axis %d has zero extent: %w", axis, coord.ErrNotInvertible)
	}

	switch t.mono[axis] {
	case increasing:
		return t.inverseIncreasing(axis, seq, v)
	case decreasing:
		return t.inverseDecreasing(axis, seq, v)
	default:
		return t.inverseNearest(axis, seq, v)
	}
}

// inverseIncreasing: binary search + interpolation on an ascending seq.
func (t *Table) inverseIncreasing(axis int, seq []float64, v float64) (float64, error) {
	n := len(seq)
	if v < seq[0] || v > seq[n-1] {
		if !t.opts.Extrapolate {
			return 0, fmt.Errorf("lut: axis %d value %v outside [%v, %v]: %w",
				axis, v, seq[0], seq[n-1], coord.ErrNotInvertible)
		}
		if n == 1 {
			return 0, nil
		}
		if v < seq[0] {
			return (v - seq[0]) / (seq[1] - seq[0]), nil
		}
		return float64(n-1) + (v-seq[n-1])/(seq[n-1]-seq[n-2]), nil
	}

	j := sort.SearchFloat64s(seq, v) // first j with seq[j] >= v
	if seq[j] == v {
		return float64(j), nil
	}
	// j >= 1 here: v > seq[0] and seq[j-1] < v < seq[j].
	return float64(j-1) + (v-seq[j-1])/(seq[j]-seq[j-1]), nil
}

// inverseDecreasing mirrors inverseIncreasing for a descending seq.
func (t *Table) inverseDecreasing(axis int, seq []float64, v float64) (float64, error) {
	n := len(seq)
	if v > seq[0] || v < seq[n-1] {
		if !t.opts.Extrapolate {
			return 0, fmt.Errorf("lut: axis %d value %v outside [%v, %v]: %w",
				axis, v, seq[n-1], seq[0], coord.ErrNotInvertible)
		}
		if n == 1 {
			return 0, nil
		}
		if v > seq[0] {
			return (v - seq[0]) / (seq[1] - seq[0]), nil
		}
		return float64(n-1) + (v-seq[n-1])/(seq[n-1]-seq[n-2]), nil
	}

	j := sort.Search(n, func(i int) bool { return seq[i] <= v }) // first j with seq[j] <= v
	if seq[j] == v {
		return float64(j), nil
	}
	// j >= 1 here: v < seq[0] and seq[j-1] > v > seq[j].
	return float64(j-1) + (v-seq[j-1])/(seq[j]-seq[j-1]), nil
}

// inverseNearest scans for the entry closest to v; the lowest index
// wins ties. Values outside the table's value range only resolve when
// extrapolation is enabled.
func (t *Table) inverseNearest(axis int, seq []float64, v float64) (float64, error) {
	lo, hi := seq[0], seq[0]
	for _, s := range seq[1:] {
		lo = math.Min(lo, s)
		hi = math.Max(hi, s)
	}
	if (v < lo || v > hi) && !t.opts.Extrapolate {
		return 0, fmt.Errorf("lut: axis %d value %v outside [%v, %v]: %w",
			axis, v, lo, hi, coord.ErrNotInvertible)
	}

	best := 0
	bestDist := math.Abs(seq[0] - v)
	for j := 1; j < len(seq); j++ {
		if d := math.Abs(seq[j] - v); d < bestDist {
			best, bestDist = j, d
		}
	}

	return float64(best), nil
}

// classify determines whether seq is strictly increasing, strictly
// decreasing, or neither. Single-entry sequences count as increasing.
func classify(seq []float64) monotonicity {
	if len(seq) < 2 {
		return increasing
	}
	inc, dec := true, true
	for i := 1; i < len(seq); i++ {
		if seq[i] <= seq[i-1] {
			inc = false
		}
		if seq[i] >= seq[i-1] {
			dec = false
		}
	}
	switch {
	case inc:
		return increasing
	case dec:
		return decreasing
	default:
		return nonMonotonic
	}
}
