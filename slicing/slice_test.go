package slicing_test

import (
	"testing"

	"github.com/katalvlaran/ndwcs/coord"
	"github.com/katalvlaran/ndwcs/lut"
	"github.com/katalvlaran/ndwcs/slicing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeAxis returns a 3-axis affine transform over shape (4, 5, 6):
// world[i] = offset[i] + scale[i]*pixel[i], independent axes.
func threeAxis(t *testing.T) (coord.Transform, []int) {
	t.Helper()
	tr, err := coord.NewLinear(
		[]coord.WorldAxis{
			{Name: "x", PhysicalType: "pos.eq.ra", Unit: "deg"},
			{Name: "y", PhysicalType: "pos.eq.dec", Unit: "deg"},
			{Name: "wave", PhysicalType: "em.wl", Unit: "nm"},
		},
		[]float64{2, 3, 4},
		[]float64{10, 20, 30},
	)
	require.NoError(t, err)

	return tr, []int{4, 5, 6}
}

// TestApply_Normalization verifies padding, negative index resolution,
// stop clamping and the failure modes of Apply.
func TestApply_Normalization(t *testing.T) {
	shape := []int{4, 5}

	norm, newShape, err := slicing.Apply(shape, slicing.Spec{slicing.At(-1)})
	require.NoError(t, err)
	assert.Equal(t, []int{5}, newShape, "short specs pad with All")
	assert.Equal(t, slicing.KindScalar, norm[0].Kind())
	assert.Equal(t, 3, norm[0].Index(), "negative scalar index resolves from the end")
	assert.Equal(t, slicing.KindRange, norm[1].Kind())

	_, newShape, err = slicing.Apply(shape, slicing.Spec{slicing.Range(1, 100, 2)})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5}, newShape, "stop clamps to the extent; ceil((4-1)/2)=2")

	_, newShape, err = slicing.Apply(shape, slicing.Spec{slicing.From(2), slicing.Range(-3, slicing.End, 1)})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, newShape)

	_, _, err = slicing.Apply(shape, slicing.Spec{slicing.All(), slicing.All(), slicing.All()})
	assert.ErrorIs(t, err, slicing.ErrBadSpec, "spec longer than rank")

	_, _, err = slicing.Apply(shape, slicing.Spec{slicing.Range(2, 1, 1)})
	assert.ErrorIs(t, err, slicing.ErrBadSpec, "inverted bounds")

	_, _, err = slicing.Apply(shape, slicing.Spec{slicing.Range(0, 4, 0)})
	assert.ErrorIs(t, err, slicing.ErrBadSpec, "step must be >= 1")

	_, _, err = slicing.Apply(shape, slicing.Spec{slicing.At(4)})
	assert.ErrorIs(t, err, slicing.ErrOutOfBounds, "scalar index outside extent")
}

// TestSlice_Identity verifies an identity spec returns the original
// transform object untouched.
func TestSlice_Identity(t *testing.T) {
	tr, shape := threeAxis(t)

	sliced, newShape, err := slicing.Slice(tr, shape, slicing.Spec{
		slicing.All(), slicing.Range(0, 5, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, shape, newShape)
	assert.Same(t, tr, sliced, "identity slicing is a no-op")
}

// TestSlice_CollapseDropsSoleWorldAxis verifies that collapsing the
// only pixel axis governing a world axis removes that world axis and
// retains it as a 0-D scalar coordinate.
func TestSlice_CollapseDropsSoleWorldAxis(t *testing.T) {
	tr, shape := threeAxis(t)

	sliced, newShape, err := slicing.Slice(tr, shape, slicing.Spec{
		slicing.All(), slicing.All(), slicing.At(3),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, newShape)
	assert.Equal(t, 2, sliced.PixelN())
	assert.Equal(t, 2, sliced.WorldN(), "world axis 'wave' is dropped")
	assert.Equal(t, "y", sliced.WorldAxes()[1].Name, "surviving metadata keeps base order")

	rep, ok := sliced.(coord.DegenerateReporter)
	require.True(t, ok, "sliced transform must report degenerate axes")
	dropped := rep.DroppedWorld()
	require.Len(t, dropped, 1)
	assert.Equal(t, "wave", dropped[0].Axis.Name)
	assert.Equal(t, 30.0+4*3, dropped[0].Value, "pinned at the fixed index")

	// Original transform is untouched.
	assert.Equal(t, 3, tr.PixelN())
	assert.Equal(t, 3, tr.WorldN())
}

// TestSlice_CollapseJointlyGoverned verifies a world axis jointly
// governed by a surviving pixel axis stays present.
func TestSlice_CollapseJointlyGoverned(t *testing.T) {
	lat := coord.WorldAxis{Name: "lat"}
	lon := coord.WorldAxis{Name: "lon"}
	tab, err := lut.NewJoint([]coord.WorldAxis{lat, lon},
		[][]float64{{0, 1, 2}, {10, 11, 12}}, nil)
	require.NoError(t, err)

	sliced, newShape, err := slicing.Slice(tab, []int{3, 3}, slicing.Spec{
		slicing.At(1), slicing.All(),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, newShape)
	assert.Equal(t, 1, sliced.PixelN())
	assert.Equal(t, 2, sliced.WorldN(), "full coupling keeps both world axes")

	w, err := sliced.Forward([]float64{2})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 12}, w, "axis 0 pinned at index 1")
}

// TestSlice_RangeAffine verifies the affine reindex on forward and
// inverse, and the OutOfBounds inverse failure.
func TestSlice_RangeAffine(t *testing.T) {
	tr, shape := threeAxis(t)

	sliced, newShape, err := slicing.Slice(tr, shape, slicing.Spec{
		slicing.Range(1, 4, 2), // base indices 1, 3
		slicing.All(),
		slicing.At(0),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5}, newShape)

	w, err := sliced.Forward([]float64{1, 2}) // base pixel (3, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{10 + 2*3, 20 + 3*2}, w)

	p, err := sliced.Inverse(w)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p[0], 1e-12)
	assert.InDelta(t, 2.0, p[1], 1e-12)

	// World value mapping to base pixel 0 on axis 0 lies before the
	// sub-range start: sliced index -0.5, outside [0, 2).
	_, err = sliced.Inverse([]float64{10, 20})
	assert.ErrorIs(t, err, slicing.ErrOutOfBounds)
}

// TestSlice_RoundTrip verifies pixel→world→pixel identity through a
// sliced transform wherever the base inverse is defined.
func TestSlice_RoundTrip(t *testing.T) {
	tr, shape := threeAxis(t)
	sliced, _, err := slicing.Slice(tr, shape, slicing.Spec{
		slicing.Range(1, 4, 1), slicing.Range(0, 5, 2), slicing.At(2),
	})
	require.NoError(t, err)

	for _, pix := range [][]float64{{0, 0}, {1, 1}, {2.5, 1.5}} {
		w, err := sliced.Forward(pix)
		require.NoError(t, err)
		p, err := sliced.Inverse(w)
		require.NoError(t, err)
		assert.InDeltaSlice(t, pix, p, 1e-12)
	}
}

// TestSlice_TableFastPath verifies pure sub-range specs on lookup
// tables re-slice the stored values and keep the table capability.
func TestSlice_TableFastPath(t *testing.T) {
	tab, err := lut.New(coord.WorldAxis{Name: "time", Unit: "s"},
		[]float64{0, 10, 20, 30, 40, 50}, nil)
	require.NoError(t, err)

	sliced, newShape, err := slicing.Slice(tab, []int{6}, slicing.Spec{slicing.Range(1, 6, 2)})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, newShape)

	sub, ok := sliced.(*lut.Table)
	require.True(t, ok, "sub-ranging a table must stay a table")
	assert.Equal(t, []float64{10, 30, 50}, sub.Values(0))

	w, err := sub.Forward([]float64{1})
	require.NoError(t, err)
	assert.Equal(t, 30.0, w[0])
}

// TestSlice_TwiceEqualsComposed verifies slicing a sliced transform
// behaves like one slice with the composed spec.
func TestSlice_TwiceEqualsComposed(t *testing.T) {
	tr, shape := threeAxis(t)

	once, onceShape, err := slicing.Slice(tr, shape, slicing.Spec{
		slicing.Range(1, 4, 1), slicing.Range(2, 5, 1), slicing.At(2),
	})
	require.NoError(t, err)

	step1, shape1, err := slicing.Slice(tr, shape, slicing.Spec{
		slicing.Range(0, 4, 1), slicing.Range(2, 5, 1), slicing.At(2),
	})
	require.NoError(t, err)
	twice, twiceShape, err := slicing.Slice(step1, shape1, slicing.Spec{
		slicing.From(1),
	})
	require.NoError(t, err)

	assert.Equal(t, onceShape, twiceShape)
	for _, pix := range [][]float64{{0, 0}, {2, 1}, {1.5, 2.5}} {
		w1, err := once.Forward(pix)
		require.NoError(t, err)
		w2, err := twice.Forward(pix)
		require.NoError(t, err)
		assert.InDeltaSlice(t, w1, w2, 1e-12)

		p1, err := once.Inverse(w1)
		require.NoError(t, err)
		p2, err := twice.Inverse(w2)
		require.NoError(t, err)
		assert.InDeltaSlice(t, p1, p2, 1e-12)
	}
}

// TestSlice_Validation verifies the nil and rank failure modes.
func TestSlice_Validation(t *testing.T) {
	tr, _ := threeAxis(t)

	_, _, err := slicing.Slice(nil, []int{4}, nil)
	assert.ErrorIs(t, err, slicing.ErrNilTransform)

	_, _, err = slicing.Slice(tr, []int{4, 5}, nil)
	assert.ErrorIs(t, err, coord.ErrRankMismatch, "shape rank must match pixel axes")
}

// TestSlice_CorrelationRecomputed verifies the sliced correlation
// matrix loses exactly the collapsed column and dropped row.
func TestSlice_CorrelationRecomputed(t *testing.T) {
	tr, shape := threeAxis(t)

	sliced, _, err := slicing.Slice(tr, shape, slicing.Spec{
		slicing.All(), slicing.At(1), slicing.All(),
	})
	require.NoError(t, err)

	corr := sliced.Correlation()
	assert.Equal(t, 2, corr.WorldN())
	assert.Equal(t, 2, corr.PixelN())
	assert.Equal(t, [][]bool{{true, false}, {false, true}}, corr.Rows())
}
