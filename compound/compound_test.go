package compound_test

import (
	"testing"

	"github.com/katalvlaran/ndwcs/compound"
	"github.com/katalvlaran/ndwcs/coord"
	"github.com/katalvlaran/ndwcs/lut"
	"github.com/katalvlaran/ndwcs/slicing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spatial returns a 2-axis affine transform (celestial plane stand-in).
func spatial(t *testing.T) coord.Transform {
	t.Helper()
	tr, err := coord.NewLinear(
		[]coord.WorldAxis{
			{Name: "ra", PhysicalType: "pos.eq.ra", Unit: "deg"},
			{Name: "dec", PhysicalType: "pos.eq.dec", Unit: "deg"},
		},
		[]float64{0.5, 0.5},
		[]float64{120, -30},
	)
	require.NoError(t, err)

	return tr
}

// spectral returns a 1-axis wavelength lookup table.
func spectral(t *testing.T) coord.Transform {
	t.Helper()
	tab, err := lut.New(coord.WorldAxis{Name: "wave", PhysicalType: "em.wl", Unit: "nm"},
		[]float64{500, 510, 520, 530}, nil)
	require.NoError(t, err)

	return tab
}

// TestNew_Validation verifies the construction failure modes.
func TestNew_Validation(t *testing.T) {
	_, err := compound.New()
	assert.ErrorIs(t, err, compound.ErrNoComponents)

	sp := spatial(t)

	_, err = compound.New(compound.Component{Transform: sp, PixelAxes: []int{0}})
	assert.ErrorIs(t, err, compound.ErrBadMapping, "axis list shorter than pixel count")

	_, err = compound.New(compound.Component{Transform: sp, PixelAxes: []int{0, -1}})
	assert.ErrorIs(t, err, compound.ErrBadMapping, "negative global axis")

	// Both children claim axis 2.
	_, err = compound.New(
		compound.Component{Transform: sp, PixelAxes: []int{1, 2}},
		compound.Component{Transform: spectral(t), PixelAxes: []int{2}},
	)
	assert.ErrorIs(t, err, compound.ErrAxisOverlap)

	// Axes {0,1} and {3} leave axis 2 unclaimed.
	_, err = compound.New(
		compound.Component{Transform: sp, PixelAxes: []int{0, 1}},
		compound.Component{Transform: spectral(t), PixelAxes: []int{3}},
	)
	assert.ErrorIs(t, err, compound.ErrAxisGap)
}

// TestForwardInverse_Concatenation verifies evaluation order and the
// round-trip across two children.
func TestForwardInverse_Concatenation(t *testing.T) {
	c, err := compound.New(
		compound.Component{Transform: spatial(t), PixelAxes: []int{0, 1}},
		compound.Component{Transform: spectral(t), PixelAxes: []int{2}},
	)
	require.NoError(t, err)

	assert.Equal(t, 3, c.PixelN())
	assert.Equal(t, 3, c.WorldN())
	names := []string{c.WorldAxes()[0].Name, c.WorldAxes()[1].Name, c.WorldAxes()[2].Name}
	assert.Equal(t, []string{"ra", "dec", "wave"}, names, "world axes concatenate in child order")

	w, err := c.Forward([]float64{2, 4, 1.5})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{121, -28, 515}, w, 1e-12)

	p, err := c.Inverse(w)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 4, 1.5}, p, 1e-12)

	_, err = c.Forward([]float64{1, 2})
	assert.ErrorIs(t, err, coord.ErrRankMismatch)
	_, err = c.Inverse([]float64{1, 2})
	assert.ErrorIs(t, err, coord.ErrRankMismatch)
}

// TestPermutedMapping verifies a non-contiguous child mapping: the
// spectral axis interleaved between the spatial ones.
func TestPermutedMapping(t *testing.T) {
	c, err := compound.New(
		compound.Component{Transform: spatial(t), PixelAxes: []int{0, 2}},
		compound.Component{Transform: spectral(t), PixelAxes: []int{1}},
	)
	require.NoError(t, err)

	w, err := c.Forward([]float64{2, 1, 4})
	require.NoError(t, err)
	// spatial sees (pixel0, pixel2) = (2, 4); spectral sees pixel1 = 1.
	assert.InDeltaSlice(t, []float64{121, -28, 510}, w, 1e-12)

	// Correlation rows: ra→axis0, dec→axis2, wave→axis1.
	assert.Equal(t, [][]bool{
		{true, false, false},
		{false, false, true},
		{false, true, false},
	}, c.Correlation().Rows())
}

// TestCompound_Sliceable verifies a compound composes with the slicing
// layer like any other transform: collapsing the spectral axis drops
// the spectral world axis but keeps the spatial plane intact.
func TestCompound_Sliceable(t *testing.T) {
	c, err := compound.New(
		compound.Component{Transform: spatial(t), PixelAxes: []int{0, 1}},
		compound.Component{Transform: spectral(t), PixelAxes: []int{2}},
	)
	require.NoError(t, err)

	sliced, newShape, err := slicing.Slice(c, []int{10, 10, 4}, slicing.Spec{
		slicing.All(), slicing.All(), slicing.At(2),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 10}, newShape)
	assert.Equal(t, 2, sliced.WorldN())

	rep, ok := sliced.(coord.DegenerateReporter)
	require.True(t, ok)
	dropped := rep.DroppedWorld()
	require.Len(t, dropped, 1)
	assert.Equal(t, "wave", dropped[0].Axis.Name)
	assert.Equal(t, 520.0, dropped[0].Value)
}
