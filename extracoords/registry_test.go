package extracoords_test

import (
	"testing"

	"github.com/katalvlaran/ndwcs/coord"
	"github.com/katalvlaran/ndwcs/extracoords"
	"github.com/katalvlaran/ndwcs/lut"
	"github.com/katalvlaran/ndwcs/slicing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	timeAxis = coord.WorldAxis{Name: "time", PhysicalType: "time", Unit: "s"}
	expAxis  = coord.WorldAxis{Name: "exposure_time", PhysicalType: "time.duration", Unit: "s"}
)

// mustTable builds a 1-axis lookup table or fails the test.
func mustTable(t *testing.T, axis coord.WorldAxis, values []float64) *lut.Table {
	t.Helper()
	tab, err := lut.New(axis, values, nil)
	require.NoError(t, err)

	return tab
}

// TestAdd_Validation verifies every Add failure mode.
func TestAdd_Validation(t *testing.T) {
	r, err := extracoords.NewRegistry([]int{3, 4})
	require.NoError(t, err)

	tab4 := mustTable(t, timeAxis, []float64{0, 10, 20, 30})

	assert.ErrorIs(t, r.Add("", []int{1}, tab4), extracoords.ErrEmptyName)
	assert.ErrorIs(t, r.Add("time", []int{1}, nil), extracoords.ErrNilTable)
	assert.ErrorIs(t, r.Add("time", []int{0, 1}, tab4), coord.ErrRankMismatch,
		"one-axis table cannot govern two axes")
	assert.ErrorIs(t, r.Add("time", []int{2}, tab4), extracoords.ErrAxisOutOfRange)
	assert.ErrorIs(t, r.Add("time", []int{0}, tab4), extracoords.ErrLengthMismatch,
		"4 entries cannot govern an extent-3 axis")

	require.NoError(t, r.Add("time", []int{1}, tab4))
	assert.ErrorIs(t, r.Add("time", []int{1}, tab4), extracoords.ErrDuplicateName)

	_, err = extracoords.NewRegistry([]int{-1})
	assert.ErrorIs(t, err, extracoords.ErrBadShape)
}

// TestGet verifies lookup and the NotFound failure.
func TestGet(t *testing.T) {
	r, err := extracoords.NewRegistry([]int{3, 4})
	require.NoError(t, err)
	require.NoError(t, r.Add("time", []int{1}, mustTable(t, timeAxis, []float64{0, 10, 20, 30})))

	c, err := r.Get("time")
	require.NoError(t, err)
	assert.Equal(t, "time", c.Name())
	assert.Equal(t, []int{1}, c.AxisIndices())
	assert.False(t, c.IsScalar())

	_, err = r.Get("missing")
	assert.ErrorIs(t, err, extracoords.ErrNotFound)
}

// TestCoordinate_At verifies evaluation at a cube pixel position.
func TestCoordinate_At(t *testing.T) {
	r, err := extracoords.NewRegistry([]int{3, 4})
	require.NoError(t, err)
	require.NoError(t, r.Add("time", []int{1}, mustTable(t, timeAxis, []float64{0, 10, 20, 30})))

	c, err := r.Get("time")
	require.NoError(t, err)

	v, err := c.At([]float64{2, 1.5}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{15}, v, "governed by cube axis 1 only")

	_, err = c.At([]float64{1}, 2)
	assert.ErrorIs(t, err, coord.ErrRankMismatch)
}

// TestSlice_SubRange verifies tables re-slice in lockstep with the
// cube and unaffected entries pass through.
func TestSlice_SubRange(t *testing.T) {
	r, err := extracoords.NewRegistry([]int{3, 4})
	require.NoError(t, err)
	require.NoError(t, r.Add("time", []int{1}, mustTable(t, timeAxis, []float64{0, 10, 20, 30})))
	require.NoError(t, r.Add("scan", []int{0}, mustTable(t, expAxis, []float64{1, 2, 3})))

	sub, err := r.Slice(slicing.Spec{slicing.All(), slicing.Range(1, 4, 1)})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, sub.Shape())
	assert.Equal(t, []string{"time", "scan"}, sub.Names())

	c, err := sub.Get("time")
	require.NoError(t, err)
	v, err := c.At([]float64{0, 0}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{10}, v, "index 0 of the sliced table is old index 1")

	// Original registry untouched.
	c, err = r.Get("time")
	require.NoError(t, err)
	v, err = c.At([]float64{0, 0}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, v)
}

// TestSlice_CollapseRetainsScalar verifies the spec's retention rule:
// collapsing the sole governing axis keeps the entry queryable as a
// pinned scalar.
func TestSlice_CollapseRetainsScalar(t *testing.T) {
	r, err := extracoords.NewRegistry([]int{3, 4})
	require.NoError(t, err)
	require.NoError(t, r.Add("time", []int{1}, mustTable(t, timeAxis, []float64{0, 10, 20, 30})))

	sub, err := r.Slice(slicing.Spec{slicing.All(), slicing.At(2)})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, sub.Shape())

	c, err := sub.Get("time")
	require.NoError(t, err, "collapsed coordinates are retained, not dropped")
	assert.True(t, c.IsScalar())
	assert.Equal(t, []float64{20}, c.ScalarValues())
	assert.Equal(t, "time", c.WorldAxes()[0].Name, "metadata survives the collapse")

	v, err := c.At([]float64{1}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{20}, v, "scalar value regardless of position")

	// Slicing again keeps the scalar riding along.
	again, err := sub.Slice(slicing.Spec{slicing.At(0)})
	require.NoError(t, err)
	c, err = again.Get("time")
	require.NoError(t, err)
	assert.Equal(t, []float64{20}, c.ScalarValues())
}

// TestSlice_AxisRenumbering verifies surviving governing axes are
// renumbered when earlier cube axes are dropped.
func TestSlice_AxisRenumbering(t *testing.T) {
	r, err := extracoords.NewRegistry([]int{3, 4})
	require.NoError(t, err)
	require.NoError(t, r.Add("time", []int{1}, mustTable(t, timeAxis, []float64{0, 10, 20, 30})))

	sub, err := r.Slice(slicing.Spec{slicing.At(0), slicing.All()})
	require.NoError(t, err)
	assert.Equal(t, []int{4}, sub.Shape())

	c, err := sub.Get("time")
	require.NoError(t, err)
	assert.Equal(t, []int{0}, c.AxisIndices(), "cube axis 1 became axis 0")

	v, err := c.At([]float64{3}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{30}, v)
}

// TestSlice_JointEntry verifies a joint two-axis entry under a mixed
// collapse/sub-range spec: full coupling keeps both world axes.
func TestSlice_JointEntry(t *testing.T) {
	lat := coord.WorldAxis{Name: "lat", Unit: "deg"}
	lon := coord.WorldAxis{Name: "lon", Unit: "deg"}
	joint, err := lut.NewJoint([]coord.WorldAxis{lat, lon},
		[][]float64{{0, 1, 2}, {10, 11, 12}}, nil)
	require.NoError(t, err)

	r, err := extracoords.NewRegistry([]int{3, 3})
	require.NoError(t, err)
	require.NoError(t, r.Add("sky", []int{0, 1}, joint))

	sub, err := r.Slice(slicing.Spec{slicing.At(1), slicing.All()})
	require.NoError(t, err)

	c, err := sub.Get("sky")
	require.NoError(t, err)
	assert.False(t, c.IsScalar(), "one governing axis survives")
	assert.Equal(t, []int{0}, c.AxisIndices())
	require.NotNil(t, c.Transform())
	assert.Equal(t, 2, c.Transform().WorldN(), "conservative coupling keeps both world axes")

	v, err := c.At([]float64{2}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 12}, v)
}
