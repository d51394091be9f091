package grid_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/plus3/cubefall/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyRoundTrip(t *testing.T) {
	cells := []grid.Cell{
		{0, 0, 0},
		{-3, 0, -3},
		{2, 19, 2},
		{-1, -1, -1},
		{1 << 19, -(1 << 19), 12345},
	}

	for _, c := range cells {
		t.Run(c.String(), func(t *testing.T) {
			assert.Equal(t, c, grid.KeyOf(c).Cell())
		})
	}

	assert.NotEqual(t, grid.KeyOf(grid.Cell{1, 0, 0}), grid.KeyOf(grid.Cell{0, 1, 0}))
	assert.NotEqual(t, grid.KeyOf(grid.Cell{0, 0, 1}), grid.KeyOf(grid.Cell{0, 1, 0}))
}

func TestBoundsAdmits(t *testing.T) {
	b := grid.DefaultBounds

	tests := []struct {
		cell grid.Cell
		want bool
	}{
		{grid.Cell{0, 0, 0}, true},
		{grid.Cell{-3, 0, -3}, true},
		{grid.Cell{2, 0, 2}, true},
		{grid.Cell{3, 0, 0}, false},
		{grid.Cell{-4, 0, 0}, false},
		{grid.Cell{0, 0, 3}, false},
		{grid.Cell{0, 0, -4}, false},
		{grid.Cell{0, -1, 0}, false},
		// no ceiling
		{grid.Cell{0, 25, 0}, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.cell), func(t *testing.T) {
			assert.Equal(t, tt.want, b.Admits(tt.cell))
		})
	}

	assert.Equal(t, 36, b.LayerSize())
}

func TestOccupancyAddRemove(t *testing.T) {
	occ := grid.NewOccupancy(16)
	c := grid.Cell{1, 2, -1}

	assert.False(t, occ.Contains(c))
	assert.True(t, occ.Add(c))
	assert.True(t, occ.Contains(c))
	assert.Equal(t, 1, occ.Len())
	assert.Equal(t, 1, occ.LayerCount(2))

	// duplicates are rejected
	assert.False(t, occ.Add(c))
	assert.Equal(t, 1, occ.Len())
	assert.Equal(t, 1, occ.LayerCount(2))

	assert.True(t, occ.Remove(c))
	assert.False(t, occ.Remove(c))
	assert.False(t, occ.Contains(c))
	assert.Equal(t, 0, occ.Len())
	assert.Equal(t, 0, occ.LayerCount(2))
}

func TestOccupancyOrigin(t *testing.T) {
	// The origin must not collide with intmap's zero key handling.
	occ := grid.NewOccupancy(4)
	require.True(t, occ.Add(grid.Cell{}))
	assert.True(t, occ.Contains(grid.Cell{}))
	assert.False(t, occ.Contains(grid.Cell{0, 1, 0}))
}

func TestOccupancyShiftDown(t *testing.T) {
	occ := grid.NewOccupancy(16)
	occ.Add(grid.Cell{0, 0, 0})
	occ.Add(grid.Cell{0, 2, 0})
	occ.Add(grid.Cell{1, 3, 0})
	occ.Add(grid.Cell{1, 4, 0})

	occ.ShiftDown(1)

	assert.True(t, occ.Contains(grid.Cell{0, 0, 0}))
	assert.True(t, occ.Contains(grid.Cell{0, 1, 0}))
	assert.True(t, occ.Contains(grid.Cell{1, 2, 0}))
	assert.True(t, occ.Contains(grid.Cell{1, 3, 0}))
	assert.False(t, occ.Contains(grid.Cell{1, 4, 0}))
	assert.Equal(t, 4, occ.Len())

	assert.Equal(t, 1, occ.LayerCount(0))
	assert.Equal(t, 1, occ.LayerCount(1))
	assert.Equal(t, 1, occ.LayerCount(2))
	assert.Equal(t, 1, occ.LayerCount(3))
	assert.Equal(t, 0, occ.LayerCount(4))
}

func TestOccupancyLayerAndAll(t *testing.T) {
	occ := grid.NewOccupancy(16)
	want := []grid.Cell{{-1, 5, 0}, {0, 5, 0}, {2, 5, -2}}
	for _, c := range want {
		occ.Add(c)
	}
	occ.Add(grid.Cell{0, 6, 0})

	cmp := func(a, b grid.Cell) int {
		if a.X != b.X {
			return a.X - b.X
		}
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.Z - b.Z
	}

	layer := occ.Layer(5)
	slices.SortFunc(layer, cmp)
	assert.Equal(t, want, layer)
	assert.Nil(t, occ.Layer(7))

	all := slices.Collect(occ.All())
	assert.Len(t, all, 4)

	occ.Clear()
	assert.Equal(t, 0, occ.Len())
	assert.Equal(t, 0, occ.LayerCount(5))
	assert.Empty(t, slices.Collect(occ.All()))
}
