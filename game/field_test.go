package game_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/grid"
	"github.com/plus3/cubefall/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillLayer(occ *grid.Occupancy, b grid.Bounds, y int, skip ...grid.Cell) {
	for x := b.MinX(); x < b.MaxX(); x++ {
		for z := b.MinZ(); z < b.MaxZ(); z++ {
			c := grid.Cell{X: x, Y: y, Z: z}
			if slices.Contains(skip, c) {
				continue
			}
			occ.Add(c)
		}
	}
}

func sortedCells(seq func(func(grid.Cell) bool)) []grid.Cell {
	out := slices.Collect(seq)
	slices.SortFunc(out, func(a, b grid.Cell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		if a.X != b.X {
			return a.X - b.X
		}
		return a.Z - b.Z
	})
	return out
}

func TestFieldIsValid(t *testing.T) {
	field := game.NewField(grid.DefaultBounds)
	field.Occupancy().Add(grid.Cell{X: 0, Y: 5, Z: 0})

	tests := []struct {
		name  string
		piece piece.Piece
		want  bool
	}{
		{"spawn", piece.Spawn(piece.I, grid.DefaultBounds), true},
		{"left wall", piece.Piece{Kind: piece.I, Pivot: grid.Cell{X: -2, Y: 10}}, true},
		{"through left wall", piece.Piece{Kind: piece.I, Pivot: grid.Cell{X: -3, Y: 10}}, false},
		{"through right wall", piece.Piece{Kind: piece.I, Pivot: grid.Cell{X: 1, Y: 10}}, false},
		{"front wall", piece.Piece{Kind: piece.T, Pivot: grid.Cell{Y: 10, Z: -3}}, true},
		{"through front wall", piece.Piece{Kind: piece.T, Pivot: grid.Cell{Y: 10, Z: -4}}, false},
		{"through back wall", piece.Piece{Kind: piece.T, Pivot: grid.Cell{Y: 10, Z: 3}}, false},
		{"resting on floor", piece.Piece{Kind: piece.T, Pivot: grid.Cell{Y: 1}}, true},
		{"through floor", piece.Piece{Kind: piece.T, Pivot: grid.Cell{Y: 0}}, false},
		{"overlapping a cube", piece.Piece{Kind: piece.O, Pivot: grid.Cell{Y: 6}}, false},
		{"above a cube", piece.Piece{Kind: piece.O, Pivot: grid.Cell{Y: 7}}, true},
		{"above the ceiling", piece.Piece{Kind: piece.O, Pivot: grid.Cell{Y: 40}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, field.IsValid(tt.piece))
		})
	}
}

func TestFieldGhost(t *testing.T) {
	t.Run("empty field lands on the floor", func(t *testing.T) {
		field := game.NewField(grid.DefaultBounds)
		ghost := field.Ghost(piece.Spawn(piece.O, grid.DefaultBounds))
		assert.Equal(t, grid.Cell{X: 0, Y: 1, Z: 0}, ghost.Pivot)
	})

	t.Run("lands on the stack", func(t *testing.T) {
		field := game.NewField(grid.DefaultBounds)
		field.Occupancy().Add(grid.Cell{X: 1, Y: 7, Z: 0})
		ghost := field.Ghost(piece.Spawn(piece.O, grid.DefaultBounds))
		assert.Equal(t, grid.Cell{X: 0, Y: 9, Z: 0}, ghost.Pivot)
	})

	t.Run("keeps orientation and column", func(t *testing.T) {
		field := game.NewField(grid.DefaultBounds)
		p := piece.Spawn(piece.L, grid.DefaultBounds).Translate(-1, 0, 2).Rotate(piece.AxisY, piece.Positive)
		ghost := field.Ghost(p)
		assert.Equal(t, p.Orientation, ghost.Orientation)
		assert.Equal(t, p.Pivot.X, ghost.Pivot.X)
		assert.Equal(t, p.Pivot.Z, ghost.Pivot.Z)
		assert.False(t, field.IsValid(ghost.Translate(0, -1, 0)))
	})

	t.Run("already resting", func(t *testing.T) {
		field := game.NewField(grid.DefaultBounds)
		p := piece.Piece{Kind: piece.T, Pivot: grid.Cell{Y: 1}}
		assert.Equal(t, p, field.Ghost(p))
	})
}

func TestLayerScore(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{0, 0},
		{1, 100},
		{2, 600},
		{3, 1100},
		{4, 1600},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d lines", tt.lines), func(t *testing.T) {
			assert.Equal(t, tt.want, game.LayerScore(tt.lines))
		})
	}
}

func TestClearFullLayersNoop(t *testing.T) {
	b := grid.DefaultBounds
	field := game.NewField(b)
	fillLayer(field.Occupancy(), b, 0, grid.Cell{X: 2, Y: 0, Z: 2})
	field.Occupancy().Add(grid.Cell{X: 0, Y: 1, Z: 0})
	before := sortedCells(field.Occupancy().All())

	for i := 0; i < 2; i++ {
		result := field.ClearFullLayers()
		assert.Equal(t, 0, result.Lines())
		assert.Equal(t, 0, result.Score)
		assert.Empty(t, result.Layers)
		assert.Equal(t, before, sortedCells(field.Occupancy().All()))
	}
}

func TestClearLastCellOfLayer(t *testing.T) {
	b := grid.DefaultBounds
	field := game.NewField(b)
	occ := field.Occupancy()

	last := grid.Cell{X: 2, Y: 3, Z: 2}
	fillLayer(occ, b, 3, last)
	require.Equal(t, 35, occ.LayerCount(3))
	occ.Add(grid.Cell{X: -3, Y: 5, Z: 1})

	// An L whose foot is the missing cell.
	l := piece.Piece{Kind: piece.L, Pivot: grid.Cell{X: 1, Y: 4, Z: 2}}
	require.True(t, field.IsValid(l))
	cells, toppedOut := field.Lock(l)
	require.False(t, toppedOut)
	require.Contains(t, cells, last)
	require.Equal(t, 36, occ.LayerCount(3))

	result := field.ClearFullLayers()
	assert.Equal(t, 1, result.Lines())
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, []int{3}, result.Layers)

	want := []grid.Cell{
		{X: 0, Y: 3, Z: 2},
		{X: 1, Y: 3, Z: 2},
		{X: 2, Y: 3, Z: 2},
		{X: -3, Y: 4, Z: 1},
	}
	assert.Equal(t, want, sortedCells(occ.All()))
}

func TestClearStackedLayers(t *testing.T) {
	b := grid.DefaultBounds
	field := game.NewField(b)
	occ := field.Occupancy()
	for y := 0; y < 4; y++ {
		fillLayer(occ, b, y)
	}
	occ.Add(grid.Cell{X: 1, Y: 4, Z: -2})

	result := field.ClearFullLayers()
	assert.Equal(t, []int{0, 0, 0, 0}, result.Layers)
	assert.Equal(t, 1600, result.Score)
	assert.Equal(t, []grid.Cell{{X: 1, Y: 0, Z: -2}}, sortedCells(occ.All()))
}

func TestClearSeparatedLayers(t *testing.T) {
	b := grid.DefaultBounds
	field := game.NewField(b)
	occ := field.Occupancy()
	occ.Add(grid.Cell{X: 0, Y: 0, Z: 0})
	fillLayer(occ, b, 1)
	occ.Add(grid.Cell{X: 0, Y: 2, Z: 0})
	fillLayer(occ, b, 3)
	occ.Add(grid.Cell{X: 0, Y: 4, Z: 0})

	result := field.ClearFullLayers()
	assert.Equal(t, []int{1, 2}, result.Layers)
	assert.Equal(t, 600, result.Score)
	assert.Equal(t, []grid.Cell{
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 2, Z: 0},
	}, sortedCells(occ.All()))
}

func TestLockTopOut(t *testing.T) {
	field := game.NewField(grid.DefaultBounds)
	assert.Equal(t, 19, field.TopOutRow())

	_, toppedOut := field.Lock(piece.Piece{Kind: piece.O, Pivot: grid.Cell{Y: 18}})
	assert.False(t, toppedOut, "cells at 17 and 18 stay below the top-out row")

	field.Reset()
	_, toppedOut = field.Lock(piece.Piece{Kind: piece.O, Pivot: grid.Cell{Y: 19}})
	assert.True(t, toppedOut)
	assert.Equal(t, 4, field.Occupancy().Len(), "cubes are placed even when topping out")
}
