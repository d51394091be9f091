package game

import (
	"github.com/plus3/cubefall/grid"
	"github.com/plus3/cubefall/piece"
)

// LockBonus is awarded for every piece that locks without topping out.
const LockBonus = 10

// Field pairs the field bounds with the placed-cube store and implements the
// collision, ghost, lock and layer-clear rules on top of them.
type Field struct {
	bounds grid.Bounds
	occ    *grid.Occupancy
}

// NewField returns an empty field.
func NewField(b grid.Bounds) *Field {
	return &Field{
		bounds: b,
		occ:    grid.NewOccupancy(b.LayerSize() * b.Height),
	}
}

func (f *Field) Bounds() grid.Bounds { return f.bounds }

// Occupancy exposes the placed-cube store.
func (f *Field) Occupancy() *grid.Occupancy { return f.occ }

// TopOutRow is the lowest row at which a locked cube ends the session.
func (f *Field) TopOutRow() int { return f.bounds.Height - 1 }

// IsValid reports whether every cube of p is inside the walls, above the
// floor and not on a placed cube. Cubes above the ceiling are allowed.
func (f *Field) IsValid(p piece.Piece) bool {
	for _, c := range p.Cells() {
		if !f.bounds.Admits(c) || f.occ.Contains(c) {
			return false
		}
	}
	return true
}

// Ghost returns p dropped straight down as far as it can go. The search ends
// at the floor at the latest, so it is bounded by the pivot height.
func (f *Field) Ghost(p piece.Piece) piece.Piece {
	for {
		below := p.Translate(0, -1, 0)
		if !f.IsValid(below) {
			return p
		}
		p = below
	}
}

// Lock writes the cubes of p into the store and reports whether any of them
// reached the top-out row.
func (f *Field) Lock(p piece.Piece) (cells [4]grid.Cell, toppedOut bool) {
	cells = p.Cells()
	for _, c := range cells {
		f.occ.Add(c)
		if c.Y >= f.TopOutRow() {
			toppedOut = true
		}
	}
	return cells, toppedOut
}

// ClearResult describes one layer-clearing pass.
type ClearResult struct {
	// Layers holds the height of each removed layer at the moment it was
	// removed. Stacked full layers collapse into the same index, so two
	// full layers at 3 and 4 are reported as [3, 3].
	Layers []int
	Score  int
}

// Lines is the number of layers removed.
func (r ClearResult) Lines() int {
	return len(r.Layers)
}

// LayerScore is the award for clearing n layers in one pass. The -400 applies
// once per pass, not per layer: 1 -> 100, 2 -> 600, 3 -> 1100, 4 -> 1600.
func LayerScore(n int) int {
	if n <= 0 {
		return 0
	}
	return n*500 - 400
}

// ClearFullLayers removes every complete layer and drops the cubes above it.
// After a removal the same height is inspected again, since the layer above
// has moved into it.
func (f *Field) ClearFullLayers() ClearResult {
	var result ClearResult
	full := f.bounds.LayerSize()

	for y := 0; y < f.bounds.Height; {
		if f.occ.LayerCount(y) != full {
			y++
			continue
		}
		for _, c := range f.occ.Layer(y) {
			f.occ.Remove(c)
		}
		f.occ.ShiftDown(y)
		result.Layers = append(result.Layers, y)
	}

	result.Score = LayerScore(result.Lines())
	return result
}

// Reset empties the store.
func (f *Field) Reset() {
	f.occ.Clear()
}
