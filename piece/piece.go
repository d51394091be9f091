package piece

import "github.com/plus3/cubefall/grid"

// Piece is a block kind placed in the field. The pivot sits at the centre of
// cell Pivot; every cube lands on Pivot plus its rotated offset.
type Piece struct {
	Kind        Kind
	Pivot       grid.Cell
	Orientation Orientation
}

// Spawn places kind at the top-centre of the field, just under the ceiling.
// Its world position is (0.5, Height-1.5, 0.5).
func Spawn(kind Kind, b grid.Bounds) Piece {
	return Piece{
		Kind:  kind,
		Pivot: grid.Cell{X: 0, Y: b.Height - 2, Z: 0},
	}
}

// Cells returns the four occupied cells.
func (p Piece) Cells() [4]grid.Cell {
	shape := p.Kind.Shape()
	var out [4]grid.Cell
	for i, off := range shape.Offsets {
		out[i] = p.Pivot.Add(p.Orientation.Apply(off))
	}
	return out
}

// Translate returns p moved by the given number of cells.
func (p Piece) Translate(dx, dy, dz int) Piece {
	p.Pivot = p.Pivot.Add(grid.Cell{X: dx, Y: dy, Z: dz})
	return p
}

// Rotate returns p turned a quarter about one of its local axes.
func (p Piece) Rotate(axis Axis, dir Direction) Piece {
	p.Orientation = p.Orientation.Rotate(axis, dir)
	return p
}

// Position is the pivot in world space.
func (p Piece) Position() grid.Vec3 {
	return p.Pivot.Center()
}
