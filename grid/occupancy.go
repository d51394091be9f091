package grid

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// Occupancy is the set of permanently placed cubes. It is the only source of
// truth for which cells are filled. A coordinate is stored at most once.
type Occupancy struct {
	cells  *intmap.Set[Key]
	layers *intmap.Map[int, int]
}

// NewOccupancy creates an empty store sized for roughly capacity cubes.
func NewOccupancy(capacity int) *Occupancy {
	return &Occupancy{
		cells:  intmap.NewSet[Key](capacity),
		layers: intmap.New[int, int](64),
	}
}

// Contains reports whether a cube is placed at c.
func (o *Occupancy) Contains(c Cell) bool {
	return o.cells.Has(KeyOf(c))
}

// Add places a cube at c. Returns false if the cell was already occupied,
// in which case nothing changes.
func (o *Occupancy) Add(c Cell) bool {
	if !o.cells.Add(KeyOf(c)) {
		return false
	}
	n, _ := o.layers.Get(c.Y)
	o.layers.Put(c.Y, n+1)
	return true
}

// Remove deletes the cube at c. Returns false if the cell was empty.
func (o *Occupancy) Remove(c Cell) bool {
	if !o.cells.Del(KeyOf(c)) {
		return false
	}
	n, _ := o.layers.Get(c.Y)
	if n <= 1 {
		o.layers.Del(c.Y)
	} else {
		o.layers.Put(c.Y, n-1)
	}
	return true
}

// ShiftDown lowers every cube with y > aboveY by one cell. Layer aboveY is
// expected to be empty; a cube dropped onto an occupied cell merges into it.
func (o *Occupancy) ShiftDown(aboveY int) {
	moving := make([]Cell, 0, o.cells.Len())
	o.cells.ForEach(func(k Key) bool {
		if c := k.Cell(); c.Y > aboveY {
			moving = append(moving, c)
		}
		return true
	})

	for _, c := range moving {
		o.Remove(c)
	}
	for _, c := range moving {
		c.Y--
		o.Add(c)
	}
}

// LayerCount returns the number of cubes at height y.
func (o *Occupancy) LayerCount(y int) int {
	n, _ := o.layers.Get(y)
	return n
}

// Layer returns the cubes at height y in no particular order.
func (o *Occupancy) Layer(y int) []Cell {
	n := o.LayerCount(y)
	if n == 0 {
		return nil
	}
	out := make([]Cell, 0, n)
	o.cells.ForEach(func(k Key) bool {
		if c := k.Cell(); c.Y == y {
			out = append(out, c)
		}
		return len(out) < n
	})
	return out
}

// Len returns the number of placed cubes.
func (o *Occupancy) Len() int {
	return o.cells.Len()
}

// All iterates over every placed cube. The store must not be mutated while iterating.
func (o *Occupancy) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for k := range o.cells.All() {
			if !yield(k.Cell()) {
				return
			}
		}
	}
}

// Clear removes every cube.
func (o *Occupancy) Clear() {
	o.cells.Clear()
	o.layers.Clear()
}
