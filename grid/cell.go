// Package grid models the playing field as a lattice of unit cubes.
// A Cell names one cube by integer coordinates; y is vertical with 0 as the floor.
package grid

import "fmt"

// Cell is an integer lattice coordinate. The cube at Cell c occupies the space
// whose centre is c + 0.5 on every axis.
type Cell struct {
	X, Y, Z int
}

// Add returns the component-wise sum of two cells.
func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Center returns the world-space centre of the cube at c.
func (c Cell) Center() Vec3 {
	return Vec3{X: float64(c.X) + 0.5, Y: float64(c.Y) + 0.5, Z: float64(c.Z) + 0.5}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Vec3 is a world-space position, used only when reporting to renderers.
type Vec3 struct {
	X, Y, Z float64
}

// Key packs a Cell into a single integer so it can live in an intmap.
// Each axis gets 21 bits with a bias, which covers coordinates in [-2^20, 2^20).
type Key uint64

const (
	keyBits = 21
	keyBias = 1 << (keyBits - 1)
	keyMask = 1<<keyBits - 1
)

// KeyOf returns the packed key for c.
func KeyOf(c Cell) Key {
	x := uint64(c.X+keyBias) & keyMask
	y := uint64(c.Y+keyBias) & keyMask
	z := uint64(c.Z+keyBias) & keyMask
	return Key(x<<(2*keyBits) | y<<keyBits | z)
}

// Cell unpacks the key.
func (k Key) Cell() Cell {
	return Cell{
		X: int(uint64(k)>>(2*keyBits)&keyMask) - keyBias,
		Y: int(uint64(k)>>keyBits&keyMask) - keyBias,
		Z: int(uint64(k)&keyMask) - keyBias,
	}
}

// Bounds describes the field footprint. The field is centred on the origin in x
// and z, so valid x lie in [-Width/2, Width/2) and valid z in [-Depth/2, Depth/2).
// Height is the nominal ceiling; it is not a collision boundary.
type Bounds struct {
	Width  int
	Depth  int
	Height int
}

// DefaultBounds is the 6x6x20 field.
var DefaultBounds = Bounds{Width: 6, Depth: 6, Height: 20}

func (b Bounds) MinX() int { return -b.Width / 2 }
func (b Bounds) MaxX() int { return b.Width / 2 }
func (b Bounds) MinZ() int { return -b.Depth / 2 }
func (b Bounds) MaxZ() int { return b.Depth / 2 }

// LayerSize is the number of cells in one horizontal layer.
func (b Bounds) LayerSize() int {
	return b.Width * b.Depth
}

// Admits reports whether c lies inside the walls and above the floor.
// There is deliberately no ceiling test.
func (b Bounds) Admits(c Cell) bool {
	if c.X < b.MinX() || c.X >= b.MaxX() {
		return false
	}
	if c.Z < b.MinZ() || c.Z >= b.MaxZ() {
		return false
	}
	return c.Y >= 0
}
