package piece

import (
	"fmt"

	"github.com/plus3/cubefall/grid"
)

// Axis is a rotation axis.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) Valid() bool { return a <= AxisZ }

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", a)
	}
}

// ParseAxis accepts "x", "y" or "z" in either case.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	case "z", "Z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("piece: unknown axis %q", s)
}

// Direction is the sense of a quarter turn. Positive is counter-clockwise when
// looking down the axis towards the origin (right-hand rule).
type Direction int8

const (
	Positive Direction = 1
	Negative Direction = -1
)

func (d Direction) Valid() bool { return d == Positive || d == Negative }

// Orientation is one of the 24 rotations that map the cube lattice onto itself.
// The zero value is the identity. Orientations are table indices, so composing
// any number of quarter turns is exact.
type Orientation uint8

type matrix [3][3]int

// orientationCount is the order of the rotation group of the cube.
const orientationCount = 24

var (
	matrices [orientationCount]matrix
	// turns[o][axis][0] is o followed by a positive quarter turn about axis,
	// turns[o][axis][1] the negative one.
	turns [orientationCount][3][2]Orientation
)

var generators = [3][2]matrix{
	AxisX: {
		{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
		{{1, 0, 0}, {0, 0, 1}, {0, -1, 0}},
	},
	AxisY: {
		{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}},
		{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}},
	},
	AxisZ: {
		{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
		{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}},
	},
}

func init() {
	identity := matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	index := map[matrix]Orientation{identity: 0}
	matrices[0] = identity

	// Breadth-first closure of the identity under the six quarter turns.
	queue := []Orientation{0}
	for len(queue) > 0 {
		o := queue[0]
		queue = queue[1:]
		for axis := range generators {
			for sense, g := range generators[axis] {
				// Turns are about the piece's local axes, so they compose on the right.
				m := mul(matrices[o], g)
				next, ok := index[m]
				if !ok {
					next = Orientation(len(index))
					index[m] = next
					matrices[next] = m
					queue = append(queue, next)
				}
				turns[o][axis][sense] = next
			}
		}
	}

	if len(index) != orientationCount {
		panic(fmt.Sprintf("piece: rotation closure has %d elements", len(index)))
	}
}

func mul(a, b matrix) matrix {
	var out matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return out
}

// Rotate returns o followed by a quarter turn about axis. An invalid axis or
// direction returns o unchanged.
func (o Orientation) Rotate(axis Axis, dir Direction) Orientation {
	if !axis.Valid() || !dir.Valid() || int(o) >= orientationCount {
		return o
	}
	sense := 0
	if dir == Negative {
		sense = 1
	}
	return turns[o][axis][sense]
}

// Apply rotates an offset.
func (o Orientation) Apply(c grid.Cell) grid.Cell {
	m := matrices[o%orientationCount]
	return grid.Cell{
		X: m[0][0]*c.X + m[0][1]*c.Y + m[0][2]*c.Z,
		Y: m[1][0]*c.X + m[1][1]*c.Y + m[1][2]*c.Z,
		Z: m[2][0]*c.X + m[2][1]*c.Y + m[2][2]*c.Z,
	}
}

// Matrix returns the rotation as a row-major integer matrix.
func (o Orientation) Matrix() [3][3]int {
	return matrices[o%orientationCount]
}

func (o Orientation) String() string {
	m := o.Matrix()
	return fmt.Sprintf("%v", m)
}
