package piece_test

import (
	"slices"
	"testing"

	"github.com/plus3/cubefall/grid"
	"github.com/plus3/cubefall/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var axes = []piece.Axis{piece.AxisX, piece.AxisY, piece.AxisZ}

func cellSet(cells [4]grid.Cell) map[grid.Cell]bool {
	set := make(map[grid.Cell]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return set
}

func TestCatalog(t *testing.T) {
	for _, k := range piece.Kinds {
		t.Run(k.String(), func(t *testing.T) {
			shape := k.Shape()
			assert.Equal(t, grid.Cell{}, shape.Offsets[0], "first offset is the pivot")
			assert.Len(t, cellSet(shape.Offsets), 4, "offsets are distinct")
			assert.Equal(t, uint8(0xff), shape.Color.A)

			parsed, err := piece.ParseKind(k.String())
			require.NoError(t, err)
			assert.Equal(t, k, parsed)
		})
	}

	_, err := piece.ParseKind("Q")
	assert.Error(t, err)
	assert.False(t, piece.Kind(7).Valid())
	assert.Panics(t, func() { piece.Kind(9).Shape() })
}

func TestOrientationGroup(t *testing.T) {
	seen := map[[3][3]int]bool{}
	frontier := []piece.Orientation{0}
	visited := map[piece.Orientation]bool{0: true}

	for len(frontier) > 0 {
		o := frontier[0]
		frontier = frontier[1:]
		seen[o.Matrix()] = true
		for _, axis := range axes {
			for _, dir := range []piece.Direction{piece.Positive, piece.Negative} {
				next := o.Rotate(axis, dir)
				if !visited[next] {
					visited[next] = true
					frontier = append(frontier, next)
				}
			}
		}
	}

	assert.Len(t, seen, 24)
	assert.Equal(t, [3][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, piece.Orientation(0).Matrix())
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, k := range piece.Kinds {
		for _, axis := range axes {
			for _, dir := range []piece.Direction{piece.Positive, piece.Negative} {
				start := piece.Piece{Kind: k, Pivot: grid.Cell{X: 0, Y: 10, Z: 0}}
				// A non-trivial starting orientation exercises composition too.
				start = start.Rotate(piece.AxisX, piece.Positive).Rotate(piece.AxisY, piece.Positive)

				p := start
				for i := 0; i < 4; i++ {
					p = p.Rotate(axis, dir)
				}

				assert.Equal(t, start.Orientation, p.Orientation)
				assert.Equal(t, cellSet(start.Cells()), cellSet(p.Cells()))
			}
		}
	}
}

func TestRotateInverse(t *testing.T) {
	o := piece.Orientation(0).Rotate(piece.AxisX, piece.Positive).Rotate(piece.AxisY, piece.Positive)
	for _, axis := range axes {
		assert.Equal(t, o, o.Rotate(axis, piece.Positive).Rotate(axis, piece.Negative))
	}
}

func TestRotateNonCommutative(t *testing.T) {
	// X then Y then -X is not the same as a plain Y turn.
	o := piece.Orientation(0).
		Rotate(piece.AxisX, piece.Positive).
		Rotate(piece.AxisY, piece.Positive).
		Rotate(piece.AxisX, piece.Negative)
	y := piece.Orientation(0).Rotate(piece.AxisY, piece.Positive)
	assert.NotEqual(t, y.Matrix(), o.Matrix())
}

func TestRotateInvalid(t *testing.T) {
	o := piece.Orientation(0).Rotate(piece.AxisZ, piece.Positive)
	assert.Equal(t, o, o.Rotate(piece.Axis(5), piece.Positive))
	assert.Equal(t, o, o.Rotate(piece.AxisX, piece.Direction(0)))
	assert.Equal(t, o, o.Rotate(piece.AxisX, piece.Direction(2)))
}

func TestIRotatedAboutZStandsUp(t *testing.T) {
	p := piece.Piece{Kind: piece.I, Pivot: grid.Cell{X: 0, Y: 18, Z: 0}}.Rotate(piece.AxisZ, piece.Positive)

	cells := p.Cells()
	ys := make([]int, 0, 4)
	for _, c := range cells {
		assert.Equal(t, 0, c.X)
		assert.Equal(t, 0, c.Z)
		ys = append(ys, c.Y)
	}
	slices.Sort(ys)
	assert.Equal(t, []int{17, 18, 19, 20}, ys)
}

func TestSpawn(t *testing.T) {
	p := piece.Spawn(piece.O, grid.DefaultBounds)

	assert.Equal(t, grid.Vec3{X: 0.5, Y: 18.5, Z: 0.5}, p.Position())
	assert.Equal(t, cellSet([4]grid.Cell{{X: 0, Y: 18, Z: 0}, {X: 1, Y: 18, Z: 0}, {X: 0, Y: 17, Z: 0}, {X: 1, Y: 17, Z: 0}}), cellSet(p.Cells()))
}

func TestTranslate(t *testing.T) {
	p := piece.Spawn(piece.T, grid.DefaultBounds)
	moved := p.Translate(1, -2, -1)

	assert.Equal(t, grid.Cell{X: 1, Y: 16, Z: -1}, moved.Pivot)
	assert.Equal(t, grid.Cell{X: 0, Y: 18, Z: 0}, p.Pivot, "value receiver leaves the original untouched")
}

func TestParseAxis(t *testing.T) {
	for _, axis := range axes {
		parsed, err := piece.ParseAxis(axis.String())
		require.NoError(t, err)
		assert.Equal(t, axis, parsed)
	}
	_, err := piece.ParseAxis("w")
	assert.Error(t, err)
}
