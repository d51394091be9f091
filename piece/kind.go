// Package piece defines the seven falling block kinds, their discrete
// orientations and the value type for a piece positioned in the field.
package piece

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/plus3/cubefall/grid"
)

// Kind identifies one of the seven block shapes.
type Kind uint8

const (
	I Kind = iota
	L
	J
	T
	S
	Z
	O
)

// Kinds lists every kind in catalog order.
var Kinds = [...]Kind{I, L, J, T, S, Z, O}

// Shape is an immutable catalog entry: four cube offsets relative to the pivot.
type Shape struct {
	Offsets [4]grid.Cell
	Color   color.RGBA
}

var catalog = [...]Shape{
	I: {
		Offsets: [4]grid.Cell{{X: 0, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}},
		Color:   color.RGBA{0x00, 0xff, 0xff, 0xff},
	},
	L: {
		Offsets: [4]grid.Cell{{X: 0, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: -1, Z: 0}},
		Color:   color.RGBA{0xff, 0xa5, 0x00, 0xff},
	},
	J: {
		Offsets: [4]grid.Cell{{X: 0, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: -1, Y: -1, Z: 0}},
		Color:   color.RGBA{0x00, 0x00, 0xff, 0xff},
	},
	T: {
		Offsets: [4]grid.Cell{{X: 0, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: -1, Z: 0}},
		Color:   color.RGBA{0x80, 0x00, 0x80, 0xff},
	},
	S: {
		Offsets: [4]grid.Cell{{X: 0, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0}, {X: 0, Y: -1, Z: 0}, {X: 1, Y: -1, Z: 0}},
		Color:   color.RGBA{0x00, 0xff, 0x00, 0xff},
	},
	Z: {
		Offsets: [4]grid.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: -1, Z: 0}, {X: -1, Y: -1, Z: 0}},
		Color:   color.RGBA{0xff, 0x00, 0x00, 0xff},
	},
	O: {
		Offsets: [4]grid.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: -1, Z: 0}, {X: 1, Y: -1, Z: 0}},
		Color:   color.RGBA{0xff, 0xff, 0x00, 0xff},
	},
}

// Valid reports whether k names a catalog entry.
func (k Kind) Valid() bool {
	return int(k) < len(catalog)
}

// Shape returns the catalog entry for k. It panics for an unknown kind.
func (k Kind) Shape() Shape {
	if !k.Valid() {
		panic(fmt.Sprintf("piece: unknown kind %d", k))
	}
	return catalog[k]
}

// Color is shorthand for k.Shape().Color.
func (k Kind) Color() color.RGBA {
	return k.Shape().Color
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return "ILJTSZO"[k : k+1]
}

// ParseKind parses a single-letter kind name, case insensitive.
func ParseKind(s string) (Kind, error) {
	if len(s) == 1 {
		if i := strings.IndexByte("ILJTSZO", strings.ToUpper(s)[0]); i >= 0 {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("piece: unknown kind %q", s)
}
