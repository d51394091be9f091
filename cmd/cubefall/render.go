package main

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/grid"
)

const (
	cellSize   = 22
	viewMargin = 24
)

var (
	backgroundColor = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	wellColor       = color.RGBA{R: 32, G: 32, B: 44, A: 255}
	gridLineColor   = color.RGBA{R: 48, G: 48, B: 64, A: 255}
	ceilingColor    = color.RGBA{R: 200, G: 60, B: 60, A: 255}
)

// view is one orthographic projection of the field.
type view struct {
	title      string
	x, y       float32
	cols, rows int
	// project maps a cell to a column and row; rows grow downwards.
	project func(c grid.Cell) (col, row int)
	// ceiling is the row of the top-out line, or -1 when not shown.
	ceiling int
}

func layoutViews(b grid.Bounds) []view {
	front := view{
		title: "front (x/y)",
		x:     viewMargin, y: viewMargin + 16,
		cols: b.Width, rows: b.Height,
		project: func(c grid.Cell) (int, int) { return c.X - b.MinX(), b.Height - 1 - c.Y },
		ceiling: 0,
	}
	side := view{
		title: "side (z/y)",
		x:     front.x + float32(b.Width*cellSize) + viewMargin, y: front.y,
		cols: b.Depth, rows: b.Height,
		project: func(c grid.Cell) (int, int) { return c.Z - b.MinZ(), b.Height - 1 - c.Y },
		ceiling: 0,
	}
	top := view{
		title: "top (x/z)",
		x:     side.x + float32(b.Depth*cellSize) + viewMargin, y: front.y,
		cols: b.Width, rows: b.Depth,
		project: func(c grid.Cell) (int, int) { return c.X - b.MinX(), c.Z - b.MinZ() },
		ceiling: -1,
	}
	return []view{front, side, top}
}

func (v view) cellRect(col, row int) (float32, float32, float32) {
	return v.x + float32(col*cellSize), v.y + float32(row*cellSize), cellSize
}

func (v view) visible(col, row int) bool {
	return col >= 0 && col < v.cols && row >= 0 && row < v.rows
}

// heightColor shades placed cubes from dark at the floor to light at the ceiling.
func heightColor(y, height int) color.RGBA {
	t := float64(y) / float64(max(height-1, 1))
	t = min(max(t, 0), 1)
	return color.RGBA{
		R: uint8(60 + 150*t),
		G: uint8(90 + 120*t),
		B: uint8(140 + 100*t),
		A: 255,
	}
}

func (a *app) drawView(screen *ebiten.Image, v view, snap game.Snapshot) {
	ebitenutil.DebugPrintAt(screen, v.title, int(v.x), int(v.y)-16)

	vector.DrawFilledRect(screen, v.x, v.y, float32(v.cols*cellSize), float32(v.rows*cellSize), wellColor, false)
	for col := 0; col < v.cols; col++ {
		for row := 0; row < v.rows; row++ {
			x, y, s := v.cellRect(col, row)
			vector.StrokeRect(screen, x, y, s, s, 1, gridLineColor, false)
		}
	}

	field := a.game.Field()
	height := field.Bounds().Height

	// Lower cubes first so the top view shows the highest cube in each column.
	cells := slices.Collect(field.Occupancy().All())
	slices.SortFunc(cells, func(p, q grid.Cell) int { return p.Y - q.Y })
	for _, c := range cells {
		col, row := v.project(c)
		if !v.visible(col, row) {
			continue
		}
		x, y, s := v.cellRect(col, row)
		vector.DrawFilledRect(screen, x+1, y+1, s-2, s-2, heightColor(c.Y, height), false)
	}

	if snap.Ghost != nil {
		clr := snap.Ghost.Kind.Color()
		clr.A = 160
		for _, c := range snap.Ghost.Cells() {
			col, row := v.project(c)
			if !v.visible(col, row) {
				continue
			}
			x, y, s := v.cellRect(col, row)
			vector.StrokeRect(screen, x+2, y+2, s-4, s-4, 2, clr, false)
		}
	}

	if snap.Active != nil {
		clr := snap.Active.Kind.Color()
		for _, c := range snap.Active.Cells() {
			col, row := v.project(c)
			if !v.visible(col, row) {
				continue
			}
			x, y, s := v.cellRect(col, row)
			vector.DrawFilledRect(screen, x+1, y+1, s-2, s-2, clr, false)
		}
	}

	if v.ceiling >= 0 {
		_, y, _ := v.cellRect(0, v.ceiling+1)
		vector.StrokeLine(screen, v.x, y, v.x+float32(v.cols*cellSize), y, 1, ceilingColor, false)
	}
}

func (a *app) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	lines := []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Lines: %d", snap.Lines),
		fmt.Sprintf("Pieces: %d", snap.Pieces),
	}
	if snap.State != game.Idle {
		lines = append(lines, fmt.Sprintf("Next: %s", snap.Next))
	}
	lines = append(lines, "")

	switch snap.State {
	case game.Idle:
		lines = append(lines, "Press Enter to start")
	case game.Ended:
		lines = append(lines, "GAME OVER", "Press Enter to play again")
	}
	if msg := a.hud.message(); msg != "" && snap.State == game.Running {
		lines = append(lines, msg)
	}

	lines = append(lines, "",
		"arrows  move",
		"a/s     turn about y",
		"w/q     turn about x",
		"x/z     turn about z",
		"space   soft drop",
		"d       hard drop",
		"tab     debug panel",
		"esc     quit",
	)

	last := a.views[len(a.views)-1]
	hudX := int(last.x) + last.cols*cellSize + viewMargin
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, hudX, viewMargin+16+i*16)
	}
}
