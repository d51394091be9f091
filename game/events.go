package game

import (
	"github.com/plus3/cubefall/grid"
	"github.com/plus3/cubefall/piece"
)

// Listener receives notifications for presentation. Notifications are
// delivered after the state change that caused them is complete, so a
// listener may call back into the Game.
type Listener interface {
	OnScoreChanged(score, lines int)
	OnPieceSpawned(kind, next piece.Kind)
	OnPieceMoved(pos grid.Vec3, o piece.Orientation)
	OnGhostUpdated(pos grid.Vec3, o piece.Orientation)
	OnLock(cells []grid.Cell)
	OnLayersCleared(ys []int)
	OnGameOver(finalScore int)
	OnGameReset()
	OnGameStarted()
}

// NopListener ignores every notification. Embed it to implement only the
// methods you care about.
type NopListener struct{}

func (NopListener) OnScoreChanged(int, int)                     {}
func (NopListener) OnPieceSpawned(piece.Kind, piece.Kind)       {}
func (NopListener) OnPieceMoved(grid.Vec3, piece.Orientation)   {}
func (NopListener) OnGhostUpdated(grid.Vec3, piece.Orientation) {}
func (NopListener) OnLock([]grid.Cell)                          {}
func (NopListener) OnLayersCleared([]int)                       {}
func (NopListener) OnGameOver(int)                              {}
func (NopListener) OnGameReset()                                {}
func (NopListener) OnGameStarted()                              {}

// Listeners fans each notification out to every member in order.
type Listeners []Listener

func (ls Listeners) OnScoreChanged(score, lines int) {
	for _, l := range ls {
		l.OnScoreChanged(score, lines)
	}
}

func (ls Listeners) OnPieceSpawned(kind, next piece.Kind) {
	for _, l := range ls {
		l.OnPieceSpawned(kind, next)
	}
}

func (ls Listeners) OnPieceMoved(pos grid.Vec3, o piece.Orientation) {
	for _, l := range ls {
		l.OnPieceMoved(pos, o)
	}
}

func (ls Listeners) OnGhostUpdated(pos grid.Vec3, o piece.Orientation) {
	for _, l := range ls {
		l.OnGhostUpdated(pos, o)
	}
}

func (ls Listeners) OnLock(cells []grid.Cell) {
	for _, l := range ls {
		l.OnLock(cells)
	}
}

func (ls Listeners) OnLayersCleared(ys []int) {
	for _, l := range ls {
		l.OnLayersCleared(ys)
	}
}

func (ls Listeners) OnGameOver(finalScore int) {
	for _, l := range ls {
		l.OnGameOver(finalScore)
	}
}

func (ls Listeners) OnGameReset() {
	for _, l := range ls {
		l.OnGameReset()
	}
}

func (ls Listeners) OnGameStarted() {
	for _, l := range ls {
		l.OnGameStarted()
	}
}
