package main

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/grid"
	"github.com/plus3/cubefall/loop"
	"github.com/plus3/cubefall/piece"
)

// bot presses random keys. It runs as a system after gravity on every tick
// and restarts the game once it is over.
type bot struct {
	game       *game.Game
	rng        *rand.Rand
	actionRate float64
	actions    int64
}

func newBot(g *game.Game, rng *rand.Rand, actionRate float64) *bot {
	return &bot{game: g, rng: rng, actionRate: actionRate}
}

var (
	botAxes       = []piece.Axis{piece.AxisX, piece.AxisY, piece.AxisZ}
	botDirections = []piece.Direction{piece.Positive, piece.Negative}
)

func (b *bot) Execute(frame *loop.UpdateFrame) {
	if b.game.State() == game.Ended {
		// Restart after the frame's notifications so listeners still see the
		// finished session when its game over arrives.
		frame.Commands.Defer(b.game.Restart)
		return
	}
	if b.rng.Float64() >= b.actionRate {
		return
	}

	b.actions++
	switch b.rng.IntN(10) {
	case 0:
		b.game.MoveLeft()
	case 1:
		b.game.MoveRight()
	case 2:
		b.game.MoveForward()
	case 3:
		b.game.MoveBack()
	case 4, 5, 6:
		axis := botAxes[b.rng.IntN(len(botAxes))]
		dir := botDirections[b.rng.IntN(len(botDirections))]
		// Both values come from the valid tables.
		_, _ = b.game.Rotate(axis, dir)
	case 7:
		b.game.SetSoftDrop(!b.game.SoftDrop())
	case 8:
		b.game.HardDrop()
	}
}

func (b *bot) String() string {
	return "bot"
}

// GameResult summarises one finished game.
type GameResult struct {
	Session  string        `yaml:"session"`
	Score    int           `yaml:"score"`
	Lines    int           `yaml:"lines"`
	Pieces   int           `yaml:"pieces"`
	Duration time.Duration `yaml:"duration"`
}

// tally records a GameResult for every game over.
type tally struct {
	game.NopListener
	game  *game.Game
	games []GameResult
	locks int
}

func (t *tally) OnLock([]grid.Cell) {
	t.locks++
}

func (t *tally) OnGameOver(score int) {
	t.games = append(t.games, GameResult{
		Session:  t.game.Session().String(),
		Score:    score,
		Lines:    t.game.Lines(),
		Pieces:   t.game.Pieces(),
		Duration: t.game.Elapsed(),
	})
}
