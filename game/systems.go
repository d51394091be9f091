package game

import "github.com/plus3/cubefall/loop"

// timerSystem accumulates frame time into the fall timer and session clock.
// It runs first and routes input made during the frame onto its commands.
type timerSystem struct {
	game *Game
}

func (s *timerSystem) Execute(frame *loop.UpdateFrame) {
	g := s.game
	g.pending = frame.Commands
	if g.state != Running {
		return
	}
	g.fallTimer += frame.DeltaTime
	g.elapsed += frame.DeltaTime
}

// gravitySystem performs at most one gravity step per frame once the fall
// timer reaches the current interval.
type gravitySystem struct {
	game *Game
}

func (s *gravitySystem) Execute(frame *loop.UpdateFrame) {
	g := s.game
	if !g.live() {
		return
	}

	interval := g.cfg.FallInterval
	if g.softDrop {
		interval = g.cfg.SoftDropInterval
	}
	if g.fallTimer < interval {
		return
	}

	g.fallTimer = 0
	g.fall(frame.Commands)
}
