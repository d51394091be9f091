package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/plus3/cubefall/piece"
)

// Snapshot is a read-only copy of the controller state for renderers and tools.
type Snapshot struct {
	Session  uuid.UUID
	State    State
	Score    int
	Lines    int
	Pieces   int
	Placed   int
	Next     piece.Kind
	Active   *piece.Piece
	Ghost    *piece.Piece
	SoftDrop bool
	Elapsed  time.Duration
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Session:  g.session,
		State:    g.state,
		Score:    g.score,
		Lines:    g.lines,
		Pieces:   g.pieces,
		Placed:   g.field.Occupancy().Len(),
		Next:     g.next,
		SoftDrop: g.softDrop,
		Elapsed:  g.Elapsed(),
	}
	if g.hasActive {
		active, ghost := g.active, g.ghost
		s.Active = &active
		s.Ghost = &ghost
	}
	return s
}
