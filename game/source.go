package game

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/cubefall/piece"
)

// KindSource supplies the kind of each new piece.
type KindSource interface {
	Next() piece.Kind
}

// RandomSource draws every kind uniformly and independently of history.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource seeds a PCG generator. A zero seed is replaced with one
// derived from the clock.
func NewRandomSource(seed uint64) *RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomSource{rng: rand.New(rand.NewPCG(seed, 0))}
}

func (s *RandomSource) Next() piece.Kind {
	return piece.Kinds[s.rng.IntN(len(piece.Kinds))]
}

// SequenceSource repeats a fixed list of kinds. Useful for tests and replays.
type SequenceSource struct {
	kinds []piece.Kind
	pos   int
}

// NewSequenceSource panics when kinds is empty.
func NewSequenceSource(kinds ...piece.Kind) *SequenceSource {
	if len(kinds) == 0 {
		panic("game: empty kind sequence")
	}
	return &SequenceSource{kinds: kinds}
}

func (s *SequenceSource) Next() piece.Kind {
	k := s.kinds[s.pos]
	s.pos = (s.pos + 1) % len(s.kinds)
	return k
}
