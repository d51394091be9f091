// Package metrics exports game activity as Prometheus metrics.
package metrics

import (
	"errors"
	"fmt"

	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/grid"
	"github.com/plus3/cubefall/piece"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cubefall"

// Recorder is a game.Listener that counts spawns, locks, clears and games.
// One Recorder may be shared by any number of games.
type Recorder struct {
	spawned  *prometheus.CounterVec
	locks    prometheus.Counter
	layers   prometheus.Counter
	games    prometheus.Counter
	gameOver prometheus.Counter
	score    prometheus.Gauge
	lines    prometheus.Gauge
}

var _ game.Listener = (*Recorder)(nil)

// NewRecorder builds the collectors and registers them on reg. Collectors that
// are already registered are reused, so several recorders built against the
// same registry share their series.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		spawned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pieces_spawned_total",
			Help:      "Pieces spawned, by kind.",
		}, []string{"kind"}),
		locks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "locks_total",
			Help:      "Pieces locked into the field.",
		}),
		layers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "layers_cleared_total",
			Help:      "Complete layers removed.",
		}),
		games: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_total",
			Help:      "Sessions started.",
		}),
		gameOver: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "game_overs_total",
			Help:      "Sessions that ended by topping out.",
		}),
		score: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "score",
			Help:      "Score of the most recently updated session.",
		}),
		lines: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lines",
			Help:      "Layers cleared in the most recently updated session.",
		}),
	}

	if err := register(reg, &r.spawned); err != nil {
		return nil, err
	}
	for _, c := range []*prometheus.Counter{&r.locks, &r.layers, &r.games, &r.gameOver} {
		if err := register(reg, c); err != nil {
			return nil, err
		}
	}
	for _, g := range []*prometheus.Gauge{&r.score, &r.lines} {
		if err := register(reg, g); err != nil {
			return nil, err
		}
	}

	// Make every kind visible before its first spawn.
	for _, k := range piece.Kinds {
		r.spawned.WithLabelValues(k.String())
	}
	return r, nil
}

// register adds *c to reg, swapping in the existing collector on a duplicate.
func register[C prometheus.Collector](reg prometheus.Registerer, c *C) error {
	err := reg.Register(*c)
	if err == nil {
		return nil
	}
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(C); ok {
			*c = existing
			return nil
		}
	}
	return fmt.Errorf("register metrics: %w", err)
}

func (r *Recorder) OnScoreChanged(score, lines int) {
	r.score.Set(float64(score))
	r.lines.Set(float64(lines))
}

func (r *Recorder) OnPieceSpawned(kind, _ piece.Kind) {
	r.spawned.WithLabelValues(kind.String()).Inc()
}

func (r *Recorder) OnPieceMoved(grid.Vec3, piece.Orientation)   {}
func (r *Recorder) OnGhostUpdated(grid.Vec3, piece.Orientation) {}

func (r *Recorder) OnLock([]grid.Cell) {
	r.locks.Inc()
}

func (r *Recorder) OnLayersCleared(ys []int) {
	r.layers.Add(float64(len(ys)))
}

func (r *Recorder) OnGameOver(int) {
	r.gameOver.Inc()
}

func (r *Recorder) OnGameReset() {}

func (r *Recorder) OnGameStarted() {
	r.games.Inc()
}
