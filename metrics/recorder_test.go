package metrics_test

import (
	"strings"
	"testing"

	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/metrics"
	"github.com/plus3/cubefall/piece"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCountsGameplay(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	g, err := game.New(game.DefaultConfig(),
		game.WithListener(rec),
		game.WithKindSource(game.NewSequenceSource(piece.O, piece.T)))
	require.NoError(t, err)
	require.NoError(t, g.Start())

	require.True(t, g.HardDrop())
	require.True(t, g.HardDrop())

	expected := `
# HELP cubefall_locks_total Pieces locked into the field.
# TYPE cubefall_locks_total counter
cubefall_locks_total 2
# HELP cubefall_games_total Sessions started.
# TYPE cubefall_games_total counter
cubefall_games_total 1
# HELP cubefall_score Score of the most recently updated session.
# TYPE cubefall_score gauge
cubefall_score 20
`
	err = testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"cubefall_locks_total", "cubefall_games_total", "cubefall_score")
	assert.NoError(t, err)

	// Every kind is exported from the start.
	n, err := testutil.GatherAndCount(reg, "cubefall_pieces_spawned_total")
	require.NoError(t, err)
	assert.Equal(t, len(piece.Kinds), n)
}

func TestRecorderDirect(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	rec.OnPieceSpawned(piece.I, piece.O)
	rec.OnPieceSpawned(piece.I, piece.O)
	rec.OnLayersCleared([]int{0, 0, 3})
	rec.OnScoreChanged(1110, 3)
	rec.OnGameOver(1110)

	expected := `
# HELP cubefall_layers_cleared_total Complete layers removed.
# TYPE cubefall_layers_cleared_total counter
cubefall_layers_cleared_total 3
# HELP cubefall_game_overs_total Sessions that ended by topping out.
# TYPE cubefall_game_overs_total counter
cubefall_game_overs_total 1
# HELP cubefall_lines Layers cleared in the most recently updated session.
# TYPE cubefall_lines gauge
cubefall_lines 3
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"cubefall_layers_cleared_total", "cubefall_game_overs_total", "cubefall_lines"))

	spawnedI := `
# HELP cubefall_pieces_spawned_total Pieces spawned, by kind.
# TYPE cubefall_pieces_spawned_total counter
cubefall_pieces_spawned_total{kind="I"} 2
cubefall_pieces_spawned_total{kind="J"} 0
cubefall_pieces_spawned_total{kind="L"} 0
cubefall_pieces_spawned_total{kind="O"} 0
cubefall_pieces_spawned_total{kind="S"} 0
cubefall_pieces_spawned_total{kind="T"} 0
cubefall_pieces_spawned_total{kind="Z"} 0
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(spawnedI),
		"cubefall_pieces_spawned_total"))
}

func TestRecorderSharesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := metrics.NewRecorder(reg)
	require.NoError(t, err)
	second, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	first.OnGameStarted()
	second.OnGameStarted()

	n, err := testutil.GatherAndCount(reg, "cubefall_games_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	expected := `
# HELP cubefall_games_total Sessions started.
# TYPE cubefall_games_total counter
cubefall_games_total 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "cubefall_games_total"))
}
