// Command cubefall-bench plays headless games with a random bot and reports
// tick timings and game results.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/internal/cli"
	"github.com/plus3/cubefall/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// benchDefaults ends a game on a blocked spawn. Otherwise a stacked-up field
// keeps locking below the top-out row and the bot never gets to restart.
func benchDefaults() game.Config {
	cfg := game.DefaultConfig()
	cfg.EndOnBlockedSpawn = true
	return cfg
}

func main() {
	configFlags := cli.RegisterConfigFlagsFrom(flag.CommandLine, benchDefaults())
	duration := flag.Duration("duration", 10*time.Second, "The total duration the bench should run for.")
	dt := flag.Float64("dt", 1.0/60, "Seconds of game time per tick.")
	format := flag.String("format", "text", "Report format: text or yaml.")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address while running, e.g. :2112.")
	realtime := flag.Bool("realtime", false, "Tick on a wall-clock ticker every dt instead of as fast as possible.")
	actionRate := flag.Float64("action-rate", 0.2, "Chance per tick that the bot presses a key.")
	debug := flag.Bool("debug", false, "Enable debug log output")
	flag.Parse()

	logger, err := cli.NewLogger(*debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if err := run(logger, configFlags, options{
		duration:    *duration,
		dt:          *dt,
		format:      *format,
		metricsAddr: *metricsAddr,
		realtime:    *realtime,
		actionRate:  *actionRate,
	}, os.Stdout); err != nil {
		logger.Fatal("bench failed", zap.Error(err))
	}
}

type options struct {
	duration    time.Duration
	dt          float64
	format      string
	metricsAddr string
	realtime    bool
	actionRate  float64
}

func run(logger *zap.Logger, configFlags *cli.ConfigFlags, opts options, out io.Writer) error {
	if opts.format != "text" && opts.format != "yaml" {
		return fmt.Errorf("unknown format %q", opts.format)
	}
	if opts.dt <= 0 {
		return fmt.Errorf("dt must be positive, got %v", opts.dt)
	}

	cfg, err := configFlags.Config()
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		// Pin the seed so the report can be replayed.
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}

	results := &tally{}
	g, err := game.New(cfg,
		game.WithLogger(logger),
		game.WithListener(game.Listeners{recorder, results}))
	if err != nil {
		return err
	}
	results.game = g

	player := newBot(g, rand.New(rand.NewPCG(cfg.Seed, 1)), opts.actionRate)
	g.Register(player)

	if opts.metricsAddr != "" {
		srv := serveMetrics(opts.metricsAddr, reg, logger)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	report := &Report{
		Duration:   opts.duration,
		DeltaTime:  opts.dt,
		Realtime:   opts.realtime,
		ActionRate: opts.actionRate,
		Config:     cfg,
	}

	if err := g.Start(); err != nil {
		return err
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	logger.Info("bench started",
		zap.Duration("duration", opts.duration),
		zap.Bool("realtime", opts.realtime),
		zap.Uint64("seed", cfg.Seed))

	ctx, cancel := context.WithTimeout(context.Background(), opts.duration)
	defer cancel()

	startTime := time.Now()
	if opts.realtime {
		g.Run(ctx, time.Duration(opts.dt*float64(time.Second)))
	} else {
		report.TickTime.Samples = tickUntilDone(ctx, g, opts.dt)
	}
	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)

	stats := g.Stats()
	if len(stats.Systems) > 0 {
		report.TotalTicks = stats.Systems[0].ExecutionCount
	}
	report.Systems = systemReports(stats)
	report.TickTime.Finalize()
	report.BotActions = player.actions
	report.Locks = results.locks
	report.Games = results.games
	report.Summary = summarize(results.games)
	report.CurrentScore = g.Score()

	logger.Info("bench finished",
		zap.Int64("ticks", report.TotalTicks),
		zap.Int("games", report.Summary.Games))

	if opts.format == "yaml" {
		return report.WriteYAML(out)
	}
	return report.Generate(out)
}

// tickUntilDone ticks g as fast as possible and returns the wall time of each tick.
func tickUntilDone(ctx context.Context, g *game.Game, dt float64) []time.Duration {
	samples := make([]time.Duration, 0, 1<<16)
	for {
		select {
		case <-ctx.Done():
			return samples
		default:
			tickStart := time.Now()
			g.Tick(dt)
			samples = append(samples, time.Since(tickStart))
		}
	}
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		logger.Info("serving metrics", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", zap.Error(err))
		}
	}()
	return srv
}
