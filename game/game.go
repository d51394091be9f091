// Package game implements the rules of a 3D falling-block puzzle: collision
// against the field, gravity, locking, layer clearing, scoring and the
// idle/running/ended lifecycle. Rendering is left to a Listener.
package game

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/cubefall/grid"
	"github.com/plus3/cubefall/loop"
	"github.com/plus3/cubefall/piece"
	"go.uber.org/zap"
)

// Game owns one play session. It is driven by Tick and the input methods and
// must only be used from a single goroutine.
type Game struct {
	cfg       Config
	field     *Field
	source    KindSource
	listener  Listener
	logger    *zap.Logger
	scheduler *loop.Scheduler
	// pending collects notifications while a tick or an input is in flight.
	pending *loop.Commands

	session   uuid.UUID
	state     State
	active    piece.Piece
	ghost     piece.Piece
	hasActive bool
	next      piece.Kind
	score     int
	lines     int
	pieces    int
	fallTimer float64
	elapsed   float64
	softDrop  bool
}

// Option configures a Game at construction.
type Option func(*Game)

// WithListener sets the notification target. Use Listeners to attach several.
func WithListener(l Listener) Option {
	return func(g *Game) {
		if l != nil {
			g.listener = l
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithKindSource replaces the uniform random piece source.
func WithKindSource(src KindSource) Option {
	return func(g *Game) {
		g.source = src
	}
}

// New validates cfg and returns an Idle game.
func New(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:       cfg,
		field:     NewField(cfg.Bounds()),
		listener:  NopListener{},
		logger:    zap.NewNop(),
		scheduler: loop.NewScheduler(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.source == nil {
		g.source = NewRandomSource(cfg.Seed)
	}

	g.scheduler.Register(&timerSystem{game: g})
	g.scheduler.Register(&gravitySystem{game: g})
	return g, nil
}

// Register adds a system that runs after the built-in timer and gravity
// systems on every Tick.
func (g *Game) Register(system loop.System) {
	g.scheduler.Register(system)
}

// Tick advances the session by dt seconds. Negative or NaN values count as zero.
// Input sent by registered systems is delivered to the listener in order with
// the frame's own notifications once every system has run.
func (g *Game) Tick(dt float64) {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	outer := g.pending
	defer func() { g.pending = outer }()
	g.scheduler.Once(dt)
}

// Run ticks the game from a wall-clock ticker until ctx is cancelled.
func (g *Game) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			g.Tick(dt)
		}
	}
}

// Start begins the first session. It fails outside the Idle state; use
// Restart after a game over.
func (g *Game) Start() error {
	if g.state != Idle {
		return fmt.Errorf("start while %s: %w", g.state, ErrAlreadyStarted)
	}
	g.input(g.begin)
	return nil
}

// Restart discards the current session and starts a new one.
func (g *Game) Restart() {
	g.input(g.begin)
}

func (g *Game) begin(cmds *loop.Commands) bool {
	g.reset(cmds)

	g.state = Running
	g.session = uuid.New()
	g.next = g.source.Next()
	cmds.Defer(g.listener.OnGameStarted)
	g.logger.Info("session started", zap.Stringer("session", g.session), zap.Stringer("bounds", boundsStringer(g.field.Bounds())))

	g.spawn(cmds)
	return true
}

func (g *Game) reset(cmds *loop.Commands) {
	g.field.Reset()
	g.hasActive = false
	g.score = 0
	g.lines = 0
	g.pieces = 0
	g.fallTimer = 0
	g.elapsed = 0
	g.softDrop = false

	cmds.Defer(g.listener.OnGameReset)
	g.notifyScore(cmds)
}

// MoveLeft shifts the piece one cell towards -x.
func (g *Game) MoveLeft() bool { return g.translate(-1, 0) }

// MoveRight shifts the piece one cell towards +x.
func (g *Game) MoveRight() bool { return g.translate(1, 0) }

// MoveForward shifts the piece one cell towards -z.
func (g *Game) MoveForward() bool { return g.translate(0, -1) }

// MoveBack shifts the piece one cell towards +z.
func (g *Game) MoveBack() bool { return g.translate(0, 1) }

func (g *Game) translate(dx, dz int) bool {
	return g.input(func(cmds *loop.Commands) bool {
		if !g.live() {
			return false
		}
		return g.try(cmds, g.active.Translate(dx, 0, dz))
	})
}

// Rotate turns the piece a quarter about one of its local axes. An unknown
// axis or direction is reported as ErrInvalidRotation and changes nothing.
func (g *Game) Rotate(axis piece.Axis, dir piece.Direction) (bool, error) {
	if !axis.Valid() || !dir.Valid() {
		return false, fmt.Errorf("axis %s direction %d: %w", axis, dir, ErrInvalidRotation)
	}
	return g.input(func(cmds *loop.Commands) bool {
		if !g.live() {
			return false
		}
		return g.try(cmds, g.active.Rotate(axis, dir))
	}), nil
}

// SetSoftDrop shortens the gravity interval while held. Ignored unless Running.
func (g *Game) SetSoftDrop(on bool) {
	if g.state != Running {
		return
	}
	g.softDrop = on
}

// HardDrop moves the piece to its ghost position and locks it at once.
func (g *Game) HardDrop() bool {
	return g.input(func(cmds *loop.Commands) bool {
		if !g.live() {
			return false
		}
		if g.ghost != g.active {
			g.active = g.ghost
			g.notifyMoved(cmds)
		}
		g.fallTimer = 0
		g.lock(cmds)
		return true
	})
}

// input runs fn and delivers its notifications before returning. Inside a
// tick, or a listener called from one, they join the pending buffer instead.
func (g *Game) input(fn func(cmds *loop.Commands) bool) bool {
	if g.pending != nil {
		return fn(g.pending)
	}

	cmds := loop.NewCommands()
	g.pending = cmds
	defer func() { g.pending = nil }()

	ok := fn(cmds)
	cmds.Flush()
	return ok
}

func (g *Game) live() bool {
	return g.state == Running && g.hasActive
}

// try commits candidate if it is valid. A rejected candidate leaves the game untouched.
func (g *Game) try(cmds *loop.Commands, candidate piece.Piece) bool {
	if !g.field.IsValid(candidate) {
		return false
	}
	g.active = candidate
	g.notifyMoved(cmds)
	g.refreshGhost(cmds)
	return true
}

// fall performs one gravity step: descend if possible, otherwise lock.
func (g *Game) fall(cmds *loop.Commands) {
	if !g.try(cmds, g.active.Translate(0, -1, 0)) {
		g.lock(cmds)
	}
}

func (g *Game) lock(cmds *loop.Commands) {
	p := g.active
	g.hasActive = false

	cells, toppedOut := g.field.Lock(p)
	placed := slices.Clone(cells[:])
	cmds.Defer(func() { g.listener.OnLock(placed) })

	if toppedOut {
		g.end(cmds)
		return
	}

	g.score += LockBonus
	g.notifyScore(cmds)

	cleared := g.field.ClearFullLayers()
	if cleared.Lines() > 0 {
		g.score += cleared.Score
		g.lines += cleared.Lines()
		layers := cleared.Layers
		cmds.Defer(func() { g.listener.OnLayersCleared(layers) })
		g.notifyScore(cmds)
		g.logger.Debug("layers cleared",
			zap.Stringer("session", g.session),
			zap.Ints("layers", layers),
			zap.Int("score", g.score),
			zap.Int("lines", g.lines))
	}

	g.logger.Debug("piece locked",
		zap.Stringer("session", g.session),
		zap.Stringer("kind", p.Kind),
		zap.Int("score", g.score))

	g.spawn(cmds)
}

func (g *Game) spawn(cmds *loop.Commands) {
	kind := g.next
	g.next = g.source.Next()
	g.active = piece.Spawn(kind, g.field.Bounds())
	g.hasActive = true
	g.pieces++
	g.fallTimer = 0

	next := g.next
	cmds.Defer(func() { g.listener.OnPieceSpawned(kind, next) })

	if g.cfg.EndOnBlockedSpawn && !g.field.IsValid(g.active) {
		g.hasActive = false
		g.end(cmds)
		return
	}

	g.notifyMoved(cmds)
	g.refreshGhost(cmds)
}

func (g *Game) end(cmds *loop.Commands) {
	g.state = Ended
	g.hasActive = false
	g.softDrop = false

	score := g.score
	cmds.Defer(func() { g.listener.OnGameOver(score) })
	g.logger.Info("game over",
		zap.Stringer("session", g.session),
		zap.Int("score", g.score),
		zap.Int("lines", g.lines),
		zap.Int("pieces", g.pieces))
}

func (g *Game) refreshGhost(cmds *loop.Commands) {
	g.ghost = g.field.Ghost(g.active)
	pos, o := g.ghost.Position(), g.ghost.Orientation
	cmds.Defer(func() { g.listener.OnGhostUpdated(pos, o) })
}

func (g *Game) notifyMoved(cmds *loop.Commands) {
	pos, o := g.active.Position(), g.active.Orientation
	cmds.Defer(func() { g.listener.OnPieceMoved(pos, o) })
}

func (g *Game) notifyScore(cmds *loop.Commands) {
	score, lines := g.score, g.lines
	cmds.Defer(func() { g.listener.OnScoreChanged(score, lines) })
}

// State returns the lifecycle state.
func (g *Game) State() State { return g.state }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lines returns the number of layers cleared this session.
func (g *Game) Lines() int { return g.lines }

// Pieces returns the number of pieces spawned this session.
func (g *Game) Pieces() int { return g.pieces }

// Next returns the look-ahead kind.
func (g *Game) Next() piece.Kind { return g.next }

// Active returns the falling piece, if any.
func (g *Game) Active() (piece.Piece, bool) { return g.active, g.hasActive }

// Ghost returns the landing preview of the falling piece, if any.
func (g *Game) Ghost() (piece.Piece, bool) { return g.ghost, g.hasActive }

// SoftDrop reports whether soft drop is held.
func (g *Game) SoftDrop() bool { return g.softDrop }

// Session identifies the current session. It is the zero UUID before Start.
func (g *Game) Session() uuid.UUID { return g.session }

// Elapsed is the running time of the current session.
func (g *Game) Elapsed() time.Duration {
	return time.Duration(g.elapsed * float64(time.Second))
}

// Field exposes the playing field. Mutating it directly bypasses the rules.
func (g *Game) Field() *Field { return g.field }

// Config returns the configuration the game was built with.
func (g *Game) Config() Config { return g.cfg }

// Stats returns per-system tick timings.
func (g *Game) Stats() *loop.SchedulerStats { return g.scheduler.GetStats() }

type boundsStringer grid.Bounds

func (b boundsStringer) String() string {
	return fmt.Sprintf("%dx%dx%d", b.Width, b.Depth, b.Height)
}
