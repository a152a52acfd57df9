// Package rollball implements the rolling-ball arcade simulation: a sphere on
// a tiled floor with holes, collectibles, obstacles, power-ups, moving
// platforms and teleporters. The package is pure logic; rendering and input
// devices live in the platform layer.
package rollball

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rollball/internal/config"
	"github.com/vovakirdan/rollball/internal/core"
)

// Phase is the session's top-level state.
type Phase string

const (
	PhaseMenu     Phase = "menu"
	PhaseHelp     Phase = "help"
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseGameOver Phase = "game_over"
	PhaseWin      Phase = "win"
)

// obstacleAttempts bounds rejection sampling for one obstacle position.
const obstacleAttempts = 100

// Options configures a new session.
type Options struct {
	Config config.RollballConfig
	Seed   int64
	Logger *log.Logger // nil discards

	// StartLevel is the level every run begins at, clamped to [1, MaxLevel].
	// Zero starts at level 1.
	StartLevel int
}

// Game is one single-player session. It is not safe for concurrent use; the
// owning update loop calls Tick and Apply from one goroutine.
type Game struct {
	cfg        config.RollballConfig
	scaling    *config.LevelScaling
	logger     *log.Logger
	rng        *rand.Rand
	grid       *Grid
	integrator Integrator
	power      *PowerUps
	dwell      DwellMonitor
	reg        Registry
	ball       Ball

	phase      Phase
	startLevel int
	score      int
	lives      int
	level      int
	highScore  int
	theme      Theme
	camera     CameraMode
	quit       bool

	teleportArmed bool
	tickCount     uint64
	elapsed       float64
	events        []Event
}

// New validates the configuration and creates a session sitting in the menu
// with the start level already generated.
func New(opts Options) (*Game, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := opts.Config
	rng := rand.New(rand.NewSource(opts.Seed))
	g := &Game{
		cfg:        cfg,
		scaling:    config.NewLevelScaling(cfg),
		logger:     logger,
		rng:        rng,
		grid:       NewGrid(cfg.Grid, rng),
		integrator: NewIntegrator(cfg.Physics, cfg.Grid),
		dwell:      NewDwellMonitor(cfg.Gameplay.DwellLimit),
		ball:       Ball{Radius: cfg.Ball.Radius},
		phase:      PhaseMenu,
	}
	g.startLevel = g.scaling.ClampLevel(opts.StartLevel)
	g.power = NewPowerUps(cfg.PowerUps, g.scaling.SpeedBaseline(g.startLevel))
	g.fullReset()
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "rollball"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Rollball"
}

// Config returns the configuration the session runs with.
func (g *Game) Config() config.RollballConfig {
	return g.cfg
}

// SeedHighScore raises the high score to at least n, e.g. from stored runs.
func (g *Game) SeedHighScore(n int) {
	g.highScore = max(g.highScore, n)
}

// Tick advances the simulation by dt seconds. Outside PhasePlaying, and for
// dt == 0, it only returns the current snapshot.
func (g *Game) Tick(dt float64, in core.InputFrame) Snapshot {
	g.events = nil
	if g.phase != PhasePlaying {
		return g.Snapshot()
	}
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		g.logger.Warn("rejected tick", "dt", dt)
		return g.Snapshot()
	}
	if dt == 0 {
		return g.Snapshot()
	}
	dt = min(dt, g.cfg.Physics.MaxDT)
	g.tickCount++
	g.elapsed += dt

	for _, kind := range g.power.Decay(dt) {
		g.emit(Event{Kind: EventEffectExpired, Effect: kind})
	}

	prev := g.ball
	movePlatforms(g.reg.Platforms, dt)
	g.integrator.Step(&g.ball, in, g.power.SpeedMultiplier, dt)
	if !g.ball.Pos.IsFinite() || !g.ball.Vel.IsFinite() {
		g.logger.Warn("non-finite ball state, rolling back", "pos", g.ball.Pos, "vel", g.ball.Vel)
		g.ball = prev
		return g.Snapshot()
	}

	hit := g.resolve()
	if hit.lethal {
		g.loseLife(hit.cause)
	} else {
		cell := g.grid.CellAt(g.ball.Pos.X, g.ball.Pos.Y)
		if g.dwell.Update(cell, g.integrator.OnFloor(&g.ball), g.grid.IsHazard(cell), dt) {
			g.loseLife(CauseDwell)
		}
	}

	if g.phase == PhasePlaying && g.reg.LevelComplete() {
		g.completeLevel()
	}
	return g.Snapshot()
}

// Apply handles a discrete player intent and returns the resulting snapshot.
func (g *Game) Apply(a core.Action) Snapshot {
	g.events = nil
	if a == core.ActionNone {
		return g.Snapshot()
	}

	if g.phase == PhaseHelp {
		if a == core.ActionQuit {
			g.quit = true
		}
		g.phase = PhaseMenu
		return g.Snapshot()
	}

	switch a {
	case core.ActionQuit:
		g.commitHighScore()
		g.quit = true
		return g.Snapshot()
	case core.ActionCycleTheme:
		g.theme = g.theme.Next()
		return g.Snapshot()
	case core.ActionCycleCamera:
		g.camera = g.camera.Next()
		return g.Snapshot()
	}

	switch g.phase {
	case PhaseMenu:
		switch a {
		case core.ActionStartGame:
			g.start()
		case core.ActionOpenHelp:
			g.phase = PhaseHelp
		}
	case PhasePlaying, PhasePaused:
		switch a {
		case core.ActionPauseToggle:
			if g.phase == PhasePlaying {
				g.phase = PhasePaused
			} else {
				g.phase = PhasePlaying
			}
		case core.ActionRestart:
			g.start()
		case core.ActionOpenMenu:
			g.commitHighScore()
			g.phase = PhaseMenu
		}
	case PhaseGameOver, PhaseWin:
		switch a {
		case core.ActionStartGame, core.ActionRestart:
			g.start()
		case core.ActionOpenMenu:
			g.phase = PhaseMenu
		}
	}
	return g.Snapshot()
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

func (g *Game) start() {
	g.fullReset()
	g.phase = PhasePlaying
}

func (g *Game) commitHighScore() {
	g.highScore = max(g.highScore, g.score)
}

// fullReset starts a new run at the start level.
func (g *Game) fullReset() {
	g.commitHighScore()
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = g.startLevel
	g.tickCount = 0
	g.elapsed = 0
	g.levelReset()
}

// levelReset regenerates the current level. Score and lives are kept.
func (g *Game) levelReset() {
	g.grid.Generate(g.scaling.HazardCount(g.level))
	g.populate()
	g.reg.loadLayout(g.cfg.Layout)
	g.power.Reset(g.scaling.SpeedBaseline(g.level))
	g.respawn()
}

// softReset puts the ball back on a safe tile after a life is lost.
func (g *Game) softReset() {
	g.power.Reset(g.scaling.SpeedBaseline(g.level))
	g.respawn()
}

func (g *Game) respawn() {
	g.ball = Ball{
		Pos:    g.grid.FindSafeSpawn(g.cfg.Ball.Radius),
		Radius: g.cfg.Ball.Radius,
	}
	g.dwell.Clear()
	g.teleportArmed = true
}

func (g *Game) loseLife(cause Cause) {
	g.lives--
	g.emit(Event{Kind: EventLifeLost, Cause: cause})
	g.logger.Debug("life lost", "cause", cause, "lives", g.lives, "level", g.level)

	if g.lives <= 0 {
		g.lives = 0
		g.phase = PhaseGameOver
		g.commitHighScore()
		g.emit(Event{Kind: EventGameOver, Level: g.level})
		g.logger.Debug("game over", "score", g.score, "level", g.level)
		return
	}
	g.softReset()
}

func (g *Game) completeLevel() {
	if g.level >= g.cfg.Gameplay.MaxLevel {
		g.phase = PhaseWin
		g.commitHighScore()
		g.emit(Event{Kind: EventWin, Level: g.level})
		g.logger.Debug("win", "score", g.score)
		return
	}
	g.level++
	g.levelReset()
	g.emit(Event{Kind: EventLevelUp, Level: g.level})
	g.logger.Debug("level up", "level", g.level, "score", g.score)
}

// populate scatters the random entities for the current level.
func (g *Game) populate() {
	gp := g.cfg.Gameplay

	n := g.scaling.CollectibleCount(g.level)
	g.reg.Collectibles = make([]Collectible, 0, n)
	for range n {
		x, y := g.grid.FindSafeTile()
		g.reg.Collectibles = append(g.reg.Collectibles, Collectible{
			Pos:   core.V3(x, y, gp.ItemHeight),
			Shape: Shape(g.rng.Intn(int(ShapeTeapot) + 1)),
			Tint:  core.RGBF(g.rng.Float64(), g.rng.Float64(), g.rng.Float64()),
		})
	}

	n = g.scaling.SpecialCount(g.level)
	g.reg.Specials = make([]SpecialPoint, 0, n)
	for range n {
		x, y := g.grid.FindSafeTile()
		g.reg.Specials = append(g.reg.Specials, SpecialPoint{Pos: core.V3(x, y, gp.ItemHeight)})
	}

	n = g.scaling.ObstacleCount(g.level)
	g.reg.Obstacles = make([]Obstacle, 0, n)
	for range n {
		pos, ok := g.obstaclePosition()
		if !ok {
			continue
		}
		g.reg.Obstacles = append(g.reg.Obstacles, Obstacle{
			Pos:   pos,
			Size:  gp.ObstacleMinSize + g.rng.Float64()*(gp.ObstacleMaxSize-gp.ObstacleMinSize),
			Shape: obstacleShapes[g.rng.Intn(len(obstacleShapes))],
		})
	}
}

var obstacleShapes = []Shape{ShapeSphere, ShapeCube, ShapeCone}

// obstaclePosition samples a point inside the margins whose cell lies outside
// the spawn block, so the ball never respawns into an obstacle.
func (g *Game) obstaclePosition() (core.Vec3, bool) {
	gp := g.cfg.Gameplay
	hx := g.cfg.Grid.HalfX() - gp.ObstacleMargin
	hy := g.cfg.Grid.HalfY() - gp.ObstacleMargin
	for range obstacleAttempts {
		x := -hx + g.rng.Float64()*2*hx
		y := -hy + g.rng.Float64()*2*hy
		if !g.grid.InSpawnBlock(g.grid.CellAt(x, y)) {
			return core.V3(x, y, gp.ObstacleHeight), true
		}
	}
	return core.Vec3{}, false
}
