package rollball

import (
	"math"

	"github.com/vovakirdan/rollball/internal/core"
)

// GridInfo describes the floor dimensions.
type GridInfo struct {
	SizeX, SizeY int
	TileSize     float64
	SpawnGuard   int
}

// DwellInfo is the dwell timer as shown to the player.
type DwellInfo struct {
	ShowTimer bool
	Cell      Cell
	Elapsed   float64
	Limit     float64
}

// Snapshot is an immutable copy of the session state after a Tick or Apply.
// Every slice is freshly allocated, so holding on to a snapshot never
// observes later ticks.
type Snapshot struct {
	Tick    uint64
	Elapsed float64

	Phase  Phase
	Theme  Theme
	Camera CameraMode
	Quit   bool

	Ball     Ball
	Grid     GridInfo
	Hazards  []Cell
	Entities Registry

	Score     int
	Lives     int
	Level     int
	MaxLevel  int
	HighScore int

	SpeedMultiplier float64
	ScoreFactor     int
	Effects         []Effect
	Dwell           DwellInfo

	Events []Event
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tickCount,
		Elapsed: g.elapsed,
		Phase:   g.phase,
		Theme:   g.theme,
		Camera:  g.camera,
		Quit:    g.quit,
		Ball:    g.ball,
		Grid: GridInfo{
			SizeX:      g.cfg.Grid.SizeX,
			SizeY:      g.cfg.Grid.SizeY,
			TileSize:   g.cfg.Grid.TileSize,
			SpawnGuard: g.cfg.Grid.SpawnGuard,
		},
		Hazards:         cloneSlice(g.grid.Hazards()),
		Entities:        g.reg.clone(),
		Score:           g.score,
		Lives:           g.lives,
		Level:           g.level,
		MaxLevel:        g.cfg.Gameplay.MaxLevel,
		HighScore:       g.highScore,
		SpeedMultiplier: g.power.SpeedMultiplier,
		ScoreFactor:     g.power.ScoreFactor,
		Effects:         g.power.Effects(),
		Dwell: DwellInfo{
			ShowTimer: g.dwell.Tracking(),
			Cell:      g.dwell.Cell(),
			Elapsed:   g.dwell.Elapsed(),
			Limit:     g.dwell.Limit(),
		},
		Events: cloneSlice(g.events),
	}
}

// Effect returns the state of one effect kind.
func (s Snapshot) Effect(kind EffectKind) Effect {
	for _, e := range s.Effects {
		if e.Kind == kind {
			return e
		}
	}
	return Effect{Kind: kind}
}

// IsHazard reports whether the snapshot marks the cell as a hole.
func (s Snapshot) IsHazard(c Cell) bool {
	for _, h := range s.Hazards {
		if h == c {
			return true
		}
	}
	return false
}

// CellAt mirrors Grid.CellAt for consumers that only hold a snapshot.
func (s Snapshot) CellAt(p core.Vec3) Cell {
	halfX := float64(s.Grid.SizeX) * s.Grid.TileSize / 2
	halfY := float64(s.Grid.SizeY) * s.Grid.TileSize / 2
	return Cell{
		I: int(math.Floor((p.X + halfX) / s.Grid.TileSize)),
		J: int(math.Floor((p.Y + halfY) / s.Grid.TileSize)),
	}
}
