package config

import (
	"errors"
	"fmt"
)

// LevelScaling derives per-level parameters from the config.
type LevelScaling struct {
	cfg RollballConfig
}

// NewLevelScaling creates a scaler for the given config.
func NewLevelScaling(cfg RollballConfig) *LevelScaling {
	return &LevelScaling{cfg: cfg}
}

// ClampLevel restricts a level to [1, MaxLevel].
func (s *LevelScaling) ClampLevel(level int) int {
	return max(1, min(level, s.cfg.Gameplay.MaxLevel))
}

// HazardCount returns how many hazard tiles the level has.
func (s *LevelScaling) HazardCount(level int) int {
	g := s.cfg.Grid
	return min(g.HazardBase+g.HazardPerLevel*level, g.HazardCap)
}

// CollectibleCount returns the number of regular collectibles.
func (s *LevelScaling) CollectibleCount(level int) int {
	p := s.cfg.Gameplay
	return p.CollectibleBase + p.CollectiblePerLevel*level
}

// SpecialCount returns the number of special points.
func (s *LevelScaling) SpecialCount(level int) int {
	p := s.cfg.Gameplay
	return p.SpecialBase + p.SpecialPerLevel*level
}

// ObstacleCount returns the number of obstacles.
func (s *LevelScaling) ObstacleCount(level int) int {
	p := s.cfg.Gameplay
	return min(p.ObstacleBase+p.ObstaclePerLevel*level, p.ObstacleCap)
}

// SpeedBaseline returns the speed multiplier a level starts with.
func (s *LevelScaling) SpeedBaseline(level int) float64 {
	return 1.0 + s.cfg.Gameplay.SpeedPerLevel*float64(level)
}

// EligibleCells returns how many grid cells lie outside the protected spawn block.
func (g GridConfig) EligibleCells() int {
	cx, cy := g.SizeX/2, g.SizeY/2
	blockX := min(cx+g.SpawnGuard, g.SizeX-1) - max(cx-g.SpawnGuard, 0) + 1
	blockY := min(cy+g.SpawnGuard, g.SizeY-1) - max(cy-g.SpawnGuard, 0) + 1
	return g.SizeX*g.SizeY - blockX*blockY
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate rejects configurations the simulation cannot run with.
func (c RollballConfig) Validate() error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("config: %w: %s", ErrInvalid, fmt.Sprintf(format, args...))
	}

	g := c.Grid
	switch {
	case g.SizeX <= 0 || g.SizeY <= 0:
		return fail("grid size must be positive, got %dx%d", g.SizeX, g.SizeY)
	case g.TileSize <= 0:
		return fail("tile_size must be positive, got %g", g.TileSize)
	case g.SpawnGuard < 0:
		return fail("spawn_guard must not be negative, got %d", g.SpawnGuard)
	case g.HazardBase < 0 || g.HazardPerLevel < 0 || g.HazardCap < 0:
		return fail("hazard counts must not be negative")
	}

	if c.Ball.Radius <= 0 || 2*c.Ball.Radius >= g.TileSize*float64(min(g.SizeX, g.SizeY)) {
		return fail("ball radius %g does not fit the floor", c.Ball.Radius)
	}

	p := c.Physics
	switch {
	case p.MaxDT <= 0:
		return fail("max_dt must be positive, got %g", p.MaxDT)
	case p.Restitution < 0 || p.Restitution > 1:
		return fail("restitution must be in [0,1], got %g", p.Restitution)
	case p.BaseSpeed < 0 || p.JumpImpulse < 0 || p.MaxJumpDuration < 0 || p.GroundEpsilon < 0:
		return fail("physics constants must not be negative")
	}

	gp := c.Gameplay
	switch {
	case gp.Lives <= 0:
		return fail("lives must be positive, got %d", gp.Lives)
	case gp.MaxLevel <= 0:
		return fail("max_level must be positive, got %d", gp.MaxLevel)
	case gp.DwellLimit <= 0:
		return fail("dwell_limit must be positive, got %g", gp.DwellLimit)
	case gp.ObstacleMinSize > gp.ObstacleMaxSize:
		return fail("obstacle_min_size %g exceeds obstacle_max_size %g", gp.ObstacleMinSize, gp.ObstacleMaxSize)
	case 2*gp.ObstacleMargin >= g.TileSize*float64(min(g.SizeX, g.SizeY)):
		return fail("obstacle_margin %g leaves no room on the floor", gp.ObstacleMargin)
	}

	pu := c.PowerUps
	switch {
	case pu.BoostFactor <= 0 || pu.SlowFactor <= 0:
		return fail("boost and slow factors must be positive")
	case pu.Stacking != StackRefresh && pu.Stacking != StackCompound:
		return fail("stacking must be %q or %q, got %q", StackRefresh, StackCompound, pu.Stacking)
	}

	for i, m := range c.Layout.Multipliers {
		if m.Factor <= 0 {
			return fail("multiplier %d has non-positive factor %d", i, m.Factor)
		}
	}
	for i, pl := range c.Layout.Platforms {
		if pl.Limits[0] > pl.Limits[1] {
			return fail("platform %d limits are reversed", i)
		}
	}

	scaling := NewLevelScaling(c)
	if need, have := scaling.HazardCount(gp.MaxLevel), g.EligibleCells(); need > have {
		return fail("level %d needs %d hazard cells but only %d lie outside the spawn block", gp.MaxLevel, need, have)
	}

	return nil
}
