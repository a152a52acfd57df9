package rollball

import (
	"github.com/vovakirdan/rollball/internal/config"
	"github.com/vovakirdan/rollball/internal/core"
)

// EntityKind enumerates everything that can appear on the floor.
type EntityKind int

const (
	KindNone EntityKind = iota
	KindBall
	KindCollectible
	KindSpecialPoint
	KindObstacle
	KindPlatform
	KindTeleporter
	KindSpeedBoost
	KindSlowTrap
	KindTimeBonus
	KindLifePickup
	KindMultiplier
	KindShield
)

func (k EntityKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBall:
		return "ball"
	case KindCollectible:
		return "collectible"
	case KindSpecialPoint:
		return "special_point"
	case KindObstacle:
		return "obstacle"
	case KindPlatform:
		return "platform"
	case KindTeleporter:
		return "teleporter"
	case KindSpeedBoost:
		return "speed_boost"
	case KindSlowTrap:
		return "slow_trap"
	case KindTimeBonus:
		return "time_bonus"
	case KindLifePickup:
		return "life"
	case KindMultiplier:
		return "multiplier"
	case KindShield:
		return "shield"
	default:
		return "unknown"
	}
}

// Shape is a visual tag only; it never affects gameplay.
type Shape int

const (
	ShapeCube Shape = iota
	ShapeTorus
	ShapePyramid
	ShapeSphere
	ShapeTeapot
	ShapeCone
)

// Collectible is removed when picked up.
type Collectible struct {
	Pos   core.Vec3
	Shape Shape
	Tint  core.Color
}

// SpecialPoint stays in place once collected and is only flagged.
type SpecialPoint struct {
	Pos       core.Vec3
	Collected bool
}

// Obstacle costs a life on contact unless a shield absorbs it.
type Obstacle struct {
	Pos   core.Vec3
	Size  float64
	Shape Shape
}

// Platform is an axis-aligned box that slides back and forth on one axis.
type Platform struct {
	Pos      core.Vec3
	HalfSize core.Vec3
	Vel      core.Vec3
	Min, Max float64 // limits on the moving axis
}

// axis returns the index of the axis the platform moves on (0=x, 1=y, 2=z).
func (p Platform) axis() int {
	switch {
	case p.Vel.X != 0:
		return 0
	case p.Vel.Y != 0:
		return 1
	default:
		return 2
	}
}

// Teleporter moves the ball to Target when touched.
type Teleporter struct {
	Pos    core.Vec3
	Target core.Vec3
}

// SpeedBoost multiplies the ball speed for Duration seconds.
type SpeedBoost struct {
	Pos      core.Vec3
	Active   bool
	Duration float64
}

// SlowTrap divides the ball speed for Duration seconds.
type SlowTrap struct {
	Pos      core.Vec3
	Active   bool
	Duration float64
}

// TimeBonus takes Seconds off the dwell timer.
type TimeBonus struct {
	Pos     core.Vec3
	Active  bool
	Seconds float64
}

// LifePickup grants one extra life.
type LifePickup struct {
	Pos    core.Vec3
	Active bool
}

// Multiplier scales scoring by Factor for Duration seconds.
type Multiplier struct {
	Pos      core.Vec3
	Active   bool
	Duration float64
	Factor   int
}

// ShieldPickup grants a shield that absorbs one lethal contact.
type ShieldPickup struct {
	Pos       core.Vec3
	Collected bool
}

// Registry holds every entity collection of the current level.
type Registry struct {
	Collectibles []Collectible
	Specials     []SpecialPoint
	Obstacles    []Obstacle
	Platforms    []Platform
	Teleporters  []Teleporter
	SpeedBoosts  []SpeedBoost
	SlowTraps    []SlowTrap
	TimeBonuses  []TimeBonus
	Lives        []LifePickup
	Multipliers  []Multiplier
	Shields      []ShieldPickup
}

func vec(p config.Point3) core.Vec3 {
	return core.V3(p.X, p.Y, p.Z)
}

// loadLayout replaces the fixed entities (pickups, platforms, teleporters)
// with fresh copies from the layout. Random entities are left alone.
func (r *Registry) loadLayout(l config.LayoutConfig) {
	r.SpeedBoosts = r.SpeedBoosts[:0]
	for _, s := range l.SpeedBoosts {
		r.SpeedBoosts = append(r.SpeedBoosts, SpeedBoost{Pos: vec(s.Pos), Active: true, Duration: s.Duration})
	}
	r.SlowTraps = r.SlowTraps[:0]
	for _, s := range l.SlowTraps {
		r.SlowTraps = append(r.SlowTraps, SlowTrap{Pos: vec(s.Pos), Active: true, Duration: s.Duration})
	}
	r.TimeBonuses = r.TimeBonuses[:0]
	for _, s := range l.TimeBonuses {
		r.TimeBonuses = append(r.TimeBonuses, TimeBonus{Pos: vec(s.Pos), Active: true, Seconds: s.Seconds})
	}
	r.Lives = r.Lives[:0]
	for _, p := range l.Lives {
		r.Lives = append(r.Lives, LifePickup{Pos: vec(p), Active: true})
	}
	r.Multipliers = r.Multipliers[:0]
	for _, s := range l.Multipliers {
		r.Multipliers = append(r.Multipliers, Multiplier{Pos: vec(s.Pos), Active: true, Duration: s.Duration, Factor: s.Factor})
	}
	r.Shields = r.Shields[:0]
	for _, p := range l.Shields {
		r.Shields = append(r.Shields, ShieldPickup{Pos: vec(p)})
	}
	r.Platforms = r.Platforms[:0]
	for _, s := range l.Platforms {
		r.Platforms = append(r.Platforms, Platform{
			Pos:      vec(s.Pos),
			HalfSize: vec(s.Size).Scale(0.5),
			Vel:      vec(s.Vel),
			Min:      s.Limits[0],
			Max:      s.Limits[1],
		})
	}
	r.Teleporters = r.Teleporters[:0]
	for _, s := range l.Teleporters {
		r.Teleporters = append(r.Teleporters, Teleporter{Pos: vec(s.Pos), Target: vec(s.Target)})
	}
}

// LevelComplete reports whether every collectible is gone and every special point is flagged.
func (r *Registry) LevelComplete() bool {
	if len(r.Collectibles) > 0 {
		return false
	}
	for _, s := range r.Specials {
		if !s.Collected {
			return false
		}
	}
	return true
}

// SpecialsLeft counts special points not yet collected.
func (r *Registry) SpecialsLeft() int {
	n := 0
	for _, s := range r.Specials {
		if !s.Collected {
			n++
		}
	}
	return n
}

// clone deep-copies every collection so snapshots never alias live state.
func (r *Registry) clone() Registry {
	return Registry{
		Collectibles: cloneSlice(r.Collectibles),
		Specials:     cloneSlice(r.Specials),
		Obstacles:    cloneSlice(r.Obstacles),
		Platforms:    cloneSlice(r.Platforms),
		Teleporters:  cloneSlice(r.Teleporters),
		SpeedBoosts:  cloneSlice(r.SpeedBoosts),
		SlowTraps:    cloneSlice(r.SlowTraps),
		TimeBonuses:  cloneSlice(r.TimeBonuses),
		Lives:        cloneSlice(r.Lives),
		Multipliers:  cloneSlice(r.Multipliers),
		Shields:      cloneSlice(r.Shields),
	}
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
