// Package config provides YAML-based game configuration loading, validation and
// per-level scaling for rollball.
package config

// RollballConfig contains all tunable parameters of the simulation.
type RollballConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Ball       BallConfig       `yaml:"ball"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Layout     LayoutConfig     `yaml:"layout"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the tiled floor and hazard density.
type GridConfig struct {
	SizeX          int     `yaml:"size_x"`
	SizeY          int     `yaml:"size_y"`
	TileSize       float64 `yaml:"tile_size"`
	SpawnGuard     int     `yaml:"spawn_guard"` // Chebyshev half-width of the hazard-free block around the center
	HazardBase     int     `yaml:"hazard_base"`
	HazardPerLevel int     `yaml:"hazard_per_level"`
	HazardCap      int     `yaml:"hazard_cap"`
}

// HalfX returns half the floor width in world units.
func (g GridConfig) HalfX() float64 {
	return float64(g.SizeX) * g.TileSize / 2
}

// HalfY returns half the floor depth in world units.
func (g GridConfig) HalfY() float64 {
	return float64(g.SizeY) * g.TileSize / 2
}

// PhysicsConfig defines the integrator constants. Units are world units and seconds.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"` // Negative: pulls toward the floor
	JumpImpulse     float64 `yaml:"jump_impulse"`
	MaxJumpDuration float64 `yaml:"max_jump_duration"`
	BaseSpeed       float64 `yaml:"base_speed"`
	Restitution     float64 `yaml:"restitution"` // Wall bounce damping
	MaxDT           float64 `yaml:"max_dt"`
	GroundEpsilon   float64 `yaml:"ground_epsilon"`
}

// BallConfig defines the player sphere.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
}

// GameplayConfig defines lives, scoring and per-level entity counts.
type GameplayConfig struct {
	Lives               int     `yaml:"lives"`
	MaxLevel            int     `yaml:"max_level"`
	DwellLimit          float64 `yaml:"dwell_limit"` // Seconds on one tile before a life is lost
	SpeedPerLevel       float64 `yaml:"speed_per_level"`
	CollectiblePoints   int     `yaml:"collectible_points"`
	SpecialPoints       int     `yaml:"special_points"`
	CollectibleBase     int     `yaml:"collectible_base"`
	CollectiblePerLevel int     `yaml:"collectible_per_level"`
	SpecialBase         int     `yaml:"special_base"`
	SpecialPerLevel     int     `yaml:"special_per_level"`
	ObstacleBase        int     `yaml:"obstacle_base"`
	ObstaclePerLevel    int     `yaml:"obstacle_per_level"`
	ObstacleCap         int     `yaml:"obstacle_cap"`
	ObstacleMinSize     float64 `yaml:"obstacle_min_size"`
	ObstacleMaxSize     float64 `yaml:"obstacle_max_size"`
	ObstacleHeight      float64 `yaml:"obstacle_height"`
	ObstacleMargin      float64 `yaml:"obstacle_margin"` // Distance kept from the walls
	ItemHeight          float64 `yaml:"item_height"`
}

// Stacking policies for re-collecting an effect that is already running.
const (
	StackRefresh  = "refresh"  // Reset the duration only
	StackCompound = "compound" // Reset the duration and apply the change again
)

// PowerUpConfig defines effect strengths and pickup ranges.
type PowerUpConfig struct {
	BoostFactor    float64 `yaml:"boost_factor"`
	SlowFactor     float64 `yaml:"slow_factor"`
	ShieldDuration float64 `yaml:"shield_duration"`
	Stacking       string  `yaml:"stacking"`
	PickupRange    float64 `yaml:"pickup_range"` // Added to the ball radius
	ShieldRange    float64 `yaml:"shield_range"`
	ItemRange      float64 `yaml:"item_range"` // Collectibles and special points
	TeleportRange  float64 `yaml:"teleport_range"`
}

// Point3 is a world-space position in config files.
type Point3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// TimedPickupSpec places a speed boost or slow trap.
type TimedPickupSpec struct {
	Pos      Point3  `yaml:"pos"`
	Duration float64 `yaml:"duration"`
}

// TimeBonusSpec places a pickup that buys back tile-dwell time.
type TimeBonusSpec struct {
	Pos     Point3  `yaml:"pos"`
	Seconds float64 `yaml:"seconds"`
}

// MultiplierSpec places a score multiplier pickup.
type MultiplierSpec struct {
	Pos      Point3  `yaml:"pos"`
	Duration float64 `yaml:"duration"`
	Factor   int     `yaml:"factor"`
}

// PlatformSpec describes a moving platform oscillating on one axis.
type PlatformSpec struct {
	Pos    Point3     `yaml:"pos"`
	Size   Point3     `yaml:"size"` // Full extents
	Vel    Point3     `yaml:"vel"`
	Limits [2]float64 `yaml:"limits"`
}

// TeleporterSpec links a pad to a destination.
type TeleporterSpec struct {
	Pos    Point3 `yaml:"pos"`
	Target Point3 `yaml:"target"`
}

// LayoutConfig holds the fixed, hand-placed entities of every level.
type LayoutConfig struct {
	SpeedBoosts []TimedPickupSpec `yaml:"speed_boosts"`
	SlowTraps   []TimedPickupSpec `yaml:"slow_traps"`
	TimeBonuses []TimeBonusSpec   `yaml:"time_bonuses"`
	Lives       []Point3          `yaml:"lives"`
	Multipliers []MultiplierSpec  `yaml:"multipliers"`
	Shields     []Point3          `yaml:"shields"`
	Platforms   []PlatformSpec    `yaml:"platforms"`
	Teleporters []TeleporterSpec  `yaml:"teleporters"`
}

// DifficultyConfig records which preset produced the config.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
