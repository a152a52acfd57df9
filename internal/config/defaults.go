package config

import (
	_ "embed"
)

//go:embed defaults/rollball.yaml
var defaultRollballYAML []byte

// DefaultRollballConfig returns the built-in configuration.
// It mirrors defaults/rollball.yaml and is used when the embedded file cannot be parsed.
func DefaultRollballConfig() RollballConfig {
	return RollballConfig{
		Grid: GridConfig{
			SizeX:          30,
			SizeY:          20,
			TileSize:       60,
			SpawnGuard:     3,
			HazardBase:     30,
			HazardPerLevel: 3,
			HazardCap:      150,
		},
		Physics: PhysicsConfig{
			Gravity:         -500,
			JumpImpulse:     250,
			MaxJumpDuration: 0.35,
			BaseSpeed:       200,
			Restitution:     0.8,
			MaxDT:           0.05,
			GroundEpsilon:   1.0,
		},
		Ball: BallConfig{
			Radius: 15,
		},
		Gameplay: GameplayConfig{
			Lives:               3,
			MaxLevel:            10,
			DwellLimit:          5,
			SpeedPerLevel:       0.1,
			CollectiblePoints:   1,
			SpecialPoints:       5,
			CollectibleBase:     15,
			CollectiblePerLevel: 2,
			SpecialBase:         5,
			SpecialPerLevel:     1,
			ObstacleBase:        5,
			ObstaclePerLevel:    2,
			ObstacleCap:         20,
			ObstacleMinSize:     15,
			ObstacleMaxSize:     30,
			ObstacleHeight:      30,
			ObstacleMargin:      50,
			ItemHeight:          15,
		},
		PowerUps: PowerUpConfig{
			BoostFactor:    1.5,
			SlowFactor:     2.0,
			ShieldDuration: 10,
			Stacking:       StackRefresh,
			PickupRange:    10,
			ShieldRange:    15,
			ItemRange:      15,
			TeleportRange:  15,
		},
		Layout: LayoutConfig{
			SpeedBoosts: []TimedPickupSpec{
				{Pos: Point3{150, 150, 15}, Duration: 5},
				{Pos: Point3{-150, -150, 15}, Duration: 5},
			},
			SlowTraps: []TimedPickupSpec{
				{Pos: Point3{150, -150, 15}, Duration: 3},
				{Pos: Point3{-150, 150, 15}, Duration: 3},
			},
			TimeBonuses: []TimeBonusSpec{
				{Pos: Point3{250, 250, 15}, Seconds: 3},
				{Pos: Point3{-250, -250, 15}, Seconds: 3},
			},
			Lives: []Point3{
				{300, 0, 15},
				{-300, 0, 15},
			},
			Multipliers: []MultiplierSpec{
				{Pos: Point3{0, 300, 15}, Duration: 10, Factor: 2},
			},
			Shields: []Point3{
				{200, 200, 15},
				{-200, -200, 15},
			},
			Platforms: []PlatformSpec{
				{Pos: Point3{0, 0, 25}, Size: Point3{80, 30, 8}, Vel: Point3{60, 0, 0}, Limits: [2]float64{-250, 250}},
				{Pos: Point3{150, -150, 30}, Size: Point3{50, 50, 8}, Vel: Point3{0, 60, 0}, Limits: [2]float64{-200, 200}},
			},
			Teleporters: []TeleporterSpec{
				{Pos: Point3{300, 300, 15}, Target: Point3{-300, -300, 15}},
				{Pos: Point3{-300, 300, 15}, Target: Point3{300, -300, 15}},
			},
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRollballYAML
}
