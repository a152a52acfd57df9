package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRollballConfig()) {
		t.Errorf("embedded YAML and DefaultRollballConfig() differ:\n%+v\n%+v", cfg, DefaultRollballConfig())
	}
}

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultRollballConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *RollballConfig)
	}{
		{"zero grid", func(c *RollballConfig) { c.Grid.SizeX = 0 }},
		{"negative tile", func(c *RollballConfig) { c.Grid.TileSize = -1 }},
		{"zero radius", func(c *RollballConfig) { c.Ball.Radius = 0 }},
		{"zero max dt", func(c *RollballConfig) { c.Physics.MaxDT = 0 }},
		{"restitution above one", func(c *RollballConfig) { c.Physics.Restitution = 1.5 }},
		{"no lives", func(c *RollballConfig) { c.Gameplay.Lives = 0 }},
		{"no dwell limit", func(c *RollballConfig) { c.Gameplay.DwellLimit = 0 }},
		{"unknown stacking", func(c *RollballConfig) { c.PowerUps.Stacking = "ignore" }},
		{"reversed platform limits", func(c *RollballConfig) { c.Layout.Platforms[0].Limits = [2]float64{10, -10} }},
		{"zero multiplier factor", func(c *RollballConfig) { c.Layout.Multipliers[0].Factor = 0 }},
		{"too many hazards", func(c *RollballConfig) {
			c.Grid.SizeX, c.Grid.SizeY = 8, 8
			c.Grid.HazardCap = 500
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRollballConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid, got %v", err)
			}
		})
	}
}

func TestEligibleCells(t *testing.T) {
	tests := []struct {
		name     string
		grid     GridConfig
		expected int
	}{
		{"default grid", GridConfig{SizeX: 30, SizeY: 20, SpawnGuard: 3}, 600 - 49},
		{"no guard", GridConfig{SizeX: 10, SizeY: 10, SpawnGuard: 0}, 99},
		{"guard wider than grid", GridConfig{SizeX: 4, SizeY: 4, SpawnGuard: 5}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.grid.EligibleCells(); got != tc.expected {
				t.Errorf("EligibleCells() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestLevelScaling(t *testing.T) {
	s := NewLevelScaling(DefaultRollballConfig())

	tests := []struct {
		level                                  int
		hazards, collectibles, specials, obsts int
	}{
		{1, 33, 17, 6, 7},
		{5, 45, 25, 10, 15},
		{10, 60, 35, 15, 20},
	}

	for _, tc := range tests {
		if got := s.HazardCount(tc.level); got != tc.hazards {
			t.Errorf("HazardCount(%d) = %d, expected %d", tc.level, got, tc.hazards)
		}
		if got := s.CollectibleCount(tc.level); got != tc.collectibles {
			t.Errorf("CollectibleCount(%d) = %d, expected %d", tc.level, got, tc.collectibles)
		}
		if got := s.SpecialCount(tc.level); got != tc.specials {
			t.Errorf("SpecialCount(%d) = %d, expected %d", tc.level, got, tc.specials)
		}
		if got := s.ObstacleCount(tc.level); got != tc.obsts {
			t.Errorf("ObstacleCount(%d) = %d, expected %d", tc.level, got, tc.obsts)
		}
	}

	if got := s.HazardCount(100); got != 150 {
		t.Errorf("HazardCount(100) = %d, expected cap 150", got)
	}
	if got := s.SpeedBaseline(3); got < 1.2999 || got > 1.3001 {
		t.Errorf("SpeedBaseline(3) = %f, expected 1.3", got)
	}
	if s.ClampLevel(0) != 1 || s.ClampLevel(11) != 10 {
		t.Error("ClampLevel() should keep levels within [1, 10]")
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("gameplay:\n  lives: 7\npowerups:\n  stacking: compound\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.PowerUps.Stacking != StackCompound {
		t.Errorf("Stacking = %q, expected compound", cfg.PowerUps.Stacking)
	}
	if cfg.Grid.SizeX != 30 {
		t.Errorf("unspecified fields should keep defaults, SizeX = %d", cfg.Grid.SizeX)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() of an invalid file should wrap ErrInvalid, got %v", err)
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := DefaultRollballConfig()
	ApplyPreset(&cfg, DifficultyHard)

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back.Gameplay.Lives != 2 || back.Difficulty.Preset != DifficultyHard {
		t.Errorf("hard preset lost in round trip: lives=%d preset=%q", back.Gameplay.Lives, back.Difficulty.Preset)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		lives  int
		dwell  float64
	}{
		{DifficultyEasy, 5, 8},
		{DifficultyNormal, 3, 5},
		{DifficultyHard, 2, 4},
		{"", 3, 5},
	}

	for _, tc := range tests {
		cfg := DefaultRollballConfig()
		ApplyPreset(&cfg, tc.preset)
		if cfg.Gameplay.Lives != tc.lives || cfg.Gameplay.DwellLimit != tc.dwell {
			t.Errorf("ApplyPreset(%q): lives=%d dwell=%g, expected %d/%g",
				tc.preset, cfg.Gameplay.Lives, cfg.Gameplay.DwellLimit, tc.lives, tc.dwell)
		}
	}

	if ParsePreset("hard") != DifficultyHard || ParsePreset("fixed") != "" {
		t.Error("ParsePreset() mismatch")
	}
}
