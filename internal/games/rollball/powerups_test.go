package rollball

import (
	"testing"

	"github.com/vovakirdan/rollball/internal/config"
)

var testBaseline = 1.1

func newTestPowerUps(stacking string) *PowerUps {
	cfg := config.DefaultRollballConfig().PowerUps
	cfg.Stacking = stacking
	return NewPowerUps(cfg, testBaseline)
}

func TestSpeedBoostExpiresOnce(t *testing.T) {
	p := newTestPowerUps(config.StackRefresh)
	p.ActivateSpeedBoost(5)

	if want := testBaseline * 1.5; p.SpeedMultiplier != want {
		t.Fatalf("SpeedMultiplier = %v, expected %v", p.SpeedMultiplier, want)
	}

	if expired := p.Decay(4); len(expired) != 0 {
		t.Errorf("Decay(4) expired %v early", expired)
	}
	if expired := p.Decay(2); len(expired) != 1 || expired[0] != EffectSpeedBoost {
		t.Errorf("Decay(2) = %v, expected [speed_boost]", expired)
	}
	if p.SpeedMultiplier != 1.1 {
		t.Errorf("SpeedMultiplier after expiry = %v, expected 1.1", p.SpeedMultiplier)
	}
	if p.Remaining(EffectSpeedBoost) != 0 || p.Active(EffectSpeedBoost) {
		t.Errorf("boost still running: remaining %v", p.Remaining(EffectSpeedBoost))
	}

	if expired := p.Decay(1); len(expired) != 0 {
		t.Errorf("second Decay expired %v again", expired)
	}
	if p.SpeedMultiplier != 1.1 {
		t.Errorf("SpeedMultiplier changed after expiry: %v", p.SpeedMultiplier)
	}
}

func TestRefreshStacking(t *testing.T) {
	p := newTestPowerUps(config.StackRefresh)
	p.ActivateSpeedBoost(5)
	p.Decay(3)
	p.ActivateSpeedBoost(5)

	if want := testBaseline * 1.5; p.SpeedMultiplier != want {
		t.Errorf("SpeedMultiplier = %v, expected %v", p.SpeedMultiplier, want)
	}
	if p.Remaining(EffectSpeedBoost) != 5 {
		t.Errorf("Remaining = %v, expected duration refreshed to 5", p.Remaining(EffectSpeedBoost))
	}
}

func TestCompoundStacking(t *testing.T) {
	p := newTestPowerUps(config.StackCompound)
	p.ActivateSlowTrap(3)
	p.ActivateSlowTrap(3)

	if want := testBaseline / 2 / 2; p.SpeedMultiplier != want {
		t.Errorf("SpeedMultiplier = %v, expected %v", p.SpeedMultiplier, want)
	}

	p.Decay(3)
	if p.SpeedMultiplier != 1.1 {
		t.Errorf("SpeedMultiplier after expiry = %v, expected 1.1", p.SpeedMultiplier)
	}
}

func TestBoostAndSlowOverlap(t *testing.T) {
	cfg := config.DefaultRollballConfig().PowerUps
	p := NewPowerUps(cfg, 1.0)
	p.ActivateSpeedBoost(5)
	p.ActivateSlowTrap(3)

	if p.SpeedMultiplier != 0.75 {
		t.Fatalf("SpeedMultiplier = %v, expected 0.75", p.SpeedMultiplier)
	}
	p.Decay(3)
	if p.SpeedMultiplier != 1.5 {
		t.Errorf("after slow expiry SpeedMultiplier = %v, expected 1.5", p.SpeedMultiplier)
	}
	p.Decay(2)
	if p.SpeedMultiplier != 1.0 {
		t.Errorf("after boost expiry SpeedMultiplier = %v, expected 1.0", p.SpeedMultiplier)
	}
}

func TestMultiplierFactor(t *testing.T) {
	p := newTestPowerUps(config.StackRefresh)
	p.ActivateMultiplier(10, 2)

	if p.ScoreFactor != 2 {
		t.Errorf("ScoreFactor = %d, expected 2", p.ScoreFactor)
	}
	p.Decay(10)
	if p.ScoreFactor != 1 {
		t.Errorf("ScoreFactor after expiry = %d, expected 1", p.ScoreFactor)
	}
}

func TestShieldConsume(t *testing.T) {
	p := newTestPowerUps(config.StackRefresh)

	if p.ConsumeShield() {
		t.Error("ConsumeShield() = true without a shield")
	}
	p.ActivateShield()
	if !p.ShieldActive() {
		t.Fatal("ShieldActive() = false after activation")
	}
	if !p.ConsumeShield() {
		t.Error("ConsumeShield() = false with an active shield")
	}
	if p.ShieldActive() || p.ConsumeShield() {
		t.Error("shield absorbed more than one hit")
	}
}

func TestResetClearsEffects(t *testing.T) {
	p := newTestPowerUps(config.StackRefresh)
	p.ActivateSpeedBoost(5)
	p.ActivateMultiplier(10, 2)
	p.ActivateShield()

	p.Reset(1.3)

	if p.SpeedMultiplier != 1.3 || p.ScoreFactor != 1 {
		t.Errorf("after Reset: SpeedMultiplier = %v, ScoreFactor = %d", p.SpeedMultiplier, p.ScoreFactor)
	}
	for _, e := range p.Effects() {
		if e.Active || e.Remaining != 0 {
			t.Errorf("effect %v still active after Reset", e.Kind)
		}
	}
	if expired := p.Decay(100); len(expired) != 0 {
		t.Errorf("Decay after Reset expired %v", expired)
	}
}

func TestEffectsOmitNone(t *testing.T) {
	p := NewPowerUps(config.DefaultRollballConfig().PowerUps, testBaseline)

	effects := p.Effects()
	if len(effects) != 4 {
		t.Fatalf("Effects() has %d entries, expected 4", len(effects))
	}
	for _, e := range effects {
		if e.Kind == EffectNone {
			t.Error("Effects() should not report EffectNone")
		}
	}
	if EffectKind(0).String() != "none" {
		t.Errorf("zero EffectKind = %v, expected none", EffectKind(0))
	}
}
