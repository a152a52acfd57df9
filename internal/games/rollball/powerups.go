package rollball

import (
	"math"

	"github.com/vovakirdan/rollball/internal/config"
)

// EffectKind identifies a timed effect.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectSpeedBoost
	EffectSlowTrap
	EffectMultiplier
	EffectShield
	effectCount
)

func (k EffectKind) String() string {
	switch k {
	case EffectNone:
		return "none"
	case EffectSpeedBoost:
		return "speed_boost"
	case EffectSlowTrap:
		return "slow_trap"
	case EffectMultiplier:
		return "multiplier"
	case EffectShield:
		return "shield"
	default:
		return "unknown"
	}
}

// Effect is the state of one timed effect.
type Effect struct {
	Kind      EffectKind
	Active    bool
	Remaining float64
	Stacks    int // applications the expiry must undo
}

// PowerUps manages timed effects and the multipliers they drive.
type PowerUps struct {
	cfg      config.PowerUpConfig
	effects  [effectCount]Effect // indexed by kind; EffectNone is never active
	baseline float64

	SpeedMultiplier float64
	ScoreFactor     int
}

// NewPowerUps creates a manager with no active effects.
func NewPowerUps(cfg config.PowerUpConfig, baseline float64) *PowerUps {
	p := &PowerUps{cfg: cfg}
	p.Reset(baseline)
	return p
}

// Reset clears every effect and restores the given speed baseline.
func (p *PowerUps) Reset(baseline float64) {
	for k := range p.effects {
		p.effects[k] = Effect{Kind: EffectKind(k)}
	}
	p.baseline = baseline
	p.SpeedMultiplier = baseline
	p.ScoreFactor = 1
}

// Active reports whether an effect is running.
func (p *PowerUps) Active(kind EffectKind) bool {
	return p.effects[kind].Active
}

// Remaining returns the seconds left on an effect, or zero.
func (p *PowerUps) Remaining(kind EffectKind) float64 {
	return p.effects[kind].Remaining
}

// Effects returns a copy of every effect's state.
func (p *PowerUps) Effects() []Effect {
	out := make([]Effect, effectCount-EffectSpeedBoost)
	copy(out, p.effects[EffectSpeedBoost:])
	return out
}

// activate starts or re-triggers an effect. It reports whether the caller
// should apply the effect's change.
func (p *PowerUps) activate(kind EffectKind, duration float64) bool {
	e := &p.effects[kind]
	e.Remaining = duration
	if !e.Active {
		e.Active = true
		e.Stacks = 1
		return true
	}
	if p.cfg.Stacking == config.StackCompound {
		e.Stacks++
		return true
	}
	return false
}

// ActivateSpeedBoost multiplies the speed for duration seconds.
func (p *PowerUps) ActivateSpeedBoost(duration float64) {
	if p.activate(EffectSpeedBoost, duration) {
		p.SpeedMultiplier *= p.cfg.BoostFactor
	}
}

// ActivateSlowTrap divides the speed for duration seconds.
func (p *PowerUps) ActivateSlowTrap(duration float64) {
	if p.activate(EffectSlowTrap, duration) {
		p.SpeedMultiplier /= p.cfg.SlowFactor
	}
}

// ActivateMultiplier sets the score factor for duration seconds.
func (p *PowerUps) ActivateMultiplier(duration float64, factor int) {
	p.activate(EffectMultiplier, duration)
	p.ScoreFactor = factor
}

// ActivateShield raises the shield for the configured duration.
func (p *PowerUps) ActivateShield() {
	p.activate(EffectShield, p.cfg.ShieldDuration)
}

// ShieldActive reports whether a hit would be absorbed.
func (p *PowerUps) ShieldActive() bool {
	return p.effects[EffectShield].Active
}

// ConsumeShield drops the shield regardless of its remaining time.
// It reports whether there was a shield to consume.
func (p *PowerUps) ConsumeShield() bool {
	if !p.effects[EffectShield].Active {
		return false
	}
	p.effects[EffectShield] = Effect{Kind: EffectShield}
	return true
}

// Decay counts every active effect down by dt and undoes the ones that ran out.
// It returns the kinds that expired during this call.
func (p *PowerUps) Decay(dt float64) []EffectKind {
	var expired []EffectKind
	for k := range p.effects {
		e := &p.effects[k]
		if !e.Active {
			continue
		}
		e.Remaining = math.Max(0, e.Remaining-dt)
		if e.Remaining > 0 {
			continue
		}
		p.undo(e)
		*e = Effect{Kind: e.Kind}
		expired = append(expired, e.Kind)
	}
	return expired
}

func (p *PowerUps) undo(e *Effect) {
	switch e.Kind {
	case EffectSpeedBoost:
		p.SpeedMultiplier /= math.Pow(p.cfg.BoostFactor, float64(e.Stacks))
		// Snap back once no speed effect remains so rounding never drifts the baseline.
		if !p.effects[EffectSlowTrap].Active {
			p.SpeedMultiplier = p.baseline
		}
	case EffectSlowTrap:
		p.SpeedMultiplier *= math.Pow(p.cfg.SlowFactor, float64(e.Stacks))
		if !p.effects[EffectSpeedBoost].Active {
			p.SpeedMultiplier = p.baseline
		}
	case EffectMultiplier:
		p.ScoreFactor = 1
	}
}
