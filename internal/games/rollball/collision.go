package rollball

import (
	"math"

	"github.com/vovakirdan/rollball/internal/core"
)

// contact is the outcome of one resolve pass. At most one life is lost per
// tick, so the resolver only records the first lethal cause.
type contact struct {
	lethal bool
	cause  Cause
}

func (c *contact) kill(cause Cause) {
	if !c.lethal {
		c.lethal = true
		c.cause = cause
	}
}

func (g *Game) touches(pos core.Vec3, reach float64) bool {
	return core.Dist(g.ball.Pos, pos) < g.ball.Radius+reach
}

// resolve runs every collision check in a fixed order.
func (g *Game) resolve() contact {
	var c contact
	g.resolvePlatforms()
	g.resolveTeleporters()
	g.resolveObstacles(&c)
	g.resolvePickups()
	g.resolveCollectibles()
	g.resolveSpecials()
	g.resolveHazard(&c)
	return c
}

func (g *Game) resolvePlatforms() {
	b := &g.ball
	for _, p := range g.reg.Platforms {
		d := b.Pos.Sub(p.Pos)
		if math.Abs(d.X) > p.HalfSize.X || math.Abs(d.Y) > p.HalfSize.Y || math.Abs(d.Z) > p.HalfSize.Z+b.Radius {
			continue
		}
		if b.Pos.Z <= p.Pos.Z {
			continue
		}
		b.Pos.Z = p.Pos.Z + p.HalfSize.Z + b.Radius
		b.Vel.Z = 0
		b.Jumping = false
		b.Supported = true
	}
}

// resolveTeleporters moves the ball to the first touched pad's target. Pads
// stay disarmed after a jump until the ball has left every trigger range, so
// a target placed on another pad cannot chain.
func (g *Game) resolveTeleporters() {
	reach := g.cfg.PowerUps.TeleportRange
	hit := -1
	for i, tp := range g.reg.Teleporters {
		if g.touches(tp.Pos, reach) {
			hit = i
			break
		}
	}
	if hit < 0 {
		g.teleportArmed = true
		return
	}
	if !g.teleportArmed {
		return
	}

	target := g.reg.Teleporters[hit].Target
	target.Z = max(target.Z, g.ball.Radius)
	g.ball.Pos = target
	g.teleportArmed = false
	g.emit(Event{Kind: EventTeleport, Entity: KindTeleporter})
}

func (g *Game) resolveObstacles(c *contact) {
	for _, o := range g.reg.Obstacles {
		if !g.touches(o.Pos, o.Size) {
			continue
		}
		if g.power.ConsumeShield() {
			g.emit(Event{Kind: EventShieldAbsorb, Entity: KindObstacle})
			continue
		}
		c.kill(CauseObstacle)
		return
	}
}

func (g *Game) resolvePickups() {
	reach := g.cfg.PowerUps.PickupRange

	for i := range g.reg.SpeedBoosts {
		p := &g.reg.SpeedBoosts[i]
		if p.Active && g.touches(p.Pos, reach) {
			p.Active = false
			g.power.ActivateSpeedBoost(p.Duration)
			g.emit(Event{Kind: EventPickup, Entity: KindSpeedBoost})
		}
	}
	for i := range g.reg.SlowTraps {
		p := &g.reg.SlowTraps[i]
		if p.Active && g.touches(p.Pos, reach) {
			p.Active = false
			g.power.ActivateSlowTrap(p.Duration)
			g.emit(Event{Kind: EventPickup, Entity: KindSlowTrap})
		}
	}
	for i := range g.reg.TimeBonuses {
		p := &g.reg.TimeBonuses[i]
		if p.Active && g.touches(p.Pos, reach) {
			p.Active = false
			g.dwell.Reduce(p.Seconds)
			g.emit(Event{Kind: EventPickup, Entity: KindTimeBonus})
		}
	}
	for i := range g.reg.Lives {
		p := &g.reg.Lives[i]
		if p.Active && g.touches(p.Pos, reach) {
			p.Active = false
			g.lives++
			g.emit(Event{Kind: EventPickup, Entity: KindLifePickup})
		}
	}
	for i := range g.reg.Multipliers {
		p := &g.reg.Multipliers[i]
		if p.Active && g.touches(p.Pos, reach) {
			p.Active = false
			g.power.ActivateMultiplier(p.Duration, p.Factor)
			g.emit(Event{Kind: EventPickup, Entity: KindMultiplier})
		}
	}
	for i := range g.reg.Shields {
		p := &g.reg.Shields[i]
		if !p.Collected && g.touches(p.Pos, g.cfg.PowerUps.ShieldRange) {
			p.Collected = true
			g.power.ActivateShield()
			g.emit(Event{Kind: EventPickup, Entity: KindShield})
		}
	}
}

func (g *Game) resolveCollectibles() {
	reach := g.cfg.PowerUps.ItemRange
	kept := g.reg.Collectibles[:0]
	for _, item := range g.reg.Collectibles {
		if !g.touches(item.Pos, reach) {
			kept = append(kept, item)
			continue
		}
		points := g.cfg.Gameplay.CollectiblePoints * g.power.ScoreFactor
		g.score += points
		g.emit(Event{Kind: EventCollect, Entity: KindCollectible, Points: points})
	}
	g.reg.Collectibles = kept
}

func (g *Game) resolveSpecials() {
	reach := g.cfg.PowerUps.ItemRange
	for i := range g.reg.Specials {
		s := &g.reg.Specials[i]
		if s.Collected || !g.touches(s.Pos, reach) {
			continue
		}
		s.Collected = true
		points := g.cfg.Gameplay.SpecialPoints * g.power.ScoreFactor
		g.score += points
		g.emit(Event{Kind: EventSpecial, Entity: KindSpecialPoint, Points: points})
	}
}

func (g *Game) resolveHazard(c *contact) {
	if c.lethal || !g.integrator.OnFloor(&g.ball) {
		return
	}
	if !g.grid.IsHazard(g.grid.CellAt(g.ball.Pos.X, g.ball.Pos.Y)) {
		return
	}
	if g.power.ConsumeShield() {
		g.emit(Event{Kind: EventShieldAbsorb, Cause: CauseHazard})
		return
	}
	c.kill(CauseHazard)
}
