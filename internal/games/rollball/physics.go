package rollball

import (
	"github.com/vovakirdan/rollball/internal/config"
	"github.com/vovakirdan/rollball/internal/core"
)

// Ball is the player-controlled sphere.
type Ball struct {
	Pos         core.Vec3
	Vel         core.Vec3
	Radius      float64
	Jumping     bool
	JumpElapsed float64
	Supported   bool // resting on a platform after the last resolve
}

// Integrator advances the ball with explicit Euler steps.
type Integrator struct {
	phys         config.PhysicsConfig
	halfX, halfY float64
}

// NewIntegrator creates an integrator bounded by the grid's walls.
func NewIntegrator(phys config.PhysicsConfig, grid config.GridConfig) Integrator {
	return Integrator{phys: phys, halfX: grid.HalfX(), halfY: grid.HalfY()}
}

// OnFloor reports whether the ball touches the floor.
func (it Integrator) OnFloor(b *Ball) bool {
	return b.Pos.Z <= b.Radius+it.phys.GroundEpsilon
}

// Grounded reports whether the ball can start a jump.
func (it Integrator) Grounded(b *Ball) bool {
	return it.OnFloor(b) || b.Supported
}

// Step integrates one tick. dt must already be clamped.
func (it Integrator) Step(b *Ball, in core.InputFrame, speedMultiplier, dt float64) {
	dx, dy := in.Direction()
	speed := it.phys.BaseSpeed * speedMultiplier
	b.Vel.X = dx * speed
	b.Vel.Y = dy * speed

	switch {
	case in.JumpHeld && !b.Jumping && it.Grounded(b):
		b.Vel.Z = it.phys.JumpImpulse
		b.Jumping = true
		b.JumpElapsed = 0
	case b.Jumping:
		b.JumpElapsed += dt
		if !in.JumpHeld || b.JumpElapsed >= it.phys.MaxJumpDuration {
			b.Jumping = false
		}
	}

	b.Vel.Z += it.phys.Gravity * dt
	if b.Jumping {
		b.Vel.Z = max(b.Vel.Z, it.phys.JumpImpulse)
	}

	b.Supported = false
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	if b.Pos.Z < b.Radius {
		b.Pos.Z = b.Radius
		b.Vel.Z = 0
		b.Jumping = false
	}

	limitX := it.halfX - b.Radius
	if b.Pos.X > limitX || b.Pos.X < -limitX {
		b.Pos.X = core.ClampF(b.Pos.X, -limitX, limitX)
		b.Vel.X = -it.phys.Restitution * b.Vel.X
	}
	limitY := it.halfY - b.Radius
	if b.Pos.Y > limitY || b.Pos.Y < -limitY {
		b.Pos.Y = core.ClampF(b.Pos.Y, -limitY, limitY)
		b.Vel.Y = -it.phys.Restitution * b.Vel.Y
	}
}

// movePlatforms slides every platform along its axis, reflecting at the limits.
// Platforms without velocity are static and ignore their limits.
func movePlatforms(ps []Platform, dt float64) {
	for i := range ps {
		p := &ps[i]
		if p.Vel == (core.Vec3{}) {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))

		pos, vel := axisRef(p)
		if *pos > p.Max {
			*pos = p.Max
			*vel = -*vel
		} else if *pos < p.Min {
			*pos = p.Min
			*vel = -*vel
		}
	}
}

func axisRef(p *Platform) (*float64, *float64) {
	switch p.axis() {
	case 0:
		return &p.Pos.X, &p.Vel.X
	case 1:
		return &p.Pos.Y, &p.Vel.Y
	default:
		return &p.Pos.Z, &p.Vel.Z
	}
}
