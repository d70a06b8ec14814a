package object

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/tomz197/ballpit/internal/vec"
)

// Validation errors returned by NewParticle.
var (
	ErrInvalidRadius   = errors.New("radius must be positive")
	ErrInvalidMass     = errors.New("mass must be positive")
	ErrInvalidTimestep = errors.New("timestep must be positive")
)

// Spec describes a particle at creation time.
type Spec struct {
	Position vec.Vec2
	Velocity vec.Vec2
	Radius   float64
	Mass     float64
	Color    color.RGBA // Render-only
}

// Particle is a circular rigid body integrated with position Verlet.
//
// Velocity is never stored: it is derived from the distance between the
// current and previous positions over one fixed timestep. Moving Pos
// therefore changes the velocity too, while SetVelocity only rewrites Prev.
type Particle struct {
	ID     int      // Stable index in the owning population
	Pos    vec.Vec2 // Current position (center)
	Prev   vec.Vec2 // Position one timestep ago
	Accel  vec.Vec2 // Acceleration accumulated for the next Integrate
	Radius float64
	Mass   float64
	Color  color.RGBA

	dt float64 // Fixed timestep the Verlet history is expressed in
}

// NewParticle creates a particle from s. dt is the fixed simulation timestep.
func NewParticle(id int, s Spec, dt float64) (*Particle, error) {
	if !(s.Radius > 0) {
		return nil, fmt.Errorf("particle %d: %w (got %g)", id, ErrInvalidRadius, s.Radius)
	}
	if !(s.Mass > 0) {
		return nil, fmt.Errorf("particle %d: %w (got %g)", id, ErrInvalidMass, s.Mass)
	}
	if !(dt > 0) {
		return nil, fmt.Errorf("particle %d: %w (got %g)", id, ErrInvalidTimestep, dt)
	}

	p := &Particle{
		ID:     id,
		Pos:    s.Position,
		Radius: s.Radius,
		Mass:   s.Mass,
		Color:  s.Color,
		dt:     dt,
	}
	p.SetVelocity(s.Velocity)
	return p, nil
}

// Timestep returns the fixed timestep the particle was created with.
func (p *Particle) Timestep() float64 {
	return p.dt
}

// ApplyAcceleration adds a to the acceleration used by the next Integrate.
// Repeated calls are additive.
func (p *Particle) ApplyAcceleration(a vec.Vec2) {
	p.Accel = p.Accel.Add(a)
}

// Integrate advances the particle by one timestep:
//
//	next = pos + (pos - prev)*damping + accel*dt²
//
// and clears the accumulated acceleration.
func (p *Particle) Integrate(damping float64) {
	step := p.Pos.Sub(p.Prev)
	next := p.Pos.Add(step.Scale(damping)).Add(p.Accel.Scale(p.dt * p.dt))

	p.Prev = p.Pos
	p.Pos = next
	p.Accel = vec.Zero
}

// Velocity returns the velocity implied by the position history.
func (p *Particle) Velocity() vec.Vec2 {
	return p.Pos.Sub(p.Prev).Div(p.dt)
}

// SetVelocity rewrites the previous position so that Velocity returns v.
// The current position is left untouched.
func (p *Particle) SetVelocity(v vec.Vec2) {
	p.Prev = p.Pos.Sub(v.Scale(p.dt))
}

// ConstrainToBounds keeps the circle inside [0,width]x[0,height].
// A wall that is crossed clamps the position tangent to it and reflects the
// normal velocity component scaled by restitution; the tangential component
// is kept. Axes are handled independently, so a corner corrects both.
func (p *Particle) ConstrainToBounds(width, height, restitution float64) {
	v := p.Velocity()
	hit := false

	switch {
	case p.Pos.X-p.Radius < 0:
		p.Pos.X = p.Radius
		v.X = -v.X * restitution
		hit = true
	case p.Pos.X+p.Radius > width:
		p.Pos.X = width - p.Radius
		v.X = -v.X * restitution
		hit = true
	}

	switch {
	case p.Pos.Y+p.Radius > height:
		p.Pos.Y = height - p.Radius
		v.Y = -v.Y * restitution
		hit = true
	case p.Pos.Y-p.Radius < 0:
		p.Pos.Y = p.Radius
		v.Y = -v.Y * restitution
		hit = true
	}

	if hit {
		p.SetVelocity(v)
	}
}

// KineticEnergy returns ½mv².
func (p *Particle) KineticEnergy() float64 {
	return 0.5 * p.Mass * p.Velocity().LenSq()
}

// Momentum returns m·v.
func (p *Particle) Momentum() vec.Vec2 {
	return p.Velocity().Scale(p.Mass)
}
