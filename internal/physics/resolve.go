package physics

import (
	"math"

	"github.com/tomz197/ballpit/internal/object"
)

// DefaultRestitution is the ball-ball coefficient of restitution.
const DefaultRestitution = 0.95

// Resolver separates overlapping particles and applies an impulse response.
type Resolver struct {
	Restitution float64
}

// Resolve handles a contact between a and b, which must be distinct.
//
// Overlap is removed along the contact normal, split inversely to mass so
// the heavier body moves less. Velocities are sampled before that push and
// written back after it, so the push itself leaves the derived velocities
// unchanged. If the bodies approach along the normal an impulse
//
//	j = -(1+e)(n·v_rel) / (1/m_a + 1/m_b)
//
// is applied. Separated or coincident bodies are left alone.
func (r Resolver) Resolve(a, b *object.Particle) {
	axis := a.Pos.Sub(b.Pos)
	distSq := axis.LenSq()
	minDist := a.Radius + b.Radius

	if distSq >= minDist*minDist || distSq == 0 {
		return
	}

	dist := math.Sqrt(distSq)
	overlap := minDist - dist
	n := axis.Div(dist)

	va := a.Velocity()
	vb := b.Velocity()

	totalMass := a.Mass + b.Mass
	a.Pos = a.Pos.Add(n.Scale(overlap * b.Mass / totalMass))
	b.Pos = b.Pos.Sub(n.Scale(overlap * a.Mass / totalMass))

	vRel := va.Sub(vb)
	nDotV := n.Dot(vRel)
	if nDotV < 0 {
		j := -(1 + r.Restitution) * nDotV / (1/a.Mass + 1/b.Mass)
		impulse := n.Scale(j)
		va = va.Add(impulse.Scale(1 / a.Mass))
		vb = vb.Sub(impulse.Scale(1 / b.Mass))
	}

	a.SetVelocity(va)
	b.SetVelocity(vb)
}
