// Package physics resolves contacts between particles: the narrow-phase
// impulse resolver and the broad-phase collision pass that feeds it.
package physics

import (
	"github.com/tomz197/ballpit/internal/object"
	"github.com/tomz197/ballpit/internal/vec"
)

// CirclesOverlap checks if two circles overlap. Touching circles do not.
func CirclesOverlap(c1 vec.Vec2, r1 float64, c2 vec.Vec2, r2 float64) bool {
	minDist := r1 + r2
	return c1.DistSq(c2) < minDist*minDist
}

// Overlapping reports whether a and b interpenetrate with distinct centers,
// which is exactly when Resolve has an effect.
func Overlapping(a, b *object.Particle) bool {
	d := a.Pos.DistSq(b.Pos)
	return d > 0 && CirclesOverlap(a.Pos, a.Radius, b.Pos, b.Radius)
}

// MaxRadius returns the largest radius in particles, or 0 for none.
func MaxRadius(particles []*object.Particle) float64 {
	m := 0.0
	for _, p := range particles {
		if p.Radius > m {
			m = p.Radius
		}
	}
	return m
}

// PairKey returns an order-independent key for the pair of particle ids.
func PairKey(a, b int) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(uint32(a))<<32 | uint64(uint32(b))
}
