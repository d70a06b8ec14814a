package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/ballpit/internal/object"
	"github.com/tomz197/ballpit/internal/vec"
)

const dt = 0.01

func ball(t testing.TB, id int, pos, vel vec.Vec2, radius, mass float64) *object.Particle {
	t.Helper()
	p, err := object.NewParticle(id, object.Spec{Position: pos, Velocity: vel, Radius: radius, Mass: mass}, dt)
	require.NoError(t, err)
	return p
}

func TestResolveHeadOnScenario(t *testing.T) {
	a := ball(t, 0, vec.Vec2{X: 100, Y: 200}, vec.Vec2{X: 50, Y: 0}, 20, 20)
	b := ball(t, 1, vec.Vec2{X: 130, Y: 200}, vec.Vec2{X: -50, Y: 0}, 20, 20)

	Resolver{Restitution: 0.95}.Resolve(a, b)

	assert.GreaterOrEqual(t, a.Pos.Dist(b.Pos), 40-1e-9, "separated")
	assert.InDelta(t, 95, a.Pos.X, 1e-9, "equal masses share the overlap")
	assert.InDelta(t, 135, b.Pos.X, 1e-9)

	va, vb := a.Velocity(), b.Velocity()
	assert.InDelta(t, -47.5, va.X, 1e-6)
	assert.InDelta(t, 47.5, vb.X, 1e-6)
	assert.InDelta(t, 0, va.Y, 1e-6, "tangential unchanged")
	assert.InDelta(t, 0, vb.Y, 1e-6, "tangential unchanged")
}

func TestResolveRestitutionAndMomentum(t *testing.T) {
	const e = 0.8
	a := ball(t, 0, vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 30, Y: 30}, 5, 4)
	b := ball(t, 1, vec.Vec2{X: 16, Y: 16}, vec.Vec2{X: -10, Y: 5}, 5, 4)

	n := a.Pos.Sub(b.Pos).Normalize()
	before := n.Dot(a.Velocity().Sub(b.Velocity()))
	momentum := a.Momentum().Add(b.Momentum())
	tangent := vec.Vec2{X: -n.Y, Y: n.X}
	tanA, tanB := tangent.Dot(a.Velocity()), tangent.Dot(b.Velocity())
	require.Less(t, before, 0.0, "bodies approach")

	Resolver{Restitution: e}.Resolve(a, b)

	after := n.Dot(a.Velocity().Sub(b.Velocity()))
	assert.InDelta(t, -e*before, after, 1e-6, "relative normal speed scaled by e")

	m := a.Momentum().Add(b.Momentum())
	assert.InDelta(t, momentum.X, m.X, 1e-6)
	assert.InDelta(t, momentum.Y, m.Y, 1e-6)
	assert.InDelta(t, tanA, tangent.Dot(a.Velocity()), 1e-6)
	assert.InDelta(t, tanB, tangent.Dot(b.Velocity()), 1e-6)
}

func TestResolveMassWeightedCorrection(t *testing.T) {
	heavy := ball(t, 0, vec.Vec2{X: 0, Y: 0}, vec.Zero, 10, 30)
	light := ball(t, 1, vec.Vec2{X: 16, Y: 0}, vec.Zero, 10, 10)

	Resolver{Restitution: 0.95}.Resolve(heavy, light)

	assert.InDelta(t, -1, heavy.Pos.X, 1e-9, "heavy body moves a quarter of the overlap")
	assert.InDelta(t, 19, light.Pos.X, 1e-9)
	assert.InDelta(t, 0, heavy.Velocity().X, 1e-6, "push alone injects no velocity")
	assert.InDelta(t, 0, light.Velocity().X, 1e-6)
}

func TestResolveSeparatingKeepsVelocity(t *testing.T) {
	a := ball(t, 0, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: -5, Y: 2}, 10, 1)
	b := ball(t, 1, vec.Vec2{X: 15, Y: 0}, vec.Vec2{X: 5, Y: 1}, 10, 1)

	Resolver{Restitution: 0.95}.Resolve(a, b)

	assert.GreaterOrEqual(t, a.Pos.Dist(b.Pos), 20-1e-9)
	assert.InDelta(t, -5, a.Velocity().X, 1e-6)
	assert.InDelta(t, 2, a.Velocity().Y, 1e-6)
	assert.InDelta(t, 5, b.Velocity().X, 1e-6)
	assert.InDelta(t, 1, b.Velocity().Y, 1e-6)
}

func TestResolveNonOverlappingIsIdempotent(t *testing.T) {
	a := ball(t, 0, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 3, Y: 0}, 10, 1)
	b := ball(t, 1, vec.Vec2{X: 50, Y: 0}, vec.Vec2{X: -3, Y: 0}, 10, 1)
	r := Resolver{Restitution: 0.95}

	r.Resolve(a, b)
	sa, sb := *a, *b
	r.Resolve(a, b)
	assert.Equal(t, sa, *a)
	assert.Equal(t, sb, *b)

	// touching exactly is not overlapping
	c := ball(t, 2, vec.Vec2{X: 20, Y: 0}, vec.Vec2{X: -3, Y: 0}, 10, 1)
	sc := *c
	r.Resolve(a, c)
	assert.Equal(t, sa, *a)
	assert.Equal(t, sc, *c)
}

func TestResolveCoincidentCentersSkipped(t *testing.T) {
	a := ball(t, 0, vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 1, Y: 0}, 10, 1)
	b := ball(t, 1, vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: -1, Y: 0}, 10, 1)
	sa, sb := *a, *b

	Resolver{Restitution: 0.95}.Resolve(a, b)

	assert.Equal(t, sa, *a)
	assert.Equal(t, sb, *b)
	assert.False(t, Overlapping(a, b))
}

func TestResolveNonPenetration(t *testing.T) {
	r := Resolver{Restitution: DefaultRestitution}
	offsets := []vec.Vec2{{X: 1, Y: 0}, {X: 3, Y: 4}, {X: -7, Y: 2}, {X: 0.01, Y: -0.02}, {X: 20, Y: 5}}
	for _, off := range offsets {
		a := ball(t, 0, vec.Vec2{X: 100, Y: 100}, vec.Vec2{X: 10, Y: -4}, 15, 15)
		b := ball(t, 1, vec.Vec2{X: 100, Y: 100}.Add(off), vec.Vec2{X: -8, Y: 2}, 12, 7)

		r.Resolve(a, b)
		assert.GreaterOrEqual(t, a.Pos.Dist(b.Pos), a.Radius+b.Radius-1e-9, "offset %v", off)
	}
}

func TestPairKeyIsOrderIndependent(t *testing.T) {
	assert.Equal(t, PairKey(3, 9), PairKey(9, 3))
	assert.NotEqual(t, PairKey(3, 9), PairKey(3, 8))
	assert.NotEqual(t, PairKey(0, 1), PairKey(1, 2))
	assert.Equal(t, uint64(1)<<32|2, PairKey(2, 1))
}
