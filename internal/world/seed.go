package world

import (
	"image/color"
	"math"

	"golang.org/x/exp/rand"

	"github.com/tomz197/ballpit/internal/config"
	"github.com/tomz197/ballpit/internal/object"
	"github.com/tomz197/ballpit/internal/vec"
)

// NewRand returns the generator used for seeding. A zero seed is replaced by
// fallback (typically the current time) so runs differ unless pinned.
func NewRand(seed, fallback uint64) *rand.Rand {
	if seed == 0 {
		seed = fallback
	}
	return rand.New(rand.NewSource(seed))
}

// Populate creates cfg.Bodies.Count particles with random radius, velocity,
// position and color. Every particle starts fully inside the arena.
func Populate(cfg *config.Config, rng *rand.Rand) ([]*object.Particle, error) {
	b := cfg.Bodies
	w, h := cfg.Arena.Width, cfg.Arena.Height

	posMin := b.SpawnMargin
	posMax := math.Min(w, h) - b.SpawnMargin
	if posMax < posMin {
		posMin, posMax = 0, math.Min(w, h)
	}

	particles := make([]*object.Particle, 0, b.Count)
	for i := 0; i < b.Count; i++ {
		r := uniform(rng, b.RadiusMin, b.RadiusMax)
		vel := vec.Vec2{
			X: uniform(rng, -b.MaxSpeed, b.MaxSpeed),
			Y: uniform(rng, -b.MaxSpeed, b.MaxSpeed),
		}
		pos := vec.Vec2{
			X: clamp(uniform(rng, posMin, posMax), r, w-r),
			Y: clamp(uniform(rng, posMin, posMax), r, h-r),
		}
		c := color.RGBA{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256)), A: 255}

		p, err := object.NewParticle(i, object.Spec{
			Position: pos,
			Velocity: vel,
			Radius:   r,
			Mass:     r * b.MassPerRadius,
			Color:    c,
		}, cfg.Physics.Timestep)
		if err != nil {
			return nil, err
		}
		particles = append(particles, p)
	}
	return particles, nil
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
