// Package world owns the simulated population and advances it one fixed
// tick at a time.
package world

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/rand"

	"github.com/tomz197/ballpit/internal/config"
	"github.com/tomz197/ballpit/internal/object"
	"github.com/tomz197/ballpit/internal/physics"
	"github.com/tomz197/ballpit/internal/vec"
)

// Stats describes the most recent tick. Instrumentation only.
type Stats struct {
	Tick         uint64
	Strategy     physics.Strategy
	Checks       int           // Pair checks made by the collision pass
	PassDuration time.Duration // Wall time spent in the collision pass
}

// BodyView is the renderer's read-only view of one particle.
type BodyView struct {
	Pos    vec.Vec2
	Radius float64
	Color  color.RGBA
}

// Snapshot is what a renderer needs to draw one frame.
type Snapshot struct {
	Bodies []BodyView
	Width  float64
	Height float64
	Stats  Stats
}

// World holds the particle population and the per-tick collision machinery.
// It is not safe for concurrent use.
type World struct {
	cfg       *config.Config
	particles []*object.Particle
	resolver  physics.Resolver
	pass      *physics.Pass
	strategy  physics.Strategy
	gravity   vec.Vec2
	stats     Stats
	logger    *log.Logger

	viewBuf []BodyView // Reused by Snapshot
}

// New creates a world from cfg and seeds its population from rng.
// A nil logger discards log output.
func New(cfg *config.Config, rng *rand.Rand, logger *log.Logger) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	strategy, err := physics.ParseStrategy(cfg.Collision.Strategy)
	if err != nil {
		return nil, err
	}
	particles, err := Populate(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("populating world: %w", err)
	}
	return NewWithParticles(cfg, particles, strategy, logger), nil
}

// NewWithParticles creates a world around an existing population. The
// particles' IDs must be their indices in the slice.
func NewWithParticles(cfg *config.Config, particles []*object.Particle, s physics.Strategy, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := &World{
		cfg:       cfg,
		particles: particles,
		resolver:  physics.Resolver{Restitution: cfg.Physics.Restitution},
		pass:      physics.NewPass(cfg.Arena.Width, cfg.Arena.Height, cfg.Collision.Capacity, cfg.Collision.MaxDepth),
		strategy:  s,
		gravity:   vec.Vec2{Y: cfg.Physics.Gravity},
		logger:    logger,
	}
	w.stats.Strategy = s
	w.logger.Debug("world created",
		"bodies", len(particles),
		"arena", fmt.Sprintf("%gx%g", cfg.Arena.Width, cfg.Arena.Height),
		"strategy", s,
	)
	return w
}

// Reseed replaces the population with a fresh one drawn from rng. The tick
// counter and strategy are kept.
func (w *World) Reseed(rng *rand.Rand) error {
	particles, err := Populate(w.cfg, rng)
	if err != nil {
		return fmt.Errorf("reseeding world: %w", err)
	}
	w.particles = particles
	w.logger.Info("world reseeded", "bodies", len(particles))
	return nil
}

// Particles returns the population. Callers must not add or remove entries.
func (w *World) Particles() []*object.Particle {
	return w.particles
}

// Config returns the configuration the world was built with.
func (w *World) Config() *config.Config {
	return w.cfg
}

// Strategy returns the active broad-phase strategy.
func (w *World) Strategy() physics.Strategy {
	return w.strategy
}

// SetStrategy switches the broad-phase strategy used from the next tick on.
func (w *World) SetStrategy(s physics.Strategy) {
	if !s.Valid() || s == w.strategy {
		return
	}
	w.logger.Info("collision strategy changed", "from", w.strategy, "to", s)
	w.strategy = s
}

// CycleStrategy switches to the next strategy and returns it.
func (w *World) CycleStrategy() physics.Strategy {
	w.SetStrategy(w.strategy.Next())
	return w.strategy
}

// Gravity returns the constant acceleration applied every tick.
func (w *World) Gravity() vec.Vec2 {
	return w.gravity
}

// SetGravity replaces the constant acceleration applied every tick.
func (w *World) SetGravity(g vec.Vec2) {
	w.gravity = g
}

// Step advances the world by one fixed tick. accel is the externally driven
// acceleration applied uniformly to every particle on top of gravity.
func (w *World) Step(accel vec.Vec2) Stats {
	phys := w.cfg.Physics
	a := accel.Add(w.gravity)

	for _, p := range w.particles {
		p.ApplyAcceleration(a)
		p.Integrate(phys.Damping)
		p.ConstrainToBounds(w.cfg.Arena.Width, w.cfg.Arena.Height, phys.WallRestitution)
	}

	start := time.Now()
	checks := w.pass.Run(w.strategy, w.particles, w.resolver)
	elapsed := time.Since(start)

	w.stats = Stats{
		Tick:         w.stats.Tick + 1,
		Strategy:     w.strategy,
		Checks:       checks,
		PassDuration: elapsed,
	}
	return w.stats
}

// Stats returns the statistics of the last tick.
func (w *World) Stats() Stats {
	return w.stats
}

// Snapshot returns the renderer view of the current state. The Bodies slice
// is reused and only valid until the next call.
func (w *World) Snapshot() Snapshot {
	if cap(w.viewBuf) < len(w.particles) {
		w.viewBuf = make([]BodyView, len(w.particles))
	}
	views := w.viewBuf[:len(w.particles)]
	for i, p := range w.particles {
		views[i] = BodyView{Pos: p.Pos, Radius: p.Radius, Color: p.Color}
	}
	return Snapshot{
		Bodies: views,
		Width:  w.cfg.Arena.Width,
		Height: w.cfg.Arena.Height,
		Stats:  w.stats,
	}
}

// Energy returns the total kinetic energy.
func (w *World) Energy() float64 {
	e := 0.0
	for _, p := range w.particles {
		e += p.KineticEnergy()
	}
	return e
}

// Momentum returns the total linear momentum.
func (w *World) Momentum() vec.Vec2 {
	m := vec.Zero
	for _, p := range w.particles {
		m = m.Add(p.Momentum())
	}
	return m
}
