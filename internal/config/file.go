package config

import (
	"fmt"
	"math"
	"time"

	"gopkg.in/gcfg.v1"

	"github.com/tomz197/ballpit/internal/physics"
)

// ArenaConfig is the [arena] section.
type ArenaConfig struct {
	Width  float64
	Height float64
}

// BodiesConfig is the [bodies] section.
type BodiesConfig struct {
	Count         int
	RadiusMin     float64 `gcfg:"radius-min"`
	RadiusMax     float64 `gcfg:"radius-max"`
	MaxSpeed      float64 `gcfg:"max-speed"`
	MassPerRadius float64 `gcfg:"mass-per-radius"`
	SpawnMargin   float64 `gcfg:"spawn-margin"`
	Seed          uint64
}

// PhysicsConfig is the [physics] section.
type PhysicsConfig struct {
	Timestep        float64
	Damping         float64
	Restitution     float64
	WallRestitution float64 `gcfg:"wall-restitution"`
	Gravity         float64
}

// CollisionConfig is the [collision] section.
type CollisionConfig struct {
	Strategy string
	Capacity int
	MaxDepth int `gcfg:"max-depth"`
}

// Config is the full simulation configuration. An INI file overrides any
// subset of the defaults:
//
//	[arena]
//	width = 800
//	height = 600
//
//	[bodies]
//	count = 67
//	radius-min = 15
//	radius-max = 25
//
//	[physics]
//	timestep = 0.01
//	damping = 0.999
//
//	[collision]
//	strategy = quadtree
type Config struct {
	Arena     ArenaConfig
	Bodies    BodiesConfig
	Physics   PhysicsConfig
	Collision CollisionConfig
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Arena: ArenaConfig{Width: ArenaWidth, Height: ArenaHeight},
		Bodies: BodiesConfig{
			Count:         BodyCount,
			RadiusMin:     RadiusMin,
			RadiusMax:     RadiusMax,
			MaxSpeed:      MaxSpeed,
			MassPerRadius: MassPerRadius,
			SpawnMargin:   SpawnMargin,
		},
		Physics: PhysicsConfig{
			Timestep:        Timestep,
			Damping:         Damping,
			Restitution:     Restitution,
			WallRestitution: WallRestitution,
			Gravity:         Gravity,
		},
		Collision: CollisionConfig{
			Strategy: Strategy,
			Capacity: QuadCapacity,
			MaxDepth: QuadMaxDepth,
		},
	}
}

// Load reads the INI file at path over the defaults and validates the result.
// An empty path returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := gcfg.ReadFileInto(cfg, path); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	return validated(cfg, path)
}

// validated checks cfg and names the source file in the error, if any.
func validated(cfg *Config, path string) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		if path == "" {
			return nil, err
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads INI text over the defaults and validates the result.
func Parse(text string) (*Config, error) {
	cfg := Default()
	if err := gcfg.ReadStringInto(cfg, text); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Arena.CheckInit(); err != nil {
		return err
	}
	if err := c.Bodies.CheckInit(c.Arena); err != nil {
		return err
	}
	if err := c.Physics.CheckInit(); err != nil {
		return err
	}
	return c.Collision.CheckInit()
}

func (a *ArenaConfig) CheckInit() error {
	if !(a.Width > 0) || !(a.Height > 0) || math.IsInf(a.Width, 0) || math.IsInf(a.Height, 0) {
		return fmt.Errorf("[arena] width and height must be positive, but are %g x %g", a.Width, a.Height)
	}
	return nil
}

func (b *BodiesConfig) CheckInit(arena ArenaConfig) error {
	switch {
	case b.Count < 0:
		return fmt.Errorf("[bodies] count must be non-negative, but is %d", b.Count)
	case !(b.RadiusMin > 0):
		return fmt.Errorf("[bodies] radius-min must be positive, but is %g", b.RadiusMin)
	case b.RadiusMax < b.RadiusMin:
		return fmt.Errorf("[bodies] radius-max (%g) must be >= radius-min (%g)", b.RadiusMax, b.RadiusMin)
	case 2*b.RadiusMax > math.Min(arena.Width, arena.Height):
		return fmt.Errorf("[bodies] radius-max %g does not fit a %g x %g arena", b.RadiusMax, arena.Width, arena.Height)
	case b.MaxSpeed < 0:
		return fmt.Errorf("[bodies] max-speed must be non-negative, but is %g", b.MaxSpeed)
	case !(b.MassPerRadius > 0):
		return fmt.Errorf("[bodies] mass-per-radius must be positive, but is %g", b.MassPerRadius)
	case b.SpawnMargin < 0:
		return fmt.Errorf("[bodies] spawn-margin must be non-negative, but is %g", b.SpawnMargin)
	}
	return nil
}

func (p *PhysicsConfig) CheckInit() error {
	switch {
	case !(p.Timestep > 0):
		return fmt.Errorf("[physics] timestep must be positive, but is %g", p.Timestep)
	case !(p.Damping > 0 && p.Damping <= 1):
		return fmt.Errorf("[physics] damping must be in (0, 1], but is %g", p.Damping)
	case !(p.Restitution >= 0 && p.Restitution <= 1):
		return fmt.Errorf("[physics] restitution must be in [0, 1], but is %g", p.Restitution)
	case !(p.WallRestitution >= 0 && p.WallRestitution <= 1):
		return fmt.Errorf("[physics] wall-restitution must be in [0, 1], but is %g", p.WallRestitution)
	}
	return nil
}

func (c *CollisionConfig) CheckInit() error {
	if _, err := physics.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("[collision] %w", err)
	}
	if c.Capacity < 1 {
		return fmt.Errorf("[collision] capacity must be at least 1, but is %d", c.Capacity)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("[collision] max-depth must be at least 1, but is %d", c.MaxDepth)
	}
	return nil
}

// TickDuration returns the fixed tick length as a duration.
func (p *PhysicsConfig) TickDuration() time.Duration {
	return time.Duration(p.Timestep * float64(time.Second))
}
