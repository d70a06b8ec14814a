package loop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/rand"

	"github.com/tomz197/ballpit/internal/config"
	"github.com/tomz197/ballpit/internal/draw"
	"github.com/tomz197/ballpit/internal/input"
	"github.com/tomz197/ballpit/internal/vec"
	"github.com/tomz197/ballpit/internal/world"
)

// maxFrameDelta caps the time fed to the stepper in one frame so a stalled
// terminal does not trigger a long burst of catch-up ticks.
const maxFrameDelta = 250 * time.Millisecond

// Session is the interactive state wrapped around one world: the fixed-step
// driver, user toggles and frame statistics.
type Session struct {
	World   *world.World
	Stepper *world.Stepper

	Paused    bool
	GravityOn bool
	Running   bool

	fps    float64 // Smoothed frames per second
	ticks  int     // Ticks run during the last frame
	rng    *rand.Rand
	logger *log.Logger
}

// NewSession creates a world from cfg and wraps it for interactive use.
func NewSession(cfg *config.Config, rng *rand.Rand, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, err := world.New(cfg, rng, logger)
	if err != nil {
		return nil, err
	}
	return &Session{
		World:     w,
		Stepper:   world.NewStepper(cfg.Physics.TickDuration()),
		GravityOn: cfg.Physics.Gravity != 0,
		Running:   true,
		rng:       rng,
		logger:    logger,
	}, nil
}

// Update applies one frame of input and runs as many fixed ticks as delta
// allows.
func (s *Session) Update(in input.Input, delta time.Duration) error {
	if in.Quit {
		s.Running = false
		return nil
	}
	if in.CycleStrategy {
		s.World.CycleStrategy()
	}
	if in.ToggleGravity {
		s.toggleGravity()
	}
	if in.Pause {
		s.Paused = !s.Paused
		s.Stepper.Reset()
		s.logger.Info("pause toggled", "paused", s.Paused)
	}
	if in.Reseed {
		if err := s.World.Reseed(s.rng); err != nil {
			return err
		}
	}

	if delta > 0 {
		s.fps = 0.9*s.fps + 0.1*(float64(time.Second)/float64(delta))
	}

	s.ticks = 0
	if s.Paused {
		return nil
	}
	accel := s.shove(in)
	s.ticks = s.Stepper.Advance(min(delta, maxFrameDelta), func() {
		s.World.Step(accel)
	})
	return nil
}

// shove maps held movement keys to the global acceleration.
func (s *Session) shove(in input.Input) vec.Vec2 {
	x, y := in.Shove()
	return vec.Vec2{X: x, Y: y}.Normalize().Scale(config.ShoveAccel)
}

func (s *Session) toggleGravity() {
	s.GravityOn = !s.GravityOn
	g := s.World.Config().Physics.Gravity
	if g == 0 {
		g = config.GravityToggle
	}
	if !s.GravityOn {
		g = 0
	}
	s.World.SetGravity(vec.Vec2{Y: g})
	s.logger.Info("gravity toggled", "gravity", g)
}

// Draw paints the current world onto canvas.
func (s *Session) Draw(canvas *draw.Canvas) {
	canvas.Clear()
	snap := s.World.Snapshot()
	for _, b := range snap.Bodies {
		canvas.FillCircle(b.Pos.X, b.Pos.Y, b.Radius, b.Color)
	}
}
