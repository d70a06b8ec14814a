package world

import "time"

// Stepper converts variable frame time into whole fixed ticks.
//
// Elapsed wall time is accumulated; every full Step that fits runs one tick
// and the remainder carries over to the next frame. No interpolation is done
// between ticks.
type Stepper struct {
	Step time.Duration

	acc time.Duration
}

// NewStepper creates a stepper with the given fixed tick length.
func NewStepper(step time.Duration) *Stepper {
	return &Stepper{Step: step}
}

// Advance adds elapsed to the accumulator and calls tick once per whole step
// it holds. It returns the number of ticks run.
func (s *Stepper) Advance(elapsed time.Duration, tick func()) int {
	if s.Step <= 0 {
		return 0
	}
	if elapsed > 0 {
		s.acc += elapsed
	}
	n := 0
	for s.acc >= s.Step {
		tick()
		s.acc -= s.Step
		n++
	}
	return n
}

// Pending returns the time carried over to the next Advance.
func (s *Stepper) Pending() time.Duration {
	return s.acc
}

// Alpha returns Pending as a fraction of one step.
func (s *Stepper) Alpha() float64 {
	if s.Step <= 0 {
		return 0
	}
	return float64(s.acc) / float64(s.Step)
}

// Reset drops any accumulated time.
func (s *Stepper) Reset() {
	s.acc = 0
}
