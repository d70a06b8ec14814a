package world

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStepperCarriesRemainder(t *testing.T) {
	s := NewStepper(10 * time.Millisecond)
	ticks := 0
	tick := func() { ticks++ }

	assert.Equal(t, 0, s.Advance(4*time.Millisecond, tick))
	assert.Equal(t, 4*time.Millisecond, s.Pending())

	assert.Equal(t, 1, s.Advance(7*time.Millisecond, tick))
	assert.Equal(t, time.Millisecond, s.Pending())

	assert.Equal(t, 3, s.Advance(29*time.Millisecond, tick))
	assert.Equal(t, 0*time.Millisecond, s.Pending())
	assert.Equal(t, 4, ticks)
}

func TestStepperAlpha(t *testing.T) {
	s := NewStepper(20 * time.Millisecond)
	s.Advance(25*time.Millisecond, func() {})
	assert.InDelta(t, 0.25, s.Alpha(), 1e-12)

	s.Reset()
	assert.Zero(t, s.Pending())
	assert.Zero(t, s.Alpha())
}

func TestStepperIgnoresBadInput(t *testing.T) {
	s := NewStepper(10 * time.Millisecond)
	assert.Equal(t, 0, s.Advance(-time.Second, func() { t.Fatal("tick on negative elapsed") }))
	assert.Zero(t, s.Pending())

	zero := NewStepper(0)
	assert.Equal(t, 0, zero.Advance(time.Second, func() { t.Fatal("tick with zero step") }))
	assert.Zero(t, zero.Alpha())
}
