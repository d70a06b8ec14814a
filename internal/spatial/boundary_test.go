package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomz197/ballpit/internal/vec"
)

func TestBoundaryContainsIsClosed(t *testing.T) {
	b := NewBoundary(0, 0, 100, 50)

	assert.Equal(t, vec.Vec2{X: 50, Y: 25}, b.Center)
	assert.True(t, b.Contains(vec.Vec2{X: 0, Y: 0}), "corner")
	assert.True(t, b.Contains(vec.Vec2{X: 100, Y: 50}), "far corner")
	assert.True(t, b.Contains(vec.Vec2{X: 100, Y: 10}), "edge")
	assert.False(t, b.Contains(vec.Vec2{X: 100.001, Y: 10}))
	assert.False(t, b.Contains(vec.Vec2{X: 10, Y: -0.001}))
}

func TestBoundaryIntersects(t *testing.T) {
	b := NewBoundary(0, 0, 10, 10)

	assert.True(t, b.Intersects(NewBoundary(5, 5, 15, 15)), "overlap")
	assert.True(t, b.Intersects(NewBoundary(10, 0, 20, 10)), "touching edge")
	assert.True(t, b.Intersects(NewBoundary(10, 10, 20, 20)), "touching corner")
	assert.True(t, b.Intersects(NewBoundary(2, 2, 3, 3)), "contained")
	assert.True(t, NewBoundary(2, 2, 3, 3).Intersects(b), "containing")
	assert.False(t, b.Intersects(NewBoundary(10.5, 0, 20, 10)))
	assert.False(t, b.Intersects(NewBoundary(0, -5, 10, -0.1)))

	// a zero-size range still intersects the region that contains it
	assert.True(t, b.Intersects(Around(vec.Vec2{X: 3, Y: 4}, 0)))
}

func TestQuadrants(t *testing.T) {
	q := NewBoundary(0, 0, 100, 60).Quadrants()

	assert.Equal(t, NewBoundary(0, 0, 50, 30), q[0], "NW")
	assert.Equal(t, NewBoundary(50, 0, 100, 30), q[1], "NE")
	assert.Equal(t, NewBoundary(0, 30, 50, 60), q[2], "SW")
	assert.Equal(t, NewBoundary(50, 30, 100, 60), q[3], "SE")
}
