// Package spatial provides the broad-phase indexes used by the collision pass.
//
// Indexes never own particles: they store integer indices into the caller's
// population and are rebuilt from scratch every tick.
package spatial

import "github.com/tomz197/ballpit/internal/vec"

// Boundary is an axis-aligned rectangle given by its center and half extents.
type Boundary struct {
	Center     vec.Vec2
	HalfWidth  float64
	HalfHeight float64
}

// NewBoundary returns the boundary covering [minX,maxX]x[minY,maxY].
func NewBoundary(minX, minY, maxX, maxY float64) Boundary {
	return Boundary{
		Center:     vec.Vec2{X: (minX + maxX) / 2, Y: (minY + maxY) / 2},
		HalfWidth:  (maxX - minX) / 2,
		HalfHeight: (maxY - minY) / 2,
	}
}

// Around returns the square of half extent r centered on p.
func Around(p vec.Vec2, r float64) Boundary {
	return Boundary{Center: p, HalfWidth: r, HalfHeight: r}
}

// Contains reports whether p lies inside b. Edges count as inside.
func (b Boundary) Contains(p vec.Vec2) bool {
	return p.X >= b.Center.X-b.HalfWidth &&
		p.X <= b.Center.X+b.HalfWidth &&
		p.Y >= b.Center.Y-b.HalfHeight &&
		p.Y <= b.Center.Y+b.HalfHeight
}

// Intersects reports whether b and o overlap. Touching edges intersect.
func (b Boundary) Intersects(o Boundary) bool {
	return !(o.Center.X-o.HalfWidth > b.Center.X+b.HalfWidth ||
		o.Center.X+o.HalfWidth < b.Center.X-b.HalfWidth ||
		o.Center.Y-o.HalfHeight > b.Center.Y+b.HalfHeight ||
		o.Center.Y+o.HalfHeight < b.Center.Y-b.HalfHeight)
}

// Quadrants splits b into its four equal quarters in NW, NE, SW, SE order
// (y grows downward, as in screen space).
func (b Boundary) Quadrants() [4]Boundary {
	hw := b.HalfWidth / 2
	hh := b.HalfHeight / 2
	x, y := b.Center.X, b.Center.Y
	return [4]Boundary{
		{Center: vec.Vec2{X: x - hw, Y: y - hh}, HalfWidth: hw, HalfHeight: hh},
		{Center: vec.Vec2{X: x + hw, Y: y - hh}, HalfWidth: hw, HalfHeight: hh},
		{Center: vec.Vec2{X: x - hw, Y: y + hh}, HalfWidth: hw, HalfHeight: hh},
		{Center: vec.Vec2{X: x + hw, Y: y + hh}, HalfWidth: hw, HalfHeight: hh},
	}
}
