// Package vec provides the 2-D vector value type shared by the simulation.
package vec

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec2 is an immutable 2-D vector. Every operation returns a new value.
// It has the same layout as r2.Vec, so arithmetic is delegated to gonum.
type Vec2 struct {
	X, Y float64
}

// Zero is the zero vector.
var Zero = Vec2{}

func (v Vec2) r2() r2.Vec { return r2.Vec(v) }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2(r2.Add(v.r2(), o.r2()))
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2(r2.Sub(v.r2(), o.r2()))
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2(r2.Scale(s, v.r2()))
}

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Div returns v / s, or the zero vector when s is zero.
func (v Vec2) Div(s float64) Vec2 {
	if s == 0 {
		return Zero
	}
	return v.Scale(1 / s)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return r2.Dot(v.r2(), o.r2())
}

// LenSq returns the squared length of v.
// Use this when comparing lengths to avoid the sqrt cost.
func (v Vec2) LenSq() float64 {
	return r2.Norm2(v.r2())
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return r2.Norm(v.r2())
}

// Normalize returns the unit vector along v, or the zero vector when v has
// zero length.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Zero
	}
	return v.Scale(1 / l)
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// DistSq returns the squared distance between v and o.
func (v Vec2) DistSq(o Vec2) float64 {
	return v.Sub(o).LenSq()
}

// IsFinite reports whether both components are neither NaN nor Inf.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
