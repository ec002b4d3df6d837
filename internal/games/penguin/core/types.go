// Package core implements the penguin game's simulation engine: per-tick
// kinematics, axis-separated collision resolution, push-chain propagation,
// and the player/enemy state machines. It is pure logic with no rendering,
// no I/O, and no dependencies outside the standard library, so every rule
// in it can be tested tick by tick.
package core

import "math"

// Vec2 is a continuous 2D vector in pixel space.
type Vec2 struct {
	X, Y float64
}

// Directions are unit vectors. Screen coordinates: +Y is down.
var (
	DirUp    = Vec2{0, -1}
	DirDown  = Vec2{0, 1}
	DirLeft  = Vec2{-1, 0}
	DirRight = Vec2{1, 0}
)

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the vector's magnitude.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Reverse returns the opposite direction.
func (v Vec2) Reverse() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Perpendiculars returns the two directions perpendicular to a unit
// direction, in a fixed order so random choice over them is reproducible.
func (v Vec2) Perpendiculars() (Vec2, Vec2) {
	if v.X == 0 {
		return DirRight, DirLeft
	}
	return DirDown, DirUp
}

// Axis selects one coordinate axis during collision resolution.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Rect is an axis-aligned bounding box in pixel space.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Overlaps reports whether two rectangles overlap. Touching edges do not
// count, so actors resting exactly against an obstacle are not colliding.
func (r Rect) Overlaps(o Rect) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// Scaled returns the rectangle grown (or shrunk) about its center by ratio.
func (r Rect) Scaled(ratio float64) Rect {
	w := r.W * ratio
	h := r.H * ratio
	return Rect{
		X: r.X - (w-r.W)/2,
		Y: r.Y - (h-r.H)/2,
		W: w,
		H: h,
	}
}

// OverlapsScaled reports whether the two rectangles overlap after both are
// grown about their centers by ratio. Used for the look-ahead occupancy
// queries where "adjacent" must register as a hit.
func (r Rect) OverlapsScaled(o Rect, ratio float64) bool {
	return r.Scaled(ratio).Overlaps(o.Scaled(ratio))
}

// enclosingRadius is the radius of the smallest circle containing the rect.
func (r Rect) enclosingRadius() float64 {
	return math.Hypot(r.W, r.H) / 2
}

// CirclesOverlap reports whether the enclosing circles of the two
// rectangles, each scaled by ratio, overlap. This is the coarse hit test
// the push action uses before the exact direction-neighbour filter.
func CirclesOverlap(a, b Rect, ratio float64) bool {
	ra := a.enclosingRadius() * ratio
	rb := b.enclosingRadius() * ratio
	return a.Center().Sub(b.Center()).Len() < ra+rb
}
