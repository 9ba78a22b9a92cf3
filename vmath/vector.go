// Package vmath provides the float64 2D vector math used by the arcade simulation
package vmath

import "math"

// Vec2 is a point or displacement in arena units
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (a Vec2) Add(b Vec2) Vec2       { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2       { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Scale(k float64) Vec2  { return Vec2{a.X * k, a.Y * k} }
func (a Vec2) Dot(b Vec2) float64    { return a.X*b.X + a.Y*b.Y }
func (a Vec2) IsZero() bool          { return a.X == 0 && a.Y == 0 }
func (a Vec2) Neg() Vec2             { return Vec2{-a.X, -a.Y} }
func (a Vec2) Len() float64          { return math.Hypot(a.X, a.Y) }
func (a Vec2) LenSq() float64        { return a.X*a.X + a.Y*a.Y }
func (a Vec2) Dist(b Vec2) float64   { return math.Hypot(a.X-b.X, a.Y-b.Y) }
func (a Vec2) DistSq(b Vec2) float64 { return a.Sub(b).LenSq() }

// Normalize returns the unit vector, zero-safe
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// Direction returns the unit vector pointing from a to b
// Coincident points yield the angle-zero direction (+X), matching atan2(0, 0)
func Direction(from, to Vec2) Vec2 {
	angle := math.Atan2(to.Y-from.Y, to.X-from.X)
	return FromAngle(angle)
}

// FromAngle returns the unit vector for an angle in radians
func FromAngle(rad float64) Vec2 {
	return Vec2{math.Cos(rad), math.Sin(rad)}
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ReflectAxisX inverts the horizontal component (vertical wall)
func ReflectAxisX(v Vec2) Vec2 { return Vec2{-v.X, v.Y} }

// ReflectAxisY inverts the vertical component (horizontal wall)
func ReflectAxisY(v Vec2) Vec2 { return Vec2{v.X, -v.Y} }

// SnapToZero zeroes each component whose magnitude is below eps
func SnapToZero(v Vec2, eps float64) Vec2 {
	if math.Abs(v.X) < eps {
		v.X = 0
	}
	if math.Abs(v.Y) < eps {
		v.Y = 0
	}
	return v
}
