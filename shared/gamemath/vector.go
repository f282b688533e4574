package gamemath

import "math"

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec) Dist(o Vec) float64 { return o.Sub(v).Len() }
func (v Vec) IsZero() bool { return v.X == 0 && v.Y == 0 }
func (v Vec) Neg() Vec { return Vec{-v.X, -v.Y} }

// Normalize returns the unit vector of v. A zero vector is returned unchanged
// with ok=false; it is never divided.
func (v Vec) Normalize() (n Vec, ok bool) {
	l := v.Len()
	if l == 0 {
		return Vec{}, false
	}
	return Vec{v.X / l, v.Y / l}, true
}

// ClampLen shortens v to length limit if it is longer. Shorter vectors keep
// their magnitude so sub-unit intents move proportionally slower.
func (v Vec) ClampLen(limit float64) Vec {
	l := v.Len()
	if l <= limit || l == 0 {
		return v
	}
	return v.Scale(limit / l)
}

// DirectionTo returns the unit vector from one point to another and the
// distance between them. Coincident points yield a zero direction.
func DirectionTo(from, to Vec) (dir Vec, dist float64) {
	d := to.Sub(from)
	dist = d.Len()
	dir, _ = d.Normalize()
	return dir, dist
}
