// Package snap decides where a dragged element comes to rest. It classifies
// release velocities, picks one of four screen corners and computes the
// center point for that corner. Everything here is a pure function.
package snap

import "math"

// Screen coordinates: the origin is the top-left corner, +x points right and
// +y points down. A positive Y velocity is a downward fling.

// Vector is a velocity or a position delta.
type Vector struct {
	X, Y float64
}

// Point is a screen-space coordinate.
type Point struct {
	X, Y float64
}

// Size is a width and height. Both are expected to be non-negative.
type Size struct {
	Width, Height float64
}

// Insets holds per-edge padding.
type Insets struct {
	Top, Left, Bottom, Right float64
}

func (p Point) Add(v Vector) Point { return Point{X: p.X + v.X, Y: p.Y + v.Y} }

func (p Point) Sub(q Point) Vector { return Vector{X: p.X - q.X, Y: p.Y - q.Y} }

func (v Vector) Scale(s float64) Vector { return Vector{X: v.X * s, Y: v.Y * s} }

func (v Vector) Len() float64 { return math.Hypot(v.X, v.Y) }

// Mid returns the point halfway across the size.
func (s Size) Mid() Point { return Point{X: s.Width / 2, Y: s.Height / 2} }

// UniformInsets returns insets of v on every edge.
func UniformInsets(v float64) Insets {
	return Insets{Top: v, Left: v, Bottom: v, Right: v}
}

// Grow adds pad to every edge.
func (in Insets) Grow(pad float64) Insets {
	return Insets{
		Top:    in.Top + pad,
		Left:   in.Left + pad,
		Bottom: in.Bottom + pad,
		Right:  in.Right + pad,
	}
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func (v Vector) valid() bool { return finite(v.X) && finite(v.Y) }

func (p Point) valid() bool { return finite(p.X) && finite(p.Y) }

func (s Size) valid() bool {
	return finite(s.Width) && finite(s.Height) && s.Width >= 0 && s.Height >= 0
}

func (in Insets) valid() bool {
	for _, e := range [...]float64{in.Top, in.Left, in.Bottom, in.Right} {
		if !finite(e) || e < 0 {
			return false
		}
	}
	return true
}
