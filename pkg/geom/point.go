package geom

import "math"

// Point is a location in field coordinates: meters, origin at the
// home-plate center, +Y toward the back boundary, +X to the batter's
// right. The same type doubles as a screen-space point (pixels, Y down)
// on the far side of a Transform; the two spaces never mix in one value.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by v.
func (p Point) Add(v Vec) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec {
	return Vec{X: p.X - q.X, Y: p.Y - q.Y}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Vec is a displacement between two points.
type Vec struct {
	X, Y float64
}

// Add returns v + w.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Length returns the Euclidean length of v.
func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Unit returns v normalized to length 1. A zero-length input returns the
// zero vector; callers must treat that as "no well-defined direction" and
// skip dependent geometry.
func (v Vec) Unit() Vec {
	length := v.Length()
	if length == 0 {
		return Vec{}
	}
	return Vec{X: v.X / length, Y: v.Y / length}
}

// IsZero reports whether v is the zero vector.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Dot returns the dot product of v and w.
func (v Vec) Dot(w Vec) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the scalar cross product of v and w. Zero means the
// vectors are parallel.
func (v Vec) Cross(w Vec) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Perp returns v rotated 90 degrees counterclockwise.
func (v Vec) Perp() Vec {
	return Vec{X: -v.Y, Y: v.X}
}

// Angle returns the angle of v in radians, math convention
// (counterclockwise from +X).
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}
