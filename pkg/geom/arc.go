package geom

import "math"

// Arc is a circular arc. Angles are in radians, math convention
// (counterclockwise from +X), with the sweep running from StartAngle to
// EndAngle.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// PointAt returns the point on the arc's circle at the given angle.
func (a Arc) PointAt(angle float64) Point {
	return Point{
		X: a.Center.X + a.Radius*math.Cos(angle),
		Y: a.Center.Y + a.Radius*math.Sin(angle),
	}
}

// ProjectToCircle projects p radially onto the circle of the given
// center and radius. It returns ok=false when p coincides with the
// center, where the radial direction is undefined.
func ProjectToCircle(center Point, radius float64, p Point) (Point, bool) {
	dir := p.Sub(center).Unit()
	if dir.IsZero() {
		return Point{}, false
	}
	return center.Add(dir.Scale(radius)), true
}
