package geom

// Segment is a straight line between two points.
type Segment struct {
	Start, End Point
}

// Seg is shorthand for Segment{start, end}.
func Seg(start, end Point) Segment {
	return Segment{Start: start, End: end}
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.Start.DistanceTo(s.End)
}

// Dir returns the unit direction from Start to End, or the zero vector
// for a degenerate segment.
func (s Segment) Dir() Vec {
	return s.End.Sub(s.Start).Unit()
}

// Midpoint returns the point halfway between Start and End.
func (s Segment) Midpoint() Point {
	return Point{X: (s.Start.X + s.End.X) / 2, Y: (s.Start.Y + s.End.Y) / 2}
}

// Trim shortens the segment by a at the start and b at the end, moving
// each endpoint inward along the segment direction. If the trims meet or
// exceed the length, the result collapses to the proportional point
// between them so the length never goes negative.
func (s Segment) Trim(a, b float64) Segment {
	dir := s.Dir()
	if dir.IsZero() {
		return s
	}
	length := s.Length()
	if a+b >= length {
		t := 0.5
		if a+b > 0 {
			t = a / (a + b)
		}
		at := s.Start.Add(dir.Scale(length * t))
		return Segment{Start: at, End: at}
	}
	return Segment{
		Start: s.Start.Add(dir.Scale(a)),
		End:   s.End.Add(dir.Scale(-b)),
	}
}

// ClosestPoint returns the point on the segment nearest to p: the
// perpendicular projection clamped to the segment ends.
func (s Segment) ClosestPoint(p Point) Point {
	d := s.End.Sub(s.Start)
	lenSq := d.Dot(d)
	if lenSq == 0 {
		return s.Start
	}
	t := p.Sub(s.Start).Dot(d) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return s.Start.Add(d.Scale(t))
}

// DistanceTo returns the distance from p to the nearest point on the
// segment.
func (s Segment) DistanceTo(p Point) float64 {
	return p.DistanceTo(s.ClosestPoint(p))
}

// LineIntersection intersects the infinite lines through a and b. It
// returns a DegenerateError when the directions are parallel (cross
// product below 1e-10), so callers never divide by a near-zero
// determinant.
func LineIntersection(a, b Segment) (Point, error) {
	d1 := a.End.Sub(a.Start)
	d2 := b.End.Sub(b.Start)
	det := d1.Cross(d2)
	if det > -1e-10 && det < 1e-10 {
		return Point{}, &DegenerateError{Op: "line intersection of parallel directions"}
	}
	t := b.Start.Sub(a.Start).Cross(d2) / det
	return a.Start.Add(d1.Scale(t)), nil
}
