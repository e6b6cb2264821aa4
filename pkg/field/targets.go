package field

import "github.com/pesislab/kentta/pkg/geom"

// TargetKind discriminates the snap target union.
type TargetKind int

const (
	TargetPoint TargetKind = iota
	TargetLine
	TargetArc
)

func (k TargetKind) String() string {
	switch k {
	case TargetPoint:
		return "point"
	case TargetLine:
		return "line"
	case TargetArc:
		return "arc"
	default:
		return "unknown"
	}
}

// Target is one geometric primitive a dragged point can lock onto.
// Exactly the fields for its Kind are meaningful.
type Target struct {
	Kind   TargetKind
	Point  geom.Point   // TargetPoint
	Line   geom.Segment // TargetLine
	Center geom.Point   // TargetArc
	Radius float64      // TargetArc
}

// PointTarget wraps a point as a snap target.
func PointTarget(p geom.Point) Target {
	return Target{Kind: TargetPoint, Point: p}
}

// LineTarget wraps a segment as a snap target.
func LineTarget(s geom.Segment) Target {
	return Target{Kind: TargetLine, Line: s}
}

// ArcTarget wraps a circle as a snap target.
func ArcTarget(center geom.Point, radius float64) Target {
	return Target{Kind: TargetArc, Center: center, Radius: radius}
}

// SnapTargets lists every primitive of the derived geometry a drag can
// snap onto, in a fixed order: base and corner points, then the base
// circles and front arc, then the boundary and path lines. The list is
// rebuilt whenever geometry changes and is read-only to consumers.
func SnapTargets(p *Profile, g *DerivedGeometry) []Target {
	sectorOrigin := geom.Pt(0, p.BattingSector.OriginOffsetY)
	targets := []Target{
		PointTarget(g.FirstBase),
		PointTarget(g.SecondBase),
		PointTarget(g.ThirdBase),
		PointTarget(g.HomeLeft),
		PointTarget(g.HomeRight),
		PointTarget(geom.Pt(0, 0)),

		ArcTarget(g.FirstBase, p.BaseRadius),
		ArcTarget(g.SecondBase, p.BaseRadius),
		ArcTarget(g.ThirdBase, p.BaseRadius),
		ArcTarget(sectorOrigin, p.FrontArc.OuterRadius),

		LineTarget(homeLine(p, g)),
		LineTarget(geom.Seg(g.HomeLeft, g.DiagonalLeftEnd)),
		LineTarget(geom.Seg(g.HomeRight, g.DiagonalRightEnd)),
		LineTarget(geom.Seg(g.DiagonalLeftEnd, g.BackLeft)),
		LineTarget(geom.Seg(g.DiagonalRightEnd, g.BackRight)),
		LineTarget(geom.Seg(g.BackLeft, g.BackRight)),
		LineTarget(g.FirstToSecond),
		LineTarget(g.SecondToThird),
	}
	return targets
}

// homeLine is the painted batting line: the horizontal through the
// sector intersections, extended by the profile's line half width past
// each.
func homeLine(p *Profile, g *DerivedGeometry) geom.Segment {
	w := p.HomePlate.LineHalfWidth
	return geom.Seg(
		geom.Pt(g.HomeLeft.X-w, g.HomeLeft.Y),
		geom.Pt(g.HomeRight.X+w, g.HomeRight.Y),
	)
}
