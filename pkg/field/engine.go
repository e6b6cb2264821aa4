package field

import (
	"fmt"
	"math"

	"github.com/pesislab/kentta/pkg/geom"
)

// Measurement map keys. The render layer looks labels up by these.
const (
	MeasureFirst    = "first"
	MeasureSecond   = "second"
	MeasureThird    = "third"
	MeasureBack     = "back"
	MeasureDiagonal = "diagonal"
	MeasureWidth    = "width"
	MeasureHomePath = "homepath"
)

// DerivedGeometry is everything the diagram draws, recomputed on demand
// from a profile and the current editable points. It is never persisted
// and carries no hidden state: identical inputs produce identical output.
type DerivedGeometry struct {
	// Boundary corners.
	HomeLeft         geom.Point
	HomeRight        geom.Point
	DiagonalLeftEnd  geom.Point
	DiagonalRightEnd geom.Point
	BackLeft         geom.Point
	BackRight        geom.Point

	// Base centers.
	FirstBase  geom.Point
	SecondBase geom.Point
	ThirdBase  geom.Point

	// Base-to-base paths, trimmed at both ends by the base radius so the
	// lines stop at the base circles instead of crossing them.
	FirstToSecond geom.Segment
	SecondToThird geom.Segment

	// Home path, two segments each: the profile's fixed default shape
	// and the current shape built from the editable points.
	OriginalHomePath [2]geom.Segment
	HomePath         [2]geom.Segment

	// Extension of the first-to-second line back to the home path. Nil
	// when the two directions are parallel and no intersection exists.
	Extension *geom.Segment

	// Front arc sweep in radians, from the right sector ray to the left.
	FrontArcStart float64
	FrontArcEnd   float64

	// The editable points the geometry was actually built from, with nil
	// inputs materialized from the default path.
	Points EditablePoints

	// Pixels per meter the caller is rendering at. Label sizing and
	// threshold conversion read it from here.
	Scale float64

	Measurements map[string]float64
}

// Calculate derives the full field geometry. Pure: no I/O, no global
// state. It returns an error only for inputs no geometry can be built
// from; for well-formed finite input it always succeeds.
func Calculate(p *Profile, pts EditablePoints, scale float64) (*DerivedGeometry, error) {
	if p == nil {
		return nil, fmt.Errorf("nil profile")
	}
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return nil, fmt.Errorf("scale must be positive and finite, got %v", scale)
	}

	leftDir := sectorDir(p.BattingSector.LeftAngleDeg)
	rightDir := sectorDir(p.BattingSector.RightAngleDeg)
	if leftDir.Y < 1e-9 || rightDir.Y < 1e-9 {
		return nil, fmt.Errorf("sector ray parallel to the home line")
	}

	origin := geom.Pt(0, p.BattingSector.OriginOffsetY)
	homeLineY := p.HomePlate.CenterToHomeLine

	g := &DerivedGeometry{Scale: scale}

	// Sector rays meet the home line.
	g.HomeLeft = rayAtY(origin, leftDir, homeLineY)
	g.HomeRight = rayAtY(origin, rightDir, homeLineY)

	// Diagonals advance past the home line by exactly the configured Y,
	// then the side lines run straight back to the back boundary.
	diag := p.DiagonalLines.LengthFromHomeLine
	g.DiagonalLeftEnd = geom.Pt(g.HomeLeft.X+diag*leftDir.X/leftDir.Y, g.HomeLeft.Y+diag)
	g.DiagonalRightEnd = geom.Pt(g.HomeRight.X+diag*rightDir.X/rightDir.Y, g.HomeRight.Y+diag)
	backY := homeLineY + p.BackBoundary.DistanceFromHomeLine
	g.BackLeft = geom.Pt(g.DiagonalLeftEnd.X, backY)
	g.BackRight = geom.Pt(g.DiagonalRightEnd.X, backY)

	// Base centers.
	g.FirstBase = g.HomeLeft.Add(leftDir.Scale(p.FirstBaseOffset))
	g.SecondBase = g.DiagonalRightEnd.Add(geom.Vec{Y: p.SecondBaseOffset})
	g.ThirdBase = g.DiagonalLeftEnd.Add(geom.Vec{Y: p.ThirdBaseOffset})

	r := p.BaseRadius
	g.FirstToSecond = geom.Seg(g.FirstBase, g.SecondBase).Trim(r, r)
	g.SecondToThird = geom.Seg(g.SecondBase, g.ThirdBase).Trim(r, r)

	// Default home path: down the third-base line, then across to home.
	pathStart := g.ThirdBase
	pathMid := pathStart.Add(geom.Vec{Y: -p.HomePathFirstLine})
	pathEnd := geom.Pt(-p.HomePathEndOffset, 0)
	g.OriginalHomePath = [2]geom.Segment{
		geom.Seg(pathStart, pathMid),
		geom.Seg(pathMid, pathEnd),
	}

	g.Points = pts.Materialize(pathStart, pathMid, pathEnd)
	if err := checkFinite(g.Points); err != nil {
		return nil, err
	}
	g.HomePath = [2]geom.Segment{
		geom.Seg(*g.Points.HomePathStart, *g.Points.HomePathMid),
		geom.Seg(*g.Points.HomePathMid, *g.Points.HomePathEnd),
	}

	// Extend the first-to-second line back until it meets the second
	// home-path segment. Parallel directions mean there is nothing to
	// extend; the segment is skipped rather than drawn through NaN.
	if inter, err := geom.LineIntersection(
		geom.Seg(g.FirstBase, g.SecondBase),
		g.HomePath[1],
	); err == nil {
		ext := geom.Seg(inter, g.FirstBase).Trim(0, r)
		g.Extension = &ext
	}

	g.FrontArcStart = rightDir.Angle()
	g.FrontArcEnd = leftDir.Angle()

	g.Measurements = map[string]float64{
		MeasureFirst:    p.FirstBaseOffset,
		MeasureSecond:   g.FirstToSecond.Length(),
		MeasureThird:    g.SecondToThird.Length(),
		MeasureBack:     p.BackBoundary.DistanceFromHomeLine,
		MeasureWidth:    p.BackBoundary.Width,
		MeasureDiagonal: p.DiagonalLines.LengthFromHomeLine,
		MeasureHomePath: g.HomePath[0].Length() + g.HomePath[1].Length(),
	}
	return g, nil
}

// sectorDir converts a sector angle in degrees from the +Y axis
// (clockwise positive) into a unit direction.
func sectorDir(deg float64) geom.Vec {
	rad := deg * math.Pi / 180.0
	return geom.Vec{X: math.Sin(rad), Y: math.Cos(rad)}
}

// rayAtY intersects a ray with the horizontal line at y. The caller
// guarantees dir.Y is positive.
func rayAtY(origin geom.Point, dir geom.Vec, y float64) geom.Point {
	t := (y - origin.Y) / dir.Y
	return origin.Add(dir.Scale(t))
}

func checkFinite(pts EditablePoints) error {
	for _, p := range []*geom.Point{pts.HomePathStart, pts.HomePathMid, pts.HomePathEnd} {
		if p == nil {
			continue
		}
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("editable point %v is not finite", *p)
		}
	}
	return nil
}
