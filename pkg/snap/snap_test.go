package snap

import (
	"math"
	"testing"

	"github.com/pesislab/kentta/pkg/field"
	"github.com/pesislab/kentta/pkg/geom"
)

func TestFindNearestPoint(t *testing.T) {
	targets := []field.Target{field.PointTarget(geom.Pt(10, 10))}
	opts := DefaultOptions()

	r, ok := FindNearest(geom.Pt(10.2, 10), targets, opts)
	if !ok {
		t.Fatal("no snap within threshold")
	}
	if r.Point != geom.Pt(10, 10) {
		t.Errorf("snapped to %v, want the target point", r.Point)
	}
	if math.Abs(r.Distance-0.2) > 1e-12 {
		t.Errorf("Distance = %v, want 0.2", r.Distance)
	}

	if _, ok := FindNearest(geom.Pt(11, 10), targets, opts); ok {
		t.Error("snapped from beyond the threshold")
	}
}

func TestFindNearestThresholdBoundary(t *testing.T) {
	targets := []field.Target{field.PointTarget(geom.Pt(0, 0))}
	opts := DefaultOptions()
	if _, ok := FindNearest(geom.Pt(0.4, 0), targets, opts); !ok {
		t.Error("distance exactly at threshold rejected")
	}
	if _, ok := FindNearest(geom.Pt(0.4000001, 0), targets, opts); ok {
		t.Error("distance just past threshold accepted")
	}
}

func TestFindNearestLine(t *testing.T) {
	line := geom.Seg(geom.Pt(-21, 5), geom.Pt(21, 5))
	targets := []field.Target{field.LineTarget(line)}
	opts := DefaultOptions()

	// 1.5 m out: past the point threshold but within the wider line one.
	r, ok := FindNearest(geom.Pt(3, 6.5), targets, opts)
	if !ok {
		t.Fatal("no line snap within line threshold")
	}
	if r.Point != geom.Pt(3, 5) {
		t.Errorf("snapped to %v, want projection (3, 5)", r.Point)
	}

	// Beyond the segment end the projection clamps to the endpoint.
	r, ok = FindNearest(geom.Pt(22, 5.5), targets, opts)
	if !ok {
		t.Fatal("no snap near segment end")
	}
	if r.Point != geom.Pt(21, 5) {
		t.Errorf("snapped to %v, want clamped endpoint (21, 5)", r.Point)
	}
}

func TestFindNearestArc(t *testing.T) {
	targets := []field.Target{field.ArcTarget(geom.Pt(0, -2), 6.3)}
	opts := Options{PointThreshold: 0.4, LineThreshold: 2.0, ArcThreshold: 2.0}

	r, ok := FindNearest(geom.Pt(0, 6), targets, opts)
	if !ok {
		t.Fatal("no arc snap within threshold")
	}
	if got := r.Point.DistanceTo(geom.Pt(0, -2)); math.Abs(got-6.3) > 1e-12 {
		t.Errorf("snapped point %v from center, want on the circle", got)
	}
	if math.Abs(r.Distance-1.7) > 1e-12 {
		t.Errorf("Distance = %v, want 1.7", r.Distance)
	}

	// The query on the center has no radial direction to project along.
	if _, ok := FindNearest(geom.Pt(0, -2), targets, opts); ok {
		t.Error("snapped from the arc center")
	}
}

func TestFindNearestKindPriority(t *testing.T) {
	// A point sitting on a line: both targets are at distance zero, the
	// point wins.
	pt := geom.Pt(5, 5)
	targets := []field.Target{
		field.LineTarget(geom.Seg(geom.Pt(0, 5), geom.Pt(10, 5))),
		field.PointTarget(pt),
	}
	r, ok := FindNearest(geom.Pt(5, 5.1), targets, DefaultOptions())
	if !ok {
		t.Fatal("no snap")
	}
	if r.Target.Kind != field.TargetPoint {
		t.Errorf("snapped to %v, want the point over the line", r.Target.Kind)
	}
	if r.Point != pt {
		t.Errorf("snapped to %v, want %v", r.Point, pt)
	}
}

func TestFindNearestInputOrderTie(t *testing.T) {
	// Equidistant targets of the same kind: the first in input order
	// wins.
	targets := []field.Target{
		field.PointTarget(geom.Pt(0.3, 0)),
		field.PointTarget(geom.Pt(-0.3, 0)),
	}
	r, ok := FindNearest(geom.Pt(0, 0), targets, DefaultOptions())
	if !ok {
		t.Fatal("no snap")
	}
	if r.Point != geom.Pt(0.3, 0) {
		t.Errorf("snapped to %v, want the first target", r.Point)
	}
}

func TestFindNearestSmallerDistanceBeatsKind(t *testing.T) {
	// Outside the tie window the distance decides, even against a
	// higher-priority kind.
	targets := []field.Target{
		field.PointTarget(geom.Pt(0, 0.3)),
		field.LineTarget(geom.Seg(geom.Pt(-5, 0.1), geom.Pt(5, 0.1))),
	}
	r, ok := FindNearest(geom.Pt(0, 0), targets, DefaultOptions())
	if !ok {
		t.Fatal("no snap")
	}
	if r.Target.Kind != field.TargetLine {
		t.Errorf("snapped to %v, want the nearer line", r.Target.Kind)
	}
}

func TestFindNearestIdempotent(t *testing.T) {
	p := field.MenProfile()
	g, err := field.Calculate(p, field.EditablePoints{}, 10)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	targets := field.SnapTargets(p, g)
	opts := DefaultOptions()

	// The first base sits on the left diagonal, so an offset
	// perpendicular to it is equidistant from both targets and the
	// kind priority picks the base point.
	perp := g.DiagonalLeftEnd.Sub(g.HomeLeft).Unit().Perp()
	r, ok := FindNearest(g.FirstBase.Add(perp.Scale(0.2)), targets, opts)
	if !ok {
		t.Fatal("no snap near first base")
	}
	if r.Target.Kind != field.TargetPoint || r.Point != g.FirstBase {
		t.Fatalf("snapped to %v %v, want the first base point", r.Target.Kind, r.Point)
	}

	again, ok := FindNearest(r.Point, targets, opts)
	if !ok {
		t.Fatal("snapped point does not snap")
	}
	if again.Point != r.Point {
		t.Errorf("second snap moved the point: %v then %v", r.Point, again.Point)
	}
	if again.Distance != 0 {
		t.Errorf("second snap distance = %v, want 0", again.Distance)
	}
}

func TestFindNearestNoTargets(t *testing.T) {
	if _, ok := FindNearest(geom.Pt(0, 0), nil, DefaultOptions()); ok {
		t.Error("snap resolved with no targets")
	}
}
