// Package snap resolves a dragged point against the field's snap
// targets, locking handles onto bases, arcs, and boundary lines.
package snap

import (
	"math"

	"github.com/pesislab/kentta/pkg/field"
	"github.com/pesislab/kentta/pkg/geom"
)

// Options carries the per-kind snap thresholds in meters. Long boundary
// lines get a wider tolerance than points and arcs so they stay easy to
// hit at any zoom.
type Options struct {
	PointThreshold float64
	LineThreshold  float64
	ArcThreshold   float64
}

// DefaultOptions returns the standard thresholds.
func DefaultOptions() Options {
	return Options{
		PointThreshold: 0.4,
		LineThreshold:  2.0,
		ArcThreshold:   0.4,
	}
}

func (o Options) threshold(k field.TargetKind) float64 {
	switch k {
	case field.TargetPoint:
		return o.PointThreshold
	case field.TargetLine:
		return o.LineThreshold
	case field.TargetArc:
		return o.ArcThreshold
	}
	return 0
}

// Result is a resolved snap: the point on the winning target, its
// distance from the query, and the target itself.
type Result struct {
	Point    geom.Point
	Distance float64
	Target   field.Target
}

// Distances this close are considered equal when picking a winner.
const tieEpsilon = 1e-9

// FindNearest returns the snap among targets closest to p, or false if
// none lies within its kind's threshold. Selection is deterministic:
// smallest distance wins; distances within tieEpsilon of each other are
// broken by kind (point beats arc beats line), then by input order.
func FindNearest(p geom.Point, targets []field.Target, opts Options) (Result, bool) {
	var best Result
	bestRank := 0
	found := false
	for _, t := range targets {
		pt, dist, ok := closestOn(p, t)
		if !ok || dist > opts.threshold(t.Kind) {
			continue
		}
		r := kindRank(t.Kind)
		better := dist < best.Distance-tieEpsilon
		tied := !better && dist < best.Distance+tieEpsilon && r < bestRank
		if !found || better || tied {
			best = Result{Point: pt, Distance: dist, Target: t}
			bestRank = r
			found = true
		}
	}
	return best, found
}

// closestOn computes the nearest point on a target and its distance.
// An arc target with the query on its center has no radial direction
// and reports false.
func closestOn(p geom.Point, t field.Target) (geom.Point, float64, bool) {
	switch t.Kind {
	case field.TargetPoint:
		return t.Point, p.DistanceTo(t.Point), true
	case field.TargetLine:
		cp := t.Line.ClosestPoint(p)
		return cp, p.DistanceTo(cp), true
	case field.TargetArc:
		cp, ok := geom.ProjectToCircle(t.Center, t.Radius, p)
		if !ok {
			return geom.Point{}, 0, false
		}
		return cp, math.Abs(p.DistanceTo(t.Center)-t.Radius), true
	}
	return geom.Point{}, 0, false
}

// kindRank orders kinds for tie-breaking. Lower wins.
func kindRank(k field.TargetKind) int {
	switch k {
	case field.TargetPoint:
		return 0
	case field.TargetArc:
		return 1
	default:
		return 2
	}
}
