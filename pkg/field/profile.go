// Package field defines the parametric description of a pesäpallo field
// and the geometry engine that derives every line, arc, and measurement
// of the diagram from it.
package field

import "fmt"

// HomePlateSpec describes the plate and the batting line in front of it.
type HomePlateSpec struct {
	Radius           float64 // plate circle radius
	CenterToHomeLine float64 // Y of the home line, measured from the plate center
	LineHalfWidth    float64 // how far the painted line extends past each sector ray
}

// BattingSectorSpec defines the fan-shaped foul-line sector as two rays
// from a point behind the plate. Angles are degrees from the +Y axis,
// clockwise positive, so the left ray carries a negative angle.
type BattingSectorSpec struct {
	OriginOffsetY float64
	LeftAngleDeg  float64
	RightAngleDeg float64
}

// DiagonalLinesSpec describes the sector boundary lines past the home
// line. LengthFromHomeLine is applied as a Y advance: the line ends
// exactly that many meters deeper than the home line.
type DiagonalLinesSpec struct {
	LengthFromHomeLine float64
}

// BackBoundarySpec is the rear boundary of the field.
type BackBoundarySpec struct {
	DistanceFromHomeLine float64
	Width                float64
}

// ArcSpec is a pair of concentric decorative arcs.
type ArcSpec struct {
	InnerRadius float64
	OuterRadius float64
}

// Profile is the complete parametric description of one field variant.
// All distances are meters, all angles degrees. A profile is immutable
// once registered; derived geometry is a pure function of the profile
// plus the editable points.
type Profile struct {
	Name string

	HomePlate     HomePlateSpec
	BattingSector BattingSectorSpec
	DiagonalLines DiagonalLinesSpec
	BackBoundary  BackBoundarySpec
	FrontArc      ArcSpec // in front of the plate
	HomeArcs      ArcSpec // behind the plate

	// Base placement. First is a distance along the left sector ray
	// from the homeLeft corner; Second and Third are Y offsets from the
	// right and left diagonal ends (negative means toward home).
	FirstBaseOffset  float64
	SecondBaseOffset float64
	ThirdBaseOffset  float64

	BaseRadius     float64 // base circle radius, also the path trim amount
	BaseLineLength float64 // length of the run-up line at each base

	// Default home-path shape: the first segment runs from the third
	// base straight toward home for HomePathFirstLine meters, the second
	// cuts across to (-HomePathEndOffset, 0).
	HomePathFirstLine float64
	HomePathEndOffset float64
}

// Validate checks the profile for values the engine cannot work with.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	if p.HomePlate.Radius <= 0 {
		return fmt.Errorf("home plate radius must be positive")
	}
	if p.HomePlate.CenterToHomeLine <= 0 {
		return fmt.Errorf("home line distance must be positive")
	}
	if p.BattingSector.OriginOffsetY >= p.HomePlate.CenterToHomeLine {
		return fmt.Errorf("sector origin must sit before the home line")
	}
	if p.BattingSector.LeftAngleDeg >= 0 || p.BattingSector.RightAngleDeg <= 0 {
		return fmt.Errorf("sector angles must open left (negative) and right (positive)")
	}
	if p.BattingSector.LeftAngleDeg <= -90 || p.BattingSector.RightAngleDeg >= 90 {
		return fmt.Errorf("sector rays must point into the field")
	}
	if p.DiagonalLines.LengthFromHomeLine <= 0 {
		return fmt.Errorf("diagonal line length must be positive")
	}
	if p.BackBoundary.DistanceFromHomeLine <= 0 || p.BackBoundary.Width <= 0 {
		return fmt.Errorf("back boundary dimensions must be positive")
	}
	if p.FirstBaseOffset <= 0 {
		return fmt.Errorf("first base offset must be positive")
	}
	if p.BaseRadius <= 0 {
		return fmt.Errorf("base radius must be positive")
	}
	if p.HomePathFirstLine <= 0 {
		return fmt.Errorf("home path first line length must be positive")
	}
	if p.HomePathEndOffset < 0 {
		return fmt.Errorf("home path end offset must not be negative")
	}
	return nil
}
