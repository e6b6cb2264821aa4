package field

import (
	"fmt"
	"math"

	"github.com/pesislab/kentta/pkg/geom"
)

// HitInfo describes a ball position relative to the batting sector, for
// the hitting-angle view.
type HitInfo struct {
	AngleDeg float64 // from straight ahead, clockwise positive, same convention as the sector angles
	Distance float64 // from the plate center, meters
	Inside   bool    // between the two sector rays
}

// HitAngle evaluates a ball placement against the profile's batting
// sector. The angle is measured at the sector origin so it compares
// directly with LeftAngleDeg/RightAngleDeg. A ball on the origin has no
// direction and is rejected.
func HitAngle(p *Profile, ball geom.Point) (HitInfo, error) {
	origin := geom.Pt(0, p.BattingSector.OriginOffsetY)
	dir := ball.Sub(origin)
	if dir.IsZero() {
		return HitInfo{}, fmt.Errorf("ball coincides with the sector origin")
	}
	angle := math.Atan2(dir.X, dir.Y) * 180.0 / math.Pi
	return HitInfo{
		AngleDeg: angle,
		Distance: ball.DistanceTo(geom.Pt(0, 0)),
		Inside:   angle >= p.BattingSector.LeftAngleDeg && angle <= p.BattingSector.RightAngleDeg,
	}, nil
}
