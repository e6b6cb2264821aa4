package render

import "github.com/pesislab/kentta/pkg/geom"

// DefaultHoverThresholdPx is the pointer distance within which a
// dimension line counts as hovered.
const DefaultHoverThresholdPx = 8.0

// FindHovered returns the index of the first hit area the pointer is
// over: inside its label box, or within threshold of its line. Areas
// are listed in draw order, so an overlap resolves to the area drawn
// first, never arbitrarily.
func FindHovered(p geom.Point, areas []HitArea, threshold float64) (int, bool) {
	for i, a := range areas {
		if a.Label.Contains(p) {
			return i, true
		}
		if a.Line.DistanceTo(p) < threshold {
			return i, true
		}
	}
	return -1, false
}
