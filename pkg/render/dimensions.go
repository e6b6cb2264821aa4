package render

import (
	"github.com/pesislab/kentta/pkg/field"
	"github.com/pesislab/kentta/pkg/geom"
)

// Margins around the drawn field, in meters. The bottom margin is the
// largest: the sector origin and the plate arcs sit behind the home
// plate, below field Y zero.
const (
	sideMarginM   = 4.0
	topMarginM    = 4.0
	bottomMarginM = 8.0
)

// MinScale is the smallest permitted pixel-per-meter scale. Very small
// viewports clamp here instead of degenerating to a zero-size canvas.
const MinScale = 1.0

// CanvasDimensions is the fitted canvas layout for one profile and
// viewport: the drawable size, the uniform scale, and where the field
// origin lands.
type CanvasDimensions struct {
	Width  int
	Height int

	// Scale is pixels per meter, identical on both axes.
	Scale float64

	// Origin is the canvas position of the home-plate center. Centered
	// horizontally; vertically the plate sits a fixed margin above the
	// canvas bottom and the field extends upward.
	Origin geom.Point
}

// Transform returns the base field-to-canvas transform for this layout.
func (d CanvasDimensions) Transform() Transform {
	return Transform{Origin: d.Origin, Scale: d.Scale}
}

// CalculateCanvasDimensions fits the whole field into the viewport.
// chromeHeights are pixel heights of UI bars stacked above or below the
// canvas; they are subtracted from the usable height. The scale is the
// smaller of the width and height budgets so the field never distorts.
func CalculateCanvasDimensions(p *field.Profile, viewportWidth, viewportHeight int, chromeHeights ...int) CanvasDimensions {
	width := viewportWidth
	height := viewportHeight
	for _, h := range chromeHeights {
		height -= h
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	fieldW := p.BackBoundary.Width + 2*sideMarginM
	fieldH := p.HomePlate.CenterToHomeLine + p.BackBoundary.DistanceFromHomeLine +
		topMarginM + bottomMarginM

	scale := float64(width) / fieldW
	if s := float64(height) / fieldH; s < scale {
		scale = s
	}
	if scale < MinScale {
		scale = MinScale
	}

	return CanvasDimensions{
		Width:  width,
		Height: height,
		Scale:  scale,
		Origin: geom.Pt(float64(width)/2.0, float64(height)-bottomMarginM*scale),
	}
}
