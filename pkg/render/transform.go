// Package render maps field geometry onto the screen: the meter-to-pixel
// transform, the zoom/pan camera, canvas sizing, color themes, layer
// visibility, measurement labels with their hover areas, and the Gio
// draw pass.
package render

import (
	"github.com/pesislab/kentta/pkg/geom"
)

// Transform is the base field-to-canvas mapping: meters to pixels with
// the Y axis flipped so the field extends up the screen.
type Transform struct {
	// Origin is the canvas position of the home-plate center, in pixels.
	Origin geom.Point
	// Scale is pixels per meter.
	Scale float64
}

// ToCanvas converts a field point (meters) to canvas pixels.
func (t Transform) ToCanvas(p geom.Point) geom.Point {
	return geom.Pt(
		t.Origin.X+p.X*t.Scale,
		t.Origin.Y-p.Y*t.Scale,
	)
}

// FromCanvas converts canvas pixels back to field meters.
func (t Transform) FromCanvas(c geom.Point) geom.Point {
	return geom.Pt(
		(c.X-t.Origin.X)/t.Scale,
		(t.Origin.Y-c.Y)/t.Scale,
	)
}

// FromCanvasWithZoom converts a screen point to field meters when the
// canvas is additionally zoomed and panned: the zoom/pan is undone
// first, then the base mapping.
func (t Transform) FromCanvasWithZoom(c geom.Point, zoom float64, pan geom.Vec) geom.Point {
	unzoomed := geom.Pt((c.X-pan.X)/zoom, (c.Y-pan.Y)/zoom)
	return t.FromCanvas(unzoomed)
}
