package render

import (
	"github.com/pesislab/kentta/pkg/geom"
)

// Zoom limits. The diagram stays readable inside this range; the fit
// scale already fills the viewport at zoom 1.
const (
	MinZoom = 0.5
	MaxZoom = 3.0
)

// Camera is a viewport onto the field: the base transform plus the
// user's zoom and pan on top of it.
type Camera struct {
	// Base maps field meters onto the unzoomed canvas.
	Base Transform

	// Zoom level on top of the base scale. 1.0 = fit.
	Zoom float64

	// Pan offset in screen pixels, applied after zoom.
	Pan geom.Vec

	// Screen dimensions (pixels)
	ScreenWidth  int
	ScreenHeight int
}

// NewCamera creates a camera over the given base transform at zoom 1.
func NewCamera(base Transform, screenWidth, screenHeight int) *Camera {
	return &Camera{
		Base:         base,
		Zoom:         1.0,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// FieldToScreen converts field coordinates (meters) to screen pixels.
func (c *Camera) FieldToScreen(p geom.Point) geom.Point {
	canvas := c.Base.ToCanvas(p)
	return geom.Pt(canvas.X*c.Zoom+c.Pan.X, canvas.Y*c.Zoom+c.Pan.Y)
}

// ScreenToField converts screen pixels to field coordinates (meters).
func (c *Camera) ScreenToField(p geom.Point) geom.Point {
	return c.Base.FromCanvasWithZoom(p, c.Zoom, c.Pan)
}

// PxPerMeter returns the effective screen scale. Pointer thresholds
// defined in pixels divide by this to become field-space distances.
func (c *Camera) PxPerMeter() float64 {
	return c.Base.Scale * c.Zoom
}

// PanBy moves the view by screen pixel offsets.
func (c *Camera) PanBy(deltaX, deltaY float64) {
	c.Pan.X += deltaX
	c.Pan.Y += deltaY
}

// ZoomAt zooms in/out at a specific screen position.
// factor > 1 zooms in, factor < 1 zooms out.
func (c *Camera) ZoomAt(screenX, screenY, factor float64) {
	// Field position under the cursor before the zoom changes.
	anchor := c.ScreenToField(geom.Pt(screenX, screenY))

	c.Zoom *= factor
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
	if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}

	// Re-solve the pan so the anchor stays under the cursor.
	canvas := c.Base.ToCanvas(anchor)
	c.Pan.X = screenX - canvas.X*c.Zoom
	c.Pan.Y = screenY - canvas.Y*c.Zoom
}

// Reset drops zoom and pan back to the fitted view.
func (c *Camera) Reset() {
	c.Zoom = 1.0
	c.Pan = geom.Vec{}
}

// UpdateScreenSize updates the camera when the window is resized. The
// base transform is refitted by the caller; zoom and pan survive.
func (c *Camera) UpdateScreenSize(width, height int) {
	c.ScreenWidth = width
	c.ScreenHeight = height
}

// Refit replaces the base transform after a resize or profile switch.
func (c *Camera) Refit(base Transform) {
	c.Base = base
}
