package render

import (
	"math"
	"testing"

	"github.com/pesislab/kentta/pkg/geom"
)

func testCamera() *Camera {
	return NewCamera(Transform{Origin: geom.Pt(400, 700), Scale: 6}, 800, 760)
}

func TestCameraRoundTrip(t *testing.T) {
	cam := testCamera()
	cam.Zoom = 1.75
	cam.Pan = geom.Vec{X: -40, Y: 25}

	p := geom.Pt(-18.5, 62)
	back := cam.ScreenToField(cam.FieldToScreen(p))
	if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
		t.Errorf("round trip of %v gave %v", p, back)
	}
}

func TestCameraZoomAtKeepsCursorAnchored(t *testing.T) {
	cam := testCamera()
	cursorX, cursorY := 250.0, 300.0

	before := cam.ScreenToField(geom.Pt(cursorX, cursorY))
	cam.ZoomAt(cursorX, cursorY, 1.5)
	after := cam.ScreenToField(geom.Pt(cursorX, cursorY))

	if math.Abs(before.X-after.X) > 1e-9 || math.Abs(before.Y-after.Y) > 1e-9 {
		t.Errorf("point under cursor moved: %v then %v", before, after)
	}
	if cam.Zoom != 1.5 {
		t.Errorf("Zoom = %v, want 1.5", cam.Zoom)
	}
}

func TestCameraZoomClamped(t *testing.T) {
	cam := testCamera()
	cam.ZoomAt(400, 380, 100)
	if cam.Zoom != MaxZoom {
		t.Errorf("Zoom = %v, want clamped to %v", cam.Zoom, MaxZoom)
	}
	cam.ZoomAt(400, 380, 1e-6)
	if cam.Zoom != MinZoom {
		t.Errorf("Zoom = %v, want clamped to %v", cam.Zoom, MinZoom)
	}
}

func TestCameraZoomAtClampKeepsAnchor(t *testing.T) {
	// Even when the factor clamps, the cursor anchor must hold.
	cam := testCamera()
	cursor := geom.Pt(120, 650)

	before := cam.ScreenToField(cursor)
	cam.ZoomAt(cursor.X, cursor.Y, 100)
	after := cam.ScreenToField(cursor)

	if math.Abs(before.X-after.X) > 1e-9 || math.Abs(before.Y-after.Y) > 1e-9 {
		t.Errorf("point under cursor moved on clamped zoom: %v then %v", before, after)
	}
}

func TestCameraPanBy(t *testing.T) {
	cam := testCamera()
	origin := cam.FieldToScreen(geom.Pt(0, 0))

	cam.PanBy(15, -9)
	moved := cam.FieldToScreen(geom.Pt(0, 0))

	if math.Abs(moved.X-origin.X-15) > 1e-9 || math.Abs(moved.Y-origin.Y+9) > 1e-9 {
		t.Errorf("pan moved origin from %v to %v, want +15,-9", origin, moved)
	}
}

func TestCameraReset(t *testing.T) {
	cam := testCamera()
	cam.ZoomAt(100, 100, 2)
	cam.PanBy(50, 50)

	cam.Reset()
	if cam.Zoom != 1.0 || cam.Pan != (geom.Vec{}) {
		t.Errorf("Reset left zoom %v pan %v", cam.Zoom, cam.Pan)
	}

	// Back at the fitted view, field and canvas coincide.
	p := geom.Pt(7, 33)
	if got, want := cam.FieldToScreen(p), cam.Base.ToCanvas(p); got != want {
		t.Errorf("after reset FieldToScreen = %v, want %v", got, want)
	}
}

func TestCameraPxPerMeter(t *testing.T) {
	cam := testCamera()
	if got := cam.PxPerMeter(); got != 6.0 {
		t.Errorf("PxPerMeter = %v, want 6", got)
	}
	cam.Zoom = 2
	if got := cam.PxPerMeter(); got != 12.0 {
		t.Errorf("PxPerMeter = %v, want 12", got)
	}
}
