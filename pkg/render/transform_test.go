package render

import (
	"math"
	"testing"

	"github.com/pesislab/kentta/pkg/geom"
)

func TestToCanvas(t *testing.T) {
	tr := Transform{Origin: geom.Pt(400, 700), Scale: 6}
	cases := []struct {
		name  string
		field geom.Point
		want  geom.Point
	}{
		{"origin", geom.Pt(0, 0), geom.Pt(400, 700)},
		{"right and deep goes right and up", geom.Pt(10, 20), geom.Pt(460, 580)},
		{"left of plate", geom.Pt(-5, 0), geom.Pt(370, 700)},
		{"behind plate goes below origin", geom.Pt(0, -2), geom.Pt(400, 712)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tr.ToCanvas(tc.field); got != tc.want {
				t.Errorf("ToCanvas(%v) = %v, want %v", tc.field, got, tc.want)
			}
		})
	}
}

func TestFromCanvasRoundTrip(t *testing.T) {
	tr := Transform{Origin: geom.Pt(123.5, 987.25), Scale: 7.3}
	pts := []geom.Point{
		{X: 0, Y: 0},
		{X: -21, Y: 101},
		{X: 13.37, Y: -2.5},
	}
	for _, p := range pts {
		back := tr.FromCanvas(tr.ToCanvas(p))
		if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
			t.Errorf("round trip of %v gave %v", p, back)
		}
	}
}

func TestFromCanvasWithZoom(t *testing.T) {
	tr := Transform{Origin: geom.Pt(400, 700), Scale: 6}
	zoom := 2.0
	pan := geom.Vec{X: 30, Y: -12}

	// Forward: canvas point scaled by zoom then shifted by pan.
	p := geom.Pt(-8, 55)
	canvas := tr.ToCanvas(p)
	screen := geom.Pt(canvas.X*zoom+pan.X, canvas.Y*zoom+pan.Y)

	back := tr.FromCanvasWithZoom(screen, zoom, pan)
	if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
		t.Errorf("FromCanvasWithZoom gave %v, want %v", back, p)
	}

	// Zoom 1, no pan degenerates to the plain inverse.
	plain := tr.FromCanvas(canvas)
	viaZoom := tr.FromCanvasWithZoom(canvas, 1, geom.Vec{})
	if plain != viaZoom {
		t.Errorf("zoom-1 inverse %v differs from plain inverse %v", viaZoom, plain)
	}
}
