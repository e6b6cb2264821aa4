package render

import (
	"testing"

	"github.com/pesislab/kentta/pkg/field"
	"github.com/pesislab/kentta/pkg/geom"
)

func TestFindHovered(t *testing.T) {
	areas := []HitArea{
		{
			Key:   "back",
			Line:  geom.Seg(geom.Pt(100, 100), geom.Pt(100, 500)),
			Label: geom.RectFromCenter(geom.Pt(120, 300), 50, 20),
		},
		{
			Key:   "width",
			Line:  geom.Seg(geom.Pt(50, 100), geom.Pt(400, 100)),
			Label: geom.RectFromCenter(geom.Pt(225, 80), 50, 20),
		},
	}

	cases := []struct {
		name    string
		p       geom.Point
		wantIdx int
		wantOK  bool
	}{
		{"on first line", geom.Pt(103, 250), 0, true},
		{"inside first label", geom.Pt(130, 305), 0, true},
		{"on second line only", geom.Pt(300, 104), 1, true},
		{"far from everything", geom.Pt(600, 600), -1, false},
		{"just past threshold", geom.Pt(108.1, 250), -1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			idx, ok := FindHovered(tc.p, areas, DefaultHoverThresholdPx)
			if ok != tc.wantOK || idx != tc.wantIdx {
				t.Errorf("FindHovered(%v) = %d,%v want %d,%v", tc.p, idx, ok, tc.wantIdx, tc.wantOK)
			}
		})
	}
}

func TestFindHoveredFirstMatchWins(t *testing.T) {
	// Both areas cover the probe; the earlier one is drawn first and
	// must win.
	shared := geom.Seg(geom.Pt(0, 0), geom.Pt(100, 0))
	areas := []HitArea{
		{Key: "a", Line: shared},
		{Key: "b", Line: shared},
	}
	idx, ok := FindHovered(geom.Pt(50, 2), areas, DefaultHoverThresholdPx)
	if !ok || idx != 0 {
		t.Errorf("FindHovered = %d,%v want 0,true", idx, ok)
	}
}

func TestFindHoveredOnRealLayout(t *testing.T) {
	p := field.MenProfile()
	d := CalculateCanvasDimensions(p, 900, 1200)
	g, err := field.Calculate(p, field.EditablePoints{}, d.Scale)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	cam := NewCamera(d.Transform(), d.Width, d.Height)
	_, areas := BuildMeasurementDisplay(p, g, cam)

	// Probe directly on the back-width dimension line.
	segs := MeasureSegments(p, g)
	probe := cam.FieldToScreen(segs[0].Seg.Midpoint())
	idx, ok := FindHovered(probe, areas, DefaultHoverThresholdPx)
	if !ok {
		t.Fatal("no hover on a dimension line midpoint")
	}
	if areas[idx].Key != field.MeasureWidth {
		t.Errorf("hovered %q, want %q", areas[idx].Key, field.MeasureWidth)
	}

	// A probe between the bases hits the second-to-third path area.
	probe = cam.FieldToScreen(g.SecondToThird.Midpoint())
	idx, ok = FindHovered(probe, areas, DefaultHoverThresholdPx)
	if !ok {
		t.Fatal("no hover on the second-to-third path")
	}
	if areas[idx].Key != field.MeasureThird {
		t.Errorf("hovered %q, want %q", areas[idx].Key, field.MeasureThird)
	}
}
