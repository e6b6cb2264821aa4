package geom

import (
	"math"
	"testing"
)

func TestAffineApply(t *testing.T) {
	// Pure translation.
	tr := Affine{A: 1, D: 1, TX: 3, TY: -2}
	got := tr.Apply(Pt(1, 1))
	if got.DistanceTo(Pt(4, -1)) > 1e-10 {
		t.Errorf("Apply = %v, want (4, -1)", got)
	}

	// 90 degree rotation.
	rot := Affine{A: 0, B: -1, C: 1, D: 0}
	got = rot.Apply(Pt(1, 0))
	if got.DistanceTo(Pt(0, 1)) > 1e-10 {
		t.Errorf("rotation Apply = %v, want (0, 1)", got)
	}
}

func TestAffineInvertRoundTrip(t *testing.T) {
	tr := Affine{A: 2, B: 0.5, TX: 10, C: -0.25, D: 1.5, TY: -4}
	inv, err := tr.Invert()
	if err != nil {
		t.Fatalf("Invert returned error: %v", err)
	}
	points := []Point{Pt(0, 0), Pt(1, 2), Pt(-42, 96), Pt(0.001, -0.001)}
	for _, p := range points {
		back := inv.Apply(tr.Apply(p))
		if back.DistanceTo(p) > 1e-9 {
			t.Errorf("round trip of %v = %v", p, back)
		}
	}
}

func TestAffineInvertSingular(t *testing.T) {
	// Rank-deficient: both rows collinear.
	tr := Affine{A: 1, B: 2, C: 2, D: 4}
	if _, err := tr.Invert(); err == nil {
		t.Fatal("expected error inverting singular transform, got nil")
	}
}

func TestAffineScale(t *testing.T) {
	tr := Affine{A: 3, D: 3}
	if got := tr.Scale(); math.Abs(got-3) > 1e-10 {
		t.Errorf("Scale = %v, want 3", got)
	}
}
