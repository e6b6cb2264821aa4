package underlay

import (
	"math"
	"strings"
	"testing"

	"github.com/pesislab/kentta/pkg/geom"
)

// photoTransform is a plausible pixels-to-meters mapping: roughly
// 2 cm per pixel, slightly rotated, y flipped, origin moved.
var photoTransform = geom.Affine{
	A: 0.020, B: 0.0031, TX: -21.4,
	C: 0.0029, D: -0.021, TY: 96.8,
}

func pairsFrom(tr geom.Affine, imagePts ...geom.Point) []ControlPair {
	pairs := make([]ControlPair, len(imagePts))
	for i, p := range imagePts {
		pairs[i] = ControlPair{Image: p, Field: tr.Apply(p)}
	}
	return pairs
}

func affineClose(t *testing.T, got, want geom.Affine, tol float64) {
	t.Helper()
	diffs := []float64{
		got.A - want.A, got.B - want.B, got.TX - want.TX,
		got.C - want.C, got.D - want.D, got.TY - want.TY,
	}
	for _, d := range diffs {
		if math.Abs(d) > tol {
			t.Fatalf("transform = %+v, want %+v", got, want)
		}
	}
}

func TestCalibrateExactRecovery(t *testing.T) {
	pairs := pairsFrom(photoTransform,
		geom.Pt(100, 200), geom.Pt(900, 250), geom.Pt(500, 800))
	got, err := Calibrate(pairs)
	if err != nil {
		t.Fatalf("Calibrate: %v", err)
	}
	affineClose(t, got, photoTransform, 1e-9)
}

func TestCalibrateLeastSquares(t *testing.T) {
	pairs := pairsFrom(photoTransform,
		geom.Pt(80, 120), geom.Pt(940, 160), geom.Pt(510, 780),
		geom.Pt(130, 900), geom.Pt(860, 840), geom.Pt(480, 430))
	got, err := Calibrate(pairs)
	if err != nil {
		t.Fatalf("Calibrate: %v", err)
	}
	affineClose(t, got, photoTransform, 1e-9)

	// Jitter the field points; the fit should stay close and the
	// residual should stay around the jitter size.
	for i := range pairs {
		off := 0.05
		if i%2 == 0 {
			off = -0.05
		}
		pairs[i].Field.X += off
		pairs[i].Field.Y -= off
	}
	got, err = Calibrate(pairs)
	if err != nil {
		t.Fatalf("Calibrate with jitter: %v", err)
	}
	if e := MeanError(pairs, got); e > 0.1 {
		t.Errorf("mean residual %v too large for 5 cm jitter", e)
	}
}

func TestCalibrateTooFewPairs(t *testing.T) {
	pairs := pairsFrom(photoTransform, geom.Pt(0, 0), geom.Pt(10, 10))
	if _, err := Calibrate(pairs); err == nil {
		t.Fatal("expected error for 2 pairs")
	} else if !strings.Contains(err.Error(), "control pairs") {
		t.Errorf("unexpected error text: %v", err)
	}
}

func TestCalibrateCollinearFallsBackToRigid(t *testing.T) {
	// All control points along one painted line. A full affine is
	// unconstrained, but rotation and translation are recoverable.
	theta := 30 * math.Pi / 180
	rigid := geom.Affine{
		A: math.Cos(theta), B: -math.Sin(theta), TX: 4.5,
		C: math.Sin(theta), D: math.Cos(theta), TY: -2.0,
	}
	pairs := pairsFrom(rigid, geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(200, 0))

	got, err := Calibrate(pairs)
	if err != nil {
		t.Fatalf("Calibrate: %v", err)
	}
	affineClose(t, got, rigid, 1e-9)
	if scale := got.Scale(); math.Abs(scale-1) > 1e-9 {
		t.Errorf("rigid fallback scale = %v, want 1", scale)
	}
}

func TestCalibrateRANSACRejectsOutlier(t *testing.T) {
	pairs := pairsFrom(photoTransform,
		geom.Pt(60, 90), geom.Pt(920, 140), geom.Pt(520, 760),
		geom.Pt(150, 880), geom.Pt(830, 860), geom.Pt(470, 410),
		geom.Pt(300, 300), geom.Pt(700, 600))
	// One badly placed pair, 18 m off.
	pairs[2].Field.X += 15
	pairs[2].Field.Y -= 11

	got, inliers, err := CalibrateRANSAC(pairs, 300, 0.5)
	if err != nil {
		t.Fatalf("CalibrateRANSAC: %v", err)
	}
	if len(inliers) != len(pairs)-1 {
		t.Fatalf("inliers = %v, want all but index 2", inliers)
	}
	for _, idx := range inliers {
		if idx == 2 {
			t.Fatalf("outlier index 2 kept: %v", inliers)
		}
	}
	affineClose(t, got, photoTransform, 1e-6)
}

func TestCalibrateRANSACTooFewPairs(t *testing.T) {
	if _, _, err := CalibrateRANSAC(nil, 100, 0.5); err == nil {
		t.Fatal("expected error for no pairs")
	}
}

func TestCalibrateRigidTooFewPairs(t *testing.T) {
	if _, err := CalibrateRigid([]ControlPair{{}}); err == nil {
		t.Fatal("expected error for 1 pair")
	}
}

func TestMeanErrorEmpty(t *testing.T) {
	if e := MeanError(nil, geom.IdentityAffine()); !math.IsInf(e, 1) {
		t.Errorf("MeanError(nil) = %v, want +Inf", e)
	}
}
