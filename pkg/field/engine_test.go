package field

import (
	"math"
	"reflect"
	"testing"

	"github.com/pesislab/kentta/pkg/geom"
)

func TestCalculateMenMeasurements(t *testing.T) {
	g, err := Calculate(MenProfile(), EditablePoints{}, 10)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if got := g.Measurements[MeasureBack]; got != 96.0 {
		t.Errorf("measurements[back] = %v, want 96.0", got)
	}
	if got := g.Measurements[MeasureWidth]; got != 42.0 {
		t.Errorf("measurements[width] = %v, want 42.0", got)
	}
	if got := g.Measurements[MeasureFirst]; got != 20.0 {
		t.Errorf("measurements[first] = %v, want 20.0", got)
	}
	for name, v := range g.Measurements {
		if v < 0 {
			t.Errorf("measurement %q is negative: %v", name, v)
		}
	}
}

func TestCalculateWomenDiagonalEnd(t *testing.T) {
	g, err := Calculate(WomenProfile(), EditablePoints{}, 10)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	// Exact, not approximate: the diagonal end is constructed by adding
	// the configured length to the home-line Y.
	if got, want := g.DiagonalLeftEnd.Y, g.HomeLeft.Y+27.162; got != want {
		t.Errorf("DiagonalLeftEnd.Y = %v, want %v", got, want)
	}
	if got := g.Measurements[MeasureDiagonal]; got != 27.162 {
		t.Errorf("measurements[diagonal] = %v, want 27.162", got)
	}
}

func TestCalculateSymmetry(t *testing.T) {
	for _, p := range []*Profile{MenProfile(), WomenProfile()} {
		g, err := Calculate(p, EditablePoints{}, 10)
		if err != nil {
			t.Fatalf("%s: Calculate returned error: %v", p.Name, err)
		}
		if math.Abs(g.HomeLeft.X+g.HomeRight.X) > 1e-10 {
			t.Errorf("%s: home corners not symmetric: %v vs %v", p.Name, g.HomeLeft.X, g.HomeRight.X)
		}
		if math.Abs(g.HomeLeft.Y-g.HomeRight.Y) > 1e-10 {
			t.Errorf("%s: home corners at different depth", p.Name)
		}
		// The diagonal ends land on the side boundaries: |X| is half the
		// field width, up to the profile's angle calibration.
		half := p.BackBoundary.Width / 2
		if math.Abs(-g.DiagonalLeftEnd.X-half) > 1e-2 {
			t.Errorf("%s: DiagonalLeftEnd.X = %v, want about %v", p.Name, g.DiagonalLeftEnd.X, -half)
		}
	}
}

func TestCalculateDeterminism(t *testing.T) {
	p := MenProfile()
	a, err := Calculate(p, EditablePoints{}, 7.5)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	b, err := Calculate(p, EditablePoints{}, 7.5)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two calls with identical inputs differ")
	}
}

func TestCalculateMaterializesPoints(t *testing.T) {
	g, err := Calculate(MenProfile(), EditablePoints{}, 10)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if !g.Points.Initialized() {
		t.Fatal("points not materialized")
	}
	if *g.Points.HomePathStart != g.OriginalHomePath[0].Start {
		t.Errorf("materialized start = %v, want %v", *g.Points.HomePathStart, g.OriginalHomePath[0].Start)
	}
	if *g.Points.HomePathMid != g.OriginalHomePath[0].End {
		t.Errorf("materialized mid = %v, want %v", *g.Points.HomePathMid, g.OriginalHomePath[0].End)
	}
	if *g.Points.HomePathEnd != g.OriginalHomePath[1].End {
		t.Errorf("materialized end = %v, want %v", *g.Points.HomePathEnd, g.OriginalHomePath[1].End)
	}
}

func TestCalculatePartialPointsRematerialized(t *testing.T) {
	// One nil point means first-time materialization: all three come
	// from the default path, set values included.
	mid := geom.Pt(-15, 20)
	g, err := Calculate(MenProfile(), EditablePoints{HomePathMid: &mid}, 10)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if *g.Points.HomePathMid != g.OriginalHomePath[0].End {
		t.Errorf("partial input kept a point: mid = %v", *g.Points.HomePathMid)
	}
}

func TestCalculateEditedPointsUsed(t *testing.T) {
	start := geom.Pt(-21, 59)
	mid := geom.Pt(-18, 25)
	end := geom.Pt(-1, 0)
	pts := EditablePoints{HomePathStart: &start, HomePathMid: &mid, HomePathEnd: &end}
	g, err := Calculate(MenProfile(), pts, 10)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if g.HomePath[0].Start != start || g.HomePath[0].End != mid || g.HomePath[1].End != end {
		t.Errorf("home path does not follow the edited points: %+v", g.HomePath)
	}
	want := start.DistanceTo(mid) + mid.DistanceTo(end)
	if got := g.Measurements[MeasureHomePath]; math.Abs(got-want) > 1e-10 {
		t.Errorf("measurements[homepath] = %v, want %v", got, want)
	}
	// The default path is reported unchanged alongside the edits.
	if g.OriginalHomePath[0].Start != g.ThirdBase {
		t.Errorf("original path start = %v, want third base %v", g.OriginalHomePath[0].Start, g.ThirdBase)
	}
}

func TestCalculateTrimmedPathLengths(t *testing.T) {
	p := MenProfile()
	g, err := Calculate(p, EditablePoints{}, 10)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	want := g.FirstBase.DistanceTo(g.SecondBase) - 2*p.BaseRadius
	if got := g.Measurements[MeasureSecond]; math.Abs(got-want) > 1e-10 {
		t.Errorf("measurements[second] = %v, want %v", got, want)
	}
	want = g.SecondBase.DistanceTo(g.ThirdBase) - 2*p.BaseRadius
	if got := g.Measurements[MeasureThird]; math.Abs(got-want) > 1e-10 {
		t.Errorf("measurements[third] = %v, want %v", got, want)
	}
}

func TestCalculateExtension(t *testing.T) {
	p := MenProfile()
	g, err := Calculate(p, EditablePoints{}, 10)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if g.Extension == nil {
		t.Fatal("extension missing for default geometry")
	}
	// The extension stops one base radius short of the first base.
	if got := g.Extension.End.DistanceTo(g.FirstBase); math.Abs(got-p.BaseRadius) > 1e-9 {
		t.Errorf("extension end %v from first base, want %v", got, p.BaseRadius)
	}
	// Its start lies on the second home-path line.
	mid := *g.Points.HomePathMid
	end := *g.Points.HomePathEnd
	cross := g.Extension.Start.Sub(mid).Cross(end.Sub(mid))
	if math.Abs(cross) > 1e-6 {
		t.Errorf("extension start not on the home path line: cross = %v", cross)
	}
}

func TestCalculateExtensionParallelSkipped(t *testing.T) {
	p := MenProfile()
	base, err := Calculate(p, EditablePoints{}, 10)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	// Align the second home-path segment with the first-to-second
	// direction so no intersection exists.
	dir := base.SecondBase.Sub(base.FirstBase)
	start := *base.Points.HomePathStart
	mid := geom.Pt(-10, 10)
	end := mid.Add(dir)
	g, err := Calculate(p, EditablePoints{HomePathStart: &start, HomePathMid: &mid, HomePathEnd: &end}, 10)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if g.Extension != nil {
		t.Errorf("extension = %+v, want skipped for parallel directions", *g.Extension)
	}
}

func TestCalculateFrontArcAngles(t *testing.T) {
	g, err := Calculate(MenProfile(), EditablePoints{}, 10)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	// Rays at ±30° from straight ahead are at 60° and 120° in math
	// convention.
	if math.Abs(g.FrontArcStart-math.Pi/3) > 1e-9 {
		t.Errorf("FrontArcStart = %v, want %v", g.FrontArcStart, math.Pi/3)
	}
	if math.Abs(g.FrontArcEnd-2*math.Pi/3) > 1e-9 {
		t.Errorf("FrontArcEnd = %v, want %v", g.FrontArcEnd, 2*math.Pi/3)
	}
}

func TestCalculateInvalidInput(t *testing.T) {
	if _, err := Calculate(nil, EditablePoints{}, 10); err == nil {
		t.Error("nil profile accepted")
	}
	if _, err := Calculate(MenProfile(), EditablePoints{}, 0); err == nil {
		t.Error("zero scale accepted")
	}
	if _, err := Calculate(MenProfile(), EditablePoints{}, math.NaN()); err == nil {
		t.Error("NaN scale accepted")
	}
	bad := geom.Pt(math.NaN(), 0)
	good := geom.Pt(0, 0)
	pts := EditablePoints{HomePathStart: &bad, HomePathMid: &good, HomePathEnd: &good}
	if _, err := Calculate(MenProfile(), pts, 10); err == nil {
		t.Error("NaN editable point accepted")
	}
}
