package field

import (
	"testing"

	"github.com/pesislab/kentta/pkg/geom"
)

func TestSnapTargetsOrder(t *testing.T) {
	p := MenProfile()
	g, err := Calculate(p, EditablePoints{}, 10)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	targets := SnapTargets(p, g)
	if len(targets) != 18 {
		t.Fatalf("len(targets) = %d, want 18", len(targets))
	}
	// Points first, then arcs, then lines. Snap resolution depends on
	// this ordering for its tie-breaks.
	group := func(k TargetKind) int {
		switch k {
		case TargetPoint:
			return 0
		case TargetArc:
			return 1
		default:
			return 2
		}
	}
	wantCounts := map[TargetKind]int{TargetPoint: 6, TargetArc: 4, TargetLine: 8}
	last := 0
	for i, tg := range targets {
		gr := group(tg.Kind)
		if gr < last {
			t.Fatalf("target %d of kind %v after a later group", i, tg.Kind)
		}
		last = gr
		wantCounts[tg.Kind]--
	}
	for k, n := range wantCounts {
		if n != 0 {
			t.Errorf("kind %v off by %d", k, n)
		}
	}
}

func TestSnapTargetsHomeLineExtended(t *testing.T) {
	p := MenProfile()
	g, err := Calculate(p, EditablePoints{}, 10)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	var home *geom.Segment
	for _, tg := range SnapTargets(p, g) {
		if tg.Kind == TargetLine && tg.Line.Start.Y == g.HomeLeft.Y && tg.Line.End.Y == g.HomeLeft.Y {
			home = &tg.Line
			break
		}
	}
	if home == nil {
		t.Fatal("no horizontal line at home line depth")
	}
	if got, want := home.Start.X, g.HomeLeft.X-p.HomePlate.LineHalfWidth; got != want {
		t.Errorf("home line start X = %v, want %v", got, want)
	}
	if got, want := home.End.X, g.HomeRight.X+p.HomePlate.LineHalfWidth; got != want {
		t.Errorf("home line end X = %v, want %v", got, want)
	}
}

func TestSnapTargetsBaseCircles(t *testing.T) {
	p := MenProfile()
	g, err := Calculate(p, EditablePoints{}, 10)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	centers := map[geom.Point]bool{}
	for _, tg := range SnapTargets(p, g) {
		if tg.Kind == TargetArc && tg.Radius == p.BaseRadius {
			centers[tg.Center] = true
		}
	}
	for _, c := range []geom.Point{g.FirstBase, g.SecondBase, g.ThirdBase} {
		if !centers[c] {
			t.Errorf("no base circle at %v", c)
		}
	}
}
