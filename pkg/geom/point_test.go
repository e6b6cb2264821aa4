package geom

import (
	"math"
	"testing"
)

func TestPointDistanceTo(t *testing.T) {
	cases := []struct {
		p, q Point
		want float64
	}{
		{Pt(0, 0), Pt(3, 4), 5},
		{Pt(1, 1), Pt(1, 1), 0},
		{Pt(-2, 0), Pt(2, 0), 4},
	}
	for _, tc := range cases {
		got := tc.p.DistanceTo(tc.q)
		if math.Abs(got-tc.want) > 1e-10 {
			t.Errorf("DistanceTo(%v, %v) = %v, want %v", tc.p, tc.q, got, tc.want)
		}
	}
}

func TestVecUnit(t *testing.T) {
	v := Vec{X: 3, Y: 4}
	u := v.Unit()
	if math.Abs(u.Length()-1) > 1e-10 {
		t.Errorf("Unit length = %v, want 1", u.Length())
	}
	if math.Abs(u.X-0.6) > 1e-10 || math.Abs(u.Y-0.8) > 1e-10 {
		t.Errorf("Unit = %v, want (0.6, 0.8)", u)
	}
}

func TestVecUnitZero(t *testing.T) {
	u := Vec{}.Unit()
	if !u.IsZero() {
		t.Errorf("Unit of zero vector = %v, want zero vector", u)
	}
}

func TestVecCross(t *testing.T) {
	a := Vec{X: 1, Y: 0}
	b := Vec{X: 0, Y: 1}
	if got := a.Cross(b); math.Abs(got-1) > 1e-10 {
		t.Errorf("Cross = %v, want 1", got)
	}
	// Parallel vectors cross to zero.
	c := Vec{X: 2, Y: 3}
	d := Vec{X: 4, Y: 6}
	if got := c.Cross(d); math.Abs(got) > 1e-10 {
		t.Errorf("Cross of parallel vectors = %v, want 0", got)
	}
}

func TestVecPerp(t *testing.T) {
	v := Vec{X: 1, Y: 2}
	p := v.Perp()
	if math.Abs(v.Dot(p)) > 1e-10 {
		t.Errorf("Perp not orthogonal: dot = %v", v.Dot(p))
	}
	if math.Abs(p.Length()-v.Length()) > 1e-10 {
		t.Errorf("Perp changed length: %v vs %v", p.Length(), v.Length())
	}
}
