package geom

import "math"

// DegenerateError reports a geometric operation with no well-defined
// result, such as intersecting parallel lines or inverting a singular
// transform.
type DegenerateError struct {
	Op string
}

func (e *DegenerateError) Error() string {
	return "degenerate geometry: " + e.Op
}

// Affine is a 2D affine transform:
//
//	x' = A*x + B*y + TX
//	y' = C*x + D*y + TY
type Affine struct {
	A, B, TX float64
	C, D, TY float64
}

// IdentityAffine returns the identity transform.
func IdentityAffine() Affine {
	return Affine{A: 1, D: 1}
}

// Apply transforms p.
func (t Affine) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.TX,
		Y: t.C*p.X + t.D*p.Y + t.TY,
	}
}

// Invert returns the inverse transform, or a DegenerateError when the
// determinant is near zero.
func (t Affine) Invert() (Affine, error) {
	det := t.A*t.D - t.B*t.C
	if math.Abs(det) < 1e-10 {
		return Affine{}, &DegenerateError{Op: "inverting a singular affine transform"}
	}
	inv := Affine{
		A: t.D / det,
		B: -t.B / det,
		C: -t.C / det,
		D: t.A / det,
	}
	inv.TX = -(inv.A*t.TX + inv.B*t.TY)
	inv.TY = -(inv.C*t.TX + inv.D*t.TY)
	return inv, nil
}

// Scale returns the average axis scale factor of the transform, used to
// convert lengths between the two spaces.
func (t Affine) Scale() float64 {
	sx := math.Hypot(t.A, t.C)
	sy := math.Hypot(t.B, t.D)
	return (sx + sy) / 2
}
