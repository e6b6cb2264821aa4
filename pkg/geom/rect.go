package geom

// Rect is an axis-aligned rectangle with Min at the smaller coordinates.
// In screen space that means Min is the top-left corner.
type Rect struct {
	Min, Max Point
}

// RectFromCenter builds a rectangle of the given width and height
// centered on c.
func RectFromCenter(c Point, width, height float64) Rect {
	return Rect{
		Min: Point{X: c.X - width/2, Y: c.Y - height/2},
		Max: Point{X: c.X + width/2, Y: c.Y + height/2},
	}
}

// Contains reports whether p lies inside the rectangle, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}
