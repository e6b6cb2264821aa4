package render

import (
	"math"
	"strconv"

	"github.com/pesislab/kentta/pkg/field"
	"github.com/pesislab/kentta/pkg/geom"
)

// Dimension lines for the back distance and field width sit this far
// outside the boundary they measure, in meters. The other measurements
// annotate their geometry line directly.
const dimOffsetM = 1.5

// Label is one measurement caption, positioned in screen pixels.
type Label struct {
	Key      string
	Text     string
	Pos      geom.Point // anchor, center of the text
	AngleRad float64    // rotation so the text runs along its line
	FontPx   float64
}

// HitArea pairs a measurement's dimension line with its label box, both
// in screen pixels, for hover lookup.
type HitArea struct {
	Key   string
	Value float64
	Line  geom.Segment
	Label geom.Rect
}

// MeasureSegment is one dimension line in field space.
type MeasureSegment struct {
	Key   string
	Value float64
	Seg   geom.Segment
}

// MeasureSegments lists the dimension lines in a fixed draw order:
// boundary dimensions, then base paths, then the home path. Hover
// lookup walks the same order, so overlaps resolve to the earlier
// entry.
func MeasureSegments(p *field.Profile, g *field.DerivedGeometry) []MeasureSegment {
	homeLineY := p.HomePlate.CenterToHomeLine
	backY := homeLineY + p.BackBoundary.DistanceFromHomeLine
	sideX := g.DiagonalRightEnd.X

	m := g.Measurements
	return []MeasureSegment{
		{field.MeasureWidth, m[field.MeasureWidth],
			geom.Seg(geom.Pt(g.BackLeft.X, backY+dimOffsetM), geom.Pt(g.BackRight.X, backY+dimOffsetM))},
		{field.MeasureBack, m[field.MeasureBack],
			geom.Seg(geom.Pt(sideX+dimOffsetM, homeLineY), geom.Pt(sideX+dimOffsetM, backY))},
		{field.MeasureDiagonal, m[field.MeasureDiagonal],
			geom.Seg(g.HomeLeft, g.DiagonalLeftEnd)},
		{field.MeasureFirst, m[field.MeasureFirst],
			geom.Seg(g.HomeLeft, g.FirstBase)},
		{field.MeasureSecond, m[field.MeasureSecond], g.FirstToSecond},
		{field.MeasureThird, m[field.MeasureThird], g.SecondToThird},
		{field.MeasureHomePath, m[field.MeasureHomePath], g.HomePath[0]},
	}
}

// BuildMeasurementDisplay lays the measurement captions out in screen
// space: the labels to draw and their hover hit areas, index-aligned
// with MeasureSegments.
func BuildMeasurementDisplay(p *field.Profile, g *field.DerivedGeometry, cam *Camera) ([]Label, []HitArea) {
	segs := MeasureSegments(p, g)
	labels := make([]Label, 0, len(segs))
	areas := make([]HitArea, 0, len(segs))

	fontPx := labelFontPx(cam.PxPerMeter())
	for _, ms := range segs {
		a := cam.FieldToScreen(ms.Seg.Start)
		b := cam.FieldToScreen(ms.Seg.End)
		mid := geom.Seg(a, b).Midpoint()

		angle := math.Atan2(b.Y-a.Y, b.X-a.X)
		// Flip upside-down angles so the text reads left to right.
		if angle > math.Pi/2 {
			angle -= math.Pi
		} else if angle < -math.Pi/2 {
			angle += math.Pi
		}

		// Lift the text off its line, toward screen-up along the line
		// normal.
		off := geom.Vec{X: math.Sin(angle), Y: -math.Cos(angle)}.Scale(0.9 * fontPx)
		pos := mid.Add(off)

		text := FormatMeasurement(ms.Value)
		rect := geom.RectFromCenter(pos, estimateTextWidth(text, fontPx), 1.4*fontPx)

		labels = append(labels, Label{
			Key:      ms.Key,
			Text:     text,
			Pos:      pos,
			AngleRad: angle,
			FontPx:   fontPx,
		})
		areas = append(areas, HitArea{Key: ms.Key, Value: ms.Value, Line: geom.Seg(a, b), Label: rect})
	}
	return labels, areas
}

// FormatMeasurement renders a meter value rounded to one decimal, with
// a whole number shown without the decimal: "96 m", "27.2 m".
func FormatMeasurement(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64) + " m"
}

// labelFontPx sizes label text with the diagram, clamped to stay
// legible when zoomed out and restrained when zoomed in.
func labelFontPx(pxPerMeter float64) float64 {
	size := 2.2 * pxPerMeter
	if size < 10 {
		return 10
	}
	if size > 26 {
		return 26
	}
	return size
}

// estimateTextWidth approximates the rendered width of the label for
// its hit box. The draw pass measures precisely; the hit box only needs
// to cover the text.
func estimateTextWidth(text string, fontPx float64) float64 {
	return 0.62 * fontPx * float64(len([]rune(text)))
}
