package render

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"

	"github.com/pesislab/kentta/pkg/field"
	"github.com/pesislab/kentta/pkg/geom"
)

// Painted line widths in meters. On screen they scale with zoom but
// never drop below one pixel.
const (
	lineWidthM     = 0.10
	homePathWidthM = 0.16
	measureWidthM  = 0.06
)

// Circles and arcs are stroked as polylines with this many segments.
const arcSegments = 64

// HandleState selects the drag-handle color.
type HandleState int

const (
	HandleIdle HandleState = iota
	HandleHover
	HandleDrag
)

// RenderField draws the full diagram using Gio operations, bottom to
// top: field fill, sector tint, boundary lines, arcs, bases, base
// paths, home path, measurements.
func RenderField(gtx layout.Context, camera *Camera, p *field.Profile, g *field.DerivedGeometry, config *LayerConfig) {
	if config == nil {
		config = NewLayerConfig()
	}

	renderFieldFill(gtx, camera, g)

	if config.IsVisible(LayerSector) {
		renderSectorTint(gtx, camera, p, g)
	}
	if config.IsVisible(LayerBoundary) {
		renderBoundary(gtx, camera, p, g)
	}
	if config.IsVisible(LayerArcs) {
		renderArcs(gtx, camera, p, g)
	}
	if config.IsVisible(LayerBases) {
		renderBases(gtx, camera, p, g)
	}
	if config.IsVisible(LayerBasePaths) {
		renderBasePaths(gtx, camera, g)
	}
	if config.IsVisible(LayerOriginalPath) {
		renderOriginalHomePath(gtx, camera, g)
	}
	if config.IsVisible(LayerHomePath) {
		renderHomePath(gtx, camera, g)
	}
	if config.IsVisible(LayerLabels) {
		renderMeasurements(gtx, camera, p, g)
	}
}

// renderFieldFill fills the playing area polygon.
func renderFieldFill(gtx layout.Context, camera *Camera, g *field.DerivedGeometry) {
	pts := []geom.Point{
		camera.FieldToScreen(g.HomeLeft),
		camera.FieldToScreen(g.DiagonalLeftEnd),
		camera.FieldToScreen(g.BackLeft),
		camera.FieldToScreen(g.BackRight),
		camera.FieldToScreen(g.DiagonalRightEnd),
		camera.FieldToScreen(g.HomeRight),
	}
	fillPolygon(gtx, pts, GetElementColor("field"))
}

// renderSectorTint shades the batting sector between the rays and the
// home line.
func renderSectorTint(gtx layout.Context, camera *Camera, p *field.Profile, g *field.DerivedGeometry) {
	origin := geom.Pt(0, p.BattingSector.OriginOffsetY)
	pts := []geom.Point{
		camera.FieldToScreen(origin),
		camera.FieldToScreen(g.HomeLeft),
		camera.FieldToScreen(g.HomeRight),
	}
	fillPolygon(gtx, pts, GetElementColor("sector"))
}

// renderBoundary draws the home line, the diagonals, the straight side
// lines, the back line, and the plate circle.
func renderBoundary(gtx layout.Context, camera *Camera, p *field.Profile, g *field.DerivedGeometry) {
	w := strokeWidth(camera, lineWidthM)

	// Home line, extended past both sector intersections.
	ext := p.HomePlate.LineHalfWidth
	renderLine(gtx,
		camera.FieldToScreen(geom.Pt(g.HomeLeft.X-ext, g.HomeLeft.Y)),
		camera.FieldToScreen(geom.Pt(g.HomeRight.X+ext, g.HomeRight.Y)),
		w, GetElementColor("homeline"))

	// Sector diagonals.
	diagColor := GetElementColor("diagonal")
	renderLine(gtx, camera.FieldToScreen(g.HomeLeft), camera.FieldToScreen(g.DiagonalLeftEnd), w, diagColor)
	renderLine(gtx, camera.FieldToScreen(g.HomeRight), camera.FieldToScreen(g.DiagonalRightEnd), w, diagColor)

	// Sides and back.
	boundColor := GetElementColor("boundary")
	renderLine(gtx, camera.FieldToScreen(g.DiagonalLeftEnd), camera.FieldToScreen(g.BackLeft), w, boundColor)
	renderLine(gtx, camera.FieldToScreen(g.DiagonalRightEnd), camera.FieldToScreen(g.BackRight), w, boundColor)
	renderLine(gtx, camera.FieldToScreen(g.BackLeft), camera.FieldToScreen(g.BackRight), w, boundColor)

	// Home plate.
	renderFieldCircle(gtx, camera, geom.Pt(0, 0), p.HomePlate.Radius, w, GetElementColor("plate"))
}

// renderArcs draws the front arc pair across the sector and the arc
// pair behind the plate.
func renderArcs(gtx layout.Context, camera *Camera, p *field.Profile, g *field.DerivedGeometry) {
	w := strokeWidth(camera, lineWidthM)
	arcColor := GetElementColor("arc")

	origin := geom.Pt(0, p.BattingSector.OriginOffsetY)
	renderFieldArc(gtx, camera, origin, p.FrontArc.InnerRadius, g.FrontArcStart, g.FrontArcEnd, w, arcColor)
	renderFieldArc(gtx, camera, origin, p.FrontArc.OuterRadius, g.FrontArcStart, g.FrontArcEnd, w, arcColor)

	// The home arcs wrap behind the plate.
	plate := geom.Pt(0, 0)
	renderFieldArc(gtx, camera, plate, p.HomeArcs.InnerRadius, math.Pi, 2*math.Pi, w, arcColor)
	renderFieldArc(gtx, camera, plate, p.HomeArcs.OuterRadius, math.Pi, 2*math.Pi, w, arcColor)
}

// renderBases draws each base circle with its run-up line.
func renderBases(gtx layout.Context, camera *Camera, p *field.Profile, g *field.DerivedGeometry) {
	w := strokeWidth(camera, lineWidthM)
	baseColor := GetElementColor("base")

	for _, center := range []geom.Point{g.FirstBase, g.SecondBase, g.ThirdBase} {
		renderFieldCircle(gtx, camera, center, p.BaseRadius, w, baseColor)

		// Run-up line through the base center.
		half := p.BaseLineLength / 2
		renderLine(gtx,
			camera.FieldToScreen(geom.Pt(center.X-half, center.Y)),
			camera.FieldToScreen(geom.Pt(center.X+half, center.Y)),
			w, baseColor)
	}
}

// renderBasePaths draws the trimmed base-to-base lines and, when it
// exists, the extension back to the home path.
func renderBasePaths(gtx layout.Context, camera *Camera, g *field.DerivedGeometry) {
	w := strokeWidth(camera, lineWidthM)
	pathColor := GetElementColor("basepath")

	renderLine(gtx, camera.FieldToScreen(g.FirstToSecond.Start), camera.FieldToScreen(g.FirstToSecond.End), w, pathColor)
	renderLine(gtx, camera.FieldToScreen(g.SecondToThird.Start), camera.FieldToScreen(g.SecondToThird.End), w, pathColor)

	if g.Extension != nil {
		renderLine(gtx, camera.FieldToScreen(g.Extension.Start), camera.FieldToScreen(g.Extension.End),
			w, GetElementColor("extension"))
	}
}

// renderOriginalHomePath draws the default home path faintly under the
// edited one so displaced handles stay comparable to the rulebook
// shape.
func renderOriginalHomePath(gtx layout.Context, camera *Camera, g *field.DerivedGeometry) {
	w := strokeWidth(camera, lineWidthM)
	c := GetElementColor("homepath.original")
	for _, s := range g.OriginalHomePath {
		renderLine(gtx, camera.FieldToScreen(s.Start), camera.FieldToScreen(s.End), w, c)
	}
}

// renderHomePath draws the edited home path.
func renderHomePath(gtx layout.Context, camera *Camera, g *field.DerivedGeometry) {
	w := strokeWidth(camera, homePathWidthM)
	c := GetElementColor("homepath")
	for _, s := range g.HomePath {
		renderLine(gtx, camera.FieldToScreen(s.Start), camera.FieldToScreen(s.End), w, c)
	}
}

// renderMeasurements draws the dimension lines and their captions.
func renderMeasurements(gtx layout.Context, camera *Camera, p *field.Profile, g *field.DerivedGeometry) {
	labels, _ := BuildMeasurementDisplay(p, g, camera)
	segs := MeasureSegments(p, g)

	w := strokeWidth(camera, measureWidthM)
	mColor := GetElementColor("measure")
	for _, ms := range segs {
		// The width and back dimensions get their own witness lines
		// outside the boundary; the rest caption existing geometry.
		if ms.Key != field.MeasureWidth && ms.Key != field.MeasureBack {
			continue
		}
		a := camera.FieldToScreen(ms.Seg.Start)
		b := camera.FieldToScreen(ms.Seg.End)
		renderLine(gtx, a, b, w, mColor)
		renderDimensionTicks(gtx, a, b, 0.8*camera.PxPerMeter(), w, mColor)
	}

	collection := gofont.Collection()
	shaper := text.NewShaper(text.WithCollection(collection))
	labelColor := GetElementColor("label")
	for _, l := range labels {
		renderText(gtx, shaper, l, labelColor)
	}
}

// RenderMeasureLine draws one user-drawn measurement segment with end
// ticks and a length caption.
func RenderMeasureLine(gtx layout.Context, camera *Camera, seg geom.Segment) {
	a := camera.FieldToScreen(seg.Start)
	b := camera.FieldToScreen(seg.End)
	w := strokeWidth(camera, measureWidthM)
	c := GetElementColor("measure")
	renderLine(gtx, a, b, w, c)
	renderDimensionTicks(gtx, a, b, 0.8*camera.PxPerMeter(), w, c)

	angle := math.Atan2(b.Y-a.Y, b.X-a.X)
	if angle > math.Pi/2 {
		angle -= math.Pi
	} else if angle < -math.Pi/2 {
		angle += math.Pi
	}
	fontPx := labelFontPx(camera.PxPerMeter())
	off := geom.Vec{X: math.Sin(angle), Y: -math.Cos(angle)}.Scale(0.9 * fontPx)
	shaper := text.NewShaper(text.WithCollection(gofont.Collection()))
	renderText(gtx, shaper, Label{
		Text:     FormatMeasurement(seg.Length()),
		Pos:      geom.Seg(a, b).Midpoint().Add(off),
		AngleRad: angle,
		FontPx:   fontPx,
	}, GetElementColor("label"))
}

// renderDimensionTicks draws the short end ticks of a dimension line.
func renderDimensionTicks(gtx layout.Context, a, b geom.Point, tickPx, width float64, c color.NRGBA) {
	dir := b.Sub(a).Unit()
	if dir.IsZero() {
		return
	}
	perp := dir.Perp().Scale(tickPx / 2)
	for _, end := range []geom.Point{a, b} {
		renderLine(gtx, end.Add(perp), end.Add(perp.Scale(-1)), width, c)
	}
}

// renderText draws one rotated label centered on its anchor.
func renderText(gtx layout.Context, shaper *text.Shaper, l Label, c color.NRGBA) {
	// Create isolated rendering context
	macro := op.Record(gtx.Ops)

	w := estimateTextWidth(l.Text, l.FontPx)
	transform := f32.Affine2D{}.
		Offset(f32.Pt(float32(-w/2), float32(-0.72*l.FontPx))).
		Rotate(f32.Pt(0, 0), float32(l.AngleRad)).
		Offset(f32.Pt(float32(l.Pos.X), float32(l.Pos.Y)))

	stack := op.Affine(transform).Push(gtx.Ops)

	paint.ColorOp{Color: c}.Add(gtx.Ops)
	label := widget.Label{
		Alignment: text.Start,
		MaxLines:  1,
	}
	label.Layout(gtx, shaper, font.Font{}, unit.Sp(l.FontPx), l.Text, op.CallOp{})

	stack.Pop()
	call := macro.Stop()
	call.Add(gtx.Ops)
}

// RenderHandle draws one drag handle at a field position.
func RenderHandle(gtx layout.Context, camera *Camera, pos geom.Point, state HandleState) {
	s := camera.FieldToScreen(pos)
	radius := 6.0
	c := ColorHandle
	switch state {
	case HandleHover:
		radius = 8.0
		c = ColorHandleHover
	case HandleDrag:
		radius = 8.0
		c = ColorHandleDrag
	}
	renderCircle(gtx, s.X, s.Y, radius, c)
	renderScreenCircleOutline(gtx, s, radius+1.5, 1.5, GetElementColor("label.bg"))
}

// RenderSnapGuide marks the target a dragged handle has locked onto.
func RenderSnapGuide(gtx layout.Context, camera *Camera, at geom.Point) {
	s := camera.FieldToScreen(at)
	renderScreenCircleOutline(gtx, s, 10.0, 2.0, ColorSnapGuide)
}

// RenderBallMarker draws the hitting-angle ray from the sector origin
// through the ball, and the ball itself colored by fair/foul.
func RenderBallMarker(gtx layout.Context, camera *Camera, p *field.Profile, ball geom.Point, info field.HitInfo) {
	origin := geom.Pt(0, p.BattingSector.OriginOffsetY)
	c := ColorBall
	if !info.Inside {
		c = ColorBallFoul
	}
	renderLine(gtx, camera.FieldToScreen(origin), camera.FieldToScreen(ball),
		strokeWidth(camera, measureWidthM), c)
	s := camera.FieldToScreen(ball)
	renderCircle(gtx, s.X, s.Y, 5.0, c)
}

// strokeWidth converts a painted width in meters to screen pixels,
// clamped so lines stay visible at any zoom.
func strokeWidth(camera *Camera, meters float64) float64 {
	w := meters * camera.PxPerMeter()
	if w < 1.0 {
		return 1.0
	}
	return w
}

// renderFieldCircle strokes a circle given in field coordinates.
func renderFieldCircle(gtx layout.Context, camera *Camera, center geom.Point, radius, width float64, c color.NRGBA) {
	renderFieldArc(gtx, camera, center, radius, 0, 2*math.Pi, width, c)
}

// renderFieldArc strokes a circular arc given in field coordinates,
// sweeping counterclockwise from a0 to a1.
func renderFieldArc(gtx layout.Context, camera *Camera, center geom.Point, radius, a0, a1, width float64, c color.NRGBA) {
	arc := geom.Arc{Center: center, Radius: radius, StartAngle: a0, EndAngle: a1}

	var path clip.Path
	path.Begin(gtx.Ops)
	for i := 0; i <= arcSegments; i++ {
		t := float64(i) / arcSegments
		s := camera.FieldToScreen(arc.PointAt(a0 + t*(a1-a0)))
		if i == 0 {
			path.MoveTo(f32.Pt(float32(s.X), float32(s.Y)))
		} else {
			path.LineTo(f32.Pt(float32(s.X), float32(s.Y)))
		}
	}

	stroke := clip.Stroke{Path: path.End(), Width: float32(width)}.Op()
	paint.FillShape(gtx.Ops, c, stroke)
}

// renderScreenCircleOutline strokes a circle given directly in screen
// pixels.
func renderScreenCircleOutline(gtx layout.Context, center geom.Point, radius, width float64, c color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	for i := 0; i <= arcSegments; i++ {
		a := 2 * math.Pi * float64(i) / arcSegments
		x := center.X + radius*math.Cos(a)
		y := center.Y + radius*math.Sin(a)
		if i == 0 {
			path.MoveTo(f32.Pt(float32(x), float32(y)))
		} else {
			path.LineTo(f32.Pt(float32(x), float32(y)))
		}
	}
	stroke := clip.Stroke{Path: path.End(), Width: float32(width)}.Op()
	paint.FillShape(gtx.Ops, c, stroke)
}

// renderLine draws a straight stroked segment between two screen
// points.
func renderLine(gtx layout.Context, a, b geom.Point, width float64, lineColor color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(float32(a.X), float32(a.Y)))
	path.LineTo(f32.Pt(float32(b.X), float32(b.Y)))

	stroke := clip.Stroke{
		Path:  path.End(),
		Width: float32(width),
	}.Op()

	paint.FillShape(gtx.Ops, lineColor, stroke)
}

// renderCircle fills a circle at a screen position.
func renderCircle(gtx layout.Context, x, y, radius float64, fillColor color.NRGBA) {
	stack := op.Affine(f32.Affine2D{}.Offset(f32.Pt(float32(x), float32(y)))).Push(gtx.Ops)
	defer stack.Pop()

	rect := image.Rectangle{
		Min: image.Pt(int(-radius), int(-radius)),
		Max: image.Pt(int(radius), int(radius)),
	}
	path := clip.Ellipse(rect).Op(gtx.Ops)
	paint.FillShape(gtx.Ops, fillColor, path)
}

// fillPolygon fills a closed polygon of screen points.
func fillPolygon(gtx layout.Context, pts []geom.Point, fillColor color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(float32(pts[0].X), float32(pts[0].Y)))
	for _, p := range pts[1:] {
		path.LineTo(f32.Pt(float32(p.X), float32(p.Y)))
	}
	path.Close()

	paint.FillShape(gtx.Ops, fillColor, clip.Outline{Path: path.End()}.Op())
}
