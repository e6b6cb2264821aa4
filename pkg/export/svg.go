// Package export renders the field diagram into files: an SVG document
// for print and editing, and supersampled PNG/WebP rasters.
package export

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/pesislab/kentta/pkg/field"
	"github.com/pesislab/kentta/pkg/geom"
	"github.com/pesislab/kentta/pkg/render"
)

// SVG composes the diagram as a standalone SVG document sized by the
// canvas layout. Layer visibility follows config; nil means everything.
func SVG(p *field.Profile, g *field.DerivedGeometry, d render.CanvasDimensions, config *render.LayerConfig) (string, error) {
	if p == nil || g == nil {
		return "", fmt.Errorf("nil geometry")
	}
	if config == nil {
		config = render.NewLayerConfig()
	}
	tr := d.Transform()
	w := strokePx(d.Scale, 0.10)

	var elements []string
	elements = append(elements, svgBackground(d))
	elements = append(elements, svgFieldFill(tr, g))
	if config.IsVisible(render.LayerSector) {
		elements = append(elements, svgSectorTint(tr, p, g))
	}
	if config.IsVisible(render.LayerBoundary) {
		elements = append(elements, svgBoundary(tr, p, g, w)...)
	}
	if config.IsVisible(render.LayerArcs) {
		elements = append(elements, svgArcs(tr, p, g, w)...)
	}
	if config.IsVisible(render.LayerBases) {
		elements = append(elements, svgBases(tr, p, g, w)...)
	}
	if config.IsVisible(render.LayerBasePaths) {
		elements = append(elements, svgBasePaths(tr, g, w)...)
	}
	if config.IsVisible(render.LayerOriginalPath) {
		for _, s := range g.OriginalHomePath {
			elements = append(elements, svgLine(tr.ToCanvas(s.Start), tr.ToCanvas(s.End), w, render.GetElementColor("homepath.original")))
		}
	}
	if config.IsVisible(render.LayerHomePath) {
		hw := strokePx(d.Scale, 0.16)
		for _, s := range g.HomePath {
			elements = append(elements, svgLine(tr.ToCanvas(s.Start), tr.ToCanvas(s.End), hw, render.GetElementColor("homepath")))
		}
	}
	if config.IsVisible(render.LayerLabels) {
		elements = append(elements, svgMeasurements(tr, p, g, d)...)
	}

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		d.Width, d.Height, d.Width, d.Height))
	builder.WriteString("\n")

	for _, elem := range elements {
		builder.WriteString("  ")
		builder.WriteString(elem)
		builder.WriteString("\n")
	}

	builder.WriteString(`</svg>`)
	return builder.String(), nil
}

func svgBackground(d render.CanvasDimensions) string {
	return fmt.Sprintf(`<rect x="0" y="0" width="%d" height="%d" %s />`,
		d.Width, d.Height, fillAttrs(render.GetElementColor("background")))
}

func svgFieldFill(tr render.Transform, g *field.DerivedGeometry) string {
	pts := []geom.Point{
		g.HomeLeft, g.DiagonalLeftEnd, g.BackLeft,
		g.BackRight, g.DiagonalRightEnd, g.HomeRight,
	}
	return svgPolygon(tr, pts, render.GetElementColor("field"))
}

func svgSectorTint(tr render.Transform, p *field.Profile, g *field.DerivedGeometry) string {
	origin := geom.Pt(0, p.BattingSector.OriginOffsetY)
	return svgPolygon(tr, []geom.Point{origin, g.HomeLeft, g.HomeRight}, render.GetElementColor("sector"))
}

func svgBoundary(tr render.Transform, p *field.Profile, g *field.DerivedGeometry, w float64) []string {
	var out []string

	ext := p.HomePlate.LineHalfWidth
	out = append(out, svgLine(
		tr.ToCanvas(geom.Pt(g.HomeLeft.X-ext, g.HomeLeft.Y)),
		tr.ToCanvas(geom.Pt(g.HomeRight.X+ext, g.HomeRight.Y)),
		w, render.GetElementColor("homeline")))

	diag := render.GetElementColor("diagonal")
	out = append(out, svgLine(tr.ToCanvas(g.HomeLeft), tr.ToCanvas(g.DiagonalLeftEnd), w, diag))
	out = append(out, svgLine(tr.ToCanvas(g.HomeRight), tr.ToCanvas(g.DiagonalRightEnd), w, diag))

	bound := render.GetElementColor("boundary")
	out = append(out, svgLine(tr.ToCanvas(g.DiagonalLeftEnd), tr.ToCanvas(g.BackLeft), w, bound))
	out = append(out, svgLine(tr.ToCanvas(g.DiagonalRightEnd), tr.ToCanvas(g.BackRight), w, bound))
	out = append(out, svgLine(tr.ToCanvas(g.BackLeft), tr.ToCanvas(g.BackRight), w, bound))

	out = append(out, svgCircle(tr, geom.Pt(0, 0), p.HomePlate.Radius, w, render.GetElementColor("plate")))
	return out
}

func svgArcs(tr render.Transform, p *field.Profile, g *field.DerivedGeometry, w float64) []string {
	var out []string
	c := render.GetElementColor("arc")
	origin := geom.Pt(0, p.BattingSector.OriginOffsetY)

	out = append(out, svgArc(tr, origin, p.FrontArc.InnerRadius, g.FrontArcStart, g.FrontArcEnd, w, c))
	out = append(out, svgArc(tr, origin, p.FrontArc.OuterRadius, g.FrontArcStart, g.FrontArcEnd, w, c))

	plate := geom.Pt(0, 0)
	out = append(out, svgArc(tr, plate, p.HomeArcs.InnerRadius, math.Pi, 2*math.Pi, w, c))
	out = append(out, svgArc(tr, plate, p.HomeArcs.OuterRadius, math.Pi, 2*math.Pi, w, c))
	return out
}

func svgBases(tr render.Transform, p *field.Profile, g *field.DerivedGeometry, w float64) []string {
	var out []string
	c := render.GetElementColor("base")
	for _, center := range []geom.Point{g.FirstBase, g.SecondBase, g.ThirdBase} {
		out = append(out, svgCircle(tr, center, p.BaseRadius, w, c))
		half := p.BaseLineLength / 2
		out = append(out, svgLine(
			tr.ToCanvas(geom.Pt(center.X-half, center.Y)),
			tr.ToCanvas(geom.Pt(center.X+half, center.Y)),
			w, c))
	}
	return out
}

func svgBasePaths(tr render.Transform, g *field.DerivedGeometry, w float64) []string {
	var out []string
	c := render.GetElementColor("basepath")
	out = append(out, svgLine(tr.ToCanvas(g.FirstToSecond.Start), tr.ToCanvas(g.FirstToSecond.End), w, c))
	out = append(out, svgLine(tr.ToCanvas(g.SecondToThird.Start), tr.ToCanvas(g.SecondToThird.End), w, c))
	if g.Extension != nil {
		out = append(out, svgLine(tr.ToCanvas(g.Extension.Start), tr.ToCanvas(g.Extension.End), w, render.GetElementColor("extension")))
	}
	return out
}

func svgMeasurements(tr render.Transform, p *field.Profile, g *field.DerivedGeometry, d render.CanvasDimensions) []string {
	var out []string

	// Same layout as the interactive view at zoom 1.
	cam := render.NewCamera(tr, d.Width, d.Height)
	labels, _ := render.BuildMeasurementDisplay(p, g, cam)
	segs := render.MeasureSegments(p, g)

	mColor := render.GetElementColor("measure")
	mw := strokePx(d.Scale, 0.06)
	for _, ms := range segs {
		if ms.Key != field.MeasureWidth && ms.Key != field.MeasureBack {
			continue
		}
		out = append(out, svgLine(tr.ToCanvas(ms.Seg.Start), tr.ToCanvas(ms.Seg.End), mw, mColor))
	}

	labelColor := render.GetElementColor("label")
	for _, l := range labels {
		out = append(out, svgText(l, labelColor))
	}
	return out
}

func svgLine(a, b geom.Point, width float64, c color.NRGBA) string {
	return fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" %s />`,
		formatFloat(a.X), formatFloat(a.Y), formatFloat(b.X), formatFloat(b.Y),
		strokeAttrs(c, width))
}

func svgCircle(tr render.Transform, center geom.Point, radius, width float64, c color.NRGBA) string {
	s := tr.ToCanvas(center)
	return fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" fill="none" %s />`,
		formatFloat(s.X), formatFloat(s.Y), formatFloat(radius*tr.Scale),
		strokeAttrs(c, width))
}

// svgArc emits an arc as a tessellated polyline, matching the screen
// renderer segment for segment.
func svgArc(tr render.Transform, center geom.Point, radius, a0, a1, width float64, c color.NRGBA) string {
	arc := geom.Arc{Center: center, Radius: radius, StartAngle: a0, EndAngle: a1}
	const segments = 64

	var pts []string
	for i := 0; i <= segments; i++ {
		t := float64(i) / segments
		s := tr.ToCanvas(arc.PointAt(a0 + t*(a1-a0)))
		pts = append(pts, formatFloat(s.X)+","+formatFloat(s.Y))
	}
	return fmt.Sprintf(`<polyline points="%s" fill="none" %s />`,
		strings.Join(pts, " "), strokeAttrs(c, width))
}

func svgPolygon(tr render.Transform, pts []geom.Point, c color.NRGBA) string {
	var coords []string
	for _, p := range pts {
		s := tr.ToCanvas(p)
		coords = append(coords, formatFloat(s.X)+","+formatFloat(s.Y))
	}
	return fmt.Sprintf(`<polygon points="%s" %s />`,
		strings.Join(coords, " "), fillAttrs(c))
}

func svgText(l render.Label, c color.NRGBA) string {
	deg := l.AngleRad * 180 / math.Pi
	transform := ""
	if deg != 0 {
		transform = fmt.Sprintf(` transform="rotate(%s %s %s)"`,
			formatFloat(deg), formatFloat(l.Pos.X), formatFloat(l.Pos.Y))
	}
	return fmt.Sprintf(`<text x="%s" y="%s" font-size="%s" text-anchor="middle" fill="%s"%s>%s</text>`,
		formatFloat(l.Pos.X), formatFloat(l.Pos.Y), formatFloat(l.FontPx),
		hexColor(c), transform, l.Text)
}

func strokeAttrs(c color.NRGBA, width float64) string {
	attrs := fmt.Sprintf(`stroke="%s" stroke-width="%s"`, hexColor(c), formatFloat(width))
	if c.A < 255 {
		attrs += fmt.Sprintf(` stroke-opacity="%s"`, formatFloat(opacity(c)))
	}
	return attrs
}

func fillAttrs(c color.NRGBA) string {
	attrs := fmt.Sprintf(`fill="%s"`, hexColor(c))
	if c.A < 255 {
		attrs += fmt.Sprintf(` fill-opacity="%s"`, formatFloat(opacity(c)))
	}
	return attrs
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func opacity(c color.NRGBA) float64 {
	return math.Round(float64(c.A)/255*1000) / 1000
}

// strokePx converts a painted width in meters to pixels, with the same
// one-pixel floor as the screen renderer.
func strokePx(scale, meters float64) float64 {
	w := meters * scale
	if w < 1.0 {
		return 1.0
	}
	return w
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(math.Round(val*100)/100, 'f', -1, 64)
}
