package export

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/pesislab/kentta/pkg/field"
	"github.com/pesislab/kentta/pkg/geom"
	"github.com/pesislab/kentta/pkg/render"
)

// DefaultSupersample is the oversampling factor used when rasterizing.
// Geometry is painted at this multiple of the target resolution and
// filtered back down, which keeps diagonal lines and arcs smooth.
const DefaultSupersample = 4

// Raster paints the diagram into an image at the canvas size. The
// geometry pass runs supersampled; labels are drawn at the final
// resolution so the bitmap font stays crisp.
func Raster(p *field.Profile, g *field.DerivedGeometry, d render.CanvasDimensions, config *render.LayerConfig, supersample int) (*image.NRGBA, error) {
	if p == nil || g == nil {
		return nil, fmt.Errorf("nil geometry")
	}
	if supersample < 1 {
		supersample = 1
	}
	if config == nil {
		config = render.NewLayerConfig()
	}

	renderW := d.Width * supersample
	renderH := d.Height * supersample
	img := image.NewNRGBA(image.Rect(0, 0, renderW, renderH))

	tr := render.Transform{
		Origin: geom.Pt(d.Origin.X*float64(supersample), d.Origin.Y*float64(supersample)),
		Scale:  d.Scale * float64(supersample),
	}

	fillImage(img, render.GetElementColor("background"))
	paintField(img, tr, p, g, config)

	out := Downsample(img, d.Width, d.Height)
	if config.IsVisible(render.LayerLabels) {
		paintLabels(out, p, g, d)
	}
	return out, nil
}

func paintField(img *image.NRGBA, tr render.Transform, p *field.Profile, g *field.DerivedGeometry, config *render.LayerConfig) {
	hexagon := []geom.Point{
		g.HomeLeft, g.DiagonalLeftEnd, g.BackLeft,
		g.BackRight, g.DiagonalRightEnd, g.HomeRight,
	}
	fillConvexPolygon(img, tr, hexagon, render.GetElementColor("field"))

	if config.IsVisible(render.LayerSector) {
		origin := geom.Pt(0, p.BattingSector.OriginOffsetY)
		fillConvexPolygon(img, tr, []geom.Point{origin, g.HomeLeft, g.HomeRight}, render.GetElementColor("sector"))
	}

	w := strokePx(tr.Scale, 0.10)
	if config.IsVisible(render.LayerBoundary) {
		ext := p.HomePlate.LineHalfWidth
		strokeSegment(img,
			tr.ToCanvas(geom.Pt(g.HomeLeft.X-ext, g.HomeLeft.Y)),
			tr.ToCanvas(geom.Pt(g.HomeRight.X+ext, g.HomeRight.Y)),
			w, render.GetElementColor("homeline"))

		diag := render.GetElementColor("diagonal")
		strokeSegment(img, tr.ToCanvas(g.HomeLeft), tr.ToCanvas(g.DiagonalLeftEnd), w, diag)
		strokeSegment(img, tr.ToCanvas(g.HomeRight), tr.ToCanvas(g.DiagonalRightEnd), w, diag)

		bound := render.GetElementColor("boundary")
		strokeSegment(img, tr.ToCanvas(g.DiagonalLeftEnd), tr.ToCanvas(g.BackLeft), w, bound)
		strokeSegment(img, tr.ToCanvas(g.DiagonalRightEnd), tr.ToCanvas(g.BackRight), w, bound)
		strokeSegment(img, tr.ToCanvas(g.BackLeft), tr.ToCanvas(g.BackRight), w, bound)

		strokeArc(img, tr, geom.Pt(0, 0), p.HomePlate.Radius, 0, 2*math.Pi, w, render.GetElementColor("plate"))
	}

	if config.IsVisible(render.LayerArcs) {
		c := render.GetElementColor("arc")
		origin := geom.Pt(0, p.BattingSector.OriginOffsetY)
		strokeArc(img, tr, origin, p.FrontArc.InnerRadius, g.FrontArcStart, g.FrontArcEnd, w, c)
		strokeArc(img, tr, origin, p.FrontArc.OuterRadius, g.FrontArcStart, g.FrontArcEnd, w, c)
		strokeArc(img, tr, geom.Pt(0, 0), p.HomeArcs.InnerRadius, math.Pi, 2*math.Pi, w, c)
		strokeArc(img, tr, geom.Pt(0, 0), p.HomeArcs.OuterRadius, math.Pi, 2*math.Pi, w, c)
	}

	if config.IsVisible(render.LayerBases) {
		c := render.GetElementColor("base")
		for _, center := range []geom.Point{g.FirstBase, g.SecondBase, g.ThirdBase} {
			strokeArc(img, tr, center, p.BaseRadius, 0, 2*math.Pi, w, c)
			half := p.BaseLineLength / 2
			strokeSegment(img,
				tr.ToCanvas(geom.Pt(center.X-half, center.Y)),
				tr.ToCanvas(geom.Pt(center.X+half, center.Y)),
				w, c)
		}
	}

	if config.IsVisible(render.LayerBasePaths) {
		c := render.GetElementColor("basepath")
		strokeSegment(img, tr.ToCanvas(g.FirstToSecond.Start), tr.ToCanvas(g.FirstToSecond.End), w, c)
		strokeSegment(img, tr.ToCanvas(g.SecondToThird.Start), tr.ToCanvas(g.SecondToThird.End), w, c)
		if g.Extension != nil {
			strokeSegment(img, tr.ToCanvas(g.Extension.Start), tr.ToCanvas(g.Extension.End), w, render.GetElementColor("extension"))
		}
	}

	if config.IsVisible(render.LayerOriginalPath) {
		c := render.GetElementColor("homepath.original")
		for _, s := range g.OriginalHomePath {
			strokeSegment(img, tr.ToCanvas(s.Start), tr.ToCanvas(s.End), w, c)
		}
	}

	if config.IsVisible(render.LayerHomePath) {
		c := render.GetElementColor("homepath")
		hw := strokePx(tr.Scale, 0.16)
		for _, s := range g.HomePath {
			strokeSegment(img, tr.ToCanvas(s.Start), tr.ToCanvas(s.End), hw, c)
		}
	}

	if config.IsVisible(render.LayerLabels) {
		mColor := render.GetElementColor("measure")
		mw := strokePx(tr.Scale, 0.06)
		for _, ms := range render.MeasureSegments(p, g) {
			if ms.Key != field.MeasureWidth && ms.Key != field.MeasureBack {
				continue
			}
			strokeSegment(img, tr.ToCanvas(ms.Seg.Start), tr.ToCanvas(ms.Seg.End), mw, mColor)
		}
	}
}

func paintLabels(img *image.NRGBA, p *field.Profile, g *field.DerivedGeometry, d render.CanvasDimensions) {
	cam := render.NewCamera(d.Transform(), d.Width, d.Height)
	labels, _ := render.BuildMeasurementDisplay(p, g, cam)

	face := basicfont.Face7x13
	src := image.NewUniform(render.GetElementColor("label"))
	for _, l := range labels {
		width := font.MeasureString(face, l.Text).Ceil()
		drawer := font.Drawer{
			Dst:  img,
			Src:  src,
			Face: face,
			Dot: fixed.Point26_6{
				X: fixed.I(int(l.Pos.X) - width/2),
				Y: fixed.I(int(l.Pos.Y) + face.Height/2 - face.Descent),
			},
		}
		drawer.DrawString(l.Text)
	}
}

// fillImage floods the whole image with an opaque color.
func fillImage(img *image.NRGBA, c color.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// strokeSegment paints a capsule of the given width over the segment.
// Pixels are tested against the distance to the segment inside its
// bounding box, so butt joints between consecutive segments stay round.
func strokeSegment(img *image.NRGBA, a, b geom.Point, width float64, c color.NRGBA) {
	half := width / 2
	if half < 0.5 {
		half = 0.5
	}
	seg := geom.Seg(a, b)

	minX := int(math.Floor(math.Min(a.X, b.X) - half - 1))
	maxX := int(math.Ceil(math.Max(a.X, b.X) + half + 1))
	minY := int(math.Floor(math.Min(a.Y, b.Y) - half - 1))
	maxY := int(math.Ceil(math.Max(a.Y, b.Y) + half + 1))
	clipToBounds(img, &minX, &minY, &maxX, &maxY)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := geom.Pt(float64(x)+0.5, float64(y)+0.5)
			if seg.DistanceTo(p) <= half {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// strokeArc paints a circular arc as a chain of short segments, using
// the same tessellation density as the other renderers.
func strokeArc(img *image.NRGBA, tr render.Transform, center geom.Point, radius, a0, a1, width float64, c color.NRGBA) {
	arc := geom.Arc{Center: center, Radius: radius, StartAngle: a0, EndAngle: a1}
	const segments = 64

	prev := tr.ToCanvas(arc.PointAt(a0))
	for i := 1; i <= segments; i++ {
		t := float64(i) / segments
		next := tr.ToCanvas(arc.PointAt(a0 + t*(a1-a0)))
		strokeSegment(img, prev, next, width, c)
		prev = next
	}
}

// fillConvexPolygon scan-fills a convex polygon given in field
// coordinates. Each row fills the span between the two edge crossings.
func fillConvexPolygon(img *image.NRGBA, tr render.Transform, pts []geom.Point, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	screen := make([]geom.Point, len(pts))
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range pts {
		screen[i] = tr.ToCanvas(p)
		minY = math.Min(minY, screen[i].Y)
		maxY = math.Max(maxY, screen[i].Y)
	}

	y0 := int(math.Floor(minY))
	y1 := int(math.Ceil(maxY))
	b := img.Bounds()
	if y0 < b.Min.Y {
		y0 = b.Min.Y
	}
	if y1 > b.Max.Y-1 {
		y1 = b.Max.Y - 1
	}

	for y := y0; y <= y1; y++ {
		cy := float64(y) + 0.5
		left, right := math.Inf(1), math.Inf(-1)
		for i := range screen {
			a := screen[i]
			e := screen[(i+1)%len(screen)]
			if (a.Y <= cy) == (e.Y <= cy) {
				continue
			}
			x := a.X + (cy-a.Y)/(e.Y-a.Y)*(e.X-a.X)
			left = math.Min(left, x)
			right = math.Max(right, x)
		}
		if left > right {
			continue
		}
		x0 := int(math.Ceil(left - 0.5))
		x1 := int(math.Floor(right - 0.5))
		if x0 < b.Min.X {
			x0 = b.Min.X
		}
		if x1 > b.Max.X-1 {
			x1 = b.Max.X - 1
		}
		for x := x0; x <= x1; x++ {
			blendPixel(img, x, y, c)
		}
	}
}

// blendPixel composites src over the existing pixel, working on
// straight-alpha values.
func blendPixel(img *image.NRGBA, x, y int, src color.NRGBA) {
	if src.A == 255 {
		img.SetNRGBA(x, y, src)
		return
	}
	dst := img.NRGBAAt(x, y)
	sa := float64(src.A) / 255
	da := float64(dst.A) / 255 * (1 - sa)
	outA := sa + da
	if outA == 0 {
		img.SetNRGBA(x, y, color.NRGBA{})
		return
	}
	blend := func(s, d uint8) uint8 {
		v := (float64(s)*sa + float64(d)*da) / outA
		return clamp8(v)
	}
	img.SetNRGBA(x, y, color.NRGBA{
		R: blend(src.R, dst.R),
		G: blend(src.G, dst.G),
		B: blend(src.B, dst.B),
		A: clamp8(outA * 255),
	})
}

func clipToBounds(img *image.NRGBA, minX, minY, maxX, maxY *int) {
	b := img.Bounds()
	if *minX < b.Min.X {
		*minX = b.Min.X
	}
	if *minY < b.Min.Y {
		*minY = b.Min.Y
	}
	if *maxX > b.Max.X-1 {
		*maxX = b.Max.X - 1
	}
	if *maxY > b.Max.Y-1 {
		*maxY = b.Max.Y - 1
	}
}

// Downsample scales the image to the target size with Catmull-Rom
// filtering. The filter runs on premultiplied alpha so translucent
// edges do not pick up dark fringes, then converts back.
func Downsample(img *image.NRGBA, targetW, targetH int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetW && b.Dy() <= targetH {
		return img
	}

	premul := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			a := float64(c.A) / 255.0
			premul.SetRGBA(x, y, color.RGBA{
				R: uint8(float64(c.R) * a),
				G: uint8(float64(c.G) * a),
				B: uint8(float64(c.B) * a),
				A: c.A,
			})
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	out := image.NewNRGBA(dst.Bounds())
	for y := 0; y < targetH; y++ {
		for x := 0; x < targetW; x++ {
			c := dst.RGBAAt(x, y)
			if c.A == 0 {
				out.SetNRGBA(x, y, color.NRGBA{})
				continue
			}
			a := float64(c.A) / 255.0
			out.SetNRGBA(x, y, color.NRGBA{
				R: clamp8(float64(c.R) / a),
				G: clamp8(float64(c.G) / a),
				B: clamp8(float64(c.B) / a),
				A: c.A,
			})
		}
	}
	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
