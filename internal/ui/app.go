// Package ui is the interactive Gio application around the field
// diagram: one window, one state container, and the pointer/keyboard
// wiring that turns drags into handle edits, clicks into ball
// placements, and hovers into measurement tooltips.
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/pesislab/kentta/internal/underlay"
	"github.com/pesislab/kentta/pkg/field"
	"github.com/pesislab/kentta/pkg/geom"
	"github.com/pesislab/kentta/pkg/render"
	"github.com/pesislab/kentta/pkg/snap"
)

// Screen-pixel radius within which a press grabs a drag handle.
const handleGrabPx = 12.0

// App drives the diagram window.
type App struct {
	window *app.Window
	ops    op.Ops

	gvTheme *theme.Theme

	state *State
	view  ViewConfig

	camera       *render.Camera
	viewportSize image.Point

	profileMenu    *menu.DropdownMenu
	profileMenuBtn widget.Clickable
	profileNames   []string

	measureSwitch widget.Bool
	resetBtn      widget.Clickable
	fitBtn        widget.Clickable
	themeBtn      widget.Clickable
	clearBtn      widget.Clickable

	measureIcon *widget.Icon
	resetIcon   *widget.Icon

	// Interaction state local to the event loop. The shared State
	// mirrors dragging/hover for observers; these avoid re-snapshotting
	// mid-gesture.
	dragging     HandleID
	panning      bool
	panLast      f32.Point
	measureStart *geom.Point
	measureEnd   geom.Point

	hitAreas []render.HitArea

	tooltipVisible bool
	tooltipText    string
	tooltipPos     f32.Point

	// Cached opacity-faded copy of the underlay image.
	fadedFor     *underlay.Underlay
	fadedOpacity float64
	fadedImage   *image.NRGBA
}

// New creates the diagram app over an injected state container. A nil
// window gets a fresh one.
func New(w *app.Window, st *State, view ViewConfig) *App {
	if w == nil {
		w = new(app.Window)
	}
	w.Option(app.Title("Kenttä — "+view.Title), app.Size(unit.Dp(900), unit.Dp(1000)))

	a := &App{
		window:       w,
		gvTheme:      theme.NewTheme("", nil, true),
		state:        st,
		view:         view,
		dragging:     HandleNone,
		profileNames: field.List(),
	}
	a.measureSwitch.Value = st.Snapshot().ShowMeasurements
	if icon, err := widget.NewIcon(icons.ActionVisibility); err == nil {
		a.measureIcon = icon
	}
	if icon, err := widget.NewIcon(icons.NavigationRefresh); err == nil {
		a.resetIcon = icon
	}
	a.profileMenu = a.buildProfileMenu()

	// Any state change by an observer outside the frame loop still
	// repaints.
	for _, ev := range []EventType{EventProfileChanged, EventPointsChanged, EventBallMoved, EventMeasuresChanged, EventUnderlayChanged} {
		st.On(ev, func(interface{}) { a.invalidate() })
	}
	st.On(EventProfileChanged, func(interface{}) {
		// Force a refit: the new field extent needs a new base transform.
		a.viewportSize = image.Point{}
	})
	return a
}

// Run blocks processing window events until the window closes.
func (a *App) Run() error {
	for {
		e := a.window.Event()
		switch ev := e.(type) {
		case app.DestroyEvent:
			a.saveConfig()
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.FillShape(gtx.Ops, a.gvTheme.Palette.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(a.layoutToolbar),
		layout.Flexed(1, a.layoutViewport),
		layout.Rigid(a.layoutStatusBar),
	)
}

func (a *App) layoutToolbar(gtx layout.Context) layout.Dimensions {
	inset := layout.Inset{Left: unit.Dp(12), Right: unit.Dp(12), Top: unit.Dp(8), Bottom: unit.Dp(8)}
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(material.H6(a.gvTheme.Theme, a.view.Title).Layout),
			layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.profileMenu != nil && a.profileMenuBtn.Clicked(gtx) {
					a.profileMenu.ToggleVisibility(gtx)
				}
				dims := material.Button(a.gvTheme.Theme, &a.profileMenuBtn, "Field: "+a.state.Profile().Name).Layout(gtx)
				if a.profileMenu != nil {
					a.profileMenu.Layout(gtx, a.gvTheme)
				}
				return dims
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.themeBtn.Clicked(gtx) {
					a.cycleTheme()
				}
				return material.Button(a.gvTheme.Theme, &a.themeBtn, render.ThemeNames[a.state.Theme()]).Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if !a.view.EditableHandles {
					return layout.Dimensions{}
				}
				if a.resetBtn.Clicked(gtx) {
					a.state.ResetPoints()
				}
				return material.Button(a.gvTheme.Theme, &a.resetBtn, "Reset Path").Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if len(a.state.Snapshot().Measures) == 0 {
					return layout.Dimensions{}
				}
				if a.clearBtn.Clicked(gtx) {
					a.state.ClearMeasures()
				}
				return material.Button(a.gvTheme.Theme, &a.clearBtn, "Clear Measures").Layout(gtx)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions { return layout.Dimensions{} }),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.measureIcon == nil {
					return layout.Dimensions{}
				}
				size := gtx.Dp(unit.Dp(18))
				gtx.Constraints.Min = image.Pt(size, size)
				gtx.Constraints.Max = gtx.Constraints.Min
				return a.measureIcon.Layout(gtx, a.gvTheme.Palette.Fg)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.measureSwitch.Update(gtx) {
					a.state.SetShowMeasurements(a.measureSwitch.Value)
				}
				return material.Switch(a.gvTheme.Theme, &a.measureSwitch, "Show measurements").Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.fitBtn.Clicked(gtx) {
					a.refitCamera(a.viewportSize)
				}
				return material.Button(a.gvTheme.Theme, &a.fitBtn, "Fit").Layout(gtx)
			}),
		)
	})
}

func (a *App) layoutViewport(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	if size != a.viewportSize {
		a.refitCamera(size)
	}
	if a.camera == nil {
		return layout.Dimensions{Size: size}
	}

	a.handleKeys(gtx)
	a.handlePointer(gtx)

	snap := a.state.Snapshot()

	area := clip.Rect{Max: size}.Push(gtx.Ops)
	event.Op(gtx.Ops, a)

	paint.Fill(gtx.Ops, render.GetElementColor("background"))

	if snap.Underlay != nil && snap.Underlay.Visible {
		a.drawUnderlay(gtx, snap.Underlay)
	}

	if snap.Geometry != nil {
		render.RenderField(gtx, a.camera, snap.Profile, snap.Geometry, a.view.Layers(snap.ShowMeasurements))

		if snap.ShowMeasurements {
			_, a.hitAreas = render.BuildMeasurementDisplay(snap.Profile, snap.Geometry, a.camera)
		} else {
			a.hitAreas = nil
		}

		for _, seg := range snap.Measures {
			render.RenderMeasureLine(gtx, a.camera, seg)
		}
		if a.measureStart != nil {
			render.RenderMeasureLine(gtx, a.camera, geom.Seg(*a.measureStart, a.measureEnd))
		}

		if a.view.EditableHandles {
			a.drawHandles(gtx, snap)
		}
		if snap.SnapPoint != nil {
			render.RenderSnapGuide(gtx, a.camera, *snap.SnapPoint)
		}
		if a.view.BallPlacement && snap.Ball != nil && snap.Hit != nil {
			render.RenderBallMarker(gtx, a.camera, snap.Profile, *snap.Ball, *snap.Hit)
		}
	}

	a.drawTooltip(gtx)

	area.Pop()
	return layout.Dimensions{Size: size}
}

func (a *App) layoutStatusBar(gtx layout.Context) layout.Dimensions {
	snap := a.state.Snapshot()
	inset := layout.Inset{Left: unit.Dp(12), Right: unit.Dp(12), Top: unit.Dp(6), Bottom: unit.Dp(6)}
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(material.Body2(a.gvTheme.Theme, snap.Status).Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions { return layout.Dimensions{} }),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				var right string
				if snap.Hit != nil {
					verdict := "fair"
					if !snap.Hit.Inside {
						verdict = "foul"
					}
					right = fmt.Sprintf("Hit %.1f° · %.1f m · %s", snap.Hit.AngleDeg, snap.Hit.Distance, verdict)
				} else {
					zoom := 1.0
					if a.camera != nil {
						zoom = a.camera.Zoom
					}
					right = fmt.Sprintf("%s · %.0f%%", snap.Profile.Name, zoom*100)
				}
				return material.Body2(a.gvTheme.Theme, right).Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Caption(a.gvTheme.Theme, a.view.Hint)
				lbl.Color = a.gvTheme.Palette.Fg
				return lbl.Layout(gtx)
			}),
		)
	})
}

// handleKeys processes the keyboard shortcuts of every view.
func (a *App) handleKeys(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(key.Filter{})
		if !ok {
			break
		}
		ke, ok := ev.(key.Event)
		if !ok || ke.State != key.Press {
			continue
		}
		switch ke.Name {
		case key.NameSpace:
			a.refitCamera(a.viewportSize)
		case "R":
			if a.view.EditableHandles {
				a.state.ResetPoints()
			}
		case "M":
			a.measureSwitch.Value = a.state.ToggleMeasurements()
		case "C":
			a.state.ClearMeasures()
			a.measureStart = nil
		case key.NameEscape:
			a.measureStart = nil
		case "1", "2":
			name := "men"
			if ke.Name == "2" {
				name = "women"
			}
			if p, err := field.Get(name); err == nil {
				a.state.SetProfile(p)
			}
		default:
			continue
		}
		gtx.Execute(op.InvalidateCmd{})
	}
}

// handlePointer processes drag, pan, zoom, ball placement, measurement
// drawing, and hover.
func (a *App) handlePointer(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  a,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Move | pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: -120, Max: 120},
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}

		switch pe.Kind {
		case pointer.Scroll:
			if pe.Scroll.Y != 0 && a.camera != nil {
				factor := 1.0 - float64(pe.Scroll.Y)*0.002
				a.camera.ZoomAt(float64(pe.Position.X), float64(pe.Position.Y), factor)
				gtx.Execute(op.InvalidateCmd{})
			}

		case pointer.Press:
			switch pe.Buttons {
			case pointer.ButtonTertiary:
				a.panning = true
				a.panLast = pe.Position
			case pointer.ButtonSecondary:
				a.pressMeasure(pe.Position)
				gtx.Execute(op.InvalidateCmd{})
			case pointer.ButtonPrimary:
				a.pressPrimary(pe.Position)
				gtx.Execute(op.InvalidateCmd{})
			}

		case pointer.Drag:
			switch {
			case a.panning:
				a.camera.PanBy(float64(pe.Position.X-a.panLast.X), float64(pe.Position.Y-a.panLast.Y))
				a.panLast = pe.Position
				gtx.Execute(op.InvalidateCmd{})
			case a.dragging != HandleNone:
				a.dragHandle(pe.Position)
				gtx.Execute(op.InvalidateCmd{})
			}

		case pointer.Release, pointer.Cancel:
			if a.panning {
				a.panning = false
			}
			if a.dragging != HandleNone {
				a.dragging = HandleNone
				a.state.SetDragHandle(HandleNone)
				a.state.SetSnapPoint(nil)
				gtx.Execute(op.InvalidateCmd{})
			}

		case pointer.Move:
			a.hover(pe.Position)
			gtx.Execute(op.InvalidateCmd{})
		}
	}
}

// pressPrimary grabs a handle in editable views, otherwise places the
// ball in ball views.
func (a *App) pressPrimary(pos f32.Point) {
	snap := a.state.Snapshot()
	if a.view.EditableHandles && snap.Geometry != nil {
		if h := a.handleAt(pos, snap.Geometry); h != HandleNone {
			a.dragging = h
			a.state.SetDragHandle(h)
			return
		}
	}
	if a.view.BallPlacement {
		p := a.camera.ScreenToField(toPoint(pos))
		a.state.SetBall(&p)
	}
}

// pressMeasure starts or completes a custom measurement segment.
func (a *App) pressMeasure(pos f32.Point) {
	p := a.camera.ScreenToField(toPoint(pos))
	if a.measureStart == nil {
		a.measureStart = &p
		a.measureEnd = p
		a.state.SetStatus("Measuring: right-click the far end")
		return
	}
	seg := geom.Seg(*a.measureStart, p)
	a.measureStart = nil
	a.state.AddMeasure(seg)
	a.state.SetStatus(fmt.Sprintf("Measured %s", render.FormatMeasurement(seg.Length())))
}

// dragHandle moves the held handle, snapping to nearby geometry.
func (a *App) dragHandle(pos f32.Point) {
	ss := a.state.Snapshot()
	if ss.Geometry == nil {
		return
	}
	p := a.camera.ScreenToField(toPoint(pos))

	targets := field.SnapTargets(ss.Profile, ss.Geometry)
	if res, ok := snap.FindNearest(p, targets, snap.DefaultOptions()); ok {
		p = res.Point
		a.state.SetSnapPoint(&res.Point)
	} else {
		a.state.SetSnapPoint(nil)
	}

	if err := a.state.MoveHandle(a.dragging, p); err != nil {
		a.state.SetStatus(err.Error())
	}
}

// hover updates the handle highlight, the measurement preview, and the
// tooltip for an idle pointer.
func (a *App) hover(pos f32.Point) {
	if a.measureStart != nil {
		a.measureEnd = a.camera.ScreenToField(toPoint(pos))
	}

	if a.view.EditableHandles {
		snap := a.state.Snapshot()
		if snap.Geometry != nil {
			a.state.SetHoverHandle(a.handleAt(pos, snap.Geometry))
		}
	}

	a.updateTooltip(pos)
}

// handleAt returns the handle under a screen position, if any.
func (a *App) handleAt(pos f32.Point, g *field.DerivedGeometry) HandleID {
	at := toPoint(pos)
	candidates := []struct {
		id HandleID
		p  *geom.Point
	}{
		{HandleStart, g.Points.HomePathStart},
		{HandleMid, g.Points.HomePathMid},
		{HandleEnd, g.Points.HomePathEnd},
	}
	best := HandleNone
	bestDist := handleGrabPx
	for _, c := range candidates {
		if c.p == nil {
			continue
		}
		d := a.camera.FieldToScreen(*c.p).DistanceTo(at)
		if d <= bestDist {
			best = c.id
			bestDist = d
		}
	}
	return best
}

// drawHandles draws the three home-path handles with drag/hover
// highlighting.
func (a *App) drawHandles(gtx layout.Context, snap StateSnapshot) {
	g := snap.Geometry
	for _, c := range []struct {
		id HandleID
		p  *geom.Point
	}{
		{HandleStart, g.Points.HomePathStart},
		{HandleMid, g.Points.HomePathMid},
		{HandleEnd, g.Points.HomePathEnd},
	} {
		if c.p == nil {
			continue
		}
		state := render.HandleIdle
		if c.id == snap.DragHandle {
			state = render.HandleDrag
		} else if c.id == snap.HoverHandle {
			state = render.HandleHover
		}
		render.RenderHandle(gtx, a.camera, *c.p, state)
	}
}

// drawUnderlay paints the calibrated reference image under the diagram.
func (a *App) drawUnderlay(gtx layout.Context, u *underlay.Underlay) {
	img := a.fadedUnderlay(u)
	if img == nil || a.camera == nil {
		return
	}

	// Compose image-to-field with the camera's field-to-screen mapping
	// (which flips Y) into one screen-space affine.
	s := a.camera.Base.Scale * a.camera.Zoom
	t := u.Transform
	tf := f32.NewAffine2D(
		float32(s*t.A), float32(s*t.B), float32(s*t.TX+a.camera.Base.Origin.X*a.camera.Zoom+a.camera.Pan.X),
		float32(-s*t.C), float32(-s*t.D), float32(-s*t.TY+a.camera.Base.Origin.Y*a.camera.Zoom+a.camera.Pan.Y),
	)

	stack := op.Affine(tf).Push(gtx.Ops)
	paint.NewImageOp(img).Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	stack.Pop()
}

// fadedUnderlay returns the underlay image with its opacity baked into
// the alpha channel, cached until the image or opacity changes.
func (a *App) fadedUnderlay(u *underlay.Underlay) *image.NRGBA {
	if u.Image == nil {
		return nil
	}
	if a.fadedImage != nil && a.fadedFor == u && a.fadedOpacity == u.Opacity {
		return a.fadedImage
	}
	bounds := u.Image.Bounds()
	out := image.NewNRGBA(bounds)
	alpha := u.Opacity
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, pa := u.Image.At(x, y).RGBA()
			out.SetNRGBA(x, y, color.NRGBA{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
				A: uint8(math.Round(float64(pa>>8) * alpha)),
			})
		}
	}
	a.fadedFor = u
	a.fadedOpacity = u.Opacity
	a.fadedImage = out
	return out
}

// refitCamera rebuilds the base transform for a viewport size and drops
// zoom and pan back to the fitted view.
func (a *App) refitCamera(size image.Point) {
	if size.X < 1 || size.Y < 1 {
		return
	}
	a.viewportSize = size
	dims := render.CalculateCanvasDimensions(a.state.Profile(), size.X, size.Y)
	if a.camera == nil {
		a.camera = render.NewCamera(dims.Transform(), size.X, size.Y)
	} else {
		a.camera.Refit(dims.Transform())
		a.camera.UpdateScreenSize(size.X, size.Y)
		a.camera.Reset()
	}
	a.state.SetScale(dims.Scale)
}

func (a *App) buildProfileMenu() *menu.DropdownMenu {
	if len(a.profileNames) == 0 {
		return nil
	}
	opts := make([]menu.MenuOption, 0, len(a.profileNames))
	for _, name := range a.profileNames {
		n := name
		opts = append(opts, menu.MenuOption{
			OnClicked: func() error {
				p, err := field.Get(n)
				if err != nil {
					return err
				}
				return a.state.SetProfile(p)
			},
			Layout: func(gtx menu.C, th *theme.Theme) menu.D {
				lbl := material.Body1(th.Theme, n)
				if n == a.state.Profile().Name {
					lbl.Color = th.Palette.ContrastBg
				}
				return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, lbl.Layout)
			},
		})
	}
	drop := menu.NewDropdownMenu([][]menu.MenuOption{opts})
	drop.MaxWidth = unit.Dp(180)
	return drop
}

func (a *App) cycleTheme() {
	next := (a.state.Theme() + 1) % render.ColorTheme(len(render.ThemeNames))
	a.state.SetTheme(next)
}

func (a *App) saveConfig() {
	snap := a.state.Snapshot()
	_ = SaveConfig(&AppConfig{
		ColorTheme:       int(snap.Theme),
		Profile:          snap.Profile.Name,
		ShowMeasurements: snap.ShowMeasurements,
	})
}

func (a *App) invalidate() {
	if a.window != nil {
		a.window.Invalidate()
	}
}

func toPoint(p f32.Point) geom.Point {
	return geom.Pt(float64(p.X), float64(p.Y))
}
