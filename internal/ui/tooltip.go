package ui

import (
	"fmt"
	"image"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/pesislab/kentta/pkg/geom"
	"github.com/pesislab/kentta/pkg/render"
)

// measurementTitles maps measurement keys to the tooltip wording.
var measurementTitles = map[string]string{
	"first":    "Home to first base",
	"second":   "First to second base",
	"third":    "Second to third base",
	"back":     "Home line to back boundary",
	"diagonal": "Sector boundary line",
	"width":    "Field width",
	"homepath": "Home path",
}

// updateTooltip resolves which measurement the pointer rests on and
// arms the tooltip for the draw pass. Hit areas were laid out by the
// previous frame; at pointer-move rates the one-frame lag is invisible.
func (a *App) updateTooltip(pos f32.Point) {
	idx, ok := render.FindHovered(geom.Pt(float64(pos.X), float64(pos.Y)), a.hitAreas, render.DefaultHoverThresholdPx)
	if !ok {
		a.tooltipVisible = false
		return
	}
	area := a.hitAreas[idx]
	title := measurementTitles[area.Key]
	if title == "" {
		title = area.Key
	}
	a.tooltipText = fmt.Sprintf("%s: %s", title, render.FormatMeasurement(area.Value))
	a.tooltipPos = pos
	a.tooltipVisible = true
}

// drawTooltip paints the armed tooltip next to the pointer.
func (a *App) drawTooltip(gtx layout.Context) {
	if !a.tooltipVisible || a.tooltipText == "" {
		return
	}

	macro := op.Record(gtx.Ops)
	lbl := material.Body2(a.gvTheme.Theme, a.tooltipText)
	lbl.Color = a.gvTheme.Palette.ContrastFg
	dims := lbl.Layout(gtx)
	call := macro.Stop()

	pad := gtx.Dp(unit.Dp(6))
	pos := image.Pt(int(a.tooltipPos.X)+14, int(a.tooltipPos.Y)+14)

	// Keep the box inside the viewport.
	boxW := dims.Size.X + 2*pad
	boxH := dims.Size.Y + 2*pad
	if pos.X+boxW > gtx.Constraints.Max.X {
		pos.X = int(a.tooltipPos.X) - boxW - 4
	}
	if pos.Y+boxH > gtx.Constraints.Max.Y {
		pos.Y = int(a.tooltipPos.Y) - boxH - 4
	}

	offset := op.Offset(pos).Push(gtx.Ops)
	r := gtx.Dp(unit.Dp(4))
	paint.FillShape(gtx.Ops, a.gvTheme.Palette.ContrastBg, clip.RRect{
		Rect: image.Rectangle{Max: image.Pt(boxW, boxH)},
		NW:   r, NE: r, SW: r, SE: r,
	}.Op(gtx.Ops))
	inner := op.Offset(image.Pt(pad, pad)).Push(gtx.Ops)
	call.Add(gtx.Ops)
	inner.Pop()
	offset.Pop()
}
