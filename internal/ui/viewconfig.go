package ui

import (
	"fmt"

	"github.com/pesislab/kentta/pkg/render"
)

// ViewMode selects which of the launchable diagram views is active.
type ViewMode int

const (
	ViewBlueprint ViewMode = iota
	ViewEdit
	ViewAngle
)

func (m ViewMode) String() string {
	switch m {
	case ViewBlueprint:
		return "blueprint"
	case ViewEdit:
		return "edit"
	case ViewAngle:
		return "angle"
	}
	return fmt.Sprintf("ViewMode(%d)", int(m))
}

// ParseViewMode resolves a view name from the command line.
func ParseViewMode(name string) (ViewMode, error) {
	switch name {
	case "blueprint":
		return ViewBlueprint, nil
	case "edit":
		return ViewEdit, nil
	case "angle":
		return ViewAngle, nil
	}
	return ViewBlueprint, fmt.Errorf("unknown view %q (want blueprint, edit or angle)", name)
}

// ViewConfig describes what one view shows and which interactions it
// accepts.
type ViewConfig struct {
	Mode             ViewMode
	Title            string
	EditableHandles  bool
	BallPlacement    bool
	ShowMeasurements bool
	Hint             string
}

// Config returns the preset configuration for the mode.
func (m ViewMode) Config() ViewConfig {
	switch m {
	case ViewEdit:
		return ViewConfig{
			Mode:             ViewEdit,
			Title:            "Field Editor",
			EditableHandles:  true,
			ShowMeasurements: true,
			Hint:             "Drag handles to reshape the home path | Right-click twice to measure | Scroll zoom | Middle-drag pan | Space refit | R reset | M measurements | 1/2 profile",
		}
	case ViewAngle:
		return ViewConfig{
			Mode:          ViewAngle,
			Title:         "Hitting Angle",
			BallPlacement: true,
			Hint:          "Click to place the ball | Scroll to zoom | Middle-drag to pan | Space refit | M measurements | 1/2 profile",
		}
	default:
		return ViewConfig{
			Mode:             ViewBlueprint,
			Title:            "Field Blueprint",
			ShowMeasurements: true,
			Hint:             "Scroll to zoom | Middle-drag to pan | Space refit | M measurements | 1/2 profile",
		}
	}
}

// Layers builds the render layer visibility for the view, honoring the
// live measurement toggle.
func (c ViewConfig) Layers(showMeasurements bool) *render.LayerConfig {
	lc := render.NewLayerConfig()
	if !c.EditableHandles {
		lc.SetVisible(render.LayerHandles, false)
		lc.SetVisible(render.LayerOriginalPath, false)
	}
	if !c.BallPlacement {
		lc.SetVisible(render.LayerBall, false)
	}
	if !showMeasurements {
		lc.SetVisible(render.LayerLabels, false)
		lc.SetVisible(render.LayerMeasure, false)
	}
	return lc
}
