package render

// Diagram layer names used with LayerConfig.
const (
	LayerBoundary     = "boundary"
	LayerArcs         = "arcs"
	LayerBases        = "bases"
	LayerBasePaths    = "basepaths"
	LayerHomePath     = "homepath"
	LayerOriginalPath = "homepath.original"
	LayerLabels       = "labels"
	LayerHandles      = "handles"
	LayerSector       = "sector"
	LayerBall         = "ball"
	LayerMeasure      = "measure"
	LayerUnderlay     = "underlay"
)

// LayerConfig controls which diagram layers are drawn.
type LayerConfig struct {
	visible       map[string]bool
	hideByDefault bool
}

// NewLayerConfig creates a new layer configuration with all layers
// visible by default.
func NewLayerConfig() *LayerConfig {
	return &LayerConfig{
		visible: make(map[string]bool),
	}
}

// SetVisible sets the visibility of a specific layer.
func (lc *LayerConfig) SetVisible(layer string, visible bool) {
	lc.visible[layer] = visible
}

// IsVisible returns whether a layer is drawn. Layers never mentioned
// follow the default.
func (lc *LayerConfig) IsVisible(layer string) bool {
	if visible, exists := lc.visible[layer]; exists {
		return visible
	}
	return !lc.hideByDefault
}

// HideAll hides every layer not explicitly shown afterwards.
func (lc *LayerConfig) HideAll() {
	lc.visible = make(map[string]bool)
	lc.hideByDefault = true
}

// ShowAll returns to the default of everything visible.
func (lc *LayerConfig) ShowAll() {
	lc.visible = make(map[string]bool)
	lc.hideByDefault = false
}

// ShowOnly shows exactly the specified layers, hiding all others.
func (lc *LayerConfig) ShowOnly(layers ...string) {
	lc.HideAll()
	for _, layer := range layers {
		lc.SetVisible(layer, true)
	}
}
