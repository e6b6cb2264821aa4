package render

import "image/color"

// ColorTheme selects one of the built-in diagram color sets.
type ColorTheme int

const (
	ThemeClassic ColorTheme = iota
	ThemeBlueprint
	ThemeDark
	ThemeHighContrast
)

// ThemeNames maps theme enum to display name
var ThemeNames = map[ColorTheme]string{
	ThemeClassic:      "Classic",
	ThemeBlueprint:    "Blueprint",
	ThemeDark:         "Dark",
	ThemeHighContrast: "High Contrast",
}

// CurrentTheme is the active color theme (default: Classic)
var CurrentTheme = ThemeClassic

// Classic theme: white lines on grass green, the painted look of a real
// field.
var classicColors = map[string]color.NRGBA{
	"background": {R: 24, G: 92, B: 44, A: 255},
	"field":      {R: 34, G: 120, B: 58, A: 255},

	"boundary": {R: 255, G: 255, B: 255, A: 255},
	"diagonal": {R: 255, G: 255, B: 255, A: 255},
	"homeline": {R: 255, G: 255, B: 255, A: 255},
	"arc":      {R: 255, G: 255, B: 255, A: 255},
	"plate":    {R: 255, G: 255, B: 255, A: 255},

	"base":     {R: 255, G: 244, B: 214, A: 255},
	"basepath": {R: 255, G: 244, B: 214, A: 255},

	"homepath":          {R: 255, G: 196, B: 37, A: 255},
	"homepath.original": {R: 255, G: 255, B: 255, A: 80},
	"extension":         {R: 255, G: 244, B: 214, A: 140},

	"label":    {R: 255, G: 255, B: 255, A: 255},
	"label.bg": {R: 10, G: 40, B: 20, A: 170},
	"measure":  {R: 140, G: 220, B: 255, A: 255},
	"sector":   {R: 255, G: 255, B: 255, A: 28},
}

// Blueprint theme: light linework on a drafting blue ground.
var blueprintColors = map[string]color.NRGBA{
	"background": {R: 16, G: 42, B: 94, A: 255},
	"field":      {R: 20, G: 50, B: 108, A: 255},

	"boundary": {R: 214, G: 228, B: 255, A: 255},
	"diagonal": {R: 214, G: 228, B: 255, A: 255},
	"homeline": {R: 214, G: 228, B: 255, A: 255},
	"arc":      {R: 168, G: 196, B: 248, A: 255},
	"plate":    {R: 214, G: 228, B: 255, A: 255},

	"base":     {R: 168, G: 196, B: 248, A: 255},
	"basepath": {R: 168, G: 196, B: 248, A: 255},

	"homepath":          {R: 255, G: 214, B: 92, A: 255},
	"homepath.original": {R: 214, G: 228, B: 255, A: 70},
	"extension":         {R: 168, G: 196, B: 248, A: 130},

	"label":    {R: 236, G: 242, B: 255, A: 255},
	"label.bg": {R: 8, G: 24, B: 60, A: 180},
	"measure":  {R: 120, G: 228, B: 208, A: 255},
	"sector":   {R: 214, G: 228, B: 255, A: 22},
}

// Dark theme for on-screen editing.
var darkColors = map[string]color.NRGBA{
	"background": {R: 28, G: 30, B: 34, A: 255},
	"field":      {R: 36, G: 40, B: 44, A: 255},

	"boundary": {R: 220, G: 224, B: 228, A: 255},
	"diagonal": {R: 220, G: 224, B: 228, A: 255},
	"homeline": {R: 220, G: 224, B: 228, A: 255},
	"arc":      {R: 170, G: 178, B: 186, A: 255},
	"plate":    {R: 220, G: 224, B: 228, A: 255},

	"base":     {R: 255, G: 203, B: 107, A: 255},
	"basepath": {R: 190, G: 198, B: 206, A: 255},

	"homepath":          {R: 255, G: 170, B: 60, A: 255},
	"homepath.original": {R: 220, G: 224, B: 228, A: 60},
	"extension":         {R: 190, G: 198, B: 206, A: 120},

	"label":    {R: 236, G: 238, B: 240, A: 255},
	"label.bg": {R: 16, G: 18, B: 20, A: 190},
	"measure":  {R: 110, G: 200, B: 255, A: 255},
	"sector":   {R: 220, G: 224, B: 228, A: 18},
}

// High-contrast theme for projection and print.
var highContrastColors = map[string]color.NRGBA{
	"background": {R: 255, G: 255, B: 255, A: 255},
	"field":      {R: 255, G: 255, B: 255, A: 255},

	"boundary": {R: 0, G: 0, B: 0, A: 255},
	"diagonal": {R: 0, G: 0, B: 0, A: 255},
	"homeline": {R: 0, G: 0, B: 0, A: 255},
	"arc":      {R: 0, G: 0, B: 0, A: 255},
	"plate":    {R: 0, G: 0, B: 0, A: 255},

	"base":     {R: 0, G: 0, B: 0, A: 255},
	"basepath": {R: 0, G: 0, B: 0, A: 255},

	"homepath":          {R: 200, G: 60, B: 0, A: 255},
	"homepath.original": {R: 0, G: 0, B: 0, A: 70},
	"extension":         {R: 0, G: 0, B: 0, A: 120},

	"label":    {R: 0, G: 0, B: 0, A: 255},
	"label.bg": {R: 255, G: 255, B: 255, A: 220},
	"measure":  {R: 0, G: 90, B: 200, A: 255},
	"sector":   {R: 0, G: 0, B: 0, A: 10},
}

// Interaction colors, theme-independent
var (
	ColorHandle      = color.NRGBA{R: 255, G: 255, B: 255, A: 230} // idle drag handle
	ColorHandleHover = color.NRGBA{R: 255, G: 214, B: 92, A: 255}  // handle under the pointer
	ColorHandleDrag  = color.NRGBA{R: 255, G: 170, B: 60, A: 255}  // handle being dragged
	ColorSnapGuide   = color.NRGBA{R: 92, G: 255, B: 160, A: 255}  // snap lock indicator
	ColorBall        = color.NRGBA{R: 255, G: 240, B: 80, A: 255}  // ball marker, fair
	ColorBallFoul    = color.NRGBA{R: 255, G: 92, B: 92, A: 255}   // ball marker, outside the sector
)

// GetElementColor returns the color for a diagram element using the
// current theme.
func GetElementColor(element string) color.NRGBA {
	var colors map[string]color.NRGBA

	switch CurrentTheme {
	case ThemeBlueprint:
		colors = blueprintColors
	case ThemeDark:
		colors = darkColors
	case ThemeHighContrast:
		colors = highContrastColors
	default:
		colors = classicColors
	}

	if c, ok := colors[element]; ok {
		return c
	}
	// Default to gray for unknown elements
	return color.NRGBA{R: 128, G: 128, B: 128, A: 255}
}

// SetTheme changes the active color theme
func SetTheme(theme ColorTheme) {
	CurrentTheme = theme
}
