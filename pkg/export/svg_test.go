package export

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pesislab/kentta/pkg/field"
	"github.com/pesislab/kentta/pkg/render"
)

func testDiagram(t *testing.T) (*field.Profile, *field.DerivedGeometry, render.CanvasDimensions) {
	t.Helper()
	p := field.MenProfile()
	d := render.CalculateCanvasDimensions(p, 900, 1200)
	g, err := field.Calculate(p, field.EditablePoints{}, d.Scale)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	return p, g, d
}

func TestSVGDocumentShape(t *testing.T) {
	p, g, d := testDiagram(t)
	doc, err := SVG(p, g, d, nil)
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	if !strings.HasPrefix(doc, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(doc, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("missing svg root element")
	}
	want := fmt.Sprintf(`width="%d" height="%d" viewBox="0 0 %d %d"`, d.Width, d.Height, d.Width, d.Height)
	if !strings.Contains(doc, want) {
		t.Errorf("document missing %q", want)
	}
	if !strings.HasSuffix(doc, "</svg>") {
		t.Error("document not closed")
	}
}

func TestSVGContainsElements(t *testing.T) {
	p, g, d := testDiagram(t)
	doc, err := SVG(p, g, d, nil)
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	for _, want := range []string{
		"<rect", "<polygon", "<line", "<circle", "<polyline", "<text",
		// Back depth and width labels for the men's field.
		"96 m", "42 m",
		// Classic theme ground color.
		`fill="#185c2c"`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestSVGLayerVisibility(t *testing.T) {
	p, g, d := testDiagram(t)

	config := render.NewLayerConfig()
	config.HideAll()
	doc, err := SVG(p, g, d, config)
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	for _, banned := range []string{"<text", "<circle", "<line", "<polyline"} {
		if strings.Contains(doc, banned) {
			t.Errorf("hidden layers still produced %q", banned)
		}
	}
	// Ground and field fill are not toggleable.
	if !strings.Contains(doc, "<rect") || !strings.Contains(doc, "<polygon") {
		t.Error("background or field fill missing")
	}

	config.ShowOnly(render.LayerBoundary)
	doc, err = SVG(p, g, d, config)
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	if !strings.Contains(doc, "<line") || !strings.Contains(doc, "<circle") {
		t.Error("boundary layer missing its lines or plate circle")
	}
	if strings.Contains(doc, "<text") {
		t.Error("labels drawn with only boundary visible")
	}
}

func TestSVGTranslucentStroke(t *testing.T) {
	p, g, d := testDiagram(t)
	doc, err := SVG(p, g, d, nil)
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	// The original home path renders at alpha 80.
	if !strings.Contains(doc, `stroke-opacity="0.314"`) {
		t.Error("translucent stroke missing its opacity attribute")
	}
}

func TestSVGNilInputs(t *testing.T) {
	_, _, d := testDiagram(t)
	if _, err := SVG(nil, nil, d, nil); err == nil {
		t.Error("expected error for nil inputs")
	}
}
