package trace

import (
	"github.com/plotstream/plotstream/theme"
)

// Trace is the renderer-facing drawable derived from one series (or one
// gradient segment of it). The renderer consumes it as opaque styling; the
// loader owns it only until the next publish.
type Trace struct {
	Name        string
	SeriesIndex int
	X           []float64
	Y           []float64
	Text        []string
	Mode        string
	Line        LineStyle
	Marker      Marker
	ErrorX      ErrorBars
	ErrorY      ErrorBars
	Opacity     float64
	ShowLegend  bool
	SkipHover   bool
}

type LineStyle struct {
	Color string
	// ColorValue is the raw color-feature value for a gradient segment,
	// resolved against Scale by the renderer.
	ColorValue *float64
	Scale      []theme.Stop
	CMin       float64
	CMax       float64
	Width      float64
}

type Marker struct {
	Size         float64
	Sizes        []float64
	Color        string
	Colors       []*float64
	Scale        []theme.Stop
	CMin         float64
	CMax         float64
	ShowScale    bool
	ScaleTitle   string
	Opacity      float64
	OutlineColor string
	OutlineWidth float64
}

type ErrorBars struct {
	Visible bool
	Color   string
	Width   float64
	Values  []*float64
}
