package trace

import (
	"fmt"

	"github.com/plotstream/plotstream/series"
	"github.com/plotstream/plotstream/theme"
)

const (
	DefaultLineWidth  = 2
	DefaultMarkerSize = 6
)

// Build maps one series into its renderer-facing traces. It is pure: no
// side effects, output depends only on its arguments. Invisible or empty
// series yield no traces.
func Build(cfg *series.Config, seriesIndex int, th *theme.Theme) []Trace {
	if cfg == nil || !cfg.Visible || len(cfg.Data) == 0 {
		return nil
	}
	if cfg.GradientLines && cfg.ConnectDots && cfg.Mode.HasLines() {
		return buildGradient(cfg, seriesIndex, th)
	}
	return []Trace{buildWhole(cfg, seriesIndex, th)}
}

// ResolveScale turns a series colorscale reference into explicit stops:
// explicit stops pass through, names are looked up in the palette table,
// anything else falls back to the default scale.
func ResolveScale(scale *series.ColorScale) []theme.Stop {
	if scale != nil {
		if len(scale.Stops) > 0 {
			stops := make([]theme.Stop, len(scale.Stops))
			for i, stop := range scale.Stops {
				stops[i] = theme.Stop{Pos: stop.Pos, Color: stop.Color}
			}
			return stops
		}
		if stops, found := theme.Scale(scale.Name); found {
			return stops
		}
	}
	stops, _ := theme.Scale(theme.DefaultScale)
	return stops
}

// colorMapping is the resolved per-point marker coloring for one series:
// raw feature values (nil where the point lacks the feature), bounds and
// the colorscale to resolve them against.
type colorMapping struct {
	values []*float64
	min    float64
	max    float64
	scale  []theme.Stop
	title  string
}

func resolveColorMapping(cfg *series.Config) *colorMapping {
	if cfg.Marker == nil || cfg.Marker.ColorFeature == "" {
		return nil
	}
	feature := series.FeatureByName(cfg.Marker.ColorFeature)
	mapping := &colorMapping{
		values: make([]*float64, len(cfg.Data)),
		scale:  ResolveScale(cfg.Marker.ColorScale),
		title:  cfg.Marker.ColorBarTitle,
	}
	if mapping.title == "" {
		mapping.title = cfg.Marker.ColorFeature
	}
	observed := false
	for i := range cfg.Data {
		raw, found := feature(&cfg.Data[i])
		if !found {
			continue
		}
		value := raw
		mapping.values[i] = &value
		if !observed {
			mapping.min, mapping.max = value, value
			observed = true
			continue
		}
		if value < mapping.min {
			mapping.min = value
		}
		if value > mapping.max {
			mapping.max = value
		}
	}
	if !observed {
		return nil
	}
	if cfg.Marker.ColorMin != nil {
		mapping.min = *cfg.Marker.ColorMin
	}
	if cfg.Marker.ColorMax != nil {
		mapping.max = *cfg.Marker.ColorMax
	}
	return mapping
}

func lineWidth(cfg *series.Config) float64 {
	if cfg.Line != nil && cfg.Line.Width > 0 {
		return cfg.Line.Width
	}
	return DefaultLineWidth
}

func lineColor(cfg *series.Config, seriesIndex int, th *theme.Theme) string {
	if cfg.Line != nil && cfg.Line.Color != "" {
		return cfg.Line.Color
	}
	return th.SeriesColor(seriesIndex)
}

func markerOpacity(cfg *series.Config) float64 {
	if cfg.Marker != nil && cfg.Marker.Opacity > 0 {
		return cfg.Marker.Opacity
	}
	return 1
}

func buildMarker(cfg *series.Config, seriesIndex int, th *theme.Theme, mapping *colorMapping) Marker {
	marker := Marker{
		Size:    DefaultMarkerSize,
		Opacity: markerOpacity(cfg),
	}
	if cfg.Marker != nil {
		if cfg.Marker.Size > 0 {
			marker.Size = cfg.Marker.Size
		}
		marker.Sizes = cfg.Marker.Sizes
	}
	if mapping != nil {
		marker.Colors = mapping.values
		marker.Scale = mapping.scale
		marker.CMin = mapping.min
		marker.CMax = mapping.max
		marker.ScaleTitle = mapping.title
		// One shared color bar per plot: only the first series shows it.
		marker.ShowScale = cfg.Marker.ShowColorBar && seriesIndex == 0
		return marker
	}
	if cfg.Marker != nil && cfg.Marker.Color != "" {
		marker.Color = cfg.Marker.Color
	} else {
		marker.Color = lineColor(cfg, seriesIndex, th)
	}
	return marker
}

func buildErrorBars(cfg *series.Config) (errorX, errorY ErrorBars) {
	if cfg.ErrorBars == nil {
		return
	}
	if cfg.ErrorBars.X.Visible {
		errorX.Visible = true
		errorX.Color = cfg.ErrorBars.X.Color
		errorX.Width = cfg.ErrorBars.X.Width
		errorX.Values = make([]*float64, len(cfg.Data))
		for i := range cfg.Data {
			errorX.Values[i] = cfg.Data[i].ErrorX
		}
	}
	if cfg.ErrorBars.Y.Visible {
		errorY.Visible = true
		errorY.Color = cfg.ErrorBars.Y.Color
		errorY.Width = cfg.ErrorBars.Y.Width
		errorY.Values = make([]*float64, len(cfg.Data))
		for i := range cfg.Data {
			errorY.Values[i] = cfg.Data[i].ErrorY
		}
	}
	return
}

func buildWhole(cfg *series.Config, seriesIndex int, th *theme.Theme) Trace {
	t := Trace{
		Name:        fmt.Sprintf("%s (%d pts)", cfg.Name, len(cfg.Data)),
		SeriesIndex: seriesIndex,
		X:           make([]float64, len(cfg.Data)),
		Y:           make([]float64, len(cfg.Data)),
		Mode:        cfg.Mode.String(),
		Opacity:     1,
		ShowLegend:  cfg.ShowInLegend,
		Line: LineStyle{
			Color: lineColor(cfg, seriesIndex, th),
			Width: lineWidth(cfg),
		},
	}
	hasText := false
	for i := range cfg.Data {
		p := &cfg.Data[i]
		t.X[i] = p.X
		t.Y[i] = p.Y
		if p.Text != "" {
			hasText = true
		}
	}
	if hasText {
		t.Text = make([]string, len(cfg.Data))
		for i := range cfg.Data {
			t.Text[i] = cfg.Data[i].Text
		}
	}
	t.Marker = buildMarker(cfg, seriesIndex, th, resolveColorMapping(cfg))
	t.ErrorX, t.ErrorY = buildErrorBars(cfg)
	return t
}

// buildGradient renders a connected line as one independently colored
// segment per consecutive point pair, plus a combined marker-only trace
// when the mode includes markers. Only the first segment feeds the legend;
// the rest skip both legend and hover.
func buildGradient(cfg *series.Config, seriesIndex int, th *theme.Theme) []Trace {
	mapping := resolveColorMapping(cfg)
	fallback := th.Primary
	if cfg.Line != nil && cfg.Line.Color != "" {
		fallback = cfg.Line.Color
	}
	width := lineWidth(cfg)
	traces := make([]Trace, 0, len(cfg.Data))
	for i := 0; i+1 < len(cfg.Data); i++ {
		segment := Trace{
			Name:        cfg.Name,
			SeriesIndex: seriesIndex,
			X:           []float64{cfg.Data[i].X, cfg.Data[i+1].X},
			Y:           []float64{cfg.Data[i].Y, cfg.Data[i+1].Y},
			Mode:        "lines",
			Opacity:     1,
			ShowLegend:  i == 0 && cfg.ShowInLegend,
			SkipHover:   i != 0,
			Line: LineStyle{
				Color: fallback,
				Width: width,
			},
		}
		if mapping != nil && mapping.values[i] != nil {
			segment.Line.ColorValue = mapping.values[i]
			segment.Line.Scale = mapping.scale
			segment.Line.CMin = mapping.min
			segment.Line.CMax = mapping.max
		}
		traces = append(traces, segment)
	}
	if cfg.Mode.HasMarkers() {
		markerTrace := Trace{
			Name:        fmt.Sprintf("%s (%d pts)", cfg.Name, len(cfg.Data)),
			SeriesIndex: seriesIndex,
			X:           make([]float64, len(cfg.Data)),
			Y:           make([]float64, len(cfg.Data)),
			Mode:        "markers",
			Opacity:     1,
		}
		for i := range cfg.Data {
			markerTrace.X[i] = cfg.Data[i].X
			markerTrace.Y[i] = cfg.Data[i].Y
		}
		markerTrace.Marker = buildMarker(cfg, seriesIndex, th, mapping)
		markerTrace.ErrorX, markerTrace.ErrorY = buildErrorBars(cfg)
		traces = append(traces, markerTrace)
	}
	return traces
}
