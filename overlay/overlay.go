package overlay

import (
	"github.com/plotstream/plotstream/theme"
	"github.com/plotstream/plotstream/trace"
)

const (
	DefaultHighlightScale = 1.4
	DefaultDimScale       = 0.6
	DefaultDimOpacity     = 0.3
	DefaultMinMarkerSize  = 2
	DefaultMinLineWidth   = 0.5
)

// None marks "no trace hovered".
const None = -1

// Config tunes how the hovered trace is emphasized and the rest are
// dimmed. Dimmed traces stay legible: opacity and sizes are clamped, never
// zeroed.
type Config struct {
	Enabled        bool
	HighlightScale float64
	DimScale       float64
	DimOpacity     float64
	MinMarkerSize  float64
	MinLineWidth   float64
	EmphasisColor  string
	MutedColor     string
}

func DefaultConfig(th *theme.Theme) Config {
	return Config{
		Enabled:        true,
		HighlightScale: DefaultHighlightScale,
		DimScale:       DefaultDimScale,
		DimOpacity:     DefaultDimOpacity,
		MinMarkerSize:  DefaultMinMarkerSize,
		MinLineWidth:   DefaultMinLineWidth,
		EmphasisColor:  th.Emphasis,
		MutedColor:     th.Muted,
	}
}

// Apply derives a highlighted copy of the trace set for the hovered index.
// The input is never mutated; when highlighting cannot apply the input
// slice is returned as-is.
func Apply(traces []trace.Trace, hovered int, cfg Config) []trace.Trace {
	if !cfg.Enabled || hovered < 0 || hovered >= len(traces) || len(traces) == 0 {
		return traces
	}
	out := make([]trace.Trace, len(traces))
	for i := range traces {
		out[i] = traces[i]
		if i == hovered {
			emphasize(&out[i], cfg)
		} else {
			dim(&out[i], cfg)
		}
	}
	return out
}

func emphasize(t *trace.Trace, cfg Config) {
	t.Opacity = 1
	t.Marker.Opacity = 1
	t.Line.Width = clamp(t.Line.Width*cfg.HighlightScale, cfg.MinLineWidth)
	t.Marker.Size = clamp(t.Marker.Size*cfg.HighlightScale, cfg.MinMarkerSize)
	t.Marker.Sizes = scaleSizes(t.Marker.Sizes, cfg.HighlightScale, cfg.MinMarkerSize)
	t.Marker.OutlineColor = cfg.EmphasisColor
	t.Marker.OutlineWidth = 1.5
}

func dim(t *trace.Trace, cfg Config) {
	t.Opacity = cfg.DimOpacity
	t.Marker.Opacity = cfg.DimOpacity
	t.Line.Width = clamp(t.Line.Width*cfg.DimScale, cfg.MinLineWidth)
	t.Marker.Size = clamp(t.Marker.Size*cfg.DimScale, cfg.MinMarkerSize)
	t.Marker.Sizes = scaleSizes(t.Marker.Sizes, cfg.DimScale, cfg.MinMarkerSize)
	t.Marker.OutlineColor = cfg.MutedColor
	t.Marker.OutlineWidth = 0.5
}

func scaleSizes(sizes []float64, factor, floor float64) []float64 {
	if len(sizes) == 0 {
		return sizes
	}
	scaled := make([]float64, len(sizes))
	for i, size := range sizes {
		scaled[i] = clamp(size*factor, floor)
	}
	return scaled
}

func clamp(value, floor float64) float64 {
	if value < floor {
		return floor
	}
	return value
}
