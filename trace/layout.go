package trace

import "github.com/plotstream/plotstream/theme"

// PlotConfig is the caller-supplied plot chrome: titles, margins, legend
// placement and crosshair behavior. It never influences trace contents.
type PlotConfig struct {
	Title             string
	XTitle            string
	YTitle            string
	Margin            Margin
	LegendX           float64
	LegendY           float64
	LegendOrientation string
	HideLegend        bool
	Crosshair         bool
}

type Margin struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

type Axis struct {
	Title      string
	ShowGrid   bool
	GridColor  string
	ZeroLine   bool
	ShowSpikes bool
	SpikeColor string
}

type Legend struct {
	X           float64
	Y           float64
	Orientation string
}

// Layout is the renderer-facing plot configuration paired with a trace
// set. Like Trace it is consumed opaquely by the plotting library.
type Layout struct {
	Title      string
	XAxis      Axis
	YAxis      Axis
	Margin     Margin
	Legend     Legend
	ShowLegend bool
	Background string
	Paper      string
	TextColor  string
	Font       string
	FontSize   int
	HoverMode  string
}

func BuildLayout(cfg *PlotConfig, th *theme.Theme) Layout {
	layout := Layout{
		Title:      cfg.Title,
		Background: th.Background,
		Paper:      th.Paper,
		TextColor:  th.Text,
		Font:       th.Font,
		FontSize:   th.FontSize,
		ShowLegend: !cfg.HideLegend,
		HoverMode:  "closest",
		Margin:     cfg.Margin,
		Legend: Legend{
			X:           cfg.LegendX,
			Y:           cfg.LegendY,
			Orientation: cfg.LegendOrientation,
		},
		XAxis: Axis{
			Title:     cfg.XTitle,
			ShowGrid:  true,
			GridColor: th.Grid,
			ZeroLine:  true,
		},
		YAxis: Axis{
			Title:     cfg.YTitle,
			ShowGrid:  true,
			GridColor: th.Grid,
			ZeroLine:  true,
		},
	}
	if layout.Margin == (Margin{}) {
		layout.Margin = Margin{Left: 60, Right: 30, Top: 50, Bottom: 50}
	}
	if layout.Legend.Orientation == "" {
		layout.Legend.Orientation = "v"
	}
	if cfg.Crosshair {
		layout.HoverMode = "x"
		layout.XAxis.ShowSpikes = true
		layout.XAxis.SpikeColor = th.Muted
		layout.YAxis.ShowSpikes = true
		layout.YAxis.SpikeColor = th.Muted
	}
	return layout
}
