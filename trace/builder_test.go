package trace

import (
	"fmt"
	"testing"

	"github.com/plotstream/plotstream/series"
	"github.com/plotstream/plotstream/theme"
)

func linePoints(count int) []series.Point {
	points := make([]series.Point, count)
	for i := range points {
		points[i] = series.Point{X: float64(i), Y: float64(i * i)}
	}
	return points
}

func TestBuildEmptyAndInvisible(t *testing.T) {
	empty := &series.Config{Name: "empty", Visible: true}
	if traces := Build(empty, 0, &theme.Light); len(traces) != 0 {
		t.Fatal("empty series should yield no traces")
	}
	hidden := &series.Config{Name: "hidden", Data: linePoints(5)}
	if traces := Build(hidden, 0, &theme.Light); len(traces) != 0 {
		t.Fatal("invisible series should yield no traces")
	}
	if traces := Build(nil, 0, &theme.Light); len(traces) != 0 {
		t.Fatal("nil series should yield no traces")
	}
}

func TestBuildWholeName(t *testing.T) {
	cfg := &series.Config{
		Name:         "A",
		Data:         linePoints(12),
		Mode:         series.LinesMarkers,
		Visible:      true,
		ShowInLegend: true,
	}
	traces := Build(cfg, 2, &theme.Light)
	if len(traces) != 1 {
		t.Fatal("expected one trace, got", len(traces))
	}
	if traces[0].Name != "A (12 pts)" {
		t.Fatal("name not decorated:", traces[0].Name)
	}
	if traces[0].Mode != "lines+markers" {
		t.Fatal("mode wrong:", traces[0].Mode)
	}
	if !traces[0].ShowLegend {
		t.Fatal("legend flag lost")
	}
	if traces[0].Line.Color != theme.Light.SeriesColor(2) {
		t.Fatal("default line color should come from the theme palette")
	}
}

func TestGradientSegmentCount(t *testing.T) {
	const n = 10
	cfg := &series.Config{
		Name:          "grad",
		Data:          linePoints(n),
		Mode:          series.LinesMarkers,
		GradientLines: true,
		ConnectDots:   true,
		Visible:       true,
		ShowInLegend:  true,
	}
	traces := Build(cfg, 0, &theme.Light)
	if len(traces) != n {
		t.Fatalf("expected %d traces (%d segments + 1 marker), got %d", n, n-1, len(traces))
	}
	segments := traces[:n-1]
	for i, segment := range segments {
		if segment.Mode != "lines" {
			t.Fatal("segment mode wrong:", segment.Mode)
		}
		if len(segment.X) != 2 || len(segment.Y) != 2 {
			t.Fatal("segment should span exactly one point pair")
		}
		if i == 0 {
			if !segment.ShowLegend || segment.SkipHover {
				t.Fatal("first segment must carry the legend and hover")
			}
			if segment.Name != "grad" {
				t.Fatal("first segment carries the display name:", segment.Name)
			}
		} else if segment.ShowLegend || !segment.SkipHover {
			t.Fatalf("segment %d should be legend- and hover-suppressed", i)
		}
	}
	markerTrace := traces[n-1]
	if markerTrace.Mode != "markers" {
		t.Fatal("last trace should be the combined marker trace")
	}
	if len(markerTrace.X) != n {
		t.Fatal("marker trace should cover every point")
	}
	if markerTrace.ShowLegend {
		t.Fatal("marker trace must not duplicate the legend entry")
	}
}

func TestGradientLinesOnly(t *testing.T) {
	cfg := &series.Config{
		Name:          "grad",
		Data:          linePoints(6),
		Mode:          series.Lines,
		GradientLines: true,
		ConnectDots:   true,
		Visible:       true,
	}
	if traces := Build(cfg, 0, &theme.Light); len(traces) != 5 {
		t.Fatal("lines-only gradient should emit exactly N-1 traces, got", len(traces))
	}
}

func TestGradientWithoutConnectDots(t *testing.T) {
	cfg := &series.Config{
		Name:          "grad",
		Data:          linePoints(6),
		Mode:          series.Lines,
		GradientLines: true,
		Visible:       true,
	}
	if traces := Build(cfg, 0, &theme.Light); len(traces) != 1 {
		t.Fatal("gradient without connectDots should fall back to one trace")
	}
}

func TestGradientSegmentColors(t *testing.T) {
	data := linePoints(4)
	for i := range data {
		data[i].Z = series.Float(float64(10 + i))
	}
	cfg := &series.Config{
		Name:          "grad",
		Data:          data,
		Mode:          series.Lines,
		GradientLines: true,
		ConnectDots:   true,
		Visible:       true,
		Marker:        &series.MarkerStyle{ColorFeature: "z"},
	}
	traces := Build(cfg, 0, &theme.Light)
	for i, segment := range traces {
		if segment.Line.ColorValue == nil {
			t.Fatal("segment missing color value")
		}
		if *segment.Line.ColorValue != float64(10+i) {
			t.Fatal("segment color must be the feature value at its start point")
		}
		if len(segment.Line.Scale) == 0 {
			t.Fatal("segment missing colorscale")
		}
	}
}

func TestGradientFallbackColor(t *testing.T) {
	cfg := &series.Config{
		Name:          "grad",
		Data:          linePoints(3),
		Mode:          series.Lines,
		GradientLines: true,
		ConnectDots:   true,
		Visible:       true,
	}
	traces := Build(cfg, 0, &theme.Light)
	for _, segment := range traces {
		if segment.Line.ColorValue != nil {
			t.Fatal("no feature configured, segments must use a flat color")
		}
		if segment.Line.Color != theme.Light.Primary {
			t.Fatal("fallback should be the theme primary color")
		}
	}
}

func TestColorMappingBounds(t *testing.T) {
	// Ten points, one with a missing z: bounds come from the nine
	// observed values, the color array still has ten entries.
	data := make([]series.Point, 10)
	for i := range data {
		data[i] = series.Point{X: float64(i), Y: 0}
		if i != 4 {
			data[i].Z = series.Float(float64(i))
		}
	}
	data[0].Z = series.Float(1)
	cfg := &series.Config{
		Name:    "mapped",
		Data:    data,
		Mode:    series.Markers,
		Visible: true,
		Marker:  &series.MarkerStyle{ColorFeature: "z"},
	}
	traces := Build(cfg, 0, &theme.Light)
	marker := traces[0].Marker
	if len(marker.Colors) != 10 {
		t.Fatal("color array must cover every point")
	}
	if marker.Colors[4] != nil {
		t.Fatal("missing feature value must propagate as nil")
	}
	if marker.CMin != 1 || marker.CMax != 9 {
		t.Fatalf("bounds must skip nil values: got [%v,%v]", marker.CMin, marker.CMax)
	}
}

func TestColorMappingExplicitBounds(t *testing.T) {
	data := linePoints(4)
	for i := range data {
		data[i].Z = series.Float(float64(i))
	}
	cfg := &series.Config{
		Name:    "bounded",
		Data:    data,
		Mode:    series.Markers,
		Visible: true,
		Marker: &series.MarkerStyle{
			ColorFeature: "z",
			ColorMin:     series.Float(-5),
			ColorMax:     series.Float(5),
		},
	}
	marker := Build(cfg, 0, &theme.Light)[0].Marker
	if marker.CMin != -5 || marker.CMax != 5 {
		t.Fatal("explicit bounds must win:", marker.CMin, marker.CMax)
	}
}

func TestColorMappingAllNull(t *testing.T) {
	cfg := &series.Config{
		Name:    "nulls",
		Data:    linePoints(5),
		Mode:    series.Markers,
		Visible: true,
		Marker:  &series.MarkerStyle{ColorFeature: "z", Color: "#123456"},
	}
	marker := Build(cfg, 0, &theme.Light)[0].Marker
	if marker.Colors != nil {
		t.Fatal("feature absent everywhere: no color array expected")
	}
	if marker.Color != "#123456" {
		t.Fatal("configured marker color expected, got", marker.Color)
	}
}

func TestColorBarUniqueness(t *testing.T) {
	build := func(index int) Trace {
		data := linePoints(5)
		for i := range data {
			data[i].Z = series.Float(float64(i))
		}
		cfg := &series.Config{
			Name:    fmt.Sprintf("s%d", index),
			Data:    data,
			Mode:    series.Markers,
			Visible: true,
			Marker:  &series.MarkerStyle{ColorFeature: "z", ShowColorBar: true},
		}
		return Build(cfg, index, &theme.Light)[0]
	}
	first := build(0)
	second := build(1)
	if !first.Marker.ShowScale {
		t.Fatal("first series must show the color bar")
	}
	if second.Marker.ShowScale {
		t.Fatal("repeated color bars must be suppressed")
	}
}

func TestErrorBars(t *testing.T) {
	data := []series.Point{
		{X: 0, Y: 0, ErrorY: series.Float(0.5)},
		{X: 1, Y: 1},
		{X: 2, Y: 4, ErrorY: series.Float(1.5)},
	}
	cfg := &series.Config{
		Name:      "err",
		Data:      data,
		Mode:      series.Markers,
		Visible:   true,
		ErrorBars: &series.ErrorBarSpec{Y: series.ErrorBarAxis{Visible: true}},
	}
	tr := Build(cfg, 0, &theme.Light)[0]
	if tr.ErrorX.Visible {
		t.Fatal("x error bars not requested")
	}
	if !tr.ErrorY.Visible || len(tr.ErrorY.Values) != 3 {
		t.Fatal("y error bars missing")
	}
	if tr.ErrorY.Values[1] != nil {
		t.Fatal("absent error value must propagate as nil")
	}
	if *tr.ErrorY.Values[2] != 1.5 {
		t.Fatal("error value lost")
	}
}

func TestResolveScale(t *testing.T) {
	explicit := &series.ColorScale{Stops: []series.ColorStop{{Pos: 0, Color: "#000"}, {Pos: 1, Color: "#fff"}}}
	if stops := ResolveScale(explicit); len(stops) != 2 || stops[1].Color != "#fff" {
		t.Fatal("explicit stops must pass through")
	}
	if stops := ResolveScale(&series.ColorScale{Name: "Plasma"}); len(stops) == 0 {
		t.Fatal("named scale lookup failed")
	}
	defaultStops := ResolveScale(nil)
	unknownStops := ResolveScale(&series.ColorScale{Name: "NoSuch"})
	if len(defaultStops) == 0 || len(unknownStops) != len(defaultStops) {
		t.Fatal("unknown scales must fall back to the default")
	}
}

func TestBuildText(t *testing.T) {
	data := linePoints(3)
	data[1].Text = "peak"
	cfg := &series.Config{Name: "txt", Data: data, Mode: series.Markers, Visible: true}
	tr := Build(cfg, 0, &theme.Light)[0]
	if len(tr.Text) != 3 || tr.Text[1] != "peak" {
		t.Fatal("text array wrong:", tr.Text)
	}
	bare := Build(&series.Config{Name: "no", Data: linePoints(3), Mode: series.Markers, Visible: true}, 0, &theme.Light)[0]
	if bare.Text != nil {
		t.Fatal("no text configured, array should be nil")
	}
}

func TestBuildLayout(t *testing.T) {
	layout := BuildLayout(&trivialPlot, &theme.Dark)
	if layout.Background != theme.Dark.Background {
		t.Fatal("layout must take theme background")
	}
	if layout.Margin == (Margin{}) {
		t.Fatal("zero margins should pick defaults")
	}
	if layout.HoverMode != "closest" {
		t.Fatal("default hover mode wrong:", layout.HoverMode)
	}
	crosshair := trivialPlot
	crosshair.Crosshair = true
	spiked := BuildLayout(&crosshair, &theme.Dark)
	if !spiked.XAxis.ShowSpikes || !spiked.YAxis.ShowSpikes {
		t.Fatal("crosshair must enable axis spikes")
	}
}

var trivialPlot = PlotConfig{Title: "demo", XTitle: "x", YTitle: "y"}
