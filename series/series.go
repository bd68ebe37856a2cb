package series

import "fmt"

type Mode int

const (
	Lines Mode = iota
	Markers
	LinesMarkers
)

func (m Mode) HasLines() bool {
	return m == Lines || m == LinesMarkers
}

func (m Mode) HasMarkers() bool {
	return m == Markers || m == LinesMarkers
}

func (m Mode) String() string {
	switch m {
	case Lines:
		return "lines"
	case Markers:
		return "markers"
	case LinesMarkers:
		return "lines+markers"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

func ModeByName(name string) (Mode, bool) {
	switch name {
	case "lines":
		return Lines, true
	case "markers":
		return Markers, true
	case "lines+markers", "":
		return LinesMarkers, true
	}
	return LinesMarkers, false
}

type LineStyle struct {
	Color string
	Width float64
}

// ColorScale is either a reference into the fixed palette table (Name) or
// an explicit list of stops; explicit stops win when both are set.
type ColorScale struct {
	Name  string
	Stops []ColorStop
}

type ColorStop struct {
	Pos   float64
	Color string
}

type MarkerStyle struct {
	Size          float64
	Sizes         []float64
	Color         string
	ColorFeature  string
	ColorScale    *ColorScale
	ShowColorBar  bool
	ColorBarTitle string
	ColorMin      *float64
	ColorMax      *float64
	Opacity       float64
}

type ErrorBarAxis struct {
	Visible bool
	Color   string
	Width   float64
}

type ErrorBarSpec struct {
	X ErrorBarAxis
	Y ErrorBarAxis
}

// Config describes one named series. It is constructed once by the caller
// and read-only during a load pass; changed inputs trigger a fresh pass.
type Config struct {
	Name          string
	Data          []Point
	Mode          Mode
	Line          *LineStyle
	Marker        *MarkerStyle
	ErrorBars     *ErrorBarSpec
	ConnectDots   bool
	GradientLines bool
	Visible       bool
	ShowInLegend  bool
}

// TotalPoints sums the data lengths of all series, visible or not.
func TotalPoints(configs []Config) int {
	total := 0
	for pos := range configs {
		total += len(configs[pos].Data)
	}
	return total
}
