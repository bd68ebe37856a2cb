package theme

// Stop is one entry of a colorscale: a normalized position in [0,1] and
// the color at that position.
type Stop struct {
	Pos   float64
	Color string
}

const DefaultScale = "Viridis"

var colorScales = map[string][]Stop{
	"Viridis": {
		{0, "#440154"}, {0.125, "#46327e"}, {0.25, "#365c8d"}, {0.375, "#277f8e"},
		{0.5, "#1fa187"}, {0.625, "#4ac16d"}, {0.75, "#a0da39"}, {0.875, "#fde725"},
		{1, "#fde725"},
	},
	"Plasma": {
		{0, "#0d0887"}, {0.25, "#7e03a8"}, {0.5, "#cc4778"}, {0.75, "#f89540"},
		{1, "#f0f921"},
	},
	"Jet": {
		{0, "#000083"}, {0.125, "#003caa"}, {0.375, "#05ffff"}, {0.625, "#ffff00"},
		{0.875, "#fa0000"}, {1, "#800000"},
	},
	"Hot": {
		{0, "#000000"}, {0.333, "#e60000"}, {0.666, "#ffd200"}, {1, "#ffffff"},
	},
	"Greys": {
		{0, "#000000"}, {1, "#ffffff"},
	},
	"RdBu": {
		{0, "#67001f"}, {0.25, "#d6604d"}, {0.5, "#f7f7f7"}, {0.75, "#4393c3"},
		{1, "#053061"},
	},
}

// Scale looks a colorscale up by name in the fixed palette table.
func Scale(name string) ([]Stop, bool) {
	stops, found := colorScales[name]
	return stops, found
}

func ScaleNames() []string {
	names := make([]string, 0, len(colorScales))
	for name := range colorScales {
		names = append(names, name)
	}
	return names
}
