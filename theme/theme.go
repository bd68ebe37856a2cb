package theme

// Theme supplies the default colors and fonts applied to traces and layouts.
type Theme struct {
	Name         string
	Dark         bool
	Background   string
	Paper        string
	Text         string
	Grid         string
	Primary      string
	Emphasis     string
	Muted        string
	Font         string
	FontSize     int
	SeriesColors []string
}

var Light = Theme{
	Name:       "light",
	Background: "#ffffff",
	Paper:      "#f8f9fa",
	Text:       "#212529",
	Grid:       "#e9ecef",
	Primary:    "#1f77b4",
	Emphasis:   "#212529",
	Muted:      "#adb5bd",
	Font:       "Helvetica, Arial, sans-serif",
	FontSize:   12,
	SeriesColors: []string{
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	},
}

var Dark = Theme{
	Name:       "dark",
	Dark:       true,
	Background: "#111111",
	Paper:      "#1e1e1e",
	Text:       "#e9ecef",
	Grid:       "#333333",
	Primary:    "#4dabf7",
	Emphasis:   "#ffffff",
	Muted:      "#555555",
	Font:       "Helvetica, Arial, sans-serif",
	FontSize:   12,
	SeriesColors: []string{
		"#4dabf7", "#ffa94d", "#69db7c", "#ff6b6b", "#b197fc",
		"#d9a679", "#faa2c1", "#ced4da", "#ffe066", "#66d9e8",
	},
}

var presets = map[string]*Theme{
	Light.Name: &Light,
	Dark.Name:  &Dark,
}

func Preset(name string) (*Theme, bool) {
	th, found := presets[name]
	return th, found
}

// SeriesColor returns the default color for the series at the given
// position, cycling through the theme palette.
func (t *Theme) SeriesColor(index int) string {
	if len(t.SeriesColors) == 0 {
		return t.Primary
	}
	if index < 0 {
		index = 0
	}
	return t.SeriesColors[index%len(t.SeriesColors)]
}
