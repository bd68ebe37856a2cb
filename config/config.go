package config

type Config struct {
	Theme           string       `yaml:"theme,omitempty"`
	ServerAddress   string       `yaml:"server,omitempty"`
	RPCAddress      string       `yaml:"rpc,omitempty"`
	RefreshSchedule string       `yaml:"refreshSchedule,omitempty"`
	Progressive     Progressive  `yaml:"progressive,omitempty"`
	Plot            Plot         `yaml:"plot,omitempty"`
	Highlight       Highlight    `yaml:"highlight,omitempty"`
	Series          []SeriesSpec `yaml:"series"`
	Datasets        []string     `yaml:"datasets,omitempty"`
}

type Progressive struct {
	Enabled       bool `yaml:"enabled"`
	ChunkSize     int  `yaml:"chunkSize,omitempty"`
	AnimationMS   int  `yaml:"animationMs,omitempty"`
	ShowProgress  bool `yaml:"showProgress,omitempty"`
	ShowPhase     bool `yaml:"showPhase,omitempty"`
	ShowDataStats bool `yaml:"showDataStats,omitempty"`
}

type Plot struct {
	Title     string `yaml:"title,omitempty"`
	XTitle    string `yaml:"xTitle,omitempty"`
	YTitle    string `yaml:"yTitle,omitempty"`
	Crosshair bool   `yaml:"crosshair,omitempty"`
}

type Highlight struct {
	Enabled        bool    `yaml:"enabled"`
	HighlightScale float64 `yaml:"highlightScale,omitempty"`
	DimScale       float64 `yaml:"dimScale,omitempty"`
	DimOpacity     float64 `yaml:"dimOpacity,omitempty"`
}

// SeriesSpec describes one generated demo series. Hidden inverts the
// usual visibility default so that a zero-valued spec stays visible.
type SeriesSpec struct {
	Name          string  `yaml:"name"`
	Generator     string  `yaml:"generator"`
	Points        int     `yaml:"points"`
	Seed          uint64  `yaml:"seed,omitempty"`
	Noise         float64 `yaml:"noise,omitempty"`
	Cycles        float64 `yaml:"cycles,omitempty"`
	Mode          string  `yaml:"mode,omitempty"`
	GradientLines bool    `yaml:"gradientLines,omitempty"`
	ConnectDots   bool    `yaml:"connectDots,omitempty"`
	ColorFeature  string  `yaml:"colorFeature,omitempty"`
	ColorScale    string  `yaml:"colorScale,omitempty"`
	ShowColorBar  bool    `yaml:"showColorBar,omitempty"`
	Hidden        bool    `yaml:"hidden,omitempty"`
	HideInLegend  bool    `yaml:"hideInLegend,omitempty"`
}
