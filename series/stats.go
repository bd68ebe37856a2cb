package series

import (
	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/floats"
)

// BytesPerPoint is a rough per-point memory estimate: eight float64-sized
// fields. Stats are display-only, so precision does not matter here.
const BytesPerPoint = 64

type Range [2]float64

func defaultRange() Range {
	return Range{0, 1}
}

type Stats struct {
	TotalPoints    int
	SeriesPoints   map[string]int
	XRange         Range
	YRange         Range
	ZRange         Range
	EstimatedBytes uint64
}

// Collect aggregates counts, axis ranges and a memory estimate over the
// full series collection. Empty collections report [0,1] ranges.
func Collect(configs []Config) Stats {
	stats := Stats{
		SeriesPoints: make(map[string]int, len(configs)),
		XRange:       defaultRange(),
		YRange:       defaultRange(),
		ZRange:       defaultRange(),
	}
	var xs, ys, zs []float64
	for pos := range configs {
		cfg := &configs[pos]
		stats.SeriesPoints[cfg.Name] = len(cfg.Data)
		stats.TotalPoints += len(cfg.Data)
		for i := range cfg.Data {
			p := &cfg.Data[i]
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
			if p.Z != nil {
				zs = append(zs, *p.Z)
			}
		}
	}
	if len(xs) > 0 {
		stats.XRange = Range{floats.Min(xs), floats.Max(xs)}
		stats.YRange = Range{floats.Min(ys), floats.Max(ys)}
	}
	if len(zs) > 0 {
		stats.ZRange = Range{floats.Min(zs), floats.Max(zs)}
	}
	stats.EstimatedBytes = uint64(stats.TotalPoints) * BytesPerPoint
	return stats
}

func (s *Stats) Memory() string {
	return humanize.IBytes(s.EstimatedBytes)
}

func (s *Stats) Points() string {
	return humanize.Comma(int64(s.TotalPoints))
}
