package generators

import (
	"math"

	"github.com/plotstream/plotstream/series"
)

// SineWave emits a noisy sine with the instantaneous slope as the z
// feature and a per-point y error estimate, so color mapping and error
// bars both have something to chew on.
func SineWave(params Params) []series.Point {
	r := newRng(params.Seed)
	cycles := params.Cycles
	if cycles <= 0 {
		cycles = 2
	}
	points := make([]series.Point, params.Points)
	for i := range points {
		t := float64(i) / float64(max(params.Points-1, 1))
		angle := 2 * math.Pi * cycles * t
		noise := params.Noise * symmetricFloat(r)
		points[i] = series.Point{
			X:      t,
			Y:      math.Sin(angle) + noise,
			Z:      series.Float(math.Cos(angle)),
			ErrorY: series.Float(math.Abs(noise) + 0.01),
		}
	}
	return points
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
