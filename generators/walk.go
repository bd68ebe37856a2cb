package generators

import (
	"math"

	"github.com/plotstream/plotstream/series"
)

// RandomWalk emits a cumulative walk with the step magnitude as the z
// feature.
func RandomWalk(params Params) []series.Point {
	r := newRng(params.Seed)
	scale := params.Noise
	if scale <= 0 {
		scale = 1
	}
	points := make([]series.Point, params.Points)
	value := 0.0
	for i := range points {
		step := scale * symmetricFloat(r)
		value += step
		points[i] = series.Point{
			X: float64(i),
			Y: value,
			Z: series.Float(math.Abs(step)),
		}
	}
	return points
}
