package generators

import (
	"math"

	"github.com/plotstream/plotstream/series"
)

// Spiral emits an archimedean spiral with the winding angle as the z
// feature, a natural fit for gradient lines.
func Spiral(params Params) []series.Point {
	r := newRng(params.Seed)
	turns := params.Cycles
	if turns <= 0 {
		turns = 3
	}
	points := make([]series.Point, params.Points)
	for i := range points {
		t := float64(i) / float64(max(params.Points-1, 1))
		angle := 2 * math.Pi * turns * t
		radius := t + params.Noise*symmetricFloat(r)*0.05
		points[i] = series.Point{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
			Z: series.Float(angle),
		}
	}
	return points
}
