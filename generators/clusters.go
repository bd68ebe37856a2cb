package generators

import (
	"math"

	"github.com/plotstream/plotstream/series"
	"gonum.org/v1/gonum/mathext/prng"
)

const clusterCount = 4

// Clusters scatters points around a handful of centers; the cluster index
// drives marker coloring and the distance to center the per-point error.
func Clusters(params Params) []series.Point {
	r := prng.NewMT19937_64()
	seed := params.Seed
	if seed == 0 {
		seed = 1
	}
	r.Seed(seed)
	spread := params.Noise
	if spread <= 0 {
		spread = 0.15
	}
	centers := make([][2]float64, clusterCount)
	for i := range centers {
		angle := 2 * math.Pi * float64(i) / clusterCount
		centers[i] = [2]float64{math.Cos(angle), math.Sin(angle)}
	}
	points := make([]series.Point, params.Points)
	for i := range points {
		cluster := i % clusterCount
		dx := spread * symmetricFloat(r)
		dy := spread * symmetricFloat(r)
		points[i] = series.Point{
			X:      centers[cluster][0] + dx,
			Y:      centers[cluster][1] + dy,
			Z:      series.Float(float64(cluster)),
			ErrorX: series.Float(math.Sqrt(dx*dx + dy*dy)),
		}
	}
	return points
}
