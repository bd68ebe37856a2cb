package generators

import (
	"errors"

	"github.com/plotstream/plotstream/series"
)

var UnknownGenerator = errors.New("unknown generator")

// Params configures one demo dataset. The same seed always reproduces the
// same points.
type Params struct {
	Points int
	Seed   uint64
	Noise  float64
	Cycles float64
}

type Func func(params Params) []series.Point

var registry = map[string]Func{
	"sine":     SineWave,
	"walk":     RandomWalk,
	"spiral":   Spiral,
	"clusters": Clusters,
}

func ByName(name string) (Func, error) {
	if f, found := registry[name]; found {
		return f, nil
	}
	return nil, UnknownGenerator
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
