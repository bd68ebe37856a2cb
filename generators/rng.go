package generators

import (
	"gonum.org/v1/gonum/mathext/prng"
)

type rng interface {
	Uint64() uint64
}

func newRng(seed uint64) rng {
	if seed == 0 {
		seed = 1
	}
	return prng.NewXoshiro256starstar(seed)
}

// unitFloat maps the top 53 bits of a random word onto [0,1).
func unitFloat(r rng) float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// symmetricFloat returns a uniform value in [-1,1).
func symmetricFloat(r rng) float64 {
	return unitFloat(r)*2 - 1
}
