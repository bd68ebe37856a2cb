package series

// Point is one sample in a series. X and Y are always present and finite;
// every other field is optional and only consulted when a marker color
// feature or error bar configuration names it. Points are never mutated
// once placed in a series.
type Point struct {
	X      float64
	Y      float64
	Z      *float64
	Text   string
	ErrorX *float64
	ErrorY *float64
	Extra  map[string]float64
}

// Feature extracts one numeric field from a point. The bool result is
// false when the point does not carry the field.
type Feature func(p *Point) (float64, bool)

// FeatureByName resolves a field name to a typed accessor once, so chunk
// loops never do string-keyed lookups per point. Unknown names fall through
// to the Extra map.
func FeatureByName(name string) Feature {
	switch name {
	case "x":
		return func(p *Point) (float64, bool) { return p.X, true }
	case "y":
		return func(p *Point) (float64, bool) { return p.Y, true }
	case "z":
		return func(p *Point) (float64, bool) {
			if p.Z == nil {
				return 0, false
			}
			return *p.Z, true
		}
	case "error_x":
		return func(p *Point) (float64, bool) {
			if p.ErrorX == nil {
				return 0, false
			}
			return *p.ErrorX, true
		}
	case "error_y":
		return func(p *Point) (float64, bool) {
			if p.ErrorY == nil {
				return 0, false
			}
			return *p.ErrorY, true
		}
	default:
		return func(p *Point) (float64, bool) {
			if p.Extra == nil {
				return 0, false
			}
			value, found := p.Extra[name]
			return value, found
		}
	}
}

func Float(value float64) *float64 {
	return &value
}
