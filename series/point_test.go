package series

import "testing"

func TestFeatureByNameZ(t *testing.T) {
	feature := FeatureByName("z")
	withZ := Point{X: 1, Y: 2, Z: Float(3)}
	if value, found := feature(&withZ); !found || value != 3 {
		t.Fatal("expected z=3, got", value, found)
	}
	withoutZ := Point{X: 1, Y: 2}
	if _, found := feature(&withoutZ); found {
		t.Fatal("nil z reported as present")
	}
}

func TestFeatureByNameCoordinates(t *testing.T) {
	point := Point{X: -4, Y: 9}
	if value, found := FeatureByName("x")(&point); !found || value != -4 {
		t.Fatal("x accessor failed")
	}
	if value, found := FeatureByName("y")(&point); !found || value != 9 {
		t.Fatal("y accessor failed")
	}
}

func TestFeatureByNameExtra(t *testing.T) {
	feature := FeatureByName("temperature")
	point := Point{X: 0, Y: 0, Extra: map[string]float64{"temperature": 451}}
	if value, found := feature(&point); !found || value != 451 {
		t.Fatal("extra field accessor failed")
	}
	bare := Point{X: 0, Y: 0}
	if _, found := feature(&bare); found {
		t.Fatal("missing extra field reported as present")
	}
}

func TestModeFlags(t *testing.T) {
	if !Lines.HasLines() || Lines.HasMarkers() {
		t.Fatal("lines mode flags wrong")
	}
	if Markers.HasLines() || !Markers.HasMarkers() {
		t.Fatal("markers mode flags wrong")
	}
	if !LinesMarkers.HasLines() || !LinesMarkers.HasMarkers() {
		t.Fatal("lines+markers mode flags wrong")
	}
	if LinesMarkers.String() != "lines+markers" {
		t.Fatal("unexpected mode string:", LinesMarkers.String())
	}
}

func TestModeByName(t *testing.T) {
	if mode, ok := ModeByName("markers"); !ok || mode != Markers {
		t.Fatal("markers not parsed")
	}
	if _, ok := ModeByName("sparkles"); ok {
		t.Fatal("invalid mode accepted")
	}
	if mode, ok := ModeByName(""); !ok || mode != LinesMarkers {
		t.Fatal("empty mode should default to lines+markers")
	}
}

func TestTotalPoints(t *testing.T) {
	configs := []Config{
		{Name: "a", Data: make([]Point, 3)},
		{Name: "b", Data: make([]Point, 5), Visible: true},
		{Name: "c"},
	}
	if total := TotalPoints(configs); total != 8 {
		t.Fatal("expected 8 points, got", total)
	}
}
