package theme

import "testing"

func TestPreset(t *testing.T) {
	th, found := Preset("dark")
	if !found {
		t.Fatal("dark preset missing")
	}
	if !th.Dark {
		t.Fatal("dark preset not flagged dark")
	}
	if _, found := Preset("sepia"); found {
		t.Fatal("unexpected preset")
	}
}

func TestSeriesColorCycles(t *testing.T) {
	count := len(Light.SeriesColors)
	if Light.SeriesColor(0) != Light.SeriesColor(count) {
		t.Fatal("palette does not cycle")
	}
	if Light.SeriesColor(-1) != Light.SeriesColors[0] {
		t.Fatal("negative index not clamped")
	}
}

func TestScales(t *testing.T) {
	for _, name := range ScaleNames() {
		stops, found := Scale(name)
		if !found {
			t.Fatal("missing scale", name)
		}
		if len(stops) < 2 {
			t.Fatal("scale too short:", name)
		}
		if stops[0].Pos != 0 || stops[len(stops)-1].Pos != 1 {
			t.Fatal("scale endpoints not normalized:", name)
		}
	}
	if _, found := Scale("NoSuchScale"); found {
		t.Fatal("unexpected scale")
	}
}
