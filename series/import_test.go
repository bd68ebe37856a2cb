package series

import (
	"io/ioutil"
	"os"
	"path"
	"testing"
)

const mixedDataset = `{
	"name": "mixed",
	"mode": "markers",
	"colorFeature": "z",
	"points": [
		{"x": 1, "y": 2.5, "z": 3},
		{"x": "4", "y": "5.5", "z": null, "text": "labeled"},
		{"x": 7.25, "y": 8, "spin": "0.5", "error_y": 1}
	]
}`

func writeDataset(t *testing.T, contents string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "datasets")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	filePath := path.Join(dir, "dataset.json")
	if err := ioutil.WriteFile(filePath, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return filePath
}

func TestLoadDataset(t *testing.T) {
	cfg, err := LoadDataset(writeDataset(t, mixedDataset))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "mixed" || cfg.Mode != Markers {
		t.Fatal("header fields wrong:", cfg.Name, cfg.Mode)
	}
	if !cfg.Visible || !cfg.ShowInLegend {
		t.Fatal("imported series should default to visible")
	}
	if cfg.Marker == nil || cfg.Marker.ColorFeature != "z" {
		t.Fatal("color feature not carried over")
	}
	if len(cfg.Data) != 3 {
		t.Fatal("expected 3 points, got", len(cfg.Data))
	}
	first := cfg.Data[0]
	if first.X != 1 || first.Y != 2.5 || first.Z == nil || *first.Z != 3 {
		t.Fatal("numeric coercion failed on first point")
	}
	second := cfg.Data[1]
	if second.X != 4 || second.Y != 5.5 {
		t.Fatal("string coercion failed:", second.X, second.Y)
	}
	if second.Z != nil {
		t.Fatal("null z should stay absent")
	}
	if second.Text != "labeled" {
		t.Fatal("text not decoded")
	}
	third := cfg.Data[2]
	if third.Extra["spin"] != 0.5 {
		t.Fatal("extra field not coerced:", third.Extra)
	}
	if third.ErrorY == nil || *third.ErrorY != 1 {
		t.Fatal("error_y not decoded")
	}
}

func TestLoadDatasetMissingCoordinate(t *testing.T) {
	filePath := writeDataset(t, `{"name": "broken", "points": [{"y": 1}]}`)
	if _, err := LoadDataset(filePath); err != MissingCoordinate {
		t.Fatal("expected MissingCoordinate, got", err)
	}
}

func TestLoadDatasetMissingFile(t *testing.T) {
	if _, err := LoadDataset("/does/not/exist.json"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
