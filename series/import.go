package series

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/epiclabs-io/elastic"
	log "github.com/sirupsen/logrus"
)

var MissingCoordinate = errors.New("point missing x or y")

type datasetFile struct {
	Name          string                   `json:"name"`
	Mode          string                   `json:"mode"`
	GradientLines bool                     `json:"gradientLines"`
	ConnectDots   bool                     `json:"connectDots"`
	ColorFeature  string                   `json:"colorFeature"`
	Points        []map[string]interface{} `json:"points"`
}

// LoadDataset reads a series from a JSON dataset file. Point fields arrive
// loose-typed (ints, floats, numeric strings); each one is coerced into a
// float64 before it lands in a Point.
func LoadDataset(filePath string) (*Config, error) {
	f, fileErr := os.Open(filePath)
	if fileErr != nil {
		return nil, fileErr
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.WithError(closeErr).Warn("Error closing dataset file")
		}
	}()
	var raw datasetFile
	decoder := json.NewDecoder(f)
	if decodeErr := decoder.Decode(&raw); decodeErr != nil {
		return nil, decodeErr
	}
	mode, _ := ModeByName(raw.Mode)
	cfg := &Config{
		Name:          raw.Name,
		Mode:          mode,
		GradientLines: raw.GradientLines,
		ConnectDots:   raw.ConnectDots,
		Visible:       true,
		ShowInLegend:  true,
	}
	if raw.ColorFeature != "" {
		cfg.Marker = &MarkerStyle{ColorFeature: raw.ColorFeature}
	}
	for _, rawPoint := range raw.Points {
		point, err := decodePoint(rawPoint)
		if err != nil {
			return nil, err
		}
		cfg.Data = append(cfg.Data, point)
	}
	return cfg, nil
}

func decodePoint(raw map[string]interface{}) (Point, error) {
	var point Point
	if _, found := raw["x"]; !found {
		return point, MissingCoordinate
	}
	if _, found := raw["y"]; !found {
		return point, MissingCoordinate
	}
	for key, value := range raw {
		switch key {
		case "x":
			if err := elastic.Set(&point.X, value); err != nil {
				return point, err
			}
		case "y":
			if err := elastic.Set(&point.Y, value); err != nil {
				return point, err
			}
		case "z":
			if value == nil {
				continue
			}
			var z float64
			if err := elastic.Set(&z, value); err != nil {
				return point, err
			}
			point.Z = &z
		case "text":
			if err := elastic.Set(&point.Text, value); err != nil {
				return point, err
			}
		case "error_x":
			if value == nil {
				continue
			}
			var errX float64
			if err := elastic.Set(&errX, value); err != nil {
				return point, err
			}
			point.ErrorX = &errX
		case "error_y":
			if value == nil {
				continue
			}
			var errY float64
			if err := elastic.Set(&errY, value); err != nil {
				return point, err
			}
			point.ErrorY = &errY
		default:
			if value == nil {
				continue
			}
			var extra float64
			if err := elastic.Set(&extra, value); err != nil {
				return point, err
			}
			if point.Extra == nil {
				point.Extra = map[string]float64{}
			}
			point.Extra[key] = extra
		}
	}
	return point, nil
}
