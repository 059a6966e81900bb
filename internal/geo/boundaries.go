package geo

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/farxc/atlas-fiscal/internal/fiscal"
)

// Property keys under which the georef code has been seen across boundary
// file vintages. Checked in order; first non-empty value wins.
var georefKeys = []string{"id_georef", "in1", "IN1", "id", "ID"}

// BuenosAiresPrefix is the INDEC province code for Buenos Aires. Boundary
// features whose georef does not start with it belong to other provinces
// and are dropped.
const BuenosAiresPrefix = "06"

// Feature is one municipal boundary. Geometry is kept as raw JSON: the
// backend never interprets coordinates, it only re-serializes them for the
// map layer.
type Feature struct {
	Type       string          `json:"type"`
	Georef     string          `json:"-"`
	Properties map[string]any  `json:"properties"`
	Geometry   json.RawMessage `json:"geometry"`
}

// FeatureCollection is a filtered, georef-indexed boundary set.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`

	byGeoref map[string]*Feature
}

type rawCollection struct {
	Type     string `json:"type"`
	Features []struct {
		Type       string          `json:"type"`
		Properties map[string]any  `json:"properties"`
		Geometry   json.RawMessage `json:"geometry"`
	} `json:"features"`
}

// LoadBoundaries reads a GeoJSON boundary file, normalizes every feature's
// georef and drops features outside the given province prefix. Features
// with no recognizable georef property are dropped too.
func LoadBoundaries(path, provincePrefix string) (*FeatureCollection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open boundary file: %w", err)
	}
	defer f.Close()

	return ParseBoundaries(f, provincePrefix)
}

// ParseBoundaries decodes and filters a GeoJSON stream.
func ParseBoundaries(r io.Reader, provincePrefix string) (*FeatureCollection, error) {
	var raw rawCollection
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode boundary geojson: %w", err)
	}

	fc := &FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]Feature, 0, len(raw.Features)),
		byGeoref: make(map[string]*Feature),
	}

	for _, rf := range raw.Features {
		georef := extractGeoref(rf.Properties)
		if georef == "" {
			continue
		}
		if provincePrefix != "" && !strings.HasPrefix(georef, provincePrefix) {
			continue
		}
		fc.Features = append(fc.Features, Feature{
			Type:       rf.Type,
			Georef:     georef,
			Properties: rf.Properties,
			Geometry:   rf.Geometry,
		})
	}

	for i := range fc.Features {
		fc.byGeoref[fc.Features[i].Georef] = &fc.Features[i]
	}

	return fc, nil
}

// Lookup returns the boundary for a georef, normalizing the key first so
// raw registry values ("123.0") match.
func (fc *FeatureCollection) Lookup(georef string) (*Feature, bool) {
	f, ok := fc.byGeoref[fiscal.NormalizeGeoref(georef)]
	return f, ok
}

// Len returns the number of boundary features kept after filtering.
func (fc *FeatureCollection) Len() int {
	return len(fc.Features)
}

// Coverage reports how many of the given georefs have a boundary, and
// which ones are missing. The ETL uses it to flag registry rows that will
// not render on the map.
func (fc *FeatureCollection) Coverage(georefs []string) (matched int, missing []string) {
	for _, g := range georefs {
		if _, ok := fc.Lookup(g); ok {
			matched++
		} else {
			missing = append(missing, fiscal.NormalizeGeoref(g))
		}
	}
	return matched, missing
}

func extractGeoref(props map[string]any) string {
	for _, key := range georefKeys {
		v, ok := props[key]
		if !ok {
			continue
		}
		var s string
		switch val := v.(type) {
		case string:
			s = val
		case float64:
			s = fmt.Sprintf("%.0f", val)
		default:
			continue
		}
		if norm := fiscal.NormalizeGeoref(s); norm != strings.Repeat("0", fiscal.GeorefLength) {
			return norm
		}
	}
	return ""
}
