package geo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGeoJSON = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"properties": {"id_georef": "6014.0", "nombre": "Adolfo Alsina"},
			"geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,0]]]}
		},
		{
			"type": "Feature",
			"properties": {"in1": "06021", "nombre": "Alberti"},
			"geometry": {"type": "Polygon", "coordinates": [[[2,2],[3,2],[3,3],[2,2]]]}
		},
		{
			"type": "Feature",
			"properties": {"id": 82021, "nombre": "Otra Provincia"},
			"geometry": {"type": "Polygon", "coordinates": [[[4,4],[5,4],[5,5],[4,4]]]}
		},
		{
			"type": "Feature",
			"properties": {"nombre": "Sin Identificador"},
			"geometry": null
		}
	]
}`

func TestParseBoundaries(t *testing.T) {
	fc, err := ParseBoundaries(strings.NewReader(sampleGeoJSON), BuenosAiresPrefix)
	require.NoError(t, err)

	// Out-of-province and unidentifiable features are dropped
	assert.Equal(t, 2, fc.Len())

	f, ok := fc.Lookup("06014")
	require.True(t, ok)
	assert.Equal(t, "06014", f.Georef)
	assert.Equal(t, "Adolfo Alsina", f.Properties["nombre"])

	// Lookup normalizes raw registry spellings
	_, ok = fc.Lookup("6021.0")
	assert.True(t, ok)

	_, ok = fc.Lookup("82021")
	assert.False(t, ok)
}

func TestParseBoundariesNoPrefix(t *testing.T) {
	fc, err := ParseBoundaries(strings.NewReader(sampleGeoJSON), "")
	require.NoError(t, err)

	// Without a prefix only the unidentifiable feature is dropped
	assert.Equal(t, 3, fc.Len())
	_, ok := fc.Lookup("82021")
	assert.True(t, ok)
}

func TestParseBoundariesInvalidJSON(t *testing.T) {
	_, err := ParseBoundaries(strings.NewReader("{not json"), BuenosAiresPrefix)
	assert.Error(t, err)
}

func TestCoverage(t *testing.T) {
	fc, err := ParseBoundaries(strings.NewReader(sampleGeoJSON), BuenosAiresPrefix)
	require.NoError(t, err)

	matched, missing := fc.Coverage([]string{"6014.0", "06021", "06999"})
	assert.Equal(t, 2, matched)
	assert.Equal(t, []string{"06999"}, missing)
}
