package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farxc/atlas-fiscal/internal/fiscal"
)

func TestNewSelectionDefaults(t *testing.T) {
	sel := NewSelection()

	assert.False(t, sel.HasMunicipality())
	assert.Equal(t, fiscal.MetricRevenueCollected, sel.Metric)
	assert.Equal(t, fiscal.ModeAbsolute, sel.Mode)
	assert.Empty(t, sel.DocumentID)
}

func TestSelectMunicipalityClearsDocument(t *testing.T) {
	sel := NewSelection()
	sel.SelectMunicipality(fiscal.Municipality{ID: "m1", Name: "Alfa", Georef: "06014"})
	sel.SelectDocument("d1")
	sel.Jurisdiction = "Salud"

	sel.SelectMunicipality(fiscal.Municipality{ID: "m2", Name: "Beta", Georef: "06021"})

	assert.Equal(t, "m2", sel.MunicipalityID)
	assert.Equal(t, "Beta", sel.MunicipalityName)
	assert.Empty(t, sel.DocumentID)
	assert.Empty(t, sel.Jurisdiction)
}

func TestSelectSameMunicipalityKeepsDocument(t *testing.T) {
	sel := NewSelection()
	sel.SelectMunicipality(fiscal.Municipality{ID: "m1", Name: "Alfa"})
	sel.SelectDocument("d1")

	sel.SelectMunicipality(fiscal.Municipality{ID: "m1", Name: "Alfa"})

	assert.Equal(t, "d1", sel.DocumentID)
}

func TestSelectDocumentResetsDrilldown(t *testing.T) {
	sel := NewSelection()
	sel.SelectDocument("d1")
	sel.Jurisdiction = "Salud"
	sel.Program = "Vacunación"

	sel.SelectDocument("d2")

	assert.Equal(t, "d2", sel.DocumentID)
	assert.Empty(t, sel.Jurisdiction)
	assert.Empty(t, sel.Program)
}

func TestReset(t *testing.T) {
	sel := NewSelection()
	sel.SelectMunicipality(fiscal.Municipality{ID: "m1"})
	sel.Metric = fiscal.MetricExecutionRate
	sel.Mode = fiscal.ModeProjected

	sel.Reset()

	assert.False(t, sel.HasMunicipality())
	assert.Equal(t, fiscal.MetricRevenueCollected, sel.Metric)
	assert.Equal(t, fiscal.ModeAbsolute, sel.Mode)
}
