package fiscal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMunicipalities() []Municipality {
	return []Municipality{
		{ID: "m1", Name: "Alfa", Population: 1000, AreaKm2: 100, Workforce: 50},
		{ID: "m2", Name: "Beta", Population: 3000, AreaKm2: 300, Workforce: 90},
		{ID: "m3", Name: "Gama", Population: 500, AreaKm2: 50, Workforce: 10},
	}
}

func testMetrics() map[string]*MunicipalMetrics {
	rate1, rate2 := 0.9, 0.4
	return map[string]*MunicipalMetrics{
		"m1": {
			MunicipalityID:      "m1",
			RevenueCollected:    1000,
			ExpenditurePaid:     800,
			ExpenditureAccrued:  900,
			ExpenditureBudgeted: 1000,
			FiscalBalance:       200,
			ExecutionRate:       &rate1,
		},
		"m2": {
			MunicipalityID:      "m2",
			RevenueCollected:    3000,
			ExpenditurePaid:     3200,
			ExpenditureAccrued:  400,
			ExpenditureBudgeted: 1000,
			FiscalBalance:       -200,
			ExecutionRate:       &rate2,
		},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(testMunicipalities(), testMetrics())

	assert.Equal(t, 3, s.Municipalities)
	assert.Equal(t, 2, s.MunicipalitiesWithData)
	assert.InDelta(t, 4500, s.Population, 1e-9)
	assert.InDelta(t, 4000, s.RevenueCollected, 1e-9)
	assert.InDelta(t, 4000, s.ExpenditurePaid, 1e-9)
	assert.InDelta(t, 0, s.FiscalBalance, 1e-9)
	assert.Equal(t, "Equilibrado", s.BalanceStatus.Label)

	// Weighted, not averaged: (900+400)/(1000+1000)
	require.NotNil(t, s.ExecutionRate)
	assert.InDelta(t, 0.65, *s.ExecutionRate, 1e-9)
	assert.Equal(t, "Media", s.ExecutionStatus.Label)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, map[string]*MunicipalMetrics{})

	assert.Zero(t, s.Municipalities)
	assert.Nil(t, s.ExecutionRate)
	assert.Equal(t, "Sin datos", s.ExecutionStatus.Label)
}

func TestCompare(t *testing.T) {
	municipalities := testMunicipalities()
	metrics := testMetrics()
	provincial := Summarize(municipalities, metrics)

	c := Compare(municipalities[0], metrics["m1"], provincial)

	assert.InDelta(t, 0.25, c.ShareOfRevenue, 1e-9)
	assert.InDelta(t, 0.2, c.ShareOfExpenditure, 1e-9)
	assert.InDelta(t, 1000.0/4500, c.ShareOfPopulation, 1e-9)
	assert.InDelta(t, 1.0, c.RevenuePerCapita, 1e-9)
	assert.Equal(t, "Superávit", c.BalanceStatus.Label)
	assert.Equal(t, "Óptima", c.ExecutionStatus.Label)
	assert.InDelta(t, 50, c.WorkforcePerThousand, 1e-9)
}

func TestCompareWithoutMetrics(t *testing.T) {
	municipalities := testMunicipalities()
	provincial := Summarize(municipalities, testMetrics())

	c := Compare(municipalities[2], nil, provincial)

	assert.Nil(t, c.Metrics)
	assert.Zero(t, c.ShareOfRevenue)
	assert.Equal(t, "Sin datos", c.ExecutionStatus.Label)
}

func TestTopByMetric(t *testing.T) {
	municipalities := testMunicipalities()
	metrics := testMetrics()

	top := TopByMetric(municipalities, metrics, MetricRevenueCollected, ModeAbsolute, 10)
	require.Len(t, top, 2, "municipalities without data do not rank")
	assert.Equal(t, "m2", top[0].Municipality.ID)
	assert.Equal(t, "m1", top[1].Municipality.ID)

	top = TopByMetric(municipalities, metrics, MetricRevenueCollected, ModeAbsolute, 1)
	require.Len(t, top, 1)
	assert.Equal(t, "m2", top[0].Municipality.ID)
}

func TestTopByMetricRegistryMetric(t *testing.T) {
	// Population ranks every municipality, data or not
	top := TopByMetric(testMunicipalities(), testMetrics(), MetricPopulation, ModeAbsolute, 10)
	require.Len(t, top, 3)
	assert.Equal(t, "m2", top[0].Municipality.ID)
	assert.Equal(t, "m3", top[2].Municipality.ID)
}

func TestDistribution(t *testing.T) {
	d := Distribution(testMunicipalities(), testMetrics(), MetricRevenueCollected, ModeAbsolute)

	assert.Equal(t, 2, d.Count)
	assert.InDelta(t, 2000, d.Mean, 1e-9)
	assert.InDelta(t, 1000, d.Min, 1e-9)
	assert.InDelta(t, 3000, d.Max, 1e-9)
	assert.Greater(t, d.StdDev, 0.0)
}

func TestDistributionSingleValue(t *testing.T) {
	metrics := map[string]*MunicipalMetrics{"m1": {RevenueCollected: 1000}}
	d := Distribution(testMunicipalities(), metrics, MetricRevenueCollected, ModeAbsolute)

	assert.Equal(t, 1, d.Count)
	assert.InDelta(t, 1000, d.Mean, 1e-9)
	// A single sample has no spread; it must not poison JSON output with NaN
	assert.Zero(t, d.StdDev)
}

func TestDistributionEmpty(t *testing.T) {
	d := Distribution(testMunicipalities(), map[string]*MunicipalMetrics{}, MetricRevenueCollected, ModeAbsolute)
	assert.Zero(t, d.Count)
}
