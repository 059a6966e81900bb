package fiscal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModePerCapita, ParseMode("per_capita"))
	assert.Equal(t, ModePerArea, ParseMode("por_km2"))
	assert.Equal(t, ModeProjected, ParseMode("proyectado"))
	assert.Equal(t, ModeAbsolute, ParseMode("absoluto"))
	assert.Equal(t, ModeAbsolute, ParseMode(""))
	assert.Equal(t, ModeAbsolute, ParseMode("something-else"))
}

func TestParseMetric(t *testing.T) {
	assert.Equal(t, MetricExpenditurePaid, ParseMetric("expenditure_paid"))
	assert.Equal(t, MetricPopulation, ParseMetric("population"))
	assert.Equal(t, MetricRevenueCollected, ParseMetric(""))
	assert.Equal(t, MetricRevenueCollected, ParseMetric("unknown"))
}

func TestMetricSpecs(t *testing.T) {
	spec := MetricExecutionRate.Spec()
	assert.Equal(t, "percent", spec.Format)
	assert.NotEmpty(t, spec.Label)

	assert.Equal(t, "money", MetricFiscalBalance.Spec().Format)
	assert.Equal(t, "number", MetricPopulation.Spec().Format)
}

func TestMetricValue(t *testing.T) {
	rate := 0.9
	metrics := &MunicipalMetrics{
		RevenueCollected:          1000,
		RevenueCollectedProjected: 4000,
		ExpenditurePaid:           600,
		FiscalBalance:             400,
		FiscalBalanceProjected:    1600,
		ExecutionRate:             &rate,
	}
	muni := Municipality{Population: 100, AreaKm2: 50, Workforce: 20}

	assert.InDelta(t, 1000, MetricValue(MetricRevenueCollected, ModeAbsolute, metrics, muni), 1e-9)
	assert.InDelta(t, 4000, MetricValue(MetricRevenueCollected, ModeProjected, metrics, muni), 1e-9)
	assert.InDelta(t, 10, MetricValue(MetricRevenueCollected, ModePerCapita, metrics, muni), 1e-9)
	assert.InDelta(t, 20, MetricValue(MetricRevenueCollected, ModePerArea, metrics, muni), 1e-9)
	assert.InDelta(t, 0.9, MetricValue(MetricExecutionRate, ModeAbsolute, metrics, muni), 1e-9)
	assert.InDelta(t, 100, MetricValue(MetricPopulation, ModeAbsolute, metrics, muni), 1e-9)
	assert.InDelta(t, 1600, MetricValue(MetricFiscalBalance, ModeProjected, metrics, muni), 1e-9)
}

func TestMetricValueNormalizationIsNoOpWithoutDenominator(t *testing.T) {
	metrics := &MunicipalMetrics{RevenueCollected: 1000}
	muni := Municipality{Population: 0, AreaKm2: 0}

	assert.InDelta(t, 1000, MetricValue(MetricRevenueCollected, ModePerCapita, metrics, muni), 1e-9)
	assert.InDelta(t, 1000, MetricValue(MetricRevenueCollected, ModePerArea, metrics, muni), 1e-9)
}

func TestMetricValueRegistryMetricsWithoutAggregateRow(t *testing.T) {
	muni := Municipality{Population: 5000, Workforce: 120}

	assert.InDelta(t, 5000, MetricValue(MetricPopulation, ModeAbsolute, nil, muni), 1e-9)
	assert.InDelta(t, 120, MetricValue(MetricWorkforce, ModeAbsolute, nil, muni), 1e-9)
	assert.Zero(t, MetricValue(MetricRevenueCollected, ModeAbsolute, nil, muni))
}
