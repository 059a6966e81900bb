package fiscal

// Mode selects how an aggregated absolute value is rescaled for
// comparative display.
type Mode string

const (
	ModeAbsolute  Mode = "absoluto"
	ModePerCapita Mode = "per_capita"
	ModePerArea   Mode = "por_km2"
	ModeProjected Mode = "proyectado"
)

// ParseMode maps a textual mode to a known Mode, defaulting to absolute.
func ParseMode(raw string) Mode {
	switch Mode(raw) {
	case ModePerCapita, ModePerArea, ModeProjected:
		return Mode(raw)
	default:
		return ModeAbsolute
	}
}

// Metric names a displayable column of the aggregate table or the base
// registry.
type Metric string

const (
	MetricRevenueCollected Metric = "revenue_collected"
	MetricExpenditurePaid  Metric = "expenditure_paid"
	MetricFiscalBalance    Metric = "fiscal_balance"
	MetricExecutionRate    Metric = "execution_rate"
	MetricPopulation       Metric = "population"
	MetricWorkforce        Metric = "workforce"
)

// MetricSpec describes how a metric is labeled and formatted for display.
type MetricSpec struct {
	Label       string `json:"label"`
	Format      string `json:"format"` // "money" | "percent" | "number"
	Description string `json:"description"`
}

var metricSpecs = map[Metric]MetricSpec{
	MetricRevenueCollected: {Label: "Recursos Percibidos", Format: "money", Description: "Total de recursos percibidos"},
	MetricExpenditurePaid:  {Label: "Gastos Pagados", Format: "money", Description: "Total de gastos pagados"},
	MetricFiscalBalance:    {Label: "Balance Fiscal", Format: "money", Description: "Recursos - Gastos"},
	MetricExecutionRate:    {Label: "Tasa de Ejecución", Format: "percent", Description: "Devengado / Vigente"},
	MetricPopulation:       {Label: "Población 2022", Format: "number", Description: "Población censo 2022"},
	MetricWorkforce:        {Label: "Trabajadores Municipales", Format: "number", Description: "Personal municipal"},
}

// ParseMetric maps a textual metric name to a known Metric, defaulting to
// collected revenue.
func ParseMetric(raw string) Metric {
	if _, ok := metricSpecs[Metric(raw)]; ok {
		return Metric(raw)
	}
	return MetricRevenueCollected
}

// Spec returns the display spec for a metric.
func (m Metric) Spec() MetricSpec {
	return metricSpecs[m]
}

// MetricValue resolves a metric for one municipality under a normalization
// mode. Per-capita and per-area are no-ops when population or area is not
// positive. Projected substitutes the pre-computed projected column when
// one exists for the metric and otherwise falls back to the absolute value.
// A nil metrics row reads as zero throughout.
func MetricValue(metric Metric, mode Mode, m *MunicipalMetrics, muni Municipality) float64 {
	var value float64

	switch metric {
	case MetricPopulation:
		value = muni.Population
	case MetricWorkforce:
		value = muni.Workforce
	default:
		if m == nil {
			return 0
		}
		switch metric {
		case MetricRevenueCollected:
			value = m.RevenueCollected
			if mode == ModeProjected {
				value = m.RevenueCollectedProjected
			}
		case MetricExpenditurePaid:
			value = m.ExpenditurePaid
			if mode == ModeProjected {
				value = m.ExpenditurePaidProjected
			}
		case MetricFiscalBalance:
			value = m.FiscalBalance
			if mode == ModeProjected {
				value = m.FiscalBalanceProjected
			}
		case MetricExecutionRate:
			rate := m.ExecutionRate
			if mode == ModeProjected && m.ExecutionRateProjected != nil {
				rate = m.ExecutionRateProjected
			}
			if rate != nil {
				value = *rate
			}
		}
	}

	switch mode {
	case ModePerCapita:
		if pc, ok := PerCapita(value, muni.Population); ok {
			return pc
		}
	case ModePerArea:
		if muni.AreaKm2 > 0 {
			return value / muni.AreaKm2
		}
	}
	return value
}
