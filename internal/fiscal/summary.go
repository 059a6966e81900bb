package fiscal

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ProvincialSummary is the provincial view: registry totals plus fiscal
// totals over the aggregate table. The provincial execution rate is the
// population-independent weighted form, total accrued over total budgeted.
type ProvincialSummary struct {
	Municipalities         int      `json:"municipalities"`
	MunicipalitiesWithData int      `json:"municipalities_with_data"`
	Population             float64  `json:"population"`
	AreaKm2                float64  `json:"area_km2"`
	Workforce              float64  `json:"workforce"`
	RevenueCollected       float64  `json:"revenue_collected"`
	ExpenditurePaid        float64  `json:"expenditure_paid"`
	FiscalBalance          float64  `json:"fiscal_balance"`
	BalanceStatus          Status   `json:"balance_status"`
	ExecutionRate          *float64 `json:"execution_rate"`
	ExecutionStatus        Status   `json:"execution_status"`
	ExpenditurePerCapita   float64  `json:"expenditure_per_capita"`
	RevenuePerCapita       float64  `json:"revenue_per_capita"`
}

func Summarize(municipalities []Municipality, metrics map[string]*MunicipalMetrics) ProvincialSummary {
	s := ProvincialSummary{
		Municipalities:         len(municipalities),
		MunicipalitiesWithData: len(metrics),
	}
	for _, m := range municipalities {
		s.Population += m.Population
		s.AreaKm2 += m.AreaKm2
		s.Workforce += m.Workforce
	}

	var accrued, budgeted float64
	for _, m := range metrics {
		s.RevenueCollected += m.RevenueCollected
		s.ExpenditurePaid += m.ExpenditurePaid
		accrued += m.ExpenditureAccrued
		budgeted += m.ExpenditureBudgeted
	}

	s.FiscalBalance = FiscalBalance(s.RevenueCollected, s.ExpenditurePaid)
	s.BalanceStatus = BalanceStatus(s.FiscalBalance)

	rate, ok := ExecutionRate(accrued, budgeted)
	if ok {
		s.ExecutionRate = &rate
	}
	s.ExecutionStatus = ExecutionStatus(rate, ok)

	if pc, ok := PerCapita(s.ExpenditurePaid, s.Population); ok {
		s.ExpenditurePerCapita = pc
	}
	if pc, ok := PerCapita(s.RevenueCollected, s.Population); ok {
		s.RevenuePerCapita = pc
	}
	return s
}

// MunicipalityComparison is the per-municipality drill-down: the
// municipality's own figures plus its share of the provincial totals and
// per-capita deltas against the provincial average.
type MunicipalityComparison struct {
	Municipality Municipality      `json:"municipality"`
	Metrics      *MunicipalMetrics `json:"metrics"`

	ShareOfRevenue     float64 `json:"share_of_revenue"`
	ShareOfExpenditure float64 `json:"share_of_expenditure"`
	ShareOfPopulation  float64 `json:"share_of_population"`

	BalanceStatus   Status `json:"balance_status"`
	ExecutionStatus Status `json:"execution_status"`

	RevenuePerCapita          float64 `json:"revenue_per_capita"`
	ExpenditurePerCapita      float64 `json:"expenditure_per_capita"`
	RevenuePerCapitaVsAverage float64 `json:"revenue_per_capita_vs_average"`
	ExpenditurePerCapitaVsAvg float64 `json:"expenditure_per_capita_vs_average"`
	WorkforcePerThousand      float64 `json:"workforce_per_thousand"`
}

func Compare(muni Municipality, metrics *MunicipalMetrics, provincial ProvincialSummary) MunicipalityComparison {
	c := MunicipalityComparison{Municipality: muni, Metrics: metrics}

	var revenue, expenditure float64
	if metrics != nil {
		revenue = metrics.RevenueCollected
		expenditure = metrics.ExpenditurePaid
		c.BalanceStatus = BalanceStatus(metrics.FiscalBalance)
		if metrics.ExecutionRate != nil {
			c.ExecutionStatus = ExecutionStatus(*metrics.ExecutionRate, true)
		} else {
			c.ExecutionStatus = ExecutionStatus(0, false)
		}
	} else {
		c.BalanceStatus = BalanceStatus(0)
		c.ExecutionStatus = ExecutionStatus(0, false)
	}

	if share, ok := shareOf(revenue, provincial.RevenueCollected); ok {
		c.ShareOfRevenue = share
	}
	if share, ok := shareOf(expenditure, provincial.ExpenditurePaid); ok {
		c.ShareOfExpenditure = share
	}
	if share, ok := shareOf(muni.Population, provincial.Population); ok {
		c.ShareOfPopulation = share
	}

	if pc, ok := PerCapita(revenue, muni.Population); ok {
		c.RevenuePerCapita = pc
		if provincial.RevenuePerCapita > 0 {
			c.RevenuePerCapitaVsAverage = pc/provincial.RevenuePerCapita - 1
		}
	}
	if pc, ok := PerCapita(expenditure, muni.Population); ok {
		c.ExpenditurePerCapita = pc
		if provincial.ExpenditurePerCapita > 0 {
			c.ExpenditurePerCapitaVsAvg = pc/provincial.ExpenditurePerCapita - 1
		}
	}
	if perThousand, ok := PerCapita(muni.Workforce*1000, muni.Population); ok {
		c.WorkforcePerThousand = perThousand
	}
	return c
}

func shareOf(part, total float64) (float64, bool) {
	if total <= 0 {
		return 0, false
	}
	return part / total, true
}

// RankedMunicipality is one entry of a metric ranking.
type RankedMunicipality struct {
	Municipality Municipality `json:"municipality"`
	Value        float64      `json:"value"`
}

// TopByMetric ranks municipalities by a metric under a normalization mode
// and returns the top n. Municipalities with no aggregate row rank only for
// registry metrics (population, workforce).
func TopByMetric(municipalities []Municipality, metrics map[string]*MunicipalMetrics, metric Metric, mode Mode, n int) []RankedMunicipality {
	registryMetric := metric == MetricPopulation || metric == MetricWorkforce

	ranked := make([]RankedMunicipality, 0, len(municipalities))
	for _, muni := range municipalities {
		row := metrics[muni.ID]
		if row == nil && !registryMetric {
			continue
		}
		ranked = append(ranked, RankedMunicipality{
			Municipality: muni,
			Value:        MetricValue(metric, mode, row, muni),
		})
	}

	sort.Slice(ranked, func(i, j int) bool { return ranked[i].Value > ranked[j].Value })
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// DistributionSummary describes how a metric distributes across the
// municipalities that reported data.
type DistributionSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

func Distribution(municipalities []Municipality, metrics map[string]*MunicipalMetrics, metric Metric, mode Mode) DistributionSummary {
	var values []float64
	for _, muni := range municipalities {
		row := metrics[muni.ID]
		if row == nil {
			continue
		}
		values = append(values, MetricValue(metric, mode, row, muni))
	}
	if len(values) == 0 {
		return DistributionSummary{}
	}

	sort.Float64s(values)
	summary := DistributionSummary{
		Count:  len(values),
		Mean:   stat.Mean(values, nil),
		Median: stat.Quantile(0.5, stat.Empirical, values, nil),
		Min:    values[0],
		Max:    values[len(values)-1],
	}
	if len(values) > 1 {
		summary.StdDev = stat.StdDev(values, nil)
	}
	return summary
}
