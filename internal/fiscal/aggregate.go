package fiscal

import (
	"math"
	"sort"
	"strings"
)

// Revenue bucket classification. Principal categories double-count
// overlapping sub-ledgers in the source data, so their sums are halved
// before entering the totals; extra-budgetary entries are additive without
// adjustment. Matching is case-insensitive on trimmed category text.
var principalCategories = map[string]bool{
	"recursos de capital":     true,
	"ingresos corrientes":     true,
	"fuentes financieras":     true,
	"de libre disponibilidad": true,
	"afectados":               true,
}

var extraBudgetaryCategories = map[string]bool{
	"extrapresupuestario":  true,
	"extrapresupuestarios": true,
}

type bucket int

const (
	bucketPrincipal bucket = iota
	bucketExtra
	bucketUnclassified
)

func classifyCategory(category string) bucket {
	normalized := strings.ToLower(strings.TrimSpace(category))
	switch {
	case principalCategories[normalized]:
		return bucketPrincipal
	case extraBudgetaryCategories[normalized]:
		return bucketExtra
	default:
		return bucketUnclassified
	}
}

// UnclassifiedTotal accumulates revenue that fell outside the known
// category sets and therefore into no bucket. A new upstream label would
// otherwise vanish from the totals with no signal at all.
type UnclassifiedTotal struct {
	Items      int      `json:"items"`
	Budgeted   float64  `json:"budgeted"`
	Accrued    float64  `json:"accrued"`
	Collected  float64  `json:"collected"`
	Categories []string `json:"categories"`
}

// AggregateResult is the output of one aggregation run: one metrics row per
// municipality that had at least one matching line item, keyed by
// municipality identifier. A municipality absent from the map uploaded no
// data; one present with zero columns uploaded data summing to zero.
type AggregateResult struct {
	Metrics      map[string]*MunicipalMetrics `json:"metrics"`
	Unclassified UnclassifiedTotal            `json:"unclassified"`
}

type docInfo struct {
	municipalityID string
	factor         float64
}

// revenueSums accumulates one bucket's amounts for one municipality.
type revenueSums struct {
	budgeted           float64
	accrued            float64
	collected          float64
	accruedProjected   float64
	collectedProjected float64
}

type expenditureSums struct {
	budgeted         float64
	accrued          float64
	paid             float64
	accruedProjected float64
	paidProjected    float64
}

// Aggregate joins revenue and expenditure line items to municipalities via
// their owning documents, applies the category aggregation formula
// (principal/2 + extra) and the period projection, and computes the derived
// columns. Line items referencing an unknown document are dropped; missing
// amounts were already coerced to zero upstream.
func Aggregate(docs []Document, revenues []RevenueItem, expenditures []ExpenditureItem) AggregateResult {
	index := make(map[string]docInfo, len(docs))
	for _, d := range docs {
		index[d.ID] = docInfo{
			municipalityID: d.MunicipalityID,
			factor:         ProjectionFactor(d.Period),
		}
	}

	principal := make(map[string]*revenueSums)
	extra := make(map[string]*revenueSums)
	spending := make(map[string]*expenditureSums)
	unclassified := UnclassifiedTotal{}
	unclassifiedSeen := make(map[string]bool)

	for _, item := range revenues {
		doc, ok := index[item.DocumentID]
		if !ok {
			continue
		}

		budgeted := sanitize(item.Budgeted)
		accrued := sanitize(item.Accrued)
		collected := sanitize(item.Collected)

		var target map[string]*revenueSums
		switch classifyCategory(item.Category) {
		case bucketPrincipal:
			target = principal
		case bucketExtra:
			target = extra
		default:
			unclassified.Items++
			unclassified.Budgeted += budgeted
			unclassified.Accrued += accrued
			unclassified.Collected += collected
			name := strings.ToLower(strings.TrimSpace(item.Category))
			if !unclassifiedSeen[name] {
				unclassifiedSeen[name] = true
				unclassified.Categories = append(unclassified.Categories, name)
			}
			continue
		}

		sums := target[doc.municipalityID]
		if sums == nil {
			sums = &revenueSums{}
			target[doc.municipalityID] = sums
		}
		sums.budgeted += budgeted
		sums.accrued += accrued
		sums.collected += collected
		sums.accruedProjected += accrued * doc.factor
		sums.collectedProjected += collected * doc.factor
	}

	for _, item := range expenditures {
		doc, ok := index[item.DocumentID]
		if !ok {
			continue
		}

		sums := spending[doc.municipalityID]
		if sums == nil {
			sums = &expenditureSums{}
			spending[doc.municipalityID] = sums
		}
		sums.budgeted += sanitize(item.Budgeted)
		sums.accrued += sanitize(item.Accrued)
		sums.paid += sanitize(item.Paid)
		sums.accruedProjected += sanitize(item.Accrued) * doc.factor
		sums.paidProjected += sanitize(item.Paid) * doc.factor
	}

	metrics := make(map[string]*MunicipalMetrics)
	row := func(municipalityID string) *MunicipalMetrics {
		m := metrics[municipalityID]
		if m == nil {
			m = &MunicipalMetrics{MunicipalityID: municipalityID}
			metrics[municipalityID] = m
		}
		return m
	}

	for id, p := range principal {
		m := row(id)
		m.RevenueBudgeted += p.budgeted / 2
		m.RevenueAccrued += p.accrued / 2
		m.RevenueCollected += p.collected / 2
		m.RevenueAccruedProjected += p.accruedProjected / 2
		m.RevenueCollectedProjected += p.collectedProjected / 2
	}
	for id, e := range extra {
		m := row(id)
		m.RevenueBudgeted += e.budgeted
		m.RevenueAccrued += e.accrued
		m.RevenueCollected += e.collected
		m.RevenueAccruedProjected += e.accruedProjected
		m.RevenueCollectedProjected += e.collectedProjected
	}
	for id, s := range spending {
		m := row(id)
		m.ExpenditureBudgeted = s.budgeted
		m.ExpenditureAccrued = s.accrued
		m.ExpenditurePaid = s.paid
		m.ExpenditureAccruedProjected = s.accruedProjected
		m.ExpenditurePaidProjected = s.paidProjected
	}

	for _, m := range metrics {
		m.FiscalBalance = FiscalBalance(m.RevenueCollected, m.ExpenditurePaid)
		m.FiscalBalanceProjected = FiscalBalance(m.RevenueCollectedProjected, m.ExpenditurePaidProjected)

		if rate, ok := ExecutionRate(m.ExpenditureAccrued, m.ExpenditureBudgeted); ok {
			m.ExecutionRate = &rate
		}
		if rate, ok := ExecutionRate(m.ExpenditureAccruedProjected, m.ExpenditureBudgeted); ok {
			m.ExecutionRateProjected = &rate
		}
	}

	sort.Strings(unclassified.Categories)
	return AggregateResult{Metrics: metrics, Unclassified: unclassified}
}

// sanitize coerces NaN and infinities from upstream float conversions to
// zero, matching the coerce-with-default policy for malformed amounts.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
