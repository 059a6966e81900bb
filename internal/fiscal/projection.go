package fiscal

import "strings"

// Projection factors extrapolate a partial-period figure to a full-year
// estimate. Budgeted amounts are never projected, only accrued/collected
// (revenue) and accrued/paid (expenditure).
const (
	FactorQ1     = 4.0
	FactorQ2     = 2.0
	FactorQ3     = 1.5
	FactorQ4     = 1.0
	FactorAnnual = 1.0
)

var periodSynonyms = map[string]float64{
	"Q1": FactorQ1, "1Q": FactorQ1, "1": FactorQ1,
	"1ER TRIMESTRE": FactorQ1, "PRIMER TRIMESTRE": FactorQ1,

	"Q2": FactorQ2, "2Q": FactorQ2, "2": FactorQ2,
	"2DO TRIMESTRE": FactorQ2, "SEGUNDO TRIMESTRE": FactorQ2,

	"Q3": FactorQ3, "3Q": FactorQ3, "3": FactorQ3,
	"3ER TRIMESTRE": FactorQ3, "TERCER TRIMESTRE": FactorQ3,

	"Q4": FactorQ4, "4Q": FactorQ4, "4": FactorQ4,
	"4TO TRIMESTRE": FactorQ4, "CUARTO TRIMESTRE": FactorQ4,

	"ANUAL": FactorAnnual,
}

// ProjectionFactor maps a document's reporting period label to its
// annualization multiplier. Labels are matched case-insensitively after
// trimming. An unrecognized label maps to 1.0: leaving a value unprojected
// is less harmful than failing the whole aggregation run.
func ProjectionFactor(period string) float64 {
	normalized := strings.ToUpper(strings.TrimSpace(period))
	if factor, ok := periodSynonyms[normalized]; ok {
		return factor
	}
	return 1.0
}
