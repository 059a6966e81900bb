package fiscal

// Derived-indicator calculators. Each returns ok=false, not zero and not an
// error, when its denominator is zero or unavailable.

// ExecutionRate is accrued / budgeted, the primary measure of budget
// utilization.
func ExecutionRate(accrued, budgeted float64) (float64, bool) {
	if budgeted <= 0 {
		return 0, false
	}
	return accrued / budgeted, true
}

// CollectionRate is collected / accrued.
func CollectionRate(collected, accrued float64) (float64, bool) {
	if accrued <= 0 {
		return 0, false
	}
	return collected / accrued, true
}

// PaymentRate is paid / accrued.
func PaymentRate(paid, accrued float64) (float64, bool) {
	if accrued <= 0 {
		return 0, false
	}
	return paid / accrued, true
}

// FiscalBalance is collected revenue minus paid expenditure. Always defined;
// callers pass zero for missing operands.
func FiscalBalance(collectedRevenue, paidExpenditure float64) float64 {
	return collectedRevenue - paidExpenditure
}

// AssetLiabilityRatio is assets / liabilities.
func AssetLiabilityRatio(assets, liabilities float64) (float64, bool) {
	if liabilities <= 0 {
		return 0, false
	}
	return assets / liabilities, true
}

// PerCapita divides an amount by population.
func PerCapita(amount, population float64) (float64, bool) {
	if population <= 0 {
		return 0, false
	}
	return amount / population, true
}

// Status is a traffic-light band for a derived indicator.
type Status struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

var (
	statusNoData = Status{Color: "#888888", Label: "Sin datos"}
	statusGreen  = "#28a745"
	statusYellow = "#ffc107"
	statusRed    = "#dc3545"
)

// ExecutionStatus classifies an execution rate. Thresholds are fixed
// constants, not configuration.
func ExecutionStatus(rate float64, ok bool) Status {
	switch {
	case !ok:
		return statusNoData
	case rate >= 0.8:
		return Status{Color: statusGreen, Label: "Óptima"}
	case rate >= 0.5:
		return Status{Color: statusYellow, Label: "Media"}
	default:
		return Status{Color: statusRed, Label: "Baja"}
	}
}

// BalanceStatus classifies a fiscal balance.
func BalanceStatus(balance float64) Status {
	switch {
	case balance > 0:
		return Status{Color: statusGreen, Label: "Superávit"}
	case balance == 0:
		return Status{Color: statusYellow, Label: "Equilibrado"}
	default:
		return Status{Color: statusRed, Label: "Déficit"}
	}
}

// RatioStatus classifies an asset/liability ratio.
func RatioStatus(ratio float64, ok bool) Status {
	switch {
	case !ok:
		return statusNoData
	case ratio >= 1.5:
		return Status{Color: statusGreen, Label: "Saludable"}
	case ratio >= 1.0:
		return Status{Color: statusYellow, Label: "Ajustado"}
	default:
		return Status{Color: statusRed, Label: "Crítico"}
	}
}
