package fiscal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutionRate(t *testing.T) {
	rate, ok := ExecutionRate(750, 1000)
	assert.True(t, ok)
	assert.InDelta(t, 0.75, rate, 1e-9)

	_, ok = ExecutionRate(750, 0)
	assert.False(t, ok, "zero budget must be undefined, not zero")

	_, ok = ExecutionRate(750, -10)
	assert.False(t, ok)

	// Over-execution is a valid value, not an error
	rate, ok = ExecutionRate(1200, 1000)
	assert.True(t, ok)
	assert.InDelta(t, 1.2, rate, 1e-9)
}

func TestCollectionAndPaymentRates(t *testing.T) {
	rate, ok := CollectionRate(80, 100)
	assert.True(t, ok)
	assert.InDelta(t, 0.8, rate, 1e-9)

	_, ok = CollectionRate(80, 0)
	assert.False(t, ok)

	rate, ok = PaymentRate(60, 100)
	assert.True(t, ok)
	assert.InDelta(t, 0.6, rate, 1e-9)

	_, ok = PaymentRate(60, 0)
	assert.False(t, ok)
}

func TestFiscalBalance(t *testing.T) {
	assert.InDelta(t, 50, FiscalBalance(150, 100), 1e-9)
	// A missing operand enters as zero, the result stays defined
	assert.InDelta(t, -50, FiscalBalance(0, 50), 1e-9)
	assert.InDelta(t, 0, FiscalBalance(0, 0), 1e-9)
}

func TestAssetLiabilityRatio(t *testing.T) {
	ratio, ok := AssetLiabilityRatio(300, 200)
	assert.True(t, ok)
	assert.InDelta(t, 1.5, ratio, 1e-9)

	_, ok = AssetLiabilityRatio(300, 0)
	assert.False(t, ok)
}

func TestPerCapita(t *testing.T) {
	pc, ok := PerCapita(1000, 250)
	assert.True(t, ok)
	assert.InDelta(t, 4, pc, 1e-9)

	_, ok = PerCapita(1000, 0)
	assert.False(t, ok)
}

func TestExecutionStatus(t *testing.T) {
	assert.Equal(t, Status{Color: "#28a745", Label: "Óptima"}, ExecutionStatus(0.8, true))
	assert.Equal(t, Status{Color: "#ffc107", Label: "Media"}, ExecutionStatus(0.5, true))
	assert.Equal(t, Status{Color: "#dc3545", Label: "Baja"}, ExecutionStatus(0.49, true))
	assert.Equal(t, Status{Color: "#888888", Label: "Sin datos"}, ExecutionStatus(0, false))
}

func TestBalanceStatus(t *testing.T) {
	assert.Equal(t, "Superávit", BalanceStatus(1).Label)
	assert.Equal(t, "Equilibrado", BalanceStatus(0).Label)
	assert.Equal(t, "Déficit", BalanceStatus(-1).Label)
}

func TestRatioStatus(t *testing.T) {
	assert.Equal(t, "Saludable", RatioStatus(1.5, true).Label)
	assert.Equal(t, "Ajustado", RatioStatus(1.0, true).Label)
	assert.Equal(t, "Crítico", RatioStatus(0.9, true).Label)
	assert.Equal(t, "Sin datos", RatioStatus(0, false).Label)
}
