package fiscal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateBucketFormula(t *testing.T) {
	docs := []Document{
		{ID: "d1", MunicipalityID: "m1", Period: "Anual"},
	}
	revenues := []RevenueItem{
		{DocumentID: "d1", Category: "Ingresos Corrientes", Budgeted: 1000, Accrued: 800, Collected: 600},
		{DocumentID: "d1", Category: "Recursos de Capital", Budgeted: 200, Accrued: 100, Collected: 100},
		{DocumentID: "d1", Category: "Extrapresupuestario", Budgeted: 100, Accrued: 50, Collected: 50},
	}

	result := Aggregate(docs, revenues, nil)
	m := result.Metrics["m1"]
	require.NotNil(t, m)

	// principal/2 + extra
	assert.InDelta(t, 1200.0/2+100, m.RevenueBudgeted, 1e-9)
	assert.InDelta(t, 900.0/2+50, m.RevenueAccrued, 1e-9)
	assert.InDelta(t, 700.0/2+50, m.RevenueCollected, 1e-9)
}

func TestAggregateQuarterProjection(t *testing.T) {
	docs := []Document{
		{ID: "d1", MunicipalityID: "m1", Period: "1er Trimestre"},
		{ID: "d2", MunicipalityID: "m1", Period: "1er Trimestre"},
	}
	revenues := []RevenueItem{
		{DocumentID: "d1", Category: "ingresos corrientes", Budgeted: 1000, Accrued: 800, Collected: 600},
	}
	expenditures := []ExpenditureItem{
		{DocumentID: "d2", Budgeted: 400, Accrued: 300, Paid: 200},
	}

	result := Aggregate(docs, revenues, expenditures)
	m := result.Metrics["m1"]
	require.NotNil(t, m)

	assert.InDelta(t, 300, m.RevenueCollected, 1e-9)
	// Collected projects by 4, budgeted never does
	assert.InDelta(t, 1200, m.RevenueCollectedProjected, 1e-9)
	assert.InDelta(t, 500, m.RevenueBudgeted, 1e-9)

	assert.InDelta(t, 200, m.ExpenditurePaid, 1e-9)
	assert.InDelta(t, 800, m.ExpenditurePaidProjected, 1e-9)
	assert.InDelta(t, 400, m.ExpenditureBudgeted, 1e-9)

	require.NotNil(t, m.ExecutionRate)
	assert.InDelta(t, 0.75, *m.ExecutionRate, 1e-9)
	assert.Equal(t, "Media", ExecutionStatus(*m.ExecutionRate, true).Label)

	assert.InDelta(t, 100, m.FiscalBalance, 1e-9)
	assert.InDelta(t, 400, m.FiscalBalanceProjected, 1e-9)
}

func TestAggregateAbsentVersusZero(t *testing.T) {
	docs := []Document{
		{ID: "d1", MunicipalityID: "reported-zero", Period: "Anual"},
	}
	revenues := []RevenueItem{
		{DocumentID: "d1", Category: "ingresos corrientes", Budgeted: 0, Accrued: 0, Collected: 0},
	}

	result := Aggregate(docs, revenues, nil)

	// A zero-summing upload yields a row; no upload yields no row
	zero := result.Metrics["reported-zero"]
	require.NotNil(t, zero)
	assert.Zero(t, zero.RevenueCollected)
	assert.Nil(t, zero.ExecutionRate)

	assert.Nil(t, result.Metrics["never-uploaded"])
}

func TestAggregateDropsOrphanLineItems(t *testing.T) {
	revenues := []RevenueItem{
		{DocumentID: "ghost", Category: "ingresos corrientes", Collected: 999},
	}
	expenditures := []ExpenditureItem{
		{DocumentID: "ghost", Paid: 999},
	}

	result := Aggregate(nil, revenues, expenditures)
	assert.Empty(t, result.Metrics)
}

func TestAggregateUnclassifiedDiagnostic(t *testing.T) {
	docs := []Document{{ID: "d1", MunicipalityID: "m1", Period: "Anual"}}
	revenues := []RevenueItem{
		{DocumentID: "d1", Category: "ingresos corrientes", Collected: 100},
		{DocumentID: "d1", Category: "Nueva Etiqueta", Budgeted: 10, Accrued: 20, Collected: 30},
		{DocumentID: "d1", Category: "nueva etiqueta", Collected: 5},
	}

	result := Aggregate(docs, revenues, nil)

	assert.Equal(t, 2, result.Unclassified.Items)
	assert.InDelta(t, 10, result.Unclassified.Budgeted, 1e-9)
	assert.InDelta(t, 35, result.Unclassified.Collected, 1e-9)
	assert.Equal(t, []string{"nueva etiqueta"}, result.Unclassified.Categories)

	// Unclassified revenue stays out of the municipal totals
	assert.InDelta(t, 50, result.Metrics["m1"].RevenueCollected, 1e-9)
}

func TestAggregateSanitizesNonFiniteAmounts(t *testing.T) {
	docs := []Document{{ID: "d1", MunicipalityID: "m1", Period: "Anual"}}
	revenues := []RevenueItem{
		{DocumentID: "d1", Category: "ingresos corrientes", Collected: math.NaN(), Accrued: math.Inf(1)},
	}

	result := Aggregate(docs, revenues, nil)
	m := result.Metrics["m1"]
	assert.Zero(t, m.RevenueCollected)
	assert.Zero(t, m.RevenueAccrued)
}
