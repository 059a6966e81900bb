package fiscal

import "strings"

// DocumentSummary is the "resumen general" of a single fiscal report: the
// document's own totals with the revenue bucket formula applied, plus the
// budget balance (vigente vs vigente) and the financial balance (collected
// vs paid). When projected is true, collected and paid are extrapolated by
// the document's own period factor; budgeted columns never are.
type DocumentSummary struct {
	DocumentID       string  `json:"document_id"`
	Period           string  `json:"period"`
	ProjectionFactor float64 `json:"projection_factor"`
	Projected        bool    `json:"projected"`

	RevenueBudgeted  float64 `json:"revenue_budgeted"`
	RevenueCollected float64 `json:"revenue_collected"`

	ExpenditureBudgeted float64 `json:"expenditure_budgeted"`
	ExpenditurePaid     float64 `json:"expenditure_paid"`

	BudgetBalance    float64 `json:"budget_balance"`
	FinancialBalance float64 `json:"financial_balance"`

	CollectionProgress *float64 `json:"collection_progress"`
	PaymentProgress    *float64 `json:"payment_progress"`
	FinancialStatus    Status   `json:"financial_status"`
}

func SummarizeDocument(doc Document, revenues []RevenueItem, expenditures []ExpenditureItem, projected bool) DocumentSummary {
	factor := ProjectionFactor(doc.Period)
	s := DocumentSummary{
		DocumentID:       doc.ID,
		Period:           doc.Period,
		ProjectionFactor: factor,
		Projected:        projected,
	}

	var principal, extra revenueSums
	for _, item := range revenues {
		var sums *revenueSums
		switch classifyCategory(item.Category) {
		case bucketPrincipal:
			sums = &principal
		case bucketExtra:
			sums = &extra
		default:
			continue
		}
		sums.budgeted += sanitize(item.Budgeted)
		sums.collected += sanitize(item.Collected)
	}

	s.RevenueBudgeted = principal.budgeted/2 + extra.budgeted
	s.RevenueCollected = principal.collected/2 + extra.collected

	for _, item := range expenditures {
		s.ExpenditureBudgeted += sanitize(item.Budgeted)
		s.ExpenditurePaid += sanitize(item.Paid)
	}

	if projected {
		s.RevenueCollected *= factor
		s.ExpenditurePaid *= factor
	}

	s.BudgetBalance = s.RevenueBudgeted - s.ExpenditureBudgeted
	s.FinancialBalance = FiscalBalance(s.RevenueCollected, s.ExpenditurePaid)
	s.FinancialStatus = BalanceStatus(s.FinancialBalance)

	if progress, ok := ExecutionRate(s.RevenueCollected, s.RevenueBudgeted); ok {
		s.CollectionProgress = &progress
	}
	if progress, ok := ExecutionRate(s.ExpenditurePaid, s.ExpenditureBudgeted); ok {
		s.PaymentProgress = &progress
	}
	return s
}

// BalanceSheetSummary condenses a document's statement of assets and
// liabilities into the solvency ratio and its status band.
type BalanceSheetSummary struct {
	DocumentID  string   `json:"document_id"`
	Assets      float64  `json:"assets"`
	Liabilities float64  `json:"liabilities"`
	NetWorth    float64  `json:"net_worth"`
	Ratio       *float64 `json:"ratio"`
	Status      Status   `json:"status"`
}

func SummarizeBalanceSheet(documentID string, entries []BalanceSheetEntry) BalanceSheetSummary {
	s := BalanceSheetSummary{DocumentID: documentID}
	for _, e := range entries {
		switch strings.ToLower(strings.TrimSpace(e.Kind)) {
		case "activo":
			s.Assets += sanitize(e.Balance)
		case "pasivo":
			s.Liabilities += sanitize(e.Balance)
		}
	}
	s.NetWorth = s.Assets - s.Liabilities

	ratio, ok := AssetLiabilityRatio(s.Assets, s.Liabilities)
	if ok {
		s.Ratio = &ratio
	}
	s.Status = RatioStatus(ratio, ok)
	return s
}

// TreasurySummary sums a document's treasury movements by movement type.
type TreasurySummary struct {
	DocumentID string             `json:"document_id"`
	ByKind     map[string]float64 `json:"by_kind"`
	Total      float64            `json:"total"`
}

func SummarizeTreasury(documentID string, movements []TreasuryMovement) TreasurySummary {
	s := TreasurySummary{DocumentID: documentID, ByKind: make(map[string]float64)}
	for _, m := range movements {
		amount := sanitize(m.Amount)
		s.ByKind[m.Kind] += amount
		s.Total += amount
	}
	return s
}
