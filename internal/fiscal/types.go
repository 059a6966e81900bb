package fiscal

import "time"

// Municipality is one row of the provincial base registry. Population comes
// from the 2022 census, area is in km². Immutable within a session.
type Municipality struct {
	ID              string  `json:"id"`
	Georef          string  `json:"georef"`
	Name            string  `json:"name"`
	Population      float64 `json:"population"`
	AreaKm2         float64 `json:"area_km2"`
	Workforce       float64 `json:"workforce"`
	DocumentsLoaded int     `json:"documents_loaded"`
}

// Document is a fiscal report submission. It is the unit of period-scoped
// data: every line item belongs to exactly one document.
type Document struct {
	ID             string    `json:"id"`
	MunicipalityID string    `json:"municipality_id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Period         string    `json:"period"`
	Year           int       `json:"year"`
	UploadedAt     time.Time `json:"uploaded_at"`
}

type RevenueItem struct {
	DocumentID string  `json:"document_id"`
	Category   string  `json:"category"`
	Budgeted   float64 `json:"budgeted"`
	Accrued    float64 `json:"accrued"`
	Collected  float64 `json:"collected"`
}

type ExpenditureItem struct {
	DocumentID string  `json:"document_id"`
	Object     string  `json:"object"`
	Category   string  `json:"category"`
	Budgeted   float64 `json:"budgeted"`
	Reserved   float64 `json:"reserved"`
	Committed  float64 `json:"committed"`
	Accrued    float64 `json:"accrued"`
	Paid       float64 `json:"paid"`
}

// BalanceSheetEntry is one row of a document's statement of assets and
// liabilities (situación patrimonial).
type BalanceSheetEntry struct {
	DocumentID string  `json:"document_id"`
	Kind       string  `json:"kind"` // "activo" | "pasivo"
	Name       string  `json:"name"`
	Balance    float64 `json:"balance"`
}

type TreasuryMovement struct {
	DocumentID string  `json:"document_id"`
	Kind       string  `json:"kind"`
	Amount     float64 `json:"amount"`
}

type Jurisdiction struct {
	ID         string `json:"id"`
	DocumentID string `json:"document_id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
}

type Program struct {
	ID             string  `json:"id"`
	JurisdictionID string  `json:"jurisdiction_id"`
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Budgeted       float64 `json:"budgeted"`
	Accrued        float64 `json:"accrued"`
	Paid           float64 `json:"paid"`
}

type Goal struct {
	ID        string  `json:"id"`
	ProgramID string  `json:"program_id"`
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	Annual    float64 `json:"annual"`
	Partial   float64 `json:"partial"`
	Executed  float64 `json:"executed"`
}

// MunicipalMetrics is one row of the aggregate table: summed revenue and
// expenditure figures for a municipality, absolute and period-projected,
// plus derived ratios. Rebuilt on every aggregation run, never mutated.
//
// ExecutionRate is nil when the municipality reported no budgeted
// expenditure; callers must treat nil and zero as different things.
type MunicipalMetrics struct {
	MunicipalityID string `json:"municipality_id"`

	RevenueBudgeted           float64 `json:"revenue_budgeted"`
	RevenueAccrued            float64 `json:"revenue_accrued"`
	RevenueCollected          float64 `json:"revenue_collected"`
	RevenueAccruedProjected   float64 `json:"revenue_accrued_projected"`
	RevenueCollectedProjected float64 `json:"revenue_collected_projected"`

	ExpenditureBudgeted         float64 `json:"expenditure_budgeted"`
	ExpenditureAccrued          float64 `json:"expenditure_accrued"`
	ExpenditurePaid             float64 `json:"expenditure_paid"`
	ExpenditureAccruedProjected float64 `json:"expenditure_accrued_projected"`
	ExpenditurePaidProjected    float64 `json:"expenditure_paid_projected"`

	FiscalBalance          float64 `json:"fiscal_balance"`
	FiscalBalanceProjected float64 `json:"fiscal_balance_projected"`

	ExecutionRate          *float64 `json:"execution_rate"`
	ExecutionRateProjected *float64 `json:"execution_rate_projected"`
}
