package store

import "time"

// Municipality represents the 'municipalities' table (base registry).
type Municipality struct {
	ID         string  `db:"id"`
	Georef     string  `db:"georef"`
	Name       string  `db:"name"`
	Population float64 `db:"population"`
	AreaKm2    float64 `db:"area_km2"`
	Workforce  float64 `db:"workforce"`
}

// Document represents the 'documents' table. One row per uploaded fiscal
// report.
type Document struct {
	ID             string    `db:"id"`
	MunicipalityID string    `db:"municipality_id"`
	Name           string    `db:"name"`
	Type           string    `db:"type"`
	Period         string    `db:"period"`
	Year           int       `db:"year"`
	UploadedAt     time.Time `db:"uploaded_at"`
}

// DocumentCount is the number of documents loaded per municipality.
type DocumentCount struct {
	MunicipalityID string `db:"municipality_id"`
	Documents      int    `db:"documents"`
}

// RevenueItem represents the 'revenue_items' table. Amounts arrive as text
// in some exports, so they are stored as text and parsed at the fetch
// boundary with the coerce-to-zero policy.
type RevenueItem struct {
	DocumentID string `db:"document_id"`
	Category   string `db:"category"`
	Budgeted   string `db:"budgeted"`
	Accrued    string `db:"accrued"`
	Collected  string `db:"collected"`
}

// ExpenditureItem represents the 'expenditure_items' table.
type ExpenditureItem struct {
	DocumentID string `db:"document_id"`
	Object     string `db:"object"`
	Category   string `db:"category"`
	Budgeted   string `db:"budgeted"`
	Reserved   string `db:"reserved"`
	Committed  string `db:"committed"`
	Accrued    string `db:"accrued"`
	Paid       string `db:"paid"`
}

// BalanceSheetEntry represents the 'balance_sheet_entries' table.
type BalanceSheetEntry struct {
	DocumentID string  `db:"document_id"`
	Kind       string  `db:"kind"`
	Name       string  `db:"name"`
	Balance    float64 `db:"balance"`
}

// TreasuryMovement represents the 'treasury_movements' table.
type TreasuryMovement struct {
	DocumentID string  `db:"document_id"`
	Kind       string  `db:"kind"`
	Amount     float64 `db:"amount"`
}

// Jurisdiction represents the 'jurisdictions' table.
type Jurisdiction struct {
	ID         string `db:"id"`
	DocumentID string `db:"document_id"`
	Code       string `db:"code"`
	Name       string `db:"name"`
}

// Program represents the 'programs' table.
type Program struct {
	ID             string  `db:"id"`
	JurisdictionID string  `db:"jurisdiction_id"`
	Code           string  `db:"code"`
	Name           string  `db:"name"`
	Budgeted       float64 `db:"budgeted"`
	Accrued        float64 `db:"accrued"`
	Paid           float64 `db:"paid"`
}

// Goal represents the 'goals' table.
type Goal struct {
	ID        string  `db:"id"`
	ProgramID string  `db:"program_id"`
	Name      string  `db:"name"`
	Unit      string  `db:"unit"`
	Annual    float64 `db:"annual"`
	Partial   float64 `db:"partial"`
	Executed  float64 `db:"executed"`
}
