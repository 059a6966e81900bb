package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Storage groups the repositories over the backing document database. The
// dashboard path is strictly read-only; the insert methods exist for the
// registry ETL only.
type Storage struct {
	Municipalities interface {
		List(ctx context.Context, limit int) ([]Municipality, error)
		Insert(ctx context.Context, m *Municipality) error
	}

	Documents interface {
		ListAll(ctx context.Context, limit int) ([]Document, error)
		ListByMunicipality(ctx context.Context, municipalityID string, limit int) ([]Document, error)
		Get(ctx context.Context, id string) (*Document, error)
		CountByMunicipality(ctx context.Context) ([]DocumentCount, error)
	}

	Revenue interface {
		ListAll(ctx context.Context, limit int) ([]RevenueItem, error)
		ListByDocument(ctx context.Context, documentID string, limit int) ([]RevenueItem, error)
	}

	Expenditure interface {
		ListAll(ctx context.Context, limit int) ([]ExpenditureItem, error)
		ListByDocument(ctx context.Context, documentID string, limit int) ([]ExpenditureItem, error)
	}

	Patrimony interface {
		BalanceSheet(ctx context.Context, documentID string, limit int) ([]BalanceSheetEntry, error)
		TreasuryMovements(ctx context.Context, documentID string, limit int) ([]TreasuryMovement, error)
	}

	Programs interface {
		ListJurisdictions(ctx context.Context, limit int) ([]Jurisdiction, error)
		ListPrograms(ctx context.Context, limit int) ([]Program, error)
		ListProgramsByJurisdictions(ctx context.Context, jurisdictionIDs []string, limit int) ([]Program, error)
		ListGoals(ctx context.Context, limit int) ([]Goal, error)
	}
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{
		Municipalities: &MunicipalityStore{db: db},
		Documents:      &DocumentStore{db: db},
		Revenue:        &RevenueStore{db: db},
		Expenditure:    &ExpenditureStore{db: db},
		Patrimony:      &PatrimonyStore{db: db},
		Programs:       &ProgramStore{db: db},
	}
}
