package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type ExpenditureStore struct {
	db *sqlx.DB
}

const expenditureColumns = `
	document_id,
	COALESCE(object, '') AS object,
	COALESCE(category, '') AS category,
	COALESCE(budgeted, '') AS budgeted,
	COALESCE(reserved, '') AS reserved,
	COALESCE(committed, '') AS committed,
	COALESCE(accrued, '') AS accrued,
	COALESCE(paid, '') AS paid`

func (es *ExpenditureStore) ListAll(ctx context.Context, limit int) ([]ExpenditureItem, error) {
	query := `
	SELECT ` + expenditureColumns + `
	FROM expenditure_items
	LIMIT $1;
	`

	rows := []ExpenditureItem{}
	err := es.db.SelectContext(ctx, &rows, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenditure items: %w", err)
	}

	return rows, nil
}

func (es *ExpenditureStore) ListByDocument(ctx context.Context, documentID string, limit int) ([]ExpenditureItem, error) {
	query := `
	SELECT ` + expenditureColumns + `
	FROM expenditure_items
	WHERE document_id = $1
	LIMIT $2;
	`

	rows := []ExpenditureItem{}
	err := es.db.SelectContext(ctx, &rows, query, documentID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenditure items for document %s: %w", documentID, err)
	}

	return rows, nil
}
