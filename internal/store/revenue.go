package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type RevenueStore struct {
	db *sqlx.DB
}

const revenueColumns = `
	document_id,
	COALESCE(category, '') AS category,
	COALESCE(budgeted, '') AS budgeted,
	COALESCE(accrued, '') AS accrued,
	COALESCE(collected, '') AS collected`

func (rs *RevenueStore) ListAll(ctx context.Context, limit int) ([]RevenueItem, error) {
	query := `
	SELECT ` + revenueColumns + `
	FROM revenue_items
	LIMIT $1;
	`

	rows := []RevenueItem{}
	err := rs.db.SelectContext(ctx, &rows, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query revenue items: %w", err)
	}

	return rows, nil
}

func (rs *RevenueStore) ListByDocument(ctx context.Context, documentID string, limit int) ([]RevenueItem, error) {
	query := `
	SELECT ` + revenueColumns + `
	FROM revenue_items
	WHERE document_id = $1
	LIMIT $2;
	`

	rows := []RevenueItem{}
	err := rs.db.SelectContext(ctx, &rows, query, documentID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query revenue items for document %s: %w", documentID, err)
	}

	return rows, nil
}
