package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type PatrimonyStore struct {
	db *sqlx.DB
}

func (ps *PatrimonyStore) BalanceSheet(ctx context.Context, documentID string, limit int) ([]BalanceSheetEntry, error) {
	query := `
	SELECT
		document_id,
		COALESCE(kind, '') AS kind,
		COALESCE(name, '') AS name,
		COALESCE(balance, 0) AS balance
	FROM
		balance_sheet_entries
	WHERE
		document_id = $1
	LIMIT $2;
	`

	rows := []BalanceSheetEntry{}
	err := ps.db.SelectContext(ctx, &rows, query, documentID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query balance sheet for document %s: %w", documentID, err)
	}

	return rows, nil
}

func (ps *PatrimonyStore) TreasuryMovements(ctx context.Context, documentID string, limit int) ([]TreasuryMovement, error) {
	query := `
	SELECT
		document_id,
		COALESCE(kind, '') AS kind,
		COALESCE(amount, 0) AS amount
	FROM
		treasury_movements
	WHERE
		document_id = $1
	LIMIT $2;
	`

	rows := []TreasuryMovement{}
	err := ps.db.SelectContext(ctx, &rows, query, documentID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query treasury movements for document %s: %w", documentID, err)
	}

	return rows, nil
}
