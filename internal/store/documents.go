package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type DocumentStore struct {
	db *sqlx.DB
}

const documentColumns = `
	id,
	municipality_id,
	COALESCE(name, '') AS name,
	COALESCE(type, '') AS type,
	COALESCE(period, '') AS period,
	COALESCE(year, 0) AS year,
	uploaded_at`

func (ds *DocumentStore) ListAll(ctx context.Context, limit int) ([]Document, error) {
	query := `
	SELECT ` + documentColumns + `
	FROM documents
	LIMIT $1;
	`

	rows := []Document{}
	err := ds.db.SelectContext(ctx, &rows, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}

	return rows, nil
}

func (ds *DocumentStore) ListByMunicipality(ctx context.Context, municipalityID string, limit int) ([]Document, error) {
	query := `
	SELECT ` + documentColumns + `
	FROM documents
	WHERE municipality_id = $1
	ORDER BY uploaded_at DESC
	LIMIT $2;
	`

	rows := []Document{}
	err := ds.db.SelectContext(ctx, &rows, query, municipalityID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents for municipality %s: %w", municipalityID, err)
	}

	return rows, nil
}

func (ds *DocumentStore) Get(ctx context.Context, id string) (*Document, error) {
	query := `
	SELECT ` + documentColumns + `
	FROM documents
	WHERE id = $1;
	`

	var doc Document
	err := ds.db.GetContext(ctx, &doc, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("document %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to query document %s: %w", id, err)
	}

	return &doc, nil
}

func (ds *DocumentStore) CountByMunicipality(ctx context.Context) ([]DocumentCount, error) {
	query := `
	SELECT
		municipality_id,
		COUNT(id) AS documents
	FROM
		documents
	GROUP BY
		municipality_id;
	`

	rows := []DocumentCount{}
	err := ds.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count documents per municipality: %w", err)
	}

	return rows, nil
}
