package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type MunicipalityStore struct {
	db *sqlx.DB
}

func (ms *MunicipalityStore) List(ctx context.Context, limit int) ([]Municipality, error) {
	query := `
	SELECT
		id,
		georef,
		name,
		COALESCE(population, 0) AS population,
		COALESCE(area_km2, 0) AS area_km2,
		COALESCE(workforce, 0) AS workforce
	FROM
		municipalities
	ORDER BY
		name
	LIMIT $1;
	`

	rows := []Municipality{}
	err := ms.db.SelectContext(ctx, &rows, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query municipalities: %w", err)
	}

	return rows, nil
}

// Insert upserts a registry row; used only by the ETL, never by the
// dashboard path.
func (ms *MunicipalityStore) Insert(ctx context.Context, m *Municipality) error {
	query := `
	INSERT INTO municipalities (id, georef, name, population, area_km2, workforce)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (id) DO UPDATE SET
		georef = EXCLUDED.georef,
		name = EXCLUDED.name,
		population = EXCLUDED.population,
		area_km2 = EXCLUDED.area_km2,
		workforce = EXCLUDED.workforce;
	`

	_, err := ms.db.ExecContext(ctx, query, m.ID, m.Georef, m.Name, m.Population, m.AreaKm2, m.Workforce)
	if err != nil {
		return fmt.Errorf("failed to insert municipality %s: %w", m.ID, err)
	}

	return nil
}
