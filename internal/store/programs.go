package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type ProgramStore struct {
	db *sqlx.DB
}

const programColumns = `
	id,
	jurisdiction_id,
	COALESCE(code, '') AS code,
	COALESCE(name, '') AS name,
	COALESCE(budgeted, 0) AS budgeted,
	COALESCE(accrued, 0) AS accrued,
	COALESCE(paid, 0) AS paid`

func (ps *ProgramStore) ListJurisdictions(ctx context.Context, limit int) ([]Jurisdiction, error) {
	query := `
	SELECT
		id,
		document_id,
		COALESCE(code, '') AS code,
		COALESCE(name, '') AS name
	FROM
		jurisdictions
	LIMIT $1;
	`

	rows := []Jurisdiction{}
	err := ps.db.SelectContext(ctx, &rows, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query jurisdictions: %w", err)
	}

	return rows, nil
}

func (ps *ProgramStore) ListPrograms(ctx context.Context, limit int) ([]Program, error) {
	query := `
	SELECT ` + programColumns + `
	FROM programs
	LIMIT $1;
	`

	rows := []Program{}
	err := ps.db.SelectContext(ctx, &rows, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query programs: %w", err)
	}

	return rows, nil
}

// ListProgramsByJurisdictions narrows programs to a set of jurisdiction ids,
// e.g. the jurisdictions of one document.
func (ps *ProgramStore) ListProgramsByJurisdictions(ctx context.Context, jurisdictionIDs []string, limit int) ([]Program, error) {
	query := `
	SELECT ` + programColumns + `
	FROM programs
	WHERE jurisdiction_id = ANY($1)
	LIMIT $2;
	`

	rows := []Program{}
	err := ps.db.SelectContext(ctx, &rows, query, pq.Array(jurisdictionIDs), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query programs by jurisdictions: %w", err)
	}

	return rows, nil
}

func (ps *ProgramStore) ListGoals(ctx context.Context, limit int) ([]Goal, error) {
	query := `
	SELECT
		id,
		program_id,
		COALESCE(name, '') AS name,
		COALESCE(unit, '') AS unit,
		COALESCE(annual, 0) AS annual,
		COALESCE(partial, 0) AS partial,
		COALESCE(executed, 0) AS executed
	FROM
		goals
	LIMIT $1;
	`

	rows := []Goal{}
	err := ps.db.SelectContext(ctx, &rows, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}

	return rows, nil
}
