package main

import (
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	createCellsTableQuery = `CREATE TABLE IF NOT EXISTS cells (id TEXT PRIMARY KEY, formula TEXT NOT NULL)`
	selectFormulaQuery    = `SELECT formula FROM cells WHERE id = $1`
	selectFormulasQuery   = `SELECT id, formula FROM cells WHERE id = ANY($1)`

	// xmax is 0 only for a freshly inserted row
	upsertFormulaQuery = `INSERT INTO cells (id, formula) VALUES ($1, $2) ` +
		`ON CONFLICT (id) DO UPDATE SET formula = EXCLUDED.formula RETURNING (xmax = 0) AS inserted`

	deleteCellQuery    = `DELETE FROM cells WHERE id = $1`
	selectCellIdsQuery = `SELECT id FROM cells ORDER BY id COLLATE "C"`
)

type cellRow struct {
	Id      string `db:"id"`
	Formula string `db:"formula"`
}

type PostgresCellRepository struct {
	db *sqlx.DB
}

func NewPostgresCellRepository(ctx context.Context, db *sqlx.DB) (*PostgresCellRepository, error) {
	if _, err := db.ExecContext(ctx, createCellsTableQuery); err != nil {
		return nil, err
	}

	return &PostgresCellRepository{db: db}, nil
}

func (r *PostgresCellRepository) GetFormula(ctx context.Context, cellId string) (string, bool, error) {
	var formula string

	err := r.db.GetContext(ctx, &formula, selectFormulaQuery, cellId)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	} else if err != nil {
		return "", false, err
	}

	return formula, true, nil
}

func (r *PostgresCellRepository) GetFormulas(ctx context.Context, cellIds []string) ([]*string, error) {
	rows := make([]cellRow, 0, len(cellIds))

	err := r.db.SelectContext(ctx, &rows, selectFormulasQuery, pq.Array(cellIds))
	if err != nil {
		return nil, err
	}

	byId := make(map[string]*string, len(rows))
	for index := range rows {
		byId[rows[index].Id] = &rows[index].Formula
	}

	formulas := make([]*string, len(cellIds))
	for index, cellId := range cellIds {
		formulas[index] = byId[cellId]
	}

	return formulas, nil
}

func (r *PostgresCellRepository) PutFormula(ctx context.Context, cellId string, formula string) (created bool, err error) {
	err = r.db.GetContext(ctx, &created, upsertFormulaQuery, cellId, formula)
	return
}

func (r *PostgresCellRepository) DeleteCell(ctx context.Context, cellId string) error {
	_, err := r.db.ExecContext(ctx, deleteCellQuery, cellId)
	return err
}

func (r *PostgresCellRepository) ListCellIds(ctx context.Context) ([]string, error) {
	cellIds := make([]string, 0)

	err := r.db.SelectContext(ctx, &cellIds, selectCellIdsQuery)
	return cellIds, err
}

func (r *PostgresCellRepository) Close() error {
	return r.db.Close()
}
