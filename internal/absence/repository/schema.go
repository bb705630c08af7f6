package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Hojgaetan/GDA/internal/absence/domain"
	"github.com/Hojgaetan/GDA/pkg/database"
)

// EnsureSchema creates the tables if they do not exist and seeds the
// bootstrap employees when the employees table is empty. The foreign key
// carries ON DELETE CASCADE so deleting an employee removes its absences in
// the same statement.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS employees (
			id   TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			role TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS absences (
			id          TEXT PRIMARY KEY,
			employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
			date        TEXT NOT NULL,
			type        TEXT NOT NULL,
			start_time  TEXT NOT NULL,
			end_time    TEXT NOT NULL,
			notes       TEXT NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		return err
	}

	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM employees`); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// Seed atomically so a partial bootstrap cannot survive a crash
	return db.Transaction(ctx, func(tx *sqlx.Tx) error {
		for _, emp := range domain.BootstrapEmployees() {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO employees (id, name, role) VALUES ($1, $2, $3)`,
				emp.ID, emp.Name, emp.Role,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
