package repository

import (
	"context"

	"github.com/Hojgaetan/GDA/internal/absence/domain"
	"github.com/Hojgaetan/GDA/pkg/database"
	"github.com/Hojgaetan/GDA/pkg/errors"
	"github.com/google/uuid"
)

// AbsenceRepository handles absence record persistence
type AbsenceRepository struct {
	db *database.DB
}

// NewAbsenceRepository creates a new absence repository
func NewAbsenceRepository(db *database.DB) *AbsenceRepository {
	return &AbsenceRepository{db: db}
}

// List lists absence records, most recent date first. When employeeID is
// non-empty only that employee's records are returned.
func (r *AbsenceRepository) List(ctx context.Context, employeeID string) ([]domain.AbsenceRecord, error) {
	absences := []domain.AbsenceRecord{}

	if employeeID != "" {
		query := `
			SELECT id, employee_id, date, type, start_time, end_time, notes
			FROM absences
			WHERE employee_id = $1
			ORDER BY date DESC
		`
		if err := r.db.SelectContext(ctx, &absences, query, employeeID); err != nil {
			return nil, err
		}
		return absences, nil
	}

	query := `
		SELECT id, employee_id, date, type, start_time, end_time, notes
		FROM absences
		ORDER BY date DESC
	`
	if err := r.db.SelectContext(ctx, &absences, query); err != nil {
		return nil, err
	}
	return absences, nil
}

// Create inserts a new absence record, generating its id. A foreign key
// violation on employee_id surfaces as an invalid-reference error.
func (r *AbsenceRepository) Create(ctx context.Context, rec *domain.AbsenceRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	query := `
		INSERT INTO absences (id, employee_id, date, type, start_time, end_time, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.EmployeeID, rec.Date, rec.Type, rec.StartTime, rec.EndTime, rec.Notes,
	)
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return appErr
		}
		return err
	}
	return nil
}

// Delete removes a single absence record
func (r *AbsenceRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM absences WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("absence")
	}
	return nil
}
