package database

import (
	stderrors "errors"

	"github.com/Hojgaetan/GDA/pkg/errors"
	"github.com/lib/pq"
)

// MapPQError converts a PostgreSQL error to an AppError with meaningful messages.
// Returns nil if the error is not a pq.Error.
func MapPQError(err error) *errors.AppError {
	var pqErr *pq.Error
	if !stderrors.As(err, &pqErr) {
		return nil
	}

	switch pqErr.Code {
	// Foreign key violation (23503): an absence referencing a missing employee
	case "23503":
		return errors.InvalidReference("employeeId")

	// Unique constraint violation (23505)
	case "23505":
		return errors.BadRequest("a record with this id already exists")

	// Not null violation (23502)
	case "23502":
		col := pqErr.Column
		if col == "" {
			col = "required field"
		}
		return errors.Validation(map[string]string{
			col: "must not be empty",
		})

	default:
		return nil
	}
}
