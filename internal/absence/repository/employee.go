package repository

import (
	"context"

	"github.com/Hojgaetan/GDA/internal/absence/domain"
	"github.com/Hojgaetan/GDA/pkg/database"
	"github.com/Hojgaetan/GDA/pkg/errors"
	"github.com/google/uuid"
)

// EmployeeRepository handles employee persistence
type EmployeeRepository struct {
	db *database.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *database.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// List lists all employees ordered by display name
func (r *EmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	employees := []domain.Employee{}
	query := `SELECT id, name, role FROM employees ORDER BY name ASC`
	if err := r.db.SelectContext(ctx, &employees, query); err != nil {
		return nil, err
	}
	return employees, nil
}

// Create inserts a new employee, generating its id
func (r *EmployeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	if emp.ID == "" {
		emp.ID = uuid.New().String()
	}

	query := `INSERT INTO employees (id, name, role) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, emp.ID, emp.Name, emp.Role)
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return appErr
		}
		return err
	}
	return nil
}

// Update replaces name and role. The id is immutable.
func (r *EmployeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	query := `UPDATE employees SET name = $2, role = $3 WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, emp.ID, emp.Name, emp.Role)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("employee")
	}
	return nil
}

// Delete removes an employee. The absences foreign key cascades, so the
// employee's absence records go with it in the same statement.
func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM employees WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("employee")
	}
	return nil
}
