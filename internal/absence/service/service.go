// Package service applies the business rules upstream of persistence:
// input validation, time-range checks and logging. Referential integrity on
// absence creation is left to the database foreign key and surfaced by the
// repository.
package service

import (
	"context"

	"github.com/Hojgaetan/GDA/internal/absence/domain"
	"github.com/Hojgaetan/GDA/internal/absence/repository"
	"github.com/Hojgaetan/GDA/pkg/logger"
)

// AbsenceService handles employee and absence business logic
type AbsenceService struct {
	employeeRepo *repository.EmployeeRepository
	absenceRepo  *repository.AbsenceRepository
	logger       *logger.Logger
}

// NewAbsenceService creates a new absence service
func NewAbsenceService(
	employeeRepo *repository.EmployeeRepository,
	absenceRepo *repository.AbsenceRepository,
	log *logger.Logger,
) *AbsenceService {
	return &AbsenceService{
		employeeRepo: employeeRepo,
		absenceRepo:  absenceRepo,
		logger:       log,
	}
}

// ListEmployees lists all employees
func (s *AbsenceService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employeeRepo.List(ctx)
}

// CreateEmployee validates and persists a new employee
func (s *AbsenceService) CreateEmployee(ctx context.Context, in domain.NewEmployee) (*domain.Employee, error) {
	in, err := domain.ValidateNewEmployee(in)
	if err != nil {
		return nil, err
	}

	emp := &domain.Employee{Name: in.Name, Role: in.Role}
	if err := s.employeeRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("employee_id", emp.ID).
		Str("name", emp.Name).
		Msg("employee created")

	return emp, nil
}

// UpdateEmployee validates and replaces an employee's name and role
func (s *AbsenceService) UpdateEmployee(ctx context.Context, id string, in domain.NewEmployee) (*domain.Employee, error) {
	in, err := domain.ValidateNewEmployee(in)
	if err != nil {
		return nil, err
	}

	emp := &domain.Employee{ID: id, Name: in.Name, Role: in.Role}
	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("employee_id", emp.ID).
		Msg("employee updated")

	return emp, nil
}

// DeleteEmployee removes an employee and, through the cascade, every absence
// record referencing it.
func (s *AbsenceService) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().
		Str("employee_id", id).
		Msg("employee deleted with absence cascade")

	return nil
}

// ListAbsences lists absence records, optionally for one employee
func (s *AbsenceService) ListAbsences(ctx context.Context, employeeID string) ([]domain.AbsenceRecord, error) {
	return s.absenceRepo.List(ctx, employeeID)
}

// CreateAbsence validates and persists a new absence record
func (s *AbsenceService) CreateAbsence(ctx context.Context, in domain.NewAbsence) (*domain.AbsenceRecord, error) {
	if err := domain.ValidateNewAbsence(in); err != nil {
		return nil, err
	}

	rec := &domain.AbsenceRecord{
		EmployeeID: in.EmployeeID,
		Date:       in.Date,
		Type:       in.Type,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		Notes:      in.Notes,
	}
	if err := s.absenceRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("absence_id", rec.ID).
		Str("employee_id", rec.EmployeeID).
		Str("type", string(rec.Type)).
		Str("date", rec.Date).
		Msg("absence created")

	return rec, nil
}

// DeleteAbsence removes a single absence record
func (s *AbsenceService) DeleteAbsence(ctx context.Context, id string) error {
	if err := s.absenceRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().
		Str("absence_id", id).
		Msg("absence deleted")

	return nil
}
