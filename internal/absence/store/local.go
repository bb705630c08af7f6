package store

import (
	"context"
	"encoding/json"

	"github.com/Hojgaetan/GDA/internal/absence/domain"
	"github.com/Hojgaetan/GDA/pkg/docstore"
	"github.com/Hojgaetan/GDA/pkg/errors"
	"github.com/Hojgaetan/GDA/pkg/logger"
	"github.com/google/uuid"
)

// Document keys of the local store
const (
	employeesKey = "employees"
	absencesKey  = "absences"
)

// LocalStore keeps both collections in an embedded document store, one JSON
// array per key. Every mutation rewrites the whole collection document:
// last-write-wins across concurrent writers, which is accepted for the
// single-user usage this backend targets. Each single operation is still
// all-or-nothing, so a failed mutation leaves prior state intact.
type LocalStore struct {
	docs   *docstore.Store
	logger *logger.Logger
}

// NewLocal creates a store over an open document store, seeding the
// bootstrap employees and an empty absence collection on first use.
func NewLocal(docs *docstore.Store, log *logger.Logger) (*LocalStore, error) {
	s := &LocalStore{
		docs:   docs,
		logger: log.WithComponent("local-store"),
	}
	if err := s.initialize(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *LocalStore) initialize() error {
	_, ok, err := s.docs.Get(employeesKey)
	if err != nil {
		return errors.Persistence(err, "failed to read employees collection")
	}
	if !ok {
		if err := s.writeEmployees(domain.BootstrapEmployees()); err != nil {
			return err
		}
		s.logger.Info().Msg("seeded bootstrap employees")
	}

	_, ok, err = s.docs.Get(absencesKey)
	if err != nil {
		return errors.Persistence(err, "failed to read absences collection")
	}
	if !ok {
		if err := s.writeAbsences([]domain.AbsenceRecord{}); err != nil {
			return err
		}
	}
	return nil
}

func (s *LocalStore) readEmployees() ([]domain.Employee, error) {
	raw, ok, err := s.docs.Get(employeesKey)
	if err != nil {
		return nil, errors.Persistence(err, "failed to read employees collection")
	}
	if !ok {
		return []domain.Employee{}, nil
	}

	var employees []domain.Employee
	if err := json.Unmarshal(raw, &employees); err != nil {
		return nil, errors.Persistence(err, "employees collection is corrupted")
	}
	return employees, nil
}

func (s *LocalStore) writeEmployees(employees []domain.Employee) error {
	raw, err := json.Marshal(employees)
	if err != nil {
		return errors.Persistence(err, "failed to encode employees collection")
	}
	if err := s.docs.Put(employeesKey, raw); err != nil {
		return errors.Persistence(err, "failed to write employees collection")
	}
	return nil
}

func (s *LocalStore) readAbsences() ([]domain.AbsenceRecord, error) {
	raw, ok, err := s.docs.Get(absencesKey)
	if err != nil {
		return nil, errors.Persistence(err, "failed to read absences collection")
	}
	if !ok {
		return []domain.AbsenceRecord{}, nil
	}

	var absences []domain.AbsenceRecord
	if err := json.Unmarshal(raw, &absences); err != nil {
		return nil, errors.Persistence(err, "absences collection is corrupted")
	}
	return absences, nil
}

func (s *LocalStore) writeAbsences(absences []domain.AbsenceRecord) error {
	raw, err := json.Marshal(absences)
	if err != nil {
		return errors.Persistence(err, "failed to encode absences collection")
	}
	if err := s.docs.Put(absencesKey, raw); err != nil {
		return errors.Persistence(err, "failed to write absences collection")
	}
	return nil
}

// ListEmployees returns every employee
func (s *LocalStore) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.readEmployees()
}

// CreateEmployee validates and appends a new employee
func (s *LocalStore) CreateEmployee(ctx context.Context, in domain.NewEmployee) (*domain.Employee, error) {
	in, err := domain.ValidateNewEmployee(in)
	if err != nil {
		return nil, err
	}

	employees, err := s.readEmployees()
	if err != nil {
		return nil, err
	}

	emp := domain.Employee{
		ID:   uuid.New().String(),
		Name: in.Name,
		Role: in.Role,
	}
	employees = append(employees, emp)
	if err := s.writeEmployees(employees); err != nil {
		return nil, err
	}

	s.logger.Info().Str("employee_id", emp.ID).Msg("employee created")
	return &emp, nil
}

// UpdateEmployee replaces an employee's name and role in place
func (s *LocalStore) UpdateEmployee(ctx context.Context, id string, in domain.NewEmployee) (*domain.Employee, error) {
	in, err := domain.ValidateNewEmployee(in)
	if err != nil {
		return nil, err
	}

	employees, err := s.readEmployees()
	if err != nil {
		return nil, err
	}

	for i := range employees {
		if employees[i].ID == id {
			employees[i].Name = in.Name
			employees[i].Role = in.Role
			if err := s.writeEmployees(employees); err != nil {
				return nil, err
			}
			emp := employees[i]
			return &emp, nil
		}
	}

	return nil, errors.NotFound("employee")
}

// DeleteEmployee removes an employee and filters out every absence record
// referencing it, the explicit cascade of the local backend.
func (s *LocalStore) DeleteEmployee(ctx context.Context, id string) error {
	employees, err := s.readEmployees()
	if err != nil {
		return err
	}

	kept := employees[:0:0]
	for _, emp := range employees {
		if emp.ID != id {
			kept = append(kept, emp)
		}
	}
	if len(kept) == len(employees) {
		return errors.NotFound("employee")
	}

	absences, err := s.readAbsences()
	if err != nil {
		return err
	}
	keptAbsences := absences[:0:0]
	for _, rec := range absences {
		if rec.EmployeeID != id {
			keptAbsences = append(keptAbsences, rec)
		}
	}

	if err := s.writeEmployees(kept); err != nil {
		return err
	}
	if err := s.writeAbsences(keptAbsences); err != nil {
		return err
	}

	s.logger.Info().
		Str("employee_id", id).
		Int("absences_removed", len(absences)-len(keptAbsences)).
		Msg("employee deleted with absence cascade")
	return nil
}

// ListAbsences returns absence records, optionally for one employee
func (s *LocalStore) ListAbsences(ctx context.Context, employeeID string) ([]domain.AbsenceRecord, error) {
	absences, err := s.readAbsences()
	if err != nil {
		return nil, err
	}
	if employeeID == "" {
		return absences, nil
	}

	filtered := []domain.AbsenceRecord{}
	for _, rec := range absences {
		if rec.EmployeeID == employeeID {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

// CreateAbsence validates, checks the employee reference explicitly (the
// document store enforces no constraints) and appends a new record.
func (s *LocalStore) CreateAbsence(ctx context.Context, in domain.NewAbsence) (*domain.AbsenceRecord, error) {
	if err := domain.ValidateNewAbsence(in); err != nil {
		return nil, err
	}

	employees, err := s.readEmployees()
	if err != nil {
		return nil, err
	}
	found := false
	for _, emp := range employees {
		if emp.ID == in.EmployeeID {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.InvalidReference("employeeId")
	}

	absences, err := s.readAbsences()
	if err != nil {
		return nil, err
	}

	rec := domain.AbsenceRecord{
		ID:         uuid.New().String(),
		EmployeeID: in.EmployeeID,
		Date:       in.Date,
		Type:       in.Type,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		Notes:      in.Notes,
	}
	absences = append(absences, rec)
	if err := s.writeAbsences(absences); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("absence_id", rec.ID).
		Str("employee_id", rec.EmployeeID).
		Msg("absence created")
	return &rec, nil
}

// DeleteAbsence removes a single absence record
func (s *LocalStore) DeleteAbsence(ctx context.Context, id string) error {
	absences, err := s.readAbsences()
	if err != nil {
		return err
	}

	kept := absences[:0:0]
	for _, rec := range absences {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(absences) {
		return errors.NotFound("absence")
	}

	return s.writeAbsences(kept)
}

// Close releases the underlying document store
func (s *LocalStore) Close() error {
	return s.docs.Close()
}
