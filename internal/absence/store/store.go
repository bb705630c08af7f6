// Package store exposes employee and absence CRUD behind a single contract
// with two interchangeable backends: a remote HTTP API and an embedded local
// document store. The backend is chosen once at startup from configuration;
// there is no runtime switching.
package store

import (
	"context"

	"github.com/Hojgaetan/GDA/internal/absence/domain"
	"github.com/Hojgaetan/GDA/pkg/config"
	"github.com/Hojgaetan/GDA/pkg/docstore"
	"github.com/Hojgaetan/GDA/pkg/logger"
)

// Store is the data-access contract shared by both backends. Sequences come
// back in storage order; callers apply any display ordering themselves.
type Store interface {
	// ListEmployees returns every employee.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	// CreateEmployee persists a new employee from trimmed, non-empty name
	// and role, and returns it with its generated id.
	CreateEmployee(ctx context.Context, in domain.NewEmployee) (*domain.Employee, error)

	// UpdateEmployee replaces an employee's name and role. The id is
	// immutable. Fails with a not-found error for unknown ids.
	UpdateEmployee(ctx context.Context, id string, in domain.NewEmployee) (*domain.Employee, error)

	// DeleteEmployee removes an employee and cascades to every absence
	// record referencing it.
	DeleteEmployee(ctx context.Context, id string) error

	// ListAbsences returns absence records, all of them or only those of
	// one employee when employeeID is non-empty.
	ListAbsences(ctx context.Context, employeeID string) ([]domain.AbsenceRecord, error)

	// CreateAbsence persists a new absence record and returns it with its
	// generated id. The employee reference must resolve at creation time.
	CreateAbsence(ctx context.Context, in domain.NewAbsence) (*domain.AbsenceRecord, error)

	// DeleteAbsence removes a single absence record.
	DeleteAbsence(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}

// New selects and opens a backend: remote when an API base URL is
// configured, otherwise the embedded local store.
func New(cfg *config.Config, log *logger.Logger) (Store, error) {
	if cfg.API.BaseURL != "" {
		return NewRemote(cfg.API.BaseURL, cfg.API.Timeout, log), nil
	}

	docs, err := docstore.Open(cfg.LocalStore.Path)
	if err != nil {
		return nil, err
	}
	return NewLocal(docs, log)
}
