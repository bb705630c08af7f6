package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hojgaetan/GDA/internal/absence/domain"
	"github.com/Hojgaetan/GDA/pkg/errors"
	"github.com/Hojgaetan/GDA/pkg/testutil"
)

func TestEmployeeRepository_List(t *testing.T) {
	mock := testutil.NewMockDB(t)
	defer mock.Close()
	repo := NewEmployeeRepository(mock.DB)

	rows := sqlmock.NewRows([]string{"id", "name", "role"}).
		AddRow("1", "Alice Dubois", "Développeuse Frontend").
		AddRow("2", "Bob Martin", "Chef de Projet")
	mock.ExpectQuery(`SELECT id, name, role FROM employees ORDER BY name ASC`).
		WillReturnRows(rows)

	employees, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "Alice Dubois", employees[0].Name)
	mock.ExpectationsWereMet(t)
}

func TestEmployeeRepository_Create(t *testing.T) {
	mock := testutil.NewMockDB(t)
	defer mock.Close()
	repo := NewEmployeeRepository(mock.DB)

	mock.ExpectExec(`INSERT INTO employees (id, name, role) VALUES ($1, $2, $3)`).
		WithArgs(sqlmock.AnyArg(), "Eva Morel", "QA").
		WillReturnResult(sqlmock.NewResult(0, 1))

	emp := domain.Employee{Name: "Eva Morel", Role: "QA"}
	require.NoError(t, repo.Create(context.Background(), &emp))
	assert.NotEmpty(t, emp.ID)
	mock.ExpectationsWereMet(t)
}

func TestEmployeeRepository_Update_NotFound(t *testing.T) {
	mock := testutil.NewMockDB(t)
	defer mock.Close()
	repo := NewEmployeeRepository(mock.DB)

	mock.ExpectExec(`UPDATE employees SET name = $2, role = $3 WHERE id = $1`).
		WithArgs("missing", "X", "Y").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.Employee{ID: "missing", Name: "X", Role: "Y"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
	mock.ExpectationsWereMet(t)
}

func TestEmployeeRepository_Delete(t *testing.T) {
	mock := testutil.NewMockDB(t)
	defer mock.Close()
	repo := NewEmployeeRepository(mock.DB)

	mock.ExpectExec(`DELETE FROM employees WHERE id = $1`).
		WithArgs("1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "1"))
	mock.ExpectationsWereMet(t)
}

func TestEmployeeRepository_Delete_NotFound(t *testing.T) {
	mock := testutil.NewMockDB(t)
	defer mock.Close()
	repo := NewEmployeeRepository(mock.DB)

	mock.ExpectExec(`DELETE FROM employees WHERE id = $1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
	mock.ExpectationsWereMet(t)
}

func TestEmployeeRepository_Create_DuplicateID(t *testing.T) {
	mock := testutil.NewMockDB(t)
	defer mock.Close()
	repo := NewEmployeeRepository(mock.DB)

	mock.ExpectExec(`INSERT INTO employees (id, name, role) VALUES ($1, $2, $3)`).
		WithArgs("1", "Eva Morel", "QA").
		WillReturnError(&pq.Error{Code: "23505"})

	emp := domain.Employee{ID: "1", Name: "Eva Morel", Role: "QA"}
	err := repo.Create(context.Background(), &emp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrBadRequest))
	mock.ExpectationsWereMet(t)
}
