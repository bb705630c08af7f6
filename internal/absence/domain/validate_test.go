package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hojgaetan/GDA/pkg/errors"
)

func TestValidateNewEmployee(t *testing.T) {
	in, err := ValidateNewEmployee(NewEmployee{Name: "  Alice  ", Role: " Dev "})
	require.NoError(t, err)
	assert.Equal(t, "Alice", in.Name)
	assert.Equal(t, "Dev", in.Role)
}

func TestValidateNewEmployee_Empty(t *testing.T) {
	tests := []struct {
		name  string
		input NewEmployee
		field string
	}{
		{"empty name", NewEmployee{Name: "", Role: "Dev"}, "name"},
		{"blank name", NewEmployee{Name: "   ", Role: "Dev"}, "name"},
		{"empty role", NewEmployee{Name: "Alice", Role: ""}, "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateNewEmployee(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrValidation))

			var appErr *errors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Contains(t, appErr.Details, tt.field)
		})
	}
}

func validAbsence() NewAbsence {
	return NewAbsence{
		EmployeeID: "1",
		Date:       "2025-01-15",
		Type:       TypeMaladie,
		StartTime:  "09:00",
		EndTime:    "10:00",
	}
}

func TestValidateNewAbsence(t *testing.T) {
	require.NoError(t, ValidateNewAbsence(validAbsence()))
}

func TestValidateNewAbsence_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NewAbsence)
		field  string
	}{
		{"missing employee", func(a *NewAbsence) { a.EmployeeID = "" }, "employeeId"},
		{"missing date", func(a *NewAbsence) { a.Date = "" }, "date"},
		{"missing type", func(a *NewAbsence) { a.Type = "" }, "type"},
		{"unknown type", func(a *NewAbsence) { a.Type = "Télétravail" }, "type"},
		{"missing start", func(a *NewAbsence) { a.StartTime = "" }, "startTime"},
		{"missing end", func(a *NewAbsence) { a.EndTime = "" }, "endTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validAbsence()
			tt.mutate(&in)

			err := ValidateNewAbsence(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrValidation))

			var appErr *errors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Contains(t, appErr.Details, tt.field)
		})
	}
}

func TestValidateNewAbsence_TimeWindow(t *testing.T) {
	in := validAbsence()
	in.StartTime = "23:00"
	in.EndTime = "01:00"
	err := ValidateNewAbsence(in)
	assert.True(t, errors.Is(err, errors.ErrInvertedTimeRange), "overnight absences are rejected")

	in = validAbsence()
	in.StartTime = "09:00"
	in.EndTime = "09:00"
	err = ValidateNewAbsence(in)
	assert.True(t, errors.Is(err, errors.ErrValidation), "zero-length windows are rejected")

	in = validAbsence()
	in.StartTime = "24:00"
	err = ValidateNewAbsence(in)
	assert.True(t, errors.Is(err, errors.ErrInvalidTimeFormat))
}
