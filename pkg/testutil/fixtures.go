package testutil

import "github.com/Hojgaetan/GDA/internal/absence/domain"

// SampleEmployee returns a valid employee for tests
func SampleEmployee(id, name string) domain.Employee {
	return domain.Employee{
		ID:   id,
		Name: name,
		Role: "Dev",
	}
}

// SampleAbsence returns a valid absence record for tests
func SampleAbsence(id, employeeID, date string) domain.AbsenceRecord {
	return domain.AbsenceRecord{
		ID:         id,
		EmployeeID: employeeID,
		Date:       date,
		Type:       domain.TypeMaladie,
		StartTime:  "09:00",
		EndTime:    "10:00",
		Notes:      "Test",
	}
}

// SampleNewAbsence returns valid caller-supplied absence fields for tests
func SampleNewAbsence(employeeID, date string) domain.NewAbsence {
	return domain.NewAbsence{
		EmployeeID: employeeID,
		Date:       date,
		Type:       domain.TypeMaladie,
		StartTime:  "09:00",
		EndTime:    "10:00",
		Notes:      "Test",
	}
}
