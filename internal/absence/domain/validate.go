package domain

import (
	"strings"

	"github.com/Hojgaetan/GDA/internal/absence/timeutil"
	"github.com/Hojgaetan/GDA/pkg/errors"
)

// ValidateNewEmployee checks the caller-supplied fields and returns the
// trimmed values. Name and role must be non-empty after trimming.
func ValidateNewEmployee(in NewEmployee) (NewEmployee, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Role = strings.TrimSpace(in.Role)

	details := make(map[string]string)
	if in.Name == "" {
		details["name"] = "must not be empty"
	}
	if in.Role == "" {
		details["role"] = "must not be empty"
	}
	if len(details) > 0 {
		return in, errors.Validation(details)
	}
	return in, nil
}

// ValidateNewAbsence checks required fields, the absence category and the
// time window. The start must be strictly before the end within the same
// calendar day; overnight absences are rejected at creation.
func ValidateNewAbsence(in NewAbsence) error {
	details := make(map[string]string)
	if strings.TrimSpace(in.EmployeeID) == "" {
		details["employeeId"] = "must not be empty"
	}
	if strings.TrimSpace(in.Date) == "" {
		details["date"] = "must not be empty"
	}
	if in.Type == "" {
		details["type"] = "must not be empty"
	} else if !ValidType(in.Type) {
		details["type"] = "unknown absence type"
	}
	if in.StartTime == "" {
		details["startTime"] = "must not be empty"
	}
	if in.EndTime == "" {
		details["endTime"] = "must not be empty"
	}
	if len(details) > 0 {
		return errors.Validation(details)
	}

	minutes, err := timeutil.DurationMinutes(in.StartTime, in.EndTime)
	if err != nil {
		return err
	}
	if minutes == 0 {
		return errors.Validation(map[string]string{
			"endTime": "must be after startTime",
		})
	}

	return nil
}
