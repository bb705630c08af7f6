// Package domain holds the entities shared by every backend of the
// absence-tracking service.
package domain

// Employee is a tracked member of staff
type Employee struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Role string `db:"role" json:"role"`
}

// AbsenceType categorizes the reason an employee was away
type AbsenceType string

// Absence categories, as displayed to users
const (
	TypeMaladie      AbsenceType = "Maladie"
	TypeCongesPayes  AbsenceType = "Congés Payés"
	TypePersonnel    AbsenceType = "Personnel"
	TypeNonJustifiee AbsenceType = "Non Justifiée"
	TypeRetard       AbsenceType = "Retard"
)

// AbsenceTypes lists every valid absence category
var AbsenceTypes = []AbsenceType{
	TypeMaladie,
	TypeCongesPayes,
	TypePersonnel,
	TypeNonJustifiee,
	TypeRetard,
}

// ValidType reports whether t is a known absence category
func ValidType(t AbsenceType) bool {
	for _, known := range AbsenceTypes {
		if t == known {
			return true
		}
	}
	return false
}

// AbsenceRecord is one bounded time window an employee spent away from work.
// Records are created once and never updated in place.
type AbsenceRecord struct {
	ID         string      `db:"id" json:"id"`
	EmployeeID string      `db:"employee_id" json:"employeeId"`
	Date       string      `db:"date" json:"date"` // YYYY-MM-DD
	Type       AbsenceType `db:"type" json:"type"`
	StartTime  string      `db:"start_time" json:"startTime"` // HH:MM
	EndTime    string      `db:"end_time" json:"endTime"`     // HH:MM
	Notes      string      `db:"notes" json:"notes,omitempty"`
}

// NewEmployee carries the caller-supplied fields of an employee to create or update
type NewEmployee struct {
	Name string `json:"name" validate:"required"`
	Role string `json:"role" validate:"required"`
}

// NewAbsence carries the caller-supplied fields of an absence record
type NewAbsence struct {
	EmployeeID string      `json:"employeeId" validate:"required"`
	Date       string      `json:"date" validate:"required,datetime=2006-01-02"`
	Type       AbsenceType `json:"type" validate:"required"`
	StartTime  string      `json:"startTime" validate:"required"`
	EndTime    string      `json:"endTime" validate:"required"`
	Notes      string      `json:"notes,omitempty"`
}
