package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hojgaetan/GDA/internal/absence/domain"
	"github.com/Hojgaetan/GDA/pkg/errors"
	"github.com/Hojgaetan/GDA/pkg/testutil"
)

var testEmployees = []domain.Employee{
	testutil.SampleEmployee("A", "Alice"),
	testutil.SampleEmployee("B", "Bob"),
}

func absence(id, employeeID, date string, absType domain.AbsenceType, start, end string) domain.AbsenceRecord {
	return domain.AbsenceRecord{
		ID:         id,
		EmployeeID: employeeID,
		Date:       date,
		Type:       absType,
		StartTime:  start,
		EndTime:    end,
	}
}

func TestDateRange_Contains(t *testing.T) {
	r := DateRange{Start: "2025-01-01", End: "2025-01-31"}
	assert.True(t, r.Contains("2025-01-01"))
	assert.True(t, r.Contains("2025-01-15"))
	assert.True(t, r.Contains("2025-01-31"))
	assert.False(t, r.Contains("2024-12-31"))
	assert.False(t, r.Contains("2025-02-01"))

	unbounded := DateRange{}
	assert.True(t, unbounded.Contains("1999-01-01"))
	assert.True(t, unbounded.Contains("2999-12-31"))
}

func TestComputeOverview(t *testing.T) {
	now := time.Date(2025, time.January, 20, 12, 0, 0, 0, time.UTC)
	absences := []domain.AbsenceRecord{
		absence("1", "A", "2025-01-10", domain.TypeMaladie, "09:00", "10:00"),
		absence("2", "A", "2025-01-11", domain.TypeRetard, "09:00", "09:30"),
		absence("3", "B", "2025-01-12", domain.TypeMaladie, "14:00", "16:00"),
		// outside the current month, ignored by the headline metrics
		absence("4", "B", "2024-12-25", domain.TypePersonnel, "09:00", "17:00"),
	}

	ov := ComputeOverview(testEmployees, absences, now)
	assert.Equal(t, 2, ov.TotalEmployees)
	assert.Equal(t, 3, ov.AbsencesThisMonth)
	assert.Equal(t, string(domain.TypeMaladie), ov.MostCommonType)
}

func TestComputeOverview_Empty(t *testing.T) {
	now := time.Date(2025, time.January, 20, 12, 0, 0, 0, time.UTC)
	ov := ComputeOverview(testEmployees, nil, now)
	assert.Equal(t, 2, ov.TotalEmployees)
	assert.Equal(t, 0, ov.AbsencesThisMonth)
	assert.Equal(t, "N/A", ov.MostCommonType)
}

func TestComputeOverview_TieBreak(t *testing.T) {
	now := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	absences := []domain.AbsenceRecord{
		absence("1", "A", "2025-03-01", domain.TypeRetard, "09:00", "09:15"),
		absence("2", "A", "2025-03-02", domain.TypeMaladie, "09:00", "10:00"),
		absence("3", "B", "2025-03-03", domain.TypeMaladie, "09:00", "10:00"),
		absence("4", "B", "2025-03-04", domain.TypeRetard, "09:00", "09:15"),
	}

	// equal counts: the type encountered first in snapshot order wins
	ov := ComputeOverview(testEmployees, absences, now)
	assert.Equal(t, string(domain.TypeRetard), ov.MostCommonType)
}

func TestCountByType(t *testing.T) {
	absences := []domain.AbsenceRecord{
		absence("1", "A", "2025-01-10", domain.TypeMaladie, "09:00", "10:00"),
		absence("2", "A", "2025-01-11", domain.TypeMaladie, "09:00", "10:00"),
		absence("3", "B", "2025-01-12", domain.TypeRetard, "09:00", "09:30"),
		absence("4", "B", "2025-02-01", domain.TypeRetard, "09:00", "09:30"),
	}

	counts := CountByType(absences, DateRange{Start: "2025-01-01", End: "2025-01-31"})
	assert.Equal(t, 2, counts[domain.TypeMaladie])
	assert.Equal(t, 1, counts[domain.TypeRetard])
}

func TestCountByEmployee(t *testing.T) {
	absences := []domain.AbsenceRecord{
		absence("1", "A", "2025-01-10", domain.TypeMaladie, "09:00", "10:00"),
		absence("2", "B", "2025-01-11", domain.TypeRetard, "09:00", "09:30"),
		absence("3", "B", "2025-01-12", domain.TypeRetard, "09:00", "09:30"),
		// employee no longer exists
		absence("4", "ghost", "2025-01-13", domain.TypePersonnel, "09:00", "10:00"),
	}

	counts := CountByEmployee(testEmployees, absences, DateRange{})
	require.Len(t, counts, 3)
	assert.Equal(t, NameCount{Name: "Bob", Count: 2}, counts[0])
	// equal counts sort by name ascending
	assert.Equal(t, NameCount{Name: "Alice", Count: 1}, counts[1])
	assert.Equal(t, NameCount{Name: UnknownEmployee, Count: 1}, counts[2])
}

func TestComputeDurations(t *testing.T) {
	absences := []domain.AbsenceRecord{
		absence("1", "A", "2025-01-10", domain.TypeMaladie, "09:00", "10:30"),
	}

	stats, err := ComputeDurations(testEmployees, absences, DateRange{})
	require.NoError(t, err)

	assert.Equal(t, 90, stats.TotalMinutes)
	assert.Equal(t, "1h30", stats.TotalFormatted)
	assert.Equal(t, 1, stats.Count)

	require.Len(t, stats.TopEmployees, 1)
	assert.Equal(t, NameMinutes{Name: "Alice", Minutes: 90}, stats.TopEmployees[0])
	// Bob has no absences: zero, not listed

	require.Len(t, stats.TopTypes, 1)
	assert.Equal(t, TypeCount{Type: domain.TypeMaladie, Count: 1}, stats.TopTypes[0])

	assert.Equal(t, 90, stats.AvgPerDayMinutes)
}

func TestComputeDurations_TopsAreCapped(t *testing.T) {
	employees := []domain.Employee{
		{ID: "1", Name: "E1"}, {ID: "2", Name: "E2"}, {ID: "3", Name: "E3"},
		{ID: "4", Name: "E4"}, {ID: "5", Name: "E5"}, {ID: "6", Name: "E6"},
	}
	absences := []domain.AbsenceRecord{
		absence("a", "1", "2025-01-01", domain.TypeMaladie, "09:00", "15:00"),
		absence("b", "2", "2025-01-01", domain.TypeCongesPayes, "09:00", "14:00"),
		absence("c", "3", "2025-01-01", domain.TypePersonnel, "09:00", "13:00"),
		absence("d", "4", "2025-01-01", domain.TypeNonJustifiee, "09:00", "12:00"),
		absence("e", "5", "2025-01-01", domain.TypeRetard, "09:00", "11:00"),
		absence("f", "6", "2025-01-01", domain.TypeMaladie, "09:00", "10:00"),
	}

	stats, err := ComputeDurations(employees, absences, DateRange{})
	require.NoError(t, err)

	require.Len(t, stats.TopEmployees, 5)
	assert.Equal(t, "E1", stats.TopEmployees[0].Name)
	assert.Equal(t, "E5", stats.TopEmployees[4].Name)

	require.Len(t, stats.TopTypes, 3)
	assert.Equal(t, domain.TypeMaladie, stats.TopTypes[0].Type)
}

func TestComputeDurations_AvgPerActiveDay(t *testing.T) {
	absences := []domain.AbsenceRecord{
		absence("1", "A", "2025-01-10", domain.TypeMaladie, "09:00", "10:00"),
		absence("2", "A", "2025-01-10", domain.TypeRetard, "10:00", "10:30"),
		absence("3", "B", "2025-01-11", domain.TypeMaladie, "09:00", "10:30"),
	}

	stats, err := ComputeDurations(testEmployees, absences, DateRange{})
	require.NoError(t, err)

	// 180 minutes over 2 distinct dates
	assert.Equal(t, 180, stats.TotalMinutes)
	assert.Equal(t, 90, stats.AvgPerDayMinutes)
}

func TestComputeDurations_EmptyRange(t *testing.T) {
	stats, err := ComputeDurations(testEmployees, nil, DateRange{})
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalMinutes)
	assert.Equal(t, "0h00", stats.TotalFormatted)
	assert.Equal(t, 0, stats.AvgPerDayMinutes)
	assert.Equal(t, 0, stats.Count)
}

func TestComputeDurations_InvertedRecordSurfaces(t *testing.T) {
	absences := []domain.AbsenceRecord{
		// should never be persisted, but the aggregator must not crash on it
		absence("1", "A", "2025-01-10", domain.TypeMaladie, "10:00", "09:00"),
	}

	_, err := ComputeDurations(testEmployees, absences, DateRange{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvertedTimeRange))
}

func TestComputeDurations_DateRangeExcludes(t *testing.T) {
	absences := []domain.AbsenceRecord{
		absence("1", "A", "2025-01-15", domain.TypeMaladie, "09:00", "10:30"),
		absence("2", "B", "2025-02-01", domain.TypeMaladie, "09:00", "17:00"),
	}

	stats, err := ComputeDurations(testEmployees, absences, DateRange{Start: "2025-01-01", End: "2025-01-31"})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Count)
	assert.Equal(t, 90, stats.TotalMinutes)
}

func TestFilterAbsences(t *testing.T) {
	absences := []domain.AbsenceRecord{
		absence("1", "A", "2025-01-10", domain.TypeMaladie, "09:00", "10:00"),
		absence("2", "B", "2025-01-12", domain.TypeRetard, "09:00", "09:30"),
		absence("3", "A", "2025-01-14", domain.TypeRetard, "09:00", "09:30"),
		absence("4", "ghost", "2025-01-16", domain.TypeMaladie, "09:00", "10:00"),
	}

	all := FilterAbsences(testEmployees, absences, "", "", DateRange{})
	require.Len(t, all, 4)
	// most recent first
	assert.Equal(t, "4", all[0].ID)
	assert.Equal(t, UnknownEmployee, all[0].EmployeeName)
	assert.Equal(t, "1", all[3].ID)
	assert.Equal(t, "Alice", all[3].EmployeeName)

	byEmployee := FilterAbsences(testEmployees, absences, "A", "", DateRange{})
	require.Len(t, byEmployee, 2)

	byType := FilterAbsences(testEmployees, absences, "", domain.TypeRetard, DateRange{})
	require.Len(t, byType, 2)

	byBoth := FilterAbsences(testEmployees, absences, "A", domain.TypeRetard, DateRange{Start: "2025-01-13", End: ""})
	require.Len(t, byBoth, 1)
	assert.Equal(t, "3", byBoth[0].ID)
}
