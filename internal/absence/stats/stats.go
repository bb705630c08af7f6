// Package stats derives dashboard metrics from employee and absence
// snapshots. Every function is a pure transform over the collections it is
// given; nothing here re-fetches data.
package stats

import (
	"sort"
	"time"

	"github.com/Hojgaetan/GDA/internal/absence/domain"
	"github.com/Hojgaetan/GDA/internal/absence/timeutil"
)

// UnknownEmployee is the bucket absences fall into when their employeeId no
// longer resolves against the employee snapshot.
const UnknownEmployee = "Unknown"

// DateRange is an inclusive [Start, End] filter over ISO dates. An empty
// bound is unbounded. ISO dates compare correctly as strings.
type DateRange struct {
	Start string
	End   string
}

// Contains reports whether date lies within the range
func (r DateRange) Contains(date string) bool {
	if r.Start != "" && date < r.Start {
		return false
	}
	if r.End != "" && date > r.End {
		return false
	}
	return true
}

func filterByDate(absences []domain.AbsenceRecord, r DateRange) []domain.AbsenceRecord {
	filtered := []domain.AbsenceRecord{}
	for _, a := range absences {
		if r.Contains(a.Date) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func employeeNames(employees []domain.Employee) map[string]string {
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}
	return names
}

func resolveName(names map[string]string, employeeID string) string {
	if name, ok := names[employeeID]; ok {
		return name
	}
	return UnknownEmployee
}

// Overview is the headline metric block. AbsencesThisMonth and
// MostCommonType are evaluated against the wall-clock current month, never
// the dashboard filter range.
type Overview struct {
	TotalEmployees    int
	AbsencesThisMonth int
	MostCommonType    string
}

// ComputeOverview derives the headline metrics for the month containing now.
// When counts tie, the type that first appears in snapshot order wins.
func ComputeOverview(employees []domain.Employee, absences []domain.AbsenceRecord, now time.Time) Overview {
	monthPrefix := now.Format("2006-01")

	counts := make(map[domain.AbsenceType]int)
	var order []domain.AbsenceType
	thisMonth := 0

	for _, a := range absences {
		if len(a.Date) < len(monthPrefix) || a.Date[:len(monthPrefix)] != monthPrefix {
			continue
		}
		thisMonth++
		if counts[a.Type] == 0 {
			order = append(order, a.Type)
		}
		counts[a.Type]++
	}

	mostCommon := "N/A"
	best := 0
	for _, t := range order {
		if counts[t] > best {
			best = counts[t]
			mostCommon = string(t)
		}
	}

	return Overview{
		TotalEmployees:    len(employees),
		AbsencesThisMonth: thisMonth,
		MostCommonType:    mostCommon,
	}
}

// NameCount pairs a display label with an occurrence count
type NameCount struct {
	Name  string
	Count int
}

// CountByType counts absences per category within the range
func CountByType(absences []domain.AbsenceRecord, r DateRange) map[domain.AbsenceType]int {
	counts := make(map[domain.AbsenceType]int)
	for _, a := range filterByDate(absences, r) {
		counts[a.Type]++
	}
	return counts
}

// CountByEmployee counts absences per employee display name within the
// range, sorted by count descending then name ascending. Records whose
// employee no longer exists land in the Unknown bucket.
func CountByEmployee(employees []domain.Employee, absences []domain.AbsenceRecord, r DateRange) []NameCount {
	names := employeeNames(employees)

	counts := make(map[string]int)
	for _, a := range filterByDate(absences, r) {
		counts[resolveName(names, a.EmployeeID)]++
	}

	out := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// NameMinutes pairs a display label with a minute total
type NameMinutes struct {
	Name    string
	Minutes int
}

// TypeCount pairs an absence category with an occurrence count
type TypeCount struct {
	Type  domain.AbsenceType
	Count int
}

// DurationStats aggregates the time dimension of the filtered absences
type DurationStats struct {
	TotalMinutes       int
	TotalFormatted     string
	TopEmployees       []NameMinutes // top 5 by minutes, descending
	TopTypes           []TypeCount   // top 3 by count, descending
	AvgPerDayMinutes   int
	AvgPerDayFormatted string
	Count              int
}

// ComputeDurations sums per-record durations within the range. Creation
// validates time windows, so an inverted range in stored data is a data
// error: it is returned to the caller, never skipped or papered over.
func ComputeDurations(employees []domain.Employee, absences []domain.AbsenceRecord, r DateRange) (DurationStats, error) {
	names := employeeNames(employees)
	filtered := filterByDate(absences, r)

	totalMinutes := 0
	minutesByEmployee := make(map[string]int)
	countsByType := make(map[domain.AbsenceType]int)
	activeDays := make(map[string]struct{})

	for _, a := range filtered {
		mins, err := timeutil.DurationMinutes(a.StartTime, a.EndTime)
		if err != nil {
			return DurationStats{}, err
		}
		totalMinutes += mins
		minutesByEmployee[resolveName(names, a.EmployeeID)] += mins
		countsByType[a.Type]++
		activeDays[a.Date] = struct{}{}
	}

	topEmployees := make([]NameMinutes, 0, len(minutesByEmployee))
	for name, mins := range minutesByEmployee {
		topEmployees = append(topEmployees, NameMinutes{Name: name, Minutes: mins})
	}
	sort.Slice(topEmployees, func(i, j int) bool {
		if topEmployees[i].Minutes != topEmployees[j].Minutes {
			return topEmployees[i].Minutes > topEmployees[j].Minutes
		}
		return topEmployees[i].Name < topEmployees[j].Name
	})
	if len(topEmployees) > 5 {
		topEmployees = topEmployees[:5]
	}

	topTypes := make([]TypeCount, 0, len(countsByType))
	for t, count := range countsByType {
		topTypes = append(topTypes, TypeCount{Type: t, Count: count})
	}
	sort.Slice(topTypes, func(i, j int) bool {
		if topTypes[i].Count != topTypes[j].Count {
			return topTypes[i].Count > topTypes[j].Count
		}
		return topTypes[i].Type < topTypes[j].Type
	})
	if len(topTypes) > 3 {
		topTypes = topTypes[:3]
	}

	// Minimum divisor of 1: an empty range still averages to zero instead
	// of dividing by zero.
	days := len(activeDays)
	if days == 0 {
		days = 1
	}
	avg := (totalMinutes + days/2) / days // rounded to the nearest minute

	return DurationStats{
		TotalMinutes:       totalMinutes,
		TotalFormatted:     timeutil.FormatDuration(totalMinutes),
		TopEmployees:       topEmployees,
		TopTypes:           topTypes,
		AvgPerDayMinutes:   avg,
		AvgPerDayFormatted: timeutil.FormatDuration(avg),
		Count:              len(filtered),
	}, nil
}

// FilteredAbsence is an absence joined with its employee display name
type FilteredAbsence struct {
	domain.AbsenceRecord
	EmployeeName string
}

// FilterAbsences applies the dashboard filters: optional employee, optional
// category and the date range. Results are sorted most recent date first.
func FilterAbsences(employees []domain.Employee, absences []domain.AbsenceRecord, employeeID string, absenceType domain.AbsenceType, r DateRange) []FilteredAbsence {
	names := employeeNames(employees)

	out := []FilteredAbsence{}
	for _, a := range absences {
		if employeeID != "" && a.EmployeeID != employeeID {
			continue
		}
		if absenceType != "" && a.Type != absenceType {
			continue
		}
		if !r.Contains(a.Date) {
			continue
		}
		out = append(out, FilteredAbsence{
			AbsenceRecord: a,
			EmployeeName:  resolveName(names, a.EmployeeID),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
