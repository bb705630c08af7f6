// Package export flattens filtered absences into the CSV file consumed by
// spreadsheet tools.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/Hojgaetan/GDA/internal/absence/stats"
)

// Header is the fixed French column row of the export file
var Header = []string{"Employé", "Date", "Type", "Heure de début", "Heure de fin", "Notes"}

// utf8BOM lets spreadsheet tools detect the encoding of accented headers
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Rows projects filtered absences into export rows: employee display name,
// ISO date, category, start, end, notes.
func Rows(absences []stats.FilteredAbsence) [][]string {
	rows := make([][]string, 0, len(absences))
	for _, a := range absences {
		rows = append(rows, []string{
			a.EmployeeName,
			a.Date,
			string(a.Type),
			a.StartTime,
			a.EndTime,
			a.Notes,
		})
	}
	return rows
}

// Write emits the BOM, the header and the rows. Cells containing commas,
// quotes or newlines are quoted with inner quotes doubled.
func Write(w io.Writer, rows [][]string) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Filename returns the dated export file name, e.g.
// export-absences-2025-01-15.csv
func Filename(now time.Time) string {
	return fmt.Sprintf("export-absences-%s.csv", now.Format("2006-01-02"))
}
