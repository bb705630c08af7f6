// gda-report prints dashboard metrics for a date range and optionally writes
// the CSV export file. It talks to whichever backend the configuration
// selects: the remote absence API when a base URL is set, the embedded local
// store otherwise.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Hojgaetan/GDA/internal/absence/domain"
	"github.com/Hojgaetan/GDA/internal/absence/export"
	"github.com/Hojgaetan/GDA/internal/absence/stats"
	"github.com/Hojgaetan/GDA/internal/absence/store"
	"github.com/Hojgaetan/GDA/internal/absence/timeutil"
	"github.com/Hojgaetan/GDA/pkg/config"
	"github.com/Hojgaetan/GDA/pkg/logger"
)

func main() {
	var (
		from        = flag.String("from", "", "start of the date range, inclusive (YYYY-MM-DD)")
		to          = flag.String("to", "", "end of the date range, inclusive (YYYY-MM-DD)")
		employeeID  = flag.String("employee", "", "only include absences of this employee id")
		absenceType = flag.String("type", "", "only include absences of this category")
		csvPath     = flag.String("csv", "", "write the CSV export to this file (use \"auto\" for the dated default name)")
	)
	flag.Parse()

	cfg, err := config.Load("gda-report")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("gda-report", cfg.Server.Environment)

	st, err := store.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open data store")
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	employees, err := st.ListEmployees(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to list employees")
	}
	absences, err := st.ListAbsences(ctx, "")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to list absences")
	}

	dateRange := stats.DateRange{Start: *from, End: *to}

	overview := stats.ComputeOverview(employees, absences, time.Now())
	fmt.Printf("Employés: %d\n", overview.TotalEmployees)
	fmt.Printf("Absences ce mois-ci: %d\n", overview.AbsencesThisMonth)
	fmt.Printf("Type le plus fréquent ce mois-ci: %s\n", overview.MostCommonType)

	durations, err := stats.ComputeDurations(employees, absences, dateRange)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to compute duration statistics")
	}

	fmt.Printf("\nAbsences dans la période: %d\n", durations.Count)
	fmt.Printf("Durée totale: %s\n", durations.TotalFormatted)
	fmt.Printf("Moyenne par jour actif: %s\n", durations.AvgPerDayFormatted)

	if len(durations.TopEmployees) > 0 {
		fmt.Println("\nTop employés par durée:")
		for _, e := range durations.TopEmployees {
			fmt.Printf("  %-30s %s\n", e.Name, timeutil.FormatDuration(e.Minutes))
		}
	}
	if len(durations.TopTypes) > 0 {
		fmt.Println("\nTop types:")
		for _, t := range durations.TopTypes {
			fmt.Printf("  %-30s %d\n", t.Type, t.Count)
		}
	}

	if *csvPath == "" {
		return
	}

	filtered := stats.FilterAbsences(employees, absences, *employeeID, domain.AbsenceType(*absenceType), dateRange)

	path := *csvPath
	if path == "auto" {
		path = export.Filename(time.Now())
	}

	f, err := os.Create(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to create export file")
	}
	defer f.Close()

	if err := export.Write(f, export.Rows(filtered)); err != nil {
		log.Fatal().Err(err).Msg("failed to write export")
	}

	log.Info().Str("path", path).Int("rows", len(filtered)).Msg("export written")
}
