package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Hojgaetan/GDA/internal/absence/handler"
	"github.com/Hojgaetan/GDA/internal/absence/repository"
	"github.com/Hojgaetan/GDA/internal/absence/service"
	"github.com/Hojgaetan/GDA/pkg/config"
	"github.com/Hojgaetan/GDA/pkg/database"
	"github.com/Hojgaetan/GDA/pkg/httputil"
	"github.com/Hojgaetan/GDA/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithValidation("gda-server")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("gda-server", cfg.Server.Environment)
	log.Info().Msg("starting absence API")

	// Connect to database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Create tables and seed bootstrap employees on first boot
	if err := repository.EnsureSchema(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("failed to prepare schema")
	}

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	absenceRepo := repository.NewAbsenceRepository(db)

	// Initialize service
	absenceService := service.NewAbsenceService(employeeRepo, absenceRepo, log)

	// Initialize handlers
	employeeHandler := handler.NewEmployeeHandler(absenceService, log)
	absenceHandler := handler.NewAbsenceHandler(absenceService, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(httputil.RequestID)
	r.Use(httputil.Logger(log))
	r.Use(httputil.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	// Health check
	r.Get("/health", handler.Health(db))

	// Employee routes
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", employeeHandler.List)
		r.Post("/", employeeHandler.Create)
		r.Put("/{id}", employeeHandler.Update)
		r.Delete("/{id}", employeeHandler.Delete)
	})

	// Absence routes
	r.Route("/absences", func(r chi.Router) {
		r.Get("/", absenceHandler.List)
		r.Post("/", absenceHandler.Create)
		r.Delete("/{id}", absenceHandler.Delete)
	})

	// Create server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
