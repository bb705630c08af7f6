package handler

import (
	"net/http"

	"github.com/Hojgaetan/GDA/internal/absence/domain"
	"github.com/Hojgaetan/GDA/internal/absence/service"
	"github.com/Hojgaetan/GDA/pkg/httputil"
	"github.com/Hojgaetan/GDA/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// AbsenceHandler handles absence record endpoints
type AbsenceHandler struct {
	service *service.AbsenceService
	logger  *logger.Logger
}

// NewAbsenceHandler creates a new absence handler
func NewAbsenceHandler(svc *service.AbsenceService, log *logger.Logger) *AbsenceHandler {
	return &AbsenceHandler{
		service: svc,
		logger:  log,
	}
}

// List lists absence records, optionally filtered by ?employeeId=
func (h *AbsenceHandler) List(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")

	absences, err := h.service.ListAbsences(r.Context(), employeeID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list absences")
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, absences)
}

// Create creates a new absence record
func (h *AbsenceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.NewAbsence
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(req); err != nil {
		httputil.Error(w, err)
		return
	}

	record, err := h.service.CreateAbsence(r.Context(), req)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.Created(w, record)
}

// Delete removes a single absence record
func (h *AbsenceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteAbsence(r.Context(), id); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.NoContent(w)
}
