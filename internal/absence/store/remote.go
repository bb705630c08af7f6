package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Hojgaetan/GDA/internal/absence/domain"
	"github.com/Hojgaetan/GDA/pkg/errors"
	"github.com/Hojgaetan/GDA/pkg/httputil"
	"github.com/Hojgaetan/GDA/pkg/logger"
)

// RemoteStore talks to the absence API over HTTP. Every operation is one
// request/response exchange; nothing is cached.
type RemoteStore struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewRemote creates a store backed by the remote absence API
func NewRemote(baseURL string, timeout time.Duration, log *logger.Logger) *RemoteStore {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RemoteStore{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     log.WithComponent("remote-store"),
	}
}

// do executes one exchange against the API. Non-2xx responses become
// transport errors carrying the upstream status and server message; a 204
// leaves out nil untouched.
func (s *RemoteStore) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "TRANSPORT_ERROR", "failed to reach absence API", http.StatusBadGateway)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody httputil.ErrorBody
		json.NewDecoder(resp.Body).Decode(&errBody)
		s.logger.Error().
			Int("status", resp.StatusCode).
			Str("method", method).
			Str("path", path).
			Str("message", errBody.Error).
			Msg("absence API request failed")
		return errors.Transport(resp.StatusCode, errBody.Error)
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ListEmployees returns every employee known to the API
func (s *RemoteStore) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	if err := s.do(ctx, http.MethodGet, "/employees", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// CreateEmployee creates an employee via the API. Field validation is
// enforced server-side and surfaces as a 400-class transport error.
func (s *RemoteStore) CreateEmployee(ctx context.Context, in domain.NewEmployee) (*domain.Employee, error) {
	var employee domain.Employee
	if err := s.do(ctx, http.MethodPost, "/employees", in, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

// UpdateEmployee replaces an employee's name and role via the API
func (s *RemoteStore) UpdateEmployee(ctx context.Context, id string, in domain.NewEmployee) (*domain.Employee, error) {
	var employee domain.Employee
	if err := s.do(ctx, http.MethodPut, "/employees/"+url.PathEscape(id), in, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

// DeleteEmployee deletes an employee. The backend's foreign key cascade
// removes the employee's absences; the client does not re-verify.
func (s *RemoteStore) DeleteEmployee(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/employees/"+url.PathEscape(id), nil, nil)
}

// ListAbsences returns absence records, optionally for one employee
func (s *RemoteStore) ListAbsences(ctx context.Context, employeeID string) ([]domain.AbsenceRecord, error) {
	path := "/absences"
	if employeeID != "" {
		path += "?employeeId=" + url.QueryEscape(employeeID)
	}

	var absences []domain.AbsenceRecord
	if err := s.do(ctx, http.MethodGet, path, nil, &absences); err != nil {
		return nil, err
	}
	return absences, nil
}

// CreateAbsence creates an absence record via the API. The referential check
// on employeeId is enforced server-side.
func (s *RemoteStore) CreateAbsence(ctx context.Context, in domain.NewAbsence) (*domain.AbsenceRecord, error) {
	var record domain.AbsenceRecord
	if err := s.do(ctx, http.MethodPost, "/absences", in, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteAbsence deletes a single absence record
func (s *RemoteStore) DeleteAbsence(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/absences/"+url.PathEscape(id), nil, nil)
}

// Health checks the API's /health endpoint
func (s *RemoteStore) Health(ctx context.Context) error {
	var status struct {
		OK bool `json:"ok"`
	}
	if err := s.do(ctx, http.MethodGet, "/health", nil, &status); err != nil {
		return err
	}
	if !status.OK {
		return errors.Transport(http.StatusInternalServerError, "absence API reports unhealthy")
	}
	return nil
}

// Close is a no-op; the HTTP client holds no persistent resources
func (s *RemoteStore) Close() error {
	return nil
}
