package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Standard error types
var (
	ErrNotFound          = errors.New("resource not found")
	ErrBadRequest        = errors.New("bad request")
	ErrInternal          = errors.New("internal server error")
	ErrValidation        = errors.New("validation error")
	ErrInvalidReference  = errors.New("invalid reference")
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrInvertedTimeRange = errors.New("inverted time range")
	ErrTransport         = errors.New("transport error")
	ErrPersistence       = errors.New("persistence error")
)

// AppError represents an application error with context
type AppError struct {
	Err        error             `json:"-"`
	Message    string            `json:"message"`
	Code       string            `json:"code"`
	StatusCode int               `json:"status_code"`
	Details    map[string]string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code string, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, code string, message string, statusCode int) *AppError {
	return &AppError{
		Err:        err,
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithDetails adds details to an AppError
func (e *AppError) WithDetails(details map[string]string) *AppError {
	e.Details = details
	return e
}

// Common error constructors

func NotFound(resource string) *AppError {
	return &AppError{
		Err:        ErrNotFound,
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
	}
}

func BadRequest(message string) *AppError {
	return &AppError{
		Err:        ErrBadRequest,
		Code:       "BAD_REQUEST",
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func Internal(message string) *AppError {
	return &AppError{
		Err:        ErrInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
	}
}

func Validation(details map[string]string) *AppError {
	return &AppError{
		Err:        ErrValidation,
		Code:       "VALIDATION_ERROR",
		Message:    "validation failed",
		StatusCode: http.StatusBadRequest,
		Details:    details,
	}
}

// InvalidReference signals a foreign key that does not resolve to a live
// record, e.g. an absence pointing at a deleted employee.
func InvalidReference(field string) *AppError {
	return &AppError{
		Err:        ErrInvalidReference,
		Code:       "INVALID_REFERENCE",
		Message:    fmt.Sprintf("%s does not reference an existing record", field),
		StatusCode: http.StatusBadRequest,
	}
}

func InvalidTimeFormat(value string) *AppError {
	return &AppError{
		Err:        ErrInvalidTimeFormat,
		Code:       "INVALID_TIME_FORMAT",
		Message:    fmt.Sprintf("invalid time %q, expected HH:MM", value),
		StatusCode: http.StatusBadRequest,
	}
}

func InvertedTimeRange() *AppError {
	return &AppError{
		Err:        ErrInvertedTimeRange,
		Code:       "INVERTED_TIME_RANGE",
		Message:    "end time is before start time",
		StatusCode: http.StatusBadRequest,
	}
}

// Transport wraps a non-2xx remote response. The sentinel is chosen from the
// upstream status so that errors.Is sees the same taxonomy whichever backend
// produced the failure: 404 matches ErrNotFound, 400 matches ErrValidation.
func Transport(statusCode int, message string) *AppError {
	sentinel := ErrTransport
	switch statusCode {
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusBadRequest:
		sentinel = ErrValidation
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return &AppError{
		Err:        sentinel,
		Code:       "TRANSPORT_ERROR",
		Message:    fmt.Sprintf("remote responded %d: %s", statusCode, message),
		StatusCode: statusCode,
	}
}

// Persistence wraps a local store read/write failure.
func Persistence(err error, message string) *AppError {
	return &AppError{
		Err:        fmt.Errorf("%w: %w", ErrPersistence, err),
		Code:       "PERSISTENCE_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
	}
}

// Is checks if the error matches a target error
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As attempts to convert an error to a specific type
func As(err error, target any) bool {
	return errors.As(err, target)
}
