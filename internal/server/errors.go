// Package server provides the HTTP REST API for the ideafit funnel.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrReportNotFound indicates the requested report does not exist
type ErrReportNotFound struct {
	ReportID uuid.UUID
}

func (e *ErrReportNotFound) Error() string {
	return fmt.Sprintf("report not found: %s", e.ReportID)
}

// ErrInvalidSignature indicates a webhook request failed HMAC verification
type ErrInvalidSignature struct{}

func (e *ErrInvalidSignature) Error() string {
	return "invalid webhook signature"
}

// ErrInvalidToken indicates a report unlock token is missing, malformed, or expired
type ErrInvalidToken struct{}

func (e *ErrInvalidToken) Error() string {
	return "invalid or expired unlock token"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrReportNotFound:
		return http.StatusNotFound
	case *ErrInvalidSignature, *ErrInvalidToken:
		return http.StatusUnauthorized
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
