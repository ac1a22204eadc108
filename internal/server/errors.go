// Package server provides the HTTP REST API for the onboarding service.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrInvalidCredentials indicates invalid admin login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid username or password"
}

// ErrSubmissionNotFound indicates a submission was not found
type ErrSubmissionNotFound struct {
	ID uuid.UUID
}

func (e *ErrSubmissionNotFound) Error() string {
	return fmt.Sprintf("submission not found: %s", e.ID)
}

// ErrDuplicateEmployeeID indicates the employee ID already has an
// active submission
type ErrDuplicateEmployeeID struct {
	EmployeeID string
}

func (e *ErrDuplicateEmployeeID) Error() string {
	return fmt.Sprintf("employee ID already submitted: %s", e.EmployeeID)
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
	case *ErrDuplicateEmployeeID:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrSubmissionNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
