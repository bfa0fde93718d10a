package mcp

import (
	"errors"
	"fmt"

	"github.com/dkessler/rolodex/internal/domain/importjob"
	"github.com/dkessler/rolodex/internal/domain/person"
	"github.com/dkessler/rolodex/internal/domain/project"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, person.ErrPersonNotFound):
		return &APIError{Code: "PERSON_NOT_FOUND", Message: "person not found", RecoveryHint: "Check ID spelling"}
	case errors.Is(err, person.ErrIdentityInUse):
		return &APIError{Code: "IDENTITY_IN_USE", Message: "platform identity belongs to another person", RecoveryHint: "Look up the holder via resolve_person"}
	case errors.Is(err, person.ErrResolveConflict):
		return &APIError{Code: "RESOLVE_CONFLICT", Message: "concurrent resolution could not converge", RecoveryHint: "Retry the request"}
	case errors.Is(err, person.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "invalid input", RecoveryHint: "Check required fields"}
	case errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Check ID spelling"}
	case errors.Is(err, project.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "invalid input", RecoveryHint: "Check required fields"}
	case errors.Is(err, importjob.ErrJobNotFound):
		return &APIError{Code: "IMPORT_NOT_FOUND", Message: "import job not found", RecoveryHint: "Check ID spelling"}
	case errors.Is(err, importjob.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "invalid input", RecoveryHint: "Check required fields"}
	default:
		return nil
	}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
