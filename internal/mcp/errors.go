package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/projman/internal/domain/apperr"
)

var (
	// ErrInvalidParams indicates tool arguments that fail to decode or validate.
	ErrInvalidParams = errors.New("invalid params")
	// ErrUnknownTool indicates a dispatch to a tool name that is not registered.
	ErrUnknownTool = errors.New("unknown tool")
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

func notFound(message string) *APIError {
	return &APIError{Code: "NOT_FOUND", Message: message, RecoveryHint: "Check the id, or list the collection to find it"}
}

func invalidParams(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParams, fmt.Sprintf(format, args...))
}

// MapError maps domain and dispatch errors to MCP error codes. It returns nil
// for errors that have no client-facing meaning.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	switch apperr.KindOf(err) {
	case apperr.KindParentNotFound:
		return &APIError{Code: "PARENT_NOT_FOUND", Message: apperr.MessageOf(err), RecoveryHint: "Create the parent first or check its id"}
	case apperr.KindDuplicateDescription:
		return &APIError{Code: "DUPLICATE_DESCRIPTION", Message: apperr.MessageOf(err), RecoveryHint: "Choose a description not used under the same parent"}
	case apperr.KindInvalidStatusCode:
		return &APIError{Code: "INVALID_STATUS_CODE", Message: apperr.MessageOf(err), RecoveryHint: "Stored data is inconsistent; report it to an operator"}
	}
	switch {
	case errors.Is(err, ErrInvalidParams):
		return &APIError{Code: "INVALID_PARAMS", Message: err.Error(), RecoveryHint: "Check the tool's input schema"}
	case errors.Is(err, ErrUnknownTool):
		return &APIError{Code: "UNKNOWN_TOOL", Message: err.Error(), RecoveryHint: "Call tools/list for available tools"}
	default:
		return nil
	}
}
