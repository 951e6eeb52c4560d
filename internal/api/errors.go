package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/flowerlibrary/flower-server/internal/errors"
)

// APIError is a custom error type that implements huma.StatusError.
// Every 4xx/5xx response renders as {"error": message}.
type APIError struct { //nolint:revive // API prefix is intentional for clarity
	status  int
	Message string `json:"error" doc:"Human-readable error message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int {
	return e.status
}

// ContentType returns the content type for the error response.
func (e *APIError) ContentType(_ string) string {
	return "application/json"
}

// RegisterErrorHandler configures huma to use domain errors.
// Call this after creating the huma.API but before registering routes.
func RegisterErrorHandler() {
	huma.NewError = newAPIError
}

func newAPIError(status int, message string, errs ...error) huma.StatusError {
	// Domain errors carry their own status and user-facing message.
	for _, err := range errs {
		var domainErr *domainerrors.Error
		if errors.As(err, &domainErr) {
			return &APIError{
				status:  domainErr.HTTPStatus(),
				Message: domainErr.Message,
			}
		}
	}

	// Request decoding and schema validation failures are client errors.
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}

	if status >= http.StatusInternalServerError {
		return &APIError{status: status, Message: "internal error"}
	}

	if details := detailMessages(errs); details != "" {
		message = message + ": " + details
	}
	return &APIError{status: status, Message: message}
}

// detailMessages joins huma error details into one line.
func detailMessages(errs []error) string {
	parts := make([]string, 0, len(errs))
	for _, err := range errs {
		var detail *huma.ErrorDetail
		if errors.As(err, &detail) {
			if detail.Location != "" {
				parts = append(parts, detail.Location+": "+detail.Message)
			} else {
				parts = append(parts, detail.Message)
			}
			continue
		}
		if err != nil {
			parts = append(parts, err.Error())
		}
	}
	return strings.Join(parts, "; ")
}

// writeError writes a {"error": message} JSON body outside of huma handlers.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(&APIError{status: status, Message: message})
}
