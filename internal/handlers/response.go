package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/margdarshak/career-api/internal/models"
)

// ErrorResponse is the error body of the quiz, path and chat routes
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Failed to generate quiz questions
	Error string `json:"error"`

	// Underlying cause, when one is useful to the client
	Details string `json:"details,omitempty"`
}

// StatusResponse is the error body of the user and resume routes
// swagger:model StatusResponse
type StatusResponse struct {
	// Always false
	Success bool `json:"success"`

	// Human readable reason
	// default: Invalid username or password.
	Message string `json:"message"`

	// Underlying cause
	Error string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// isClientError reports errors caused by the request itself.
func isClientError(err error) bool {
	var vErr *models.ValidationError
	var cErr *models.ConflictError
	return errors.As(err, &vErr) || errors.As(err, &cErr)
}

// isConfigError reports a missing server-side secret.
func isConfigError(err error) bool {
	var cfgErr *models.ConfigError
	return errors.As(err, &cfgErr)
}
