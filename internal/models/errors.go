package models

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned by signin for both unknown users and wrong
// passwords so callers cannot tell the two apart.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ValidationError reports malformed or missing input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports a uniqueness violation on write.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// ConfigError reports a required setting that is missing at startup or request time.
type ConfigError struct {
	Key string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", e.Key)
}

// UpstreamError is returned when an external API answers with a non-success
// status or without the expected payload.
type UpstreamError struct {
	Service    string // e.g. gemini, searchapi
	StatusCode int    // 0 when no response was received
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: upstream error %d: %s", e.Service, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: upstream error: %s", e.Service, e.Message)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ParseError is returned when generated text cannot be turned into the
// structured value a caller needs.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Reason, e.Err)
	}
	return "parse error: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }
