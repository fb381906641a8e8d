// Package errors provides custom error types for subsync.
// These errors enable programmatic error checking and map the tool's
// failure taxonomy: configuration problems abort before any network
// call, authentication and listing failures abort the run, and
// per-item apply failures are recovered locally.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's chain matches target.
// Alias for the standard library errors.Is.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// Alias for the standard library errors.As.
var As = errors.As

// Common sentinel errors for subsync.
var (
	// ErrConfig indicates an invalid or missing configuration value.
	ErrConfig = errors.New("configuration error")

	// ErrAuth indicates a provider or aggregator login failure.
	ErrAuth = errors.New("authentication failed")

	// ErrSourceFetch indicates listing subscriptions from a source failed.
	ErrSourceFetch = errors.New("source fetch failed")

	// ErrApply indicates an individual add/remove call against the
	// aggregator failed. The only locally recovered error kind.
	ErrApply = errors.New("apply failed")

	// ErrUnknownProvider indicates a provider name with no registered factory.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrCredentialsMissing indicates no credential entry exists for a
	// host that requires one.
	ErrCredentialsMissing = errors.New("credentials missing")

	// ErrNotSupported indicates an operation the provider does not offer.
	ErrNotSupported = errors.New("operation not supported")
)

// ConfigError represents a configuration problem detected before any
// network call is made.
type ConfigError struct {
	Field   string
	Value   any
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *ConfigError) Unwrap() error { return e.Err }

// Is implements errors.Is support.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// NewConfigError creates a new ConfigError.
func NewConfigError(field string, value any, message string) *ConfigError {
	return &ConfigError{Field: field, Value: value, Message: message}
}

// AuthError represents a failed login step against a provider or the
// aggregator. Fatal for the run; no partial diff is produced.
type AuthError struct {
	Host    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("authentication failed for %s: %s", e.Host, e.Message)
	}
	return fmt.Sprintf("authentication failed for %s", e.Host)
}

// Unwrap implements errors.Unwrap.
func (e *AuthError) Unwrap() error { return e.Err }

// Is implements errors.Is support.
func (e *AuthError) Is(target error) bool { return target == ErrAuth }

// NewAuthError creates a new AuthError.
func NewAuthError(host, message string, err error) *AuthError {
	return &AuthError{Host: host, Message: message, Err: err}
}

// SourceError represents a failure while listing subscriptions from a
// source. Propagates as fatal; no partial add set is trusted.
type SourceError struct {
	Provider string
	Message  string
	Err      error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("source %s: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("source %s: %v", e.Provider, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *SourceError) Unwrap() error { return e.Err }

// Is implements errors.Is support.
func (e *SourceError) Is(target error) bool { return target == ErrSourceFetch }

// NewSourceError creates a new SourceError.
func NewSourceError(provider, message string, err error) *SourceError {
	return &SourceError{Provider: provider, Message: message, Err: err}
}

// ApplyError represents a failed add or remove call for a single
// subscription. Non-fatal: the item is skipped and reconciliation
// continues with the rest of the batch.
type ApplyError struct {
	Operation string // "add" or "remove"
	ID        string // feed identifier
	Err       error
}

// Error implements the error interface.
func (e *ApplyError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Operation, e.ID, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *ApplyError) Unwrap() error { return e.Err }

// Is implements errors.Is support.
func (e *ApplyError) Is(target error) bool { return target == ErrApply }

// NewApplyError creates a new ApplyError.
func NewApplyError(operation, id string, err error) *ApplyError {
	return &ApplyError{Operation: operation, ID: id, Err: err}
}

// APIError represents an HTTP-level error from a remote service. It is
// normally wrapped by one of the domain error kinds above.
type APIError struct {
	Host       string
	StatusCode int
	Endpoint   string
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error from %s (status %d): %s", e.Host, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error from %s: %s", e.Host, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *APIError) Unwrap() error { return e.Err }

// NewAPIError creates a new APIError.
func NewAPIError(host string, statusCode int, message string) *APIError {
	return &APIError{Host: host, StatusCode: statusCode, Message: message}
}

// ParseError represents an error while parsing a document or response.
type ParseError struct {
	Format  string // "json", "yaml", "opml", ...
	File    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *ParseError) Unwrap() error { return e.Err }

// IOError represents an error during file I/O.
type IOError struct {
	Operation string // "read", "write", "open", ...
	Path      string
	Err       error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *IOError) Unwrap() error { return e.Err }

// Helper functions for error checking

// IsConfig checks if an error is a configuration error.
func IsConfig(err error) bool { return errors.Is(err, ErrConfig) }

// IsAuth checks if an error is an authentication error.
func IsAuth(err error) bool { return errors.Is(err, ErrAuth) }

// IsSourceFetch checks if an error is a source listing error.
func IsSourceFetch(err error) bool { return errors.Is(err, ErrSourceFetch) }

// IsApply checks if an error is a per-item apply error.
func IsApply(err error) bool { return errors.Is(err, ErrApply) }

// Wrap helpers

// WrapIO wraps an error as an IOError.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// WrapParse wraps an error as a ParseError.
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, File: file, Message: err.Error(), Err: err}
}

// WrapAPI wraps an error as an APIError.
func WrapAPI(host string, statusCode int, err error) error {
	if err == nil {
		return nil
	}
	return &APIError{Host: host, StatusCode: statusCode, Message: err.Error(), Err: err}
}
