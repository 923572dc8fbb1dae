// Package errors provides the structured error type used by minisearch's
// collaborators (loader, config, CLI). The core engine itself has no
// fallible operations; these codes exist for the I/O boundary around it.
package errors

import "fmt"

// SearchError is the structured error type for minisearch.
type SearchError struct {
	// Code is the unique error code (e.g. "ERR_201_FILE_NOT_FOUND").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category, derived from the code.
	Category Category

	// Severity is the error severity, derived from the code.
	Severity Severity

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *SearchError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *SearchError) Unwrap() error {
	return e.Cause
}

// Is matches SearchErrors by code, enabling errors.Is comparisons against
// sentinel instances.
func (e *SearchError) Is(target error) bool {
	if t, ok := target.(*SearchError); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a SearchError with the given code and message. Category and
// severity are derived from the code.
func New(code, message string, cause error) *SearchError {
	return &SearchError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a SearchError from an existing error, reusing its message.
func Wrap(code string, err error) *SearchError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *SearchError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// IOError creates an I/O-related error.
func IOError(message string, cause error) *SearchError {
	return New(ErrCodeFileNotFound, message, cause)
}

// ValidationError creates an input-validation error.
func ValidationError(message string, cause error) *SearchError {
	return New(ErrCodeInvalidInput, message, cause)
}

// GetCode extracts the error code, or "" if err is not a SearchError.
func GetCode(err error) string {
	if se, ok := err.(*SearchError); ok {
		return se.Code
	}
	return ""
}

// IsFatal reports whether err is a SearchError with fatal severity.
func IsFatal(err error) bool {
	if se, ok := err.(*SearchError); ok {
		return se.Severity == SeverityFatal
	}
	return false
}
