// Package errors provides structured error types for cccards.
// Errors carry a stable code, context about the offending file/row/flag,
// and actionable suggestions for the user.
package errors

import (
	"fmt"
	"strings"
)

// Category classifies errors for consistent handling and display.
type Category string

const (
	CategoryInput      Category = "input"      // Input CSV missing/unreadable
	CategoryValidation Category = "validation" // Malformed CSV rows, bad values
	CategoryConfig     Category = "config"     // Config file loading/parsing errors
	CategoryRender     Category = "render"     // PDF document construction errors
	CategoryIO         Category = "io"         // Output file write errors
	CategoryInternal   Category = "internal"   // Internal/unexpected errors
)

// CardsError is a structured error with context and suggestions.
// It implements the error interface and supports error wrapping.
type CardsError struct {
	// Code is a unique identifier for this error type (e.g., "BAD_WEIGHT")
	Code string

	// Category classifies this error for consistent handling
	Category Category

	// Message is the primary error message describing what went wrong
	Message string

	// Context provides additional key-value details (file, row, flag)
	Context map[string]string

	// Cause is the underlying error that triggered this error (for wrapping)
	Cause error

	// Suggestions are actionable remediation steps for the user
	Suggestions []string
}

// Error implements the error interface.
func (e *CardsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain inspection.
// This enables errors.Is() and errors.As() to work with CardsError.
func (e *CardsError) Unwrap() error {
	return e.Cause
}

// Is reports whether e matches target for errors.Is() checks.
// Two CardsErrors match if they have the same Code.
func (e *CardsError) Is(target error) bool {
	if t, ok := target.(*CardsError); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new CardsError with the given code, category, and message.
func New(code string, category Category, message string) *CardsError {
	return &CardsError{
		Code:     code,
		Category: category,
		Message:  message,
		Context:  make(map[string]string),
	}
}

// WithContext adds a context key-value pair and returns the error for chaining.
func (e *CardsError) WithContext(key, value string) *CardsError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithCause wraps an underlying error and returns the error for chaining.
func (e *CardsError) WithCause(cause error) *CardsError {
	e.Cause = cause
	return e
}

// WithSuggestion adds a remediation suggestion and returns the error for chaining.
func (e *CardsError) WithSuggestion(suggestion string) *CardsError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple remediation suggestions.
func (e *CardsError) WithSuggestions(suggestions ...string) *CardsError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// HasContext returns true if the error has context information.
func (e *CardsError) HasContext() bool {
	return len(e.Context) > 0
}

// HasSuggestions returns true if the error has suggestions.
func (e *CardsError) HasSuggestions() bool {
	return len(e.Suggestions) > 0
}

// ContextString returns a formatted string of all context entries.
func (e *CardsError) ContextString() string {
	if len(e.Context) == 0 {
		return ""
	}
	var parts []string
	for k, v := range e.Context {
		parts = append(parts, fmt.Sprintf("%s=%q", k, v))
	}
	return strings.Join(parts, ", ")
}

// Wrap wraps an existing error with a CardsError.
func Wrap(err error, code string, category Category, message string) *CardsError {
	return New(code, category, message).WithCause(err)
}

// AsCardsError attempts to convert an error to a CardsError.
// Returns the CardsError and true if successful, nil and false otherwise.
func AsCardsError(err error) (*CardsError, bool) {
	if err == nil {
		return nil, false
	}
	if ce, ok := err.(*CardsError); ok {
		return ce, true
	}
	return nil, false
}

// IsCategory checks if an error is a CardsError with the given category.
func IsCategory(err error, category Category) bool {
	if ce, ok := AsCardsError(err); ok {
		return ce.Category == category
	}
	return false
}

// IsCode checks if an error is a CardsError with the given code.
func IsCode(err error, code string) bool {
	if ce, ok := AsCardsError(err); ok {
		return ce.Code == code
	}
	return false
}

// -----------------------------------------------------------------------------
// Helper Constructors for Common Error Types
// -----------------------------------------------------------------------------

// InputError creates a new input error.
// Use for missing or unreadable input CSV files.
func InputError(code, message string) *CardsError {
	return New(code, CategoryInput, message)
}

// InputErrorf creates a new input error with formatted message.
func InputErrorf(code, format string, args ...interface{}) *CardsError {
	return New(code, CategoryInput, fmt.Sprintf(format, args...))
}

// ValidationError creates a new validation error.
// Use for malformed CSV rows, bad weights, or constraint violations.
func ValidationError(code, message string) *CardsError {
	return New(code, CategoryValidation, message)
}

// ValidationErrorf creates a new validation error with formatted message.
func ValidationErrorf(code, format string, args ...interface{}) *CardsError {
	return New(code, CategoryValidation, fmt.Sprintf(format, args...))
}

// ConfigError creates a new configuration error.
// Use for config file parsing or invalid configuration values.
func ConfigError(code, message string) *CardsError {
	return New(code, CategoryConfig, message)
}

// ConfigErrorf creates a new configuration error with formatted message.
func ConfigErrorf(code, format string, args ...interface{}) *CardsError {
	return New(code, CategoryConfig, fmt.Sprintf(format, args...))
}

// RenderError creates a new PDF rendering error.
func RenderError(code, message string) *CardsError {
	return New(code, CategoryRender, message)
}

// IOError creates a new file/IO error.
// Use for output write failures, permission issues, or disk errors.
func IOError(code, message string) *CardsError {
	return New(code, CategoryIO, message)
}

// InternalError creates a new internal/unexpected error.
// Use for programming errors and invariant violations.
func InternalError(code, message string) *CardsError {
	return New(code, CategoryInternal, message)
}

// -----------------------------------------------------------------------------
// Wrapping Helpers
// -----------------------------------------------------------------------------

// WrapInput wraps an error as an input error.
func WrapInput(err error, code, message string) *CardsError {
	return Wrap(err, code, CategoryInput, message)
}

// WrapValidation wraps an error as a validation error.
func WrapValidation(err error, code, message string) *CardsError {
	return Wrap(err, code, CategoryValidation, message)
}

// WrapConfig wraps an error as a configuration error.
func WrapConfig(err error, code, message string) *CardsError {
	return Wrap(err, code, CategoryConfig, message)
}

// WrapRender wraps an error as a render error.
func WrapRender(err error, code, message string) *CardsError {
	return Wrap(err, code, CategoryRender, message)
}

// WrapIO wraps an error as an IO error.
func WrapIO(err error, code, message string) *CardsError {
	return Wrap(err, code, CategoryIO, message)
}
