package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryConfig  Category = "config"
	CategoryGen     Category = "gen"
	CategoryRuntime Category = "runtime"
	CategoryExport  Category = "export"
	CategoryCLI     Category = "cli"
)

// StrataError is a structured error with a code, a fix suggestion, and an
// optional wrapped cause.
type StrataError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (config, gen, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *StrataError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *StrataError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *StrataError) WithDetail(d string) *StrataError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *StrataError) WithSuggestion(s string) *StrataError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *StrataError) Wrap(err error) *StrataError {
	e.Wrapped = err
	return e
}

// New creates a StrataError from a registered error code.
func New(code string) *StrataError {
	template, ok := registry[code]
	if !ok {
		return &StrataError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &StrataError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new StrataError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *StrataError {
	return &StrataError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a StrataError.
func FromError(err error, code string) *StrataError {
	if err == nil {
		return nil
	}
	if se, ok := err.(*StrataError); ok {
		return se
	}
	return New(code).Wrap(err)
}
