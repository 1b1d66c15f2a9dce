package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryMarkup Category = "markup"
	CategoryConfig Category = "config"
	CategoryStore  Category = "store"
	CategoryCLI    Category = "cli"
	CategoryHTTP   Category = "http"
)

// PagerError is a structured error with a registered code and hints.
type PagerError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (markup, config, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Field names the offending input (config key, flag or query parameter).
	Field string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *PagerError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Field)
	}
	if e.Wrapped != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Wrapped)
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *PagerError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a PagerError with the same code.
// Errors without a code only match themselves.
func (e *PagerError) Is(target error) bool {
	t, ok := target.(*PagerError)
	if !ok {
		return false
	}
	if e.Code == "" || t.Code == "" {
		return e == t
	}
	return e.Code == t.Code
}

// WithDetail adds a detailed explanation to the error.
func (e *PagerError) WithDetail(d string) *PagerError {
	e.Detail = d
	return e
}

// WithField records which input caused the error.
func (e *PagerError) WithField(name string) *PagerError {
	e.Field = name
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *PagerError) WithSuggestion(s string) *PagerError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *PagerError) Wrap(err error) *PagerError {
	e.Wrapped = err
	return e
}

// New creates a PagerError from a registered error code.
func New(code string) *PagerError {
	template, ok := registry[code]
	if !ok {
		return &PagerError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &PagerError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new PagerError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *PagerError {
	return &PagerError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a PagerError.
// PagerErrors are returned unchanged.
func FromError(err error, code string) *PagerError {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*PagerError); ok {
		return pe
	}
	return New(code).Wrap(err)
}

// Code returns the code of the first PagerError in err's chain, or "".
func Code(err error) string {
	for err != nil {
		if pe, ok := err.(*PagerError); ok && pe.Code != "" {
			return pe.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
