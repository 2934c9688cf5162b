package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors. The first five mirror the dispatch
// failure contract; CONFIG and INTERNAL cover the CLI surface around it.
const (
	ErrUnknownOperation = "UNKNOWN_OPERATION"
	ErrInvalidArgument  = "INVALID_ARGUMENT"
	ErrNotFound         = "NOT_FOUND"
	ErrPermission       = "PERMISSION_DENIED"
	ErrUnderlying       = "UNDERLYING"
	ErrConfig           = "CONFIG"
	ErrInternal         = "INTERNAL"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to the UNDERLYING
// code used for pass-through OS-layer failures.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrUnderlying,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// Error implements the error interface with formatted output.
func (e *Error) Error() string {
	var b strings.Builder

	// First line: failure symbol + main message
	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	// Include cause if present (why it failed)
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	// Include suggestion if present (how to fix)
	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Code == code
	}
	return false
}

// CodeOf returns the code carried by a structured Error, or INTERNAL for
// any other error. Nil yields an empty string.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Code
	}
	return ErrInternal
}
