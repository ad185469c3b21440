// Package sgerrors provides structured error types for the stencilgraph
// pipeline.
//
// Error codes follow a flat naming convention and each exists only
// because a real call site produces it; see pkg/config, pkg/overlay, and
// pkg/names for where they are returned. Non-fatal conditions are not
// returned as errors: an ambiguous z-order is logged (see pkg/zorder and
// pkg/scene), and a stencil larger than the grid is skipped without a
// log line.
package sgerrors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	// ErrCodeConfig marks a failure reading or parsing a TOML config file.
	ErrCodeConfig Code = "CONFIG_ERROR"
	// ErrCodeInvalidStencil marks a malformed overlay stencil catalog entry.
	ErrCodeInvalidStencil Code = "INVALID_STENCIL"
	// ErrCodeInvalidText marks a text annotation the name binder cannot
	// meaningfully bind, such as empty content.
	ErrCodeInvalidText Code = "INVALID_TEXT"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err carries the given error code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
