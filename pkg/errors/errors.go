// Package errors provides structured error types for cargo-ls-crates.
//
// Every fatal condition the tool can hit is a failure to obtain the crate
// list, so the codes describe where that list was supposed to come from.
// Argument anomalies are never errors and have no code.
//
// # Usage
//
//	err := errors.Wrap(errors.ErrCodeMetadata, runErr, "cargo metadata failed")
//	if errors.Is(err, errors.ErrCodeMetadata) {
//	    // cargo could not resolve the project
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for crate list failures.
const (
	// cargo metadata exited non-zero or could not be started
	ErrCodeMetadata Code = "METADATA_FAILED"
	// cargo metadata produced output that is not valid metadata JSON
	ErrCodeInvalidMetadata Code = "INVALID_METADATA"
	// no cargo install root exists on this machine
	ErrCodeNoInstallRoot Code = "NO_INSTALL_ROOT"
	// install roots exist but contain no installed binaries
	ErrCodeNoCrates Code = "NO_CRATES"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
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
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a single-line, user-facing message for err.
// For *Error values the code prefix is dropped and the cause appended.
// Embedded newlines are collapsed so the result fits on one line.
func UserMessage(err error) string {
	var msg string
	var e *Error
	if errors.As(err, &e) {
		msg = e.Message
		if e.Cause != nil {
			msg += ": " + e.Cause.Error()
		}
	} else {
		msg = err.Error()
	}
	return strings.Join(strings.Fields(msg), " ")
}
