// Package errors provides coded errors for the wayfind command and HTTP
// endpoint.
//
// Library packages (venue, dijkstra, router, ...) return sentinel errors.
// The adapters turn those into an *Error carrying a machine-readable Code,
// which selects the HTTP status or process exit code and is echoed to
// clients as {"error": ..., "code": ...}.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "from must be an integer, got %q", raw)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Map a library error
//	coded := errors.Classify(err)
package errors

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/DanishNasarudin/wvpac-pathfinder/dijkstra"
	"github.com/DanishNasarudin/wvpac-pathfinder/internal/snapshotio"
	"github.com/DanishNasarudin/wvpac-pathfinder/venue"
)

// Code represents a machine-readable error code.
type Code string

// Error codes.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidSnapshot Code = "INVALID_SNAPSHOT"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Lifecycle
	ErrCodeCanceled Code = "CANCELED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
func Is(err error, code Code) bool {
	return GetCode(err) == code
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

// UserMessage returns the message without the code prefix for *Error values,
// and err.Error() otherwise.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// Classify returns err as an *Error. Errors that already carry a code are
// returned unchanged; known library sentinels get their matching code;
// anything else becomes ErrCodeInternal. A nil error yields nil.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return Wrap(ErrCodeCanceled, err, "operation canceled")
	case errors.Is(err, os.ErrNotExist):
		return Wrap(ErrCodeFileNotFound, err, "file not found")
	case errors.Is(err, snapshotio.ErrUnknownFormat), errors.Is(err, dijkstra.ErrUnknownStrategy):
		return Wrap(ErrCodeInvalidFormat, err, "unsupported format")
	case errors.Is(err, dijkstra.ErrEmptyPoints),
		errors.Is(err, venue.ErrDuplicatePoint),
		errors.Is(err, venue.ErrDuplicateEdge),
		errors.Is(err, venue.ErrUnknownKind),
		errors.Is(err, venue.ErrBadCoordinate),
		errors.Is(err, venue.ErrUnknownFloor),
		errors.Is(err, venue.ErrUnknownRoom):
		return Wrap(ErrCodeInvalidSnapshot, err, "invalid snapshot")
	default:
		return Wrap(ErrCodeInternal, err, "internal error")
	}
}
