package streams

import (
	"errors"
	"fmt"
)

// ErrorCode represents the failure taxonomy of the streams package
type ErrorCode int

const (
	VALIDATION ErrorCode = iota
	UNLIMITED
	STRICT
	FORMAT
)

// String converts ErrorCode enum into a string value
func (c ErrorCode) String() string {
	return [...]string{
		"VALIDATION",
		"UNLIMITED",
		"STRICT",
		"FORMAT",
	}[c]
}

// Message converts ErrorCode enum into a human-readable message
func (c ErrorCode) Message(op string, msg string) string {
	return fmt.Sprintf("stream %s error (code: %d, op: %s, message: %s)", c.String(), c, op, msg)
}

// Error defines a custom error type carrying the failure code and the
// operation that produced it.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

func newError(code ErrorCode, op string, msg string) *Error {
	return &Error{
		Code:    code,
		Op:      op,
		Message: code.Message(op, msg),
	}
}

func newValidationError(op string, msg string) *Error {
	return newError(VALIDATION, op, msg)
}

// NewValidationError builds a VALIDATION error for malformed arguments. It
// is exported for the source packages, which validate their arguments the
// same way the core operations do.
func NewValidationError(op string, msg string) *Error {
	return newValidationError(op, msg)
}

func newUnlimitedError(op string) *Error {
	return newError(UNLIMITED, op, "operation requires a bounded stream")
}

func newStrictError(op string) *Error {
	return newError(STRICT, op, "input streams have different lengths")
}

func newFormatError(op string, spec string) *Error {
	return newError(FORMAT, op, fmt.Sprintf("format %q does not match prefix{elem}(sep)suffix", spec))
}

func isError(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// IsValidationError checks if the given error is a VALIDATION error.
// It returns true if the error is a VALIDATION error, otherwise false.
func IsValidationError(err error) bool {
	return isError(err, VALIDATION)
}

// IsUnlimitedError checks if the given error is an UNLIMITED error.
// It returns true if the error is an UNLIMITED error, otherwise false.
func IsUnlimitedError(err error) bool {
	return isError(err, UNLIMITED)
}

// IsStrictError checks if the given error is a STRICT error.
// It returns true if the error is a STRICT error, otherwise false.
func IsStrictError(err error) bool {
	return isError(err, STRICT)
}

// IsFormatError checks if the given error is a FORMAT error.
// It returns true if the error is a FORMAT error, otherwise false.
func IsFormatError(err error) bool {
	return isError(err, FORMAT)
}
