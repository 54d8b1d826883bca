package domain

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeNotFound          Code = "NOT_FOUND"
	CodeInvalidAmount     Code = "INVALID_AMOUNT"
	CodeAlreadyClosed     Code = "ALREADY_CLOSED"
	CodeSessionNotOpen    Code = "SESSION_NOT_OPEN"
	CodeNetworkFailure    Code = "NETWORK_FAILURE"
	CodeInconsistentSplit Code = "INCONSISTENT_SPLIT"
	CodeExceedsDue        Code = "EXCEEDS_DUE"
	CodePartialRollback   Code = "PARTIAL_ROLLBACK"
	CodeInvalidInput      Code = "INVALID_INPUT"
)

// Error is a domain error carrying a code and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a domain error with the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func WrapError(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Sentinels for errors.Is checks. They match any *Error with the same code.
var (
	ErrNotFound          = NewError(CodeNotFound, "not found")
	ErrInvalidAmount     = NewError(CodeInvalidAmount, "invalid amount")
	ErrAlreadyClosed     = NewError(CodeAlreadyClosed, "session already closed")
	ErrSessionNotOpen    = NewError(CodeSessionNotOpen, "session is not open")
	ErrNetworkFailure    = NewError(CodeNetworkFailure, "persistence call failed")
	ErrInconsistentSplit = NewError(CodeInconsistentSplit, "payment method split does not match payment amount")
	ErrExceedsDue        = NewError(CodeExceedsDue, "payment exceeds remaining balance")
	ErrPartialRollback   = NewError(CodePartialRollback, "rollback did not complete")
	ErrInvalidInput      = NewError(CodeInvalidInput, "invalid input")
)

// CodeOf returns the code of the first domain error in err's tree, or "".
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
