// ============================================================================
// mcalc - Console Calculator
// ============================================================================
//
// Package:     calculator
// Description: Coded errors reported by calculator commands
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package calculator

import "errors"

// Code classifies a calculator error
type Code string

const (
	CodeInvalidInput        Code = "INVALID_INPUT"
	CodeInvalidNumber       Code = "INVALID_NUMBER"
	CodeInvalidMemoryNumber Code = "INVALID_MEMORY_NUMBER"
	CodeDivisionByZero      Code = "DIVISION_BY_ZERO"
	CodeInvalidRoot         Code = "INVALID_ROOT"
	CodeDomain              Code = "DOMAIN_ERROR"
	CodeUnsupported         Code = "UNSUPPORTED"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Error is a recoverable failure of a single command. Error() returns the
// message shown to the user.
type Error struct {
	code      Code
	operation string
	message   string
}

// Sentinel errors, one per code. errors.Is matches on the code only, so
// domain errors of different functions all match ErrDomain.
var (
	ErrInvalidInput        = &Error{code: CodeInvalidInput, message: "Invalid input"}
	ErrInvalidNumber       = &Error{code: CodeInvalidNumber, message: "Invalid number"}
	ErrInvalidMemoryNumber = &Error{code: CodeInvalidMemoryNumber, message: "Invalid number for memory"}
	ErrDivisionByZero      = &Error{code: CodeDivisionByZero, message: "Division by zero"}
	ErrInvalidRoot         = &Error{code: CodeInvalidRoot, message: "Invalid root"}
	ErrDomain              = &Error{code: CodeDomain, message: "Invalid input for function"}
	ErrUnsupported         = &Error{code: CodeUnsupported, message: "Not available in basic mode"}
)

func newError(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

// withOperation returns a copy of e tagged with the failing operation
func (e *Error) withOperation(op string) *Error {
	cp := *e
	cp.operation = op
	return &cp
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.message
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Operation returns the command that failed, e.g. "=", "sqrt" or "ms"
func (e *Error) Operation() string {
	return e.operation
}

// Is reports whether target is a calculator error with the same code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.code == e.code
}

// CodeOf extracts the code of a calculator error, or "" for other errors
func CodeOf(err error) Code {
	var calcErr *Error
	if errors.As(err, &calcErr) {
		return calcErr.code
	}
	return ""
}
