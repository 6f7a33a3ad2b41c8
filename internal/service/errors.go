package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a service wraps exactly one of them
// so the HTTP layer can map it with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidInput     = errors.New("invalid input")
	ErrConflict         = errors.New("conflict")
	ErrUnexpected       = errors.New("an unexpected error occurred")
)

var (
	ErrProjectNotFound       = kindError(ErrNotFound, "project does not exist")
	ErrCompanyNotFound       = kindError(ErrNotFound, "company not found")
	ErrTaskNotFound          = kindError(ErrNotFound, "task not found")
	ErrEmployeeNotFound      = kindError(ErrNotFound, "employee not found")
	ErrRoleNotFound          = kindError(ErrNotFound, "role does not exist")
	ErrExpenseReportNotFound = kindError(ErrNotFound, "expense report not found")
	ErrRoleExists            = kindError(ErrConflict, "role already exists")
	ErrUnauthorizedEmployee  = kindError(ErrPermissionDenied, "unauthorized employee")
	ErrNoScope               = kindError(ErrPermissionDenied, "role has no access to this resource")
	ErrForbiddenRole         = kindError(ErrPermissionDenied, "role is not allowed to perform this action")
)

type serviceError struct {
	kind error
	msg  string
}

func kindError(kind error, msg string) error {
	return &serviceError{kind: kind, msg: msg}
}

func (e *serviceError) Error() string { return e.msg }

func (e *serviceError) Unwrap() error { return e.kind }

func invalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// unexpected hides cause behind ErrUnexpected. The cause stays reachable
// through errors.Unwrap for logging.
type unexpectedError struct {
	op    string
	cause error
}

func unexpected(op string, cause error) error {
	return &unexpectedError{op: op, cause: cause}
}

func (e *unexpectedError) Error() string {
	return fmt.Sprintf("%s: %v", e.op, e.cause)
}

func (e *unexpectedError) Unwrap() []error {
	return []error{ErrUnexpected, e.cause}
}
