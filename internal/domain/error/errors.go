package error

import (
	"context"
	"errors"
	"os"
	"syscall"
)

// Code is the status code returned by datastore API operations
type Code int

// Status codes. CodeOK is the only success value.
const (
	CodeOK Code = iota
	CodeInvalArg
	CodeSchema
	CodeSys
	CodeNoMem
	CodeNotFound
	CodeExists
	CodeInternal
	CodeUnsupported
	CodeValidationFailed
	CodeOperationFailed
	CodeUnauthorized
	CodeLocked
	CodeTimeOut
	CodeCallbackFailed
	CodeCallbackShelve
)

// String returns the human-readable description of the code
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "Operation succeeded"
	case CodeInvalArg:
		return "Invalid argument"
	case CodeSchema:
		return "Schema library error"
	case CodeSys:
		return "System function call failed"
	case CodeNoMem:
		return "Memory allocation failed"
	case CodeNotFound:
		return "Item not found"
	case CodeExists:
		return "Item already exists"
	case CodeInternal:
		return "Internal error"
	case CodeUnsupported:
		return "Operation not supported"
	case CodeValidationFailed:
		return "Validation failed"
	case CodeOperationFailed:
		return "Operation failed"
	case CodeUnauthorized:
		return "Operation not authorized"
	case CodeLocked:
		return "Requested resource is already locked"
	case CodeTimeOut:
		return "Timeout expired"
	case CodeCallbackFailed:
		return "User callback failed"
	case CodeCallbackShelve:
		return "User callback shelved"
	default:
		return "Unknown error"
	}
}

// Base error types
var (
	// ErrInvalidArgument is returned when a caller passes arguments an operation cannot accept
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when a requested item does not exist
	ErrNotFound = errors.New("item not found")

	// ErrExists is returned when an item being created already exists
	ErrExists = errors.New("item already exists")

	// ErrUnsupported is returned for operations this build does not provide
	ErrUnsupported = errors.New("operation not supported")

	// ErrLocked is returned when a resource is locked by someone else
	ErrLocked = errors.New("requested resource is already locked")

	// ErrUnauthorized is returned when the caller lacks permission
	ErrUnauthorized = errors.New("operation not authorized")
)

// ErrorCode maps any error to the status code that best describes it
func ErrorCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	// A combined list error unwraps to its records in order, so the first record wins
	var rec *Record
	if errors.As(err, &rec) {
		return rec.Code()
	}

	switch {
	case errors.Is(err, ErrInvalidArgument):
		return CodeInvalArg
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrExists):
		return CodeExists
	case errors.Is(err, ErrUnsupported):
		return CodeUnsupported
	case errors.Is(err, ErrLocked):
		return CodeLocked
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case IsTimeout(err):
		return CodeTimeOut
	default:
		return CodeInternal
	}
}

// IsTimeout checks if the error reports a time-based abort of a wait
func IsTimeout(err error) bool {
	return errors.Is(err, syscall.ETIMEDOUT) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, os.ErrDeadlineExceeded)
}
