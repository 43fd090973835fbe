package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	// ErrNotFound signals a zero-row result. It is a normal outcome,
	// not a failure; callers branch on it with errors.Is.
	ErrNotFound = errors.New("resource not found")

	// ErrAmbiguousResult signals that a lookup expected at most one row
	// but the filter matched several.
	ErrAmbiguousResult = errors.New("ambiguous result: filter matched more than one row")

	// ErrValidation signals a missing or malformed required field,
	// caught before the store is reached.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signals a uniqueness violation.
	ErrConflict = errors.New("duplicate entry")
)

// Auth errors
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user account is inactive")
)

// StoreError wraps a transport, connectivity or unexpected backend
// failure. The repository never recovers these silently.
type StoreError struct {
	Op    string // operation that failed (list, get, insert, ...)
	Table string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Table, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err as a StoreError for the given operation.
func NewStoreError(op, table string, err error) *StoreError {
	return &StoreError{Op: op, Table: table, Err: err}
}

// ValidationError builds an ErrValidation with field context.
func ValidationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
