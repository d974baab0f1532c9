package service

import (
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
)

// Sentinels for errors.Is. Every error returned by the services matches
// exactly one of them.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage failure")
)

// ValidationError reports a caller-supplied value that was rejected before any
// storage round trip.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports that no live row with ID exists in Table.
type NotFoundError struct {
	Table string
	ID    uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Table, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StorageError wraps a backend failure. Its message is the backend's own.
type StorageError struct {
	Op    string
	Table string
	Err   error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func storageFailure(op, table string, err error) error {
	return &StorageError{Op: op, Table: table, Err: err}
}
