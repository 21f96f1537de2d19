package models

import (
	"errors"
	"fmt"
)

// Failure classes of a polling cycle.
var (
	// ErrTransportFailure covers fetch timeouts, network errors, non-2xx responses and undecodable bodies.
	ErrTransportFailure = errors.New("transport failure")
	// ErrEmptyFeed is returned when upstream answers with no records at all.
	ErrEmptyFeed = errors.New("upstream returned no line records")
	// ErrMalformedRecord marks a single record missing a required field.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrAllRecordsMalformed aborts a cycle in which no record could be normalized.
	ErrAllRecordsMalformed = errors.New("every fetched record is malformed")
	// ErrPersistenceFailure covers snapshot writes and history appends.
	ErrPersistenceFailure = errors.New("persistence failure")
	// ErrNotificationDelivery is returned when the notification sink rejects a message.
	ErrNotificationDelivery = errors.New("notification delivery failure")
)

// MalformedRecordError describes which required field a raw record lacked.
type MalformedRecordError struct {
	Index int
	Field string
	Code  string
}

func (e *MalformedRecordError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("malformed record #%d (codigo %s): missing %s", e.Index, e.Code, e.Field)
	}
	return fmt.Sprintf("malformed record #%d: missing %s", e.Index, e.Field)
}

// Unwrap lets errors.Is match ErrMalformedRecord.
func (e *MalformedRecordError) Unwrap() error {
	return ErrMalformedRecord
}

// PersistenceError wraps an I/O failure of a store.
type PersistenceError struct {
	Store string
	Path  string
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s write to '%s' failed: %v", e.Store, e.Path, e.Err)
}

// Is matches ErrPersistenceFailure.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistenceFailure
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError creates a new PersistenceError.
func NewPersistenceError(store, path string, err error) *PersistenceError {
	return &PersistenceError{Store: store, Path: path, Err: err}
}
