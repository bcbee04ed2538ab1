// Package domainerr defines the error kinds shared by every layer.
//
// Callers classify failures with errors.Is against the sentinels below.
// Internal marks wiring faults of the application itself. Any error that
// matches none of them is a storage failure and is reported as-is.
package domainerr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrInternal   = errors.New("internal error")
)

// ValidationError reports a rejected input value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v %s", e.Entity, e.ID, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ConflictError reports a violated uniqueness rule.
type ConflictError struct {
	Entity string
	Key    string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q %s", e.Entity, e.Key, ErrConflict)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// InternalError is a fault in the application wiring, such as a command
// nobody handles.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string { return e.Msg }

func (e *InternalError) Unwrap() error { return ErrInternal }

func Internal(msg string) error {
	return &InternalError{Msg: msg}
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func NotFound(entity string, id any) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func Conflict(entity, key string) error {
	return &ConflictError{Entity: entity, Key: key}
}

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

func IsInternal(err error) bool { return errors.Is(err, ErrInternal) }

// Kind names the error class, used by logs and the idempotency replay.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsValidation(err):
		return "validation"
	case IsNotFound(err):
		return "not_found"
	case IsConflict(err):
		return "conflict"
	case IsInternal(err):
		return "internal"
	default:
		return "storage"
	}
}

// FromKind rebuilds an error of the named class carrying msg verbatim.
func FromKind(kind, msg string) error {
	switch kind {
	case "validation":
		return &replayedError{kind: ErrValidation, msg: msg}
	case "not_found":
		return &replayedError{kind: ErrNotFound, msg: msg}
	case "conflict":
		return &replayedError{kind: ErrConflict, msg: msg}
	default:
		return errors.New(msg)
	}
}

type replayedError struct {
	kind error
	msg  string
}

func (e *replayedError) Error() string { return e.msg }

func (e *replayedError) Unwrap() error { return e.kind }
