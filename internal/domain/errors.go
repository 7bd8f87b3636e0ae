package domain

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// StoreUnavailableError wraps a database connection or query failure. Op names the
// statement kind ("query", "insert") and is the only part shown to API callers.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e StoreUnavailableError) Error() string {
	if e.Op == "" {
		return "store unavailable"
	}
	return fmt.Sprintf("database %s failed", e.Op)
}

func (e StoreUnavailableError) Unwrap() error { return e.Err }

// NetworkError is a failed call from the booking flow to the booking API. Status is 0 when
// the request never produced a response.
type NetworkError struct {
	Status int
	Msg    string
	Err    error
}

func (e NetworkError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Status != 0 {
		return fmt.Sprintf("booking api returned status %d", e.Status)
	}
	return "booking api unreachable"
}

func (e NetworkError) Unwrap() error { return e.Err }

// StateMissingError means the session stash is absent or unreadable.
type StateMissingError struct {
	Key string
	Msg string
	Err error
}

func (e StateMissingError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("session state %q missing", e.Key)
}

func (e StateMissingError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsStoreUnavailable(err error) bool {
	var target StoreUnavailableError
	return errors.As(err, &target)
}

func IsNetwork(err error) bool {
	var target NetworkError
	return errors.As(err, &target)
}

func IsStateMissing(err error) bool {
	var target StateMissingError
	return errors.As(err, &target)
}
