package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors for registry lookups and registration.
var (
	// ErrNotFound is returned when no factory is registered under a key.
	ErrNotFound = errors.New("registry: message type not found")

	// ErrDuplicate is returned when a key is registered twice.
	ErrDuplicate = errors.New("registry: duplicate registration")

	// ErrTypeMismatch is returned by CreateAs when the registered factory
	// produces a different concrete type than requested.
	ErrTypeMismatch = errors.New("registry: message type mismatch")
)

// NotFoundError reports a lookup for a key that has no registered factory.
type NotFoundError struct {
	Key string
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("registry: message type %q not found", e.Key)
}

// Is reports whether the target error matches NotFoundError.
// This allows errors.Is(notFoundErr, ErrNotFound) to return true.
func (e *NotFoundError) Is(err error) bool {
	return err == ErrNotFound
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *NotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrNotFound)
}

// DuplicateRegistrationError reports a key registered more than once.
//
// First and Second name where each registration came from when that is
// known (schema files during generation); at runtime they are empty.
type DuplicateRegistrationError struct {
	Key    string
	First  string
	Second string
}

// Error returns the error string.
func (e *DuplicateRegistrationError) Error() string {
	if e.First != "" || e.Second != "" {
		return fmt.Sprintf("registry: duplicate registration of %q (first in %s, again in %s)", e.Key, e.First, e.Second)
	}
	return fmt.Sprintf("registry: duplicate registration of %q", e.Key)
}

// Is reports whether the target error matches DuplicateRegistrationError.
func (e *DuplicateRegistrationError) Is(err error) bool {
	return err == ErrDuplicate
}

// IsDuplicate returns true if the error is a DuplicateRegistrationError.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	var e *DuplicateRegistrationError
	return errors.As(err, &e) || errors.Is(err, ErrDuplicate)
}
