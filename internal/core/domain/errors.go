package domain

import (
	"errors"
	"fmt"
)

var (
	ErrWeakPassword       = errors.New("password does not meet policy")
	ErrEmailExists        = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStaleRole          = errors.New("stale role claim")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrAppNotFound        = errors.New("application not found")
)

// ErrStorage is the marker every StorageError matches via errors.Is. Callers
// branch on it to tell an unreachable/errored store apart from an absent
// record — the two must never collapse into the same observable value.
var ErrStorage = errors.New("storage failure")

// StorageError wraps a driver error with the operation that failed. The
// driver detail stays available for logs while handlers only ever see the
// ErrStorage identity.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// NewStorageError wraps err as a StorageError for operation op.
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
