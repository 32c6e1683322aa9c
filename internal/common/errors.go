// Package common defines shared constants and sentinel errors used across
// client and server layers of WellSync. Callers should use errors.Is to
// match sentinels and errors.As to extract the typed errors.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Sync engine errors.
	ErrNotInitialized = errors.New("store is not initialized")
	ErrSyncInProgress = errors.New("sync already in progress")
	ErrOffline        = errors.New("network is offline")
)

// StorageError reports a failure of the embedded store. It is returned
// synchronously to the caller of a local write; the write is never partially
// applied.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorageError wraps err unless it is nil or already a StorageError.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// TransportError reports a failed exchange with the remote store. Push
// failures are recorded on the record and retried; they never reach the
// caller of a local write.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ReconciliationError reports an ack or import that references a pairing the
// store cannot resolve. It is logged and dropped.
type ReconciliationError struct {
	EntityType string
	LocalID    string
	ServerID   string
	Reason     string
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("reconcile %s local=%q server=%q: %s", e.EntityType, e.LocalID, e.ServerID, e.Reason)
}
