package models

import "time"

// Operation is the kind of change an outbox entry carries. Only creation is
// queued; synced records are refreshed by pulls instead.
type Operation string

const OperationCreate Operation = "create"

// OutboxEntry is a not-yet-acknowledged local creation awaiting delivery.
// There is at most one entry per (EntityType, LocalID).
type OutboxEntry struct {
	EntryID    string
	UserID     string
	EntityType EntityType
	LocalID    string
	Operation  Operation
	// Payload is the JSON snapshot of the record taken at enqueue time.
	Payload      []byte
	RequestID    string
	AttemptCount int
	LastError    string
	EnqueuedAt   time.Time
}
