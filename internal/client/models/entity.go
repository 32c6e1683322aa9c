package models

import "time"

// EntityType names a syncable record kind. It doubles as the outbox
// discriminator.
type EntityType string

const (
	EntityMood     EntityType = "mood"
	EntityProgress EntityType = "exercise_progress"
	EntitySession  EntityType = "chat_session"
	EntityMessage  EntityType = "chat_message"
)

// SyncStatus is the delivery state of a record.
//
// pending -> syncing -> synced | failed, and failed -> syncing on retry.
// synced is terminal.
type SyncStatus string

const (
	StatusPending SyncStatus = "pending"
	StatusSyncing SyncStatus = "syncing"
	StatusSynced  SyncStatus = "synced"
	StatusFailed  SyncStatus = "failed"
)

// Retryable reports whether a push pass may claim a record in this state.
func (s SyncStatus) Retryable() bool {
	return s == StatusPending || s == StatusFailed
}

// SyncMeta is the bookkeeping shared by every syncable record.
type SyncMeta struct {
	LocalID string `json:"localId"`
	// ServerID is empty until the remote store acknowledged the record.
	ServerID  string     `json:"serverId,omitempty"`
	RequestID string     `json:"requestId"`
	UserID    string     `json:"userId"`
	Status    SyncStatus `json:"syncStatus"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Synced reports whether the record carries a server id.
func (m SyncMeta) Synced() bool { return m.Status == StatusSynced && m.ServerID != "" }

// Meta gives generic code access to the bookkeeping of any record
// embedding SyncMeta.
func (m *SyncMeta) Meta() *SyncMeta { return m }
