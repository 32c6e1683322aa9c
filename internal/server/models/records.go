package models

import "time"

// Mood is a mood entry owned by UserID. RequestID is the client's
// idempotency key; (UserID, RequestID) is unique.
type Mood struct {
	ID         string
	UserID     string
	RequestID  string
	Mood       string
	Intensity  int
	Note       string
	Tags       []string
	RecordedAt time.Time
	UpdatedAt  time.Time
}

// Exercise is a catalog entry shared by all users.
type Exercise struct {
	ID              string
	Title           string
	Category        string
	DurationMinutes int
	Description     string
}

type Progress struct {
	ID              string
	UserID          string
	RequestID       string
	ExerciseID      string
	DurationSeconds int
	Rating          int
	Note            string
	CompletedAt     time.Time
	UpdatedAt       time.Time
}

type Session struct {
	ID             string
	UserID         string
	RequestID      string
	ChatType       string
	Title          string
	ConversationID string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Message struct {
	ID        string
	UserID    string
	RequestID string
	SessionID string
	Role      string
	Content   string
	CreatedAt time.Time
}
