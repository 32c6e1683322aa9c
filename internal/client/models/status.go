package models

import "time"

// Category is a unit of synchronization reported on the status surface.
type Category string

const (
	CategoryMoods         Category = "moods"
	CategoryExercises     Category = "exercises"
	CategoryUserProgress  Category = "userProgress"
	CategoryChatCoach     Category = "chatCoach"
	CategoryChatEvent     Category = "chatEvent"
	CategoryChatCompanion Category = "chatCompanion"
)

// Categories lists every category in reporting order.
var Categories = []Category{
	CategoryMoods,
	CategoryExercises,
	CategoryUserProgress,
	CategoryChatCoach,
	CategoryChatEvent,
	CategoryChatCompanion,
}

// ChatCategory maps a chat type to its category.
func ChatCategory(t ChatType) Category {
	switch t {
	case ChatCoach:
		return CategoryChatCoach
	case ChatEvent:
		return CategoryChatEvent
	case ChatCompanion:
		return CategoryChatCompanion
	}
	return ""
}

// ChatTypeOf is the inverse of ChatCategory; ok is false for non-chat
// categories.
func ChatTypeOf(c Category) (ChatType, bool) {
	switch c {
	case CategoryChatCoach:
		return ChatCoach, true
	case CategoryChatEvent:
		return ChatEvent, true
	case CategoryChatCompanion:
		return ChatCompanion, true
	}
	return "", false
}

// Counts holds not-yet-synced (pending) and failed record counts. Pending
// includes failed and in-flight records.
type Counts struct {
	Pending int
	Failed  int
}

// SyncStatusReport is the read-only status surface. It is re-derived from
// the store on every request.
type SyncStatusReport struct {
	PendingCounts map[Category]int
	FailedCounts  map[Category]int
	LastSyncAt    *time.Time
}

// TotalPending sums pending counts across categories.
func (r SyncStatusReport) TotalPending() int {
	n := 0
	for _, v := range r.PendingCounts {
		n += v
	}
	return n
}

// TotalFailed sums failed counts across categories.
func (r SyncStatusReport) TotalFailed() int {
	n := 0
	for _, v := range r.FailedCounts {
		n += v
	}
	return n
}
