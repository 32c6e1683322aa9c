package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/wellsync/internal/common"
)

type ChatType string

const (
	ChatCoach     ChatType = "coach"
	ChatEvent     ChatType = "event"
	ChatCompanion ChatType = "companion"
)

var ChatTypes = []ChatType{ChatCoach, ChatEvent, ChatCompanion}

func (t ChatType) Valid() bool {
	switch t {
	case ChatCoach, ChatEvent, ChatCompanion:
		return true
	}
	return false
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatSession groups messages of one conversation. Title and ConversationID
// are filled in by the server and refreshed on pull.
type ChatSession struct {
	SyncMeta
	ChatType       ChatType `json:"chatType"`
	Title          string   `json:"title,omitempty"`
	ConversationID string   `json:"conversationId,omitempty"`
}

func (s *ChatSession) Validate() error {
	if !s.ChatType.Valid() {
		return fmt.Errorf("%w: unknown chat type %q", common.ErrorValidation, s.ChatType)
	}
	return nil
}

type ChatMessage struct {
	SyncMeta
	SessionLocalID string   `json:"sessionLocalId"`
	ChatType       ChatType `json:"chatType"`
	Role           Role     `json:"role"`
	Content        string   `json:"content"`
}

func (m *ChatMessage) Validate() error {
	if m.SessionLocalID == "" {
		return fmt.Errorf("%w: session is required", common.ErrorValidation)
	}
	if m.Role != RoleUser && m.Role != RoleAssistant {
		return fmt.Errorf("%w: unknown role %q", common.ErrorValidation, m.Role)
	}
	if strings.TrimSpace(m.Content) == "" {
		return fmt.Errorf("%w: message content is required", common.ErrorValidation)
	}
	return nil
}
