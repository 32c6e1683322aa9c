package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
)

func parseChatType(s string) (models.ChatType, error) {
	t := models.ChatType(strings.ToLower(s))
	if !t.Valid() {
		return "", fmt.Errorf("unknown chat type %q, want one of coach, event, companion", s)
	}
	return t, nil
}

// NewChat starts a session of the given type (coach by default).
func (a *App) NewChat(ctx context.Context, args []string) error {
	chatType := models.ChatCoach
	if len(args) > 0 {
		t, err := parseChatType(args[0])
		if err != nil {
			return err
		}
		chatType = t
	}

	id, err := a.store.CreateChatSession(ctx, chatType)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Started %s chat %s\n", chatType, id)
	return nil
}

// SendMessage stores a user message in a session: "say <sessionId> text".
// Without text it reads a multi-line message.
func (a *App) SendMessage(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: say <sessionId> [text]")
	}
	content := strings.Join(args[1:], " ")
	if content == "" {
		text, err := GetMultiline(a.reader, "Message", a.out)
		if err != nil {
			return err
		}
		content = text
	}

	id, err := a.store.RecordChatMessage(ctx, args[0], models.RoleUser, content)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Message saved (%s)\n", id)
	return nil
}

// ListSessions lists sessions of one chat type, or of all types.
func (a *App) ListSessions(ctx context.Context, args []string) error {
	types := models.ChatTypes
	if len(args) > 0 {
		t, err := parseChatType(args[0])
		if err != nil {
			return err
		}
		types = []models.ChatType{t}
	}

	found := 0
	for _, t := range types {
		list, err := a.store.ListSessions(ctx, t)
		if err != nil {
			return err
		}
		for _, s := range list {
			title := s.Title
			if title == "" {
				title = "(untitled)"
			}
			fmt.Fprintf(a.out, "%s  %-9s %-40s [%s]\n", s.LocalID, s.ChatType, title, s.Status)
			found++
		}
	}
	if found == 0 {
		fmt.Fprintln(a.out, "No sessions")
	}
	return nil
}

func (a *App) ListMessages(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: messages <sessionId>")
	}
	if _, err := a.store.GetSession(ctx, args[0]); err != nil {
		return err
	}
	list, err := a.store.ListMessages(ctx, args[0])
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No messages")
		return nil
	}
	for _, m := range list {
		fmt.Fprintf(a.out, "%s %-9s %s [%s]\n", m.CreatedAt.Local().Format(time.TimeOnly), m.Role+":", m.Content, m.Status)
	}
	return nil
}
