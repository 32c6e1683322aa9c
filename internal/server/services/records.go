package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/wellsync/internal/common"
	"github.com/dmitrijs2005/wellsync/internal/dbx"
	"github.com/dmitrijs2005/wellsync/internal/server/models"
	"github.com/dmitrijs2005/wellsync/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

var (
	chatTypes = map[string]bool{"coach": true, "event": true, "companion": true}
	roles     = map[string]bool{"user": true, "assistant": true}
)

const (
	minIntensity = 1
	maxIntensity = 10
)

// RecordService serves the user-owned records of the sync API. Every
// create is idempotent on (user, requestId): a replay returns the id
// assigned by the first call.
type RecordService struct {
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	now            func() time.Time
	conversationID func() string
}

func NewRecordService(db *sql.DB, m repomanager.RepositoryManager) *RecordService {
	return &RecordService{db: db, repomanager: m, now: time.Now, conversationID: uuid.NewString}
}

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{common.ErrorValidation}, args...)...)
}

func requireRequestID(id string) error {
	if strings.TrimSpace(id) == "" {
		return validationErr("requestId is required")
	}
	return nil
}

func (s *RecordService) CreateMood(ctx context.Context, userID string, m *models.Mood) (string, error) {
	if err := requireRequestID(m.RequestID); err != nil {
		return "", err
	}
	if strings.TrimSpace(m.Mood) == "" {
		return "", validationErr("mood is required")
	}
	if m.Intensity < minIntensity || m.Intensity > maxIntensity {
		return "", validationErr("intensity must be between %d and %d", minIntensity, maxIntensity)
	}
	if m.RecordedAt.IsZero() {
		m.RecordedAt = s.now()
	}
	m.UserID = userID

	if _, err := s.repomanager.Moods(s.db).Create(ctx, m); err != nil {
		return "", err
	}
	return m.ID, nil
}

func (s *RecordService) GetMoods(ctx context.Context, userID string, since time.Time) ([]models.Mood, error) {
	return s.repomanager.Moods(s.db).ListSince(ctx, userID, since)
}

func (s *RecordService) CreateProgress(ctx context.Context, userID string, p *models.Progress) (string, error) {
	if err := requireRequestID(p.RequestID); err != nil {
		return "", err
	}
	if _, err := uuid.Parse(p.ExerciseID); err != nil {
		return "", validationErr("unknown exercise %q", p.ExerciseID)
	}
	if p.DurationSeconds < 0 {
		return "", validationErr("duration must not be negative")
	}
	if p.CompletedAt.IsZero() {
		p.CompletedAt = s.now()
	}
	p.UserID = userID

	if _, err := s.repomanager.Exercises(s.db).CreateProgress(ctx, p); err != nil {
		return "", err
	}
	return p.ID, nil
}

// GetExercisesWithProgress returns the whole catalog together with userID's
// progress rows.
func (s *RecordService) GetExercisesWithProgress(ctx context.Context, userID string) ([]models.Exercise, []models.Progress, error) {
	repo := s.repomanager.Exercises(s.db)

	exercises, err := repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	progress, err := repo.ListProgress(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return exercises, progress, nil
}

// CreateSession assigns the default title and a fresh conversation id. On
// replay the stored session keeps its original values.
func (s *RecordService) CreateSession(ctx context.Context, userID string, sess *models.Session) (string, error) {
	if err := requireRequestID(sess.RequestID); err != nil {
		return "", err
	}
	if !chatTypes[sess.ChatType] {
		return "", validationErr("unknown chat type %q", sess.ChatType)
	}
	sess.UserID = userID
	sess.Title = common.DefaultSessionTitle
	sess.ConversationID = s.conversationID()
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = s.now()
	}

	if _, err := s.repomanager.Chat(s.db).CreateSession(ctx, sess); err != nil {
		return "", err
	}
	return sess.ID, nil
}

func (s *RecordService) GetSessions(ctx context.Context, userID, chatType string) ([]models.Session, error) {
	if chatType != "" && !chatTypes[chatType] {
		return nil, validationErr("unknown chat type %q", chatType)
	}
	return s.repomanager.Chat(s.db).ListSessions(ctx, userID, chatType)
}

// CreateMessage appends m to one of userID's sessions. The first user
// message of a session that still has the default title renames it.
func (s *RecordService) CreateMessage(ctx context.Context, userID string, m *models.Message) (string, error) {
	if err := requireRequestID(m.RequestID); err != nil {
		return "", err
	}
	if !roles[m.Role] {
		return "", validationErr("unknown role %q", m.Role)
	}
	if strings.TrimSpace(m.Content) == "" {
		return "", validationErr("content is required")
	}
	m.UserID = userID
	if m.CreatedAt.IsZero() {
		m.CreatedAt = s.now()
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Chat(tx)
		if _, err := repo.GetSession(ctx, userID, m.SessionID); err != nil {
			return err
		}
		created, err := repo.CreateMessage(ctx, m)
		if err != nil {
			return err
		}
		if created && m.Role == "user" {
			if _, err := repo.RenameIfTitled(ctx, m.SessionID, common.DefaultSessionTitle, SessionTitle(m.Content)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return m.ID, nil
}

func (s *RecordService) GetMessages(ctx context.Context, userID, sessionID string) ([]models.Message, error) {
	repo := s.repomanager.Chat(s.db)
	if _, err := repo.GetSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	return repo.ListMessages(ctx, userID, sessionID)
}

// SessionTitle derives a session title from its first user message: the
// first line, whitespace collapsed, cut to MaxSessionTitleLength runes.
func SessionTitle(content string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(content), "\n")
	title := strings.Join(strings.Fields(line), " ")
	if utf8.RuneCountInString(title) <= common.MaxSessionTitleLength {
		if title == "" {
			return common.DefaultSessionTitle
		}
		return title
	}
	runes := []rune(title)
	return strings.TrimSpace(string(runes[:common.MaxSessionTitleLength-1])) + "…"
}
