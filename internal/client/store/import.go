package store

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/chat"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/exercises"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/moods"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/outbox"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/progress"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/syncstate"
	"github.com/dmitrijs2005/wellsync/internal/common"
	"github.com/dmitrijs2005/wellsync/internal/dbx"
)

// ImportResult summarises one import batch.
type ImportResult struct {
	Inserted int
	Updated  int
	// Bound counts local records matched to a server row by request id.
	Bound   int
	Skipped int
	Errors  []*common.ReconciliationError
}

func (r ImportResult) Changed() bool {
	return r.Inserted+r.Updated+r.Bound > 0
}

// importer merges server rows of one entity type into the local tables.
type importer[T any] struct {
	entity models.EntityType
	meta   func(*T) *models.SyncMeta
	get    func(ctx context.Context, tx dbx.DBTX, userID, localID string) (*T, error)
	insert func(ctx context.Context, tx dbx.DBTX, rec *T) error
	update func(ctx context.Context, tx dbx.DBTX, rec *T) error
	same   func(a, b *T) bool
}

// merge applies one server row. The server copy wins on payload fields.
// Rows are matched by server id first, then by request id so that a record
// delivered by an interrupted push is bound instead of duplicated.
func (im importer[T]) merge(ctx context.Context, tx dbx.DBTX, clock func() stampClock, userID string, in T, res *ImportResult) error {
	rec := in
	m := im.meta(&rec)
	reject := func(reason string) {
		res.Skipped++
		res.Errors = append(res.Errors, &common.ReconciliationError{
			EntityType: string(im.entity), LocalID: m.LocalID, ServerID: m.ServerID, Reason: reason,
		})
	}
	if m.ServerID == "" {
		reject("missing server id")
		return nil
	}

	state, err := syncstate.NewSQLiteRepository(tx, im.entity)
	if err != nil {
		return err
	}
	ts := clock()

	local, err := state.FindByServerID(ctx, userID, m.ServerID)
	if err == nil {
		return im.refresh(ctx, tx, userID, local, &rec, ts, res)
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return err
	}

	if m.RequestID != "" {
		local, err := state.FindByRequestID(ctx, userID, m.RequestID)
		switch {
		case err == nil && local.ServerID != "":
			m.LocalID = local.LocalID
			reject("request id already bound to server id " + local.ServerID)
			return nil
		case err == nil:
			if err := state.Bind(ctx, local.LocalID, m.ServerID, ts.now); err != nil {
				return err
			}
			if err := outbox.NewSQLiteRepository(tx).Delete(ctx, im.entity, local.LocalID); err != nil {
				return err
			}
			res.Bound++
			local.ServerID = m.ServerID
			local.Status = models.StatusSynced
			var ignored ImportResult
			return im.refresh(ctx, tx, userID, local, &rec, ts, &ignored)
		case !errors.Is(err, common.ErrorNotFound):
			return err
		}
	}

	if m.RequestID == "" {
		m.RequestID = ts.requestID()
	}
	m.LocalID = ts.localID()
	m.UserID = userID
	m.Status = models.StatusSynced
	if m.CreatedAt.IsZero() {
		m.CreatedAt = ts.now
	}
	m.UpdatedAt = ts.now
	if err := im.insert(ctx, tx, &rec); err != nil {
		return err
	}
	res.Inserted++
	return nil
}

// refresh overwrites the payload of an already known local row when the
// server copy differs.
func (im importer[T]) refresh(ctx context.Context, tx dbx.DBTX, userID string, local models.SyncMeta, rec *T, ts stampClock, res *ImportResult) error {
	cur, err := im.get(ctx, tx, userID, local.LocalID)
	if err != nil {
		return err
	}
	m := im.meta(rec)
	*m = local
	if im.same(cur, rec) {
		return nil
	}
	m.UpdatedAt = ts.now
	if err := im.update(ctx, tx, rec); err != nil {
		return err
	}
	res.Updated++
	return nil
}

// stampClock carries the time and id generators of one import batch.
type stampClock struct {
	now       time.Time
	localID   func() string
	requestID func() string
}

func (s *Store) clock() stampClock {
	return stampClock{now: s.now().UTC(), localID: newLocalID, requestID: newRequestID}
}

func runImport[T any](ctx context.Context, s *Store, op string, im importer[T], records []T, prepare func(ctx context.Context, tx dbx.DBTX, userID string, res *ImportResult) (bool, error)) (ImportResult, error) {
	userID, err := s.UserID()
	if err != nil {
		return ImportResult{}, err
	}

	var res ImportResult
	err = s.write(ctx, op, func(ctx context.Context, tx dbx.DBTX) (bool, error) {
		res = ImportResult{}
		if prepare != nil {
			ok, err := prepare(ctx, tx, userID, &res)
			if err != nil || !ok {
				return false, err
			}
		}
		for _, rec := range records {
			if err := im.merge(ctx, tx, s.clock, userID, rec, &res); err != nil {
				return false, err
			}
		}
		return res.Changed(), nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	for _, e := range res.Errors {
		s.logger.Warn(ctx, "import record dropped", "error", e)
	}
	if res.Changed() {
		s.logger.Debug(ctx, op, "inserted", res.Inserted, "updated", res.Updated, "bound", res.Bound)
	}
	return res, nil
}

var moodImporter = importer[models.Mood]{
	entity: models.EntityMood,
	meta:   func(m *models.Mood) *models.SyncMeta { return &m.SyncMeta },
	get: func(ctx context.Context, tx dbx.DBTX, userID, localID string) (*models.Mood, error) {
		return moods.NewSQLiteRepository(tx).Get(ctx, userID, localID)
	},
	insert: func(ctx context.Context, tx dbx.DBTX, m *models.Mood) error {
		return moods.NewSQLiteRepository(tx).Insert(ctx, m)
	},
	update: func(ctx context.Context, tx dbx.DBTX, m *models.Mood) error {
		return moods.NewSQLiteRepository(tx).UpdatePayload(ctx, m)
	},
	same: func(a, b *models.Mood) bool {
		return a.Mood == b.Mood && a.Intensity == b.Intensity && a.Note == b.Note &&
			slices.Equal(a.Tags, b.Tags) && a.RecordedAt.Equal(b.RecordedAt)
	},
}

// ImportMoods merges pulled mood entries.
func (s *Store) ImportMoods(ctx context.Context, in []models.Mood) (ImportResult, error) {
	return runImport(ctx, s, "import moods", moodImporter, in, nil)
}

var progressImporter = importer[models.ExerciseProgress]{
	entity: models.EntityProgress,
	meta:   func(p *models.ExerciseProgress) *models.SyncMeta { return &p.SyncMeta },
	get: func(ctx context.Context, tx dbx.DBTX, userID, localID string) (*models.ExerciseProgress, error) {
		return progress.NewSQLiteRepository(tx).Get(ctx, userID, localID)
	},
	insert: func(ctx context.Context, tx dbx.DBTX, p *models.ExerciseProgress) error {
		return progress.NewSQLiteRepository(tx).Insert(ctx, p)
	},
	update: func(ctx context.Context, tx dbx.DBTX, p *models.ExerciseProgress) error {
		return progress.NewSQLiteRepository(tx).UpdatePayload(ctx, p)
	},
	same: func(a, b *models.ExerciseProgress) bool {
		return a.ExerciseID == b.ExerciseID && a.DurationSeconds == b.DurationSeconds &&
			a.Rating == b.Rating && a.Note == b.Note && a.CompletedAt.Equal(b.CompletedAt)
	},
}

// ImportProgress merges pulled exercise completions.
func (s *Store) ImportProgress(ctx context.Context, in []models.ExerciseProgress) (ImportResult, error) {
	return runImport(ctx, s, "import progress", progressImporter, in, nil)
}

var sessionImporter = importer[models.ChatSession]{
	entity: models.EntitySession,
	meta:   func(cs *models.ChatSession) *models.SyncMeta { return &cs.SyncMeta },
	get: func(ctx context.Context, tx dbx.DBTX, userID, localID string) (*models.ChatSession, error) {
		return chat.NewSQLiteRepository(tx).GetSession(ctx, userID, localID)
	},
	insert: func(ctx context.Context, tx dbx.DBTX, cs *models.ChatSession) error {
		return chat.NewSQLiteRepository(tx).InsertSession(ctx, cs)
	},
	update: func(ctx context.Context, tx dbx.DBTX, cs *models.ChatSession) error {
		return chat.NewSQLiteRepository(tx).UpdateSessionPayload(ctx, cs)
	},
	same: func(a, b *models.ChatSession) bool {
		return a.Title == b.Title && a.ConversationID == b.ConversationID
	},
}

// ImportSessions merges pulled chat sessions.
func (s *Store) ImportSessions(ctx context.Context, in []models.ChatSession) (ImportResult, error) {
	return runImport(ctx, s, "import sessions", sessionImporter, in, nil)
}

var messageImporter = importer[models.ChatMessage]{
	entity: models.EntityMessage,
	meta:   func(m *models.ChatMessage) *models.SyncMeta { return &m.SyncMeta },
	get: func(ctx context.Context, tx dbx.DBTX, userID, localID string) (*models.ChatMessage, error) {
		return chat.NewSQLiteRepository(tx).GetMessage(ctx, userID, localID)
	},
	insert: func(ctx context.Context, tx dbx.DBTX, m *models.ChatMessage) error {
		return chat.NewSQLiteRepository(tx).InsertMessage(ctx, m)
	},
	update: func(ctx context.Context, tx dbx.DBTX, m *models.ChatMessage) error {
		return chat.NewSQLiteRepository(tx).UpdateMessagePayload(ctx, m)
	},
	same: func(a, b *models.ChatMessage) bool {
		return a.Role == b.Role && a.Content == b.Content
	},
}

// ImportMessages merges pulled messages of the session known to the server
// as sessionServerID. When no local session is bound to that id the whole
// batch is skipped with a reconciliation error.
func (s *Store) ImportMessages(ctx context.Context, sessionServerID string, in []models.ChatMessage) (ImportResult, error) {
	batch := slices.Clone(in)
	prepare := func(ctx context.Context, tx dbx.DBTX, userID string, res *ImportResult) (bool, error) {
		state, err := syncstate.NewSQLiteRepository(tx, models.EntitySession)
		if err != nil {
			return false, err
		}
		sess, err := state.FindByServerID(ctx, userID, sessionServerID)
		if errors.Is(err, common.ErrorNotFound) {
			res.Skipped = len(batch)
			res.Errors = append(res.Errors, &common.ReconciliationError{
				EntityType: string(models.EntityMessage), ServerID: sessionServerID, Reason: "unknown chat session",
			})
			return false, nil
		}
		if err != nil {
			return false, err
		}
		full, err := chat.NewSQLiteRepository(tx).GetSession(ctx, userID, sess.LocalID)
		if err != nil {
			return false, err
		}
		for i := range batch {
			batch[i].SessionLocalID = full.LocalID
			batch[i].ChatType = full.ChatType
		}
		return true, nil
	}
	return runImport(ctx, s, "import messages", messageImporter, batch, prepare)
}

// ImportExercises refreshes the catalog. Entries only ever count as updated.
func (s *Store) ImportExercises(ctx context.Context, in []models.Exercise) (ImportResult, error) {
	var res ImportResult
	err := s.write(ctx, "import exercises", func(ctx context.Context, tx dbx.DBTX) (bool, error) {
		res = ImportResult{}
		repo := exercises.NewSQLiteRepository(tx)
		now := s.now().UTC()
		for i := range in {
			e := in[i]
			if e.ServerID == "" {
				res.Skipped++
				res.Errors = append(res.Errors, &common.ReconciliationError{
					EntityType: "exercise", Reason: "missing server id",
				})
				continue
			}
			if e.UpdatedAt.IsZero() {
				e.UpdatedAt = now
			}
			changed, err := repo.Upsert(ctx, &e)
			if err != nil {
				return false, err
			}
			if changed {
				res.Updated++
			}
		}
		return res.Changed(), nil
	})
	if err != nil {
		return ImportResult{}, err
	}
	for _, e := range res.Errors {
		s.logger.Warn(ctx, "import record dropped", "error", e)
	}
	return res, nil
}
