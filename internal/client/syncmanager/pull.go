package syncmanager

import (
	"context"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
	"github.com/dmitrijs2005/wellsync/internal/common"
)

func transportErr(op string, err error) error {
	return &common.TransportError{Op: op, Err: err}
}

// pullMoods fetches moods updated after the stored cursor and advances the
// cursor to the newest server update time seen.
func (m *Manager) pullMoods(ctx context.Context, res *CategoryResult) error {
	since, err := m.store.Cursor(ctx, models.CategoryMoods)
	if err != nil {
		return err
	}
	rows, err := m.remote.GetMoods(ctx, since)
	if err != nil {
		return transportErr("get moods", err)
	}
	if len(rows) == 0 {
		return nil
	}

	var newest time.Time
	for _, r := range rows {
		if r.UpdatedAt.After(newest) {
			newest = r.UpdatedAt
		}
	}

	ir, err := m.store.ImportMoods(ctx, rows)
	if err != nil {
		return err
	}
	res.addImport(ir)

	if !newest.IsZero() {
		return m.store.SetCursor(ctx, models.CategoryMoods, newest)
	}
	return nil
}

// fetchCatalog returns the exercises response shared by the exercises and
// userProgress categories. Concurrent callers share one request and the
// response is reused until the cache entry expires.
func (m *Manager) fetchCatalog(ctx context.Context) (catalog, error) {
	userID, err := m.store.UserID()
	if err != nil {
		return catalog{}, err
	}
	if c, ok := m.catalog.Get(userID); ok {
		return c, nil
	}

	v, err, _ := m.catalogFlight.Do(userID, func() (interface{}, error) {
		if c, ok := m.catalog.Get(userID); ok {
			return c, nil
		}
		ex, pr, err := m.remote.GetExercisesWithProgress(ctx)
		if err != nil {
			return catalog{}, transportErr("get exercises", err)
		}
		c := catalog{exercises: ex, progress: pr}
		m.catalog.Set(userID, c)
		return c, nil
	})
	if err != nil {
		return catalog{}, err
	}
	return v.(catalog), nil
}

func (m *Manager) pullExercises(ctx context.Context, res *CategoryResult) error {
	c, err := m.fetchCatalog(ctx)
	if err != nil {
		return err
	}
	ir, err := m.store.ImportExercises(ctx, c.exercises)
	if err != nil {
		return err
	}
	res.addImport(ir)
	return nil
}

func (m *Manager) pullProgress(ctx context.Context, res *CategoryResult) error {
	// Freshly delivered completions are not in a cached response.
	if res.Pushed > 0 {
		if userID, err := m.store.UserID(); err == nil {
			m.catalog.Delete(userID)
		}
	}
	c, err := m.fetchCatalog(ctx)
	if err != nil {
		return err
	}
	ir, err := m.store.ImportProgress(ctx, c.progress)
	if err != nil {
		return err
	}
	res.addImport(ir)
	return nil
}

// pullChat imports the sessions of chatType and then the messages of each.
// A session whose messages cannot be fetched does not stop the others.
func (m *Manager) pullChat(ctx context.Context, chatType models.ChatType, res *CategoryResult) error {
	sessions, err := m.remote.GetSessions(ctx, chatType)
	if err != nil {
		return transportErr("get sessions", err)
	}
	ir, err := m.store.ImportSessions(ctx, sessions)
	if err != nil {
		return err
	}
	res.addImport(ir)

	var firstErr error
	for _, s := range sessions {
		if s.ServerID == "" {
			continue
		}
		msgs, err := m.remote.GetMessages(ctx, s.ServerID)
		if err != nil {
			m.logger.Warn(ctx, "get messages failed", "session", s.ServerID, "error", err)
			if firstErr == nil {
				firstErr = transportErr("get messages", err)
			}
			continue
		}
		if len(msgs) == 0 {
			continue
		}
		ir, err := m.store.ImportMessages(ctx, s.ServerID, msgs)
		if err != nil {
			return err
		}
		res.addImport(ir)
	}
	return firstErr
}
